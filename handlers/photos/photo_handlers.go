package photos

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"api/config"
	"api/database"
	"api/middleware"
	"api/realtime"
	"api/services"
	"api/storage"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// respondServiceError translates a service error into an HTTP response
func respondServiceError(c *gin.Context, err error) {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		response.ValidationError(c, ve.Fields)
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		response.Error(c, http.StatusNotFound, ErrPhotoNotFound)
	case errors.Is(err, services.ErrForbidden):
		response.Error(c, http.StatusForbidden, ErrNotOwner)
	case errors.Is(err, services.ErrQuotaExceeded):
		response.Error(c, http.StatusConflict, ErrQuotaExceeded)
	case errors.Is(err, services.ErrDuplicateTitle):
		response.Error(c, http.StatusConflict, ErrDuplicateTitle)
	case errors.Is(err, services.ErrStorageWriteFailed):
		response.Error(c, http.StatusInternalServerError, ErrStorageWriteFailed)
	case errors.Is(err, services.ErrInvalidState):
		response.Error(c, http.StatusConflict, ErrInvalidPhotoState)
	default:
		response.Error(c, http.StatusInternalServerError, ErrPersistenceFailed)
	}
}

// SubmitPhoto admits a new photo submission
// @Summary Submit a photo into a competition category
// @Description Submit a photo (multipart with a "photo" file, or JSON metadata without binary content) into pending review
// @Tags Photos
// @Accept mpfd
// @Produce json
// @Param request formData SubmitPhotoRequest true "Submission metadata"
// @Success 201 {object} models.Photo
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /photos [post]
// @Security Bearer
func SubmitPhoto(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req SubmitPhotoRequest
	input := services.SubmissionInput{}

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
			return
		}

		file, header, err := c.Request.FormFile("photo")
		if err != nil {
			response.Error(c, http.StatusBadRequest, ErrFileMissing)
			return
		}
		defer file.Close()

		// Reject oversized uploads before buffering the content
		if result := utils.ValidateFileSize(header.Size); !result.Valid {
			response.ValidationError(c, map[string]string{"file_size": result.Error})
			return
		}

		data, err := io.ReadAll(io.LimitReader(file, config.DefaultUploadLimits.MaxFileSize+1))
		if err != nil {
			response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
			return
		}

		input.FileData = data
		input.FileName = header.Filename
		input.MimeType = header.Header.Get("Content-Type")
		if input.MimeType == "" {
			input.MimeType = utils.MimeForExtension(header.Filename)
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
			return
		}
		input.MimeType = req.MimeType
		input.Width = req.Width
		input.Height = req.Height
	}

	input.Title = req.Title
	input.Description = req.Description
	input.Location = req.Location
	input.DateTaken = req.DateTaken
	input.CameraMake = req.CameraMake
	input.CameraModel = req.CameraModel
	input.Lens = req.Lens
	input.FocalLength = req.FocalLength
	input.Aperture = req.Aperture
	input.ShutterSpeed = req.ShutterSpeed
	input.ISO = req.ISO

	photo, err := services.SubmitPhoto(c.Request.Context(), database.DB, storage.Default, user.ID, req.CompetitionID, req.CategoryID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	realtime.BroadcastPhotoUpdate(realtime.PhotoUpdate{
		CompetitionID: photo.CompetitionID,
		Photo:         *photo,
		UpdateType:    realtime.UpdateSubmitted,
	})

	c.JSON(http.StatusCreated, photo)
}

// SubmitPhotoBatch admits several metadata-only submissions independently
// @Summary Submit a batch of photos
// @Description Apply submit to each item independently; sibling items are never aborted by one item's failure
// @Tags Photos
// @Accept json
// @Produce json
// @Param request body BatchSubmitRequest true "Batch submission"
// @Success 200 {object} services.BatchResult
// @Failure 400 {object} map[string]string
// @Router /photos/batch [post]
// @Security Bearer
func SubmitPhotoBatch(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req BatchSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	items := make([]services.BatchItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, services.BatchItem{
			CategoryID: item.CategoryID,
			Input: services.SubmissionInput{
				Title:        item.Title,
				Description:  item.Description,
				Location:     item.Location,
				DateTaken:    item.DateTaken,
				CameraMake:   item.CameraMake,
				CameraModel:  item.CameraModel,
				Lens:         item.Lens,
				FocalLength:  item.FocalLength,
				Aperture:     item.Aperture,
				ShutterSpeed: item.ShutterSpeed,
				ISO:          item.ISO,
				MimeType:     item.MimeType,
				Width:        item.Width,
				Height:       item.Height,
			},
		})
	}

	result := services.SubmitPhotoBatch(c.Request.Context(), database.DB, storage.Default, user.ID, req.CompetitionID, items)
	c.JSON(http.StatusOK, result)
}

// UpdatePhoto applies a metadata patch to the caller's own photo
// @Summary Update a photo's metadata
// @Description Update metadata of an own submission; a changed title is re-checked for uniqueness
// @Tags Photos
// @Accept json
// @Produce json
// @Param id path string true "Photo ID"
// @Param request body UpdatePhotoRequest true "Metadata patch"
// @Success 200 {object} models.Photo
// @Failure 400,403,404,409 {object} map[string]string
// @Router /photos/{id} [put]
// @Security Bearer
func UpdatePhoto(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	photo, err := services.UpdatePhoto(database.DB, c.Param("id"), user.ID, services.PhotoPatch{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		DateTaken:    req.DateTaken,
		CameraMake:   req.CameraMake,
		CameraModel:  req.CameraModel,
		Lens:         req.Lens,
		FocalLength:  req.FocalLength,
		Aperture:     req.Aperture,
		ShutterSpeed: req.ShutterSpeed,
		ISO:          req.ISO,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, photo)
}

// WithdrawPhoto soft-deletes the caller's own photo
// @Summary Withdraw a photo
// @Description Soft-delete an own submission; the stored file is reclaimed out-of-band
// @Tags Photos
// @Produce json
// @Param id path string true "Photo ID"
// @Success 200 {object} map[string]string
// @Failure 403,404,409 {object} map[string]string
// @Router /photos/{id} [delete]
// @Security Bearer
func WithdrawPhoto(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	if err := services.WithdrawPhoto(database.DB, c.Param("id"), user.ID); err != nil {
		respondServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Photo withdrawn")
}

// ServePhotoFile streams a photo's original file from the blob store
// @Summary Serve a photo file
// @Description Stream the stored file for the given object key with a one-year cache header
// @Tags Photos
// @Produce octet-stream
// @Param key path string true "Object key"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /photos/serve/{key} [get]
func ServePhotoFile(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")

	obj, err := storage.Default.Get(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			response.Error(c, http.StatusNotFound, "File not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to read file")
		return
	}

	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Data(http.StatusOK, obj.ContentType, obj.Data)
}

// SweepOrphanFiles deletes stored files that no photo row references
// @Summary Sweep orphaned photo files
// @Description Delete stored files left behind by interrupted submissions
// @Tags Photos
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 500 {object} map[string]string
// @Router /photos/admin/sweep [post]
// @Security Bearer
func SweepOrphanFiles(c *gin.Context) {
	removed, err := storage.SweepOrphans(c.Request.Context(), database.DB, storage.Default, "competitions/")
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to sweep orphaned files")
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": removed})
}
