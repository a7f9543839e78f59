package photos

import (
	"net/http"

	"api/database"
	"api/middleware"
	"api/realtime"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// ModeratePhoto applies a moderation decision to a submission
// @Summary Moderate a photo
// @Description Approve or reject a pending photo, or reset a moderated photo back to pending
// @Tags Photos
// @Accept json
// @Produce json
// @Param id path string true "Photo ID"
// @Param request body ModerateRequest true "Moderation action"
// @Success 200 {object} models.Photo
// @Failure 400,404,409 {object} map[string]string
// @Router /photos/{id}/moderate [put]
// @Security Bearer
func ModeratePhoto(c *gin.Context) {
	moderator, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req ModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	photo, err := services.ModeratePhoto(database.DB, c.Param("id"), moderator.ID, req.Action, req.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	realtime.BroadcastPhotoUpdate(realtime.PhotoUpdate{
		CompetitionID: photo.CompetitionID,
		Photo:         *photo,
		UpdateType:    realtime.UpdateModerated,
	})

	c.JSON(http.StatusOK, photo)
}

// GetPhotosForModeration lists pending photos for the moderation queue
// @Summary Get the moderation queue
// @Description List pending photos, optionally scoped to one competition
// @Tags Photos
// @Produce json
// @Param competition_id query string false "Competition ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.Photo
// @Failure 500 {object} map[string]string
// @Router /photos/moderation [get]
// @Security Bearer
func GetPhotosForModeration(c *gin.Context) {
	photos, err := services.ListPhotosForModeration(database.DB, c.Query("competition_id"), paginationFromQuery(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchPhotos)
		return
	}

	c.JSON(http.StatusOK, photos)
}

// GetAllPhotosForAdmin lists photos across all users for the admin dashboard
// @Summary Get all photos (admin)
// @Description List photos of every user in any status except deleted
// @Tags Photos
// @Produce json
// @Param status query string false "Status filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.Photo
// @Failure 500 {object} map[string]string
// @Router /photos/admin/all [get]
// @Security Bearer
func GetAllPhotosForAdmin(c *gin.Context) {
	photos, err := services.ListAllPhotosForAdmin(database.DB, c.Query("status"), paginationFromQuery(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchPhotos)
		return
	}

	c.JSON(http.StatusOK, photos)
}
