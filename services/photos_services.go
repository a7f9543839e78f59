package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"api/metrics"
	"api/models"
	"api/storage"
	"api/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionInput carries the metadata and optional binary content of a photo submission
type SubmissionInput struct {
	Title        string
	Description  string
	Location     string
	DateTaken    *time.Time
	CameraMake   *string
	CameraModel  *string
	Lens         *string
	FocalLength  *string
	Aperture     *string
	ShutterSpeed *string
	ISO          *int

	FileName string
	MimeType string
	FileData []byte
	// Width and Height are only trusted when no file is supplied; with binary
	// content the dimensions are probed from the actual image header.
	Width  int
	Height int
}

// SubmitPhoto admits a photo submission into pending review. It validates the
// file and metadata, enforces the per-user category quota and title
// uniqueness, writes the blob and inserts the row as a saga: a failed insert
// deletes the just-written blob again.
func SubmitPhoto(ctx context.Context, db *gorm.DB, store storage.BlobStore, userID, competitionID, categoryID string, in SubmissionInput) (*models.Photo, error) {
	photo, err := submitPhoto(ctx, db, store, userID, competitionID, categoryID, in)
	if err != nil {
		metrics.Submissions.WithLabelValues(ErrorCode(err)).Inc()
		return nil, err
	}
	metrics.Submissions.WithLabelValues("admitted").Inc()
	return photo, nil
}

func submitPhoto(ctx context.Context, db *gorm.DB, store storage.BlobStore, userID, competitionID, categoryID string, in SubmissionInput) (*models.Photo, error) {
	// Step 1: Run the validation gate before touching any store
	if err := validateSubmission(&in); err != nil {
		return nil, err
	}

	// Step 2: The category must exist and belong to the competition
	var category models.Category
	if err := db.Where("id = ? AND competition_id = ?", categoryID, competitionID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	// Steps 3-4: Fail fast on quota and title before writing the blob. The
	// authoritative checks run again inside the insert transaction, under a
	// lock on the (user, category) slot.
	if err := checkQuota(db, userID, categoryID, category.MaxPhotosPerUser); err != nil {
		return nil, err
	}
	if err := checkDuplicateTitle(db, userID, competitionID, categoryID, in.Title, ""); err != nil {
		return nil, err
	}

	photo := &models.Photo{
		ID:            uuid.NewString(),
		UserID:        userID,
		CompetitionID: competitionID,
		CategoryID:    categoryID,
		Title:         in.Title,
		Description:   in.Description,
		Location:      in.Location,
		DateTaken:     in.DateTaken,
		FileName:      in.FileName,
		MimeType:      in.MimeType,
		Width:         in.Width,
		Height:        in.Height,
		CameraMake:    in.CameraMake,
		CameraModel:   in.CameraModel,
		Lens:          in.Lens,
		FocalLength:   in.FocalLength,
		Aperture:      in.Aperture,
		ShutterSpeed:  in.ShutterSpeed,
		ISO:           in.ISO,
		Status:        models.PhotoPending,
	}

	// Step 5: Write the blob first so a committed row always has its object
	var saga *UploadSaga
	if in.FileData != nil {
		photo.FileSize = int64(len(in.FileData))
		photo.FilePath = utils.PhotoObjectKey(competitionID, photo.ID, in.MimeType)

		saga = &UploadSaga{
			Store:       store,
			Key:         photo.FilePath,
			Data:        in.FileData,
			ContentType: in.MimeType,
			Metadata: map[string]string{
				"user_id":        userID,
				"competition_id": competitionID,
			},
		}
		start := time.Now()
		if err := saga.WriteBlob(ctx); err != nil {
			return nil, err
		}
		metrics.RecordStorageOperation("put", start)
	}

	// Step 6: Insert the row, re-verifying the invariants in the same
	// transaction while holding the slot lock
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := acquireSlotLock(tx, userID, categoryID); err != nil {
			return err
		}
		if err := checkQuota(tx, userID, categoryID, category.MaxPhotosPerUser); err != nil {
			return err
		}
		if err := checkDuplicateTitle(tx, userID, competitionID, categoryID, in.Title, ""); err != nil {
			return err
		}
		return tx.Create(photo).Error
	})
	if err != nil {
		if saga != nil {
			saga.Compensate(ctx)
		}
		if errors.Is(err, ErrQuotaExceeded) || errors.Is(err, ErrDuplicateTitle) {
			return nil, err
		}
		if isUniqueViolation(err) {
			return nil, ErrDuplicateTitle
		}
		log.Printf("photo insert failed for user %s: %v", userID, err)
		return nil, ErrPersistenceFailed
	}

	return photo, nil
}

// validateSubmission runs every gate check and collects all violations
func validateSubmission(in *SubmissionInput) error {
	fields := utils.ValidatePhotoMetadata(in.Title, in.Description, in.Location, in.DateTaken)

	if result := utils.ValidateMimeType(in.MimeType); !result.Valid {
		fields["mime_type"] = result.Error
	}

	if in.FileData != nil {
		if result := utils.ValidateFileSize(int64(len(in.FileData))); !result.Valid {
			fields["file_size"] = result.Error
		} else if width, height, err := utils.ProbeImage(in.FileData); err != nil {
			fields["file"] = err.Error()
		} else {
			in.Width = width
			in.Height = height
		}
	}

	if _, broken := fields["file"]; !broken {
		if result := utils.ValidateDimensions(in.Width, in.Height); !result.Valid {
			fields["dimensions"] = result.Error
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// checkQuota verifies the non-deleted photo count for (user, category) is below the cap
func checkQuota(db *gorm.DB, userID, categoryID string, maxPhotos int) error {
	var count int64
	err := db.Model(&models.Photo{}).
		Where("user_id = ? AND category_id = ? AND status <> ?", userID, categoryID, models.PhotoDeleted).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	if count >= int64(maxPhotos) {
		return ErrQuotaExceeded
	}
	return nil
}

// checkDuplicateTitle verifies no other non-deleted photo of the same user
// carries this title within the category
func checkDuplicateTitle(db *gorm.DB, userID, competitionID, categoryID, title, excludeID string) error {
	query := db.Model(&models.Photo{}).
		Where("user_id = ? AND competition_id = ? AND category_id = ? AND title = ? AND status <> ?",
			userID, competitionID, categoryID, title, models.PhotoDeleted)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	if count > 0 {
		return ErrDuplicateTitle
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// PhotoPatch carries the fields an owner may change on a pending submission
type PhotoPatch struct {
	Title        *string
	Description  *string
	Location     *string
	DateTaken    *time.Time
	CameraMake   *string
	CameraModel  *string
	Lens         *string
	FocalLength  *string
	Aperture     *string
	ShutterSpeed *string
	ISO          *int
}

// UpdatePhoto applies a metadata patch to the caller's own photo
func UpdatePhoto(db *gorm.DB, photoID, userID string, patch PhotoPatch) (*models.Photo, error) {
	var photo models.Photo
	if err := db.First(&photo, "id = ?", photoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	if photo.UserID != userID {
		return nil, ErrForbidden
	}
	if photo.Status == models.PhotoDeleted {
		return nil, ErrInvalidState
	}

	title := photo.Title
	if patch.Title != nil {
		title = *patch.Title
	}
	description := photo.Description
	if patch.Description != nil {
		description = *patch.Description
	}
	location := photo.Location
	if patch.Location != nil {
		location = *patch.Location
	}
	dateTaken := photo.DateTaken
	if patch.DateTaken != nil {
		dateTaken = patch.DateTaken
	}

	if fields := utils.ValidatePhotoMetadata(title, description, location, dateTaken); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	if patch.Title != nil && *patch.Title != photo.Title {
		if err := checkDuplicateTitle(db, userID, photo.CompetitionID, photo.CategoryID, *patch.Title, photo.ID); err != nil {
			return nil, err
		}
	}

	photo.Title = title
	photo.Description = description
	photo.Location = location
	photo.DateTaken = dateTaken
	if patch.CameraMake != nil {
		photo.CameraMake = patch.CameraMake
	}
	if patch.CameraModel != nil {
		photo.CameraModel = patch.CameraModel
	}
	if patch.Lens != nil {
		photo.Lens = patch.Lens
	}
	if patch.FocalLength != nil {
		photo.FocalLength = patch.FocalLength
	}
	if patch.Aperture != nil {
		photo.Aperture = patch.Aperture
	}
	if patch.ShutterSpeed != nil {
		photo.ShutterSpeed = patch.ShutterSpeed
	}
	if patch.ISO != nil {
		photo.ISO = patch.ISO
	}

	if err := db.Save(&photo).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateTitle
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return &photo, nil
}

// WithdrawPhoto soft-deletes the caller's own photo. The blob is retained and
// reclaimed by the out-of-band orphan sweep. Withdrawing an already withdrawn
// photo returns ErrInvalidState.
func WithdrawPhoto(db *gorm.DB, photoID, userID string) error {
	var photo models.Photo
	if err := db.First(&photo, "id = ?", photoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	if photo.UserID != userID {
		return ErrForbidden
	}
	if photo.Status == models.PhotoDeleted {
		return ErrInvalidState
	}

	if err := db.Model(&photo).Update("status", models.PhotoDeleted).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return nil
}

// Moderation actions
const (
	ModerationApprove = "approve"
	ModerationReject  = "reject"
	ModerationReset   = "reset"
)

// ModeratePhoto transitions a photo through the moderation state machine.
// Approve and reject only apply to pending photos; reset returns a moderated
// photo to pending and clears the moderation fields. The role gate is
// enforced by the caller.
func ModeratePhoto(db *gorm.DB, photoID, moderatorID, action string, reason *string) (*models.Photo, error) {
	var photo models.Photo
	if err := db.First(&photo, "id = ?", photoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	now := time.Now()
	switch action {
	case ModerationApprove:
		if photo.Status != models.PhotoPending {
			return nil, ErrInvalidState
		}
		photo.Status = models.PhotoApproved
		photo.ModeratedBy = &moderatorID
		photo.ModeratedAt = &now
		photo.RejectionReason = nil
	case ModerationReject:
		if photo.Status != models.PhotoPending {
			return nil, ErrInvalidState
		}
		if reason == nil || *reason == "" {
			return nil, &ValidationError{Fields: map[string]string{"reason": "a rejection reason is required"}}
		}
		photo.Status = models.PhotoRejected
		photo.ModeratedBy = &moderatorID
		photo.ModeratedAt = &now
		photo.RejectionReason = reason
	case ModerationReset:
		if photo.Status != models.PhotoApproved && photo.Status != models.PhotoRejected {
			return nil, ErrInvalidState
		}
		photo.Status = models.PhotoPending
		photo.ModeratedBy = nil
		photo.ModeratedAt = nil
		photo.RejectionReason = nil
	default:
		return nil, &ValidationError{Fields: map[string]string{"action": "action must be approve, reject or reset"}}
	}

	// Save with Select so clearing the moderation fields actually writes NULLs
	err := db.Model(&photo).
		Select("status", "moderated_by", "moderated_at", "rejection_reason").
		Updates(map[string]interface{}{
			"status":           photo.Status,
			"moderated_by":     photo.ModeratedBy,
			"moderated_at":     photo.ModeratedAt,
			"rejection_reason": photo.RejectionReason,
		}).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	metrics.ModerationActions.WithLabelValues(action).Inc()
	return &photo, nil
}
