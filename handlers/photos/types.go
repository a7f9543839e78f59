package photos

import (
	"time"
)

// Constants for error messages
const (
	ErrPhotoNotFound       = "Photo not found"
	ErrCategoryNotFound    = "Category not found"
	ErrNotOwner            = "You do not own this photo"
	ErrInvalidRequest      = "Invalid request data"
	ErrQuotaExceeded       = "You have reached the submission limit for this category"
	ErrDuplicateTitle      = "You already have a photo with this title in this category"
	ErrStorageWriteFailed  = "Failed to store the uploaded file"
	ErrPersistenceFailed   = "Failed to save the submission"
	ErrInvalidPhotoState   = "This photo cannot be changed in its current state"
	ErrFailedFetchPhotos   = "Failed to fetch photos"
	ErrFileMissing         = "A photo file is required"
	ErrFileTooLarge        = "The uploaded file exceeds the size limit"
)

// SubmitPhotoRequest models the metadata part of a submission. The binary
// content arrives as the multipart "photo" file; metadata-only submissions
// (pre-uploaded files) supply width and height directly.
type SubmitPhotoRequest struct {
	CompetitionID string     `json:"competition_id" form:"competition_id" binding:"required"`
	CategoryID    string     `json:"category_id" form:"category_id" binding:"required"`
	Title         string     `json:"title" form:"title" binding:"required"`
	Description   string     `json:"description" form:"description" binding:"required"`
	Location      string     `json:"location" form:"location" binding:"required"`
	DateTaken     *time.Time `json:"date_taken" form:"date_taken" time_format:"2006-01-02T15:04:05Z07:00"`
	CameraMake    *string    `json:"camera_make" form:"camera_make"`
	CameraModel   *string    `json:"camera_model" form:"camera_model"`
	Lens          *string    `json:"lens" form:"lens"`
	FocalLength   *string    `json:"focal_length" form:"focal_length"`
	Aperture      *string    `json:"aperture" form:"aperture"`
	ShutterSpeed  *string    `json:"shutter_speed" form:"shutter_speed"`
	ISO           *int       `json:"iso" form:"iso"`
	MimeType      string     `json:"mime_type" form:"mime_type"`
	Width         int        `json:"width" form:"width"`
	Height        int        `json:"height" form:"height"`
}

// BatchSubmitItem is one entry of a batch submission
type BatchSubmitItem struct {
	CategoryID   string     `json:"category_id" binding:"required"`
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description" binding:"required"`
	Location     string     `json:"location" binding:"required"`
	DateTaken    *time.Time `json:"date_taken"`
	CameraMake   *string    `json:"camera_make"`
	CameraModel  *string    `json:"camera_model"`
	Lens         *string    `json:"lens"`
	FocalLength  *string    `json:"focal_length"`
	Aperture     *string    `json:"aperture"`
	ShutterSpeed *string    `json:"shutter_speed"`
	ISO          *int       `json:"iso"`
	MimeType     string     `json:"mime_type" binding:"required"`
	Width        int        `json:"width"`
	Height       int        `json:"height"`
}

// BatchSubmitRequest models a metadata-only batch submission
type BatchSubmitRequest struct {
	CompetitionID string            `json:"competition_id" binding:"required"`
	Items         []BatchSubmitItem `json:"items" binding:"required"`
}

// UpdatePhotoRequest models a partial metadata update
type UpdatePhotoRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Location     *string    `json:"location"`
	DateTaken    *time.Time `json:"date_taken"`
	CameraMake   *string    `json:"camera_make"`
	CameraModel  *string    `json:"camera_model"`
	Lens         *string    `json:"lens"`
	FocalLength  *string    `json:"focal_length"`
	Aperture     *string    `json:"aperture"`
	ShutterSpeed *string    `json:"shutter_speed"`
	ISO          *int       `json:"iso"`
}

// ModerateRequest models a moderation decision
type ModerateRequest struct {
	Action string  `json:"action" binding:"required"`
	Reason *string `json:"reason"`
}
