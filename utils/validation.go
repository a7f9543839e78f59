package utils

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"time"
	"unicode/utf8"

	"api/config"
)

// ValidationResult is the outcome of a single validation check
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func valid() ValidationResult {
	return ValidationResult{Valid: true}
}

func invalid(format string, args ...interface{}) ValidationResult {
	return ValidationResult{Valid: false, Error: fmt.Sprintf(format, args...)}
}

// ValidateMimeType checks that the content type is an accepted image format
func ValidateMimeType(mimeType string) ValidationResult {
	for _, allowed := range config.DefaultUploadLimits.AllowedMimeTypes {
		if mimeType == allowed {
			return valid()
		}
	}
	return invalid("unsupported file type %q, allowed types are image/jpeg and image/png", mimeType)
}

// ValidateFileSize checks that the file does not exceed the upload size limit
func ValidateFileSize(size int64) ValidationResult {
	if size <= 0 {
		return invalid("file is empty")
	}
	if size > config.DefaultUploadLimits.MaxFileSize {
		return invalid("file size %d exceeds the maximum of %d bytes", size, config.DefaultUploadLimits.MaxFileSize)
	}
	return valid()
}

// ValidateDimensions checks that the photo meets the minimum resolution
func ValidateDimensions(width, height int) ValidationResult {
	limits := config.DefaultUploadLimits
	if width < limits.MinWidth || height < limits.MinHeight {
		return invalid("image is %dx%d, minimum resolution is %dx%d", width, height, limits.MinWidth, limits.MinHeight)
	}
	return valid()
}

// ValidatePhotoMetadata checks the textual metadata of a submission.
// It returns a map of field name to error message, empty when everything passes.
func ValidatePhotoMetadata(title, description, location string, dateTaken *time.Time) map[string]string {
	limits := config.DefaultUploadLimits
	errors := make(map[string]string)

	// Limits count characters, not bytes, so multibyte text is measured in runes
	if n := utf8.RuneCountInString(title); n < limits.TitleMinLength || n > limits.TitleMaxLength {
		errors["title"] = fmt.Sprintf("title must be between %d and %d characters", limits.TitleMinLength, limits.TitleMaxLength)
	}
	if n := utf8.RuneCountInString(description); n < limits.DescriptionMinLength || n > limits.DescriptionMaxLength {
		errors["description"] = fmt.Sprintf("description must be between %d and %d characters", limits.DescriptionMinLength, limits.DescriptionMaxLength)
	}
	if n := utf8.RuneCountInString(location); n < limits.LocationMinLength || n > limits.LocationMaxLength {
		errors["location"] = fmt.Sprintf("location must be between %d and %d characters", limits.LocationMinLength, limits.LocationMaxLength)
	}
	if dateTaken != nil && dateTaken.After(time.Now()) {
		errors["date_taken"] = "date taken cannot be in the future"
	}

	return errors
}

// ProbeImage decodes the image header and returns the actual pixel dimensions
func ProbeImage(data []byte) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("could not decode image: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}
