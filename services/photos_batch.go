package services

import (
	"context"
	"errors"

	"api/models"
	"api/storage"

	"gorm.io/gorm"
)

// BatchItem is one submission inside a batch call
type BatchItem struct {
	CategoryID string
	Input      SubmissionInput
}

// BatchItemError reports why one item of a batch failed, keyed by its
// original index in the request
type BatchItemError struct {
	Index   int               `json:"index"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// BatchResult accumulates the per-item outcomes of a batch submission
type BatchResult struct {
	Submitted []*models.Photo  `json:"submitted"`
	Errors    []BatchItemError `json:"errors"`
}

// SubmitPhotoBatch applies SubmitPhoto to each item independently. One item's
// failure never aborts its siblings; callers inspect Errors to learn which
// indexes failed and why. There is deliberately no batch-wide transaction.
func SubmitPhotoBatch(ctx context.Context, db *gorm.DB, store storage.BlobStore, userID, competitionID string, items []BatchItem) BatchResult {
	result := BatchResult{
		Submitted: make([]*models.Photo, 0, len(items)),
		Errors:    make([]BatchItemError, 0),
	}

	for i, item := range items {
		photo, err := SubmitPhoto(ctx, db, store, userID, competitionID, item.CategoryID, item.Input)
		if err != nil {
			itemErr := BatchItemError{Index: i, Code: ErrorCode(err), Message: err.Error()}
			var ve *ValidationError
			if errors.As(err, &ve) {
				itemErr.Fields = ve.Fields
			}
			result.Errors = append(result.Errors, itemErr)
			continue
		}
		result.Submitted = append(result.Submitted, photo)
	}

	return result
}
