package competitions

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrCompetitionNotFound     = "Competition not found"
	ErrCategoryNotFound        = "Category not found"
	ErrInvalidRequest          = "Invalid request data"
	ErrFailedFetchCompetitions = "Failed to fetch competitions"
	ErrFailedCreateCompetition = "Failed to create competition"
	ErrFailedUpdateCompetition = "Failed to update competition"
	ErrFailedDeleteCompetition = "Failed to delete competition"
	ErrFailedCreateCategory    = "Failed to create category"
	ErrFailedUpdateCategory    = "Failed to update category"
	ErrFailedDeleteCategory    = "Failed to delete category"
	ErrDuplicateCategoryName   = "A category with this name already exists in this competition"
	ErrInvalidTransition       = "Competition cannot transition from its current status"
	ErrFailedExport            = "Failed to export competition results"
)

// CreateCompetitionRequest models a competition creation
type CreateCompetitionRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// UpdateCompetitionRequest models a competition update
type UpdateCompetitionRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// CreateCategoryRequest models a category creation inside a competition
type CreateCategoryRequest struct {
	Name             string `json:"name" binding:"required"`
	MaxPhotosPerUser int    `json:"max_photos_per_user" binding:"required,gt=0"`
}

// UpdateCategoryRequest models a category update
type UpdateCategoryRequest struct {
	Name             *string `json:"name"`
	MaxPhotosPerUser *int    `json:"max_photos_per_user"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
