package winners

// Constants for error messages
const (
	ErrInvalidRequest      = "Invalid request data"
	ErrPhotoNotFound       = "Photo not found"
	ErrPhotoNotEligible    = "Only approved photos can win"
	ErrFailedSelectWinner  = "Failed to select winner"
	ErrFailedFetchWinners  = "Failed to fetch winners"
	ErrCompetitionNotFound = "Competition not found"
)

// SelectWinnerRequest awards a place to a photo within a category
type SelectWinnerRequest struct {
	CategoryID string `json:"category_id" binding:"required"`
	PhotoID    string `json:"photo_id" binding:"required"`
	Place      string `json:"place" binding:"required"`
}
