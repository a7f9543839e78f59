package reports

// Constants for error messages
const (
	ErrReportNotFound     = "Report not found"
	ErrPhotoNotFound      = "Photo not found"
	ErrInvalidRequest     = "Invalid request data"
	ErrInvalidReason      = "Invalid report reason"
	ErrInvalidStatus      = "Invalid report status"
	ErrAlreadyReviewed    = "This report has already been handled"
	ErrFailedCreateReport = "Failed to create report"
	ErrFailedFetchReports = "Failed to fetch reports"
	ErrFailedUpdateReport = "Failed to update report"
)

// CreateReportRequest models a user's complaint about a photo
type CreateReportRequest struct {
	PhotoID     string  `json:"photo_id" binding:"required"`
	Reason      string  `json:"reason" binding:"required"`
	Description *string `json:"description"`
}

// ReviewReportRequest models a moderator's decision on a report
type ReviewReportRequest struct {
	Status     string  `json:"status" binding:"required"`
	AdminNotes *string `json:"admin_notes"`
}
