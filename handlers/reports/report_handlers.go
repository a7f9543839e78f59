package reports

import (
	"errors"
	"net/http"
	"time"

	"api/database"
	"api/middleware"
	"api/models"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var validReasons = map[string]bool{
	models.ReportInappropriate: true,
	models.ReportCopyright:     true,
	models.ReportSpam:          true,
	models.ReportOther:         true,
}

var validReviewStatuses = map[string]bool{
	models.ReportReviewed:  true,
	models.ReportResolved:  true,
	models.ReportDismissed: true,
}

// CreateReport files a complaint about a photo
// @Summary Report a photo
// @Tags Reports
// @Accept json
// @Produce json
// @Param request body CreateReportRequest true "Report"
// @Success 201 {object} models.Report
// @Failure 400,404,500 {object} map[string]string
// @Router /reports [post]
// @Security Bearer
func CreateReport(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}
	if !validReasons[req.Reason] {
		response.Error(c, http.StatusBadRequest, ErrInvalidReason)
		return
	}

	var photo models.Photo
	if err := database.DB.First(&photo, "id = ?", req.PhotoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrPhotoNotFound)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrFailedCreateReport)
		return
	}

	report := models.Report{
		UserID:      user.ID,
		PhotoID:     photo.ID,
		Reason:      req.Reason,
		Description: req.Description,
		Status:      models.ReportPending,
	}
	if err := database.DB.Create(&report).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedCreateReport)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// GetPendingReports lists reports awaiting review
// @Summary Get pending reports
// @Tags Reports
// @Produce json
// @Success 200 {array} models.Report
// @Failure 500 {object} map[string]string
// @Router /reports/pending [get]
// @Security Bearer
func GetPendingReports(c *gin.Context) {
	var reports []models.Report
	err := database.DB.Preload("User").Preload("Photo").Preload("Photo.User").
		Where("status = ?", models.ReportPending).
		Order("created_at ASC").
		Find(&reports).Error
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchReports)
		return
	}

	c.JSON(http.StatusOK, reports)
}

// ReviewReport transitions a pending report
// @Summary Review a report
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param request body ReviewReportRequest true "Decision"
// @Success 200 {object} models.Report
// @Failure 400,404,409,500 {object} map[string]string
// @Router /reports/{id} [put]
// @Security Bearer
func ReviewReport(c *gin.Context) {
	reviewer, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req ReviewReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}
	if !validReviewStatuses[req.Status] {
		response.Error(c, http.StatusBadRequest, ErrInvalidStatus)
		return
	}

	var report models.Report
	if err := database.DB.First(&report, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrReportNotFound)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchReports)
		return
	}
	if report.Status != models.ReportPending {
		response.Error(c, http.StatusConflict, ErrAlreadyReviewed)
		return
	}

	now := time.Now()
	report.Status = req.Status
	report.ReviewedBy = &reviewer.ID
	report.ReviewedAt = &now
	report.AdminNotes = req.AdminNotes

	if err := database.DB.Save(&report).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedUpdateReport)
		return
	}

	c.JSON(http.StatusOK, report)
}
