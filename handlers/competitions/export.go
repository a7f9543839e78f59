package competitions

import (
	"fmt"
	"net/http"

	"api/database"
	"api/models"
	"api/services"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportCompetitionResults exports the competition's approved photos, vote
// counts and winners as an Excel workbook
// @Summary Export competition results
// @Tags Competitions
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Competition ID"
// @Success 200 {file} binary
// @Failure 404,500 {object} map[string]string
// @Router /competitions/{id}/export [get]
// @Security Bearer
func ExportCompetitionResults(c *gin.Context) {
	var competition models.Competition
	if err := database.DB.Preload("Categories").First(&competition, "id = ?", c.Param("id")).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrCompetitionNotFound)
		return
	}

	var photos []models.Photo
	err := database.DB.Preload("User").Preload("Category").
		Where("competition_id = ? AND status = ?", competition.ID, models.PhotoApproved).
		Find(&photos).Error
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedExport)
		return
	}

	photoIDs := make([]string, 0, len(photos))
	for _, photo := range photos {
		photoIDs = append(photoIDs, photo.ID)
	}
	counts, err := services.GetVoteCounts(database.DB, photoIDs)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedExport)
		return
	}

	winners, err := services.ListCompetitionWinners(database.DB, competition.ID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedExport)
		return
	}

	xlsx := excelize.NewFile()
	defer xlsx.Close()

	sheet := "Photos"
	xlsx.SetSheetName("Sheet1", sheet)
	headers := []string{"Category", "Title", "Photographer", "Votes", "Status", "Submitted"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		xlsx.SetCellValue(sheet, cell, header)
	}
	for row, photo := range photos {
		categoryName := ""
		if photo.Category != nil {
			categoryName = photo.Category.Name
		}
		photographer := ""
		if photo.User != nil {
			photographer = fmt.Sprintf("%s %s", photo.User.Firstname, photo.User.Lastname)
		}
		values := []interface{}{categoryName, photo.Title, photographer, counts[photo.ID], photo.Status, photo.CreatedAt.Format("2006-01-02")}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			xlsx.SetCellValue(sheet, cell, value)
		}
	}

	winnersSheet := "Winners"
	xlsx.NewSheet(winnersSheet)
	for i, header := range []string{"Category", "Place", "Title", "Photographer"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		xlsx.SetCellValue(winnersSheet, cell, header)
	}
	for row, winner := range winners {
		categoryName := ""
		if winner.Category != nil {
			categoryName = winner.Category.Name
		}
		title := ""
		photographer := ""
		if winner.Photo != nil {
			title = winner.Photo.Title
			if winner.Photo.User != nil {
				photographer = fmt.Sprintf("%s %s", winner.Photo.User.Firstname, winner.Photo.User.Lastname)
			}
		}
		values := []interface{}{categoryName, winner.Place, title, photographer}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			xlsx.SetCellValue(winnersSheet, cell, value)
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", competition.Title+"-results.xlsx"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := xlsx.Write(c.Writer); err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedExport)
	}
}
