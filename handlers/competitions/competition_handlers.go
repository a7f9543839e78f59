package competitions

import (
	"errors"
	"net/http"

	"api/database"
	"api/models"
	"api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAllCompetitions lists every competition
// @Summary Get all competitions
// @Tags Competitions
// @Produce json
// @Success 200 {array} models.Competition
// @Failure 500 {object} map[string]string
// @Router /competitions [get]
func GetAllCompetitions(c *gin.Context) {
	var competitions []models.Competition
	if err := database.DB.Preload("Categories").Order("created_at DESC").Find(&competitions).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchCompetitions)
		return
	}

	c.JSON(http.StatusOK, competitions)
}

// GetActiveCompetition returns the single currently active competition
// @Summary Get the active competition
// @Tags Competitions
// @Produce json
// @Success 200 {object} models.Competition
// @Failure 404 {object} map[string]string
// @Router /competitions/active [get]
func GetActiveCompetition(c *gin.Context) {
	competition, err := services.GetActiveCompetition(database.DB)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchCompetitions)
		return
	}
	if competition == nil {
		respondWithError(c, http.StatusNotFound, ErrCompetitionNotFound)
		return
	}

	c.JSON(http.StatusOK, competition)
}

// GetCompetition returns one competition with its categories
// @Summary Get a competition by id
// @Tags Competitions
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {object} models.Competition
// @Failure 404 {object} map[string]string
// @Router /competitions/{id} [get]
func GetCompetition(c *gin.Context) {
	var competition models.Competition
	if err := database.DB.Preload("Categories").First(&competition, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(c, http.StatusNotFound, ErrCompetitionNotFound)
			return
		}
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchCompetitions)
		return
	}

	c.JSON(http.StatusOK, competition)
}

// CreateCompetition creates a new competition in draft status
// @Summary Create a competition
// @Tags Competitions
// @Accept json
// @Produce json
// @Param request body CreateCompetitionRequest true "Competition"
// @Success 201 {object} models.Competition
// @Failure 400,500 {object} map[string]string
// @Router /competitions [post]
// @Security Bearer
func CreateCompetition(c *gin.Context) {
	var req CreateCompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	competition := models.Competition{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      models.CompetitionDraft,
	}
	if err := database.DB.Create(&competition).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedCreateCompetition)
		return
	}

	c.JSON(http.StatusCreated, competition)
}

// UpdateCompetition updates a competition's descriptive fields
// @Summary Update a competition
// @Tags Competitions
// @Accept json
// @Produce json
// @Param id path string true "Competition ID"
// @Param request body UpdateCompetitionRequest true "Fields to change"
// @Success 200 {object} models.Competition
// @Failure 400,404,500 {object} map[string]string
// @Router /competitions/{id} [put]
// @Security Bearer
func UpdateCompetition(c *gin.Context) {
	var competition models.Competition
	if err := database.DB.First(&competition, "id = ?", c.Param("id")).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrCompetitionNotFound)
		return
	}

	var req UpdateCompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if req.Title != nil {
		competition.Title = *req.Title
	}
	if req.Description != nil {
		competition.Description = *req.Description
	}
	if req.StartDate != nil {
		competition.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		competition.EndDate = req.EndDate
	}

	if err := database.DB.Save(&competition).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdateCompetition)
		return
	}

	c.JSON(http.StatusOK, competition)
}

// ActivateCompetition makes this competition the single active one
// @Summary Activate a competition
// @Description Deactivates the currently active competition and activates this one in a single transaction
// @Tags Competitions
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {object} models.Competition
// @Failure 404,409,500 {object} map[string]string
// @Router /competitions/{id}/activate [put]
// @Security Bearer
func ActivateCompetition(c *gin.Context) {
	competition, err := services.ActivateCompetition(database.DB, c.Param("id"))
	if err != nil {
		respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, competition)
}

// DeactivateCompetition takes the competition offline
// @Summary Deactivate a competition
// @Tags Competitions
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {object} models.Competition
// @Failure 404,409,500 {object} map[string]string
// @Router /competitions/{id}/deactivate [put]
// @Security Bearer
func DeactivateCompetition(c *gin.Context) {
	competition, err := services.DeactivateCompetition(database.DB, c.Param("id"))
	if err != nil {
		respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, competition)
}

// CompleteCompetition marks the competition as finished
// @Summary Complete a competition
// @Tags Competitions
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {object} models.Competition
// @Failure 404,409,500 {object} map[string]string
// @Router /competitions/{id}/complete [put]
// @Security Bearer
func CompleteCompetition(c *gin.Context) {
	competition, err := services.CompleteCompetition(database.DB, c.Param("id"))
	if err != nil {
		respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, competition)
}

// DeleteCompetition removes a competition and cascades to its categories and photos
// @Summary Delete a competition
// @Tags Competitions
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {object} map[string]string
// @Failure 404,500 {object} map[string]string
// @Router /competitions/{id} [delete]
// @Security Bearer
func DeleteCompetition(c *gin.Context) {
	var competition models.Competition
	if err := database.DB.First(&competition, "id = ?", c.Param("id")).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrCompetitionNotFound)
		return
	}

	if err := database.DB.Select("Categories", "Photos").Delete(&competition).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedDeleteCompetition)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Competition deleted"})
}

func respondTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondWithError(c, http.StatusNotFound, ErrCompetitionNotFound)
	case errors.Is(err, services.ErrInvalidState):
		respondWithError(c, http.StatusConflict, ErrInvalidTransition)
	default:
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdateCompetition)
	}
}
