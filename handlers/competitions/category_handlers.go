package competitions

import (
	"net/http"
	"strings"

	"api/database"
	"api/models"

	"github.com/gin-gonic/gin"
)

// GetCompetitionCategories lists the categories of a competition
// @Summary Get the categories of a competition
// @Tags Competitions
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {array} models.Category
// @Failure 404 {object} map[string]string
// @Router /competitions/{id}/categories [get]
func GetCompetitionCategories(c *gin.Context) {
	var competition models.Competition
	if err := database.DB.First(&competition, "id = ?", c.Param("id")).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrCompetitionNotFound)
		return
	}

	var categories []models.Category
	if err := database.DB.Where("competition_id = ?", competition.ID).Order("name").Find(&categories).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchCompetitions)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory adds a category to a competition
// @Summary Create a category
// @Tags Competitions
// @Accept json
// @Produce json
// @Param id path string true "Competition ID"
// @Param request body CreateCategoryRequest true "Category"
// @Success 201 {object} models.Category
// @Failure 400,404,409,500 {object} map[string]string
// @Router /competitions/{id}/categories [post]
// @Security Bearer
func CreateCategory(c *gin.Context) {
	var competition models.Competition
	if err := database.DB.First(&competition, "id = ?", c.Param("id")).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrCompetitionNotFound)
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	category := models.Category{
		CompetitionID:    competition.ID,
		Name:             req.Name,
		MaxPhotosPerUser: req.MaxPhotosPerUser,
	}
	if err := database.DB.Create(&category).Error; err != nil {
		if isUniqueViolation(err) {
			respondWithError(c, http.StatusConflict, ErrDuplicateCategoryName)
			return
		}
		respondWithError(c, http.StatusInternalServerError, ErrFailedCreateCategory)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// UpdateCategory changes a category's name or quota
// @Summary Update a category
// @Tags Competitions
// @Accept json
// @Produce json
// @Param id path string true "Competition ID"
// @Param category_id path string true "Category ID"
// @Param request body UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} models.Category
// @Failure 400,404,409,500 {object} map[string]string
// @Router /competitions/{id}/categories/{category_id} [put]
// @Security Bearer
func UpdateCategory(c *gin.Context) {
	var category models.Category
	err := database.DB.Where("id = ? AND competition_id = ?", c.Param("category_id"), c.Param("id")).First(&category).Error
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrCategoryNotFound)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.MaxPhotosPerUser != nil {
		if *req.MaxPhotosPerUser <= 0 {
			respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
			return
		}
		category.MaxPhotosPerUser = *req.MaxPhotosPerUser
	}

	if err := database.DB.Save(&category).Error; err != nil {
		if isUniqueViolation(err) {
			respondWithError(c, http.StatusConflict, ErrDuplicateCategoryName)
			return
		}
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdateCategory)
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory removes a category and its photos
// @Summary Delete a category
// @Tags Competitions
// @Produce json
// @Param id path string true "Competition ID"
// @Param category_id path string true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 404,500 {object} map[string]string
// @Router /competitions/{id}/categories/{category_id} [delete]
// @Security Bearer
func DeleteCategory(c *gin.Context) {
	var category models.Category
	err := database.DB.Where("id = ? AND competition_id = ?", c.Param("category_id"), c.Param("id")).First(&category).Error
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrCategoryNotFound)
		return
	}

	if err := database.DB.Select("Photos").Delete(&category).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedDeleteCategory)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
