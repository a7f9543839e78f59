package photos

import (
	"net/http"
	"strconv"

	"api/database"
	"api/middleware"
	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// paginationFromQuery reads the limit/offset query parameters
func paginationFromQuery(c *gin.Context) services.Pagination {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return services.Pagination{Limit: limit, Offset: offset}
}

// GetPhoto returns a single photo
// @Summary Get a photo by id
// @Description Get a photo; unapproved photos are only visible to their owner and to admins
// @Tags Photos
// @Produce json
// @Param id path string true "Photo ID"
// @Success 200 {object} models.Photo
// @Failure 404 {object} map[string]string
// @Router /photos/{id} [get]
func GetPhoto(c *gin.Context) {
	photo, err := services.GetPhotoByID(database.DB, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Anything not approved is only visible to its owner and to admins
	if photo.Status != models.PhotoApproved {
		user := middleware.GetOptionalUser(c)
		if user == nil || (user.ID != photo.UserID && !user.IsAdmin()) {
			response.Error(c, http.StatusNotFound, ErrPhotoNotFound)
			return
		}
	}

	c.JSON(http.StatusOK, photo)
}

// GetPhotosByCategory lists the approved photos of a category
// @Summary Get approved photos of a category
// @Tags Photos
// @Produce json
// @Param category_id path string true "Category ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.Photo
// @Failure 500 {object} map[string]string
// @Router /photos/category/{category_id} [get]
func GetPhotosByCategory(c *gin.Context) {
	photos, err := services.ListPhotosByCategory(database.DB, c.Param("category_id"), paginationFromQuery(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchPhotos)
		return
	}

	c.JSON(http.StatusOK, photos)
}

// GetPhotosByCompetition lists the approved photos of a competition
// @Summary Get approved photos of a competition
// @Tags Photos
// @Produce json
// @Param competition_id path string true "Competition ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.Photo
// @Failure 500 {object} map[string]string
// @Router /photos/competition/{competition_id} [get]
func GetPhotosByCompetition(c *gin.Context) {
	photos, err := services.ListPhotosByCompetition(database.DB, c.Param("competition_id"), paginationFromQuery(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchPhotos)
		return
	}

	c.JSON(http.StatusOK, photos)
}

// GetUserSubmissions lists the caller's own submissions in any status
// @Summary Get own submissions
// @Tags Photos
// @Produce json
// @Param status query string false "Status filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.Photo
// @Failure 401 {object} map[string]string
// @Router /photos/user/submissions [get]
// @Security Bearer
func GetUserSubmissions(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	photos, err := services.ListUserSubmissions(database.DB, user.ID, c.Query("status"), paginationFromQuery(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchPhotos)
		return
	}

	c.JSON(http.StatusOK, photos)
}
