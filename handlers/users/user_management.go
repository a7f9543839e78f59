package users

import (
	"errors"
	"net/http"

	"api/database"
	"api/middleware"
	"api/models"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetUsers retrieves all registered users
// @Summary Get all users
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Failure 401,500 {object} map[string]string
// @Router /user [get]
// @Security Bearer
func GetUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Preload("Roles").Order("created_at DESC").Find(&users).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToGetUsers)
		return
	}

	// Hide passwords in response
	for i := range users {
		users[i].Password = ""
	}

	c.JSON(http.StatusOK, users)
}

// ToggleBlockUser flips the blocked flag of a user
// @Summary Toggle block status
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 400,401,404,500 {object} map[string]string
// @Router /user/{id}/block [put]
// @Security Bearer
func ToggleBlockUser(c *gin.Context) {
	admin, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	targetID := c.Param("id")
	if targetID == admin.ID {
		response.Error(c, http.StatusBadRequest, ErrCannotBlockSelf)
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrUserNotFound)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrFailedToGetUsers)
		return
	}

	user.Blocked = !user.Blocked
	if err := database.DB.Model(&user).Update("blocked", user.Blocked).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToUpdateUser)
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, user)
}

// UpdateUserRoles replaces the role set of a user
// @Summary Update user roles
// @Tags Users
// @Accept json
// @Produce json
// @Param request body UserIdWithRoles true "User with role names"
// @Success 200 {object} models.User
// @Failure 400,401,404,500 {object} map[string]string
// @Router /user/roles [put]
// @Security Bearer
func UpdateUserRoles(c *gin.Context) {
	var req UserIdWithRoles
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrUserNotFound)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrFailedToGetUsers)
		return
	}

	var roles []*models.Role
	if err := database.DB.Where("name IN ?", req.Roles).Find(&roles).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToUpdateRoles)
		return
	}
	if len(roles) != len(req.Roles) {
		response.Error(c, http.StatusBadRequest, ErrRoleNotFound)
		return
	}

	if err := database.DB.Model(&user).Association("Roles").Replace(roles); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedAssociationRoles)
		return
	}

	user.Roles = roles
	user.Password = ""
	c.JSON(http.StatusOK, user)
}

// DeleteUser removes a user account
// @Summary Delete a user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 400,401,404,500 {object} map[string]string
// @Router /user/{id} [delete]
// @Security Bearer
func DeleteUser(c *gin.Context) {
	admin, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	targetID := c.Param("id")
	if targetID == admin.ID {
		response.Error(c, http.StatusBadRequest, ErrCannotDeleteSelf)
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, ErrUserNotFound)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrFailedToGetUsers)
		return
	}

	if err := database.DB.Model(&user).Association("Roles").Clear(); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedAssociationRoles)
		return
	}
	if err := database.DB.Delete(&user).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToDeleteUser)
		return
	}

	response.Message(c, http.StatusOK, "User deleted successfully")
}
