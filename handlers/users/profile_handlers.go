package users

import (
	"net/http"

	"api/database"
	"api/middleware"
	"api/models"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// GetUserProfile retrieves the authenticated user's profile
// @Summary Get User Profile
// @Description Get the profile information of the authenticated user
// @Tags Users
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /user/profile [get]
// @Security Bearer
func GetUserProfile(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	// Hide password from response for security
	user.Password = ""

	c.JSON(http.StatusOK, user)
}

// UpdateUserProfile updates the authenticated user's profile
// @Summary Update User Profile
// @Description Update the profile information of the authenticated user
// @Tags Users
// @Accept json
// @Produce json
// @Param user body models.User true "User Profile"
// @Success 200 {object} models.User
// @Failure 400,401,500 {object} map[string]string
// @Router /user/profile [put]
// @Security Bearer
func UpdateUserProfile(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var userUpdate models.User
	if err := c.ShouldBindJSON(&userUpdate); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if userUpdate.Email == "" || userUpdate.Firstname == "" || userUpdate.Lastname == "" {
		response.Error(c, http.StatusBadRequest, "Email, first name, and last name are required")
		return
	}

	// Update only allowed fields
	updatedFields := map[string]interface{}{
		"email":     userUpdate.Email,
		"firstname": userUpdate.Firstname,
		"lastname":  userUpdate.Lastname,
	}
	if err := database.DB.Model(&user).Updates(updatedFields).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToUpdateUser)
		return
	}

	var updatedUser models.User
	if err := database.DB.Preload("Roles").First(&updatedUser, "id = ?", user.ID).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToGetUsers)
		return
	}
	updatedUser.Password = ""

	c.JSON(http.StatusOK, updatedUser)
}

// UpdateUserPassword changes the authenticated user's password
// @Summary Update User Password
// @Description Change the password of the authenticated user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body PasswordUpdate true "Password update"
// @Success 200 {object} map[string]string
// @Failure 400,401,500 {object} map[string]string
// @Router /user/password [put]
// @Security Bearer
func UpdateUserPassword(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var passwordUpdate PasswordUpdate
	if err := c.ShouldBindJSON(&passwordUpdate); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if !utils.CheckPasswordHash(passwordUpdate.CurrentPassword, user.Password) {
		response.Error(c, http.StatusBadRequest, ErrWrongCurrentPassword)
		return
	}

	hashedPassword, err := utils.HashPassword(passwordUpdate.NewPassword)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToHashPassword)
		return
	}

	if err := database.DB.Model(&user).Update("password", hashedPassword).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToUpdateUser)
		return
	}

	response.Message(c, http.StatusOK, "Password updated successfully")
}
