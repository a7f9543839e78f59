package users

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to users
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	user := r.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/profile", GetUserProfile)
		user.PUT("/profile", UpdateUserProfile)
		user.PUT("/password", UpdateUserPassword)
	}

	admin := user.Group("")
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("", GetUsers)
		admin.PUT("/:id/block", ToggleBlockUser)
	}

	superadmin := user.Group("")
	superadmin.Use(middleware.SuperAdminMiddleware())
	{
		superadmin.PUT("/roles", UpdateUserRoles)
		superadmin.DELETE("/:id", DeleteUser)
	}
}
