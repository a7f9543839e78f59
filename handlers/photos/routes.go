package photos

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to photos
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	photos := r.Group("/photos")

	// Public routes; the optional identity lets owners see their own unapproved photos
	photos.GET("/serve/*key", ServePhotoFile)
	photos.GET("/category/:category_id", GetPhotosByCategory)
	photos.GET("/competition/:competition_id", GetPhotosByCompetition)
	photos.GET("/:id", middleware.SetUserIdMiddleware(), GetPhoto)

	authenticated := photos.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		authenticated.POST("", SubmitPhoto)
		authenticated.POST("/batch", SubmitPhotoBatch)
		authenticated.PUT("/:id", UpdatePhoto)
		authenticated.DELETE("/:id", WithdrawPhoto)
		authenticated.GET("/user/submissions", GetUserSubmissions)
	}

	admin := photos.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/moderation", GetPhotosForModeration)
		admin.PUT("/:id/moderate", ModeratePhoto)
		admin.GET("/admin/all", GetAllPhotosForAdmin)
	}

	superadmin := photos.Group("")
	superadmin.Use(middleware.AuthMiddleware(), middleware.SuperAdminMiddleware())
	{
		superadmin.POST("/admin/sweep", SweepOrphanFiles)
	}
}
