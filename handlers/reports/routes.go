package reports

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to reports
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.POST("", CreateReport)
	}

	admin := reports.Group("")
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/pending", GetPendingReports)
		admin.PUT("/:id", ReviewReport)
	}
}
