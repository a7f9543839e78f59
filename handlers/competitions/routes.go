package competitions

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to competitions
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	competitions := r.Group("/competitions")

	// Public routes
	competitions.GET("", GetAllCompetitions)
	competitions.GET("/active", GetActiveCompetition)
	competitions.GET("/:id", GetCompetition)
	competitions.GET("/:id/categories", GetCompetitionCategories)
	competitions.GET("/:id/live", CompetitionWebSocket)

	admin := competitions.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		// Competition management routes
		admin.POST("", CreateCompetition)
		admin.PUT("/:id", UpdateCompetition)
		admin.PUT("/:id/activate", ActivateCompetition)
		admin.PUT("/:id/deactivate", DeactivateCompetition)
		admin.PUT("/:id/complete", CompleteCompetition)
		admin.DELETE("/:id", DeleteCompetition)

		// Category management routes
		admin.POST("/:id/categories", CreateCategory)
		admin.PUT("/:id/categories/:category_id", UpdateCategory)
		admin.DELETE("/:id/categories/:category_id", DeleteCategory)

		// Results export
		admin.GET("/:id/export", ExportCompetitionResults)
	}
}
