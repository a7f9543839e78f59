package winners

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to winners
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	winners := r.Group("/winners")

	// Public routes
	winners.GET("/competition/:id", GetCompetitionWinners)

	admin := winners.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("", SelectWinner)
	}
}
