package votes

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to votes
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	votes := r.Group("/votes")

	// Public vote counts
	votes.GET("/photo/:photo_id", GetPhotoVotes)
	votes.POST("/counts", GetVoteCounts)

	authenticated := votes.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		authenticated.POST("/:photo_id", Vote)
		authenticated.DELETE("/:photo_id", Unvote)
		authenticated.GET("/user", GetUserVotes)
		authenticated.GET("/category/:category_id", GetCategoryVote)
	}
}
