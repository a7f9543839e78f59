package v1

import (
	"api/handlers/votes"

	"github.com/gin-gonic/gin"
)

// RegisterVotesRoutes registers routes for the votes API
func RegisterVotesRoutes(r *gin.RouterGroup) {
	votes.RegisterRoutes(r)
}
