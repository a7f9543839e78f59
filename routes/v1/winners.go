package v1

import (
	"api/handlers/winners"

	"github.com/gin-gonic/gin"
)

// RegisterWinnersRoutes registers routes for the winners API
func RegisterWinnersRoutes(r *gin.RouterGroup) {
	winners.RegisterRoutes(r)
}
