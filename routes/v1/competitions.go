package v1

import (
	"api/handlers/competitions"

	"github.com/gin-gonic/gin"
)

// RegisterCompetitionsRoutes registers routes for the competitions API
func RegisterCompetitionsRoutes(r *gin.RouterGroup) {
	competitions.RegisterRoutes(r)
}
