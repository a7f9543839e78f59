package v1

import (
	"api/handlers/auth"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers routes for the authentication API
func RegisterAuthRoutes(r *gin.RouterGroup) {
	auth.RegisterRoutes(r)
}
