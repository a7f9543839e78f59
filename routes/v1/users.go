package v1

import (
	"api/handlers/users"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers routes for the users API
func RegisterUserRoutes(r *gin.RouterGroup) {
	users.RegisterRoutes(r)
}
