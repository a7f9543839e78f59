package v1

import (
	"api/handlers/photos"

	"github.com/gin-gonic/gin"
)

// RegisterPhotosRoutes registers routes for the photos API
func RegisterPhotosRoutes(r *gin.RouterGroup) {
	photos.RegisterRoutes(r)
}
