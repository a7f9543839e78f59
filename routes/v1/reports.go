package v1

import (
	"api/handlers/reports"

	"github.com/gin-gonic/gin"
)

// RegisterReportsRoutes registers routes for the reports API
func RegisterReportsRoutes(r *gin.RouterGroup) {
	reports.RegisterRoutes(r)
}
