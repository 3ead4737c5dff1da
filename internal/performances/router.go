package performances

import (
	"github.com/gin-gonic/gin"
)

func SetupPerformanceRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - anyone can browse the repertoire
	performances := router.Group("/performances")
	{
		performances.GET("", controller.GetAllPerformances)            // GET /api/v1/performances
		performances.GET("/:performanceId", controller.GetPerformance) // GET /api/v1/performances/:performanceId
	}
}
