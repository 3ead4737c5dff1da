package seats

import (
	"github.com/gin-gonic/gin"
)

func SetupSeatRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - anyone can check availability before buying
	scheduleSeats := router.Group("/performances/:performanceId/schedules/:scheduleId/seats")
	{
		scheduleSeats.GET("", controller.GetAvailableSeats)           // GET /api/v1/performances/:performanceId/schedules/:scheduleId/seats?location=
		scheduleSeats.GET("/count", controller.GetAvailableSeatCount) // GET /api/v1/performances/:performanceId/schedules/:scheduleId/seats/count?location=
	}
}
