package tickets

import (
	"github.com/gin-gonic/gin"
)

func SetupTicketRoutes(router *gin.RouterGroup, controller Controller) {
	tickets := router.Group("/tickets")
	{
		tickets.GET("", controller.GetTicketsByStatus)            // GET /api/v1/tickets?status=
		tickets.GET("/:ticketId", controller.GetTicket)           // GET /api/v1/tickets/:ticketId
		tickets.POST("", controller.BuyTicket)                    // POST /api/v1/tickets
		tickets.PUT("/:ticketId/return", controller.ReturnTicket) // PUT /api/v1/tickets/:ticketId/return
		tickets.DELETE("/:ticketId", controller.DeleteTicket)     // DELETE /api/v1/tickets/:ticketId
	}
}
