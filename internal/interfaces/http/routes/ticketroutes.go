package routes

import (
	"github.com/gin-gonic/gin"

	"aster/internal/interfaces/http/handlers"
	"aster/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler *handlers.TicketHandler
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(middleware.RequireIdentity())
	{
		tickets.GET("", config.TicketHandler.ListTickets)
		tickets.POST("", config.TicketHandler.CreateTicket)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.POST("/:id/reply", config.TicketHandler.ReplyTicket)
	}
}
