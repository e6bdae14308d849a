package routes

import (
	"github.com/gin-gonic/gin"

	"aster/internal/interfaces/http/handlers"
	"aster/internal/interfaces/http/middleware"
)

type PaymentRouteConfig struct {
	PaymentHandler *handlers.PaymentHandler
}

func SetupPaymentRoutes(engine *gin.Engine, config *PaymentRouteConfig) {
	payment := engine.Group("/payment")
	{
		// The notify endpoint is called by the gateway, not a user; the
		// callback authenticates itself via its signature.
		payment.POST("/theadpay/notify", config.PaymentHandler.Notify)

		payment.POST("/checkout",
			middleware.RequireIdentity(),
			config.PaymentHandler.Checkout)
	}
}
