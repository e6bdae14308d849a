// Package http wires the handlers, middleware, and routes into a gin engine.
package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentUsecases "aster/internal/application/payment/usecases"
	ticketUsecases "aster/internal/application/ticket/usecases"
	"aster/internal/infrastructure/config"
	"aster/internal/infrastructure/payment"
	"aster/internal/infrastructure/repository"
	"aster/internal/interfaces/http/handlers"
	"aster/internal/interfaces/http/routes"
	"aster/internal/shared/db"
	"aster/internal/shared/logger"
	"aster/internal/shared/sanitize"
)

// Router holds the configured gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter builds the full HTTP surface: ticket CRUD plus the payment
// checkout and callback endpoints.
func NewRouter(
	gdb *gorm.DB,
	cfg *config.Config,
	publisher ticketUsecases.EventPublisher,
	log logger.Interface,
) *Router {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	ticketRepo := repository.NewTicketRepository(gdb)
	txMgr := db.NewTransactionManager(gdb)
	sanitizer := sanitize.NewStrict()

	ticketHandler := handlers.NewTicketHandler(
		ticketUsecases.NewCreateTicketUseCase(ticketRepo, sanitizer, publisher, log),
		ticketUsecases.NewReplyTicketUseCase(ticketRepo, sanitizer, txMgr, publisher, log),
		ticketUsecases.NewListTicketsUseCase(ticketRepo, log),
		ticketUsecases.NewGetTicketUseCase(ticketRepo, log),
		log,
	)

	gateway := payment.NewTHeadPayGateway(&cfg.Payment.THeadPay)
	paymentHandler := handlers.NewPaymentHandler(
		paymentUsecases.NewPayOrderUseCase(
			gateway,
			cfg.Payment.THeadPay.NotifyURL,
			cfg.Payment.THeadPay.ReturnURL,
			log,
		),
		paymentUsecases.NewHandleCallbackUseCase(gateway, log),
		log,
	)

	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler: ticketHandler,
	})
	routes.SetupPaymentRoutes(engine, &routes.PaymentRouteConfig{
		PaymentHandler: paymentHandler,
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
