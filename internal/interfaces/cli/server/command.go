// Package server implements the `server` CLI command: configuration,
// database, notification dispatcher, and the HTTP server with graceful
// shutdown.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"aster/internal/application/notification"
	"aster/internal/infrastructure/config"
	"aster/internal/infrastructure/database"
	"aster/internal/infrastructure/email"
	"aster/internal/infrastructure/persistence/models"
	"aster/internal/infrastructure/repository"
	"aster/internal/infrastructure/webhook"
	httpRouter "aster/internal/interfaces/http"
	"aster/internal/shared/biztime"
	"aster/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Aster HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	biztime.MustInit(cfg.App.Timezone)

	logger.Info("starting server", "environment", env)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	if autoMigrate {
		if env == "production" {
			logger.Warn("auto-migration is enabled in production environment - this is not recommended!")
		}
		if err := database.Get().AutoMigrate(
			&models.TicketModel{},
			&models.TicketCommentModel{},
			&models.UserModel{},
		); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		logger.Info("auto-migration completed")
	}

	log := logger.NewLogger()

	dispatcher := notification.NewDispatcher(100, log.Named("dispatcher"))
	dispatcher.Register(buildAdminNotifier(cfg, log))
	if err := dispatcher.Start(); err != nil {
		return fmt.Errorf("failed to start notification dispatcher: %w", err)
	}
	defer func() {
		if err := dispatcher.Stop(); err != nil {
			logger.Error("failed to stop notification dispatcher", "error", err)
		}
	}()
	logger.Info("notification dispatcher started")

	router := httpRouter.NewRouter(database.Get(), cfg, dispatcher, log)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func buildAdminNotifier(cfg *config.Config, log logger.Interface) *notification.AdminNotifier {
	mailer := email.NewTicketMailer(email.SMTPConfig{
		Host:        cfg.Email.Host,
		Port:        cfg.Email.Port,
		Username:    cfg.Email.Username,
		Password:    cfg.Email.Password,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.App.BaseURL,
		AppName:     cfg.App.Name,
	})

	pusher := webhook.NewServerChanPusher(webhook.ServerChanConfig{
		BaseURL: cfg.Webhook.BaseURL,
		Key:     cfg.Webhook.Key,
	})

	return notification.NewAdminNotifier(
		repository.NewAdminRepository(database.Get()),
		mailer,
		pusher,
		notification.Config{
			AppName:        cfg.App.Name,
			MailEnabled:    cfg.Ticket.NotifyAdmins,
			WebhookEnabled: cfg.Webhook.Enabled && cfg.Webhook.Key != "",
		},
		log.Named("admin-notifier"),
	)
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
