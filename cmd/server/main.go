package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/spf13/cobra"

	_ "github.com/pubnicaragua/investi-documentacion2/docs" // swagger docs
	"github.com/pubnicaragua/investi-documentacion2/internal/chatbot"
	"github.com/pubnicaragua/investi-documentacion2/internal/config"
	"github.com/pubnicaragua/investi-documentacion2/internal/handler"
	"github.com/pubnicaragua/investi-documentacion2/internal/infrastructure/sendgrid"
	"github.com/pubnicaragua/investi-documentacion2/internal/infrastructure/supabase"
	"github.com/pubnicaragua/investi-documentacion2/internal/router"
	"github.com/pubnicaragua/investi-documentacion2/internal/usecase"
	"github.com/pubnicaragua/investi-documentacion2/pkg/logger"
)

//	@title			Investi Landing API
//	@version		0.1.0
//	@description	Lead capture, admin dashboard and scripted-assistant API for the Investi landing page
//	@contact.name	API Support
//	@contact.email	soporte@investi.app

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT Token in format: Bearer {token}

var (
	cfgFile string
	version = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "investi-server",
	Short: "Investi landing-page API server",
	Long: `Investi landing-page API server built with the Hertz framework.
It captures beta registrations, serves the admin dashboard and answers
the landing-page assistant.`,
	Version: version,
	Run:     runServer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "configs/config.yaml", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	// Load configuration
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Setup(cfg.Log); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	slog.Info("config loaded successfully", "config_file", cfgFile)
	slog.Info("Investi API server starting...",
		"version", version,
		"config", cfgFile,
	)

	// Setup Hertz to use slog
	hertzLogger := logger.NewHertzSlogAdapter(slog.Default())
	hlog.SetLogger(hertzLogger)
	hlog.SetLevel(hlog.LevelDebug)

	// The server holds no user session; privileged reads use the service key
	supaClient, err := supabase.NewClient(
		cfg.Supabase,
		supabase.NewMemoryStore(),
		slog.Default(),
		supabase.WithStaticToken(cfg.Supabase.ServiceKey),
	)
	if err != nil {
		slog.Error("failed to create storage client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := supaClient.Ping(ctx); err != nil {
		slog.Warn("storage health check failed, service may not work properly", "error", err)
	}

	// Initialize lead components
	notifier, err := sendgrid.NewNotifier(cfg.SendGrid, slog.Default())
	if err != nil {
		slog.Error("failed to create lead notifier", "error", err)
		os.Exit(1)
	}
	if !notifier.Enabled() {
		slog.Warn("lead notifications disabled, no sendgrid api key configured")
	}

	leadRepo := supabase.NewLeadRepository(supaClient)
	leadUsecase := usecase.NewLeadUsecase(leadRepo, notifier, slog.Default())
	leadHandler := handler.NewLeadHandler(leadUsecase, slog.Default())

	// Initialize chat components
	matcher := chatbot.NewMatcher(
		chatbot.WithDelay(cfg.Chat.BaseDelay, cfg.Chat.DelayJitter),
	)
	chatUsecase := usecase.NewChatUsecase(matcher, slog.Default())
	chatHandler := handler.NewChatHandler(chatUsecase, slog.Default())

	adminHandler := handler.NewAdminHandler(cfg.Admin, slog.Default())
	healthHandler := handler.NewHealthHandler(supaClient)

	slog.Info("handlers initialized")

	// Create Hertz server with performance optimization
	h := server.Default(
		server.WithHostPorts(cfg.GetServerAddr()),
		server.WithReadTimeout(cfg.GetReadTimeout()),
		server.WithWriteTimeout(cfg.GetWriteTimeout()),
		server.WithMaxRequestBodySize(cfg.Server.MaxRequestBodySize*1024*1024),
		server.WithTransport(netpoll.NewTransporter),
	)

	// Setup routes
	router.Setup(h, leadHandler, adminHandler, chatHandler, healthHandler)

	slog.Info("server started successfully",
		"address", cfg.GetServerAddr(),
		"mode", cfg.Server.Mode,
	)

	// Graceful shutdown
	go func() {
		if err := h.Run(); err != nil {
			slog.Error("server run failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
