package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"

	"github.com/pubnicaragua/investi-documentacion2/internal/handler"
	"github.com/pubnicaragua/investi-documentacion2/internal/middleware"
)

// Setup sets up all routes
func Setup(
	h *server.Hertz,
	leadHandler *handler.LeadHandler,
	adminHandler *handler.AdminHandler,
	chatHandler *handler.ChatHandler,
	healthHandler *handler.HealthHandler,
) {
	// Global middleware
	h.Use(middleware.Recovery())
	h.Use(middleware.Logger())
	h.Use(middleware.CORS())

	// Swagger API documentation
	// Access at: http://localhost:8080/swagger/index.html
	h.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler))

	// Health check routes (no authentication required)
	h.GET("/ping", healthHandler.Ping)
	h.GET("/health/ready", healthHandler.Readiness)
	h.GET("/health/live", healthHandler.Liveness)

	// API v1 routes
	apiV1 := h.Group("/api/v1")
	{
		// ============ Public routes (no authentication required) ============
		apiV1.POST("/leads", leadHandler.Create)
		apiV1.POST("/chat", chatHandler.Reply)
		apiV1.GET("/chat/config", chatHandler.Config)
		apiV1.POST("/admin/login", adminHandler.Login)

		// ============ Protected routes (JWT authentication required) ============
		admin := apiV1.Group("/admin")
		admin.Use(adminHandler.AuthMiddleware())
		{
			admin.GET("/leads", leadHandler.List)
		}
	}
}
