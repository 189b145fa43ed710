package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"

	"github.com/pubnicaragua/investi-documentacion2/pkg/logger"
)

// RequestIDKey is the header carrying the request correlation ID
const RequestIDKey = "X-Request-ID"

// Logger logs one line per request with latency and status
func Logger() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		path := string(c.Path())

		// probes are too chatty to log
		skipLogging := path == "/health/live" || path == "/health/ready"

		requestID := string(c.Request.Header.Peek(RequestIDKey))
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Response.Header.Set(RequestIDKey, requestID)

		var reqLogger *slog.Logger
		if !skipLogging {
			reqLogger = logger.WithRequestID(slog.Default(), requestID).With(
				"method", string(c.Method()),
				"path", path,
				"client_ip", c.ClientIP(),
			)
			reqLogger.Info("request started")
		}

		// handlers pick the correlated logger back up via logger.FromContext
		ctx = logger.WithContext(ctx, logger.WithRequestID(slog.Default(), requestID))
		c.Next(ctx)

		if !skipLogging {
			latency := time.Since(start)
			statusCode := c.Response.StatusCode()

			reqLogger = reqLogger.With(
				"status", statusCode,
				"latency", latency.String(),
				"latency_ms", latency.Milliseconds(),
			)

			if statusCode >= 500 {
				reqLogger.Error("request completed with server error")
			} else if statusCode >= 400 {
				reqLogger.Warn("request completed with client error")
			} else {
				reqLogger.Info("request completed successfully")
			}
		}
	}
}

// GetRequestID returns the correlation ID assigned to this request
func GetRequestID(c *app.RequestContext) string {
	return string(c.Response.Header.Peek(RequestIDKey))
}
