// Package middleware contains the HTTP middleware for the delivery layer.
package middleware

import (
	"log/slog"

	deliverycontext "gatekeeper/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CorrelationMiddleware reuses the caller's x-correlation-id header or
// generates a fresh one, and derives a request-scoped logger from it. The
// response classifier ties its log record to the same id.
type CorrelationMiddleware struct {
	logger *slog.Logger
}

// NewCorrelationMiddleware creates a new correlation id middleware.
func NewCorrelationMiddleware(logger *slog.Logger) *CorrelationMiddleware {
	return &CorrelationMiddleware{
		logger: logger,
	}
}

// Process extracts or generates the correlation id and stores it, together
// with a child logger, in both the echo context and the request context.
func (m *CorrelationMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		correlationID := c.Request().Header.Get(deliverycontext.HeaderXCorrelationID)
		if correlationID == "" {
			correlationID = uuid.New().String()
		}

		deliverycontext.SetCorrelationID(c, correlationID)

		// Echo the id back so callers can tie the response to their request.
		c.Response().Header().Set(deliverycontext.HeaderXCorrelationID, correlationID)

		reqLogger := m.logger.With(slog.String("correlationId", correlationID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithCorrelationID(ctx, correlationID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
