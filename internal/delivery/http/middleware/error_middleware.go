package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"gatekeeper/config"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/delivery/http/response"
	domainerrors "gatekeeper/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is the response classifier: the single place every failure
// signal resolves to one stable error shape and exactly one structured log
// record. No other component formats a client-facing error.
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewErrorMiddleware creates the response classifier.
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	debug := false
	if cfg != nil {
		debug = cfg.Env.Debug
	}

	return &ErrorMiddleware{
		logger: logger,
		debug:  debug,
	}
}

// classified is the normalized failure representation produced before any
// error response is sent.
type classified struct {
	status    int
	errorCode string // empty means "mint a fresh one"
	message   string
	details   any
}

// HandleHTTPError classifies a failure, emits its log record and renders the
// response, exactly once per request. Installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	cls := m.classify(err)

	if cls.errorCode == "" {
		// Fresh short id per response, so unrelated failures never share a
		// correlatable error code.
		cls.errorCode = fmt.Sprintf("ERR-%d-%s", cls.status, uuid.New().String()[:8])
	}

	correlationID := m.correlationID(c)
	c.Response().Header().Set(deliverycontext.HeaderXCorrelationID, correlationID)

	m.logRecord(c, correlationID, cls, err)

	body := response.ErrorBody{
		Success:   false,
		ErrorCode: cls.errorCode,
		Message:   cls.message,
		Details:   cls.details,
	}
	if m.debug && err != nil {
		body.Stack = fmt.Sprintf("%+v", err)
	}

	if jsonErr := c.JSON(cls.status, body); jsonErr != nil {
		m.logger.Error("Failed to render error response", slog.Any("error", jsonErr))
	}
}

// classify maps a raw failure signal to the normalized representation.
// Precedence: token kind sentinels, then domain AppError values (storage
// constraint kinds, validation, rate limit, application errors), then echo's
// own HTTP errors, then the sanitized fallback.
func (m *ErrorMiddleware) classify(err error) classified {
	if err == nil {
		return classified{
			status:  http.StatusInternalServerError,
			message: "Internal Server Error",
		}
	}

	// Expired wins over generically-invalid: jwt validation can report both.
	if errors.Is(err, jwt.ErrTokenExpired) {
		return fromAppError(domainerrors.ErrTokenExpired)
	}
	if errors.Is(err, jwt.ErrSignatureInvalid) ||
		errors.Is(err, jwt.ErrTokenMalformed) ||
		errors.Is(err, jwt.ErrTokenUnverifiable) ||
		errors.Is(err, jwt.ErrTokenInvalidClaims) {
		return fromAppError(domainerrors.ErrInvalidToken)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return fromAppError(appErr)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return classified{
			status:  httpErr.Code,
			message: sanitizeMessage(fmt.Sprintf("%v", httpErr.Message)),
		}
	}

	return classified{
		status:  http.StatusInternalServerError,
		message: sanitizeMessage(err.Error()),
	}
}

// fromAppError renders a domain error. Errors without a fixed code are
// application-raised; their operability flag is recorded in the details.
func fromAppError(appErr domainerrors.AppError) classified {
	details := appErr.Details()
	if appErr.ErrorCode() == "" {
		switch d := details.(type) {
		case nil:
			details = map[string]any{"isOperational": appErr.Operational()}
		case map[string]any:
			d["isOperational"] = appErr.Operational()
		}
	}

	return classified{
		status:    appErr.HTTPCode(),
		errorCode: appErr.ErrorCode(),
		message:   sanitizeMessage(appErr.Message()),
		details:   details,
	}
}

// correlationID reuses the id set by the correlation middleware, falling back
// to the inbound header or a fresh uuid when the middleware did not run.
func (m *ErrorMiddleware) correlationID(c echo.Context) string {
	if val, ok := c.Get(string(deliverycontext.KeyCorrelationID)).(string); ok && val != "" {
		return val
	}
	if header := c.Request().Header.Get(deliverycontext.HeaderXCorrelationID); header != "" {
		return header
	}

	return uuid.New().String()
}

// logRecord emits the single structured log record for this failure.
func (m *ErrorMiddleware) logRecord(c echo.Context, correlationID string, cls classified, err error) {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	req := c.Request()
	fields := []slog.Attr{
		slog.String("correlationId", correlationID),
		slog.String("method", req.Method),
		slog.String("url", req.URL.RequestURI()),
		slog.String("message", cls.message),
		slog.Int("statusCode", cls.status),
		slog.String("errorCode", cls.errorCode),
		slog.String("ip", c.RealIP()),
		slog.String("userAgent", req.UserAgent()),
		slog.Any("details", cls.details),
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
	}
	if m.debug && err != nil {
		fields = append(fields, slog.String("stack", fmt.Sprintf("%+v", err)))
	}

	logger.LogAttrs(req.Context(), slog.LevelError, "Request failed", fields...)
}
