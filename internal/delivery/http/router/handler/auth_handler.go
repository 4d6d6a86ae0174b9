// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"gatekeeper/internal/delivery/http/response"
	"gatekeeper/internal/delivery/http/validator"
	"gatekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the signup/login handlers. Handlers
// never format errors themselves; every failure is returned up to echo so
// the response classifier renders it.
type AuthHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Signup handles the account creation request.
func (h *AuthHandler) Signup(c echo.Context) error {
	req := new(validator.Credentials)
	if err := c.Bind(req); err != nil {
		return validator.BindError(err)
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"user": output.User}, "User created successfully")
}

// Login handles the credential verification request.
func (h *AuthHandler) Login(c echo.Context) error {
	req := new(validator.Credentials)
	if err := c.Bind(req); err != nil {
		return validator.BindError(err)
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"user":  output.User,
		"token": output.Token,
	}, "Signed in successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
