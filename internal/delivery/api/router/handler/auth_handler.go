// Package handler contains the HTTP handlers of the JSON API.
package handler

import (
	"log/slog"
	"net/http"

	"todo/internal/delivery/api/middleware"
	"todo/internal/delivery/api/response"
	"todo/internal/delivery/api/validator"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//nolint:gochecknoglobals
var registerMessages = validator.Messages{
	{Field: "email", Tag: "required"}:               domainerrors.ErrEmailRequired,
	{Field: "email", Tag: validator.EmailFormatTag}: domainerrors.ErrEmailInvalid,
	{Field: "password", Tag: "required"}:            domainerrors.ErrPasswordRequired,
}

// AuthHandler holds dependencies for account and session handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage("invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return validator.FirstError(err, registerMessages)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, toUserResponse(output.User))
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage("invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, &LoginResponse{AccessToken: output.AccessToken})
}

// Logout handles the logout request of an authenticated caller.
func (h *AuthHandler) Logout(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	if err := h.uc.Logout(c.Request().Context(), &usecase.LogoutInput{
		UserID: identity.UserID,
		Email:  identity.Email,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, &MessageResponse{Message: "Successfully logged out"})
}
