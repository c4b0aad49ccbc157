package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "todo/internal/delivery/context"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerScheme = "Bearer"

// AuthMiddleware is the session guard: it admits requests carrying a valid access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// Authenticate validates the bearer token and stores the caller identity on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			log.Debug("Rejected request without bearer token")

			return domainerrors.ErrUnauthorized.WrapMessage("missing bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			log.Debug("Rejected invalid access token", slog.Any("error", err))

			return domainerrors.ErrUnauthorized.WrapMessage("invalid access token")
		}

		userID, err := claims.UserID()
		if err != nil {
			log.Debug("Rejected access token with malformed subject", slog.Any("error", err))

			return domainerrors.ErrUnauthorized.WrapMessage("invalid token subject")
		}

		deliverycontext.SetIdentity(c, deliverycontext.Identity{
			UserID: userID,
			Email:  claims.Email,
		})

		// Downstream logs carry the caller.
		reqLogger := log.With(slog.Int64("user_id", userID))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(c.Request().Context(), reqLogger)))

		return next(c)
	}
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	return token, true
}

// GetIdentity returns the caller admitted by Authenticate.
func GetIdentity(c echo.Context) (deliverycontext.Identity, bool) {
	return deliverycontext.GetIdentity(c)
}
