package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/abidbilal/deskservice/internal/errs"
	"github.com/abidbilal/deskservice/internal/server"
)

// AuthMiddleware enforces bearer-token authentication on protected routes.
// Tokens are the HS256 JWTs minted by the auth service.
type AuthMiddleware struct {
	server *server.Server
}

// NewAuthMiddleware constructs an AuthMiddleware.
func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{server: s}
}

// RequireAuth parses and verifies the Authorization header. On success the
// user identifier and username from the token land in Echo context; any
// failure is a uniform 401.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return errs.NewUnauthorizedError("Missing authorization header", false)
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return errs.NewUnauthorizedError("Authorization header must be a bearer token", false)
		}

		token, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
			return []byte(auth.server.Config.Auth.SecretKey), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			auth.server.Logger.Warn().
				Err(err).
				Str("request_id", GetRequestID(c)).
				Msg("rejected bearer token")

			return errs.NewUnauthorizedError("Invalid or expired token", false)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return errs.NewUnauthorizedError("Invalid or expired token", false)
		}

		// JSON numbers decode as float64.
		if sub, ok := claims["sub"].(float64); ok {
			c.Set(UserIDKey, int64(sub))
		}
		if usr, ok := claims["usr"].(string); ok {
			c.Set(UsernameKey, usr)
		}

		return next(c)
	}
}
