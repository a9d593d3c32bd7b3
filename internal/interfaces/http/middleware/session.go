package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cartapp "github.com/storefront/cartsync/internal/application/cart"
	"github.com/storefront/cartsync/internal/infrastructure/auth"
	"github.com/storefront/cartsync/internal/interfaces/http/dto"
)

// Session context keys
const (
	SessionKey    = "session"
	UsernameKey   = "session_username"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// SessionMiddlewareConfig holds configuration for the session middleware
type SessionMiddlewareConfig struct {
	// Credentials is required for token validation
	Credentials *auth.CredentialService
	// SkipPaths are paths that don't require authentication
	SkipPaths []string
	// Logger for middleware logging
	Logger *zap.Logger
}

// DefaultSessionConfig returns default session middleware configuration
func DefaultSessionConfig(credentials *auth.CredentialService) SessionMiddlewareConfig {
	return SessionMiddlewareConfig{
		Credentials: credentials,
		SkipPaths: []string{
			"/health",
			"/healthz",
		},
	}
}

// SessionAuth creates session authentication middleware with default config
func SessionAuth(credentials *auth.CredentialService) gin.HandlerFunc {
	return SessionAuthWithConfig(DefaultSessionConfig(credentials))
}

// SessionAuthWithConfig validates the bearer credential and stores the
// resolved session in the gin context. The raw token is kept alongside the
// user id because it is forwarded verbatim to the remote cart service.
func SessionAuthWithConfig(cfg SessionMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortUnauthenticated(c, cfg, auth.ErrInvalidToken, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthenticated(c, cfg, auth.ErrInvalidToken, "Invalid authorization header format")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			abortUnauthenticated(c, cfg, auth.ErrInvalidToken, "Missing token")
			return
		}

		claims, err := cfg.Credentials.Validate(tokenString)
		if err != nil {
			abortUnauthenticated(c, cfg, err, "Token validation failed")
			return
		}

		c.Set(SessionKey, cartapp.Session{Token: tokenString, UserID: claims.UserID})
		c.Set(UsernameKey, claims.Username)
		c.Next()
	}
}

// GetSession returns the session stored by the middleware, or a zero session
// when the request is unauthenticated.
func GetSession(c *gin.Context) cartapp.Session {
	if v, exists := c.Get(SessionKey); exists {
		if sess, ok := v.(cartapp.Session); ok {
			return sess
		}
	}
	return cartapp.Session{}
}

func abortUnauthenticated(c *gin.Context, cfg SessionMiddlewareConfig, err error, message string) {
	if cfg.Logger != nil {
		cfg.Logger.Warn("session authentication failed",
			zap.Error(err),
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path),
		)
	}

	code := dto.ErrCodeUnauthorized
	responseMessage := "Authentication required"
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		code = dto.ErrCodeTokenExpired
		responseMessage = "Token has expired"
	case errors.Is(err, auth.ErrInvalidToken):
		code = dto.ErrCodeTokenInvalid
		responseMessage = "Invalid token"
	case errors.Is(err, auth.ErrTokenNotYetValid):
		code = dto.ErrCodeTokenInvalid
		responseMessage = "Token is not yet valid"
	case errors.Is(err, auth.ErrInvalidClaims), errors.Is(err, auth.ErrMissingUserID):
		code = dto.ErrCodeTokenInvalid
		responseMessage = "Invalid token claims"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(code, responseMessage))
}
