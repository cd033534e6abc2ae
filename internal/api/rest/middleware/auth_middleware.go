package middleware

import (
	"net/http"
	"strings"

	"github.com/Dhoini/invoice-dashboard/internal/auth"
	"github.com/Dhoini/invoice-dashboard/pkg/logger"
	"github.com/Dhoini/invoice-dashboard/pkg/res"
	"github.com/gin-gonic/gin"
)

// Context keys set for authenticated requests
const (
	ContextUserIDKey    = "userID"
	ContextUserEmailKey = "userEmail"
)

const authHeaderPrefix = "Bearer "

// TokenValidator resolves a session token into its claims.
type TokenValidator interface {
	Validate(tokenString string) (*auth.TokenClaims, error)
}

// JWTMiddleware guards routes behind session token validation.
type JWTMiddleware struct {
	validator TokenValidator
	log       *logger.Logger
}

// NewJWTMiddleware creates a new session middleware.
func NewJWTMiddleware(validator TokenValidator, log *logger.Logger) *JWTMiddleware {
	return &JWTMiddleware{
		validator: validator,
		log:       log,
	}
}

// RequireAuth rejects requests without a valid session token and stores the
// authenticated identity on the request context.
func (m *JWTMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, authHeaderPrefix) {
			m.handleAuthError(c, "Missing authorization token")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, authHeaderPrefix)
		claims, err := m.validator.Validate(tokenString)
		if err != nil {
			m.log.Debugw("Session token validation failed", "error", err)
			m.handleAuthError(c, "Invalid or expired session")
			return
		}

		c.Set(ContextUserIDKey, claims.Subject)
		c.Set(ContextUserEmailKey, claims.UserEmail)
		c.Next()
	}
}

func (m *JWTMiddleware) handleAuthError(c *gin.Context, message string) {
	res.Error(c, http.StatusUnauthorized, message)
}
