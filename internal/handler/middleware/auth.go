package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"carhire-booking/internal/domain/user"
	"carhire-booking/internal/handler/httperr"
	"carhire-booking/internal/pkg/cookie"
	"carhire-booking/internal/pkg/errs"
	"carhire-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxActorKey = "actor"
	// read by the logging middleware
	ctxClaimsKey = "jwt_claims"
)

var (
	errTokenRequired = errs.Mark(errs.New("access token required"), errs.ErrAuthorization)
	errTokenInvalid  = errs.Mark(errs.New("invalid or expired token"), errs.ErrAuthorization)
	errRoleRequired  = errs.Mark(errs.New("insufficient permissions"), errs.ErrAuthorization)
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenRequired, "Access token required", nil)
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errTokenInvalid), "Invalid or expired token", nil)
			return
		}

		setActor(c, actor)
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present. Guests and
// bad tokens continue as anonymous callers.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Debug("ignoring invalid token on optional auth route", "error", err.Error())
			c.Next()
			return
		}

		setActor(c, actor)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := GetActor(c)
		if actor.IsAnonymous() {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenRequired, "Access token required", nil)
			return
		}
		if !actor.Role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errRoleRequired, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

// GetActor returns the authenticated caller or an anonymous actor.
func GetActor(c *gin.Context) user.Actor {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return user.Actor{}
	}
	actor, _ := v.(user.Actor)
	return actor
}

// SetActor is used by handler tests to stand in for the token check.
func SetActor(c *gin.Context, actor user.Actor) {
	setActor(c, actor)
}

func setActor(c *gin.Context, actor user.Actor) {
	c.Set(ctxActorKey, actor)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": actor.UserID.String(),
		"role":    actor.Role.String(),
	})
}

// cookie first, then bearer header
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}
