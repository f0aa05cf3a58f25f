package auth

import (
	"net/http"
	"strings"

	"quiroclinic-backend/internal/authz"
	"quiroclinic-backend/internal/database/models"

	"github.com/gin-gonic/gin"
)

const callerContextKey = "caller"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token and loads the caller with roles and
// permissions fresh from the database.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		caller, err := m.service.LoadCaller(claims)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(callerContextKey, caller)
		c.Set("email", caller.Email)

		c.Next()
	}
}

// RequirePermission gates a route behind a named ability, evaluated by the
// authz policy against the loaded caller.
func RequirePermission(ability string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		if !authz.Can(caller, ability) {
			c.JSON(http.StatusForbidden, gin.H{"error": "you do not have permission to perform this action"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequirePatientDelete gates patient deletion, which accepts the admin or
// medic role in place of the explicit permission.
func RequirePatientDelete() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		if !authz.CanDeletePatient(caller) {
			c.JSON(http.StatusForbidden, gin.H{"error": "you do not have permission to perform this action"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CallerFromContext returns the authenticated user set by RequireAuth.
func CallerFromContext(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(callerContextKey)
	if !exists {
		return nil, false
	}
	caller, ok := value.(*models.User)
	return caller, ok
}

// SetCaller places a user in the context. Exposed for handler tests.
func SetCaller(c *gin.Context, user *models.User) {
	c.Set(callerContextKey, user)
}
