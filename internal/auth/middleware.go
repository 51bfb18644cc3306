package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets actor context
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

		c.Set("actor_id", claims.ActorID)
		c.Set("actor_name", claims.Name)
		c.Set("actor_role", claims.Role)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// RequirePermission checks that the authenticated actor's role grants the
// permission. Must run after RequireAuth.
func (m *AuthMiddleware) RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("actor_role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		roleStr, ok := role.(string)
		if !ok || !m.service.Can(roleStr, permission, "") {
			c.JSON(http.StatusForbidden, gin.H{"error": "Action denied"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetActorID is a helper function to extract the actor id from context
func GetActorID(c *gin.Context) (string, bool) {
	actorID, exists := c.Get("actor_id")
	if !exists {
		return "", false
	}

	id, ok := actorID.(string)
	return id, ok
}

// GetActorName is a helper function to extract the actor display name from context
func GetActorName(c *gin.Context) (string, bool) {
	name, exists := c.Get("actor_name")
	if !exists {
		return "", false
	}

	n, ok := name.(string)
	return n, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*Claims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*Claims)
	return authClaims, ok
}
