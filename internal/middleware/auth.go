package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sjperalta/contratus-api/internal/access"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/services"
)

// Claims represents the JWT claims structure
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

const (
	userIDKey = "userID"
	userKey   = "user"
	policyKey = "policy"
)

// Auth returns a middleware that validates JWT tokens
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := ""

		if authHeader == "" {
			// Download links carry the token in the query string
			tokenString = c.Query("token")
			if tokenString == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "cabeçalho Authorization é obrigatório",
				})
				return
			}
		} else {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "formato do cabeçalho Authorization inválido",
				})
				return
			}
			tokenString = parts[1]
		}

		claims, err := validateToken(tokenString, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": err.Error(),
			})
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("claims", claims)

		c.Next()
	}
}

// validateToken parses and validates a JWT token string
func validateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("método de assinatura inválido")
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.New("token expirado")
		}
		return nil, errors.New("token inválido")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return nil, errors.New("token inválido")
	}

	return claims, nil
}

// UserLoader finds the current state of a user
type UserLoader interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

// LoadPolicy reloads the authenticated user and resolves its access policy.
// Role and team come from the database, never from the token, so a demoted
// or moved user loses access on the next request.
func LoadPolicy(users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.FindByID(c.Request.Context(), GetUserID(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "usuário não encontrado",
			})
			return
		}
		if !user.IsActive() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "conta inativa",
			})
			return
		}

		c.Set(userKey, user)
		c.Set("userRole", user.Role)
		c.Set(policyKey, access.ForUser(user))
		c.Request = c.Request.WithContext(services.WithRequestInfo(c.Request.Context(), c.ClientIP(), c.Request.UserAgent()))

		c.Next()
	}
}

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) uint {
	userID, exists := c.Get(userIDKey)
	if !exists {
		return 0
	}
	return userID.(uint)
}

// GetUser returns the user loaded by LoadPolicy
func GetUser(c *gin.Context) *models.User {
	user, exists := c.Get(userKey)
	if !exists {
		return nil
	}
	return user.(*models.User)
}

// GetPolicy returns the caller's access policy. Without LoadPolicy in the
// chain it falls back to an agent policy for the token's user, the
// narrowest scope there is.
func GetPolicy(c *gin.Context) access.Policy {
	if policy, exists := c.Get(policyKey); exists {
		return policy.(access.Policy)
	}
	return access.ForUser(&models.User{ID: GetUserID(c), Role: models.RoleAgent})
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) string {
	role, exists := c.Get("userRole")
	if !exists {
		return ""
	}
	return role.(string)
}

// IsAdmin checks if the current user is an admin
func IsAdmin(c *gin.Context) bool {
	return GetUserRole(c) == models.RoleAdmin
}

// RequireAdmin returns a middleware that requires admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

// RequireRole returns a middleware that requires specific roles
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := GetUserRole(c)
		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "você não tem acesso a esta seção",
		})
	}
}
