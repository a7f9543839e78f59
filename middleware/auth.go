package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"api/config"
	"api/database"
	"api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userContextKey = "currentUser"

// GenerateToken issues a signed JWT for the given user
func GenerateToken(userID string, rememberMe bool) (string, error) {
	lifetime := 24 * time.Hour
	if rememberMe {
		lifetime = 30 * 24 * time.Hour
	}

	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifetime)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

// parseToken validates a JWT and returns the user id it was issued for
func parseToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.New("invalid token claims")
	}
	return claims.Subject, nil
}

// tokenFromRequest extracts the JWT from the Authorization header or the auth cookie
func tokenFromRequest(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

// loadUser fetches the user with roles for the given token
func loadUser(tokenString string) (*models.User, error) {
	userID, err := parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := database.DB.Preload("Roles").First(&user, "id = ?", userID).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// AuthMiddleware requires a valid authenticated identity on the request
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		user, err := loadUser(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if user.Blocked {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Your account has been blocked"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// SetUserIdMiddleware attaches the identity when a valid token is present but
// lets anonymous requests through. Used on public read endpoints.
func SetUserIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := tokenFromRequest(c); tokenString != "" {
			if user, err := loadUser(tokenString); err == nil && !user.Blocked {
				c.Set(userContextKey, user)
			}
		}
		c.Next()
	}
}

// AdminMiddleware requires the admin or superadmin role. Must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetUserFromRequest(c)
		if err != nil {
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
			return
		}
		c.Next()
	}
}

// SuperAdminMiddleware requires the superadmin role. Must run after AuthMiddleware.
func SuperAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetUserFromRequest(c)
		if err != nil {
			return
		}
		if !user.HasRole(models.RoleSuperAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Superadmin role required"})
			return
		}
		c.Next()
	}
}

// GetUserFromRequest returns the authenticated user attached by the auth
// middleware. When no identity is present it writes the error response itself,
// callers only need to return.
func GetUserFromRequest(c *gin.Context) (*models.User, error) {
	value, exists := c.Get(userContextKey)
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, errors.New("no authenticated user")
	}
	user, ok := value.(*models.User)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, errors.New("invalid user in context")
	}
	return user, nil
}

// GetOptionalUser returns the authenticated user or nil without writing a response
func GetOptionalUser(c *gin.Context) *models.User {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	if user, ok := value.(*models.User); ok {
		return user
	}
	return nil
}
