package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/mehrbod2002/capitalmarket/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const maxAuthLen = 4096

const adminTokenTTL = 24 * time.Hour

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": message})
}

func AdminAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if len(authHeader) > maxAuthLen {
			unauthorized(c, "Authorization header too long")
			return
		}

		if authHeader == "" {
			unauthorized(c, "Authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "Invalid authorization header; expected Bearer token")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			unauthorized(c, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthorized(c, "Invalid token claims")
			return
		}

		isAdmin, ok := claims["is_admin"].(bool)
		if !ok || !isAdmin {
			unauthorized(c, "Admin access required")
			return
		}

		username, ok := claims["username"].(string)
		if !ok || username == "" {
			unauthorized(c, "Invalid username in token")
			return
		}

		c.Set("admin_username", username)
		c.Set("is_admin", isAdmin)
		c.Next()
	}
}

func GenerateAdminJWT(username string, cfg *config.Config) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"is_admin": true,
		"exp":      now.Add(adminTokenTTL).Unix(),
		"iat":      now.Unix(),
	})

	return token.SignedString([]byte(cfg.JWTSecret))
}
