package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"hr-console/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token (or the access_token cookie the
// console sets) and exposes the account claims to the handlers.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authentication is required")
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			msg := "Invalid token"
			if err != nil && strings.Contains(err.Error(), "expired") {
				msg = "Session expired, please sign in again"
			}
			response.Error(c, http.StatusUnauthorized, msg)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid token claims")
			c.Abort()
			return
		}

		// Numeric claims arrive as float64 from the JSON decoder.
		userIDRaw, ok := claims["user_id"].(float64)
		if !ok || userIDRaw <= 0 {
			response.Error(c, http.StatusUnauthorized, "User ID not found in token")
			c.Abort()
			return
		}

		role, _ := claims["role"].(string)

		c.Set("user_id", int64(userIDRaw))
		c.Set("role", role)

		c.Next()
	}
}
