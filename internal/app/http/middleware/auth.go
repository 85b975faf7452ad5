package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"artworld-app/config"
	"artworld-app/database"
	"artworld-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

func unauthenticated(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
		"code":    "UNAUTHENTICATED",
	})
}

// AuthMiddleware resolves the session from the bearer token. The token is a
// signed JWT whose "sid" claim points at a server-side session row; a missing
// or expired row means the session was logged out or timed out. On success the
// context carries user_id, username, session_token and the cached is_reviewer
// flag.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		jwtKey := []byte(config.JWT_SECRET)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthenticated(c, "Please log in first")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			unauthenticated(c, "Bearer token malformed")
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return jwtKey, nil
		})
		if err != nil || !token.Valid {
			unauthenticated(c, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthenticated(c, "Invalid token claims")
			return
		}

		sid, _ := claims["sid"].(string)
		if sid == "" {
			unauthenticated(c, "Invalid token claims")
			return
		}

		var session users.Session
		err = database.DB.Where("token = ?", sid).First(&session).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && session.ExpiresAt.Before(time.Now())) {
			unauthenticated(c, "Session expired, please log in again")
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Something went wrong, please try again later",
			})
			return
		}

		c.Set("session_token", session.Token)
		c.Set("user_id", session.UserID)
		c.Set("is_reviewer", session.IsReviewer)
		if username, ok := claims["username"].(string); ok {
			c.Set("username", username)
		}
		c.Next()
	}
}
