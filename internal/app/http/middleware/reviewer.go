package middleware

import (
	"net/http"

	"artworld-app/database"
	"artworld-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// RequireReviewer gates moderation routes. It re-reads the live user record
// instead of trusting the reviewer flag cached in the session, so a revoked
// capability takes effect immediately.
func RequireReviewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if userID == 0 {
			unauthenticated(c, "Please log in first")
			return
		}

		var user users.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			unauthenticated(c, "User not found, please log in again")
			return
		}

		if !user.IsReviewer {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Reviewer capability required",
				"code":    "FORBIDDEN",
			})
			return
		}

		c.Next()
	}
}
