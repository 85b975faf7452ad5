package auth

import (
	"time"

	"artworld-app/config"
	"artworld-app/database"
	"artworld-app/internal/domain/users"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionTTL = 7 * 24 * time.Hour

// IssueSession creates a server-side session row for the user and returns the
// signed bearer token pointing at it. The is_reviewer claim is the role flag
// cached at issue time; reviewer-gated routes re-check the live record.
func IssueSession(user *users.User) (string, error) {
	session := users.Session{
		Token:      uuid.NewString(),
		UserID:     user.ID,
		IsReviewer: user.IsReviewer,
		ExpiresAt:  time.Now().Add(sessionTTL),
	}
	if err := database.DB.Create(&session).Error; err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid":         session.Token,
		"user_id":     user.ID,
		"username":    user.Username,
		"is_reviewer": user.IsReviewer,
		"exp":         session.ExpiresAt.Unix(),
	})
	return token.SignedString([]byte(config.JWT_SECRET))
}
