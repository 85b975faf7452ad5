package auth

import (
	"errors"
	"net/http"
	"strings"

	"artworld-app/database"
	"artworld-app/internal/apperrors"
	"artworld-app/internal/domain/users"
	"artworld-app/internal/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Register(c *gin.Context) {
	var input struct {
		Username        string `json:"username"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.Respond(c, apperrors.ValidationError([]string{"Malformed request body"}))
		return
	}

	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)

	// Collect every violation, not just the first.
	var violations []string
	if len(input.Username) < 3 {
		violations = append(violations, "Username must be at least 3 characters")
	}
	if !strings.Contains(input.Email, "@") {
		violations = append(violations, "Please enter a valid email address")
	}
	if len(input.Password) < 6 {
		violations = append(violations, "Password must be at least 6 characters")
	}
	if input.Password != input.ConfirmPassword {
		violations = append(violations, "Passwords do not match")
	}
	if len(violations) > 0 {
		apperrors.Respond(c, apperrors.ValidationError(violations))
		return
	}

	// Checked independently so the caller can be told which one collides.
	var existing users.User
	if err := database.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		apperrors.Respond(c, apperrors.Conflict("That username is already taken"))
		return
	}
	if err := database.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		apperrors.Respond(c, apperrors.Conflict("That email is already registered"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}
	hashed := string(hash)

	user := users.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: &hashed,
		AuthProvider: "local",
	}
	if err := database.DB.Create(&user).Error; err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	// Auto-login.
	token, err := IssueSession(&user)
	if err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Welcome to Art & World, " + user.Username + "!",
		"token":   token,
		"user": gin.H{
			"id":          user.ID,
			"username":    user.Username,
			"is_reviewer": user.IsReviewer,
			"avatar_url":  user.AvatarURL(),
		},
	})
}

func Login(c *gin.Context) {
	var input struct {
		// Username or email, one field.
		Identity string `json:"identity"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.Respond(c, apperrors.ValidationError([]string{"Malformed request body"}))
		return
	}

	input.Identity = strings.TrimSpace(input.Identity)
	var violations []string
	if input.Identity == "" {
		violations = append(violations, "Username or email is required")
	}
	if input.Password == "" {
		violations = append(violations, "Password is required")
	}
	if len(violations) > 0 {
		apperrors.Respond(c, apperrors.ValidationError(violations))
		return
	}

	// Unknown identity and wrong password produce the same failure, so the
	// endpoint cannot be used to enumerate accounts.
	var user users.User
	err := database.DB.Where("username = ? OR email = ?", input.Identity, input.Identity).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		apperrors.Respond(c, apperrors.ErrAuthFailed)
		return
	}
	if err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	if user.PasswordHash == nil ||
		bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(input.Password)) != nil {
		apperrors.Respond(c, apperrors.ErrAuthFailed)
		return
	}

	token, err := IssueSession(&user)
	if err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	logger.Info("user logged in", "user_id", user.ID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Welcome back, " + user.Username + "!",
		"token":   token,
		"user": gin.H{
			"id":          user.ID,
			"username":    user.Username,
			"is_reviewer": user.IsReviewer,
			"avatar_url":  user.AvatarURL(),
		},
	})
}

// Logout deletes the session row unconditionally; the bearer token becomes
// useless even before it expires.
func Logout(c *gin.Context) {
	sid := c.GetString("session_token")
	if sid != "" {
		database.DB.Where("token = ?", sid).Delete(&users.Session{})
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "You have been logged out",
	})
}

func ChangePassword(c *gin.Context) {
	userID := c.GetUint("user_id")

	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
		ConfirmPassword string `json:"confirm_new_password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.Respond(c, apperrors.ValidationError([]string{"Malformed request body"}))
		return
	}

	var violations []string
	if input.CurrentPassword == "" {
		violations = append(violations, "Current password is required")
	}
	if len(input.NewPassword) < 6 {
		violations = append(violations, "New password must be at least 6 characters")
	}
	if input.NewPassword != input.ConfirmPassword {
		violations = append(violations, "New passwords do not match")
	}
	if len(violations) > 0 {
		apperrors.Respond(c, apperrors.ValidationError(violations))
		return
	}

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		apperrors.Respond(c, apperrors.ErrUserNotFound)
		return
	}

	if user.PasswordHash == nil {
		apperrors.Respond(c, apperrors.InvalidState("This account signs in with Google and has no password"))
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(input.CurrentPassword)) != nil {
		apperrors.Respond(c, apperrors.Forbidden("Current password is incorrect"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}
	if err := database.DB.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	logger.Info("password changed", "user_id", userID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password changed successfully",
	})
}
