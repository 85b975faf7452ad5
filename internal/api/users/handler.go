package users

import (
	"net/http"
	"strings"

	"artworld-app/database"
	"artworld-app/internal/api/auth"
	"artworld-app/internal/apperrors"
	"artworld-app/internal/domain/feedback"
	"artworld-app/internal/domain/users"
	"artworld-app/internal/logger"
	"artworld-app/internal/moderation"

	"github.com/gin-gonic/gin"
)

func currentUser(c *gin.Context) (*users.User, bool) {
	userID := c.GetUint("user_id")
	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		apperrors.Respond(c, apperrors.ErrUserNotFound)
		return nil, false
	}
	return &user, true
}

// GetCurrentUser returns the profile plus the dashboard counters: the user's
// own submission breakdown, and the site-wide counters when the live record
// holds the reviewer capability.
func GetCurrentUser(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	wf := moderation.New(database.DB)

	own, err := wf.OwnerStats(user.ID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	resp := gin.H{
		"success": true,
		"user": gin.H{
			"id":          user.ID,
			"username":    user.Username,
			"email":       user.Email,
			"avatar_url":  user.AvatarURL(),
			"is_reviewer": user.IsReviewer,
			"is_verified": user.IsVerified,
			"real_name":   user.RealName,
			"phone":       user.Phone,
			"bio":         user.Bio,
			"created_at":  user.CreatedAt,
		},
		"submissions": gin.H{
			"total":           own.PendingCount + own.ApprovedCount,
			"approved_count":  own.ApprovedCount,
			"pending_count":   own.PendingCount,
			"today_new_count": own.TodayNewCount,
		},
	}

	if user.IsReviewer {
		site, err := wf.Stats()
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		resp["review_stats"] = site
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateProfile edits email/real_name/phone/bio and optionally replaces the
// avatar from a multipart upload.
func UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	email := strings.TrimSpace(c.PostForm("email"))
	if email == "" {
		email = user.Email
	}
	if !strings.Contains(email, "@") {
		apperrors.Respond(c, apperrors.ValidationError([]string{"Please enter a valid email address"}))
		return
	}

	// Uniqueness re-checked only when the address actually changes.
	if email != user.Email {
		var existing users.User
		if err := database.DB.Where("email = ?", email).First(&existing).Error; err == nil {
			apperrors.Respond(c, apperrors.Conflict("That email is already used by another account"))
			return
		}
	}

	updates := map[string]interface{}{
		"email":     email,
		"real_name": strings.TrimSpace(c.PostForm("real_name")),
		"phone":     strings.TrimSpace(c.PostForm("phone")),
		"bio":       strings.TrimSpace(c.PostForm("bio")),
	}

	if file, err := c.FormFile("avatar"); err == nil && file.Filename != "" {
		name, err := saveAvatar(c, user.ID, file)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		updates["avatar"] = name
		user.Avatar = name
	}

	if err := database.DB.Model(user).Updates(updates).Error; err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	logger.Info("profile updated", "user_id", user.ID)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Profile updated successfully",
		"avatar_url": user.AvatarURL(),
	})
}

// RealNameAuth is the self-service identity attestation: name, an 18-char
// national id and an 11-digit phone number, all checked at once.
func RealNameAuth(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input struct {
		RealName string `json:"real_name"`
		IDCard   string `json:"id_card"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.Respond(c, apperrors.ValidationError([]string{"Malformed request body"}))
		return
	}

	input.RealName = strings.TrimSpace(input.RealName)
	input.IDCard = strings.TrimSpace(input.IDCard)
	input.Phone = strings.TrimSpace(input.Phone)

	var violations []string
	if input.RealName == "" {
		violations = append(violations, "Real name is required")
	}
	if len(input.IDCard) != 18 {
		violations = append(violations, "Please enter a valid 18-character id card number")
	}
	if len(input.Phone) != 11 {
		violations = append(violations, "Please enter a valid 11-digit phone number")
	}
	if len(violations) > 0 {
		apperrors.Respond(c, apperrors.ValidationError(violations))
		return
	}

	updates := map[string]interface{}{
		"real_name":   input.RealName,
		"id_card":     input.IDCard,
		"phone":       input.Phone,
		"is_verified": true,
	}
	if err := database.DB.Model(user).Updates(updates).Error; err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	logger.Info("real-name verification completed", "user_id", user.ID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Real-name verification completed",
	})
}

// ApplyReviewer grants the reviewer capability to whoever asks with a reason.
// Deliberately weak policy for this system; the fresh token keeps the cached
// session flag in step with the flip.
func ApplyReviewer(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if user.IsReviewer {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "You are already a reviewer",
		})
		return
	}

	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Reason) == "" {
		apperrors.Respond(c, apperrors.ValidationError([]string{"Please provide a reason for your application"}))
		return
	}

	if err := database.DB.Model(user).Update("is_reviewer", true).Error; err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}
	user.IsReviewer = true

	// Refresh the cached flag on the current session row too.
	if sid := c.GetString("session_token"); sid != "" {
		database.DB.Model(&users.Session{}).Where("token = ?", sid).Update("is_reviewer", true)
	}

	token, err := auth.IssueSession(user)
	if err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	logger.Info("reviewer capability granted", "user_id", user.ID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Congratulations! You are now a reviewer.",
		"token":   token,
	})
}

// SubmitFeedback appends a feedback record. Write-only: there is no edit or
// workflow on feedback.
func SubmitFeedback(c *gin.Context) {
	userID := c.GetUint("user_id")

	var input struct {
		Category string `json:"category"`
		Content  string `json:"content"`
		Contact  string `json:"contact"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.Respond(c, apperrors.ValidationError([]string{"Malformed request body"}))
		return
	}

	input.Category = strings.TrimSpace(input.Category)
	input.Content = strings.TrimSpace(input.Content)

	var violations []string
	if input.Category == "" {
		violations = append(violations, "Please choose a feedback category")
	}
	if len(input.Content) < 10 {
		violations = append(violations, "Feedback content must be at least 10 characters")
	}
	if len(violations) > 0 {
		apperrors.Respond(c, apperrors.ValidationError(violations))
		return
	}

	record := feedback.Feedback{
		UserID:   userID,
		Category: input.Category,
		Content:  input.Content,
		Contact:  strings.TrimSpace(input.Contact),
	}
	if err := database.DB.Create(&record).Error; err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	logger.Info("feedback submitted", "user_id", userID, "category", record.Category)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Thank you, your feedback has been submitted!",
	})
}
