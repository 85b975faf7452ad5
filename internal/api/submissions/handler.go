package submissions

import (
	"net/http"
	"strconv"

	"artworld-app/database"
	"artworld-app/internal/apperrors"
	"artworld-app/internal/domain/catalog"
	"artworld-app/internal/domain/users"
	"artworld-app/internal/moderation"

	"github.com/gin-gonic/gin"
)

func actorFromContext(c *gin.Context) moderation.Actor {
	return moderation.Actor{
		ID:         c.GetUint("user_id"),
		IsReviewer: c.GetBool("is_reviewer"),
	}
}

func artworkID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrArtworkNotFound)
		return 0, false
	}
	return uint(id), true
}

// Submit creates a new artwork submission in the pending state.
func Submit(c *gin.Context) {
	var input moderation.SubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.Respond(c, apperrors.ValidationError([]string{"Malformed request body"}))
		return
	}

	artwork, err := moderation.New(database.DB).Submit(actorFromContext(c), input)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Your submission has been received and is awaiting review",
		"artwork_id": artwork.ID,
	})
}

// MySubmissions lists the caller's own artworks in every state, with their
// approved/pending breakdown.
func MySubmissions(c *gin.Context) {
	userID := c.GetUint("user_id")

	var submissions []catalog.Artwork
	if err := database.DB.
		Where("submitted_by = ?", userID).
		Preload("Artist").
		Order("created_at DESC").
		Find(&submissions).Error; err != nil {
		apperrors.Respond(c, apperrors.Internal(err))
		return
	}

	var approved int64
	for _, s := range submissions {
		if s.IsApproved {
			approved++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"submissions": submissions,
		"total":       len(submissions),
		"approved":    approved,
		"pending":     int64(len(submissions)) - approved,
	})
}

// Withdraw removes the caller's own still-pending submission.
func Withdraw(c *gin.Context) {
	id, ok := artworkID(c)
	if !ok {
		return
	}

	if err := moderation.New(database.DB).Withdraw(actorFromContext(c), id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Your artwork has been withdrawn",
	})
}

// Delete removes an artwork in any state; the workflow allows the owner or
// any reviewer. The reviewer flag is taken from the live user record so the
// guard matches what moderation routes would see.
func Delete(c *gin.Context) {
	id, ok := artworkID(c)
	if !ok {
		return
	}

	actor := actorFromContext(c)
	var user users.User
	if err := database.DB.First(&user, actor.ID).Error; err == nil {
		actor.IsReviewer = user.IsReviewer
	}

	stats, err := moderation.New(database.DB).Delete(actor, id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Artwork deleted",
		"stats":   stats,
	})
}
