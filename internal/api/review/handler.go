package review

import (
	"net/http"
	"strconv"

	"artworld-app/database"
	"artworld-app/internal/apperrors"
	"artworld-app/internal/domain/users"
	"artworld-app/internal/moderation"

	"github.com/gin-gonic/gin"
)

// Routes in this package sit behind middleware.RequireReviewer, which has
// already re-checked the live user record, so the actor is built with the
// capability set.
func reviewerActor(c *gin.Context) moderation.Actor {
	return moderation.Actor{
		ID:         c.GetUint("user_id"),
		IsReviewer: true,
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

// ListPending returns the moderation queue, newest first, with submitter
// names resolved.
func ListPending(c *gin.Context) {
	wf := moderation.New(database.DB)

	pending, err := wf.Pending()
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	// Resolve submitter usernames in one pass.
	submitterIDs := make([]uint, 0, len(pending))
	for _, art := range pending {
		if art.SubmittedBy != nil {
			submitterIDs = append(submitterIDs, *art.SubmittedBy)
		}
	}
	names := map[uint]string{}
	if len(submitterIDs) > 0 {
		var submitters []users.User
		if err := database.DB.Where("id IN ?", submitterIDs).Find(&submitters).Error; err != nil {
			apperrors.Respond(c, apperrors.Internal(err))
			return
		}
		for _, u := range submitters {
			names[u.ID] = u.Username
		}
	}

	rows := make([]gin.H, 0, len(pending))
	for _, art := range pending {
		submitterName := "Unknown user"
		if art.SubmittedBy != nil {
			if name, ok := names[*art.SubmittedBy]; ok {
				submitterName = name
			}
		}
		rows = append(rows, gin.H{
			"id":             art.ID,
			"title":          art.Title,
			"artist":         art.Artist,
			"year":           art.Year,
			"style":          art.Style,
			"medium":         art.Medium,
			"dimensions":     art.Dimensions,
			"location":       art.Location,
			"description":    art.Description,
			"image_url":      art.ImageURL,
			"source":         art.Source,
			"submitted_by":   art.SubmittedBy,
			"submitter_name": submitterName,
			"created_at":     art.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"artworks":      rows,
		"pending_count": len(rows),
	})
}

func Approve(c *gin.Context) {
	id, ok := artworkID(c)
	if !ok {
		return
	}

	stats, err := moderation.New(database.DB).Approve(reviewerActor(c), id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Artwork approved",
		"stats":   stats,
	})
}

// Reject destroys the artwork; there is no retained rejected state.
func Reject(c *gin.Context) {
	id, ok := artworkID(c)
	if !ok {
		return
	}

	stats, err := moderation.New(database.DB).Reject(reviewerActor(c), id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Artwork rejected",
		"stats":   stats,
	})
}

// BatchApprove approves every id that resolves; ids that do not exist are
// skipped without failing the call.
func BatchApprove(c *gin.Context) {
	var input struct {
		ArtworkIDs []uint `json:"artwork_ids"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.Respond(c, apperrors.ValidationError([]string{"Malformed request body"}))
		return
	}

	updated, stats, err := moderation.New(database.DB).BatchApprove(reviewerActor(c), input.ArtworkIDs)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": strconv.FormatInt(updated, 10) + " artworks approved",
		"stats":   stats,
	})
}

// GetStats serves the site-wide aggregate counters for the review dashboard.
func GetStats(c *gin.Context) {
	stats, err := moderation.New(database.DB).Stats()
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}
