package moderation

import (
	"testing"

	"artworld-app/database"
	"artworld-app/internal/apperrors"
	"artworld-app/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestWorkflow(t *testing.T) *Workflow {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return New(db)
}

func submitArtwork(t *testing.T, wf *Workflow, actor Actor, title, artist string) *catalog.Artwork {
	t.Helper()
	artwork, err := wf.Submit(actor, SubmissionInput{Title: title, ArtistName: artist})
	require.NoError(t, err)
	return artwork
}

func TestSubmitCreatesPendingArtworkAndArtist(t *testing.T) {
	wf := newTestWorkflow(t)
	actor := Actor{ID: 7}

	artwork, err := wf.Submit(actor, SubmissionInput{
		Title:      "Water Lilies",
		ArtistName: "Claude Monet",
		Style:      "Impressionism",
	})
	require.NoError(t, err)

	assert.False(t, artwork.IsApproved)
	require.NotNil(t, artwork.SubmittedBy)
	assert.Equal(t, uint(7), *artwork.SubmittedBy)
	assert.Equal(t, "/static/images/default.jpg", artwork.ImageURL)

	var artist catalog.Artist
	require.NoError(t, wf.db.Where("name = ?", "Claude Monet").First(&artist).Error)
	assert.Equal(t, "Unknown", artist.Country)
	require.NotNil(t, artwork.ArtistID)
	assert.Equal(t, artist.ID, *artwork.ArtistID)
}

func TestSubmitReusesExistingArtist(t *testing.T) {
	wf := newTestWorkflow(t)
	existing := catalog.Artist{Name: "Claude Monet", Country: "France"}
	require.NoError(t, wf.db.Create(&existing).Error)

	artwork := submitArtwork(t, wf, Actor{ID: 1}, "Impression, Sunrise", "Claude Monet")

	require.NotNil(t, artwork.ArtistID)
	assert.Equal(t, existing.ID, *artwork.ArtistID)

	var count int64
	wf.db.Model(&catalog.Artist{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSubmitReportsEveryViolation(t *testing.T) {
	wf := newTestWorkflow(t)

	_, err := wf.Submit(Actor{ID: 1}, SubmissionInput{Title: "  ", ArtistName: ""})
	require.Error(t, err)

	appErr := apperrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	violations, ok := appErr.Details.([]string)
	require.True(t, ok)
	assert.Len(t, violations, 2)
}

func TestApproveRequiresReviewerEvenForOwner(t *testing.T) {
	wf := newTestWorkflow(t)
	owner := Actor{ID: 3}
	artwork := submitArtwork(t, wf, owner, "Self Portrait", "Rembrandt")

	_, err := wf.Approve(owner, artwork.ID)
	assert.ErrorIs(t, err, apperrors.ErrReviewerRequired)

	var check catalog.Artwork
	require.NoError(t, wf.db.First(&check, artwork.ID).Error)
	assert.False(t, check.IsApproved)
}

func TestApproveUpdatesCounters(t *testing.T) {
	wf := newTestWorkflow(t)
	owner := Actor{ID: 3}
	reviewer := Actor{ID: 9, IsReviewer: true}

	first := submitArtwork(t, wf, owner, "Piece One", "Someone")
	submitArtwork(t, wf, owner, "Piece Two", "Someone")
	submitArtwork(t, wf, owner, "Piece Three", "Someone")

	stats, err := wf.Approve(reviewer, first.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.PendingCount)
	assert.Equal(t, int64(1), stats.ApprovedCount)

	// Approval moves a row between buckets, never creates or destroys one.
	var total int64
	wf.db.Model(&catalog.Artwork{}).Count(&total)
	assert.Equal(t, total, stats.PendingCount+stats.ApprovedCount)
}

func TestApproveMissingArtwork(t *testing.T) {
	wf := newTestWorkflow(t)

	_, err := wf.Approve(Actor{ID: 9, IsReviewer: true}, 12345)
	assert.ErrorIs(t, err, apperrors.ErrArtworkNotFound)
}

func TestBatchApproveSkipsMissingIDs(t *testing.T) {
	wf := newTestWorkflow(t)
	reviewer := Actor{ID: 9, IsReviewer: true}
	a := submitArtwork(t, wf, Actor{ID: 1}, "First", "Painter")
	b := submitArtwork(t, wf, Actor{ID: 1}, "Second", "Painter")

	updated, stats, err := wf.BatchApprove(reviewer, []uint{a.ID, b.ID, 9999})
	require.NoError(t, err)

	assert.Equal(t, int64(2), updated)
	assert.Equal(t, int64(0), stats.PendingCount)
	assert.Equal(t, int64(2), stats.ApprovedCount)
}

func TestBatchApproveRejectsEmptySelection(t *testing.T) {
	wf := newTestWorkflow(t)

	_, _, err := wf.BatchApprove(Actor{ID: 9, IsReviewer: true}, nil)
	appErr := apperrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestRejectDestroysRow(t *testing.T) {
	wf := newTestWorkflow(t)
	artwork := submitArtwork(t, wf, Actor{ID: 1}, "Doomed Piece", "Painter")

	stats, err := wf.Reject(Actor{ID: 9, IsReviewer: true}, artwork.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.PendingCount)

	var count int64
	wf.db.Model(&catalog.Artwork{}).Where("id = ?", artwork.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestWithdrawOwnerOnly(t *testing.T) {
	wf := newTestWorkflow(t)
	artwork := submitArtwork(t, wf, Actor{ID: 1}, "Mine", "Painter")

	err := wf.Withdraw(Actor{ID: 2}, artwork.ID)
	appErr := apperrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	// Reviewer capability does not bypass ownership for withdrawal.
	err = wf.Withdraw(Actor{ID: 2, IsReviewer: true}, artwork.ID)
	appErr = apperrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestWithdrawApprovedArtwork(t *testing.T) {
	wf := newTestWorkflow(t)
	owner := Actor{ID: 1}
	artwork := submitArtwork(t, wf, owner, "Published", "Painter")
	_, err := wf.Approve(Actor{ID: 9, IsReviewer: true}, artwork.ID)
	require.NoError(t, err)

	err = wf.Withdraw(owner, artwork.ID)
	appErr := apperrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeInvalidState, appErr.Code)
}

func TestWithdrawPendingThenGone(t *testing.T) {
	wf := newTestWorkflow(t)
	owner := Actor{ID: 1}
	artwork := submitArtwork(t, wf, owner, "Changed My Mind", "Painter")

	require.NoError(t, wf.Withdraw(owner, artwork.ID))

	// The row is gone, so a repeat withdrawal cannot find it.
	err := wf.Withdraw(owner, artwork.ID)
	assert.ErrorIs(t, err, apperrors.ErrArtworkNotFound)
}

func TestDeletePermissions(t *testing.T) {
	wf := newTestWorkflow(t)
	owner := Actor{ID: 1}

	artwork := submitArtwork(t, wf, owner, "Target", "Painter")

	_, err := wf.Delete(Actor{ID: 2}, artwork.ID)
	appErr := apperrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	_, err = wf.Delete(owner, artwork.ID)
	require.NoError(t, err)

	// A reviewer may delete someone else's artwork in any state.
	other := submitArtwork(t, wf, owner, "Another Target", "Painter")
	_, err = wf.Approve(Actor{ID: 9, IsReviewer: true}, other.ID)
	require.NoError(t, err)
	_, err = wf.Delete(Actor{ID: 9, IsReviewer: true}, other.ID)
	require.NoError(t, err)
}

func TestOwnerStatsCountsOnlyOwnRows(t *testing.T) {
	wf := newTestWorkflow(t)
	reviewer := Actor{ID: 9, IsReviewer: true}

	mine := submitArtwork(t, wf, Actor{ID: 1}, "Mine", "Painter")
	submitArtwork(t, wf, Actor{ID: 1}, "Mine Too", "Painter")
	submitArtwork(t, wf, Actor{ID: 2}, "Theirs", "Painter")

	_, err := wf.Approve(reviewer, mine.ID)
	require.NoError(t, err)

	stats, err := wf.OwnerStats(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.ApprovedCount)
	assert.Equal(t, int64(1), stats.PendingCount)
	assert.Equal(t, int64(2), stats.TodayNewCount)
}
