package moderation

import (
	"time"

	"artworld-app/internal/apperrors"
	"artworld-app/internal/domain/catalog"
)

// Stats are the aggregate counters returned after every mutating transition,
// so a dashboard can refresh without a second round trip. They are recomputed
// on demand, never maintained incrementally.
type Stats struct {
	PendingCount  int64 `json:"pending_count"`
	ApprovedCount int64 `json:"approved_count"`
	TodayNewCount int64 `json:"today_new_count"`
}

// Stats recounts pending, approved, and artworks created since local midnight.
func (w *Workflow) Stats() (*Stats, error) {
	var s Stats

	if err := w.db.Model(&catalog.Artwork{}).
		Where("is_approved = ?", false).
		Count(&s.PendingCount).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	if err := w.db.Model(&catalog.Artwork{}).
		Where("is_approved = ?", true).
		Count(&s.ApprovedCount).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if err := w.db.Model(&catalog.Artwork{}).
		Where("created_at >= ?", todayStart).
		Count(&s.TodayNewCount).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	return &s, nil
}

// OwnerStats recounts the same breakdown restricted to one submitter, for the
// user-centre dashboard.
func (w *Workflow) OwnerStats(userID uint) (*Stats, error) {
	var s Stats

	if err := w.db.Model(&catalog.Artwork{}).
		Where("submitted_by = ? AND is_approved = ?", userID, false).
		Count(&s.PendingCount).Error; err != nil {
		return nil, apperrors.Internal(err)
	}
	if err := w.db.Model(&catalog.Artwork{}).
		Where("submitted_by = ? AND is_approved = ?", userID, true).
		Count(&s.ApprovedCount).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if err := w.db.Model(&catalog.Artwork{}).
		Where("submitted_by = ? AND created_at >= ?", userID, todayStart).
		Count(&s.TodayNewCount).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	return &s, nil
}
