package moderation

import (
	"errors"
	"strings"

	"artworld-app/internal/apperrors"
	"artworld-app/internal/domain/catalog"
	"artworld-app/internal/logger"

	"gorm.io/gorm"
)

// Actor is the resolved identity performing a transition. Handlers build it
// from the session context (with the reviewer flag re-read from the live user
// row for reviewer-gated routes), and tests build it directly.
type Actor struct {
	ID         uint
	IsReviewer bool
}

// SubmissionInput carries the user-supplied fields of a new artwork record.
type SubmissionInput struct {
	Title       string `json:"title"`
	ArtistName  string `json:"artist"`
	Year        *int   `json:"year"`
	Style       string `json:"style"`
	Medium      string `json:"medium"`
	Dimensions  string `json:"dimensions"`
	Location    string `json:"location"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Source      string `json:"source"`
}

// Workflow implements the submission lifecycle: an artwork is created pending,
// a reviewer approves it (single or batch) or rejects it, the owner may
// withdraw it while pending, and owner or reviewer may delete it in any state.
// Rejection, withdrawal and deletion all destroy the row; approved/pending is
// the entire persisted state space.
type Workflow struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Workflow {
	return &Workflow{db: db}
}

// Submit creates the artwork in the pending state, owned by the actor. The
// referenced artist is looked up by exact name and created when missing; the
// artist lookup/insert and the artwork insert share one transaction, so a
// failed artwork insert cannot leave an orphan artist behind.
func (w *Workflow) Submit(actor Actor, in SubmissionInput) (*catalog.Artwork, error) {
	var violations []string
	in.Title = strings.TrimSpace(in.Title)
	in.ArtistName = strings.TrimSpace(in.ArtistName)
	if in.Title == "" {
		violations = append(violations, "Artwork title is required")
	}
	if in.ArtistName == "" {
		violations = append(violations, "Artist name is required")
	}
	if len(violations) > 0 {
		return nil, apperrors.ValidationError(violations)
	}

	imageURL := in.ImageURL
	if imageURL == "" {
		imageURL = "/static/images/default.jpg"
	}

	ownerID := actor.ID
	artwork := catalog.Artwork{
		Title:       in.Title,
		Year:        in.Year,
		Style:       in.Style,
		Medium:      in.Medium,
		Dimensions:  in.Dimensions,
		Location:    in.Location,
		Description: in.Description,
		ImageURL:    imageURL,
		Source:      in.Source,
		SubmittedBy: &ownerID,
		IsApproved:  false,
	}

	err := w.db.Transaction(func(tx *gorm.DB) error {
		var artist catalog.Artist
		err := tx.Where("name = ?", in.ArtistName).First(&artist).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			artist = catalog.Artist{
				Name:      in.ArtistName,
				Country:   "Unknown",
				Biography: "Artist: " + in.ArtistName,
			}
			if err := tx.Create(&artist).Error; err != nil {
				return err
			}
			logger.Info("auto-created artist", "name", artist.Name, "submitter_id", actor.ID)
		} else if err != nil {
			return err
		}

		artwork.ArtistID = &artist.ID
		artwork.Artist = &artist
		return tx.Create(&artwork).Error
	})
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	logger.Info("artwork submitted", "artwork_id", artwork.ID, "submitter_id", actor.ID)
	return &artwork, nil
}

// Approve moves a pending artwork to approved. Reviewer capability is
// required regardless of ownership.
func (w *Workflow) Approve(actor Actor, artworkID uint) (*Stats, error) {
	if !actor.IsReviewer {
		return nil, apperrors.ErrReviewerRequired
	}

	artwork, err := w.find(artworkID)
	if err != nil {
		return nil, err
	}

	if err := w.db.Model(artwork).Update("is_approved", true).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	logger.Info("artwork approved", "artwork_id", artworkID, "reviewer_id", actor.ID)
	return w.Stats()
}

// BatchApprove approves every id that resolves to an existing artwork; ids
// that do not are silently skipped and the call still succeeds. Returns how
// many rows were actually updated.
func (w *Workflow) BatchApprove(actor Actor, artworkIDs []uint) (int64, *Stats, error) {
	if !actor.IsReviewer {
		return 0, nil, apperrors.ErrReviewerRequired
	}
	if len(artworkIDs) == 0 {
		return 0, nil, apperrors.ValidationError([]string{"No artworks selected"})
	}

	res := w.db.Model(&catalog.Artwork{}).
		Where("id IN ?", artworkIDs).
		Update("is_approved", true)
	if res.Error != nil {
		return 0, nil, apperrors.Internal(res.Error)
	}

	logger.Info("batch approve", "requested", len(artworkIDs), "updated", res.RowsAffected, "reviewer_id", actor.ID)
	stats, err := w.Stats()
	return res.RowsAffected, stats, err
}

// Reject destroys a pending artwork. There is no persisted rejected state.
func (w *Workflow) Reject(actor Actor, artworkID uint) (*Stats, error) {
	if !actor.IsReviewer {
		return nil, apperrors.ErrReviewerRequired
	}

	artwork, err := w.find(artworkID)
	if err != nil {
		return nil, err
	}

	if err := w.db.Delete(artwork).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	logger.Info("artwork rejected", "artwork_id", artworkID, "reviewer_id", actor.ID)
	return w.Stats()
}

// Withdraw removes the actor's own still-pending submission. Reviewer
// capability does not bypass the ownership check here; reviewers use Delete.
func (w *Workflow) Withdraw(actor Actor, artworkID uint) error {
	artwork, err := w.find(artworkID)
	if err != nil {
		return err
	}

	if artwork.SubmittedBy == nil || *artwork.SubmittedBy != actor.ID {
		return apperrors.Forbidden("You can only withdraw your own submissions")
	}
	if artwork.IsApproved {
		return apperrors.InvalidState("This artwork has already been reviewed, please contact an administrator")
	}

	if err := w.db.Delete(artwork).Error; err != nil {
		return apperrors.Internal(err)
	}

	logger.Info("artwork withdrawn", "artwork_id", artworkID, "owner_id", actor.ID)
	return nil
}

// Delete removes an artwork in any state. Allowed for the owner or any
// reviewer.
func (w *Workflow) Delete(actor Actor, artworkID uint) (*Stats, error) {
	artwork, err := w.find(artworkID)
	if err != nil {
		return nil, err
	}

	owner := artwork.SubmittedBy != nil && *artwork.SubmittedBy == actor.ID
	if !owner && !actor.IsReviewer {
		return nil, apperrors.Forbidden("You do not have permission to delete this artwork")
	}

	if err := w.db.Delete(artwork).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	logger.Info("artwork deleted", "artwork_id", artworkID, "actor_id", actor.ID, "reviewer", actor.IsReviewer)
	return w.Stats()
}

// Pending lists artworks awaiting review, newest first, artist preloaded.
func (w *Workflow) Pending() ([]catalog.Artwork, error) {
	var artworks []catalog.Artwork
	err := w.db.Where("is_approved = ?", false).
		Preload("Artist").
		Order("created_at DESC").
		Find(&artworks).Error
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return artworks, nil
}

func (w *Workflow) find(artworkID uint) (*catalog.Artwork, error) {
	var artwork catalog.Artwork
	err := w.db.First(&artwork, artworkID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrArtworkNotFound
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &artwork, nil
}
