package catalog

import "time"

// Artwork is the entity under moderation. IsApproved is the whole state
// machine: false means pending review, true means publicly visible. There is
// no persisted rejected state; rejection deletes the row.
//
// SubmittedBy is nil for system-seeded rows, which are created already
// approved and are never subject to ownership checks.
type Artwork struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Title    string  `gorm:"size:200;not null" json:"title"`
	ArtistID *uint   `gorm:"index" json:"artist_id,omitempty"`
	Artist   *Artist `json:"artist,omitempty"`

	Year       *int   `json:"year,omitempty"`
	Style      string `gorm:"size:100;index" json:"style,omitempty"`
	Medium     string `gorm:"size:100" json:"medium,omitempty"`
	Dimensions string `gorm:"size:100" json:"dimensions,omitempty"`
	Location   string `gorm:"size:200" json:"location,omitempty"`

	Description       string `gorm:"type:text" json:"description,omitempty"`
	ArtValue          string `gorm:"type:text" json:"art_value,omitempty"`
	HistoricalContext string `gorm:"type:text" json:"historical_context,omitempty"`
	CreationStory     string `gorm:"type:text" json:"creation_story,omitempty"`

	ImageURL string `gorm:"size:300" json:"image_url,omitempty"`
	Source   string `gorm:"size:200" json:"source,omitempty"`

	SubmittedBy *uint `gorm:"index" json:"submitted_by,omitempty"`
	IsApproved  bool  `gorm:"not null;default:false;index" json:"is_approved"`

	CreatedAt time.Time `json:"created_at"`
}
