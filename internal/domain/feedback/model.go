package feedback

import "time"

// Feedback is append-only: created once, never updated through the API.
type Feedback struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	Category string `gorm:"size:50;not null" json:"category"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Contact  string `gorm:"size:100" json:"contact,omitempty"`
	IsRead   bool   `gorm:"not null;default:false" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
