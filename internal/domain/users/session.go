package users

import "time"

// Session is a server-side session row. The signed bearer token carries its
// Token value in the "sid" claim, so logout can revoke the session by deleting
// the row. IsReviewer is the role flag cached at issue time; operations that
// require the capability re-read the live user record instead of trusting it.
type Session struct {
	Token      string `gorm:"size:36;primaryKey"`
	UserID     uint   `gorm:"not null;index"`
	IsReviewer bool   `gorm:"not null;default:false"`

	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null"`
}
