package users

import (
	"time"
)

type User struct {
	ID           uint    `gorm:"primaryKey"`
	Username     string  `gorm:"size:80;not null;uniqueIndex:idx_users_username"`
	Email        string  `gorm:"size:120;not null;uniqueIndex:idx_users_email"`
	PasswordHash *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`

	Avatar     string `gorm:"size:200;not null;default:'default.jpg'"`
	IsReviewer bool   `gorm:"not null;default:false"`

	// Real-name verification, filled by the self-service verification flow.
	RealName   string `gorm:"size:80"`
	IDCard     string `gorm:"size:18"`
	Phone      string `gorm:"size:20"`
	IsVerified bool   `gorm:"not null;default:false"`

	Bio string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AvatarURL resolves the stored avatar name to a servable path.
func (u *User) AvatarURL() string {
	if u.Avatar == "" || u.Avatar == "default.jpg" {
		return "/static/images/default.jpg"
	}
	return "/static/uploads/avatars/" + u.Avatar
}
