package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account on the platform.
//
// RefreshToken holds the single active refresh token for the user (signed
// JWT, stored as issued). At most one session survives at a time: signin and
// signup overwrite it, logout clears it.
type User struct {
	ID             string  `json:"id" gorm:"type:uuid;primaryKey"`
	Username       string  `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash   string  `json:"-" gorm:"not null"`
	RefreshToken   *string `json:"-"`
	ProfilePicture string  `json:"profile_picture,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
