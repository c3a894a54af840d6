package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Community groups posts under a category.
//
// FollowersCount is denormalized: it must always equal the number of
// CommunityFollower rows referencing this community. Both are mutated inside
// one transaction (see repository.FollowerRepository).
type Community struct {
	ID             string `json:"id" gorm:"type:uuid;primaryKey"`
	Category       string `json:"category" gorm:"uniqueIndex;not null"`
	Description    string `json:"description"`
	HomePhoto      string `json:"home_photo"`
	CreatorID      string `json:"creator_id" gorm:"type:uuid;index;not null"`
	FollowersCount int64  `json:"followers_count" gorm:"not null;default:0"`

	Creator *User `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Community) TableName() string { return "communities" }

func (c *Community) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CommunityFollower marks that a user follows a community. Existence of a
// row == "is following"; the composite unique index is the sole concurrency
// guard for racing follow calls.
type CommunityFollower struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_community"`
	CommunityID string    `json:"community_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_community"`
	CreatedAt   time.Time `json:"created_at"`
}

func (CommunityFollower) TableName() string { return "community_followers" }

func (f *CommunityFollower) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
