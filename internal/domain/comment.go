package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment on a post. Comments are not unique per user, so creation skips the
// duplicate pre-check that follows/likes perform, but still pairs with the
// post's comments_count inside one transaction.
type Comment struct {
	ID       string `json:"id" gorm:"type:uuid;primaryKey"`
	Content  string `json:"content" gorm:"not null"`
	AuthorID string `json:"author_id" gorm:"type:uuid;index;not null"`
	PostID   string `json:"post_id" gorm:"type:uuid;index;not null"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Comment) TableName() string { return "comments" }

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
