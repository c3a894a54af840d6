package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post belongs to a community. LikesCount and CommentsCount are denormalized
// counters kept in sync transactionally with the like/comment rows.
type Post struct {
	ID            string `json:"id" gorm:"type:uuid;primaryKey"`
	Content       string `json:"content" gorm:"not null"`
	Photo         string `json:"photo"`
	AuthorID      string `json:"author_id" gorm:"type:uuid;index;not null"`
	CommunityID   string `json:"community_id" gorm:"type:uuid;index;not null"`
	LikesCount    int64  `json:"likes_count" gorm:"not null;default:0"`
	CommentsCount int64  `json:"comments_count" gorm:"not null;default:0"`

	Author    *User      `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Community *Community `json:"community,omitempty" gorm:"foreignKey:CommunityID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Post) TableName() string { return "posts" }

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Like marks that a user liked a post, unique per (user, post) pair.
type Like struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_post"`
	PostID    string    `json:"post_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_post"`
	CreatedAt time.Time `json:"created_at"`
}

func (Like) TableName() string { return "likes" }

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
