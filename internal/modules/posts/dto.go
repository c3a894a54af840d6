package posts

import "sigmagram/internal/domain"

type CreatePostRequest struct {
	Content     string `json:"content" binding:"required"`
	Photo       string `json:"photo"`
	CommunityID string `json:"community_id" binding:"required"`
}

// UpdatePostRequest is a partial update; nil fields are left untouched.
type UpdatePostRequest struct {
	Content *string `json:"content"`
	Photo   *string `json:"photo"`
}

// PostResponse is a post plus the viewer's like status.
type PostResponse struct {
	domain.Post
	IsLiked bool `json:"is_liked"`
}
