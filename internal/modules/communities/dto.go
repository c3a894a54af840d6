package communities

import "sigmagram/internal/domain"

type CreateCommunityRequest struct {
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
	HomePhoto   string `json:"home_photo"`
}

// UpdateCommunityRequest is a partial update; nil fields are left untouched.
type UpdateCommunityRequest struct {
	Category    *string `json:"category"`
	Description *string `json:"description"`
	HomePhoto   *string `json:"home_photo"`
}

// CommunityResponse is a community plus the viewer's follow status.
type CommunityResponse struct {
	domain.Community
	IsFollowed bool `json:"is_followed"`
}
