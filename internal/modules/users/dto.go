package users

// UpdateUserRequest is a partial profile update; nil fields are untouched.
type UpdateUserRequest struct {
	Username       *string `json:"username"`
	ProfilePicture *string `json:"profile_picture"`
}
