package likes

import "errors"

var (
	ErrAlreadyLiked = errors.New("already liked this post")
	ErrLikeNotFound = errors.New("like not found")
)
