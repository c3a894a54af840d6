package communities

import "errors"

var (
	ErrCommunityNotFound = errors.New("community not found")
	ErrNotCommunityOwner = errors.New("not the community creator")
	ErrAlreadyFollowing  = errors.New("already following this community")
	ErrNotFollowing      = errors.New("not following this community")
	ErrCategoryTaken     = errors.New("community category already exists")
)
