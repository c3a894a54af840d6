package auth

import "errors"

var (
	// ErrCredentialsTaken is returned on signup when the username is taken.
	ErrCredentialsTaken = errors.New("credentials taken")
	// ErrCredentialsIncorrect covers both unknown username and wrong
	// password so a caller cannot tell which one failed.
	ErrCredentialsIncorrect = errors.New("credentials incorrect")
	// ErrMissingUserID is returned when renew is called without a user id.
	ErrMissingUserID = errors.New("user id not provided")
	// ErrUnauthenticated is returned when the user does not exist or has no
	// stored refresh token (e.g. after logout).
	ErrUnauthenticated = errors.New("user or refresh token not found")
	// ErrInvalidRefreshToken is returned when the stored refresh token fails
	// signature verification.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	// ErrRefreshExpired is returned when the stored refresh token's expiry
	// is in the past.
	ErrRefreshExpired = errors.New("refresh token has expired")
	// ErrUserNotFound is returned by the passthrough user lookup.
	ErrUserNotFound = errors.New("user not found")
)
