package auth

// CredentialsRequest is the shared signup/signin body.
type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RenewRequest carries the id of the user whose access token is renewed.
type RenewRequest struct {
	UserID string `json:"userId"`
}

// TokenPair is returned by signup and signin.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
