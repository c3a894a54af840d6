package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers malformed tokens and signature mismatches.
var ErrInvalidToken = errors.New("invalid token")

// Service issues and verifies the two token kinds. Access and refresh tokens
// are signed with distinct secrets so one leaking does not compromise the
// other.
type Service struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// Claims is the payload carried by both token kinds: sub = user id plus the
// username, with standard issued-at/expiry claims.
type Claims struct {
	Username string `json:"username"`
	jwtlib.RegisteredClaims
}

func New(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (s *Service) AccessTTL() time.Duration { return s.accessTTL }

func (s *Service) GenerateAccess(userID, username string) (string, error) {
	return s.generate(userID, username, s.accessSecret, s.accessTTL)
}

func (s *Service) GenerateRefresh(userID, username string) (string, error) {
	return s.generate(userID, username, s.refreshSecret, s.refreshTTL)
}

func (s *Service) generate(userID, username string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyAccess validates signature and expiry of an access token.
func (s *Service) VerifyAccess(tokenStr string) (*Claims, error) {
	return verify(tokenStr, s.accessSecret)
}

// VerifyRefresh checks only the signature of a refresh token. Expiry is NOT
// enforced here: the auth service compares the returned claims against the
// current time so that expired and tampered tokens surface as different
// domain errors.
func (s *Service) VerifyRefresh(tokenStr string) (*Claims, error) {
	return verify(tokenStr, s.refreshSecret, jwtlib.WithoutClaimsValidation())
}

func verify(tokenStr string, secret []byte, opts ...jwtlib.ParserOption) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
