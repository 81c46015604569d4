package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/conduit-labs/conduit/domain"
)

// DefaultTokenTTL is the validity window of an issued token.
const DefaultTokenTTL = 60 * 24 * time.Hour

// Claims is the decoded, verified payload of a session token.
type Claims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed stateless session tokens.
// The signing secret is loaded once at startup and injected here.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue produces a signed token embedding the user's identity.
func (s *TokenService) Issue(userID int64, username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
	})
	return token.SignedString(s.secret)
}

// Validate verifies signature and expiry.
// Any malformed, tampered or expired token yields ErrUnauthorized.
func (s *TokenService) Validate(tokenString string) (Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, domain.ErrUnauthorized
	}
	return *claims, nil
}
