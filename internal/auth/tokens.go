package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionTokenExpiry is the fixed lifetime of a session token. Tokens are
// stateless: there is no server-side revocation, so a token stays valid until
// this expiry even after logout.
const SessionTokenExpiry = 24 * time.Hour

var (
	// ErrTokenExpired is returned when the token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned when the signature does not verify or the
	// token is structurally malformed. Callers outside this package should
	// treat expired and invalid alike; the distinction is for logs only.
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims represents the session token claims.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed session tokens.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService creates a token service signing with the given secret.
// Compromise of the secret invalidates the security of all outstanding tokens.
func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Issue produces a signed token for the given user, expiring exactly
// SessionTokenExpiry from now.
func (s *TokenService) Issue(userID uint) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a session token and returns its claims. It fails with
// ErrTokenExpired past the embedded expiry and ErrTokenInvalid otherwise.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
