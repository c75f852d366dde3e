package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind selects which signing secret and lifetime a token uses. A token
// signed for one kind never verifies as another.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
	TokenKindReset   TokenKind = "reset"
)

// ErrInvalidToken is returned for every verification failure: malformed,
// expired, wrong secret or wrong kind. Callers get no further detail.
var ErrInvalidToken = errors.New("invalid token")

// Claims carried by every signed token.
type Claims struct {
	UserID string    `json:"id"`
	Email  string    `json:"email"`
	Type   TokenKind `json:"type"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies signed, expiring tokens. It holds no
// application state; everything beyond the secrets is in the token itself.
type TokenManager struct {
	issuer  string
	secrets map[TokenKind][]byte
	ttls    map[TokenKind]time.Duration
}

func NewTokenManager(issuer, accessSecret, refreshSecret, resetSecret string, accessTTL, refreshTTL, resetTTL time.Duration) *TokenManager {
	return &TokenManager{
		issuer: issuer,
		secrets: map[TokenKind][]byte{
			TokenKindAccess:  []byte(accessSecret),
			TokenKindRefresh: []byte(refreshSecret),
			TokenKindReset:   []byte(resetSecret),
		},
		ttls: map[TokenKind]time.Duration{
			TokenKindAccess:  accessTTL,
			TokenKindRefresh: refreshTTL,
			TokenKindReset:   resetTTL,
		},
	}
}

// Issue signs a token of the given kind for the subject.
func (m *TokenManager) Issue(userID, email string, kind TokenKind) (string, error) {
	secret, ok := m.secrets[kind]
	if !ok {
		return "", ErrInvalidToken
	}

	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Type:   kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttls[kind])),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Verify parses a token and checks that it is of the expected kind. It fails
// closed: every failure mode collapses to ErrInvalidToken.
func (m *TokenManager) Verify(tokenStr string, kind TokenKind) (*Claims, error) {
	secret, ok := m.secrets[kind]
	if !ok {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Type != kind {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
