// Package auth covers credential hashing and bearer token issuance.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fittrack-app/fittrack/internal/app/apperr"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 7 * 24 * time.Hour

// Digest hashes a plaintext password. Single-round SHA-256 hex, kept
// for wire compatibility with the existing account database.
// TODO: migrate stored hashes to bcrypt behind a version prefix.
func Digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyDigest compares a plaintext password against a stored digest
// in constant time.
func VerifyDigest(password, storedHash string) bool {
	computed := Digest(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}

// Claims is the token payload. Subject carries the user ID.
type Claims struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager issues and validates HS256 bearer tokens.
type Manager struct {
	secret   []byte
	issuer   string
	audience string
	now      func() time.Time
}

// NewManager builds a Manager around a shared signing secret.
func NewManager(secret, issuer, audience string) *Manager {
	return &Manager{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		now:      time.Now,
	}
}

// SetClock overrides the manager clock. Test hook.
func (m *Manager) SetClock(now func() time.Time) { m.now = now }

// Issue signs a token for the given identity, valid for TokenTTL.
func (m *Manager) Issue(userID, email, username string) (string, time.Time, error) {
	now := m.now().UTC()
	expires := now.Add(TokenTTL)
	claims := Claims{
		Email:    email,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// Validate parses and verifies a token, returning its claims.
func (m *Manager) Validate(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.Unauthorizedf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithTimeFunc(func() time.Time { return m.now() }),
	)
	if err != nil {
		return nil, apperr.Unauthorizedf("invalid token: %v", err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, apperr.Unauthorizedf("invalid token")
	}
	return claims, nil
}
