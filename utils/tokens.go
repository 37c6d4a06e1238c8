package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"johuart/internal/models"
)

// TokenTTL is the fixed lifetime of an issued identity token. The cookie
// carrying the token is session-scoped; this expiry is the real control.
const TokenTTL = time.Hour

// CredentialCookie is the name of the cookie carrying the identity token.
const CredentialCookie = "access_token"

type Manager struct {
	signingKey string
}

func NewManager(signingKey string) (*Manager, error) {
	if signingKey == "" {
		return nil, errors.New("empty signing key")
	}

	return &Manager{signingKey: signingKey}, nil
}

// Issue signs a token for the given identity claim with the default lifetime.
// The claim is caller-supplied and is not cross-checked against the user
// registry; see the trust-model note in the README.
func (m *Manager) Issue(email string) (string, error) {
	return m.NewJWT(email, TokenTTL)
}

func (m *Manager) NewJWT(email string, ttl time.Duration) (string, error) {
	if email == "" {
		return "", errors.New("empty identity claim")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, models.Claims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			Subject:   email,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
	})

	return token.SignedString([]byte(m.signingKey))
}

// Parse verifies signature and expiry and returns the identity claim.
// Every failure mode collapses to ErrInvalidToken; absent tokens are the
// caller's responsibility to detect before calling Parse.
func (m *Manager) Parse(accessToken string) (string, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, models.ErrInvalidToken
		}
		return []byte(m.signingKey), nil
	})
	if err != nil || !token.Valid {
		return "", models.ErrInvalidToken
	}
	if claims.Email == "" {
		return "", models.ErrInvalidToken
	}

	return claims.Email, nil
}
