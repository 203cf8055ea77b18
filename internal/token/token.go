package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/eligiorbautista/niyoghub-server/internal/domain"
)

const sessionTTL = 24 * time.Hour

// Manager issues and verifies signed session credentials.
type Manager struct {
	secret []byte
}

// NewManager creates a Manager signing with the given secret.
func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs a session credential for the user.
func (m *Manager) Issue(user *domain.User) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	})
	return t.SignedString(m.secret)
}

// Verify parses the credential and returns the identity it carries.
func (m *Manager) Verify(tokenString string) (*domain.Identity, error) {
	var c claims
	t, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !t.Valid {
		return nil, domain.ErrUnauthorized
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return &domain.Identity{UserID: userID, Role: c.Role}, nil
}
