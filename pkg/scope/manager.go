package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

var (
	// ErrInvalidToken is returned for malformed, mis-signed, or expired tokens.
	ErrInvalidToken = errors.New("scope: invalid token")
)

// Manager issues and verifies bearer tokens carrying a caller identity.
// Implementations are safe for concurrent use.
type Manager interface {
	// Issue signs a new token for the given payload.
	Issue(p Payload) (string, error)

	// Verify checks a token and returns the payload it carries.
	Verify(token string) (Payload, error)
}

type claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type manager struct {
	secret []byte
	ttl    time.Duration
	// verified caches token -> payload to skip repeated signature checks on
	// hot paths. Entries expire on their own TTL, never past the token's.
	verified *expirable.LRU[string, Payload]
}

// NewManager creates a token manager with the given configuration.
func NewManager(cfg Config) (Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &manager{
		secret:   []byte(cfg.Secret),
		ttl:      cfg.TokenTTL,
		verified: expirable.NewLRU[string, Payload](verifyCacheSize, nil, verifyCacheTTL),
	}, nil
}

func (m *manager) Issue(p Payload) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID:   p.UserID,
		Username: p.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("scope: failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *manager) Verify(token string) (Payload, error) {
	if p, ok := m.verified.Get(token); ok {
		return p, nil
	}

	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Payload{}, ErrInvalidToken
	}
	if c.UserID == "" {
		return Payload{}, ErrInvalidToken
	}

	p := Payload{UserID: c.UserID, Username: c.Username}
	m.verified.Add(token, p)
	return p, nil
}
