// ABOUTME: Signed session tokens for the login gate.
// ABOUTME: Sessions travel with each request instead of living in process-wide state.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "weekly"

// DefaultSessionTTL is how long a login stays valid.
const DefaultSessionTTL = 12 * time.Hour

var (
	ErrTokenExpired = errors.New("session expired")
	ErrTokenInvalid = errors.New("session token invalid")
)

// Claims are the signed contents of a session token.
type Claims struct {
	Username string `json:"username"`
	jwtv5.RegisteredClaims
}

// Session is the authenticated identity attached to one request.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Sessions issues and verifies session tokens.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time // jti -> token expiry
}

// NewSessions creates a session manager signing with secret.
func NewSessions(secret []byte, ttl time.Duration) (*Sessions, error) {
	if len(secret) < 16 {
		return nil, errors.New("session secret must be at least 16 bytes")
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Sessions{
		secret:  secret,
		ttl:     ttl,
		now:     time.Now,
		revoked: make(map[string]time.Time),
	}, nil
}

// Issue creates a signed token for username.
func (s *Sessions) Issue(username string) (string, Session, error) {
	now := s.now()
	sess := Session{
		ID:        uuid.New().String(),
		Username:  username,
		ExpiresAt: now.Add(s.ttl).Truncate(time.Second),
	}
	claims := Claims{
		Username: username,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        sess.ID,
			Subject:   username,
			Issuer:    issuer,
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(sess.ExpiresAt),
		},
	}

	token, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", Session{}, fmt.Errorf("sign session: %w", err)
	}
	return token, sess, nil
}

// Parse verifies a token and returns its session.
func (s *Sessions) Parse(token string) (Session, error) {
	parsed, err := jwtv5.ParseWithClaims(token, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	}, jwtv5.WithIssuer(issuer), jwtv5.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return Session{}, ErrTokenExpired
		}
		return Session{}, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Session{}, ErrTokenInvalid
	}

	sess := Session{ID: claims.ID, Username: claims.Username}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}
	if s.isRevoked(sess.ID) {
		return Session{}, ErrTokenInvalid
	}
	return sess, nil
}

// Revoke ends sess before its expiry. Later Parse calls for its token fail
// with ErrTokenInvalid.
func (s *Sessions) Revoke(sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()
	if sess.ID == "" || !sess.ExpiresAt.After(s.now()) {
		return
	}
	s.revoked[sess.ID] = sess.ExpiresAt
}

func (s *Sessions) isRevoked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.revoked[id]
	return ok
}

// pruneLocked drops revoked tokens that have expired anyway.
func (s *Sessions) pruneLocked() {
	now := s.now()
	for id, exp := range s.revoked {
		if !exp.After(now) {
			delete(s.revoked, id)
		}
	}
}

type sessionKey struct{}

// WithSession returns a copy of ctx carrying sess.
func WithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// FromContext returns the session attached to ctx, if any.
func FromContext(ctx context.Context) (Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(Session)
	return sess, ok
}
