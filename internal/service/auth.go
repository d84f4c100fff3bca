package service

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/darulriyan/aplikasi-dashboard/internal/models"
)

// sessionStore keeps login sessions for the process lifetime only.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	now      func() time.Time
}

func newSessionStore(now func() time.Time) *sessionStore {
	return &sessionStore{sessions: make(map[string]models.Session), now: now}
}

func (st *sessionStore) create(email string, ttl time.Duration) models.Session {
	now := st.now()
	sess := models.Session{
		Token:     xid.New().String(),
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	st.mu.Lock()
	st.sessions[sess.Token] = sess
	st.mu.Unlock()
	return sess
}

func (st *sessionStore) get(token string) (models.Session, bool) {
	st.mu.RLock()
	sess, ok := st.sessions[token]
	st.mu.RUnlock()
	if !ok {
		return models.Session{}, false
	}
	if !st.now().Before(sess.ExpiresAt) {
		st.delete(token)
		return models.Session{}, false
	}
	return sess, true
}

func (st *sessionStore) delete(token string) {
	st.mu.Lock()
	delete(st.sessions, token)
	st.mu.Unlock()
}

func (st *sessionStore) purge() int {
	now := st.now()
	st.mu.Lock()
	defer st.mu.Unlock()
	n := 0
	for token, sess := range st.sessions {
		if !now.Before(sess.ExpiresAt) {
			delete(st.sessions, token)
			n++
		}
	}
	return n
}

// Login checks the single configured admin account. Emails compare
// case-insensitively.
func (s *Service) Login(ctx context.Context, email, password string) (models.Session, error) {
	emailOK := strings.EqualFold(strings.TrimSpace(email), s.settings.AdminEmail)
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.settings.AdminPassword)) == 1
	if !emailOK || !passOK {
		loginAttempts.WithLabelValues("rejected").Inc()
		s.logger.WarnContext(ctx, "login rejected", slog.String("email", email))
		return models.Session{}, ErrInvalidCredentials
	}

	loginAttempts.WithLabelValues("accepted").Inc()
	sess := s.sessions.create(s.settings.AdminEmail, s.settings.SessionTTL)
	s.logger.InfoContext(ctx, "login accepted", slog.String("email", sess.Email))
	return sess, nil
}

func (s *Service) Logout(ctx context.Context, token string) {
	s.sessions.delete(token)
	s.logger.DebugContext(ctx, "session closed")
}

func (s *Service) Session(_ context.Context, token string) (models.Session, error) {
	if token == "" {
		return models.Session{}, ErrUnauthorized
	}
	sess, ok := s.sessions.get(token)
	if !ok {
		return models.Session{}, ErrUnauthorized
	}
	return sess, nil
}

// PurgeSessions drops expired sessions and reports how many were removed.
func (s *Service) PurgeSessions(ctx context.Context) int {
	n := s.sessions.purge()
	if n > 0 {
		s.logger.DebugContext(ctx, "expired sessions purged", slog.Int("count", n))
	}
	return n
}
