// Package session keeps per-client filter selections in memory.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"recruitment-dashboard/internal/model"
)

var ErrNotFound = errors.New("session not found")

// Session is one client's dashboard state.
type Session struct {
	ID        string
	Selection model.Selection
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Response renders the session for the API.
func (s Session) Response() model.SessionResponse {
	return model.SessionResponse{
		ID:        s.ID,
		Selection: s.Selection.Keyed(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// Store is a mutex-guarded map of sessions expiring after ttl of inactivity.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	logger   logrus.FieldLogger
}

func NewStore(ttl time.Duration, logger logrus.FieldLogger) *Store {
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = l
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
		logger:   logger.WithField("component", "sessions"),
	}
}

// Create starts a session with every dimension set to All.
func (s *Store) Create() Session {
	now := s.now().UTC()
	sess := &Session{
		ID:        uuid.New().String(),
		Selection: model.NewSelection(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.logger.WithField("session", sess.ID).Debug("session created")
	return sess.snapshot()
}

// Get returns a copy of the session.
func (s *Store) Get(id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok || s.expired(sess, s.now()) {
		return Session{}, errors.Wrapf(ErrNotFound, "%q", id)
	}
	return sess.snapshot(), nil
}

// UpdateSelection replaces the session's selection and refreshes its TTL.
func (s *Store) UpdateSelection(id string, sel model.Selection) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok || s.expired(sess, s.now()) {
		return Session{}, errors.Wrapf(ErrNotFound, "%q", id)
	}
	sess.Selection = sel.Clone()
	sess.UpdatedAt = s.now().UTC()
	s.logger.WithFields(logrus.Fields{"session": id, "selection": sess.Selection.Keyed()}).Debug("selection updated")
	return sess.snapshot(), nil
}

// Delete removes the session.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return errors.Wrapf(ErrNotFound, "%q", id)
	}
	delete(s.sessions, id)
	return nil
}

// Sweep drops sessions idle for longer than the TTL and reports how many
// were removed.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Run sweeps expired sessions every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(s.now()); n > 0 {
				s.logger.WithField("expired", n).Info("sessions swept")
			}
		}
	}
}

func (s *Store) expired(sess *Session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.UpdatedAt) > s.ttl
}

func (sess *Session) snapshot() Session {
	out := *sess
	out.Selection = sess.Selection.Clone()
	return out
}
