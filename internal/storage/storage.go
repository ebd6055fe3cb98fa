package storage

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lehigh-university-libraries/swatchbook/internal/carousel"
	"github.com/lehigh-university-libraries/swatchbook/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

const (
	DefaultSessionIdle = time.Hour
	DefaultMaxSessions = 1000
)

// Session is a server-held coverflow over one set
type Session struct {
	ID        string
	Set       string
	CreatedAt time.Time

	mu     sync.Mutex
	engine *carousel.Engine
	// index whose room image a client reported broken, -1 when none
	failed   int
	lastSeen time.Time
}

// Do runs fn with exclusive access to the session's engine
func (s *Session) Do(fn func(e *carousel.Engine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.engine)
}

// Navigate runs move against the engine and forgets a reported preview
// failure when the selection changed.
func (s *Session) Navigate(move func(e *carousel.Engine) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	moved := move(s.engine)
	if moved {
		s.failed = -1
	}
	return moved
}

// PreviewFailed records that the current room image could not be loaded.
// Views of this selection show the swatch until the selection changes.
func (s *Session) PreviewFailed() models.View {
	s.mu.Lock()
	if st := s.engine.State(); len(st.Items) > 0 {
		s.failed = st.Current
	}
	s.mu.Unlock()
	return s.View()
}

// View renders the session's current state
func (s *Session) View() models.View {
	s.mu.Lock()
	v := s.engine.View()
	if s.failed >= 0 && s.failed == s.engine.State().Current {
		v = carousel.PreviewFailed(v)
	}
	s.mu.Unlock()

	v.SessionID = s.ID
	v.Set = s.Set
	return v
}

func (s *Session) Summary() models.SessionSummary {
	sum := models.SessionSummary{ID: s.ID, Set: s.Set}
	s.Do(func(e *carousel.Engine) {
		st := e.State()
		sum.Current = st.Current
		sum.Count = len(st.Items)
	})
	return sum
}

// SessionStore holds sessions in memory. Sessions not touched for the idle
// period are dropped, and once the store is full the least recently used
// session makes room for a new one.
type SessionStore struct {
	sessions    map[string]*Session
	mu          sync.Mutex
	idle        time.Duration
	maxSessions int
	now         func() time.Time
}

func New() *SessionStore {
	return NewWithLimits(DefaultMaxSessions, DefaultSessionIdle)
}

// NewWithLimits builds a store holding at most maxSessions sessions, each
// expiring after idle without access. Non-positive values disable a limit.
func NewWithLimits(maxSessions int, idle time.Duration) *SessionStore {
	return &SessionStore{
		sessions:    make(map[string]*Session),
		idle:        idle,
		maxSessions: maxSessions,
		now:         time.Now,
	}
}

// Create starts a session over images with the first image selected
func (s *SessionStore) Create(set string, images []models.Image) *Session {
	now := s.now()
	session := &Session{
		ID:        uuid.NewString(),
		Set:       set,
		CreatedAt: now,
		engine:    carousel.New(nil),
		failed:    -1,
		lastSeen:  now,
	}
	session.engine.Load(images)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.prune(now)
	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		s.evictOldest()
	}
	s.sessions[session.ID] = session
	return session
}

func (s *SessionStore) Get(sessionID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	session, exists := s.sessions[sessionID]
	if !exists {
		return nil, ErrSessionNotFound
	}
	if s.expired(session, now) {
		delete(s.sessions, sessionID)
		return nil, ErrSessionNotFound
	}
	session.lastSeen = now
	return session, nil
}

// GetAll returns every live session, oldest first
func (s *SessionStore) GetAll() []*Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prune(s.now())

	result := make([]*Session, 0, len(s.sessions))
	for _, v := range s.sessions {
		result = append(result, v)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

func (s *SessionStore) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.sessions[sessionID]; !exists {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

func (s *SessionStore) expired(session *Session, now time.Time) bool {
	return s.idle > 0 && now.Sub(session.lastSeen) > s.idle
}

// prune drops idle sessions; callers hold s.mu
func (s *SessionStore) prune(now time.Time) {
	for id, session := range s.sessions {
		if s.expired(session, now) {
			delete(s.sessions, id)
		}
	}
}

// evictOldest drops the least recently used session; callers hold s.mu
func (s *SessionStore) evictOldest() {
	var oldest *Session
	for _, session := range s.sessions {
		if oldest == nil || session.lastSeen.Before(oldest.lastSeen) {
			oldest = session
		}
	}
	if oldest != nil {
		delete(s.sessions, oldest.ID)
	}
}
