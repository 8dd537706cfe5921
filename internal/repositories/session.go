package repositories

import (
	"context"
	"github.com/myrjola/pitwall/internal/casefile"
	"github.com/myrjola/pitwall/internal/models"
	"github.com/myrjola/pitwall/internal/random"
	"log/slog"
	"sync"
)

// Session is a game identified by an opaque session ID. Access to the game state is serialised per session.
type Session struct {
	id   string
	mu   sync.Mutex
	game *models.GameState
}

// NewSession wraps game in a Session. SessionStore implementations use it to hand out sessions.
func NewSession(id string, game *models.GameState) *Session {
	return &Session{
		id:   id,
		mu:   sync.Mutex{},
		game: game,
	}
}

func (s *Session) ID() string {
	return s.id
}

// Update runs fn with exclusive access to the session's game state.
func (s *Session) Update(fn func(game *models.GameState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}

// SessionStore maps session IDs to games.
type SessionStore interface {
	// GetOrCreate returns the session for sessionID, starting a new game if the ID has not been seen before.
	GetOrCreate(ctx context.Context, sessionID string) (*Session, error)
}

// SessionRepository keeps sessions in process memory. Sessions are never evicted.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	suspects []casefile.Suspect
	rand     random.Source
	logger   *slog.Logger
}

func NewSessionRepository(rand random.Source, logger *slog.Logger) *SessionRepository {
	return &SessionRepository{
		mu:       sync.RWMutex{},
		sessions: map[string]*Session{},
		suspects: casefile.Suspects(),
		rand:     rand,
		logger:   logger.With("source", "SessionRepository"),
	}
}

// GetOrCreate implements SessionStore. The culprit of a new session is chosen uniformly at random.
func (r *SessionRepository) GetOrCreate(ctx context.Context, sessionID string) (*Session, error) {
	r.mu.RLock()
	session, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if ok {
		return session, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Another request might have created the session while we were waiting for the lock.
	if session, ok = r.sessions[sessionID]; ok {
		return session, nil
	}
	session = NewSession(sessionID, models.NewGameState(random.Pick(r.rand, r.suspects)))
	r.sessions[sessionID] = session
	r.logger.LogAttrs(ctx, slog.LevelDebug, "created session", slog.Int("sessions", len(r.sessions)))
	return session, nil
}

// Len returns the number of sessions in memory.
func (r *SessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
