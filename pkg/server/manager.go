package server

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/aibabysense/landing/pkg/ui"
)

// SessionManager manages all live sessions.
// It handles session creation, lookup, the session limit and shutdown.
type SessionManager struct {
	// Sessions map protected by RWMutex
	sessions map[string]*Session
	mu       sync.RWMutex
	closing  bool

	config      *SessionConfig
	clock       ui.Clock
	maxSessions int
	metrics     *Metrics

	// Counters
	totalCreated atomic.Uint64
	totalClosed  atomic.Uint64
	peakSessions int

	logger *slog.Logger
}

// NewSessionManager creates a SessionManager. maxSessions of 0 means no
// limit.
func NewSessionManager(config *SessionConfig, clock ui.Clock, maxSessions int, metrics *Metrics, logger *slog.Logger) *SessionManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionManager{
		sessions:    make(map[string]*Session),
		config:      config.withDefaults(),
		clock:       clock,
		maxSessions: maxSessions,
		metrics:     metrics,
		logger:      logger.With("component", "session_manager"),
	}
}

// Reserve reports whether a new session would be accepted right now. The
// server checks it before upgrading so a full server answers with a plain
// HTTP error.
func (sm *SessionManager) Reserve() error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.admitLocked()
}

func (sm *SessionManager) admitLocked() error {
	if sm.closing {
		return ErrServerClosed
	}
	if sm.maxSessions > 0 && len(sm.sessions) >= sm.maxSessions {
		return ErrMaxSessionsReached
	}
	return nil
}

// Create creates and registers a session for conn. The session is not
// started.
func (sm *SessionManager) Create(conn *websocket.Conn, ip string) (*Session, error) {
	sm.mu.Lock()
	if err := sm.admitLocked(); err != nil {
		sm.mu.Unlock()
		sm.metrics.sessionRejected()
		return nil, err
	}

	session := newSession(conn, sm.config, sm.clock, sm.metrics, sm.logger)
	session.IP = ip
	session.onClose = sm.release

	sm.sessions[session.ID] = session
	if len(sm.sessions) > sm.peakSessions {
		sm.peakSessions = len(sm.sessions)
	}
	active := len(sm.sessions)
	sm.mu.Unlock()

	sm.totalCreated.Add(1)
	sm.metrics.sessionOpened()

	sm.logger.Info("session created",
		"session_id", session.ID,
		"ip", ip,
		"active_sessions", active)

	return session, nil
}

// release unregisters a closed session. It runs from Session.closeInternal.
func (sm *SessionManager) release(session *Session) {
	sm.mu.Lock()
	_, exists := sm.sessions[session.ID]
	delete(sm.sessions, session.ID)
	sm.mu.Unlock()

	if !exists {
		return
	}
	sm.totalClosed.Add(1)
	sm.logger.Debug("session released", "session_id", session.ID, "active_sessions", sm.Count())
}

// Get returns the session with the given ID, or nil.
func (sm *SessionManager) Get(id string) *Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.sessions[id]
}

// Close closes a session by ID and removes it from the manager.
func (sm *SessionManager) Close(id string) {
	if session := sm.Get(id); session != nil {
		session.Close()
	}
}

// Count returns the number of live sessions.
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// Shutdown closes every session with a close frame carrying reason and
// refuses new ones. It returns ctx.Err() if ctx ends before all sessions
// have closed.
func (sm *SessionManager) Shutdown(ctx context.Context, reason string) error {
	sm.mu.Lock()
	sm.closing = true
	sessions := make([]*Session, 0, len(sm.sessions))
	for _, s := range sm.sessions {
		sessions = append(sessions, s)
	}
	sm.mu.Unlock()

	var wg sync.WaitGroup
	for _, session := range sessions {
		wg.Add(1)
		go func(s *Session) {
			defer wg.Done()
			s.CloseWithReason(reason)
		}(session)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		sm.logger.Info("session manager shutdown", "closed_sessions", len(sessions))
		return nil
	case <-ctx.Done():
		sm.logger.Warn("session manager shutdown interrupted",
			"closed_sessions", len(sessions)-sm.Count(),
			"error", ctx.Err())
		return ctx.Err()
	}
}

// ManagerStats contains aggregated session manager statistics.
type ManagerStats struct {
	Active       int
	TotalCreated uint64
	TotalClosed  uint64
	Peak         int
}

// Stats returns aggregated session statistics.
func (sm *SessionManager) Stats() ManagerStats {
	sm.mu.RLock()
	active := len(sm.sessions)
	peak := sm.peakSessions
	sm.mu.RUnlock()

	return ManagerStats{
		Active:       active,
		TotalCreated: sm.totalCreated.Load(),
		TotalClosed:  sm.totalClosed.Load(),
		Peak:         peak,
	}
}
