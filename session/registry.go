package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/longpt2111/food-app/store"
	"go.uber.org/zap"
)

var ErrSessionNotFound = errors.New("session not found")

// Registry owns every live Session, keyed by session id.
type Registry struct {
	mirror  UserMirror
	catalog store.CatalogFetcher
	logger  *zap.Logger
	now     func() time.Time

	baseCtx context.Context
	cancel  context.CancelFunc

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(mirror UserMirror, catalog store.CatalogFetcher, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Registry{
		mirror:   mirror,
		catalog:  catalog,
		logger:   logger,
		now:      time.Now,
		baseCtx:  ctx,
		cancel:   cancel,
		sessions: make(map[string]*Session),
	}
}

// Open returns the session for id, creating it on first use. A new session
// restores its user from the mirror and starts loading the menu.
func (r *Registry) Open(ctx context.Context, id string) *Session {
	r.mu.Lock()
	if s, ok := r.sessions[id]; ok {
		r.mu.Unlock()
		s.touch(r.now())
		return s
	}
	r.mu.Unlock()

	user, err := r.mirror.Load(ctx, id)
	if err != nil {
		// a broken mirror must not lock the visitor out; start signed out
		r.logger.Warn("Failed to restore user", zap.String("session", id), zap.Error(err))
		user = nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok {
		s.touch(r.now())
		return s
	}

	s := &Session{
		ID:       id,
		Store:    store.New(store.InitialState(user), r.logger.With(zap.String("session", id))),
		mirror:   r.mirror,
		catalog:  r.catalog,
		baseCtx:  r.baseCtx,
		logger:   r.logger,
		lastSeen: r.now(),
	}
	s.RefreshMenu()
	r.sessions[id] = s
	r.logger.Debug("Session opened", zap.String("session", id), zap.Bool("restored_user", user != nil))
	return s
}

// Get returns a live session without creating one.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Rotate moves the live session oldID to newID, keeping its store and any
// load in flight. oldID stops resolving and its mirror entry is cleared.
func (r *Registry) Rotate(ctx context.Context, oldID, newID string) (*Session, error) {
	r.mu.Lock()
	old, ok := r.sessions[oldID]
	if !ok {
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, oldID)
	}
	if _, taken := r.sessions[newID]; taken {
		r.mu.Unlock()
		return nil, fmt.Errorf("session %s already exists", newID)
	}

	old.mu.Lock()
	s := &Session{
		ID:       newID,
		Store:    old.Store,
		mirror:   r.mirror,
		catalog:  r.catalog,
		baseCtx:  r.baseCtx,
		logger:   r.logger,
		load:     old.load,
		lastSeen: r.now(),
	}
	old.mu.Unlock()

	delete(r.sessions, oldID)
	r.sessions[newID] = s
	r.mu.Unlock()

	if err := r.mirror.Clear(ctx, oldID); err != nil {
		r.logger.Warn("Failed to clear rotated session mirror", zap.String("session", oldID), zap.Error(err))
	}
	r.logger.Debug("Session rotated", zap.String("from", oldID), zap.String("to", newID))
	return s, nil
}

// Close tears down the session's in-memory store. The user mirror is kept so
// the next Open restores the sign-in.
func (r *Registry) Close(id string) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if ok {
		s.close()
	}
}

// Sweep closes sessions idle for longer than maxIdle and reports how many it closed.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)

	r.mu.Lock()
	var stale []*Session
	for id, s := range r.sessions {
		if s.idleSince().Before(cutoff) {
			stale = append(stale, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range stale {
		s.close()
	}
	if len(stale) > 0 {
		r.logger.Info("Swept idle sessions", zap.Int("count", len(stale)))
	}
	return len(stale)
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Shutdown cancels every in-flight load and drops all sessions.
func (r *Registry) Shutdown() {
	r.cancel()

	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}
}
