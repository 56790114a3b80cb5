package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/longpt2111/food-app/models"
	"github.com/longpt2111/food-app/store"
	"go.uber.org/zap"
)

var ErrNotAuthenticated = errors.New("not authenticated")

// UserMirror is durable storage for the signed-in profile of a session.
type UserMirror interface {
	Load(ctx context.Context, sessionID string) (*models.UserProfile, error)
	Save(ctx context.Context, sessionID string, profile *models.UserProfile) error
	Clear(ctx context.Context, sessionID string) error
}

// Session is one visitor's storefront: its store plus the collaborators that feed it.
type Session struct {
	ID    string
	Store *store.Store

	mirror  UserMirror
	catalog store.CatalogFetcher
	baseCtx context.Context
	logger  *zap.Logger

	mu       sync.Mutex
	load     *store.LoadTask
	lastSeen time.Time
}

// User returns the signed-in profile, or ErrNotAuthenticated.
func (s *Session) User() (*models.UserProfile, error) {
	user := s.Store.State().User
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	return user, nil
}

// SignIn mirrors profile to durable storage and then records it as the
// session's user. A failed save leaves the session signed out.
func (s *Session) SignIn(ctx context.Context, profile *models.UserProfile) error {
	if profile == nil {
		return errors.New("profile is required")
	}
	if err := s.mirror.Save(ctx, s.ID, profile); err != nil {
		return fmt.Errorf("failed to mirror user: %w", err)
	}
	if err := s.Store.Dispatch(store.SetUser{User: profile}); err != nil {
		if clearErr := s.mirror.Clear(ctx, s.ID); clearErr != nil {
			s.logger.Error("Failed to roll back user mirror", zap.String("session", s.ID), zap.Error(clearErr))
		}
		return err
	}
	s.logger.Info("User signed in", zap.String("session", s.ID), zap.String("uid", profile.UID))
	return nil
}

// SignOut clears the durable mirror and the user slice.
func (s *Session) SignOut(ctx context.Context) error {
	clearErr := s.mirror.Clear(ctx, s.ID)
	if err := s.Store.Dispatch(store.SetUser{User: nil}); err != nil {
		return err
	}
	if clearErr != nil {
		return fmt.Errorf("failed to clear user mirror: %w", clearErr)
	}
	s.logger.Info("User signed out", zap.String("session", s.ID))
	return nil
}

// RefreshMenu starts a new catalog load, cancelling any load still in flight,
// and returns the new task.
func (s *Session) RefreshMenu() *store.LoadTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.load != nil {
		s.load.Cancel()
	}
	s.load = store.StartCatalogLoad(s.baseCtx, s.Store, s.catalog)

	task := s.load
	go func() {
		if err := task.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Warn("Menu load failed", zap.String("session", s.ID), zap.Error(err))
		}
	}()
	return task
}

// MenuLoad returns the most recent catalog load task.
func (s *Session) MenuLoad() *store.LoadTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// close cancels work owned by the session and waits for it to stop.
func (s *Session) close() {
	s.mu.Lock()
	load := s.load
	s.mu.Unlock()
	if load != nil {
		load.Cancel()
		<-load.Done()
	}
}
