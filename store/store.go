package store

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Listener is called with the new state after every successful dispatch.
// Listeners may read State but must not dispatch on the store that called them.
type Listener func(AppState)

// Store owns one AppState and serialises every change through Reduce.
type Store struct {
	mu        sync.Mutex
	state     AppState
	published atomic.Pointer[AppState]
	listeners map[uint64]Listener
	nextID    uint64

	// notifyMu keeps listener calls in dispatch order without holding mu.
	notifyMu sync.Mutex

	logger *zap.Logger
}

func New(initial AppState, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		state:     initial.Clone(),
		listeners: make(map[uint64]Listener),
		logger:    logger,
	}
	s.publish()
	return s
}

// State returns a snapshot of the latest applied state. It never waits on a
// dispatch in progress.
func (s *Store) State() AppState {
	return s.published.Load().Clone()
}

// publish makes the current state visible to State. Caller holds mu or owns s.
func (s *Store) publish() {
	snapshot := s.state.Clone()
	s.published.Store(&snapshot)
}

// Dispatch applies action. Unknown actions leave the state untouched and
// return ErrUnknownAction.
func (s *Store) Dispatch(action Action) error {
	return s.Update(func(AppState) (Action, error) {
		return action, nil
	})
}

// Update derives an action from the current state and applies it atomically,
// so read-modify-write sequences like the cart protocol never interleave.
// If build returns an error nothing is applied.
func (s *Store) Update(build func(current AppState) (Action, error)) error {
	s.mu.Lock()
	action, err := build(s.state.Clone())
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if !isKnown(action) {
		s.mu.Unlock()
		s.logger.Warn("Ignoring unknown action", zap.String("action", fmt.Sprintf("%T", action)))
		return fmt.Errorf("%w: %T", ErrUnknownAction, action)
	}

	s.state = Reduce(s.state, action)
	s.publish()
	snapshot := s.state.Clone()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, id := range s.listenerIDs() {
		listeners = append(listeners, s.listeners[id])
	}

	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	s.logger.Debug("Dispatched action", zap.String("type", string(action.Type())))
	for _, l := range listeners {
		l(snapshot)
	}
	return nil
}

// Subscribe registers l and returns the func that removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// listenerIDs returns ids in subscription order. Caller holds mu.
func (s *Store) listenerIDs() []uint64 {
	ids := make([]uint64, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
