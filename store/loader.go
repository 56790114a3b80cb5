package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/longpt2111/food-app/models"
)

// CatalogFetcher loads the full menu.
type CatalogFetcher interface {
	FetchAll(ctx context.Context) ([]models.FoodItem, error)
}

// LoadTask is an in-flight menu fetch that ends in a SetFoodItems dispatch.
type LoadTask struct {
	mu        sync.Mutex
	cancelled bool
	cancel    context.CancelFunc
	done      chan struct{}
	err       error
}

// StartCatalogLoad fetches the menu in the background and dispatches
// SetFoodItems on s when it arrives. Cancelling the task before the fetch
// completes suppresses the dispatch.
func StartCatalogLoad(ctx context.Context, s *Store, catalog CatalogFetcher) *LoadTask {
	ctx, cancel := context.WithCancel(ctx)
	t := &LoadTask{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(t.done)
		defer cancel()

		items, err := catalog.FetchAll(ctx)
		if err != nil {
			t.err = fmt.Errorf("fetch food items: %w", err)
			return
		}

		t.mu.Lock()
		defer t.mu.Unlock()
		if t.cancelled {
			t.err = context.Canceled
			return
		}
		if err := ctx.Err(); err != nil {
			t.err = err
			return
		}
		t.err = s.Dispatch(SetFoodItems{FoodItems: items})
	}()

	return t
}

// Cancel aborts the fetch. It is safe to call more than once and after completion.
func (t *LoadTask) Cancel() {
	t.mu.Lock()
	t.cancelled = true
	t.mu.Unlock()
	t.cancel()
}

// Done is closed once the task has finished.
func (t *LoadTask) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task finishes and returns its error.
func (t *LoadTask) Wait() error {
	<-t.done
	return t.err
}
