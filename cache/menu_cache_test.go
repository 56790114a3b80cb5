package menu_cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/longpt2111/food-app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var menu = []models.FoodItem{{ID: "a", Title: "Chicken Curry", Price: 9}}

func TestCache_HitAfterLoad(t *testing.T) {
	c := New(time.Minute)
	var loads int32
	load := func(context.Context) ([]models.FoodItem, error) {
		atomic.AddInt32(&loads, 1)
		return menu, nil
	}

	first, err := c.Get(context.Background(), load)
	require.NoError(t, err)
	second, err := c.Get(context.Background(), load)
	require.NoError(t, err)

	assert.Equal(t, menu, first)
	assert.Equal(t, menu, second)
	assert.EqualValues(t, 1, loads)
}

func TestCache_ExpiresAfterTTL(t *testing.T) {
	c := New(time.Minute)
	now := time.Now()
	c.now = func() time.Time { return now }
	c.Set(menu)

	_, ok := c.Peek()
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = c.Peek()
	assert.False(t, ok)
}

func TestCache_InvalidateForcesReload(t *testing.T) {
	c := New(time.Minute)
	c.Set(menu)
	c.Invalidate()

	_, ok := c.Peek()
	assert.False(t, ok)
}

func TestCache_LoadErrorIsNotCached(t *testing.T) {
	c := New(time.Minute)
	boom := errors.New("db down")

	_, err := c.Get(context.Background(), func(context.Context) ([]models.FoodItem, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	_, ok := c.Peek()
	assert.False(t, ok)
}

func TestCache_ConcurrentMissesShareOneLoad(t *testing.T) {
	c := New(time.Minute)
	var loads int32
	release := make(chan struct{})
	load := func(context.Context) ([]models.FoodItem, error) {
		atomic.AddInt32(&loads, 1)
		<-release
		return menu, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := c.Get(context.Background(), load)
			assert.NoError(t, err)
			assert.Equal(t, menu, items)
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&loads), int32(2))
}

func TestCache_ReturnsCopies(t *testing.T) {
	c := New(time.Minute)
	c.Set(menu)

	items, _ := c.Peek()
	items[0].Title = "changed"

	again, _ := c.Peek()
	assert.Equal(t, "Chicken Curry", again[0].Title)
}

func TestCache_CancelledCallerDoesNotFailOthers(t *testing.T) {
	c := New(time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})
	load := func(ctx context.Context) ([]models.FoodItem, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return menu, nil
	}

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := c.Get(ctxA, load)
		errA <- err
	}()
	<-started

	type result struct {
		items []models.FoodItem
		err   error
	}
	resB := make(chan result, 1)
	go func() {
		items, err := c.Get(context.Background(), load)
		resB <- result{items, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancelA()
	assert.ErrorIs(t, <-errA, context.Canceled)

	close(release)
	got := <-resB
	require.NoError(t, got.err)
	assert.Equal(t, menu, got.items)

	cached, ok := c.Peek()
	require.True(t, ok)
	assert.Equal(t, menu, cached)
}
