package store

import (
	"sync"
	"testing"

	"github.com/longpt2111/food-app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCart_SameItemTwiceIncrementsQty(t *testing.T) {
	s := New(InitialState(nil), nil)

	require.NoError(t, AddToCart(s, pizza))
	require.NoError(t, AddToCart(s, pizza))

	items := s.State().CartItems
	require.Len(t, items, 1)
	assert.Equal(t, "pizza1", items[0].ID)
	assert.Equal(t, 2, items[0].Qty)
}

func TestRemoveFromCart_LastUnitDropsLine(t *testing.T) {
	s := New(InitialState(nil), nil)
	require.NoError(t, AddToCart(s, pizza))

	require.NoError(t, RemoveFromCart(s, "pizza1"))

	assert.Empty(t, s.State().CartItems)
}

func TestRemoveFromCart_UnknownItem(t *testing.T) {
	s := New(InitialState(nil), nil)
	require.NoError(t, AddToCart(s, pizza))
	before := s.State()

	err := RemoveFromCart(s, "nope")

	assert.ErrorIs(t, err, ErrCartItemNotFound)
	assert.Equal(t, before, s.State())
}

func TestBasketCount(t *testing.T) {
	s := New(InitialState(nil), nil)
	require.NoError(t, AddToCart(s, pizza))
	require.NoError(t, AddToCart(s, pizza))
	require.NoError(t, AddToCart(s, burger))

	items := s.State().CartItems
	assert.Equal(t, 3, BasketCount(items))
	assert.InDelta(t, 26.5, CartTotal(items), 1e-9)
	assert.Zero(t, BasketCount(nil))
}

func TestCartScenario(t *testing.T) {
	s := New(InitialState(nil), nil)
	item := models.FoodItem{ID: "pizza1"}
	lines := func() []models.CartItem { return s.State().CartItems }

	require.Empty(t, lines())

	require.NoError(t, AddToCart(s, item))
	assert.Equal(t, []models.CartItem{{FoodItem: item, Qty: 1}}, lines())

	require.NoError(t, AddToCart(s, item))
	assert.Equal(t, []models.CartItem{{FoodItem: item, Qty: 2}}, lines())

	require.NoError(t, RemoveFromCart(s, "pizza1"))
	assert.Equal(t, []models.CartItem{{FoodItem: item, Qty: 1}}, lines())

	require.NoError(t, RemoveFromCart(s, "pizza1"))
	assert.Equal(t, []models.CartItem{}, lines())
}

func TestAddMenuItemToCart(t *testing.T) {
	s := New(InitialState(nil), nil)
	require.NoError(t, s.Dispatch(SetFoodItems{FoodItems: []models.FoodItem{pizza, burger}}))

	require.NoError(t, AddMenuItemToCart(s, "burger1"))
	assert.ErrorIs(t, AddMenuItemToCart(s, "missing"), ErrFoodItemNotFound)

	items := s.State().CartItems
	require.Len(t, items, 1)
	assert.Equal(t, burger, items[0].FoodItem)
}

func TestAddToCart_ConcurrentAddsKeepOneLine(t *testing.T) {
	s := New(InitialState(nil), nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = AddToCart(s, pizza)
		}()
	}
	wg.Wait()

	items := s.State().CartItems
	require.Len(t, items, 1)
	assert.Equal(t, 50, items[0].Qty)
	assert.NoError(t, ValidateCartItems(items))
}

func TestNewStateView(t *testing.T) {
	state := InitialState(nil)
	state.CartItems = []models.CartItem{
		{FoodItem: models.FoodItem{ID: "a", Price: 2.5}, Qty: 2},
		{FoodItem: models.FoodItem{ID: "b", Price: 1}, Qty: 3},
	}

	view := NewStateView(state)
	assert.Equal(t, 5, view.BasketCount)
	assert.InDelta(t, 8.0, view.CartTotal, 1e-9)
	assert.Equal(t, state, view.AppState)
}
