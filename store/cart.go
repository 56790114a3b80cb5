package store

import (
	"errors"
	"slices"

	"github.com/longpt2111/food-app/models"
)

var (
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrFoodItemNotFound = errors.New("food item not found")
)

// AddToCart puts one more of item in the basket: the existing line's qty goes up
// by one, otherwise a new line with qty 1 is appended.
func AddToCart(s *Store, item models.FoodItem) error {
	return s.Update(func(current AppState) (Action, error) {
		return SetCartItems{CartItems: addCartItem(current.CartItems, item)}, nil
	})
}

// AddMenuItemToCart adds the menu item with the given id, looked up in the
// store's current food items.
func AddMenuItemToCart(s *Store, id string) error {
	return s.Update(func(current AppState) (Action, error) {
		idx := slices.IndexFunc(current.FoodItems, func(f models.FoodItem) bool { return f.ID == id })
		if idx < 0 {
			return nil, ErrFoodItemNotFound
		}
		return SetCartItems{CartItems: addCartItem(current.CartItems, current.FoodItems[idx])}, nil
	})
}

// RemoveFromCart takes one of the item out of the basket, dropping the line when
// its qty reaches zero.
func RemoveFromCart(s *Store, id string) error {
	return s.Update(func(current AppState) (Action, error) {
		items, err := removeCartItem(current.CartItems, id)
		if err != nil {
			return nil, err
		}
		return SetCartItems{CartItems: items}, nil
	})
}

// BasketCount is the number of units in the basket.
func BasketCount(items []models.CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Qty
	}
	return total
}

// CartTotal is the basket's price.
func CartTotal(items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Qty)
	}
	return total
}

func addCartItem(items []models.CartItem, item models.FoodItem) []models.CartItem {
	next := slices.Clone(items)
	for i := range next {
		if next[i].ID == item.ID {
			next[i].Qty++
			return next
		}
	}
	return append(next, models.CartItem{FoodItem: item, Qty: 1})
}

func removeCartItem(items []models.CartItem, id string) ([]models.CartItem, error) {
	idx := slices.IndexFunc(items, func(c models.CartItem) bool { return c.ID == id })
	if idx < 0 {
		return nil, ErrCartItemNotFound
	}
	next := slices.Clone(items)
	if next[idx].Qty <= 1 {
		return slices.Delete(next, idx, idx+1), nil
	}
	next[idx].Qty--
	return next, nil
}
