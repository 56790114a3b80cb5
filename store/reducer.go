package store

import (
	"slices"

	"github.com/longpt2111/food-app/models"
)

// AppState is everything the storefront views read.
type AppState struct {
	User      *models.UserProfile `json:"user"`
	CartShow  bool                `json:"cartShow"`
	CartItems []models.CartItem   `json:"cartItems"`
	FoodItems []models.FoodItem   `json:"foodItems"`
	Qty       int                 `json:"qty"`
	Price     float64             `json:"price"`
}

// InitialState is the state of a freshly opened store. user is the profile restored
// from durable storage, or nil.
func InitialState(user *models.UserProfile) AppState {
	return AppState{
		User:      cloneUser(user),
		CartShow:  false,
		CartItems: []models.CartItem{},
		FoodItems: []models.FoodItem{},
		Qty:       1,
		Price:     0,
	}
}

// Reduce computes the state that follows action. It never mutates state's slices;
// an unrecognised action returns state unchanged.
func Reduce(state AppState, action Action) AppState {
	switch a := action.(type) {
	case SetUser:
		state.User = cloneUser(a.User)
	case SetFoodItems:
		state.FoodItems = cloneFoodItems(a.FoodItems)
	case SetCartItems:
		state.CartItems = cloneCartItems(a.CartItems)
	case SetCartShow:
		state.CartShow = a.CartShow
	case SetQuantity:
		switch a.Step {
		case Increment:
			state.Qty++
		case Decrement:
			// qty stays a positive integer
			if state.Qty > 1 {
				state.Qty--
			}
		}
	case SetPrice:
		state.Price = a.Price
	}
	return state
}

// Clone returns a deep copy, safe to hand to callers outside the store.
func (s AppState) Clone() AppState {
	s.User = cloneUser(s.User)
	s.CartItems = cloneCartItems(s.CartItems)
	s.FoodItems = cloneFoodItems(s.FoodItems)
	return s
}

func cloneUser(u *models.UserProfile) *models.UserProfile {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}

func cloneFoodItems(items []models.FoodItem) []models.FoodItem {
	if items == nil {
		return []models.FoodItem{}
	}
	return slices.Clone(items)
}

func cloneCartItems(items []models.CartItem) []models.CartItem {
	if items == nil {
		return []models.CartItem{}
	}
	return slices.Clone(items)
}
