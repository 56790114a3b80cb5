package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/longpt2111/food-app/models"
)

// ActionType names a mutation intent on the wire.
type ActionType string

const (
	ActionSetUser      ActionType = "SET_USER"
	ActionSetFoodItems ActionType = "SET_FOOD_ITEMS"
	ActionSetCartItems ActionType = "SET_CART_ITEMS"
	ActionSetCartShow  ActionType = "SET_CART_SHOW"
	ActionSetQuantity  ActionType = "SET_QUANTITY"
	ActionSetPrice     ActionType = "SET_PRICE"
)

var (
	ErrUnknownAction  = errors.New("unknown action")
	ErrInvalidPayload = errors.New("invalid action payload")
	// ErrForbiddenAction marks actions only the auth and catalog gateways may dispatch.
	ErrForbiddenAction = errors.New("action is reserved for gateways")
)

// Action is a closed set: only the types declared in this file implement it.
type Action interface {
	Type() ActionType
	action()
}

// SetUser replaces the signed-in user. A nil User signs out.
type SetUser struct {
	User *models.UserProfile
}

// SetFoodItems replaces the menu wholesale.
type SetFoodItems struct {
	FoodItems []models.FoodItem
}

// SetCartItems replaces the basket wholesale.
type SetCartItems struct {
	CartItems []models.CartItem
}

// SetCartShow opens or closes the basket panel.
type SetCartShow struct {
	CartShow bool
}

// QuantityStep is the direction of a SetQuantity action.
type QuantityStep string

const (
	Increment QuantityStep = "inc"
	Decrement QuantityStep = "dec"
)

// SetQuantity moves the qty working counter by one.
type SetQuantity struct {
	Step QuantityStep
}

// SetPrice replaces the price working value.
type SetPrice struct {
	Price float64
}

func (SetUser) Type() ActionType      { return ActionSetUser }
func (SetFoodItems) Type() ActionType { return ActionSetFoodItems }
func (SetCartItems) Type() ActionType { return ActionSetCartItems }
func (SetCartShow) Type() ActionType  { return ActionSetCartShow }
func (SetQuantity) Type() ActionType  { return ActionSetQuantity }
func (SetPrice) Type() ActionType     { return ActionSetPrice }

func (SetUser) action()      {}
func (SetFoodItems) action() {}
func (SetCartItems) action() {}
func (SetCartShow) action()  {}
func (SetQuantity) action()  {}
func (SetPrice) action()     {}

// actionEnvelope is the JSON form of an action, e.g.
// {"type":"SET_QUANTITY","quantity":{"type":"inc"}}.
type actionEnvelope struct {
	Type      ActionType          `json:"type"`
	User      *models.UserProfile `json:"user,omitempty"`
	FoodItems []models.FoodItem   `json:"foodItems,omitempty"`
	CartItems []models.CartItem   `json:"cartItems,omitempty"`
	CartShow  *bool               `json:"cartShow,omitempty"`
	Quantity  *quantityPayload    `json:"quantity,omitempty"`
	Price     *float64            `json:"price,omitempty"`
}

type quantityPayload struct {
	Type QuantityStep `json:"type"`
}

// DecodeAction parses the JSON form of an action. It fails with ErrUnknownAction
// for an unrecognised type and ErrInvalidPayload when the fields the type needs
// are missing or break a state invariant.
func DecodeAction(data []byte) (Action, error) {
	var env actionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	switch env.Type {
	case ActionSetUser:
		return SetUser{User: env.User}, nil
	case ActionSetFoodItems:
		return SetFoodItems{FoodItems: env.FoodItems}, nil
	case ActionSetCartItems:
		if err := ValidateCartItems(env.CartItems); err != nil {
			return nil, err
		}
		return SetCartItems{CartItems: env.CartItems}, nil
	case ActionSetCartShow:
		if env.CartShow == nil {
			return nil, fmt.Errorf("%w: cartShow is required", ErrInvalidPayload)
		}
		return SetCartShow{CartShow: *env.CartShow}, nil
	case ActionSetQuantity:
		if env.Quantity == nil || (env.Quantity.Type != Increment && env.Quantity.Type != Decrement) {
			return nil, fmt.Errorf("%w: quantity.type must be %q or %q", ErrInvalidPayload, Increment, Decrement)
		}
		return SetQuantity{Step: env.Quantity.Type}, nil
	case ActionSetPrice:
		if env.Price == nil || *env.Price < 0 {
			return nil, fmt.Errorf("%w: price must be a non-negative number", ErrInvalidPayload)
		}
		return SetPrice{Price: *env.Price}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, env.Type)
	}
}

// ValidateCartItems checks the basket invariants: one line per item id, qty >= 1.
func ValidateCartItems(items []models.CartItem) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.ID == "" {
			return fmt.Errorf("%w: cart item without id", ErrInvalidPayload)
		}
		if item.Qty < 1 {
			return fmt.Errorf("%w: cart item %s has qty %d", ErrInvalidPayload, item.ID, item.Qty)
		}
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("%w: duplicate cart item %s", ErrInvalidPayload, item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}

func isKnown(a Action) bool {
	switch a.(type) {
	case SetUser, SetFoodItems, SetCartItems, SetCartShow, SetQuantity, SetPrice:
		return true
	}
	return false
}

// CheckViewAction reports whether a view may dispatch a directly. The user and
// the menu are owned by the auth and catalog gateways.
func CheckViewAction(a Action) error {
	switch a.(type) {
	case SetUser, SetFoodItems:
		return fmt.Errorf("%w: %s", ErrForbiddenAction, a.Type())
	case nil:
		return ErrUnknownAction
	}
	return nil
}
