package store

import (
	"testing"

	"github.com/longpt2111/food-app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Action
	}{
		{"cart show", `{"type":"SET_CART_SHOW","cartShow":true}`, SetCartShow{CartShow: true}},
		{"quantity inc", `{"type":"SET_QUANTITY","quantity":{"type":"inc"}}`, SetQuantity{Step: Increment}},
		{"price", `{"type":"SET_PRICE","price":4.25}`, SetPrice{Price: 4.25}},
		{"sign out", `{"type":"SET_USER","user":null}`, SetUser{}},
		{
			"cart items",
			`{"type":"SET_CART_ITEMS","cartItems":[{"id":"pizza1","title":"Pizza","price":10,"qty":2}]}`,
			SetCartItems{CartItems: []models.CartItem{{FoodItem: models.FoodItem{ID: "pizza1", Title: "Pizza", Price: 10}, Qty: 2}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeAction([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Type(), got.Type())
		})
	}
}

func TestDecodeAction_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"unknown type", `{"type":"SET_THEME"}`, ErrUnknownAction},
		{"missing type", `{}`, ErrUnknownAction},
		{"not json", `nope`, ErrInvalidPayload},
		{"cart show without value", `{"type":"SET_CART_SHOW"}`, ErrInvalidPayload},
		{"bad quantity step", `{"type":"SET_QUANTITY","quantity":{"type":"up"}}`, ErrInvalidPayload},
		{"negative price", `{"type":"SET_PRICE","price":-1}`, ErrInvalidPayload},
		{"zero qty line", `{"type":"SET_CART_ITEMS","cartItems":[{"id":"a","qty":0}]}`, ErrInvalidPayload},
		{"duplicate line", `{"type":"SET_CART_ITEMS","cartItems":[{"id":"a","qty":1},{"id":"a","qty":2}]}`, ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeAction([]byte(tt.body))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckViewAction(t *testing.T) {
	assert.ErrorIs(t, CheckViewAction(SetUser{}), ErrForbiddenAction)
	assert.ErrorIs(t, CheckViewAction(SetFoodItems{}), ErrForbiddenAction)
	assert.ErrorIs(t, CheckViewAction(nil), ErrUnknownAction)

	for _, a := range []Action{SetCartItems{}, SetCartShow{CartShow: true}, SetQuantity{Step: Increment}, SetPrice{Price: 3}} {
		assert.NoError(t, CheckViewAction(a), a.Type())
	}
}
