package store

// StateView is a snapshot enriched with the values views derive from the cart.
type StateView struct {
	AppState
	BasketCount int     `json:"basketCount"`
	CartTotal   float64 `json:"cartTotal"`
}

func NewStateView(state AppState) StateView {
	return StateView{
		AppState:    state,
		BasketCount: BasketCount(state.CartItems),
		CartTotal:   CartTotal(state.CartItems),
	}
}
