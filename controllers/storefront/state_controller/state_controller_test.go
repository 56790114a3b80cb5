package state_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/longpt2111/food-app/controllers/storefront/storefronttest"
	"github.com/longpt2111/food-app/models"
	"github.com/longpt2111/food-app/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stateEnvelope struct {
	Message string          `json:"message"`
	Error   bool            `json:"error"`
	Data    store.StateView `json:"data"`
}

func newEnv(t *testing.T) *storefronttest.Env {
	env := storefronttest.NewEnv(t, &storefronttest.Catalog{Items: []models.FoodItem{
		{ID: "f1", Title: "Pizza", Price: 10, Category: "chicken"},
	}})
	ctl := New(zap.NewNop(), nil)
	env.Router.GET("/store/state", ctl.GetState)
	env.Router.POST("/store/dispatch", ctl.Dispatch)
	env.Router.GET("/store/state/ws", ctl.StreamState)
	return env
}

func decodeState(t *testing.T, w *httptest.ResponseRecorder) stateEnvelope {
	t.Helper()
	var body stateEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGetState(t *testing.T) {
	env := newEnv(t)
	s := env.Open(t, "s1")
	require.NoError(t, store.AddMenuItemToCart(s.Store, "f1"))
	require.NoError(t, store.AddMenuItemToCart(s.Store, "f1"))

	w := env.Do(t, "s1", httptest.NewRequest(http.MethodGet, "/store/state", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeState(t, w)
	assert.Len(t, body.Data.FoodItems, 1)
	assert.Equal(t, 2, body.Data.BasketCount)
	assert.InDelta(t, 20.0, body.Data.CartTotal, 1e-9)
	assert.Equal(t, 1, body.Data.Qty)
	assert.Nil(t, body.Data.User)
}

func TestDispatch(t *testing.T) {
	env := newEnv(t)
	env.Open(t, "s1")

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"toggle cart", `{"type":"SET_CART_SHOW","cartShow":true}`, http.StatusOK},
		{"quantity", `{"type":"SET_QUANTITY","quantity":{"type":"inc"}}`, http.StatusOK},
		{"price", `{"type":"SET_PRICE","price":4.5}`, http.StatusOK},
		{"user is gateway only", `{"type":"SET_USER","user":{"uid":"x"}}`, http.StatusForbidden},
		{"menu is gateway only", `{"type":"SET_FOOD_ITEMS","foodItems":[]}`, http.StatusForbidden},
		{"unknown", `{"type":"SET_THEME"}`, http.StatusBadRequest},
		{"bad payload", `{"type":"SET_PRICE"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/store/dispatch", strings.NewReader(tt.body))
			w := env.Do(t, "s1", req)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}

	state, ok := env.Registry.Get("s1")
	require.True(t, ok)
	got := state.Store.State()
	assert.True(t, got.CartShow)
	assert.Equal(t, 2, got.Qty)
	assert.Equal(t, 4.5, got.Price)
	assert.Nil(t, got.User)
	assert.Len(t, got.FoodItems, 1)
}

func TestStreamState(t *testing.T) {
	env := newEnv(t)
	s := env.Open(t, "s1")

	srv := httptest.NewServer(env.Router)
	t.Cleanup(srv.Close)

	header := http.Header{}
	header.Add("Cookie", env.Cookie(t, "s1").String())
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/store/state/ws", header)
	require.NoError(t, err)
	defer conn.Close()

	var view store.StateView
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&view))
	assert.False(t, view.CartShow)

	require.NoError(t, s.Store.Dispatch(store.SetCartShow{CartShow: true}))

	require.NoError(t, conn.ReadJSON(&view))
	assert.True(t, view.CartShow)
}
