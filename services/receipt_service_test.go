package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/longpt2111/food-app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCartReceipt(t *testing.T) {
	items := []models.CartItem{
		{FoodItem: models.FoodItem{ID: "a", Title: "Chicken Curry", Price: 9.5}, Qty: 2},
		{FoodItem: models.FoodItem{ID: "b", Title: "Mango", Price: 3}, Qty: 1},
	}

	for _, user := range []*models.UserProfile{nil, {DisplayName: "Ada", Email: "ada@example.com"}} {
		buf, err := RenderCartReceipt(user, items, time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	}
}
