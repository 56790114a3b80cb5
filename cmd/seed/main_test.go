package main

import (
	"context"
	"errors"
	"testing"

	"github.com/longpt2111/food-app/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recordingCatalog struct {
	created []models.FoodItemInput
	failOn  string
}

func (r *recordingCatalog) FetchAll(context.Context) ([]models.FoodItem, error) { return nil, nil }

func (r *recordingCatalog) Create(_ context.Context, in models.FoodItemInput) (string, error) {
	if in.Title == r.failOn {
		return "", errors.New("insert failed")
	}
	r.created = append(r.created, in)
	return "id-" + in.Title, nil
}

func TestStarterMenuIsValid(t *testing.T) {
	for _, item := range starterMenu {
		assert.True(t, models.IsFoodCategory(item.Category), item.Title)
		assert.Greater(t, item.Price, 0.0, item.Title)
		assert.NotEmpty(t, item.ImageURL, item.Title)
	}
}

func TestSeedMenu_SkipsFailures(t *testing.T) {
	catalog := &recordingCatalog{failOn: starterMenu[0].Title}

	created := seedMenu(context.Background(), catalog, zap.NewNop())

	assert.Equal(t, len(starterMenu)-1, created)
	assert.Len(t, catalog.created, len(starterMenu)-1)
}
