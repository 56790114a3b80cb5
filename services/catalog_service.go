package services

import (
	"context"
	"errors"
	"fmt"

	menu_cache "github.com/longpt2111/food-app/cache"
	"github.com/longpt2111/food-app/models"
	"gorm.io/gorm"
)

var ErrUnknownCategory = errors.New("unknown food category")

// CatalogGateway is the menu's backing store.
type CatalogGateway interface {
	FetchAll(ctx context.Context) ([]models.FoodItem, error)
	Create(ctx context.Context, input models.FoodItemInput) (string, error)
}

// CatalogService reads and writes the food_items table.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// FetchAll returns every menu item, newest first.
func (s *CatalogService) FetchAll(ctx context.Context) ([]models.FoodItem, error) {
	items := make([]models.FoodItem, 0)
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch food items: %w", err)
	}
	return items, nil
}

// Create stores a new menu item and returns its id.
func (s *CatalogService) Create(ctx context.Context, input models.FoodItemInput) (string, error) {
	if !models.IsFoodCategory(input.Category) {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, input.Category)
	}

	item := input.ToFoodItem()
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return "", fmt.Errorf("failed to create food item: %w", err)
	}
	return item.ID, nil
}

// CachedCatalog serves FetchAll from an in-process cache and invalidates it on Create.
type CachedCatalog struct {
	next  CatalogGateway
	cache *menu_cache.Cache
}

func NewCachedCatalog(next CatalogGateway, cache *menu_cache.Cache) *CachedCatalog {
	return &CachedCatalog{next: next, cache: cache}
}

func (c *CachedCatalog) FetchAll(ctx context.Context) ([]models.FoodItem, error) {
	return c.cache.Get(ctx, c.next.FetchAll)
}

func (c *CachedCatalog) Create(ctx context.Context, input models.FoodItemInput) (string, error) {
	id, err := c.next.Create(ctx, input)
	if err != nil {
		return "", err
	}
	c.cache.Invalidate()
	return id, nil
}
