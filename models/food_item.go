// ════════════════════════════════════════════════════════════
// MENU MODELS
// File: models/food_item.go
// ════════════════════════════════════════════════════════════

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodItem is one dish on the menu. Items are read-only once created.
type FoodItem struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string    `json:"title" gorm:"not null;index"`
	Price     float64   `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Category  string    `json:"category" gorm:"not null;index"`
	ImageURL  string    `json:"imageURL" gorm:"column:image_url;not null"`
	Calories  int       `json:"calories,omitempty" gorm:"default:0"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
}

// BeforeCreate hook - auto-generate UUID v7
func (f *FoodItem) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.Must(uuid.NewV7()).String()
	}
	return nil
}

func (FoodItem) TableName() string {
	return "food_items"
}

// FoodItemInput is the payload of the create-item form.
type FoodItemInput struct {
	Title    string  `json:"title" binding:"required,max=120" example:"Chicken Kebab"`
	Price    float64 `json:"price" binding:"required,gt=0" example:"8.5"`
	Category string  `json:"category" binding:"required" example:"chicken"`
	ImageURL string  `json:"imageURL" binding:"required,url" example:"https://res.cloudinary.com/demo/image/upload/kebab.png"`
	Calories int     `json:"calories" binding:"omitempty,min=0" example:"450"`
}

// ToFoodItem builds the record persisted for this input.
func (in FoodItemInput) ToFoodItem() FoodItem {
	return FoodItem{
		Title:    in.Title,
		Price:    in.Price,
		Category: in.Category,
		ImageURL: in.ImageURL,
		Calories: in.Calories,
	}
}

// CartItem is a FoodItem with a quantity: one line in the basket.
type CartItem struct {
	FoodItem
	Qty int `json:"qty"`
}
