package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/longpt2111/food-app/config"
	"github.com/longpt2111/food-app/models"
	"github.com/longpt2111/food-app/services"
	"go.uber.org/zap"
)

func init() {
	_ = godotenv.Load()
}

// main fills an empty food_items table with the starter menu.
// Usage: go run ./cmd/seed [-force]
func main() {
	force := flag.Bool("force", false, "seed even if the menu already has items")
	flag.Parse()

	log, err := config.NewLogger(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("CITY - Menu Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	db, err := config.InitDB(cfg, log)
	if err != nil {
		log.Fatal("Database unavailable", zap.Error(err))
	}
	defer db.Close()

	if err := db.Gorm.AutoMigrate(&models.FoodItem{}); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}

	var count int64
	if err := db.Gorm.Model(&models.FoodItem{}).Count(&count).Error; err != nil {
		log.Fatal("Database error", zap.Error(err))
	}
	if count > 0 && !*force {
		fmt.Printf("Menu already has %d items; rerun with -force to add the starter menu anyway\n", count)
		return
	}

	catalog := services.NewCatalogService(db.Gorm)
	ctx, cancel := config.WithTimeout()
	defer cancel()

	created := seedMenu(ctx, catalog, log)

	fmt.Println()
	fmt.Printf("✅ Seeded %d of %d menu items\n", created, len(starterMenu))
	fmt.Println("Next: start the server with go run . and open GET /api/v1/store/menu")
}

func seedMenu(ctx context.Context, catalog services.CatalogGateway, log *zap.Logger) int {
	created := 0
	for _, item := range starterMenu {
		id, err := catalog.Create(ctx, item)
		if err != nil {
			log.Error("Failed to seed item", zap.String("title", item.Title), zap.Error(err))
			continue
		}
		log.Info("✓ Seeded", zap.String("id", id), zap.String("title", item.Title))
		created++
	}
	return created
}

var starterMenu = []models.FoodItemInput{
	{Title: "Chicken Kebab", Price: 8.5, Category: "chicken", Calories: 450, ImageURL: "https://res.cloudinary.com/demo/image/upload/city/food-items/chicken-kebab.png"},
	{Title: "Fried Chicken", Price: 9.25, Category: "chicken", Calories: 620, ImageURL: "https://res.cloudinary.com/demo/image/upload/city/food-items/fried-chicken.png"},
	{Title: "Butter Chicken Curry", Price: 11, Category: "curry", Calories: 540, ImageURL: "https://res.cloudinary.com/demo/image/upload/city/food-items/butter-chicken.png"},
	{Title: "Vegetable Biryani", Price: 7.75, Category: "rice", Calories: 480, ImageURL: "https://res.cloudinary.com/demo/image/upload/city/food-items/biryani.png"},
	{Title: "Grilled Salmon", Price: 14.5, Category: "fish", Calories: 390, ImageURL: "https://res.cloudinary.com/demo/image/upload/city/food-items/salmon.png"},
	{Title: "Fresh Strawberries", Price: 4, Category: "fruits", Calories: 60, ImageURL: "https://res.cloudinary.com/demo/image/upload/city/food-items/strawberries.png"},
	{Title: "Chocolate Vanilla", Price: 5.5, Category: "icecreams", Calories: 310, ImageURL: "https://res.cloudinary.com/demo/image/upload/city/food-items/chocolate-vanilla.png"},
	{Title: "Mango Lassi", Price: 3.5, Category: "soft-drinks", Calories: 200, ImageURL: "https://res.cloudinary.com/demo/image/upload/city/food-items/mango-lassi.png"},
}
