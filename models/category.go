package models

// FoodCategory is a menu section shown as a filter chip on the storefront.
type FoodCategory struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	URLParamName string `json:"urlParamName"`
}

// FoodCategories is the fixed set of menu sections.
var FoodCategories = []FoodCategory{
	{ID: 1, Name: "Chicken", URLParamName: "chicken"},
	{ID: 2, Name: "Curry", URLParamName: "curry"},
	{ID: 3, Name: "Rice", URLParamName: "rice"},
	{ID: 4, Name: "Fish", URLParamName: "fish"},
	{ID: 5, Name: "Fruits", URLParamName: "fruits"},
	{ID: 6, Name: "Icecreams", URLParamName: "icecreams"},
	{ID: 7, Name: "Soft Drinks", URLParamName: "soft-drinks"},
}

// IsFoodCategory reports whether param names a known menu section.
func IsFoodCategory(param string) bool {
	for _, c := range FoodCategories {
		if c.URLParamName == param {
			return true
		}
	}
	return false
}
