package domain

import "context"

// FoodItem is a catalog food with nutrient values per 100 g.
type FoodItem struct {
	ID              string  `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	Category        string  `json:"category,omitempty" yaml:"category"`
	CaloriesPer100g float64 `json:"caloriesPer100g" yaml:"calories_per_100g"`
	ProteinPer100g  float64 `json:"proteinPer100g" yaml:"protein_per_100g"`
	CarbsPer100g    float64 `json:"carbsPer100g" yaml:"carbs_per_100g"`
	FatPer100g      float64 `json:"fatPer100g" yaml:"fat_per_100g"`
}

// FoodRepository is the port for the food catalog.
type FoodRepository interface {
	UpsertFood(ctx context.Context, item FoodItem) error
	GetFood(ctx context.Context, id string) (*FoodItem, error)
	SearchFoods(ctx context.Context, query string, limit int) ([]FoodItem, error)
}
