// Package catalog loads food catalogs from YAML and seeds them into a
// FoodRepository.
package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"nutritrack/internal/domain"
)

//go:embed default_foods.yaml
var defaultFoods []byte

// Default returns the built-in catalog.
func Default() ([]domain.FoodItem, error) {
	return Parse(defaultFoods)
}

// LoadFile reads and parses a catalog file.
func LoadFile(path string) ([]domain.FoodItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML list of foods and validates every item.
func Parse(data []byte) ([]domain.FoodItem, error) {
	var items []domain.FoodItem
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	seen := make(map[string]bool, len(items))
	for i, it := range items {
		if err := validate(it); err != nil {
			return nil, fmt.Errorf("catalog item %d: %w", i, err)
		}
		if seen[it.ID] {
			return nil, fmt.Errorf("catalog item %d: duplicate id %q", i, it.ID)
		}
		seen[it.ID] = true
	}
	return items, nil
}

func validate(it domain.FoodItem) error {
	if it.ID == "" || it.Name == "" {
		return errors.New("id and name are required")
	}
	if it.CaloriesPer100g < 0 || it.ProteinPer100g < 0 || it.CarbsPer100g < 0 || it.FatPer100g < 0 {
		return fmt.Errorf("%s: nutrient values must be >= 0", it.ID)
	}
	return nil
}

// Seed upserts items into repo and returns how many were written.
func Seed(ctx context.Context, repo domain.FoodRepository, items []domain.FoodItem) (int, error) {
	for i, it := range items {
		if err := repo.UpsertFood(ctx, it); err != nil {
			return i, fmt.Errorf("seed %s: %w", it.ID, err)
		}
	}
	return len(items), nil
}
