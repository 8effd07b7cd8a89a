package app

import (
	"context"
	"strings"

	"nutritrack/internal/domain"
)

// MaxSearchResults caps a single catalog search.
const MaxSearchResults = 50

// FoodService encapsulates food catalog use cases.
type FoodService struct {
	repo domain.FoodRepository
}

// NewFoodService creates a FoodService backed by the given repository.
func NewFoodService(repo domain.FoodRepository) *FoodService {
	return &FoodService{repo: repo}
}

// Search returns catalog foods whose name contains query. A blank query
// returns no results.
func (s *FoodService) Search(ctx context.Context, query string, limit int) ([]domain.FoodItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.FoodItem{}, nil
	}
	if limit <= 0 || limit > MaxSearchResults {
		limit = MaxSearchResults
	}
	return s.repo.SearchFoods(ctx, query, limit)
}
