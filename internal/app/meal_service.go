package app

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"nutritrack/internal/domain"
	"nutritrack/internal/nutrition"
)

// DefaultServingGrams is used when a food is logged without a quantity.
const DefaultServingGrams = 100

// MealService encapsulates meal-logging use cases. It is the only place
// where food entries are created, so it owns their validation.
type MealService struct {
	meals domain.MealRepository
	foods domain.FoodRepository
	now   func() time.Time
}

// NewMealService creates a MealService backed by the given repositories.
func NewMealService(meals domain.MealRepository, foods domain.FoodRepository) *MealService {
	return &MealService{meals: meals, foods: foods, now: time.Now}
}

// DayView is a day's meals with per-slot and overall totals.
type DayView struct {
	Day    string                               `json:"day"`
	Meals  domain.DayMeals                      `json:"meals"`
	Slots  map[domain.MealSlot]nutrition.Totals `json:"slots"`
	Totals nutrition.Totals                     `json:"totals"`
}

// CustomFood is a manually entered food with explicit nutrient values.
type CustomFood struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Serving  string  `json:"serving"`
}

// GetDay returns the user's meals for localDay.
func (s *MealService) GetDay(ctx context.Context, userID int64, localDay string) (*DayView, error) {
	if !domain.ValidDay(localDay) {
		return nil, invalidf("invalid day %q", localDay)
	}
	meals, err := s.meals.LoadDay(ctx, userID, localDay)
	if err != nil {
		return nil, err
	}
	slots := make(map[domain.MealSlot]nutrition.Totals, len(domain.MealSlots))
	for _, slot := range domain.MealSlots {
		slots[slot] = nutrition.Sum(meals.Slot(slot))
	}
	return &DayView{Day: localDay, Meals: meals, Slots: slots, Totals: nutrition.Aggregate(meals)}, nil
}

// AddFood logs grams of a catalog food into slot. Nutrients are scaled from
// the per-100 g catalog values; calories are rounded to whole kcal.
func (s *MealService) AddFood(ctx context.Context, userID int64, localDay string, slot domain.MealSlot, foodID string, grams float64) (*domain.FoodEntry, error) {
	if err := checkSlotDay(slot, localDay); err != nil {
		return nil, err
	}
	if grams == 0 {
		grams = DefaultServingGrams
	}
	if grams < 0 || grams > 5000 {
		return nil, invalidf("grams must be within (0, 5000]")
	}
	food, err := s.foods.GetFood(ctx, foodID)
	if err != nil {
		return nil, err
	}
	if food == nil {
		return nil, fmt.Errorf("food %q: %w", foodID, ErrNotFound)
	}

	factor := grams / 100
	entry := domain.FoodEntry{
		ID:            uuid.NewString(),
		FoodID:        food.ID,
		Name:          food.Name,
		Calories:      math.Round(food.CaloriesPer100g * factor),
		Protein:       food.ProteinPer100g * factor,
		Carbs:         food.CarbsPer100g * factor,
		Fat:           food.FatPer100g * factor,
		Serving:       fmt.Sprintf("%gg", grams),
		QuantityGrams: grams,
		CreatedAt:     s.now(),
	}
	if err := s.meals.AddEntry(ctx, userID, localDay, slot, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// AddCustom logs a manually entered food into slot.
func (s *MealService) AddCustom(ctx context.Context, userID int64, localDay string, slot domain.MealSlot, f CustomFood) (*domain.FoodEntry, error) {
	if err := checkSlotDay(slot, localDay); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return nil, invalidf("name is required")
	}
	if f.Calories < 0 || f.Protein < 0 || f.Carbs < 0 || f.Fat < 0 {
		return nil, invalidf("nutrient values must be >= 0")
	}

	entry := domain.FoodEntry{
		ID:        uuid.NewString(),
		Name:      name,
		Calories:  f.Calories,
		Protein:   f.Protein,
		Carbs:     f.Carbs,
		Fat:       f.Fat,
		Serving:   f.Serving,
		CreatedAt: s.now(),
	}
	if err := s.meals.AddEntry(ctx, userID, localDay, slot, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Remove deletes an entry from slot. It returns ErrNotFound when no entry
// matched.
func (s *MealService) Remove(ctx context.Context, userID int64, localDay string, slot domain.MealSlot, entryID string) error {
	if err := checkSlotDay(slot, localDay); err != nil {
		return err
	}
	removed, err := s.meals.RemoveEntry(ctx, userID, localDay, slot, entryID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

func checkSlotDay(slot domain.MealSlot, localDay string) error {
	if !slot.Valid() {
		return invalidf("slot must be one of breakfast, lunch, dinner, snacks; got %q", slot)
	}
	if !domain.ValidDay(localDay) {
		return invalidf("invalid day %q", localDay)
	}
	return nil
}
