package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutritrack/internal/adapter/memory"
	"nutritrack/internal/app"
	"nutritrack/internal/domain"
)

type mockMealRepo struct {
	loadFn   func(ctx context.Context, userID int64, day string) (domain.DayMeals, error)
	addFn    func(ctx context.Context, userID int64, day string, slot domain.MealSlot, e domain.FoodEntry) error
	removeFn func(ctx context.Context, userID int64, day string, slot domain.MealSlot, id string) (bool, error)
}

func (m *mockMealRepo) LoadDay(ctx context.Context, userID int64, day string) (domain.DayMeals, error) {
	if m.loadFn != nil {
		return m.loadFn(ctx, userID, day)
	}
	return domain.DayMeals{}, nil
}

func (m *mockMealRepo) AddEntry(ctx context.Context, userID int64, day string, slot domain.MealSlot, e domain.FoodEntry) error {
	if m.addFn != nil {
		return m.addFn(ctx, userID, day, slot, e)
	}
	return nil
}

func (m *mockMealRepo) RemoveEntry(ctx context.Context, userID int64, day string, slot domain.MealSlot, id string) (bool, error) {
	if m.removeFn != nil {
		return m.removeFn(ctx, userID, day, slot, id)
	}
	return false, nil
}

const testDay = "2024-03-10"

func newMealService(t *testing.T) (*app.MealService, *memory.DB) {
	t.Helper()
	db := memory.New()
	require.NoError(t, db.UpsertFood(context.Background(), domain.FoodItem{
		ID:              "chicken-breast",
		Name:            "Chicken Breast",
		Category:        "protein",
		CaloriesPer100g: 165,
		ProteinPer100g:  31,
		CarbsPer100g:    0,
		FatPer100g:      3.6,
	}))
	return app.NewMealService(db, db), db
}

func TestAddFood_ScalesByGrams(t *testing.T) {
	svc, _ := newMealService(t)

	e, err := svc.AddFood(context.Background(), 1, testDay, domain.Lunch, "chicken-breast", 150)
	require.NoError(t, err)

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "chicken-breast", e.FoodID)
	assert.Equal(t, "Chicken Breast", e.Name)
	assert.Equal(t, 248.0, e.Calories)
	assert.InDelta(t, 46.5, e.Protein, 1e-9)
	assert.InDelta(t, 5.4, e.Fat, 1e-9)
	assert.Equal(t, "150g", e.Serving)
	assert.Equal(t, 150.0, e.QuantityGrams)
}

func TestAddFood_DefaultServing(t *testing.T) {
	svc, _ := newMealService(t)

	e, err := svc.AddFood(context.Background(), 1, testDay, domain.Dinner, "chicken-breast", 0)
	require.NoError(t, err)
	assert.Equal(t, 165.0, e.Calories)
	assert.Equal(t, "100g", e.Serving)
}

func TestAddFood_Validation(t *testing.T) {
	svc, _ := newMealService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		day   string
		slot  domain.MealSlot
		food  string
		grams float64
	}{
		{"bad slot", testDay, "brunch", "chicken-breast", 100},
		{"bad day", "10/03/2024", domain.Lunch, "chicken-breast", 100},
		{"negative grams", testDay, domain.Lunch, "chicken-breast", -1},
		{"too many grams", testDay, domain.Lunch, "chicken-breast", 5001},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddFood(ctx, 1, tc.day, tc.slot, tc.food, tc.grams)
			assert.Error(t, err)
		})
	}
}

func TestAddFood_UnknownFood(t *testing.T) {
	svc, _ := newMealService(t)

	_, err := svc.AddFood(context.Background(), 1, testDay, domain.Lunch, "unicorn", 100)
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestAddCustom(t *testing.T) {
	svc, _ := newMealService(t)
	ctx := context.Background()

	e, err := svc.AddCustom(ctx, 1, testDay, domain.Snacks, app.CustomFood{
		Name: "  Protein bar ", Calories: 210, Protein: 20, Carbs: 22, Fat: 7, Serving: "1 bar",
	})
	require.NoError(t, err)
	assert.Equal(t, "Protein bar", e.Name)
	assert.Empty(t, e.FoodID)

	_, err = svc.AddCustom(ctx, 1, testDay, domain.Snacks, app.CustomFood{Name: " "})
	assert.Error(t, err)

	_, err = svc.AddCustom(ctx, 1, testDay, domain.Snacks, app.CustomFood{Name: "x", Fat: -1})
	assert.Error(t, err)
}

func TestGetDay_Totals(t *testing.T) {
	svc, _ := newMealService(t)
	ctx := context.Background()

	_, err := svc.AddFood(ctx, 1, testDay, domain.Breakfast, "chicken-breast", 100)
	require.NoError(t, err)
	_, err = svc.AddCustom(ctx, 1, testDay, domain.Snacks, app.CustomFood{Name: "Apple", Calories: 95, Carbs: 25})
	require.NoError(t, err)
	// Other users and days are not counted.
	_, err = svc.AddCustom(ctx, 2, testDay, domain.Snacks, app.CustomFood{Name: "Cake", Calories: 500})
	require.NoError(t, err)
	_, err = svc.AddCustom(ctx, 1, "2024-03-11", domain.Snacks, app.CustomFood{Name: "Cake", Calories: 500})
	require.NoError(t, err)

	view, err := svc.GetDay(ctx, 1, testDay)
	require.NoError(t, err)
	assert.Equal(t, testDay, view.Day)
	assert.Equal(t, 260.0, view.Totals.Calories)
	assert.Equal(t, 165.0, view.Slots[domain.Breakfast].Calories)
	assert.Equal(t, 95.0, view.Slots[domain.Snacks].Calories)
	assert.Zero(t, view.Slots[domain.Lunch].Calories)
	assert.Len(t, view.Meals.All(), 2)
}

func TestRemove(t *testing.T) {
	svc, _ := newMealService(t)
	ctx := context.Background()

	e, err := svc.AddCustom(ctx, 1, testDay, domain.Lunch, app.CustomFood{Name: "Soup", Calories: 120})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Remove(ctx, 1, testDay, domain.Dinner, e.ID), app.ErrNotFound)
	assert.ErrorIs(t, svc.Remove(ctx, 2, testDay, domain.Lunch, e.ID), app.ErrNotFound)
	require.NoError(t, svc.Remove(ctx, 1, testDay, domain.Lunch, e.ID))
	assert.ErrorIs(t, svc.Remove(ctx, 1, testDay, domain.Lunch, e.ID), app.ErrNotFound)

	view, err := svc.GetDay(ctx, 1, testDay)
	require.NoError(t, err)
	assert.Zero(t, view.Totals.Calories)
}
