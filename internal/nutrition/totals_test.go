package nutrition_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"nutritrack/internal/domain"
	"nutritrack/internal/nutrition"
)

func entry(cal, p, c, f float64) domain.FoodEntry {
	return domain.FoodEntry{Name: "x", Calories: cal, Protein: p, Carbs: c, Fat: f}
}

func TestAggregate_Empty(t *testing.T) {
	got := nutrition.Aggregate(domain.DayMeals{})
	if diff := cmp.Diff(nutrition.Totals{}, got); diff != "" {
		t.Errorf("Aggregate(empty) mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregate_SumsAcrossSlots(t *testing.T) {
	meals := domain.DayMeals{
		Breakfast: []domain.FoodEntry{entry(105, 1.3, 27, 0.4), entry(154, 5.3, 28, 3)},
		Lunch:     []domain.FoodEntry{entry(231, 43.5, 0, 5)},
		Dinner:    []domain.FoodEntry{entry(206, 22, 0, 12)},
		Snacks:    []domain.FoodEntry{entry(164, 6, 6, 14)},
	}

	got := nutrition.Aggregate(meals)

	assert.InDelta(t, 860, got.Calories, 1e-9)
	assert.InDelta(t, 78.1, got.Protein, 1e-9)
	assert.InDelta(t, 61, got.Carbs, 1e-9)
	assert.InDelta(t, 34.4, got.Fat, 1e-9)
}

func TestAggregate_SlotIdentityIgnored(t *testing.T) {
	e := entry(100, 10, 20, 5)
	a := nutrition.Aggregate(domain.DayMeals{Breakfast: []domain.FoodEntry{e, e}})
	b := nutrition.Aggregate(domain.DayMeals{Lunch: []domain.FoodEntry{e}, Snacks: []domain.FoodEntry{e}})
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("slot placement changed totals (-a +b):\n%s", diff)
	}
}

func TestAggregate_NegativeValuesPropagate(t *testing.T) {
	meals := domain.DayMeals{
		Dinner: []domain.FoodEntry{entry(300, 10, 10, 10), entry(-50, -1, 0, -2)},
	}
	got := nutrition.Aggregate(meals)
	want := nutrition.Totals{Calories: 250, Protein: 9, Carbs: 10, Fat: 8}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	meals := domain.DayMeals{
		Breakfast: []domain.FoodEntry{entry(105, 1.3, 27, 0.4)},
		Snacks:    []domain.FoodEntry{entry(164, 6, 6, 14)},
	}
	first := nutrition.Aggregate(meals)
	second := nutrition.Aggregate(meals)
	assert.Equal(t, first, second)
	assert.Len(t, meals.Breakfast, 1)
}

func TestSum(t *testing.T) {
	got := nutrition.Sum([]domain.FoodEntry{entry(1, 2, 3, 4), entry(10, 20, 30, 40)})
	assert.Equal(t, nutrition.Totals{Calories: 11, Protein: 22, Carbs: 33, Fat: 44}, got)
	assert.Equal(t, nutrition.Totals{}, nutrition.Sum(nil))
}
