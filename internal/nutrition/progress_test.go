package nutrition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nutritrack/internal/domain"
	"nutritrack/internal/nutrition"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		current        float64
		target         float64
		wantPercentage float64
		wantStatus     nutrition.Status
	}{
		{"half way", 50, 100, 50, nutrition.StatusBehind},
		{"over target clamps", 120, 100, 100, nutrition.StatusComplete},
		{"exactly met", 100, 100, 100, nutrition.StatusComplete},
		{"on track", 85, 100, 85, nutrition.StatusOnTrack},
		{"on track lower bound", 80, 100, 80, nutrition.StatusOnTrack},
		{"just below on track", 79, 100, 79, nutrition.StatusBehind},
		{"nothing yet", 0, 2000, 0, nutrition.StatusBehind},
		{"zero target", 500, 0, 0, nutrition.StatusBehind},
		{"zero target zero current", 0, 0, 0, nutrition.StatusBehind},
		{"negative current clamps", -20, 100, 0, nutrition.StatusBehind},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := nutrition.Classify(tc.current, tc.target)
			assert.InDelta(t, tc.wantPercentage, got.Percentage, 1e-9)
			assert.Equal(t, tc.wantStatus, got.Status)
			assert.Equal(t, tc.current, got.Current)
			assert.Equal(t, tc.target, got.Target)
		})
	}
}

func TestPercentageNeverLeavesRange(t *testing.T) {
	for _, c := range []float64{-1e9, -1, 0, 1, 99.99, 1e9} {
		for _, tgt := range []float64{-5, 0, 1, 2000} {
			p := nutrition.Percentage(c, tgt)
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 100.0)
		}
	}
}

func TestComputeDailyStats(t *testing.T) {
	meals := domain.DayMeals{
		Breakfast: []domain.FoodEntry{entry(500, 30, 60, 10)},
		Dinner:    []domain.FoodEntry{entry(1300, 90, 140, 45)},
	}
	stats := nutrition.ComputeDailyStats(meals, &domain.Profile{DailyCalorieTarget: f(1800)}, 1500)

	assert.Equal(t, float64(1800), stats.Calories)
	assert.Equal(t, float64(1800), stats.Targets.Calories)
	assert.Equal(t, float64(150), stats.Targets.Protein)
	assert.Equal(t, float64(1500), stats.WaterConsumedMl)

	p := stats.Progress()
	assert.Equal(t, nutrition.StatusComplete, p.Calories.Status)
	assert.Equal(t, nutrition.StatusOnTrack, p.Protein.Status) // 120/150
	assert.Equal(t, nutrition.StatusOnTrack, p.Carbs.Status)   // 200/250
	assert.Equal(t, nutrition.StatusOnTrack, p.Fat.Status)     // 55/65
	assert.Equal(t, nutrition.StatusBehind, p.Water.Status)
	assert.InDelta(t, 75, p.Water.Percentage, 1e-9)
}
