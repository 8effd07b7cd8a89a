package nutrition_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutritrack/internal/domain"
	"nutritrack/internal/nutrition"
)

func TestCalculateTargets_Reference(t *testing.T) {
	got, err := nutrition.CalculateTargets(nutrition.Biometrics{
		WeightKg:      70,
		HeightCm:      170,
		Age:           25,
		ActivityLevel: domain.ModeratelyActive,
		Goal:          domain.LoseWeight,
	})
	require.NoError(t, err)

	want := nutrition.Targets{Calories: 1789, Protein: 154, Carbs: 181, Fat: 50, WaterMl: 2450}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CalculateTargets mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculateTargets_MissingInput(t *testing.T) {
	tests := []struct {
		name    string
		in      nutrition.Biometrics
		missing []string
	}{
		{"no age", nutrition.Biometrics{HeightCm: 170, WeightKg: 70}, []string{"age"}},
		{"no height", nutrition.Biometrics{Age: 30, WeightKg: 70}, []string{"height"}},
		{"no weight", nutrition.Biometrics{Age: 30, HeightCm: 170}, []string{"weight"}},
		{"negative weight", nutrition.Biometrics{Age: 30, HeightCm: 170, WeightKg: -1}, []string{"weight"}},
		{"nothing", nutrition.Biometrics{}, []string{"age", "height", "weight"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := nutrition.CalculateTargets(tc.in)
			require.Error(t, err)

			var mie *nutrition.MissingInputError
			require.True(t, errors.As(err, &mie), "expected MissingInputError, got %T", err)
			assert.Equal(t, tc.missing, mie.Fields)
			assert.Contains(t, err.Error(), "enter age, height, and weight")
			assert.Equal(t, nutrition.Targets{}, got)
		})
	}
}

func TestActivityMultiplier(t *testing.T) {
	tests := []struct {
		level domain.ActivityLevel
		want  float64
	}{
		{domain.Sedentary, 1.2},
		{domain.LightlyActive, 1.375},
		{domain.ModeratelyActive, 1.55},
		{domain.VeryActive, 1.725},
		{domain.ExtremelyActive, 1.9},
		{"couch_potato", 1.55},
		{"", 1.55},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, nutrition.ActivityMultiplier(tc.level), "level %q", tc.level)
	}
}

func TestBMR_Sex(t *testing.T) {
	b := nutrition.Biometrics{Age: 25, HeightCm: 170, WeightKg: 70}
	assert.InDelta(t, 1476.5, nutrition.BMR(b), 1e-9)

	b.Sex = domain.SexFemale
	assert.InDelta(t, 1476.5, nutrition.BMR(b), 1e-9)

	b.Sex = domain.SexMale
	assert.InDelta(t, 1642.5, nutrition.BMR(b), 1e-9)
}

func TestCalculateTargets_GoalAdjustment(t *testing.T) {
	base := nutrition.Biometrics{Age: 40, HeightCm: 180, WeightKg: 80, ActivityLevel: domain.Sedentary}
	// bmr = 800 + 1125 - 200 - 161 = 1564; * 1.2 = 1876.8
	tests := []struct {
		goal domain.Goal
		want float64
	}{
		{domain.MaintainWeight, 1877},
		{domain.BuildMuscle, 1877},
		{"", 1877},
		{domain.LoseWeight, 1377},
		{domain.GainWeight, 2377},
	}
	for _, tc := range tests {
		b := base
		b.Goal = tc.goal
		got, err := nutrition.CalculateTargets(b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.Calories, "goal %q", tc.goal)
	}
}

func TestCalculateTargets_CarbsFlooredAtZero(t *testing.T) {
	got, err := nutrition.CalculateTargets(nutrition.Biometrics{
		Age:           100,
		HeightCm:      50,
		WeightKg:      200,
		ActivityLevel: domain.Sedentary,
		Goal:          domain.LoseWeight,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(1482), got.Calories)
	assert.Equal(t, float64(440), got.Protein)
	assert.Equal(t, float64(0), got.Carbs)
}
