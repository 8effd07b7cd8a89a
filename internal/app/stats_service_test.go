package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutritrack/internal/adapter/memory"
	"nutritrack/internal/app"
	"nutritrack/internal/domain"
	"nutritrack/internal/nutrition"
)

func TestDaily_EmptyDay(t *testing.T) {
	db := memory.New()
	svc := app.NewStatsService(db, db, db)

	r, err := svc.Daily(context.Background(), 1, testDay)
	require.NoError(t, err)
	assert.Equal(t, testDay, r.Day)
	assert.Equal(t, nutrition.DefaultTargets(), r.Stats.Targets)
	assert.Equal(t, nutrition.StatusBehind, r.Progress.Calories.Status)
	assert.Zero(t, r.GoalsMet.Count())
	assert.Len(t, r.SlotCalories, len(domain.MealSlots))
}

func TestDaily_GoalsAndProgress(t *testing.T) {
	meals := &mockMealRepo{
		loadFn: func(_ context.Context, _ int64, _ string) (domain.DayMeals, error) {
			return domain.DayMeals{
				Breakfast: []domain.FoodEntry{{Calories: 600, Protein: 40, Carbs: 80, Fat: 20}},
				Dinner:    []domain.FoodEntry{{Calories: 1300, Protein: 100, Carbs: 100, Fat: 40}},
			}, nil
		},
	}
	water := &mockWaterRepo{
		totalFn: func(_ context.Context, _ int64, _ string) (float64, error) { return 2100, nil },
	}
	svc := app.NewStatsService(meals, water, memory.New())

	r, err := svc.Daily(context.Background(), 1, testDay)
	require.NoError(t, err)

	// 1900/2000 kcal, 140/150 g protein, 180/250 g carbs, 60/65 g fat, 2100/2000 ml.
	assert.Equal(t, app.GoalsMet{Calories: true, Protein: true, Carbs: false, Fat: true, Water: true}, r.GoalsMet)
	assert.Equal(t, 4, r.GoalsMet.Count())
	assert.Equal(t, nutrition.StatusOnTrack, r.Progress.Calories.Status)
	assert.Equal(t, nutrition.StatusBehind, r.Progress.Carbs.Status)
	assert.Equal(t, nutrition.StatusComplete, r.Progress.Water.Status)
	assert.Equal(t, 100.0, r.Progress.Water.Percentage)
	assert.Equal(t, 600.0, r.SlotCalories[domain.Breakfast])
	assert.Equal(t, 1300.0, r.SlotCalories[domain.Dinner])
	assert.Zero(t, r.SlotCalories[domain.Lunch])
}

func TestDaily_ProfileTargets(t *testing.T) {
	db := memory.New()
	ctx := context.Background()
	require.NoError(t, db.SaveProfile(ctx, domain.Profile{UserID: 1, DailyCalorieTarget: f64(0)}))

	r, err := app.NewStatsService(db, db, db).Daily(ctx, 1, testDay)
	require.NoError(t, err)
	assert.Zero(t, r.Stats.Targets.Calories)
	assert.Zero(t, r.Progress.Calories.Percentage)
	assert.True(t, r.GoalsMet.Calories)
}

func TestDaily_Errors(t *testing.T) {
	db := memory.New()
	_, err := app.NewStatsService(db, db, db).Daily(context.Background(), 1, "yesterday")
	assert.Error(t, err)

	boom := errors.New("boom")
	water := &mockWaterRepo{
		totalFn: func(context.Context, int64, string) (float64, error) { return 0, boom },
	}
	_, err = app.NewStatsService(db, water, db).Daily(context.Background(), 1, testDay)
	assert.ErrorIs(t, err, boom)
}
