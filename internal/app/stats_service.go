package app

import (
	"context"

	"nutritrack/internal/domain"
	"nutritrack/internal/nutrition"
)

// GoalMetRatio is the share of a target at which the dashboard counts a
// goal as met.
const GoalMetRatio = 0.9

// StatsService builds the daily dashboard.
type StatsService struct {
	meals    domain.MealRepository
	water    domain.WaterRepository
	profiles domain.ProfileRepository
}

// NewStatsService creates a StatsService backed by the given repositories.
func NewStatsService(meals domain.MealRepository, water domain.WaterRepository, profiles domain.ProfileRepository) *StatsService {
	return &StatsService{meals: meals, water: water, profiles: profiles}
}

// GoalsMet flags each metric whose current value reached GoalMetRatio of
// its target.
type GoalsMet struct {
	Calories bool `json:"calories"`
	Protein  bool `json:"protein"`
	Carbs    bool `json:"carbs"`
	Fat      bool `json:"fat"`
	Water    bool `json:"water"`
}

// Count returns how many goals are met.
func (g GoalsMet) Count() int {
	n := 0
	for _, ok := range []bool{g.Calories, g.Protein, g.Carbs, g.Fat, g.Water} {
		if ok {
			n++
		}
	}
	return n
}

// DailyReport is the dashboard payload for one day.
type DailyReport struct {
	Day          string                      `json:"day"`
	Stats        nutrition.DailyStats        `json:"stats"`
	Progress     nutrition.StatsProgress     `json:"progress"`
	GoalsMet     GoalsMet                    `json:"goalsMet"`
	SlotCalories map[domain.MealSlot]float64 `json:"slotCalories"`
}

// Daily computes the report for localDay.
func (s *StatsService) Daily(ctx context.Context, userID int64, localDay string) (*DailyReport, error) {
	if !domain.ValidDay(localDay) {
		return nil, invalidf("invalid day %q", localDay)
	}
	meals, err := s.meals.LoadDay(ctx, userID, localDay)
	if err != nil {
		return nil, err
	}
	water, err := s.water.WaterTotalForLocalDay(ctx, userID, localDay)
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := nutrition.ComputeDailyStats(meals, profile, water)
	slots := make(map[domain.MealSlot]float64, len(domain.MealSlots))
	for _, slot := range domain.MealSlots {
		slots[slot] = nutrition.Sum(meals.Slot(slot)).Calories
	}

	return &DailyReport{
		Day:          localDay,
		Stats:        stats,
		Progress:     stats.Progress(),
		GoalsMet:     goalsMet(stats),
		SlotCalories: slots,
	}, nil
}

func goalsMet(s nutrition.DailyStats) GoalsMet {
	met := func(current, target float64) bool { return current >= target*GoalMetRatio }
	return GoalsMet{
		Calories: met(s.Calories, s.Targets.Calories),
		Protein:  met(s.Protein, s.Targets.Protein),
		Carbs:    met(s.Carbs, s.Targets.Carbs),
		Fat:      met(s.Fat, s.Targets.Fat),
		Water:    met(s.WaterConsumedMl, s.Targets.WaterMl),
	}
}
