package nutrition

import "nutritrack/internal/domain"

// DailyStats is the derived view of one day: totals, active targets and
// water consumed. It is recomputed on every read.
type DailyStats struct {
	Totals
	Targets         Targets `json:"targets"`
	WaterConsumedMl float64 `json:"waterConsumedMl"`
}

// StatsProgress classifies every tracked metric of a day.
type StatsProgress struct {
	Calories Progress `json:"calories"`
	Protein  Progress `json:"protein"`
	Carbs    Progress `json:"carbs"`
	Fat      Progress `json:"fat"`
	Water    Progress `json:"water"`
}

// ComputeDailyStats combines the day's meals, the user's profile (may be
// nil) and the water consumed.
func ComputeDailyStats(m domain.DayMeals, p *domain.Profile, waterMl float64) DailyStats {
	return DailyStats{
		Totals:          Aggregate(m),
		Targets:         ResolveTargets(p),
		WaterConsumedMl: waterMl,
	}
}

// Progress classifies the five metrics against their targets.
func (s DailyStats) Progress() StatsProgress {
	return StatsProgress{
		Calories: Classify(s.Calories, s.Targets.Calories),
		Protein:  Classify(s.Protein, s.Targets.Protein),
		Carbs:    Classify(s.Carbs, s.Targets.Carbs),
		Fat:      Classify(s.Fat, s.Targets.Fat),
		Water:    Classify(s.WaterConsumedMl, s.Targets.WaterMl),
	}
}
