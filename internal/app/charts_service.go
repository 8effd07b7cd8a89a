package app

import (
	"context"
	"time"

	"nutritrack/internal/domain"
	"nutritrack/internal/nutrition"
)

// MaxChartDays bounds the window GetDaily will scan.
const MaxChartDays = 366

// ChartsService encapsulates chart data retrieval use cases.
type ChartsService struct {
	weightRepo domain.WeightRepository
	waterRepo  domain.WaterRepository
	mealRepo   domain.MealRepository
}

// NewChartsService creates a ChartsService backed by the given repositories.
func NewChartsService(wr domain.WeightRepository, wa domain.WaterRepository, mr domain.MealRepository) *ChartsService {
	return &ChartsService{weightRepo: wr, waterRepo: wa, mealRepo: mr}
}

// DayPoint is a single data point returned by GetDaily.
type DayPoint struct {
	Day      string       `json:"day"`
	WaterMl  float64      `json:"waterMl"`
	Calories float64      `json:"calories"`
	Weight   *WeightPoint `json:"weight"`
}

// WeightPoint is the optional weight value within a DayPoint.
type WeightPoint struct {
	Value float64           `json:"value"`
	Unit  domain.WeightUnit `json:"unit"`
}

// GetDaily returns per-day chart data for the last days days, with weights
// converted to the requested unit.
func (s *ChartsService) GetDaily(ctx context.Context, userID int64, days int, unit domain.WeightUnit) ([]DayPoint, error) {
	if !unit.Valid() {
		return nil, invalidf("unit must be \"kg\" or \"lb\"")
	}
	if days < 1 {
		days = 1
	}
	if days > MaxChartDays {
		days = MaxChartDays
	}

	today := time.Now().In(time.Local)
	points := make([]DayPoint, 0, days)

	for i := days - 1; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		dayStr := domain.LocalDay(d)

		waterMl, err := s.waterRepo.WaterTotalForLocalDay(ctx, userID, dayStr)
		if err != nil {
			return nil, err
		}

		entry, err := s.weightRepo.LatestWeightForLocalDay(ctx, userID, dayStr)
		if err != nil {
			return nil, err
		}

		meals, err := s.mealRepo.LoadDay(ctx, userID, dayStr)
		if err != nil {
			return nil, err
		}

		var wp *WeightPoint
		if entry != nil {
			wp = &WeightPoint{Value: domain.ConvertWeight(entry.Value, entry.Unit, unit), Unit: unit}
		}

		points = append(points, DayPoint{
			Day:      dayStr,
			WaterMl:  waterMl,
			Calories: nutrition.Aggregate(meals).Calories,
			Weight:   wp,
		})
	}
	return points, nil
}
