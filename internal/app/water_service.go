package app

import (
	"context"
	"time"

	"nutritrack/internal/domain"
)

const (
	// MaxWaterDeltaMl bounds a single water event in either direction.
	MaxWaterDeltaMl = 5000
	// GlassMl is the volume logged per glass.
	GlassMl = 250
)

// ErrNoWaterToRemove is returned when a negative event is logged against a
// day with nothing to subtract from.
var ErrNoWaterToRemove error = &invalidError{msg: "no water logged today"}

// WaterService encapsulates water-tracking use cases. A day's total never
// drops below zero.
type WaterService struct {
	repo domain.WaterRepository
	now  func() time.Time
}

// NewWaterService creates a WaterService backed by the given repository.
func NewWaterService(repo domain.WaterRepository) *WaterService {
	return &WaterService{repo: repo, now: time.Now}
}

// WaterRecord is the outcome of RecordEvent. AppliedMl differs from the
// requested delta when a removal was capped at the day's total.
type WaterRecord struct {
	ID        int64   `json:"id"`
	Day       string  `json:"day"`
	AppliedMl float64 `json:"appliedMl"`
	TotalMl   float64 `json:"totalMl"`
}

// GetTodayTotal returns the total water intake in ml for the given local day.
func (s *WaterService) GetTodayTotal(ctx context.Context, userID int64, today string) (float64, error) {
	return s.repo.WaterTotalForLocalDay(ctx, userID, today)
}

// RecordEvent validates and stores a water event for today. Removals are
// capped by the repository at the day's total.
func (s *WaterService) RecordEvent(ctx context.Context, userID int64, deltaMl float64) (*WaterRecord, error) {
	if deltaMl == 0 || deltaMl < -MaxWaterDeltaMl || deltaMl > MaxWaterDeltaMl {
		return nil, invalidf("deltaMl must be non-zero and within [-%d, %d]", MaxWaterDeltaMl, MaxWaterDeltaMl)
	}

	now := s.now()
	e, total, err := s.repo.AddWaterEvent(ctx, userID, deltaMl, now)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrNoWaterToRemove
	}
	return &WaterRecord{ID: e.ID, Day: domain.LocalDay(now), AppliedMl: e.DeltaMl, TotalMl: total}, nil
}

// ListRecent returns the most recent water events up to limit.
func (s *WaterService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.WaterEvent, error) {
	return s.repo.ListRecentWaterEvents(ctx, userID, limit)
}

// UndoLast deletes the most recent water event.
func (s *WaterService) UndoLast(ctx context.Context, userID int64) (bool, int64, error) {
	items, err := s.repo.ListRecentWaterEvents(ctx, userID, 1)
	if err != nil {
		return false, 0, err
	}
	if len(items) == 0 {
		return false, 0, nil
	}
	if err := s.repo.DeleteWaterEvent(ctx, userID, items[0].ID); err != nil {
		return false, 0, err
	}
	return true, items[0].ID, nil
}
