package app

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"nutritrack/internal/domain"
)

// MaxWeightKg rejects obvious typos such as a value entered in grams.
const MaxWeightKg = 650

// ErrProfileSync is returned together with a stored entry when the new
// weight could not be copied into the profile.
var ErrProfileSync = errors.New("weight stored but profile not updated")

// WeightService encapsulates weight-tracking use cases. When a profile
// repository is set, every new measurement also becomes the profile's
// current weight so target suggestions follow the scale.
type WeightService struct {
	repo     domain.WeightRepository
	profiles domain.ProfileRepository
	now      func() time.Time
}

// NewWeightService creates a WeightService. profiles may be nil.
func NewWeightService(repo domain.WeightRepository, profiles domain.ProfileRepository) *WeightService {
	return &WeightService{repo: repo, profiles: profiles, now: time.Now}
}

// GetTodayWeight returns the latest weight entry for the given local day.
func (s *WeightService) GetTodayWeight(ctx context.Context, userID int64, today string) (*domain.WeightEntry, error) {
	return s.repo.LatestWeightForLocalDay(ctx, userID, today)
}

// RecordWeight validates and stores a new weight measurement, returning the
// latest entry for today after the insert. Once the event is stored it stays
// stored: a failed profile update yields the entry and an error wrapping
// ErrProfileSync.
func (s *WeightService) RecordWeight(ctx context.Context, userID int64, value float64, unit domain.WeightUnit) (*domain.WeightEntry, string, error) {
	if !unit.Valid() {
		return nil, "", invalidf("unit must be \"kg\" or \"lb\"")
	}
	kg := domain.ConvertWeight(value, unit, domain.Kilograms)
	if value <= 0 || kg > MaxWeightKg {
		return nil, "", invalidf("value must be > 0 and at most %d kg", MaxWeightKg)
	}

	now := s.now()
	today := domain.LocalDay(now)
	if _, err := s.repo.AddWeightEvent(ctx, userID, value, unit, now); err != nil {
		return nil, today, err
	}
	syncErr := s.syncProfile(ctx, userID, kg)
	entry, err := s.repo.LatestWeightForLocalDay(ctx, userID, today)
	if err != nil {
		return nil, today, err
	}
	if syncErr != nil {
		return entry, today, fmt.Errorf("%w: %w", ErrProfileSync, syncErr)
	}
	return entry, today, nil
}

func (s *WeightService) syncProfile(ctx context.Context, userID int64, kg float64) error {
	if s.profiles == nil {
		return nil
	}
	p, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if p == nil {
		p = &domain.Profile{UserID: userID}
	}
	rounded := math.Round(kg*10) / 10
	p.WeightKg = &rounded
	return s.profiles.SaveProfile(ctx, *p)
}

// ListRecent returns the most recent weight events up to limit.
func (s *WeightService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.WeightEntry, error) {
	return s.repo.ListRecentWeightEvents(ctx, userID, limit)
}

// UndoLast deletes the most recent weight event and returns the new latest
// entry for today. The profile weight is left as is.
func (s *WeightService) UndoLast(ctx context.Context, userID int64) (bool, *domain.WeightEntry, string, error) {
	today := domain.LocalDay(s.now())
	deleted, err := s.repo.DeleteLatestWeightEvent(ctx, userID)
	if err != nil {
		return false, nil, today, err
	}
	entry, err := s.repo.LatestWeightForLocalDay(ctx, userID, today)
	if err != nil {
		return deleted, nil, today, err
	}
	return deleted, entry, today, nil
}
