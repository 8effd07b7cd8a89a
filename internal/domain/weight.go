package domain

import (
	"context"
	"time"
)

// WeightUnit is the unit a body weight is logged or displayed in.
type WeightUnit string

const (
	Kilograms WeightUnit = "kg"
	Pounds    WeightUnit = "lb"
)

// Valid reports whether u is kg or lb.
func (u WeightUnit) Valid() bool {
	return u == Kilograms || u == Pounds
}

// WeightEntry is one logged body-weight measurement. Day is only set by
// per-day lookups.
type WeightEntry struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId"`
	Day       string     `json:"day"`
	Value     float64    `json:"value"`
	Unit      WeightUnit `json:"unit"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Kg returns the measurement in kilograms.
func (e WeightEntry) Kg() float64 {
	return ConvertWeight(e.Value, e.Unit, Kilograms)
}

// WeightRepository is the port for weight persistence. Events are
// append-only; undo removes the newest one.
type WeightRepository interface {
	AddWeightEvent(ctx context.Context, userID int64, value float64, unit WeightUnit, createdAt time.Time) (int64, error)
	DeleteLatestWeightEvent(ctx context.Context, userID int64) (bool, error)
	LatestWeightForLocalDay(ctx context.Context, userID int64, localDay string) (*WeightEntry, error)
	ListRecentWeightEvents(ctx context.Context, userID int64, limit int) ([]WeightEntry, error)
}
