package domain

import (
	"context"
	"time"
)

// WaterEvent represents a single water intake/decrement event.
type WaterEvent struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	DeltaMl   float64   `json:"deltaMl"`
	CreatedAt time.Time `json:"createdAt"`
}

// WaterRepository is the port for water persistence.
type WaterRepository interface {
	// AddWaterEvent stores an event and returns it with the new total for the
	// local day of createdAt. A negative delta is capped with CapWaterDelta
	// against that total in the same atomic step. When there is nothing to
	// remove no event is stored and the returned event is nil.
	AddWaterEvent(ctx context.Context, userID int64, deltaMl float64, createdAt time.Time) (*WaterEvent, float64, error)
	DeleteWaterEvent(ctx context.Context, userID int64, id int64) error
	ListRecentWaterEvents(ctx context.Context, userID int64, limit int) ([]WaterEvent, error)
	WaterTotalForLocalDay(ctx context.Context, userID int64, localDay string) (float64, error)
}

// CapWaterDelta limits a removal to what the day holds, so a total never
// drops below zero. Additions pass through unchanged.
func CapWaterDelta(total, deltaMl float64) float64 {
	if deltaMl >= 0 {
		return deltaMl
	}
	if total <= 0 {
		return 0
	}
	return max(deltaMl, -total)
}
