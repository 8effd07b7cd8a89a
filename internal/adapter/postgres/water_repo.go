package postgres

import (
	"context"
	"fmt"
	"time"

	"nutritrack/internal/domain"
)

// AddWaterEvent caps and inserts a water event in one transaction. A
// per-user advisory lock serializes writers until commit.
func (d *DB) AddWaterEvent(ctx context.Context, userID int64, deltaMl float64, createdAt time.Time) (*domain.WaterEvent, float64, error) {
	start, end, err := dayBounds(domain.LocalDay(createdAt))
	if err != nil {
		return nil, 0, err
	}

	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1);", userID); err != nil {
		return nil, 0, fmt.Errorf("lock water events: %w", err)
	}

	var total float64
	err = tx.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(delta_ml), 0) FROM water_events WHERE user_id=$1 AND created_at >= $2 AND created_at < $3;",
		userID, start, end,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	applied := domain.CapWaterDelta(total, deltaMl)
	if applied == 0 {
		return nil, total, tx.Commit()
	}

	e := domain.WaterEvent{UserID: userID, DeltaMl: applied, CreatedAt: createdAt.UTC()}
	err = tx.QueryRowContext(ctx,
		"INSERT INTO water_events(user_id, delta_ml, created_at) VALUES($1, $2, $3) RETURNING id;",
		userID, applied, e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		return nil, 0, err
	}
	if err := tx.Commit(); err != nil {
		return nil, 0, err
	}
	return &e, total + applied, nil
}

// DeleteWaterEvent removes a water event by ID, scoped to a user.
func (d *DB) DeleteWaterEvent(ctx context.Context, userID int64, id int64) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM water_events WHERE id=$1 AND user_id=$2;", id, userID)
	return err
}

// ListRecentWaterEvents returns the most recent water events up to limit for a user.
func (d *DB) ListRecentWaterEvents(ctx context.Context, userID int64, limit int) ([]domain.WaterEvent, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, delta_ml, created_at FROM water_events WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2;", userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.WaterEvent, 0, limit)
	for rows.Next() {
		var e domain.WaterEvent
		if err := rows.Scan(&e.ID, &e.DeltaMl, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.UserID = userID
		out = append(out, e)
	}
	return out, rows.Err()
}

// WaterTotalForLocalDay returns the water intake in ml for a local calendar day for a user.
func (d *DB) WaterTotalForLocalDay(ctx context.Context, userID int64, localDay string) (float64, error) {
	start, end, err := dayBounds(localDay)
	if err != nil {
		return 0, err
	}

	var total float64
	err = d.sql.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(delta_ml), 0) FROM water_events WHERE user_id=$1 AND created_at >= $2 AND created_at < $3;",
		userID, start, end,
	).Scan(&total)
	return total, err
}
