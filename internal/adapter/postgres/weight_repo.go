package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"nutritrack/internal/domain"
)

// AddWeightEvent inserts a new weight event.
func (d *DB) AddWeightEvent(ctx context.Context, userID int64, value float64, unit domain.WeightUnit, createdAt time.Time) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO weight_events(user_id, value, unit, created_at) VALUES($1, $2, $3, $4) RETURNING id;",
		userID, value, string(unit), createdAt.UTC(),
	).Scan(&id)
	return id, err
}

// DeleteLatestWeightEvent removes the user's most recent weight event.
func (d *DB) DeleteLatestWeightEvent(ctx context.Context, userID int64) (bool, error) {
	res, err := d.sql.ExecContext(ctx,
		"DELETE FROM weight_events WHERE id = (SELECT id FROM weight_events WHERE user_id=$1 ORDER BY created_at DESC LIMIT 1);",
		userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// LatestWeightForLocalDay returns the most recent weight entry for a local calendar day.
func (d *DB) LatestWeightForLocalDay(ctx context.Context, userID int64, localDay string) (*domain.WeightEntry, error) {
	start, end, err := dayBounds(localDay)
	if err != nil {
		return nil, err
	}

	row := d.sql.QueryRowContext(ctx,
		"SELECT id, value, unit, created_at FROM weight_events WHERE user_id=$1 AND created_at >= $2 AND created_at < $3 ORDER BY created_at DESC LIMIT 1;",
		userID, start, end,
	)

	e := domain.WeightEntry{UserID: userID, Day: localDay}
	if err := row.Scan(&e.ID, &e.Value, &e.Unit, &e.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// ListRecentWeightEvents returns the user's most recent weight events up to limit.
func (d *DB) ListRecentWeightEvents(ctx context.Context, userID int64, limit int) ([]domain.WeightEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, value, unit, created_at FROM weight_events WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2;", userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.WeightEntry, 0, limit)
	for rows.Next() {
		e := domain.WeightEntry{UserID: userID}
		if err := rows.Scan(&e.ID, &e.Value, &e.Unit, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Day = domain.LocalDay(e.CreatedAt)
		out = append(out, e)
	}
	return out, rows.Err()
}
