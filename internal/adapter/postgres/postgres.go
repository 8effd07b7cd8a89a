package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"nutritrack/internal/domain"
)

// DB wraps a *sql.DB and implements domain repository interfaces.
type DB struct {
	sql *sql.DB
}

var (
	_ domain.UserRepository    = (*DB)(nil)
	_ domain.WeightRepository  = (*DB)(nil)
	_ domain.WaterRepository   = (*DB)(nil)
	_ domain.MealRepository    = (*DB)(nil)
	_ domain.FoodRepository    = (*DB)(nil)
	_ domain.ProfileRepository = (*DB)(nil)
	_ domain.SessionRepository = (*SessionRepo)(nil)
)

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

var migrations = []string{
	"CREATE TABLE IF NOT EXISTS users (id BIGSERIAL PRIMARY KEY, username TEXT UNIQUE NOT NULL, password_hash TEXT NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
	"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_lower ON users(lower(username));",
	"CREATE TABLE IF NOT EXISTS sessions (token TEXT PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE, user_agent TEXT NOT NULL DEFAULT '', ip TEXT NOT NULL DEFAULT '', expires_at TIMESTAMPTZ NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
	"CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);",

	`CREATE TABLE IF NOT EXISTS profiles (
		user_id BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL DEFAULT '',
		age DOUBLE PRECISION,
		height_cm DOUBLE PRECISION,
		weight_kg DOUBLE PRECISION,
		sex TEXT NOT NULL DEFAULT '',
		activity_level TEXT NOT NULL DEFAULT '',
		goal TEXT NOT NULL DEFAULT '',
		daily_calorie_target DOUBLE PRECISION,
		protein_target DOUBLE PRECISION,
		carb_target DOUBLE PRECISION,
		fat_target DOUBLE PRECISION,
		water_target_ml DOUBLE PRECISION,
		updated_at TIMESTAMPTZ NOT NULL
	);`,

	`CREATE TABLE IF NOT EXISTS food_items (
		food_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		calories_per_100g DOUBLE PRECISION NOT NULL,
		protein_per_100g DOUBLE PRECISION NOT NULL DEFAULT 0,
		carbs_per_100g DOUBLE PRECISION NOT NULL DEFAULT 0,
		fat_per_100g DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	"CREATE INDEX IF NOT EXISTS idx_food_items_name ON food_items(lower(name));",

	`CREATE TABLE IF NOT EXISTS meals (
		meal_id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		day TEXT NOT NULL,
		meal_type TEXT NOT NULL CHECK(meal_type IN ('breakfast','lunch','dinner','snacks')),
		created_at TIMESTAMPTZ NOT NULL,
		UNIQUE(user_id, day, meal_type)
	);`,
	`CREATE TABLE IF NOT EXISTS meal_items (
		meal_item_id TEXT PRIMARY KEY,
		meal_id BIGINT NOT NULL REFERENCES meals(meal_id) ON DELETE CASCADE,
		food_id TEXT REFERENCES food_items(food_id) ON DELETE SET NULL,
		name TEXT NOT NULL,
		serving TEXT NOT NULL DEFAULT '',
		quantity_grams DOUBLE PRECISION NOT NULL DEFAULT 0,
		calories DOUBLE PRECISION NOT NULL,
		protein DOUBLE PRECISION NOT NULL DEFAULT 0,
		carbs DOUBLE PRECISION NOT NULL DEFAULT 0,
		fat DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL
	);`,
	"CREATE INDEX IF NOT EXISTS idx_meal_items_meal_id ON meal_items(meal_id);",

	"CREATE TABLE IF NOT EXISTS weight_events (id BIGSERIAL PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE, value DOUBLE PRECISION NOT NULL, unit TEXT NOT NULL CHECK(unit IN ('kg','lb')), created_at TIMESTAMPTZ NOT NULL);",
	"CREATE INDEX IF NOT EXISTS idx_weight_events_user_created ON weight_events(user_id, created_at);",
	"CREATE TABLE IF NOT EXISTS water_events (id BIGSERIAL PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE, delta_ml DOUBLE PRECISION NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
	"CREATE INDEX IF NOT EXISTS idx_water_events_user_created ON water_events(user_id, created_at);",
}

func (d *DB) migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func dayBounds(localDay string) (time.Time, time.Time, error) {
	dayStart, err := time.ParseInLocation(domain.DayLayout, localDay, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return dayStart.UTC(), dayStart.Add(24 * time.Hour).UTC(), nil
}
