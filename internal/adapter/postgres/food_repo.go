package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"nutritrack/internal/domain"
)

// UpsertFood inserts or replaces a catalog item.
func (d *DB) UpsertFood(ctx context.Context, it domain.FoodItem) error {
	_, err := d.sql.ExecContext(ctx, `
		INSERT INTO food_items(food_id, name, category, calories_per_100g, protein_per_100g, carbs_per_100g, fat_per_100g)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (food_id) DO UPDATE SET
			name=EXCLUDED.name, category=EXCLUDED.category,
			calories_per_100g=EXCLUDED.calories_per_100g, protein_per_100g=EXCLUDED.protein_per_100g,
			carbs_per_100g=EXCLUDED.carbs_per_100g, fat_per_100g=EXCLUDED.fat_per_100g;`,
		it.ID, it.Name, it.Category, it.CaloriesPer100g, it.ProteinPer100g, it.CarbsPer100g, it.FatPer100g)
	return err
}

const foodColumns = "food_id, name, category, calories_per_100g, protein_per_100g, carbs_per_100g, fat_per_100g"

type scanner interface {
	Scan(dest ...any) error
}

func scanFood(s scanner) (domain.FoodItem, error) {
	var it domain.FoodItem
	err := s.Scan(&it.ID, &it.Name, &it.Category, &it.CaloriesPer100g, &it.ProteinPer100g, &it.CarbsPer100g, &it.FatPer100g)
	return it, err
}

// GetFood returns a catalog item by ID, or nil.
func (d *DB) GetFood(ctx context.Context, id string) (*domain.FoodItem, error) {
	it, err := scanFood(d.sql.QueryRowContext(ctx, "SELECT "+foodColumns+" FROM food_items WHERE food_id=$1;", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// SearchFoods returns items whose name contains query, case-insensitively.
func (d *DB) SearchFoods(ctx context.Context, query string, limit int) ([]domain.FoodItem, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT "+foodColumns+" FROM food_items WHERE lower(name) LIKE $1 ESCAPE '\\' ORDER BY name LIMIT $2;",
		"%"+escapeLike(strings.ToLower(query))+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.FoodItem, 0, limit)
	for rows.Next() {
		it, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
