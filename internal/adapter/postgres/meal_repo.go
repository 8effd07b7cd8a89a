package postgres

import (
	"context"
	"database/sql"
	"time"

	"nutritrack/internal/domain"
)

// LoadDay returns every meal item of the user's day grouped by slot.
func (d *DB) LoadDay(ctx context.Context, userID int64, localDay string) (domain.DayMeals, error) {
	out := domain.NewDayMeals()
	rows, err := d.sql.QueryContext(ctx, `
		SELECT m.meal_type, i.meal_item_id, i.food_id, i.name, i.serving, i.quantity_grams,
		       i.calories, i.protein, i.carbs, i.fat, i.created_at
		FROM meals m JOIN meal_items i ON i.meal_id = m.meal_id
		WHERE m.user_id=$1 AND m.day=$2
		ORDER BY i.created_at;`, userID, localDay)
	if err != nil {
		return out, err
	}
	defer rows.Close() //nolint:errcheck

	for rows.Next() {
		var (
			slot   string
			foodID sql.NullString
			e      domain.FoodEntry
		)
		if err := rows.Scan(&slot, &e.ID, &foodID, &e.Name, &e.Serving, &e.QuantityGrams,
			&e.Calories, &e.Protein, &e.Carbs, &e.Fat, &e.CreatedAt); err != nil {
			return out, err
		}
		e.FoodID = foodID.String
		out.Append(domain.MealSlot(slot), e)
	}
	return out, rows.Err()
}

// AddEntry stores an entry, creating the meal row for the user/day/slot on
// first use.
func (d *DB) AddEntry(ctx context.Context, userID int64, localDay string, slot domain.MealSlot, e domain.FoodEntry) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	var mealID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO meals(user_id, day, meal_type, created_at) VALUES($1, $2, $3, $4)
		ON CONFLICT (user_id, day, meal_type) DO UPDATE SET meal_type = EXCLUDED.meal_type
		RETURNING meal_id;`,
		userID, localDay, string(slot), time.Now().UTC(),
	).Scan(&mealID)
	if err != nil {
		return err
	}

	var foodID sql.NullString
	if e.FoodID != "" {
		foodID = sql.NullString{String: e.FoodID, Valid: true}
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO meal_items(meal_item_id, meal_id, food_id, name, serving, quantity_grams, calories, protein, carbs, fat, created_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
		e.ID, mealID, foodID, e.Name, e.Serving, e.QuantityGrams, e.Calories, e.Protein, e.Carbs, e.Fat, e.CreatedAt.UTC(),
	)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// RemoveEntry deletes one entry from the user's day and slot.
func (d *DB) RemoveEntry(ctx context.Context, userID int64, localDay string, slot domain.MealSlot, entryID string) (bool, error) {
	res, err := d.sql.ExecContext(ctx, `
		DELETE FROM meal_items i USING meals m
		WHERE i.meal_id = m.meal_id AND i.meal_item_id=$1 AND m.user_id=$2 AND m.day=$3 AND m.meal_type=$4;`,
		entryID, userID, localDay, string(slot))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
