package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"nutritrack/internal/domain"
)

// GetProfile returns the user's profile, or nil if none was saved.
func (d *DB) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	var (
		p                                    domain.Profile
		age, height, weight                  sql.NullFloat64
		calories, protein, carbs, fat, water sql.NullFloat64
		sex, activity, goal                  string
	)
	err := d.sql.QueryRowContext(ctx, `
		SELECT user_id, name, age, height_cm, weight_kg, sex, activity_level, goal,
		       daily_calorie_target, protein_target, carb_target, fat_target, water_target_ml, updated_at
		FROM profiles WHERE user_id=$1;`, userID,
	).Scan(&p.UserID, &p.Name, &age, &height, &weight, &sex, &activity, &goal,
		&calories, &protein, &carbs, &fat, &water, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p.Sex = domain.Sex(sex)
	p.ActivityLevel = domain.ActivityLevel(activity)
	p.Goal = domain.Goal(goal)
	p.Age = nullable(age)
	p.HeightCm = nullable(height)
	p.WeightKg = nullable(weight)
	p.DailyCalorieTarget = nullable(calories)
	p.ProteinTarget = nullable(protein)
	p.CarbTarget = nullable(carbs)
	p.FatTarget = nullable(fat)
	p.WaterTargetMl = nullable(water)
	return &p, nil
}

// SaveProfile inserts or replaces the user's profile.
func (d *DB) SaveProfile(ctx context.Context, p domain.Profile) error {
	_, err := d.sql.ExecContext(ctx, `
		INSERT INTO profiles(user_id, name, age, height_cm, weight_kg, sex, activity_level, goal,
			daily_calorie_target, protein_target, carb_target, fat_target, water_target_ml, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (user_id) DO UPDATE SET
			name=EXCLUDED.name, age=EXCLUDED.age, height_cm=EXCLUDED.height_cm, weight_kg=EXCLUDED.weight_kg,
			sex=EXCLUDED.sex, activity_level=EXCLUDED.activity_level, goal=EXCLUDED.goal,
			daily_calorie_target=EXCLUDED.daily_calorie_target, protein_target=EXCLUDED.protein_target,
			carb_target=EXCLUDED.carb_target, fat_target=EXCLUDED.fat_target,
			water_target_ml=EXCLUDED.water_target_ml, updated_at=EXCLUDED.updated_at;`,
		p.UserID, p.Name, p.Age, p.HeightCm, p.WeightKg, string(p.Sex), string(p.ActivityLevel), string(p.Goal),
		p.DailyCalorieTarget, p.ProteinTarget, p.CarbTarget, p.FatTarget, p.WaterTargetMl, time.Now().UTC())
	return err
}

func nullable(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
