package domain

import (
	"context"
	"time"
)

// ActivityLevel selects the energy-expenditure multiplier.
type ActivityLevel string

const (
	Sedentary        ActivityLevel = "sedentary"
	LightlyActive    ActivityLevel = "lightly_active"
	ModeratelyActive ActivityLevel = "moderately_active"
	VeryActive       ActivityLevel = "very_active"
	ExtremelyActive  ActivityLevel = "extremely_active"
)

// Valid reports whether a is a known activity level.
func (a ActivityLevel) Valid() bool {
	switch a {
	case Sedentary, LightlyActive, ModeratelyActive, VeryActive, ExtremelyActive:
		return true
	}
	return false
}

// Goal is the user's body-composition goal.
type Goal string

const (
	LoseWeight     Goal = "lose_weight"
	MaintainWeight Goal = "maintain_weight"
	GainWeight     Goal = "gain_weight"
	BuildMuscle    Goal = "build_muscle"
)

// Valid reports whether g is a known goal.
func (g Goal) Valid() bool {
	switch g {
	case LoseWeight, MaintainWeight, GainWeight, BuildMuscle:
		return true
	}
	return false
}

// Sex selects the constant term of the BMR formula. The empty value is
// treated as SexFemale.
type Sex string

const (
	SexFemale Sex = "female"
	SexMale   Sex = "male"
)

// Valid reports whether s is empty or a known value.
func (s Sex) Valid() bool {
	return s == "" || s == SexFemale || s == SexMale
}

// Profile is a user's biometrics and saved daily targets. Nil fields were
// never set by the user.
type Profile struct {
	UserID        int64         `json:"userId"`
	Name          string        `json:"name"`
	Age           *float64      `json:"age"`
	HeightCm      *float64      `json:"heightCm"`
	WeightKg      *float64      `json:"weightKg"`
	Sex           Sex           `json:"sex"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	Goal          Goal          `json:"goal"`

	DailyCalorieTarget *float64 `json:"dailyCalorieTarget"`
	ProteinTarget      *float64 `json:"proteinTarget"`
	CarbTarget         *float64 `json:"carbTarget"`
	FatTarget          *float64 `json:"fatTarget"`
	WaterTargetMl      *float64 `json:"waterTargetMl"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// ProfileRepository is the port for profile persistence. GetProfile returns
// (nil, nil) for a user who never saved one.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	SaveProfile(ctx context.Context, p Profile) error
}
