package nutrition

import (
	"math"
	"strings"

	"nutritrack/internal/domain"
)

// Biometrics is the input of CalculateTargets. Zero or negative Age,
// HeightCm or WeightKg count as missing.
type Biometrics struct {
	Age           float64
	HeightCm      float64
	WeightKg      float64
	Sex           domain.Sex
	ActivityLevel domain.ActivityLevel
	Goal          domain.Goal
}

// MissingInputError is returned by CalculateTargets when a required
// biometric is absent.
type MissingInputError struct {
	Fields []string
}

func (e *MissingInputError) Error() string {
	return "enter age, height, and weight (missing: " + strings.Join(e.Fields, ", ") + ")"
}

var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.Sedentary:        1.2,
	domain.LightlyActive:    1.375,
	domain.ModeratelyActive: 1.55,
	domain.VeryActive:       1.725,
	domain.ExtremelyActive:  1.9,
}

// ActivityMultiplier returns the multiplier for a, falling back to the
// moderately active one for unknown levels.
func ActivityMultiplier(a domain.ActivityLevel) float64 {
	if m, ok := activityMultipliers[a]; ok {
		return m
	}
	return activityMultipliers[domain.ModeratelyActive]
}

// BMR is the Mifflin-St Jeor basal metabolic rate in kcal/day.
func BMR(b Biometrics) float64 {
	bmr := 10*b.WeightKg + 6.25*b.HeightCm - 5*b.Age
	if b.Sex == domain.SexMale {
		return bmr + 5
	}
	return bmr - 161
}

func goalAdjustment(g domain.Goal) float64 {
	switch g {
	case domain.LoseWeight:
		return -500
	case domain.GainWeight:
		return 500
	}
	return 0
}

// CalculateTargets suggests daily targets from biometrics. Fat gets 25% of
// calories, protein 2.2 g/kg and carbs the remainder, floored at zero.
func CalculateTargets(b Biometrics) (Targets, error) {
	var missing []string
	if b.Age <= 0 {
		missing = append(missing, "age")
	}
	if b.HeightCm <= 0 {
		missing = append(missing, "height")
	}
	if b.WeightKg <= 0 {
		missing = append(missing, "weight")
	}
	if len(missing) > 0 {
		return Targets{}, &MissingInputError{Fields: missing}
	}

	calories := math.Round(BMR(b)*ActivityMultiplier(b.ActivityLevel) + goalAdjustment(b.Goal))
	protein := math.Round(b.WeightKg * 2.2)
	fat := math.Round(calories * 0.25 / 9)
	carbs := math.Round((calories - protein*4 - fat*9) / 4)
	if carbs < 0 {
		carbs = 0
	}

	return Targets{
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		WaterMl:  math.Round(b.WeightKg * 35),
	}, nil
}
