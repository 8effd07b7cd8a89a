package nutrition

import "nutritrack/internal/domain"

// Defaults applied to any target the user has not set.
const (
	DefaultCalorieTarget = 2000
	DefaultProteinTarget = 150
	DefaultCarbTarget    = 250
	DefaultFatTarget     = 65
	DefaultWaterTargetMl = 2000
)

// Targets are the five daily goals of a user.
type Targets struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	WaterMl  float64 `json:"waterMl"`
}

// DefaultTargets returns the targets of a user without a profile.
func DefaultTargets() Targets {
	return Targets{
		Calories: DefaultCalorieTarget,
		Protein:  DefaultProteinTarget,
		Carbs:    DefaultCarbTarget,
		Fat:      DefaultFatTarget,
		WaterMl:  DefaultWaterTargetMl,
	}
}

// ResolveTargets returns the effective targets for p, field by field falling
// back to the defaults. p may be nil.
func ResolveTargets(p *domain.Profile) Targets {
	t := DefaultTargets()
	if p == nil {
		return t
	}
	t.Calories = orDefault(p.DailyCalorieTarget, t.Calories)
	t.Protein = orDefault(p.ProteinTarget, t.Protein)
	t.Carbs = orDefault(p.CarbTarget, t.Carbs)
	t.Fat = orDefault(p.FatTarget, t.Fat)
	t.WaterMl = orDefault(p.WaterTargetMl, t.WaterMl)
	return t
}

// Apply writes t into the target fields of p.
func (t Targets) Apply(p *domain.Profile) {
	p.DailyCalorieTarget = ptr(t.Calories)
	p.ProteinTarget = ptr(t.Protein)
	p.CarbTarget = ptr(t.Carbs)
	p.FatTarget = ptr(t.Fat)
	p.WaterTargetMl = ptr(t.WaterMl)
}

func orDefault(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

func ptr(v float64) *float64 { return &v }
