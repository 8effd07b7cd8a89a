package app

import (
	"context"
	"fmt"
	"strings"

	"nutritrack/internal/domain"
	"nutritrack/internal/nutrition"
)

// ProfileService encapsulates profile and target use cases.
type ProfileService struct {
	profiles domain.ProfileRepository
	weights  domain.WeightRepository
}

// NewProfileService creates a ProfileService. The weight repository supplies
// a fallback body weight for target suggestions.
func NewProfileService(profiles domain.ProfileRepository, weights domain.WeightRepository) *ProfileService {
	return &ProfileService{profiles: profiles, weights: weights}
}

// ProfileView is a saved profile (nil if none) with its effective targets.
type ProfileView struct {
	Profile *domain.Profile   `json:"profile"`
	Targets nutrition.Targets `json:"targets"`
}

// Suggestion is the result of SuggestTargets.
type Suggestion struct {
	Targets  nutrition.Targets `json:"targets"`
	Applied  bool              `json:"applied"`
	WeightKg float64           `json:"weightKg"`
}

// Get returns the user's profile and resolved targets.
func (s *ProfileService) Get(ctx context.Context, userID int64) (*ProfileView, error) {
	p, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ProfileView{Profile: p, Targets: nutrition.ResolveTargets(p)}, nil
}

// Save validates and stores p for userID.
func (s *ProfileService) Save(ctx context.Context, userID int64, p domain.Profile) (*ProfileView, error) {
	p.UserID = userID
	p.Name = strings.TrimSpace(p.Name)
	if err := validateProfile(p); err != nil {
		return nil, err
	}
	if err := s.profiles.SaveProfile(ctx, p); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// SuggestTargets runs the target calculator on the user's biometrics. When
// the profile has no weight the latest logged weight is used. With apply set
// the suggestion is written into the profile.
func (s *ProfileService) SuggestTargets(ctx context.Context, userID int64, apply bool) (*Suggestion, error) {
	p, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &domain.Profile{UserID: userID}
	}

	b := nutrition.Biometrics{
		Age:           deref(p.Age),
		HeightCm:      deref(p.HeightCm),
		WeightKg:      deref(p.WeightKg),
		Sex:           p.Sex,
		ActivityLevel: p.ActivityLevel,
		Goal:          p.Goal,
	}
	if b.WeightKg <= 0 {
		if b.WeightKg, err = s.latestWeightKg(ctx, userID); err != nil {
			return nil, err
		}
	}

	targets, err := nutrition.CalculateTargets(b)
	if err != nil {
		return nil, err
	}
	if apply {
		targets.Apply(p)
		if err := s.profiles.SaveProfile(ctx, *p); err != nil {
			return nil, fmt.Errorf("save targets: %w", err)
		}
	}
	return &Suggestion{Targets: targets, Applied: apply, WeightKg: b.WeightKg}, nil
}

func (s *ProfileService) latestWeightKg(ctx context.Context, userID int64) (float64, error) {
	if s.weights == nil {
		return 0, nil
	}
	items, err := s.weights.ListRecentWeightEvents(ctx, userID, 1)
	if err != nil || len(items) == 0 {
		return 0, err
	}
	return items[0].Kg(), nil
}

type profileField struct {
	name string
	v    *float64
}

// validateProfile reports the first invalid field in declaration order.
func validateProfile(p domain.Profile) error {
	for _, f := range []profileField{
		{"age", p.Age},
		{"heightCm", p.HeightCm},
		{"weightKg", p.WeightKg},
	} {
		if f.v != nil && *f.v <= 0 {
			return invalidf("%s must be > 0", f.name)
		}
	}
	for _, f := range []profileField{
		{"dailyCalorieTarget", p.DailyCalorieTarget},
		{"proteinTarget", p.ProteinTarget},
		{"carbTarget", p.CarbTarget},
		{"fatTarget", p.FatTarget},
		{"waterTargetMl", p.WaterTargetMl},
	} {
		if f.v != nil && *f.v < 0 {
			return invalidf("%s must be >= 0", f.name)
		}
	}
	if p.ActivityLevel != "" && !p.ActivityLevel.Valid() {
		return invalidf("unknown activity level %q", p.ActivityLevel)
	}
	if p.Goal != "" && !p.Goal.Valid() {
		return invalidf("unknown goal %q", p.Goal)
	}
	if !p.Sex.Valid() {
		return invalidf("sex must be \"female\" or \"male\"")
	}
	return nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
