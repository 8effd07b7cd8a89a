package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"nutritrack/internal/domain"
	"nutritrack/internal/nutrition"
)

var targetsFlags struct {
	age, height, weight float64
	sex, activity, goal string
}

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Calculate daily nutrition targets from biometrics",
	Long: `Runs the target calculator and prints the result as JSON.

Example:
  nutritrack targets --age 25 --height 170 --weight 70 --activity moderately_active --goal lose_weight`,
	Args: cobra.NoArgs,
	RunE: runTargets,
}

func init() {
	f := targetsCmd.Flags()
	f.Float64Var(&targetsFlags.age, "age", 0, "age in years")
	f.Float64Var(&targetsFlags.height, "height", 0, "height in cm")
	f.Float64Var(&targetsFlags.weight, "weight", 0, "weight in kg")
	f.StringVar(&targetsFlags.sex, "sex", string(domain.SexFemale), "female or male")
	f.StringVar(&targetsFlags.activity, "activity", string(domain.ModeratelyActive), "sedentary, lightly_active, moderately_active, very_active or extremely_active")
	f.StringVar(&targetsFlags.goal, "goal", string(domain.MaintainWeight), "lose_weight, maintain_weight, gain_weight or build_muscle")
}

func runTargets(cmd *cobra.Command, _ []string) error {
	b := nutrition.Biometrics{
		Age:           targetsFlags.age,
		HeightCm:      targetsFlags.height,
		WeightKg:      targetsFlags.weight,
		Sex:           domain.Sex(targetsFlags.sex),
		ActivityLevel: domain.ActivityLevel(targetsFlags.activity),
		Goal:          domain.Goal(targetsFlags.goal),
	}
	if !b.Sex.Valid() {
		return fmt.Errorf("unknown sex %q", b.Sex)
	}
	if !b.ActivityLevel.Valid() {
		return fmt.Errorf("unknown activity level %q", b.ActivityLevel)
	}
	if !b.Goal.Valid() {
		return fmt.Errorf("unknown goal %q", b.Goal)
	}

	t, err := nutrition.CalculateTargets(b)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}
