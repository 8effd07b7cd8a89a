package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutritrack/internal/nutrition"
)

// resetFlags restores flag defaults; cobra keeps parsed values between
// Execute calls.
func resetFlags(t *testing.T) {
	t.Helper()
	targetsCmd.Flags().VisitAll(func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
	})
}

func TestTargetsCommand(t *testing.T) {
	resetFlags(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"targets", "--age", "25", "--height", "170", "--weight", "70",
		"--activity", "moderately_active", "--goal", "lose_weight"})
	require.NoError(t, rootCmd.Execute())

	var got nutrition.Targets
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, nutrition.Targets{Calories: 1789, Protein: 154, Carbs: 181, Fat: 50, WaterMl: 2450}, got)
}

func TestTargetsCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing biometrics", []string{"targets"}},
		{"bad goal", []string{"targets", "--age", "25", "--height", "170", "--weight", "70", "--goal", "shred"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resetFlags(t)
			rootCmd.SetOut(&bytes.Buffer{})
			rootCmd.SetErr(&bytes.Buffer{})
			rootCmd.SetArgs(tc.args)
			assert.Error(t, rootCmd.Execute())
		})
	}
}
