package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutritrack/internal/adapter/memory"
)

func TestDefault(t *testing.T) {
	items, err := Default()
	require.NoError(t, err)
	require.Len(t, items, 10)
	assert.Equal(t, "banana", items[0].ID)
	assert.Equal(t, 89.0, items[0].CaloriesPer100g)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not a list", "id: x"},
		{"missing name", "- id: x\n  calories_per_100g: 10"},
		{"negative fat", "- id: x\n  name: X\n  fat_per_100g: -1"},
		{"duplicate id", "- id: x\n  name: X\n- id: x\n  name: Y"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFileAndSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foods.yaml")
	data := "- id: tofu\n  name: Tofu\n  category: legumes\n  calories_per_100g: 76\n  protein_per_100g: 8\n  carbs_per_100g: 1.9\n  fat_per_100g: 4.8\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	items, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, items, 1)

	db := memory.New()
	n, err := Seed(context.Background(), db, items)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := db.GetFood(context.Background(), "tofu")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Tofu", got.Name)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
