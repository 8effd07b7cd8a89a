// Package nutrition holds the pure daily-nutrition calculations: summing a
// day's entries, resolving a user's targets, suggesting targets from
// biometrics and classifying progress. Nothing here performs I/O.
package nutrition

import "nutritrack/internal/domain"

// Totals is the sum of the four nutrient fields over a set of entries.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Sum totals the given entries. Values are not validated; negative numbers
// are summed like any other.
func Sum(entries []domain.FoodEntry) Totals {
	var t Totals
	for _, e := range entries {
		t.Calories += e.Calories
		t.Protein += e.Protein
		t.Carbs += e.Carbs
		t.Fat += e.Fat
	}
	return t
}

// Aggregate totals every entry of every slot of the day.
func Aggregate(m domain.DayMeals) Totals {
	return Sum(m.All())
}
