package domain

import (
	"context"
	"time"
)

// MealSlot is one of the four fixed meal categories of a day.
type MealSlot string

const (
	Breakfast MealSlot = "breakfast"
	Lunch     MealSlot = "lunch"
	Dinner    MealSlot = "dinner"
	Snacks    MealSlot = "snacks"
)

// MealSlots lists every slot in display order.
var MealSlots = []MealSlot{Breakfast, Lunch, Dinner, Snacks}

// Valid reports whether s is one of the four known slots.
func (s MealSlot) Valid() bool {
	switch s {
	case Breakfast, Lunch, Dinner, Snacks:
		return true
	}
	return false
}

// FoodEntry is one recorded instance of a food consumed. Entries are never
// edited in place; a correction is a remove followed by an add.
type FoodEntry struct {
	ID            string    `json:"id"`
	FoodID        string    `json:"foodId,omitempty"`
	Name          string    `json:"name"`
	Calories      float64   `json:"calories"`
	Protein       float64   `json:"protein"`
	Carbs         float64   `json:"carbs"`
	Fat           float64   `json:"fat"`
	Serving       string    `json:"serving"`
	QuantityGrams float64   `json:"quantityGrams,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// DayMeals holds the entries of all four slots for one user and day.
type DayMeals struct {
	Breakfast []FoodEntry `json:"breakfast"`
	Lunch     []FoodEntry `json:"lunch"`
	Dinner    []FoodEntry `json:"dinner"`
	Snacks    []FoodEntry `json:"snacks"`
}

// NewDayMeals returns a day with four empty, non-nil slots, so every slot
// encodes as a JSON array.
func NewDayMeals() DayMeals {
	return DayMeals{
		Breakfast: []FoodEntry{},
		Lunch:     []FoodEntry{},
		Dinner:    []FoodEntry{},
		Snacks:    []FoodEntry{},
	}
}

// Clone returns a deep copy with non-nil slots.
func (m DayMeals) Clone() DayMeals {
	return DayMeals{
		Breakfast: append([]FoodEntry{}, m.Breakfast...),
		Lunch:     append([]FoodEntry{}, m.Lunch...),
		Dinner:    append([]FoodEntry{}, m.Dinner...),
		Snacks:    append([]FoodEntry{}, m.Snacks...),
	}
}

// Slot returns the entries logged under s, or nil for an unknown slot.
func (m DayMeals) Slot(s MealSlot) []FoodEntry {
	switch s {
	case Breakfast:
		return m.Breakfast
	case Lunch:
		return m.Lunch
	case Dinner:
		return m.Dinner
	case Snacks:
		return m.Snacks
	}
	return nil
}

// Append adds e to slot s. Unknown slots are ignored.
func (m *DayMeals) Append(s MealSlot, e FoodEntry) {
	switch s {
	case Breakfast:
		m.Breakfast = append(m.Breakfast, e)
	case Lunch:
		m.Lunch = append(m.Lunch, e)
	case Dinner:
		m.Dinner = append(m.Dinner, e)
	case Snacks:
		m.Snacks = append(m.Snacks, e)
	}
}

// All flattens the four slots into one slice.
func (m DayMeals) All() []FoodEntry {
	out := make([]FoodEntry, 0, len(m.Breakfast)+len(m.Lunch)+len(m.Dinner)+len(m.Snacks))
	for _, s := range MealSlots {
		out = append(out, m.Slot(s)...)
	}
	return out
}

// MealRepository is the port for meal persistence, keyed by user, local day
// and slot.
type MealRepository interface {
	LoadDay(ctx context.Context, userID int64, localDay string) (DayMeals, error)
	AddEntry(ctx context.Context, userID int64, localDay string, slot MealSlot, entry FoodEntry) error
	RemoveEntry(ctx context.Context, userID int64, localDay string, slot MealSlot, entryID string) (bool, error)
}
