package domain

import "time"

const kgToLb = 2.2046226218

// DayLayout is the format of every local-day key ("2006-01-02").
const DayLayout = "2006-01-02"

// ConvertWeight converts v from one unit to another. Unknown or equal
// units leave v unchanged.
func ConvertWeight(v float64, from, to WeightUnit) float64 {
	switch {
	case from == Kilograms && to == Pounds:
		return v * kgToLb
	case from == Pounds && to == Kilograms:
		return v / kgToLb
	}
	return v
}

// LocalDay formats t as a local calendar day key.
func LocalDay(t time.Time) string {
	return t.In(time.Local).Format(DayLayout)
}

// ValidDay reports whether day is a well-formed local-day key.
func ValidDay(day string) bool {
	_, err := time.ParseInLocation(DayLayout, day, time.Local)
	return err == nil
}
