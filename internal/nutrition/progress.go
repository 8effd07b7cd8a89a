package nutrition

// Status is the discrete progress tier shown next to a goal.
type Status string

const (
	StatusComplete Status = "Complete"
	StatusOnTrack  Status = "On Track"
	StatusBehind   Status = "Behind"
)

// Progress is a current-vs-target pair with its clamped percentage and tier.
type Progress struct {
	Current    float64 `json:"current"`
	Target     float64 `json:"target"`
	Percentage float64 `json:"percentage"`
	Status     Status  `json:"status"`
}

// Percentage returns current/target as a percentage clamped to [0, 100].
// A non-positive target yields 0.
func Percentage(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := current / target * 100
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// Classify computes the progress of current towards target.
func Classify(current, target float64) Progress {
	pct := Percentage(current, target)
	status := StatusBehind
	switch {
	case pct >= 100:
		status = StatusComplete
	case pct >= 80:
		status = StatusOnTrack
	}
	return Progress{Current: current, Target: target, Percentage: pct, Status: status}
}
