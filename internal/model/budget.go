package model

// Status is the delivery state of a budget program.
type Status string

const (
	StatusOnTrack Status = "on-track"
	StatusAtRisk  Status = "at-risk"
	StatusDelayed Status = "delayed"
)

// Label returns the display text. Anything that is not on-track or at-risk
// reads as delayed.
func (s Status) Label() string {
	switch s {
	case StatusOnTrack:
		return "On Track"
	case StatusAtRisk:
		return "At Risk"
	default:
		return "Delayed"
	}
}

// BudgetLine is one government program's budget entry.
type BudgetLine struct {
	Program            string  `json:"program"`
	BudgetAmount       float64 `json:"budget"`      // billions of rupiah
	RealizationPercent float64 `json:"realization"` // conventionally 0-100, not clamped
	Status             Status  `json:"status"`
}
