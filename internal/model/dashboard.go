// Package model defines domain types for the pangan food-security dashboard.
package model

// Trend is the direction hint shown next to a KPI change.
type Trend string

const (
	TrendPositive Trend = "positive"
	TrendNegative Trend = "negative"
	TrendNeutral  Trend = "neutral"
)

// Arrow returns the glyph used for the trend.
func (t Trend) Arrow() string {
	switch t {
	case TrendPositive:
		return "↑"
	case TrendNegative:
		return "↓"
	default:
		return "→"
	}
}

// KPI is one labelled metric card.
type KPI struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  Trend  `json:"trend"`
}

// Light is a traffic-light colour.
type Light string

const (
	LightGreen  Light = "green"
	LightYellow Light = "yellow"
	LightRed    Light = "red"
)

// TrafficLight is a named indicator (commodity, region, ...).
type TrafficLight struct {
	Name   string `json:"name"`
	Status Light  `json:"status"`
}

// TrafficSummary counts indicators per light for the sidebar roll-up.
type TrafficSummary struct {
	Light Light  `json:"light"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// AlertType classifies a risk alert.
type AlertType string

const (
	AlertWarning AlertType = "warning"
	AlertInfo    AlertType = "info"
	AlertDanger  AlertType = "danger"
)

// Alert is a titled risk notice.
type Alert struct {
	Type  AlertType `json:"type"`
	Title string    `json:"title"`
	Desc  string    `json:"desc"`
}

// SummaryItem is one executive summary card.
type SummaryItem struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Section groups the content of one dashboard tab.
type Section struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	KPIs          []KPI          `json:"kpis"`
	TrafficLights []TrafficLight `json:"trafficLights,omitempty"`
	Alerts        []Alert        `json:"alerts,omitempty"`
	Charts        []Chart        `json:"charts,omitempty"`
}

// Dashboard is the full payload rendered by the TUI and CLI.
type Dashboard struct {
	Title           string           `json:"title"`
	Subtitle        string           `json:"subtitle"`
	Summary         []SummaryItem    `json:"summary"`
	Overview        Section          `json:"overview"`
	Sections        []Section        `json:"sections"`
	Budget          []BudgetLine     `json:"budget"`
	Recommendations []string         `json:"recommendations"`
	TrafficSummary  []TrafficSummary `json:"trafficSummary"`
}

// Section returns the section with the given ID.
func (d *Dashboard) Section(id string) (Section, bool) {
	if d == nil {
		return Section{}, false
	}
	if id == d.Overview.ID {
		return d.Overview, true
	}
	for _, s := range d.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// SectionIDs lists the non-overview section IDs in payload order.
func (d *Dashboard) SectionIDs() []string {
	if d == nil {
		return nil
	}
	ids := make([]string, 0, len(d.Sections))
	for _, s := range d.Sections {
		ids = append(ids, s.ID)
	}
	return ids
}
