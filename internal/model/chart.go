package model

// ChartKind selects how a chart is drawn in the terminal.
type ChartKind string

const (
	ChartLine     ChartKind = "line"
	ChartBar      ChartKind = "bar"
	ChartDoughnut ChartKind = "doughnut"
	ChartPie      ChartKind = "pie"
	ChartRadar    ChartKind = "radar"
)

// Series is one named dataset.
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Chart holds labels and datasets for one chart.
type Chart struct {
	ID     string    `json:"id"`
	Kind   ChartKind `json:"kind"`
	Title  string    `json:"title"`
	Labels []string  `json:"labels"`
	Series []Series  `json:"series"`
	YTitle string    `json:"yTitle,omitempty"`
	Max    float64   `json:"max,omitempty"` // scale ceiling; 0 means auto
}

// Peak returns the largest value across all series.
func (c Chart) Peak() float64 {
	peak := 0.0
	for _, s := range c.Series {
		for _, v := range s.Values {
			if v > peak {
				peak = v
			}
		}
	}
	return peak
}
