package components

import (
	"math"
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart"
	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/pangan/internal/model"
	"github.com/theirongolddev/pangan/internal/tui/theme"
)

// lineEpoch anchors category labels on the time axis: label i sits i days
// after it.
var lineEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

const secondsPerDay = 24 * 60 * 60

// LineChart draws every series of c as a braille line, one dataset per
// series, with a legend when there is more than one.
func LineChart(c model.Chart, width, height int) string {
	t := theme.Active
	n := len(c.Labels)
	if n < 2 || width < 20 || height < 5 {
		return Sparkline(c.Series[0].Values, t.Accent)
	}

	legendH := 0
	if len(c.Series) > 1 {
		legendH = 1
	}

	lo, hi := lineYRange(c)
	start := lineEpoch
	end := lineEpoch.AddDate(0, 0, n-1)

	chart := tslc.New(width, height-legendH)
	chart.SetXStep(1)
	chart.SetYStep(2)
	chart.AxisStyle = lipgloss.NewStyle().Foreground(t.TextDim)
	chart.LabelStyle = lipgloss.NewStyle().Foreground(t.TextMuted)
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)
	chart.SetYRange(lo, hi)
	chart.SetViewYRange(lo, hi)
	chart.Model.XLabelFormatter = categoryLabelFormatter(c.Labels)
	chart.Model.YLabelFormatter = func(_ int, v float64) string { return formatChartLabel(v) }

	for si, s := range c.Series {
		for i, v := range s.Values {
			if i >= n {
				break
			}
			chart.PushDataSet(s.Name, tslc.TimePoint{Time: lineEpoch.AddDate(0, 0, i), Value: v})
		}
		chart.SetDataSetStyle(s.Name, lipgloss.NewStyle().Foreground(t.SeriesColor(si)))
	}
	chart.DrawBrailleAll()

	out := chart.View()
	if legendH > 0 {
		out = Legend(c.Series, width) + "\n" + out
	}
	return out
}

// lineYRange returns the y-axis bounds: [0, Max] when the chart has a fixed
// ceiling, otherwise the data range with 10% headroom, never below zero for
// non-negative data.
func lineYRange(c model.Chart) (float64, float64) {
	if c.Max > 0 {
		return 0, c.Max
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, v := range s.Values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 1
	}

	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = 1
	}
	minData := lo
	lo -= pad
	hi += pad
	if minData >= 0 && lo < 0 {
		lo = 0
	}
	return lo, hi
}

// categoryLabelFormatter maps an axis position back to its category label.
func categoryLabelFormatter(labels []string) linechart.LabelFormatter {
	base := float64(lineEpoch.Unix())
	return func(_ int, v float64) string {
		idx := int(math.Round((v - base) / secondsPerDay))
		if idx < 0 || idx >= len(labels) {
			return ""
		}
		return labels[idx]
	}
}
