package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/theirongolddev/pangan/internal/model"
	"github.com/theirongolddev/pangan/internal/tui/theme"
)

func TestChartTickStep(t *testing.T) {
	tests := []struct {
		max  float64
		want float64
	}{
		{0, 1},
		{10, 2},
		{100, 20},
		{135000, 20000},
		{31500, 5000},
	}
	for _, tt := range tests {
		if got := chartTickStep(tt.max); got != tt.want {
			t.Errorf("chartTickStep(%v) = %v, want %v", tt.max, got, tt.want)
		}
	}
}

func TestFormatChartLabel(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0.5, "0.50"},
		{92, "92"},
		{5000, "5k"},
		{1500, "1.5k"},
		{2e6, "2M"},
	}
	for _, tt := range tests {
		if got := formatChartLabel(tt.v); got != tt.want {
			t.Errorf("formatChartLabel(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestBarChartHasLabels(t *testing.T) {
	theme.SetActive("flexoki-dark")
	out := ansi.Strip(BarChart([]float64{31500, 23800, 1200}, []string{"Beras", "Jagung", "Kedelai"}, theme.Active.Accent, 40, 8))

	if !strings.Contains(out, "Beras") {
		t.Errorf("bar chart missing first label:\n%s", out)
	}
	if !strings.Contains(out, "█") {
		t.Errorf("bar chart has no bars:\n%s", out)
	}
}

func TestShareBarsPercentages(t *testing.T) {
	theme.SetActive("flexoki-dark")
	out := ansi.Strip(ShareBars([]string{"Karbohidrat", "Protein", "Sayur/Buah", "Lainnya"}, []float64{45, 25, 20, 10}, 50))

	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	for i, want := range []string{"45.0%", "25.0%", "20.0%", "10.0%"} {
		if !strings.HasSuffix(lines[i], want) {
			t.Errorf("line %d = %q, want suffix %q", i, lines[i], want)
		}
	}
	// Every line has the same width so percentages align.
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != ansi.StringWidth(lines[0]) {
			t.Errorf("line %d width %d differs from %d", i, w, ansi.StringWidth(lines[0]))
		}
	}
}

func TestShareBarsMixedSignValues(t *testing.T) {
	theme.SetActive("flexoki-dark")
	for _, values := range [][]float64{{-5, 10}, {10, -5}, {-5, -10}, {-5, 5}} {
		out := ansi.Strip(ShareBars([]string{"a", "b"}, values, 60))
		lines := strings.Split(out, "\n")
		if len(lines) != 2 {
			t.Fatalf("values %v: got %d lines, want 2", values, len(lines))
		}
		if ansi.StringWidth(lines[0]) != ansi.StringWidth(lines[1]) {
			t.Errorf("values %v: lines differ in width:\n%s", values, out)
		}
		if w := ansi.StringWidth(lines[0]); w > 60 {
			t.Errorf("values %v: width %d exceeds 60", values, w)
		}
	}

	out := ansi.Strip(ShareBars([]string{"a", "b"}, []float64{-5, 15}, 60))
	if !strings.Contains(out, "25.0%") || !strings.Contains(out, "75.0%") {
		t.Errorf("shares should follow magnitudes:\n%s", out)
	}
}

func TestScoreBarsUsesCeiling(t *testing.T) {
	theme.SetActive("flexoki-dark")
	out := ansi.Strip(ScoreBars([]string{"Iklim", "Ketahanan"}, []float64{65, 30}, 0, 40))

	if !strings.Contains(out, "65/100") || !strings.Contains(out, "30/100") {
		t.Errorf("scores not rendered against 100:\n%s", out)
	}
	lines := strings.Split(out, "\n")
	if strings.Count(lines[0], "█") <= strings.Count(lines[1], "█") {
		t.Errorf("higher score should have a longer bar:\n%s", out)
	}
}

func TestGroupedBarsLegendAndRows(t *testing.T) {
	theme.SetActive("flexoki-dark")
	series := []model.Series{
		{Name: "Proyeksi 2026", Values: []float64{33.5, 1.4}},
		{Name: "Realisasi 2025", Values: []float64{31.5, 1.2}},
	}
	out := ansi.Strip(GroupedBars([]string{"Beras", "Kedelai"}, series, 60))

	lines := strings.Split(out, "\n")
	if len(lines) != 1+2*2 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Proyeksi 2026") || !strings.Contains(lines[0], "Realisasi 2025") {
		t.Errorf("legend = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Beras") || strings.HasPrefix(lines[2], "Beras") {
		t.Errorf("label should appear once per group:\n%s", out)
	}
}

func TestChartDispatch(t *testing.T) {
	theme.SetActive("flexoki-dark")

	empty := Chart(model.Chart{Kind: model.ChartBar}, 40, 8)
	if !strings.Contains(ansi.Strip(empty), "no data") {
		t.Errorf("empty chart = %q", empty)
	}

	pie := Chart(model.Chart{
		Kind:   model.ChartPie,
		Labels: []string{"A", "B"},
		Series: []model.Series{{Name: "x", Values: []float64{1, 3}}},
	}, 40, 8)
	if !strings.Contains(ansi.Strip(pie), "75.0%") {
		t.Errorf("pie chart = %q", ansi.Strip(pie))
	}

	line := Chart(model.Chart{
		Kind:   model.ChartLine,
		Labels: []string{"2020", "2021", "2022"},
		Series: []model.Series{{Name: "x", Values: []float64{1, 2, 3}}},
	}, 40, 10)
	if lipgloss.Height(line) < 5 {
		t.Errorf("line chart too short: %d lines", lipgloss.Height(line))
	}
}

func TestLineYRange(t *testing.T) {
	lo, hi := lineYRange(model.Chart{Max: 100, Series: []model.Series{{Values: []float64{58, 78}}}})
	if lo != 0 || hi != 100 {
		t.Errorf("fixed ceiling range = [%v, %v], want [0, 100]", lo, hi)
	}

	lo, hi = lineYRange(model.Chart{Series: []model.Series{{Values: []float64{3.3, 4.3}}}})
	if lo >= 3.3 || hi <= 4.3 || lo < 0 {
		t.Errorf("auto range = [%v, %v] does not pad [3.3, 4.3]", lo, hi)
	}

	lo, hi = lineYRange(model.Chart{Series: []model.Series{{Values: []float64{0, 0.1}}}})
	if lo != 0 {
		t.Errorf("non-negative data range starts at %v, want 0", lo)
	}
	_ = hi
}

func TestCategoryLabelFormatter(t *testing.T) {
	f := categoryLabelFormatter([]string{"Jan", "Feb", "Mar"})
	base := float64(lineEpoch.Unix())

	if got := f(0, base); got != "Jan" {
		t.Errorf("f(base) = %q", got)
	}
	if got := f(0, base+2*secondsPerDay); got != "Mar" {
		t.Errorf("f(base+2d) = %q", got)
	}
	if got := f(0, base+5*secondsPerDay); got != "" {
		t.Errorf("f(out of range) = %q", got)
	}
}

func TestTabLayoutWraps(t *testing.T) {
	wide := LayoutTabs(0, 200)
	for _, p := range wide {
		if p.Row != 0 {
			t.Fatalf("all tabs should fit one row at width 200: %+v", wide)
		}
	}

	narrow := LayoutTabs(0, 80)
	if narrow[len(narrow)-1].Row == 0 {
		t.Fatalf("tabs should wrap at width 80: %+v", narrow)
	}
	for _, p := range narrow {
		if p.X+p.Width > 80 {
			t.Errorf("tab overflows width: %+v", p)
		}
	}

	bar := RenderTabBar(0, 80)
	if got, want := lipgloss.Height(bar), narrow[len(narrow)-1].Row+1; got != want {
		t.Errorf("tab bar height = %d, want %d", got, want)
	}
}

func TestTabIdxLookups(t *testing.T) {
	if TabIdxByKey('f') != 5 {
		t.Errorf("TabIdxByKey('f') = %d", TabIdxByKey('f'))
	}
	if TabIdxByKey('z') != -1 {
		t.Errorf("TabIdxByKey('z') = %d", TabIdxByKey('z'))
	}
	if TabIdxByID("risks") != 6 {
		t.Errorf("TabIdxByID(risks) = %d", TabIdxByID("risks"))
	}
}

func TestStatusBarWidth(t *testing.T) {
	bar := RenderStatusBar(60, "[?]help  [q]uit", "Data: built-in")
	if w := lipgloss.Width(bar); w != 60 {
		t.Errorf("status bar width = %d, want 60", w)
	}
	if !strings.Contains(ansi.Strip(bar), "Data: built-in") {
		t.Errorf("status bar missing info: %q", ansi.Strip(bar))
	}

	tight := ansi.Strip(RenderStatusBar(20, "[?]help  [q]uit", "Data: built-in"))
	if strings.Contains(tight, "Data") {
		t.Errorf("info should be dropped when tight: %q", tight)
	}
}

func TestRealizationBarKeepsRawValue(t *testing.T) {
	theme.SetActive("flexoki-dark")
	out := ansi.Strip(RealizationBar(120, 10))
	if !strings.HasSuffix(out, "120%") {
		t.Errorf("RealizationBar(120) = %q", out)
	}
}

func TestTrafficLightsFitWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")
	lights := []model.TrafficLight{
		{Name: "Jawa", Status: model.LightGreen},
		{Name: "Sumatera", Status: model.LightGreen},
		{Name: "Kalimantan", Status: model.LightYellow},
		{Name: "Papua", Status: model.LightRed},
	}
	out := ansi.Strip(TrafficLights(lights, 30))
	for _, l := range strings.Split(out, "\n") {
		if ansi.StringWidth(l) > 30 {
			t.Errorf("line %q wider than 30", l)
		}
	}
	if !strings.Contains(out, "● Papua") {
		t.Errorf("missing indicator: %q", out)
	}
}
