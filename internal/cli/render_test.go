package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/pangan/internal/model"
)

func TestRenderTable(t *testing.T) {
	out := ansi.Strip(RenderTable(Table{
		Title:   "Anggaran",
		Headers: []string{"Program", "Anggaran"},
		Rows: [][]string{
			{"Subsidi Pupuk", "22.800"},
			{"Fortifikasi Pangan", "1.800"},
		},
		Footer: []string{"Total", "24.600"},
	}))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 9) // title, top, header, sep, 2 rows, sep, footer, bottom

	assert.Contains(t, lines[0], "Anggaran")
	assert.Contains(t, lines[4], "Subsidi Pupuk")
	assert.Contains(t, lines[7], "24.600")

	width := ansi.StringWidth(lines[1])
	for _, l := range lines[1:] {
		assert.Equal(t, width, ansi.StringWidth(l), "row %q", l)
	}
	// Numeric columns are right-aligned.
	assert.Contains(t, lines[5], "│    1.800 │")
}

func TestRenderTable_FixedWidthsTruncate(t *testing.T) {
	out := ansi.Strip(RenderTable(Table{
		Headers: []string{"Program"},
		Rows:    [][]string{{"Bantuan Pangan (Rastra/BPNT)"}},
		Widths:  []int{10},
	}))

	assert.Contains(t, out, "Bantuan P…")
	assert.NotContains(t, out, "Rastra")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(Table{}))
}

func TestRenderProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░ 50%", ansi.Strip(RenderProgressBar(50, 10)))
	assert.Equal(t, "██████████ 120%", ansi.Strip(RenderProgressBar(120, 10)))
	assert.Equal(t, "░░░░░░░░░░ 0%", ansi.Strip(RenderProgressBar(0, 10)))
	assert.Equal(t, "85%", RenderProgressBar(85, 0))
}

func TestRenderStatus(t *testing.T) {
	assert.Equal(t, "On Track", ansi.Strip(RenderStatus(model.StatusOnTrack)))
	assert.Equal(t, "At Risk", ansi.Strip(RenderStatus(model.StatusAtRisk)))
	assert.Equal(t, "Delayed", ansi.Strip(RenderStatus("paused")))
}

func TestRenderSparkline(t *testing.T) {
	assert.Empty(t, RenderSparkline(nil))
	assert.Equal(t, "▁█", RenderSparkline([]float64{0, 10}))
	assert.Equal(t, "▁▁", RenderSparkline([]float64{0, 0}))
}

func TestRenderHorizontalBar(t *testing.T) {
	out := ansi.Strip(RenderHorizontalBar("Beras", 50, 100, 8, 10))
	assert.Equal(t, "  Beras    █████ 50", out)
}
