package budget

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/pangan/internal/model"
)

func sampleLines() []model.BudgetLine {
	return []model.BudgetLine{
		{Program: "Subsidi Pupuk", BudgetAmount: 22800, RealizationPercent: 85, Status: model.StatusOnTrack},
		{Program: "Bantuan Pangan (Rastra/BPNT)", BudgetAmount: 25300, RealizationPercent: 92, Status: model.StatusOnTrack},
		{Program: "Cadangan Pangan Pemerintah", BudgetAmount: 8500, RealizationPercent: 78, Status: model.StatusOnTrack},
		{Program: "Infrastruktur Pertanian", BudgetAmount: 12400, RealizationPercent: 65, Status: model.StatusAtRisk},
		{Program: "Riset & Pengembangan", BudgetAmount: 3200, RealizationPercent: 88, Status: model.StatusOnTrack},
		{Program: "Penyuluhan & Pelatihan", BudgetAmount: 2800, RealizationPercent: 72, Status: model.StatusOnTrack},
		{Program: "Stabilisasi Harga Pangan", BudgetAmount: 6500, RealizationPercent: 58, Status: model.StatusAtRisk},
		{Program: "Fortifikasi Pangan", BudgetAmount: 1800, RealizationPercent: 91, Status: model.StatusOnTrack},
		{Program: "Diversifikasi Pangan", BudgetAmount: 2400, RealizationPercent: 82, Status: model.StatusOnTrack},
		{Program: "Sistem Informasi Pangan", BudgetAmount: 1800, RealizationPercent: 95, Status: model.StatusOnTrack},
	}
}

func programs(lines []model.BudgetLine) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Program
	}
	return out
}

func amounts(lines []model.BudgetLine) []float64 {
	out := make([]float64, len(lines))
	for i, l := range lines {
		out[i] = l.BudgetAmount
	}
	return out
}

// renderRecorder captures every sequence handed to the render callback.
type renderRecorder struct {
	calls [][]model.BudgetLine
}

func (r *renderRecorder) render(lines []model.BudgetLine) {
	r.calls = append(r.calls, lines)
}

func (r *renderRecorder) last() []model.BudgetLine {
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}

func TestNew_RendersLoadOrder(t *testing.T) {
	rec := &renderRecorder{}
	c := New(sampleLines(), rec.render)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, sampleLines(), rec.last())
	assert.Equal(t, sampleLines(), c.Displayed())
	assert.Equal(t, ColumnNone, c.SortColumn())
	assert.Equal(t, Ascending, c.SortDirection())
	assert.Empty(t, c.SearchTerm())
}

func TestNew_CopiesInput(t *testing.T) {
	in := sampleLines()
	c := New(in, nil)
	in[0].Program = "mutated"

	assert.Equal(t, "Subsidi Pupuk", c.Records()[0].Program)

	out := c.Displayed()
	out[1].Program = "mutated"
	assert.Equal(t, "Bantuan Pangan (Rastra/BPNT)", c.Displayed()[1].Program)
}

func TestSetSearchTerm_Pupuk(t *testing.T) {
	rec := &renderRecorder{}
	c := New(sampleLines(), rec.render)

	c.SetSearchTerm("pupuk")

	require.Len(t, c.Displayed(), 1)
	assert.Equal(t, "Subsidi Pupuk", c.Displayed()[0].Program)
	assert.Equal(t, c.Displayed(), rec.last())
}

func TestSetSearchTerm_MatchesSubsequence(t *testing.T) {
	terms := []string{"", "pangan", "PANGAN", "an", "&", "riset", "xyz", "  ", "(rastra"}

	for _, term := range terms {
		t.Run(term, func(t *testing.T) {
			c := New(sampleLines(), nil)
			c.SetSearchTerm(term)

			want := []model.BudgetLine{}
			for _, l := range sampleLines() {
				if strings.Contains(strings.ToLower(l.Program), strings.ToLower(term)) {
					want = append(want, l)
				}
			}
			assert.Equal(t, want, c.Displayed())
			assert.Equal(t, strings.ToLower(term), c.SearchTerm())
		})
	}
}

func TestSetSearchTerm_CaseInsensitive(t *testing.T) {
	c := New(sampleLines(), nil)
	c.SetSearchTerm("PaNgAn")

	assert.Equal(t, []string{
		"Bantuan Pangan (Rastra/BPNT)",
		"Cadangan Pangan Pemerintah",
		"Stabilisasi Harga Pangan",
		"Fortifikasi Pangan",
		"Diversifikasi Pangan",
		"Sistem Informasi Pangan",
	}, programs(c.Displayed()))
}

func TestSetSearchTerm_EmptyMatchesAll(t *testing.T) {
	c := New(sampleLines(), nil)
	c.SetSearchTerm("pupuk")
	c.SetSearchTerm("")

	assert.Equal(t, sampleLines(), c.Displayed())
}

func TestSetSearchTerm_Idempotent(t *testing.T) {
	c := New(sampleLines(), nil)
	c.SetSearchTerm("an")
	once := c.Displayed()
	c.SetSearchTerm("an")

	assert.Equal(t, once, c.Displayed())
}

func TestSetSearchTerm_KeepsSortCursor(t *testing.T) {
	c := New(sampleLines(), nil)
	require.NoError(t, c.ActivateSort(ColumnBudgetAmount))
	c.SetSearchTerm("pangan")

	assert.Equal(t, ColumnBudgetAmount, c.SortColumn())
	assert.Equal(t, Ascending, c.SortDirection())
}

func TestSetSearchTerm_FollowsCurrentRecordOrder(t *testing.T) {
	// Sorting reorders the records themselves, so a later search sees the
	// sorted order.
	c := New(sampleLines(), nil)
	require.NoError(t, c.ActivateSort(ColumnRealizationPercent))
	c.SetSearchTerm("pangan")

	assert.Equal(t, []string{
		"Stabilisasi Harga Pangan",
		"Cadangan Pangan Pemerintah",
		"Diversifikasi Pangan",
		"Fortifikasi Pangan",
		"Bantuan Pangan (Rastra/BPNT)",
		"Sistem Informasi Pangan",
	}, programs(c.Displayed()))
}

func TestActivateSort_IgnoresSearch(t *testing.T) {
	c := New(sampleLines(), nil)
	c.SetSearchTerm("pupuk")
	require.NoError(t, c.ActivateSort(ColumnProgram))

	assert.Len(t, c.Displayed(), len(sampleLines()))
	assert.Equal(t, "pupuk", c.SearchTerm())
}

func TestActivateSort_BudgetAscending(t *testing.T) {
	c := New(sampleLines(), nil)
	require.NoError(t, c.ActivateSort(ColumnBudgetAmount))

	assert.Equal(t, []float64{1800, 1800, 2400, 2800, 3200, 6500, 8500, 12400, 22800, 25300}, amounts(c.Displayed()))
	// Equal amounts keep load order.
	assert.Equal(t, "Fortifikasi Pangan", c.Displayed()[0].Program)
	assert.Equal(t, "Sistem Informasi Pangan", c.Displayed()[1].Program)
}

func TestActivateSort_BudgetAscendingThenDescendingReverses(t *testing.T) {
	c := New(sampleLines(), nil)
	require.NoError(t, c.ActivateSort(ColumnBudgetAmount))
	asc := amounts(c.Displayed())

	require.NoError(t, c.ActivateSort(ColumnBudgetAmount))
	assert.Equal(t, Descending, c.SortDirection())

	desc := amounts(c.Displayed())
	for i := range asc {
		assert.Equal(t, asc[len(asc)-1-i], desc[i])
	}
}

func TestActivateSort_DistinctKeysExactReverse(t *testing.T) {
	lines := []model.BudgetLine{
		{Program: "a", BudgetAmount: 3},
		{Program: "b", BudgetAmount: 1},
		{Program: "c", BudgetAmount: 2},
	}
	c := New(lines, nil)
	require.NoError(t, c.ActivateSort(ColumnBudgetAmount))
	asc := c.Displayed()
	require.NoError(t, c.ActivateSort(ColumnBudgetAmount))
	desc := c.Displayed()

	for i := range asc {
		assert.Equal(t, asc[len(asc)-1-i], desc[i])
	}
}

func TestActivateSort_ToggleLaw(t *testing.T) {
	for _, col := range Columns {
		t.Run(col.String(), func(t *testing.T) {
			single := New(sampleLines(), nil)
			require.NoError(t, single.ActivateSort(col))

			c := New(sampleLines(), nil)
			require.NoError(t, c.ActivateSort(col))
			before := c.SortDirection()
			require.NoError(t, c.ActivateSort(col))
			require.NoError(t, c.ActivateSort(col))

			assert.Equal(t, before, c.SortDirection())
			assert.Equal(t, single.Displayed(), c.Displayed())
		})
	}
}

func TestActivateSort_ColumnSwitchResetsDirection(t *testing.T) {
	c := New(sampleLines(), nil)
	require.NoError(t, c.ActivateSort(ColumnRealizationPercent))
	require.NoError(t, c.ActivateSort(ColumnRealizationPercent))
	require.Equal(t, Descending, c.SortDirection())

	require.NoError(t, c.ActivateSort(ColumnBudgetAmount))

	assert.Equal(t, ColumnBudgetAmount, c.SortColumn())
	assert.Equal(t, Ascending, c.SortDirection())
	got := amounts(c.Displayed())
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1], got[i])
	}
}

func TestActivateSort_ProgramRawOrder(t *testing.T) {
	lines := []model.BudgetLine{
		{Program: "Beta", BudgetAmount: 100},
		{Program: "alpha", BudgetAmount: 50},
	}
	c := New(lines, nil)
	require.NoError(t, c.ActivateSort(ColumnProgram))

	// Byte order: upper case sorts before lower case.
	assert.Equal(t, []string{"Beta", "alpha"}, programs(c.Displayed()))
}

func TestActivateSort_Status(t *testing.T) {
	c := New(sampleLines(), nil)
	require.NoError(t, c.ActivateSort(ColumnStatus))

	got := c.Displayed()
	assert.Equal(t, model.StatusAtRisk, got[0].Status)
	assert.Equal(t, model.StatusAtRisk, got[1].Status)
	assert.Equal(t, "Infrastruktur Pertanian", got[0].Program)
	assert.Equal(t, "Stabilisasi Harga Pangan", got[1].Program)
	for _, l := range got[2:] {
		assert.Equal(t, model.StatusOnTrack, l.Status)
	}
}

func TestActivateSort_NumericEdgeValues(t *testing.T) {
	lines := []model.BudgetLine{
		{Program: "a", RealizationPercent: 12.25},
		{Program: "b", RealizationPercent: 0},
		{Program: "c", RealizationPercent: 0.5},
		{Program: "d", RealizationPercent: 120},
		{Program: "e", RealizationPercent: 0},
		{Program: "f", RealizationPercent: 12.2},
	}
	c := New(lines, nil)
	require.NoError(t, c.ActivateSort(ColumnRealizationPercent))

	assert.Equal(t, []string{"b", "e", "c", "f", "a", "d"}, programs(c.Displayed()))

	require.NoError(t, c.ActivateSort(ColumnRealizationPercent))
	assert.Equal(t, []string{"d", "a", "f", "c", "b", "e"}, programs(c.Displayed()))
}

func TestActivateSort_InvalidColumn(t *testing.T) {
	rec := &renderRecorder{}
	c := New(sampleLines(), rec.render)
	require.NoError(t, c.ActivateSort(ColumnProgram))
	calls := len(rec.calls)
	before := c.Displayed()

	for _, col := range []Column{ColumnNone, Column(4), Column(-7)} {
		err := c.ActivateSort(col)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidColumn)
	}

	assert.Len(t, rec.calls, calls)
	assert.Equal(t, before, c.Displayed())
	assert.Equal(t, ColumnProgram, c.SortColumn())
	assert.Equal(t, Ascending, c.SortDirection())
}

func TestReplace(t *testing.T) {
	rec := &renderRecorder{}
	c := New(sampleLines(), rec.render)
	require.NoError(t, c.ActivateSort(ColumnStatus))
	c.SetSearchTerm("pupuk")

	next := sampleLines()[:3]
	c.Replace(next)

	assert.Equal(t, next, c.Displayed())
	assert.Equal(t, next, rec.last())
	assert.Equal(t, ColumnStatus, c.SortColumn())
	assert.Equal(t, "pupuk", c.SearchTerm())
}

func TestParseColumn(t *testing.T) {
	tests := []struct {
		in   string
		want Column
	}{
		{"program", ColumnProgram},
		{"Program", ColumnProgram},
		{"1", ColumnProgram},
		{"budgetAmount", ColumnBudgetAmount},
		{"budget", ColumnBudgetAmount},
		{"realizationPercent", ColumnRealizationPercent},
		{"realization", ColumnRealizationPercent},
		{" status ", ColumnStatus},
		{"4", ColumnStatus},
	}
	for _, tt := range tests {
		got, err := ParseColumn(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "none", "5", "amount", "0"} {
		_, err := ParseColumn(bad)
		assert.ErrorIs(t, err, ErrInvalidColumn, bad)
	}
}

func TestTotals(t *testing.T) {
	lines := sampleLines()

	assert.Equal(t, "87500", Total(lines).String())
	assert.Equal(t, "81.4", AverageRealization(lines).String())
	assert.True(t, Total(nil).IsZero())
	assert.True(t, AverageRealization(nil).IsZero())
}
