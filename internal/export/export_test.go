package export

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/pangan/internal/dataset"
)

func TestWriteCSV_Budget(t *testing.T) {
	d, err := dataset.Default()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, d, TableBudget))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 11)
	assert.Equal(t, []string{"program", "budget", "realization", "status"}, records[0])
	assert.Equal(t, []string{"Subsidi Pupuk", "22800", "85", "on-track"}, records[1])
	assert.Equal(t, []string{"Bantuan Pangan (Rastra/BPNT)", "25300", "92", "on-track"}, records[2])
}

func TestWriteCSV_KPIs(t *testing.T) {
	d, err := dataset.Default()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, d, TableKPIs))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+7*4)
	assert.Equal(t, []string{"overview", "Surplus Produksi", "3.2 jt ton", "+8.5%", "positive"}, records[1])
	assert.Equal(t, []string{"accessibility", "Pasar Tradisional", "13,450", "+215", "positive"}, records[9])
}

func TestWriteCSV_UnknownTable(t *testing.T) {
	d, err := dataset.Default()
	require.NoError(t, err)

	assert.Error(t, WriteCSV(&bytes.Buffer{}, d, Table("charts")))
}

func TestParseTable(t *testing.T) {
	tbl, err := ParseTable("kpis")
	require.NoError(t, err)
	assert.Equal(t, TableKPIs, tbl)

	_, err = ParseTable("nope")
	assert.Error(t, err)
}

func TestStore_SaveDashboard(t *testing.T) {
	d, err := dataset.Default()
	require.NoError(t, err)

	s, err := Open(filepath.Join(t.TempDir(), "out", "pangan.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.SaveDashboard(d, dataset.SourceBuiltin))
	// A second export replaces the first.
	require.NoError(t, s.SaveDashboard(d, dataset.SourceBuiltin))

	lines, err := s.BudgetLines()
	require.NoError(t, err)
	assert.Equal(t, d.Budget, lines)

	counts, err := s.CountKPIs()
	require.NoError(t, err)
	assert.Len(t, counts, 7)
	assert.Equal(t, 4, counts["fiscal"])

	src, err := s.Meta("source")
	require.NoError(t, err)
	assert.Equal(t, dataset.SourceBuiltin, src)
}
