package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/pangan/internal/model"
)

func TestDefault(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	assert.Len(t, d.Summary, 5)
	assert.Len(t, d.Overview.KPIs, 4)
	assert.Len(t, d.Overview.Charts, 2)
	assert.Equal(t, []string{"availability", "accessibility", "affordability", "acceptability", "fiscal", "risks"}, d.SectionIDs())
	assert.Len(t, d.Budget, 10)
	assert.Len(t, d.Recommendations, 4)
	require.Len(t, d.TrafficSummary, 3)
	assert.Equal(t, 18, d.TrafficSummary[0].Count)
	assert.Equal(t, model.LightRed, d.TrafficSummary[2].Light)

	charts := len(d.Overview.Charts)
	for _, s := range d.Sections {
		charts += len(s.Charts)
		assert.Len(t, s.KPIs, 4, s.ID)
		for _, c := range s.Charts {
			for _, series := range c.Series {
				assert.Len(t, series.Values, len(c.Labels), c.ID)
			}
		}
	}
	assert.Equal(t, 14, charts)

	first := d.Budget[0]
	assert.Equal(t, model.BudgetLine{Program: "Subsidi Pupuk", BudgetAmount: 22800, RealizationPercent: 85, Status: model.StatusOnTrack}, first)
}

func TestDefault_SectionContent(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	risks, ok := d.Section("risks")
	require.True(t, ok)
	require.Len(t, risks.Alerts, 3)
	assert.Equal(t, model.AlertInfo, risks.Alerts[1].Type)
	require.Len(t, risks.Charts, 2)
	assert.Len(t, risks.Charts[0].Series, 2)
	assert.Equal(t, float64(100), risks.Charts[1].Max)

	access, ok := d.Section("accessibility")
	require.True(t, ok)
	assert.Equal(t, model.LightRed, access.TrafficLights[4].Status)
	assert.Equal(t, "Papua", access.TrafficLights[4].Name)

	overview, ok := d.Section("overview")
	require.True(t, ok)
	assert.Equal(t, "Surplus Produksi", overview.KPIs[0].Label)

	_, ok = d.Section("missing")
	assert.False(t, ok)
}

func TestLoad_EmptyPathUsesBuiltin(t *testing.T) {
	res, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, SourceBuiltin, res.Source)
	assert.False(t, res.Fallback)
	assert.NoError(t, res.Err)
	assert.NotNil(t, res.Dashboard)
	assert.False(t, res.LoadedAt.IsZero())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	payload := `{"title":"Custom","budget":[{"program":"X","budget":1.5,"realization":40,"status":"delayed"}]}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	res, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, res.Source)
	assert.False(t, res.Fallback)
	assert.Equal(t, "Custom", res.Dashboard.Title)
	require.Len(t, res.Dashboard.Budget, 1)
	assert.Equal(t, model.StatusDelayed, res.Dashboard.Budget[0].Status)
}

func TestLoad_MissingFileFallsBack(t *testing.T) {
	res, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	assert.True(t, res.Fallback)
	assert.ErrorIs(t, res.Err, os.ErrNotExist)
	assert.Equal(t, SourceBuiltin, res.Source)
	assert.Len(t, res.Dashboard.Budget, 10)
}

func TestLoad_BadJSONFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	res, err := Load(path)
	require.NoError(t, err)

	assert.True(t, res.Fallback)
	assert.Error(t, res.Err)
	assert.Equal(t, "Dashboard Ketahanan Pangan Nasional", res.Dashboard.Title)
}
