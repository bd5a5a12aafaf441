package cli

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/theirongolddev/pangan/internal/model"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{950, "950"},
		{1800, "1.800"},
		{22800, "22.800"},
		{135000, "135.000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in), "FormatNumber(%v)", tt.in)
	}
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "87.500", FormatDecimal(decimal.NewFromInt(87500)))
}

func TestFormatTrillion(t *testing.T) {
	assert.Equal(t, "Rp 22.8 T", FormatTrillion(22800))
	assert.Equal(t, "Rp 87.5 T", FormatTrillion(87500))
	assert.Equal(t, "Rp 0.0 T", FormatTrillion(0))
}

func TestFormatRealization(t *testing.T) {
	assert.Equal(t, "85%", FormatRealization(85))
	assert.Equal(t, "12.25%", FormatRealization(12.25))
	assert.Equal(t, "0%", FormatRealization(0))
	assert.Equal(t, "120%", FormatRealization(120))
}

func TestFormatChange(t *testing.T) {
	assert.Equal(t, "↑ +8.5%", FormatChange(model.KPI{Change: "+8.5%", Trend: model.TrendPositive}))
	assert.Equal(t, "↓ +2.1%", FormatChange(model.KPI{Change: "+2.1%", Trend: model.TrendNegative}))
	assert.Equal(t, "→ Stable", FormatChange(model.KPI{Change: "Stable", Trend: model.TrendNeutral}))
	assert.Equal(t, "→ x", FormatChange(model.KPI{Change: "x", Trend: "sideways"}))
}

func TestFormatDateID(t *testing.T) {
	d := time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "Sabtu, 17 Oktober 2026", FormatDateID(d))

	d = time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Minggu, 5 Januari 2025", FormatDateID(d))
}
