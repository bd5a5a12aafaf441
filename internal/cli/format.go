// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/theirongolddev/pangan/internal/model"
)

var idPrinter = message.NewPrinter(language.Indonesian)

var (
	dayNamesID = []string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

	monthNamesID = []string{
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	}
)

// FormatNumber formats a number with id-ID grouping.
// e.g., 22800 -> "22.800", 1234.5 -> "1.234,5"
func FormatNumber(f float64) string {
	return idPrinter.Sprint(number.Decimal(f, number.MaxFractionDigits(3)))
}

// FormatDecimal formats an exact amount with id-ID grouping.
func FormatDecimal(d decimal.Decimal) string {
	return FormatNumber(d.InexactFloat64())
}

// FormatTrillion renders an amount in billions of rupiah as trillions.
// e.g., 22800 -> "Rp 22.8 T"
func FormatTrillion(billions float64) string {
	return "Rp " + strconv.FormatFloat(billions/1000, 'f', 1, 64) + " T"
}

// FormatRealization prints a realization percentage as given, without
// rounding or clamping. e.g., 85 -> "85%", 12.25 -> "12.25%"
func FormatRealization(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatChange prefixes a KPI change with its trend arrow.
func FormatChange(k model.KPI) string {
	return k.Trend.Arrow() + " " + k.Change
}

// FormatDayOfWeek returns the Indonesian day name for a weekday.
func FormatDayOfWeek(weekday time.Weekday) string {
	if weekday >= 0 && int(weekday) < len(dayNamesID) {
		return dayNamesID[weekday]
	}
	return "???"
}

// FormatDateID formats a date the way id-ID long dates read.
// e.g., "Sabtu, 17 Oktober 2026"
func FormatDateID(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d", FormatDayOfWeek(t.Weekday()), t.Day(), monthNamesID[t.Month()-1], t.Year())
}
