package theme

import "testing"

func TestByNameFallsBack(t *testing.T) {
	if got := ByName("tokyo-night").Name; got != "tokyo-night" {
		t.Fatalf("ByName(tokyo-night) = %q", got)
	}
	if got := ByName("nope").Name; got != FlexokiDark.Name {
		t.Fatalf("ByName(nope) = %q, want %q", got, FlexokiDark.Name)
	}
}

func TestNamesAndValid(t *testing.T) {
	names := Names()
	if len(names) != len(All) {
		t.Fatalf("Names() has %d entries, want %d", len(names), len(All))
	}
	for _, n := range names {
		if !Valid(n) {
			t.Errorf("Valid(%q) = false", n)
		}
	}
	if Valid("") {
		t.Error("Valid(\"\") = true")
	}
}

func TestSeriesColorCycles(t *testing.T) {
	th := FlexokiDark
	n := len(th.Series)
	if n == 0 {
		t.Fatal("FlexokiDark has no series colors")
	}
	if th.SeriesColor(0) != th.SeriesColor(n) {
		t.Errorf("SeriesColor does not cycle after %d colors", n)
	}

	empty := Theme{Accent: "#123456"}
	if empty.SeriesColor(3) != "#123456" {
		t.Errorf("SeriesColor on empty palette = %q, want accent", empty.SeriesColor(3))
	}
}
