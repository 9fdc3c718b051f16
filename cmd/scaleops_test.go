package cmd

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/halcyard/tempo"
	"github.com/halcyard/tempo/internal/catalog"
)

func TestParseCivil(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want tempo.Civil
	}{
		{"2000-01-01", tempo.Civil{Year: 2000, Month: 1, Day: 1}},
		{"2000-01-01 12:00:00", tempo.Civil{Year: 2000, Month: 1, Day: 1, Hour: 12}},
		{"2025-06-15 23:59:60", tempo.Civil{Year: 2025, Month: 6, Day: 15, Hour: 23, Minute: 59, Second: 60}},
		{"1999-12-31 00:00:00.5", tempo.Civil{Year: 1999, Month: 12, Day: 31, Nanosecond: 500000000}},
		{"-44-03-15 12:30:00", tempo.Civil{Year: -44, Month: 3, Day: 15, Hour: 12, Minute: 30}},
	}
	for _, tt := range tests {
		got, err := parseCivil(tt.in)
		if err != nil {
			t.Errorf("parseCivil(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseCivil(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseCivil_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "2000", "2000-01", "noon", "2000-01-01 12:00", "2000-01-01 12:00:00.0123456789"} {
		if _, err := parseCivil(in); err == nil {
			t.Errorf("parseCivil(%q): expected error", in)
		}
	}
}

func TestParseCivil_OutOfRangeComponents(t *testing.T) {
	t.Parallel()

	// Components beyond the wire types must error instead of wrapping
	// into small in-range values (279 % 256 = 23, 257 % 256 = 1).
	inputs := []string{
		"2000-01-01 279:00:00",
		"2000-257-01",
		"2000-00-01",
		"2000-01-00",
		"2000-01-32",
		"2000-13-01",
		"2000-01-01 24:00:00",
		"2000-01-01 12:60:00",
		"2000-01-01 12:00:61",
		"2000-01-01 -1:00:00",
		"9999999999-01-01",
	}
	for _, in := range inputs {
		if got, err := parseCivil(in); err == nil {
			t.Errorf("parseCivil(%q): expected error, got %+v", in, got)
		}
	}
}

func TestLookupScale(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"jd", "JD", " mjd ", "Unix"} {
		if _, err := lookupScale(name); err != nil {
			t.Errorf("lookupScale(%q): %v", name, err)
		}
	}
	if _, err := lookupScale("tdt"); err == nil {
		t.Error("lookupScale(tdt): expected error")
	}
}

func TestResolveValue_Number(t *testing.T) {
	t.Parallel()

	ops := scaleTable["mjd"]
	v, err := resolveValue("", ops, "60000.25")
	if err != nil {
		t.Fatal(err)
	}
	if v != 60000.25 {
		t.Errorf("expected 60000.25, got %v", v)
	}

	if _, err := resolveValue("", ops, "sixty"); err == nil {
		t.Error("expected error for non-numeric value")
	}
}

func TestResolveValue_CatalogReference(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.toml")
	jd := 2451545.0
	cat := &catalog.Catalog{Epochs: []catalog.Entry{
		{Name: "j2000", Scale: "jd", Value: &jd},
		{Name: "y2k", Scale: "utc", Civil: "2000-01-01 00:00:00"},
	}}
	if err := catalog.Save(path, cat); err != nil {
		t.Fatal(err)
	}

	// A JD-valued entry requested on the MJD scale converts across.
	got, err := resolveValue(path, scaleTable["mjd"], "@j2000")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-51544.5) > 1e-9 {
		t.Errorf("expected MJD 51544.5, got %v", got)
	}

	// A civil-valued entry resolves through its own scale first.
	got, err = resolveValue(path, scaleTable["mjd"], "@y2k")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-51544.0) > 1e-9 {
		t.Errorf("expected MJD 51544, got %v", got)
	}

	if _, err := resolveValue(path, scaleTable["mjd"], "@missing"); err == nil {
		t.Error("expected error for unknown catalog name")
	}
}

func TestScaleTable_RoundTrips(t *testing.T) {
	t.Parallel()

	const mjd = 60000.5
	for _, name := range scaleNames() {
		ops := scaleTable[name]
		back := ops.toMJD(ops.fromMJD(mjd))
		if math.Abs(back-mjd) > 1e-9 {
			t.Errorf("%s: MJD round trip drifted by %g days", name, back-mjd)
		}
	}
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	if got := formatValue(60200.5, -1); got != "60200.5" {
		t.Errorf("expected 60200.5, got %s", got)
	}
	if got := formatValue(60200.5, 3); got != "60200.500" {
		t.Errorf("expected 60200.500, got %s", got)
	}
}
