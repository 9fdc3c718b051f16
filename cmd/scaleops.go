package cmd

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/halcyard/tempo"
	"github.com/halcyard/tempo/internal/catalog"
)

// scaleOps adapts one marker type for runtime dispatch, letting commands
// resolve scale names from flags and arguments. Cross-scale conversion
// goes through the canonical MJD projection, so any pair of entries
// composes.
type scaleOps struct {
	name  string
	label string

	fromCivil func(tempo.Civil) (float64, error)
	toCivil   func(float64) (tempo.Civil, error)
	toMJD     func(float64) float64
	fromMJD   func(float64) float64
}

func opsFor[S tempo.Scale](name string) scaleOps {
	return scaleOps{
		name:  name,
		label: tempo.Label[S](),
		fromCivil: func(c tempo.Civil) (float64, error) {
			t, err := tempo.FromCivil[S](c)
			return t.Value(), err
		},
		toCivil: func(v float64) (tempo.Civil, error) {
			return tempo.New[S](v).ToCivil()
		},
		toMJD: func(v float64) float64 {
			return tempo.To[tempo.MJD](tempo.New[S](v)).Value()
		},
		fromMJD: func(v float64) float64 {
			return tempo.To[S](tempo.New[tempo.MJD](v)).Value()
		},
	}
}

var scaleTable = map[string]scaleOps{
	"jd":   opsFor[tempo.JD]("jd"),
	"mjd":  opsFor[tempo.MJD]("mjd"),
	"utc":  opsFor[tempo.UTC]("utc"),
	"tt":   opsFor[tempo.TT]("tt"),
	"tai":  opsFor[tempo.TAI]("tai"),
	"tdb":  opsFor[tempo.TDB]("tdb"),
	"tcg":  opsFor[tempo.TCG]("tcg"),
	"tcb":  opsFor[tempo.TCB]("tcb"),
	"gps":  opsFor[tempo.GPS]("gps"),
	"ut1":  opsFor[tempo.UT1]("ut1"),
	"jde":  opsFor[tempo.JDE]("jde"),
	"unix": opsFor[tempo.Unix]("unix"),
}

// scaleNames returns all known scale names, sorted.
func scaleNames() []string {
	names := make([]string, 0, len(scaleTable))
	for name := range scaleTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lookupScale resolves a scale name from a flag or argument.
func lookupScale(name string) (scaleOps, error) {
	ops, ok := scaleTable[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return scaleOps{}, fmt.Errorf("unknown scale %q (known: %s)",
			name, strings.Join(scaleNames(), ", "))
	}
	return ops, nil
}

// parseCivil parses "YYYY-MM-DD HH:MM:SS[.fraction]"; the time part is
// optional and defaults to midnight. Negative years are accepted.
func parseCivil(s string) (tempo.Civil, error) {
	datePart, timePart, hasTime := strings.Cut(strings.TrimSpace(s), " ")

	var c tempo.Civil
	var year, month, day int
	if n, err := fmt.Sscanf(datePart, "%d-%d-%d", &year, &month, &day); n != 3 || err != nil {
		return tempo.Civil{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", datePart)
	}
	// Reject components the wire types cannot hold before narrowing, so
	// an out-of-range value never wraps into a plausible one. Calendar
	// validity (days per month, leap-second slot) stays with the engine.
	if year < math.MinInt32 || year > math.MaxInt32 || month < 1 || month > 12 || day < 1 || day > 31 {
		return tempo.Civil{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", datePart)
	}
	c.Year = int32(year)
	c.Month = uint8(month)
	c.Day = uint8(day)

	if !hasTime {
		return c, nil
	}

	clock, frac, hasFrac := strings.Cut(timePart, ".")
	var hour, minute, second int
	if n, err := fmt.Sscanf(clock, "%d:%d:%d", &hour, &minute, &second); n != 3 || err != nil {
		return tempo.Civil{}, fmt.Errorf("invalid time %q (want HH:MM:SS)", timePart)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 60 {
		return tempo.Civil{}, fmt.Errorf("invalid time %q (want HH:MM:SS)", timePart)
	}
	c.Hour = uint8(hour)
	c.Minute = uint8(minute)
	c.Second = uint8(second)

	if hasFrac {
		if len(frac) > 9 {
			return tempo.Civil{}, fmt.Errorf("fractional seconds %q exceed nanosecond precision", frac)
		}
		padded := frac + strings.Repeat("0", 9-len(frac))
		ns, err := strconv.ParseUint(padded, 10, 32)
		if err != nil {
			return tempo.Civil{}, fmt.Errorf("invalid fractional seconds %q", frac)
		}
		c.Nanosecond = uint32(ns)
	}
	return c, nil
}

// entryValue resolves a catalog entry to a raw value on its own scale.
func entryValue(e catalog.Entry) (scaleOps, float64, error) {
	ops, err := lookupScale(e.Scale)
	if err != nil {
		return scaleOps{}, 0, fmt.Errorf("catalog entry %q: %w", e.Name, err)
	}
	if e.Value != nil {
		return ops, *e.Value, nil
	}
	c, err := parseCivil(e.Civil)
	if err != nil {
		return scaleOps{}, 0, fmt.Errorf("catalog entry %q: %w", e.Name, err)
	}
	v, err := ops.fromCivil(c)
	if err != nil {
		return scaleOps{}, 0, fmt.Errorf("catalog entry %q: %w", e.Name, err)
	}
	return ops, v, nil
}

// resolveValue turns a command-line instant argument into a raw value on
// the requested scale. Plain numbers are taken as-is; "@name" references
// resolve through the epoch catalog and convert onto the requested scale.
func resolveValue(catalogPath string, ops scaleOps, arg string) (float64, error) {
	if name, ok := strings.CutPrefix(arg, "@"); ok {
		cat, err := catalog.Load(catalogPath)
		if err != nil {
			return 0, err
		}
		e, ok := cat.Find(name)
		if !ok {
			return 0, fmt.Errorf("%w: %s", catalog.ErrNotFound, name)
		}
		entryOps, v, err := entryValue(e)
		if err != nil {
			return 0, err
		}
		return ops.fromMJD(entryOps.toMJD(v)), nil
	}

	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", ops.label, arg)
	}
	return v, nil
}

// formatValue renders a raw value with the configured precision; a
// negative precision uses the shortest exact representation.
func formatValue(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}
