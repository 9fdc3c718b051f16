package quantity

import (
	"math"
	"testing"
)

func TestConversions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		q    Quantity
		to   Unit
		want float64
	}{
		{"day to hours", Days(1), Hour, 24},
		{"day to minutes", Days(1), Minute, 1440},
		{"day to seconds", Days(1), Second, 86400},
		{"hours to days", Hours(36), Day, 1.5},
		{"minutes to hours", Minutes(90), Hour, 1.5},
		{"century to days", JulianCenturies(1), Day, 36525},
		{"seconds to days", Seconds(43200), Day, 0.5},
		{"identity", Hours(7), Hour, 7},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tc.q.To(tc.to)
			if math.Abs(got.Value()-tc.want) > 1e-9 {
				t.Errorf("%v.To(%v) = %v, want %v", tc.q, tc.to, got.Value(), tc.want)
			}
			if got.Unit() != tc.to {
				t.Errorf("unit = %v, want %v", got.Unit(), tc.to)
			}
		})
	}
}

func TestNeg(t *testing.T) {
	t.Parallel()
	q := Hours(12).Neg()
	if q.Value() != -12 || q.Unit() != Hour {
		t.Errorf("Neg = %v, want -12 h", q)
	}
}

func TestString(t *testing.T) {
	t.Parallel()
	for q, want := range map[Quantity]string{
		Days(1.5):           "1.5 d",
		Hours(24):           "24 h",
		Minutes(90):         "90 min",
		Seconds(0.25):       "0.25 s",
		JulianCenturies(-1): "-1 jcy",
	} {
		if got := q.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestInPanicsOnUnknownUnit(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown unit")
		}
	}()
	_ = New(1, Unit(42)).In(Day)
}
