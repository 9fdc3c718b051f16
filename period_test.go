package tempo

import (
	"errors"
	"math"
	"testing"

	"github.com/halcyard/tempo/quantity"
)

func mustPeriod[S Scale](t *testing.T, start, end float64) Period[S] {
	t.Helper()
	p, err := NewPeriod(New[S](start), New[S](end))
	if err != nil {
		t.Fatalf("NewPeriod(%v, %v): %v", start, end, err)
	}
	return p
}

func TestPeriodDuration(t *testing.T) {
	t.Parallel()

	p := mustPeriod[MJD](t, 60200.0, 60201.0)

	if d := p.Duration(); d.Unit() != quantity.Day || d.Value() != 1.0 {
		t.Errorf("Duration = %v, want 1 d", d)
	}
	if h := p.Duration().To(quantity.Hour).Value(); math.Abs(h-24.0) > 1e-9 {
		t.Errorf("duration in hours = %v, want 24", h)
	}
	if m := p.Duration().To(quantity.Minute).Value(); math.Abs(m-1440.0) > 1e-9 {
		t.Errorf("duration in minutes = %v, want 1440", m)
	}
}

func TestPeriodDurationIn(t *testing.T) {
	t.Parallel()

	p := mustPeriod[MJD](t, 60200.0, 60200.5)
	min, err := p.DurationIn(quantity.Minute)
	if err != nil {
		t.Fatalf("DurationIn: %v", err)
	}
	if min.Unit() != quantity.Minute || math.Abs(min.Value()-720) > 1e-6 {
		t.Errorf("DurationIn(minute) = %v, want 720 min", min)
	}

	if _, err := p.DurationIn(quantity.Unit(99)); !errors.Is(err, ErrTime) {
		t.Errorf("unknown unit: got %v, want a generic time failure", err)
	}
}

func TestPeriodDurationMatchesDiff(t *testing.T) {
	t.Parallel()
	start := New[MJD](60200.25)
	end := New[MJD](60203.75)
	p, err := NewPeriod(start, end)
	if err != nil {
		t.Fatalf("NewPeriod: %v", err)
	}
	if p.Duration().Value() != end.Diff(start).Value() {
		t.Errorf("Duration = %v, Diff = %v; want exact equality",
			p.Duration().Value(), end.Diff(start).Value())
	}
}

func TestPeriodBounds(t *testing.T) {
	t.Parallel()

	p := mustPeriod[MJD](t, 60200.0, 60201.0)
	if p.Start().Value() != 60200.0 || p.End().Value() != 60201.0 {
		t.Errorf("bounds = [%v, %v], want [60200, 60201]", p.Start().Value(), p.End().Value())
	}
}

func TestPeriodInvalid(t *testing.T) {
	t.Parallel()
	_, err := NewPeriod(New[MJD](60203.0), New[MJD](60200.0))
	if !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("got %v, want ErrInvalidPeriod", err)
	}
	if !errors.Is(err, ErrTime) {
		t.Errorf("got %v, want ErrTime", err)
	}
}

func TestPeriodIntersection(t *testing.T) {
	t.Parallel()

	t.Run("overlap", func(t *testing.T) {
		t.Parallel()
		a := mustPeriod[MJD](t, 60200.0, 60202.0)
		b := mustPeriod[MJD](t, 60201.0, 60203.0)
		got, err := a.Intersection(b)
		if err != nil {
			t.Fatalf("Intersection: %v", err)
		}
		want := mustPeriod[MJD](t, 60201.0, 60202.0)
		if !got.Equal(want) {
			t.Errorf("Intersection = %v, want %v", got, want)
		}
	})

	t.Run("commutative", func(t *testing.T) {
		t.Parallel()
		a := mustPeriod[MJD](t, 60200.0, 60202.0)
		b := mustPeriod[MJD](t, 60201.0, 60203.0)
		ab, err := a.Intersection(b)
		if err != nil {
			t.Fatalf("a.Intersection(b): %v", err)
		}
		ba, err := b.Intersection(a)
		if err != nil {
			t.Fatalf("b.Intersection(a): %v", err)
		}
		if !ab.Equal(ba) {
			t.Errorf("intersection not commutative: %v vs %v", ab, ba)
		}
	})

	t.Run("disjoint", func(t *testing.T) {
		t.Parallel()
		a := mustPeriod[MJD](t, 60200.0, 60201.0)
		b := mustPeriod[MJD](t, 60202.0, 60203.0)
		_, err := a.Intersection(b)
		if !errors.Is(err, ErrNoIntersection) {
			t.Errorf("got %v, want ErrNoIntersection", err)
		}
	})

	t.Run("touching bounds make a point period", func(t *testing.T) {
		t.Parallel()
		a := mustPeriod[MJD](t, 60200.0, 60201.0)
		b := mustPeriod[MJD](t, 60201.0, 60202.0)
		got, err := a.Intersection(b)
		if err != nil {
			t.Fatalf("touching periods must intersect, got %v", err)
		}
		if got.Duration().Value() != 0 {
			t.Errorf("duration = %v, want 0", got.Duration().Value())
		}
		if got.Start().Value() != 60201.0 || got.End().Value() != 60201.0 {
			t.Errorf("bounds = [%v, %v], want the shared instant", got.Start().Value(), got.End().Value())
		}
	})
}

func TestPeriodCrossScale(t *testing.T) {
	t.Parallel()
	// A period over Julian Dates stores canonically in MJD and projects
	// its bounds back on access.
	p, err := NewPeriod(New[JD](2451545.0), New[JD](2451546.0))
	if err != nil {
		t.Fatalf("NewPeriod: %v", err)
	}
	if d := p.Duration().Value(); math.Abs(d-1.0) > 1e-9 {
		t.Errorf("duration = %v, want 1 day", d)
	}
	if got := p.Start().Value(); math.Abs(got-2451545.0) > 1e-9 {
		t.Errorf("start = %v, want 2451545.0", got)
	}
}

func TestPeriodString(t *testing.T) {
	t.Parallel()
	p := mustPeriod[MJD](t, 60200.0, 60201.0)
	if got := p.String(); got != "[60200, 60201]" {
		t.Errorf("String() = %q, want %q", got, "[60200, 60201]")
	}
}
