package tempo

import (
	"fmt"

	"github.com/halcyard/tempo/internal/engine"
	"github.com/halcyard/tempo/quantity"
)

// Period is an inclusive [start, end] interval over time points on scale
// S. Bounds are stored in the canonical scale (MJD) and projected back
// to S on access; start <= end holds for every publicly constructed
// value.
type Period[S Scale] struct {
	inner engine.PeriodMJD
}

// NewPeriod validates and constructs a period from two time points.
// It fails with ErrInvalidPeriod when start is later than end.
func NewPeriod[S Scale](start, end Time[S]) (Period[S], error) {
	id := idOf[S]()
	s := convertValue(id, scaleMJD, start.Value())
	e := convertValue(id, scaleMJD, end.Value())

	var out engine.PeriodMJD
	if err := checkStatus(engine.PeriodNew(s, e, &out), "Period.New"); err != nil {
		return Period[S]{}, err
	}
	return Period[S]{inner: out}, nil
}

// periodFromEngine wraps engine output already known to be valid. It is
// the privileged unchecked path and must never receive arbitrary input.
func periodFromEngine[S Scale](p engine.PeriodMJD) Period[S] {
	return Period[S]{inner: p}
}

// Start returns the inclusive start projected back to scale S.
func (p Period[S]) Start() Time[S] {
	return New[S](convertValue(scaleMJD, idOf[S](), p.inner.StartMJD))
}

// End returns the inclusive end projected back to scale S.
func (p Period[S]) End() Time[S] {
	return New[S](convertValue(scaleMJD, idOf[S](), p.inner.EndMJD))
}

// Duration returns the period's length as a day quantity; convert with
// quantity.Quantity.To.
func (p Period[S]) Duration() quantity.Quantity {
	return quantity.Days(engine.PeriodDurationDays(p.inner))
}

// DurationIn returns the period's length converted to the requested unit
// by the engine's quantity conversion.
func (p Period[S]) DurationIn(u quantity.Unit) (quantity.Quantity, error) {
	in := engine.Quantity{Value: engine.PeriodDurationDays(p.inner), Unit: engine.UnitDay}
	var out engine.Quantity
	if err := checkStatus(engine.ConvertQuantity(in, engineUnit(u), &out), "Period.DurationIn"); err != nil {
		return quantity.Quantity{}, err
	}
	return quantity.New(out.Value, u), nil
}

// Intersection computes the overlap of two periods. It fails with
// ErrNoIntersection when the periods are disjoint; periods sharing
// exactly one instant intersect in a zero-duration period.
func (p Period[S]) Intersection(other Period[S]) (Period[S], error) {
	var out engine.PeriodMJD
	if err := checkStatus(engine.PeriodIntersection(p.inner, other.inner, &out), "Period.Intersection"); err != nil {
		return Period[S]{}, err
	}
	return periodFromEngine[S](out), nil
}

// Equal reports whether two periods cover the same canonical interval.
func (p Period[S]) Equal(other Period[S]) bool {
	return p.inner == other.inner
}

// String renders "[start, end]" using each bound's own display.
func (p Period[S]) String() string {
	return fmt.Sprintf("[%s, %s]", p.Start(), p.End())
}
