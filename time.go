package tempo

import (
	"strconv"

	"github.com/halcyard/tempo/internal/engine"
	"github.com/halcyard/tempo/quantity"
)

// Time is a point in time on scale S, stored as a single raw value (days
// for most scales, seconds for Unix). The pairing of value and marker is
// the invariant: a value never crosses scales without an explicit
// conversion through To. All operations return new values.
type Time[S Scale] struct {
	v float64
}

// JulianDate is the hub scale's concrete time-point type.
type JulianDate = Time[JD]

// New wraps a raw native value on scale S.
func New[S Scale](value float64) Time[S] {
	return Time[S]{v: value}
}

// FromCivil creates a time point on scale S from a civil UTC breakdown.
func FromCivil[S Scale](c Civil) (Time[S], error) {
	v, err := descriptors[idOf[S]()].fromCivil(c)
	if err != nil {
		return Time[S]{}, err
	}
	return Time[S]{v: v}, nil
}

// To converts a time point to another scale through the conversion graph.
func To[To Scale, From Scale](t Time[From]) Time[To] {
	return Time[To]{v: convertValue(idOf[From](), idOf[To](), t.v)}
}

// Value returns the raw native value.
func (t Time[S]) Value() float64 { return t.v }

// ToCivil converts the time point to a civil UTC breakdown.
func (t Time[S]) ToCivil() (Civil, error) {
	return descriptors[idOf[S]()].toCivil(t.v)
}

// AddDays returns the time point advanced by delta days.
func (t Time[S]) AddDays(delta float64) Time[S] {
	return Time[S]{v: descriptors[idOf[S]()].addDays(t.v, delta)}
}

// Add returns the time point advanced by a typed duration.
func (t Time[S]) Add(q quantity.Quantity) (Time[S], error) {
	v, err := descriptors[idOf[S]()].addQuantity(t.v, q)
	if err != nil {
		return Time[S]{}, err
	}
	return Time[S]{v: v}, nil
}

// Sub returns the time point retreated by a typed duration.
func (t Time[S]) Sub(q quantity.Quantity) (Time[S], error) {
	return t.Add(q.Neg())
}

// Diff returns t minus other as a day quantity; convert with
// quantity.Quantity.To.
func (t Time[S]) Diff(other Time[S]) quantity.Quantity {
	return descriptors[idOf[S]()].differenceQuantity(t.v, other.v)
}

// DiffDays returns t minus other as a raw day count, the untyped
// counterpart of AddDays.
func (t Time[S]) DiffDays(other Time[S]) float64 {
	return descriptors[idOf[S]()].difference(t.v, other.v)
}

// Equal reports whether two points on the same scale coincide. Equality
// and ordering are plain numeric comparisons on the raw value; the type
// parameter makes cross-scale comparison a compile error.
func (t Time[S]) Equal(other Time[S]) bool { return t.v == other.v }

// Before reports whether t precedes other.
func (t Time[S]) Before(other Time[S]) bool { return t.v < other.v }

// After reports whether t follows other.
func (t Time[S]) After(other Time[S]) bool { return t.v > other.v }

// Compare returns -1, 0, or +1 ordering t against other.
func (t Time[S]) Compare(other Time[S]) int {
	switch {
	case t.v < other.v:
		return -1
	case t.v > other.v:
		return 1
	default:
		return 0
	}
}

// String renders the raw value.
func (t Time[S]) String() string {
	return strconv.FormatFloat(t.v, 'g', -1, 64)
}

// J2000 returns the J2000.0 epoch, JD 2451545.0 exactly.
func J2000() Time[JD] {
	return Time[JD]{v: engine.JDJ2000()}
}

// JulianCenturiesSince returns the Julian centuries elapsed since the
// J2000.0 epoch. The parameter type restricts the capability to the
// Julian Date scale.
func JulianCenturiesSince(t Time[JD]) quantity.Quantity {
	return quantity.JulianCenturies(engine.JDJulianCenturies(t.v))
}

// DeltaT returns the modeled TT - UT1 offset in seconds at t. The
// parameter type restricts the capability to the Universal Time scale.
func DeltaT(t Time[UT1]) quantity.Quantity {
	jd := convertValue(scaleUT1, scaleJD, t.v)
	return quantity.Seconds(engine.DeltaTSeconds(jd))
}
