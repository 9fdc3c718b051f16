package engine

// UnitID identifies a duration unit across the engine boundary.
type UnitID uint8

const (
	UnitDay UnitID = iota
	UnitHour
	UnitMinute
	UnitSecond
	UnitJulianCentury
)

const daysPerCentury = 36525.0

// Quantity is the wire form of a typed duration: a magnitude paired with
// a unit identifier.
type Quantity struct {
	Value float64
	Unit  UnitID
}

// unitDays returns the length of one unit in days.
func unitDays(u UnitID) (float64, bool) {
	switch u {
	case UnitDay:
		return 1, true
	case UnitHour:
		return 1.0 / 24, true
	case UnitMinute:
		return 1.0 / 1440, true
	case UnitSecond:
		return 1.0 / secondsPerDay, true
	case UnitJulianCentury:
		return daysPerCentury, true
	default:
		return 0, false
	}
}

// QuantityToDays converts a typed quantity to days.
func QuantityToDays(q Quantity, out *float64) Status {
	if out == nil {
		return StatusNullPointer
	}
	f, ok := unitDays(q.Unit)
	if !ok {
		return StatusBadUnit
	}
	*out = q.Value * f
	return StatusOK
}

// ConvertQuantity converts q to the requested unit.
func ConvertQuantity(q Quantity, to UnitID, out *Quantity) Status {
	if out == nil {
		return StatusNullPointer
	}
	var days float64
	if st := QuantityToDays(q, &days); st != StatusOK {
		return st
	}
	f, ok := unitDays(to)
	if !ok {
		return StatusBadUnit
	}
	*out = Quantity{Value: days / f, Unit: to}
	return StatusOK
}

// JDAddQuantity advances a Julian Date by a typed duration.
func JDAddQuantity(jd float64, q Quantity, out *float64) Status {
	if out == nil {
		return StatusNullPointer
	}
	var days float64
	if st := QuantityToDays(q, &days); st != StatusOK {
		return st
	}
	*out = jd + days
	return StatusOK
}

// JDDifferenceQuantity returns a minus b as a day-unit quantity.
func JDDifferenceQuantity(a, b float64) Quantity {
	return Quantity{Value: a - b, Unit: UnitDay}
}

// MJDAddQuantity advances a Modified Julian Date by a typed duration.
func MJDAddQuantity(mjd float64, q Quantity, out *float64) Status {
	return JDAddQuantity(mjd, q, out)
}

// MJDDifferenceQuantity returns a minus b as a day-unit quantity.
func MJDDifferenceQuantity(a, b float64) Quantity {
	return JDDifferenceQuantity(a, b)
}
