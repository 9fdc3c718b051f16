// Package engine implements the time-computation core that the tempo
// library calls across a narrow, status-code boundary. Every fallible
// entry point returns a Status and writes its result through an out
// pointer; a nil out pointer yields StatusNullPointer. The boundary is
// deliberately C-shaped so the translating layer above it owns all
// error typing.
package engine

import "math"

// Status is the fixed vocabulary returned by every fallible engine call.
type Status int32

const (
	StatusOK Status = iota
	StatusNullPointer
	StatusUTCConversionFailed
	StatusInvalidPeriod
	StatusNoIntersection

	// StatusBadUnit is newer than the translating layer's vocabulary and
	// is expected to surface there as a generic failure carrying the raw
	// code.
	StatusBadUnit
)

// String returns a short description of the status code.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNullPointer:
		return "null output pointer"
	case StatusUTCConversionFailed:
		return "utc conversion failed"
	case StatusInvalidPeriod:
		return "invalid period"
	case StatusNoIntersection:
		return "no intersection"
	case StatusBadUnit:
		return "unknown unit"
	default:
		return "unknown status"
	}
}

// Civil is the wire form of a UTC civil-time breakdown. Field order and
// widths are fixed: callers on both sides of the boundary rely on this
// exact layout.
type Civil struct {
	Year       int32  // astronomical year numbering
	Month      uint8  // [1, 12]
	Day        uint8  // [1, 31], validated against month and year
	Hour       uint8  // [0, 23]
	Minute     uint8  // [0, 59]
	Second     uint8  // [0, 60], leap-second aware
	Nanosecond uint32 // [0, 999999999]
}

const (
	// J2000 is the Julian Date of the J2000.0 epoch.
	J2000 = 2451545.0

	// MJDOffset converts between Julian Date and Modified Julian Date.
	MJDOffset = 2400000.5

	secondsPerDay = 86400.0
	nsPerDay      = int64(86400) * 1e9
)

// daysInMonth returns the number of days in the given month, accounting
// for Gregorian leap years.
func daysInMonth(year int32, month uint8) uint8 {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// validCivil reports whether every field of c is in range. A second value
// of 60 is accepted only in the 23:59:60 leap-second slot. Years before
// -4712 fall outside the representable Julian Date range.
func validCivil(c Civil) bool {
	if c.Year < -4712 {
		return false
	}
	if c.Month < 1 || c.Month > 12 {
		return false
	}
	if c.Day < 1 || c.Day > daysInMonth(c.Year, c.Month) {
		return false
	}
	if c.Hour > 23 || c.Minute > 59 || c.Second > 60 {
		return false
	}
	if c.Second == 60 && (c.Hour != 23 || c.Minute != 59) {
		return false
	}
	return c.Nanosecond <= 999999999
}

// JDFromCivil converts a civil UTC breakdown to a Julian Date.
func JDFromCivil(c Civil, out *float64) Status {
	if out == nil {
		return StatusNullPointer
	}
	if !validCivil(c) {
		return StatusUTCConversionFailed
	}

	// Fliegel & Van Flandern day number for the Gregorian calendar.
	// All intermediate terms are positive for years >= -4712, so Go's
	// truncating integer division behaves as floor division here.
	y := int64(c.Year)
	m := int64(c.Month)
	d := int64(c.Day)
	a := (14 - m) / 12
	y2 := y + 4800 - a
	m2 := m + 12*a - 3
	jdn := d + (153*m2+2)/5 + 365*y2 + y2/4 - y2/100 + y2/400 - 32045

	frac := (float64(c.Hour)*3600 +
		float64(c.Minute)*60 +
		float64(c.Second) +
		float64(c.Nanosecond)*1e-9) / secondsPerDay

	*out = float64(jdn) - 0.5 + frac
	return StatusOK
}

// JDToCivil converts a Julian Date to a civil UTC breakdown.
//
// A float64 Julian Date resolves roughly 40 microseconds, so the
// sub-second part is quantized to one millisecond; whole-second inputs
// therefore round-trip exactly.
func JDToCivil(jd float64, out *Civil) Status {
	if out == nil {
		return StatusNullPointer
	}
	if math.IsNaN(jd) || math.IsInf(jd, 0) || jd < 0 {
		return StatusUTCConversionFailed
	}

	z := math.Floor(jd + 0.5)
	frac := jd + 0.5 - z

	const msPerDay = 86400 * 1000
	ms := int64(math.Round(frac * msPerDay))
	if ms >= msPerDay {
		z++
		ms = 0
	}

	// Inverse Fliegel & Van Flandern (Gregorian).
	ja := int64(z) + 32044
	b := (4*ja + 3) / 146097
	ca := ja - 146097*b/4
	da := (4*ca + 3) / 1461
	e := ca - 1461*da/4
	ma := (5*e + 2) / 153

	day := e - (153*ma+2)/5 + 1
	month := ma + 3 - 12*(ma/10)
	year := 100*b + da - 4800 + ma/10

	secs := ms / 1000
	out.Year = int32(year)
	out.Month = uint8(month)
	out.Day = uint8(day)
	out.Hour = uint8(secs / 3600)
	out.Minute = uint8(secs / 60 % 60)
	out.Second = uint8(secs % 60)
	out.Nanosecond = uint32(ms%1000) * 1e6
	return StatusOK
}

// MJDFromCivil converts a civil UTC breakdown to a Modified Julian Date.
func MJDFromCivil(c Civil, out *float64) Status {
	if out == nil {
		return StatusNullPointer
	}
	var jd float64
	if st := JDFromCivil(c, &jd); st != StatusOK {
		return st
	}
	*out = JDToMJD(jd)
	return StatusOK
}

// MJDToCivil converts a Modified Julian Date to a civil UTC breakdown.
func MJDToCivil(mjd float64, out *Civil) Status {
	return JDToCivil(MJDToJD(mjd), out)
}

// JDAddDays advances a Julian Date by delta days.
func JDAddDays(jd, delta float64) float64 { return jd + delta }

// JDDifference returns a minus b in days.
func JDDifference(a, b float64) float64 { return a - b }

// MJDAddDays advances a Modified Julian Date by delta days.
func MJDAddDays(mjd, delta float64) float64 { return mjd + delta }

// MJDDifference returns a minus b in days.
func MJDDifference(a, b float64) float64 { return a - b }

// JDJ2000 returns the J2000.0 epoch as a Julian Date.
func JDJ2000() float64 { return J2000 }

// JDJulianCenturies returns the number of Julian centuries elapsed
// between the J2000.0 epoch and jd.
func JDJulianCenturies(jd float64) float64 {
	return (jd - J2000) / daysPerCentury
}
