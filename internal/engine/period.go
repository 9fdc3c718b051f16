package engine

import "math"

// PeriodMJD is the wire form of an inclusive [start, end] interval,
// expressed in Modified Julian Date days.
type PeriodMJD struct {
	StartMJD float64
	EndMJD   float64
}

// PeriodNew validates and constructs a period. Start must not be later
// than end; both bounds must be finite.
func PeriodNew(startMJD, endMJD float64, out *PeriodMJD) Status {
	if out == nil {
		return StatusNullPointer
	}
	if math.IsNaN(startMJD) || math.IsNaN(endMJD) ||
		math.IsInf(startMJD, 0) || math.IsInf(endMJD, 0) {
		return StatusInvalidPeriod
	}
	if startMJD > endMJD {
		return StatusInvalidPeriod
	}
	*out = PeriodMJD{StartMJD: startMJD, EndMJD: endMJD}
	return StatusOK
}

// PeriodDurationDays returns the length of the period in days.
func PeriodDurationDays(p PeriodMJD) float64 {
	return p.EndMJD - p.StartMJD
}

// PeriodIntersection computes the overlap of two periods. Bounds are
// inclusive: periods that share exactly one instant intersect in a
// zero-length period.
func PeriodIntersection(a, b PeriodMJD, out *PeriodMJD) Status {
	if out == nil {
		return StatusNullPointer
	}
	lo := math.Max(a.StartMJD, b.StartMJD)
	hi := math.Min(a.EndMJD, b.EndMJD)
	if lo > hi {
		return StatusNoIntersection
	}
	*out = PeriodMJD{StartMJD: lo, EndMJD: hi}
	return StatusOK
}
