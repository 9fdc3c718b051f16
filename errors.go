package tempo

import (
	"errors"
	"fmt"

	"github.com/halcyard/tempo/internal/engine"
)

// Sentinel errors forming the failure taxonomy. Every boundary failure
// matches both its specific sentinel and the generic root ErrTime under
// errors.Is.
var (
	// ErrTime is the root of the taxonomy; every tempo error matches it.
	ErrTime = errors.New("time system failure")

	// ErrNullPointer reports that the engine could not produce a required output.
	ErrNullPointer = errors.New("null output pointer")

	// ErrUTCConversion reports invalid civil fields or a date outside the
	// representable range.
	ErrUTCConversion = errors.New("utc conversion failed")

	// ErrInvalidPeriod reports a period whose start is later than its end.
	ErrInvalidPeriod = errors.New("invalid period (start > end)")

	// ErrNoIntersection reports two disjoint periods.
	ErrNoIntersection = errors.New("periods do not intersect")
)

// Error is a failure translated from an engine status code. It carries
// the label of the failing operation and the raw code, so unrecognized
// statuses are surfaced rather than swallowed.
type Error struct {
	Op   string // operation label, e.g. "JD.FromCivil"
	Code int32  // raw engine status
	Kind error  // matching sentinel, or nil when the code is unrecognized
}

// Error renders "<op> failed: <kind>"; unrecognized codes embed the raw
// numeric status.
func (e *Error) Error() string {
	if e.Kind != nil {
		return fmt.Sprintf("%s failed: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s failed: unrecognized engine status (%d)", e.Op, e.Code)
}

// Is matches the generic root and, when recognized, the specific sentinel.
func (e *Error) Is(target error) bool {
	return target == ErrTime || (e.Kind != nil && target == e.Kind)
}

// checkStatus translates an engine status into a typed error. A nil
// return means the call succeeded.
func checkStatus(st engine.Status, op string) error {
	if st == engine.StatusOK {
		return nil
	}
	var kind error
	switch st {
	case engine.StatusNullPointer:
		kind = ErrNullPointer
	case engine.StatusUTCConversionFailed:
		kind = ErrUTCConversion
	case engine.StatusInvalidPeriod:
		kind = ErrInvalidPeriod
	case engine.StatusNoIntersection:
		kind = ErrNoIntersection
	}
	return &Error{Op: op, Code: int32(st), Kind: kind}
}
