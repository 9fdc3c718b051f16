package tempo

import (
	"fmt"

	"github.com/halcyard/tempo/internal/engine"
)

// Civil is a UTC civil-time breakdown. It is an immutable value type
// whose field order and widths mirror the engine's wire struct exactly.
type Civil struct {
	Year       int32  // astronomical year numbering
	Month      uint8  // [1, 12]
	Day        uint8  // [1, 31], validated against month and year
	Hour       uint8  // [0, 23]
	Minute     uint8  // [0, 59]
	Second     uint8  // [0, 60], leap-second aware
	Nanosecond uint32 // [0, 999999999]
}

// CivilJ2000 returns the conventional default breakdown, J2000 noon
// (2000-01-01 12:00:00 UTC).
func CivilJ2000() Civil {
	return Civil{Year: 2000, Month: 1, Day: 1, Hour: 12}
}

// String renders "YYYY-MM-DD HH:MM:SS", appending ".nnnnnnnnn" only when
// the nanosecond field is nonzero.
func (c Civil) String() string {
	s := fmt.Sprintf("%d-%02d-%02d %02d:%02d:%02d",
		c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second)
	if c.Nanosecond != 0 {
		s += fmt.Sprintf(".%09d", c.Nanosecond)
	}
	return s
}

func (c Civil) wire() engine.Civil {
	return engine.Civil{
		Year:       c.Year,
		Month:      c.Month,
		Day:        c.Day,
		Hour:       c.Hour,
		Minute:     c.Minute,
		Second:     c.Second,
		Nanosecond: c.Nanosecond,
	}
}

func civilFromWire(w engine.Civil) Civil {
	return Civil{
		Year:       w.Year,
		Month:      w.Month,
		Day:        w.Day,
		Hour:       w.Hour,
		Minute:     w.Minute,
		Second:     w.Second,
		Nanosecond: w.Nanosecond,
	}
}
