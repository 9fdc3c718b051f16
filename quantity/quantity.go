// Package quantity provides typed duration values for time arithmetic.
// A Quantity pairs a magnitude with a closed set of time units; it is
// the minimal unit machinery the tempo library needs, not a general
// dimensional-analysis system.
package quantity

import (
	"fmt"
	"strconv"
)

// Unit identifies a duration unit. The set is closed: constructing a
// Quantity with a Unit outside the exported constants is a programmer
// error and is rejected downstream.
type Unit uint8

const (
	Day Unit = iota
	Hour
	Minute
	Second
	JulianCentury
)

// symbols used by String, indexed by Unit.
var symbols = [...]string{"d", "h", "min", "s", "jcy"}

// daysPer holds the length of one unit in days.
var daysPer = [...]float64{1, 1.0 / 24, 1.0 / 1440, 1.0 / 86400, 36525}

// String returns the unit's symbol.
func (u Unit) String() string {
	if int(u) < len(symbols) {
		return symbols[u]
	}
	return fmt.Sprintf("unit(%d)", uint8(u))
}

// Quantity is an immutable magnitude-with-unit duration value.
type Quantity struct {
	value float64
	unit  Unit
}

// New returns a quantity of v in unit u.
func New(v float64, u Unit) Quantity { return Quantity{value: v, unit: u} }

// Days returns a day quantity.
func Days(v float64) Quantity { return New(v, Day) }

// Hours returns an hour quantity.
func Hours(v float64) Quantity { return New(v, Hour) }

// Minutes returns a minute quantity.
func Minutes(v float64) Quantity { return New(v, Minute) }

// Seconds returns a second quantity.
func Seconds(v float64) Quantity { return New(v, Second) }

// JulianCenturies returns a Julian-century quantity (36525 days each).
func JulianCenturies(v float64) Quantity { return New(v, JulianCentury) }

// Value returns the magnitude in the quantity's own unit.
func (q Quantity) Value() float64 { return q.value }

// Unit returns the quantity's unit.
func (q Quantity) Unit() Unit { return q.unit }

// In returns the magnitude converted to unit u. It panics if either
// unit is outside the exported set.
func (q Quantity) In(u Unit) float64 {
	if int(q.unit) >= len(daysPer) || int(u) >= len(daysPer) {
		panic("quantity: unknown unit")
	}
	return q.value * daysPer[q.unit] / daysPer[u]
}

// To returns the quantity converted to unit u.
func (q Quantity) To(u Unit) Quantity { return New(q.In(u), u) }

// Neg returns the quantity with its magnitude negated.
func (q Quantity) Neg() Quantity { return New(-q.value, q.unit) }

// String renders the quantity as "<value> <symbol>", e.g. "1.5 d".
func (q Quantity) String() string {
	return strconv.FormatFloat(q.value, 'g', -1, 64) + " " + q.unit.String()
}
