package tui

import "github.com/halcyard/tempo"

// scaleRow adapts one marker type for the dashboard table. All rows pivot
// through MJD so the active scale can feed every other row.
type scaleRow struct {
	name    string
	toMJD   func(float64) float64
	fromMJD func(float64) float64
}

func row[S tempo.Scale]() scaleRow {
	return scaleRow{
		name: tempo.Label[S](),
		toMJD: func(v float64) float64 {
			return tempo.To[tempo.MJD](tempo.New[S](v)).Value()
		},
		fromMJD: func(v float64) float64 {
			return tempo.To[S](tempo.New[tempo.MJD](v)).Value()
		},
	}
}

// scaleRows lists every scale in display order.
var scaleRows = []scaleRow{
	row[tempo.JD](),
	row[tempo.MJD](),
	row[tempo.UTC](),
	row[tempo.TT](),
	row[tempo.TAI](),
	row[tempo.TDB](),
	row[tempo.TCG](),
	row[tempo.TCB](),
	row[tempo.GPS](),
	row[tempo.UT1](),
	row[tempo.JDE](),
	row[tempo.Unix](),
}
