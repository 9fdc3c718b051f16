// Package tempo provides type-safe points in time across a dozen
// astronomical and civil time scales, and inclusive periods over them.
//
// A Time[S] pairs one raw value with a zero-size scale marker; the
// marker selects the per-scale descriptor (civil conversion, day and
// unit-aware arithmetic) and the conversion-graph edges into and out of
// the scale. Cross-scale conversion routes through a direct edge when
// one exists and otherwise through the Julian Date hub:
//
//	jd, err := tempo.FromCivil[tempo.JD](tempo.Civil{Year: 2026, Month: 7, Day: 15, Hour: 22})
//	mjd := tempo.To[tempo.MJD](jd)
//	later, err := mjd.Add(quantity.Hours(12))
//
// Periods store their bounds canonically in MJD and project them back on
// access:
//
//	p, err := tempo.NewPeriod(tempo.New[tempo.MJD](60200), tempo.New[tempo.MJD](60201))
//	hours := p.Duration().To(quantity.Hour)
//
// All values are immutable; the descriptor table and conversion graph
// are built once before main runs and are safe for concurrent reads.
// Calendar and ephemeris math lives behind the status-code boundary in
// internal/engine; every status is translated into the typed errors in
// this package and never swallowed.
package tempo
