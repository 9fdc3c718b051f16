package tempo

import (
	"github.com/halcyard/tempo/internal/engine"
	"github.com/halcyard/tempo/quantity"
)

// scaleID is the runtime discriminant behind each marker type. It only
// indexes the descriptor table and the conversion graph.
type scaleID uint8

const (
	scaleJD scaleID = iota
	scaleMJD
	scaleUTC
	scaleTT
	scaleTAI
	scaleTDB
	scaleTCG
	scaleTCB
	scaleGPS
	scaleUT1
	scaleJDE
	scaleUnix

	scaleCount
)

// Scale is the sealed constraint satisfied by the marker types below.
// The unexported method closes the set: no type outside this package can
// act as a time scale.
type Scale interface {
	id() scaleID
}

// The markers carry no state; they exist purely to parameterize Time[S]
// and select descriptor-table and conversion-graph entries.
type (
	// JD marks the Julian Date scale, the hub for indirect conversions.
	JD struct{}
	// MJD marks the Modified Julian Date scale (JD - 2400000.5).
	MJD struct{}
	// UTC marks Coordinated Universal Time, stored numerically as MJD.
	UTC struct{}
	// TT marks Terrestrial Time.
	TT struct{}
	// TAI marks International Atomic Time.
	TAI struct{}
	// TDB marks Barycentric Dynamical Time.
	TDB struct{}
	// TCG marks Geocentric Coordinate Time.
	TCG struct{}
	// TCB marks Barycentric Coordinate Time.
	TCB struct{}
	// GPS marks GPS Time.
	GPS struct{}
	// UT1 marks Universal Time.
	UT1 struct{}
	// JDE marks Julian Ephemeris Date, the Julian day count on the TT timebase.
	JDE struct{}
	// Unix marks Unix time, in seconds since 1970-01-01T00:00:00 UTC.
	Unix struct{}
)

func (JD) id() scaleID   { return scaleJD }
func (MJD) id() scaleID  { return scaleMJD }
func (UTC) id() scaleID  { return scaleUTC }
func (TT) id() scaleID   { return scaleTT }
func (TAI) id() scaleID  { return scaleTAI }
func (TDB) id() scaleID  { return scaleTDB }
func (TCG) id() scaleID  { return scaleTCG }
func (TCB) id() scaleID  { return scaleTCB }
func (GPS) id() scaleID  { return scaleGPS }
func (UT1) id() scaleID  { return scaleUT1 }
func (JDE) id() scaleID  { return scaleJDE }
func (Unix) id() scaleID { return scaleUnix }

// idOf resolves a marker type to its runtime discriminant.
func idOf[S Scale]() scaleID {
	var s S
	return s.id()
}

// descriptor bundles the per-scale behavior Time[S] dispatches through:
// civil conversion, day arithmetic, and the unit-aware variants.
type descriptor struct {
	label              string
	fromCivil          func(Civil) (float64, error)
	toCivil            func(float64) (Civil, error)
	addDays            func(v, delta float64) float64
	difference         func(a, b float64) float64
	addQuantity        func(v float64, q quantity.Quantity) (float64, error)
	differenceQuantity func(a, b float64) quantity.Quantity
}

// engineUnit translates a quantity unit to the engine's identifier.
// Units outside the exported set pass through unchanged so the engine
// rejects them with its own status.
func engineUnit(u quantity.Unit) engine.UnitID {
	switch u {
	case quantity.Day:
		return engine.UnitDay
	case quantity.Hour:
		return engine.UnitHour
	case quantity.Minute:
		return engine.UnitMinute
	case quantity.Second:
		return engine.UnitSecond
	case quantity.JulianCentury:
		return engine.UnitJulianCentury
	default:
		return engine.UnitID(u)
	}
}

func jdFromCivil(c Civil, op string) (float64, error) {
	var jd float64
	if err := checkStatus(engine.JDFromCivil(c.wire(), &jd), op); err != nil {
		return 0, err
	}
	return jd, nil
}

func jdToCivil(jd float64, op string) (Civil, error) {
	var w engine.Civil
	if err := checkStatus(engine.JDToCivil(jd, &w), op); err != nil {
		return Civil{}, err
	}
	return civilFromWire(w), nil
}

// jdBacked derives a full descriptor for a scale that is a bijection
// with Julian Date, delegating civil conversion and all arithmetic
// through JD. Every scale built this way shares JD's day length and
// epoch anchoring by construction.
func jdBacked(label string, toJD, fromJD func(float64) float64) descriptor {
	return descriptor{
		label: label,
		fromCivil: func(c Civil) (float64, error) {
			jd, err := jdFromCivil(c, label+".FromCivil")
			if err != nil {
				return 0, err
			}
			return fromJD(jd), nil
		},
		toCivil: func(v float64) (Civil, error) {
			return jdToCivil(toJD(v), label+".ToCivil")
		},
		addDays: func(v, delta float64) float64 {
			return fromJD(engine.JDAddDays(toJD(v), delta))
		},
		difference: func(a, b float64) float64 {
			return engine.JDDifference(toJD(a), toJD(b))
		},
		addQuantity: func(v float64, q quantity.Quantity) (float64, error) {
			eq := engine.Quantity{Value: q.Value(), Unit: engineUnit(q.Unit())}
			var out float64
			if err := checkStatus(engine.JDAddQuantity(toJD(v), eq, &out), label+".Add"); err != nil {
				return 0, err
			}
			return fromJD(out), nil
		},
		differenceQuantity: func(a, b float64) quantity.Quantity {
			q := engine.JDDifferenceQuantity(toJD(a), toJD(b))
			return quantity.Days(q.Value)
		},
	}
}

// descriptors is the immutable dispatch table, indexed by scaleID and
// built once before main runs.
var descriptors = buildDescriptors()

func buildDescriptors() [scaleCount]descriptor {
	var t [scaleCount]descriptor

	t[scaleJD] = descriptor{
		label: "JD",
		fromCivil: func(c Civil) (float64, error) {
			return jdFromCivil(c, "JD.FromCivil")
		},
		toCivil: func(v float64) (Civil, error) {
			return jdToCivil(v, "JD.ToCivil")
		},
		addDays:    engine.JDAddDays,
		difference: engine.JDDifference,
		addQuantity: func(v float64, q quantity.Quantity) (float64, error) {
			eq := engine.Quantity{Value: q.Value(), Unit: engineUnit(q.Unit())}
			var out float64
			if err := checkStatus(engine.JDAddQuantity(v, eq, &out), "JD.Add"); err != nil {
				return 0, err
			}
			return out, nil
		},
		differenceQuantity: func(a, b float64) quantity.Quantity {
			return quantity.Days(engine.JDDifferenceQuantity(a, b).Value)
		},
	}

	t[scaleMJD] = descriptor{
		label: "MJD",
		fromCivil: func(c Civil) (float64, error) {
			var mjd float64
			if err := checkStatus(engine.MJDFromCivil(c.wire(), &mjd), "MJD.FromCivil"); err != nil {
				return 0, err
			}
			return mjd, nil
		},
		toCivil: func(v float64) (Civil, error) {
			var w engine.Civil
			if err := checkStatus(engine.MJDToCivil(v, &w), "MJD.ToCivil"); err != nil {
				return Civil{}, err
			}
			return civilFromWire(w), nil
		},
		addDays:    engine.MJDAddDays,
		difference: engine.MJDDifference,
		addQuantity: func(v float64, q quantity.Quantity) (float64, error) {
			eq := engine.Quantity{Value: q.Value(), Unit: engineUnit(q.Unit())}
			var out float64
			if err := checkStatus(engine.MJDAddQuantity(v, eq, &out), "MJD.Add"); err != nil {
				return 0, err
			}
			return out, nil
		},
		differenceQuantity: func(a, b float64) quantity.Quantity {
			return quantity.Days(engine.MJDDifferenceQuantity(a, b).Value)
		},
	}

	// UTC shares MJD's representation and arithmetic; only the label differs.
	t[scaleUTC] = t[scaleMJD]
	t[scaleUTC].label = "UTC"

	t[scaleTT] = jdBacked("TT", engine.TTToJD, engine.JDToTT)
	t[scaleTAI] = jdBacked("TAI", engine.TAIToJD, engine.JDToTAI)
	t[scaleTDB] = jdBacked("TDB", engine.TDBToJD, engine.JDToTDB)
	t[scaleTCG] = jdBacked("TCG", engine.TCGToJD, engine.JDToTCG)
	t[scaleTCB] = jdBacked("TCB", engine.TCBToJD, engine.JDToTCB)
	t[scaleGPS] = jdBacked("GPS", engine.GPSToJD, engine.JDToGPS)
	t[scaleUT1] = jdBacked("UT1", engine.UT1ToJD, engine.JDToUT1)
	t[scaleJDE] = jdBacked("JDE", engine.JDEToJD, engine.JDToJDE)
	t[scaleUnix] = jdBacked("Unix", engine.UnixToJD, engine.JDToUnix)

	return t
}

// Label returns the human-readable label of scale S, e.g. "MJD".
func Label[S Scale]() string {
	return descriptors[idOf[S]()].label
}
