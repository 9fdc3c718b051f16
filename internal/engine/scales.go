package engine

import "math"

// Bijections between Julian Date (UTC timebase) and the natively-offset
// day counts of the other supported scales. Each pair is pure and has no
// failure mode; inverse pairs are exact except where noted.
//
// Leap seconds are modeled as a fixed cumulative offset (37 s, the value
// in force since 2017) rather than a full table, so these transforms are
// smooth bijections by construction.

const (
	// Offsets from UTC, in seconds.
	taiMinusUTC = 37.0
	ttMinusUTC  = taiMinusUTC + 32.184
	gpsMinusUTC = taiMinusUTC - 19.0

	// IAU linear rate transforms for the coordinate time scales.
	rateLG = 6.969290134e-10
	rateLB = 1.550519768e-8
	// T0 epoch shared by the TCG and TCB transforms, 1977-01-01T00:00:32.184 TT.
	coordT0 = 2443144.5003725
	// TDB0 constant term of the TDB <-> TCB relation, in seconds.
	tdb0 = -6.55e-5

	// UnixEpochJD is the Julian Date of 1970-01-01T00:00:00 UTC.
	UnixEpochJD = 2440587.5
)

// JDToMJD converts a Julian Date to a Modified Julian Date.
func JDToMJD(jd float64) float64 { return jd - MJDOffset }

// MJDToJD converts a Modified Julian Date to a Julian Date.
func MJDToJD(mjd float64) float64 { return mjd + MJDOffset }

// JDToTT converts a Julian Date to a Terrestrial Time day count.
func JDToTT(jd float64) float64 { return jd + ttMinusUTC/secondsPerDay }

// TTToJD converts a Terrestrial Time day count to a Julian Date.
func TTToJD(tt float64) float64 { return tt - ttMinusUTC/secondsPerDay }

// JDToTAI converts a Julian Date to an International Atomic Time day count.
func JDToTAI(jd float64) float64 { return jd + taiMinusUTC/secondsPerDay }

// TAIToJD converts an International Atomic Time day count to a Julian Date.
func TAIToJD(tai float64) float64 { return tai - taiMinusUTC/secondsPerDay }

// JDToGPS converts a Julian Date to a GPS Time day count.
func JDToGPS(jd float64) float64 { return jd + gpsMinusUTC/secondsPerDay }

// GPSToJD converts a GPS Time day count to a Julian Date.
func GPSToJD(gps float64) float64 { return gps - gpsMinusUTC/secondsPerDay }

// tdbPeriodic returns the dominant periodic term of TDB-TT in seconds,
// with the mean anomaly of the Sun evaluated at t (a TT or TDB day
// count; the two differ by under 2 ms, far below the term's own
// truncation error).
func tdbPeriodic(t float64) float64 {
	g := (357.53 + 0.9856003*(t-J2000)) * math.Pi / 180
	return 0.001657 * math.Sin(g)
}

// JDToTDB converts a Julian Date to a Barycentric Dynamical Time day count.
func JDToTDB(jd float64) float64 {
	tt := JDToTT(jd)
	return tt + tdbPeriodic(tt)/secondsPerDay
}

// TDBToJD converts a Barycentric Dynamical Time day count to a Julian
// Date. The periodic term is evaluated at the TDB argument, leaving a
// sub-nanosecond inversion error.
func TDBToJD(tdb float64) float64 {
	tt := tdb - tdbPeriodic(tdb)/secondsPerDay
	return TTToJD(tt)
}

// JDToTCG converts a Julian Date to a Geocentric Coordinate Time day
// count using the exact inverse of TT = TCG - L_G*(TCG - T0).
func JDToTCG(jd float64) float64 {
	tt := JDToTT(jd)
	return (tt - rateLG*coordT0) / (1 - rateLG)
}

// TCGToJD converts a Geocentric Coordinate Time day count to a Julian Date.
func TCGToJD(tcg float64) float64 {
	tt := tcg - rateLG*(tcg-coordT0)
	return TTToJD(tt)
}

// JDToTCB converts a Julian Date to a Barycentric Coordinate Time day
// count using the exact inverse of TDB = TCB - L_B*(TCB - T0) + TDB0.
func JDToTCB(jd float64) float64 {
	tdb := JDToTDB(jd)
	return (tdb - tdb0/secondsPerDay - rateLB*coordT0) / (1 - rateLB)
}

// TCBToJD converts a Barycentric Coordinate Time day count to a Julian Date.
func TCBToJD(tcb float64) float64 {
	tdb := tcb - rateLB*(tcb-coordT0) + tdb0/secondsPerDay
	return TDBToJD(tdb)
}

// DeltaTSeconds returns the modeled Delta-T = TT - UT1 in seconds at jd,
// using the Espenak-Meeus polynomial fitted to 2005-2050.
func DeltaTSeconds(jd float64) float64 {
	t := (jd - J2000) / 365.25
	return 62.92 + 0.32217*t + 0.005589*t*t
}

// JDToUT1 converts a Julian Date to a Universal Time (UT1) day count.
func JDToUT1(jd float64) float64 {
	return JDToTT(jd) - DeltaTSeconds(jd)/secondsPerDay
}

// UT1ToJD converts a Universal Time (UT1) day count to a Julian Date.
// Delta-T is evaluated at the UT1 argument; it changes by well under a
// microsecond per day, so the inversion error is negligible.
func UT1ToJD(ut1 float64) float64 {
	tt := ut1 + DeltaTSeconds(ut1)/secondsPerDay
	return TTToJD(tt)
}

// JDToJDE converts a Julian Date to a Julian Ephemeris Date, the Julian
// day count on the TT timebase.
func JDToJDE(jd float64) float64 { return JDToTT(jd) }

// JDEToJD converts a Julian Ephemeris Date to a Julian Date.
func JDEToJD(jde float64) float64 { return TTToJD(jde) }

// JDToUnix converts a Julian Date to Unix seconds.
func JDToUnix(jd float64) float64 { return (jd - UnixEpochJD) * secondsPerDay }

// UnixToJD converts Unix seconds to a Julian Date.
func UnixToJD(u float64) float64 { return u/secondsPerDay + UnixEpochJD }
