package tempo

import (
	"fmt"

	"github.com/halcyard/tempo/internal/engine"
)

// The conversion graph routes raw values between scales. Identity
// conversions never touch the table; pairs without a direct edge resolve
// as exactly two lookups through the Julian Date hub, so routing always
// terminates. Round trips through the graph are exact only to floating
// precision (~1e-9 days).

type edge struct {
	from, to scaleID
}

var conversions = buildConversions()

func buildConversions() map[edge]func(float64) float64 {
	identity := func(v float64) float64 { return v }

	g := map[edge]func(float64) float64{
		// Hub spokes: every scale reaches JD directly in both directions.
		{scaleJD, scaleMJD}: engine.JDToMJD,
		{scaleMJD, scaleJD}: engine.MJDToJD,

		// UTC is stored as MJD, so its JD edges reuse the MJD transforms
		// and its MJD edges are the identity.
		{scaleJD, scaleUTC}:  engine.JDToMJD,
		{scaleUTC, scaleJD}:  engine.MJDToJD,
		{scaleMJD, scaleUTC}: identity,
		{scaleUTC, scaleMJD}: identity,

		{scaleJD, scaleTT}:   engine.JDToTT,
		{scaleTT, scaleJD}:   engine.TTToJD,
		{scaleJD, scaleTAI}:  engine.JDToTAI,
		{scaleTAI, scaleJD}:  engine.TAIToJD,
		{scaleJD, scaleTDB}:  engine.JDToTDB,
		{scaleTDB, scaleJD}:  engine.TDBToJD,
		{scaleJD, scaleTCG}:  engine.JDToTCG,
		{scaleTCG, scaleJD}:  engine.TCGToJD,
		{scaleJD, scaleTCB}:  engine.JDToTCB,
		{scaleTCB, scaleJD}:  engine.TCBToJD,
		{scaleJD, scaleGPS}:  engine.JDToGPS,
		{scaleGPS, scaleJD}:  engine.GPSToJD,
		{scaleJD, scaleUT1}:  engine.JDToUT1,
		{scaleUT1, scaleJD}:  engine.UT1ToJD,
		{scaleJD, scaleJDE}:  engine.JDToJDE,
		{scaleJDE, scaleJD}:  engine.JDEToJD,
		{scaleJD, scaleUnix}: engine.JDToUnix,
		{scaleUnix, scaleJD}: engine.UnixToJD,

		// Shortcuts for the common MJD departures, saving a hub traversal.
		{scaleMJD, scaleTT}:  func(v float64) float64 { return engine.JDToTT(engine.MJDToJD(v)) },
		{scaleMJD, scaleTAI}: func(v float64) float64 { return engine.JDToTAI(engine.MJDToJD(v)) },
		{scaleMJD, scaleTDB}: func(v float64) float64 { return engine.JDToTDB(engine.MJDToJD(v)) },
	}

	// Routing relies on every scale having both hub edges; fail loudly at
	// startup if an entry is missing.
	for s := scaleID(0); s < scaleCount; s++ {
		if s == scaleJD {
			continue
		}
		if _, ok := g[edge{s, scaleJD}]; !ok {
			panic(fmt.Sprintf("tempo: scale %d has no edge to the hub", s))
		}
		if _, ok := g[edge{scaleJD, s}]; !ok {
			panic(fmt.Sprintf("tempo: scale %d has no edge from the hub", s))
		}
	}
	return g
}

// convertValue routes a raw value from one scale to another: identity,
// then a direct edge, then two edges through the hub.
func convertValue(from, to scaleID, v float64) float64 {
	if from == to {
		return v
	}
	if fn, ok := conversions[edge{from, to}]; ok {
		return fn(v)
	}
	return conversions[edge{scaleJD, to}](conversions[edge{from, scaleJD}](v))
}
