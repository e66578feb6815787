// Package reactions implements the fixed-end-reaction formulas (Soriano &
// Lima, "Análise de Estruturas") for a prismatic bar under point and
// distributed loads, in all six load components.
package reactions

import (
	"github.com/cpmech/gosl/chk"
)

// ForceXReactions holds the end reactions of an axial point or distributed load.
type ForceXReactions struct {
	Rxa, Rxb float64
}

// ForceYReactions holds the end reactions of a transverse load acting along
// the local y axis.
type ForceYReactions struct {
	Rya, Ryb, Mza, Mzb float64
}

// ForceZReactions holds the end reactions of a transverse load acting along
// the local z axis.
type ForceZReactions struct {
	Rza, Rzb, Mya, Myb float64
}

// MomentXReactions holds the end reactions of a torque about the local x axis.
type MomentXReactions struct {
	Mxa, Mxb float64
}

// MomentYReactions holds the end reactions of a concentrated moment about
// the local y axis.
type MomentYReactions struct {
	Mya, Myb, Rza, Rzb float64
}

// MomentZReactions holds the end reactions of a concentrated moment about
// the local z axis.
type MomentZReactions struct {
	Mza, Mzb, Rya, Ryb float64
}

func checkPos(length, x float64) {
	if x < 0 || x > length {
		chk.Panic("position %g out of range [0, %g]", x, length)
	}
}

// ForceX returns the reactions of a bar with an axial point load p at x.
func ForceX(length, x, p float64) ForceXReactions {
	checkPos(length, x)
	a, b, l := x, length-x, length
	return ForceXReactions{
		Rxa: -p * b / l,
		Rxb: -p * a / l,
	}
}

// ForceY returns the reactions of a bar with a transverse point load p
// (local y) at x.
func ForceY(length, x, p float64) ForceYReactions {
	checkPos(length, x)
	a, b, l := x, length-x, length
	mza := -(p * a * b * b) / (l * l)
	mzb := (p * a * a * b) / (l * l)
	rya := -((p * b / l) - (mza+mzb)/l)
	ryb := -((p * a / l) + (mza+mzb)/l)
	return ForceYReactions{Rya: rya, Ryb: ryb, Mza: mza, Mzb: mzb}
}

// ForceZ returns the reactions of a bar with a transverse point load p
// (local z) at x.
func ForceZ(length, x, p float64) ForceZReactions {
	checkPos(length, x)
	a, b, l := x, length-x, length
	mya := (p * a * b * b) / (l * l)
	myb := -(p * a * a * b) / (l * l)
	rza := -((p * b / l) + (mya+myb)/l)
	rzb := -((p * a / l) - (mya+myb)/l)
	return ForceZReactions{Rza: rza, Rzb: rzb, Mya: mya, Myb: myb}
}

// MomentX returns the reactions of a bar with a point torque m at x.
func MomentX(length, x, m float64) MomentXReactions {
	checkPos(length, x)
	a, b, l := x, length-x, length
	return MomentXReactions{
		Mxa: -m * b / l,
		Mxb: -m * a / l,
	}
}

// MomentY returns the reactions of a bar with a point moment m about local
// y at x.
func MomentY(length, x, m float64) MomentYReactions {
	checkPos(length, x)
	a, b, l := x, length-x, length
	mya := ((m * b) / (l * l)) * (2*a - b)
	myb := ((m * a) / (l * l)) * (2*b - a)
	rza := -(6 * m * a * b) / (l * l * l)
	rzb := (6 * m * a * b) / (l * l * l)
	return MomentYReactions{Mya: mya, Myb: myb, Rza: rza, Rzb: rzb}
}

// MomentZ returns the reactions of a bar with a point moment m about local
// z at x.
func MomentZ(length, x, m float64) MomentZReactions {
	checkPos(length, x)
	a, b, l := x, length-x, length
	mza := ((m * b) / (l * l)) * (2*a - b)
	mzb := ((m * a) / (l * l)) * (2*b - a)
	rya := (6 * m * a * b) / (l * l * l)
	ryb := -(6 * m * a * b) / (l * l * l)
	return MomentZReactions{Mza: mza, Mzb: mzb, Rya: rya, Ryb: ryb}
}
