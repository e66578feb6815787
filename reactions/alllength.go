package reactions

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// zeroCrossing returns the x-intercept of the line through (0,p1) and
// (length,p2). Panics if the two points do not define a finite crossing
// (callers only reach this when p1 and p2 have strictly opposite signs, so
// the line is never horizontal through the origin nor vertical).
func zeroCrossing(length, p1, p2 float64) float64 {
	if p1 == p2 {
		chk.Panic("zero crossing undefined for a constant load")
	}
	m := (p2 - p1) / length
	return -p1 / m
}

// direction of the triangular component of a same-sign trapezoid.
type triDir int

const (
	up triDir = iota
	down
)

// --- x direction: force ---------------------------------------------------

func forceXRec(length, p float64) ForceXReactions {
	return ForceXReactions{Rxa: -(p * length) / 2, Rxb: -(p * length) / 2}
}

func forceXTri(length, p float64, dir triDir) ForceXReactions {
	if dir == up {
		return ForceXReactions{Rxa: -(p * length) / 6, Rxb: -(p * length) / 3}
	}
	return ForceXReactions{Rxa: -(p * length) / 3, Rxb: -(p * length) / 6}
}

// ForceXTrap returns the full-span reactions of a trapezoidal axial load.
func ForceXTrap(length, p1, p2 float64) ForceXReactions {
	if p1 == 0 && p2 == 0 {
		return ForceXReactions{}
	}
	var rect, tri ForceXReactions
	switch {
	case p1 >= 0 && p2 >= 0:
		if p1 != 0 && p2 != 0 {
			rect = forceXRec(length, math.Min(p1, p2))
		}
		if p1 < p2 {
			tri = forceXTri(length, p2-p1, up)
		} else if p1 > p2 {
			tri = forceXTri(length, p1-p2, down)
		}
	case p1 <= 0 && p2 <= 0:
		if p1 != 0 && p2 != 0 {
			rect = forceXRec(length, math.Max(p1, p2))
		}
		if math.Abs(p1) < math.Abs(p2) {
			tri = forceXTri(length, -(math.Abs(p2) - math.Abs(p1)), up)
		} else if math.Abs(p1) > math.Abs(p2) {
			tri = forceXTri(length, -(math.Abs(p1) - math.Abs(p2)), down)
		}
	default:
		root := zeroCrossing(length, p1, p2)
		t1 := forceXTri(root, p1, down)
		t2 := forceXTri(length-root, p2, up)
		tri.Rxa += t1.Rxa
		tri.Rxb += t2.Rxb
		force := -(t1.Rxb + t2.Rxa)
		aux := ForceX(length, root, force)
		tri.Rxa += aux.Rxa
		tri.Rxb += aux.Rxb
	}
	return ForceXReactions{Rxa: rect.Rxa + tri.Rxa, Rxb: rect.Rxb + tri.Rxb}
}

// --- x direction: moment (torque) -----------------------------------------

func momentXRec(length, p float64) MomentXReactions {
	return MomentXReactions{Mxa: -(p * length) / 2, Mxb: -(p * length) / 2}
}

func momentXTri(length, p float64, dir triDir) MomentXReactions {
	if dir == up {
		return MomentXReactions{Mxa: -(p * length) / 6, Mxb: -(p * length) / 3}
	}
	return MomentXReactions{Mxa: -(p * length) / 3, Mxb: -(p * length) / 6}
}

// MomentXTrap returns the full-span reactions of a trapezoidal torque.
func MomentXTrap(length, p1, p2 float64) MomentXReactions {
	if p1 == 0 && p2 == 0 {
		return MomentXReactions{}
	}
	var rect, tri MomentXReactions
	switch {
	case p1 >= 0 && p2 >= 0:
		if p1 != 0 && p2 != 0 {
			rect = momentXRec(length, math.Min(p1, p2))
		}
		if p1 < p2 {
			tri = momentXTri(length, p2-p1, up)
		} else if p1 > p2 {
			tri = momentXTri(length, p1-p2, down)
		}
	case p1 <= 0 && p2 <= 0:
		if p1 != 0 && p2 != 0 {
			rect = momentXRec(length, math.Max(p1, p2))
		}
		if math.Abs(p1) < math.Abs(p2) {
			tri = momentXTri(length, -(math.Abs(p2) - math.Abs(p1)), up)
		} else if math.Abs(p1) > math.Abs(p2) {
			tri = momentXTri(length, -(math.Abs(p1) - math.Abs(p2)), down)
		}
	default:
		root := zeroCrossing(length, p1, p2)
		t1 := momentXTri(root, p1, down)
		t2 := momentXTri(length-root, p2, up)
		tri.Mxa += t1.Mxa
		tri.Mxb += t2.Mxb
		force := -(t1.Mxb + t2.Mxa)
		aux := MomentX(length, root, force)
		tri.Mxa += aux.Mxa
		tri.Mxb += aux.Mxb
	}
	return MomentXReactions{Mxa: rect.Mxa + tri.Mxa, Mxb: rect.Mxb + tri.Mxb}
}

// --- y direction: force ----------------------------------------------------

func forceYRec(length, p float64) ForceYReactions {
	return ForceYReactions{
		Mza: -(p * length * length) / 12, Mzb: (p * length * length) / 12,
		Rya: -(p * length) / 2, Ryb: -(p * length) / 2,
	}
}

func forceYTri(length, p float64, dir triDir) ForceYReactions {
	if dir == up {
		return ForceYReactions{
			Mza: -(p * length * length) / 30, Mzb: (p * length * length) / 20,
			Rya: -(3 * p * length) / 20, Ryb: -(7 * p * length) / 20,
		}
	}
	return ForceYReactions{
		Mza: -(p * length * length) / 20, Mzb: (p * length * length) / 30,
		Rya: -(7 * p * length) / 20, Ryb: -(3 * p * length) / 20,
	}
}

// ForceYTrap returns the full-span reactions of a trapezoidal transverse
// load along local y.
func ForceYTrap(length, p1, p2 float64) ForceYReactions {
	if p1 == 0 && p2 == 0 {
		return ForceYReactions{}
	}
	var rect, tri ForceYReactions
	switch {
	case p1 >= 0 && p2 >= 0:
		if p1 != 0 && p2 != 0 {
			rect = forceYRec(length, math.Min(p1, p2))
		}
		if p1 < p2 {
			tri = forceYTri(length, p2-p1, up)
		} else if p1 > p2 {
			tri = forceYTri(length, p1-p2, down)
		}
	case p1 <= 0 && p2 <= 0:
		if p1 != 0 && p2 != 0 {
			rect = forceYRec(length, math.Max(p1, p2))
		}
		if math.Abs(p1) < math.Abs(p2) {
			tri = forceYTri(length, -(math.Abs(p2) - math.Abs(p1)), up)
		} else if math.Abs(p1) > math.Abs(p2) {
			tri = forceYTri(length, -(math.Abs(p1) - math.Abs(p2)), down)
		}
	default:
		root := zeroCrossing(length, p1, p2)
		t1 := forceYTri(root, p1, down)
		t2 := forceYTri(length-root, p2, up)
		tri.Rya += t1.Rya
		tri.Mza += t1.Mza
		tri.Ryb += t2.Ryb
		tri.Mzb += t2.Mzb

		force := -(t1.Ryb + t2.Rya)
		auxF := ForceY(length, root, force)
		tri.Rya += auxF.Rya
		tri.Ryb += auxF.Ryb
		tri.Mza += auxF.Mza
		tri.Mzb += auxF.Mzb

		moment := -(t1.Mzb + t2.Mza)
		auxM := MomentZ(length, root, moment)
		tri.Rya += auxM.Rya
		tri.Ryb += auxM.Ryb
		tri.Mza += auxM.Mza
		tri.Mzb += auxM.Mzb
	}
	return ForceYReactions{
		Rya: rect.Rya + tri.Rya, Ryb: rect.Ryb + tri.Ryb,
		Mza: rect.Mza + tri.Mza, Mzb: rect.Mzb + tri.Mzb,
	}
}

// --- y direction: moment (about local y) -----------------------------------

func momentYRec(p float64) MomentYReactions {
	return MomentYReactions{Rza: -p, Rzb: p}
}

func momentYTri(length, p float64, dir triDir) MomentYReactions {
	if dir == up {
		return MomentYReactions{Mya: (p * length) / 12, Myb: -(p * length) / 12, Rza: -p / 2, Rzb: p / 2}
	}
	return MomentYReactions{Mya: -(p * length) / 12, Myb: (p * length) / 12, Rza: -p / 2, Rzb: p / 2}
}

// MomentYTrap returns the full-span reactions of a trapezoidal distributed
// moment about local y.
func MomentYTrap(length, p1, p2 float64) MomentYReactions {
	if p1 == 0 && p2 == 0 {
		return MomentYReactions{}
	}
	var rect, tri MomentYReactions
	switch {
	case p1 >= 0 && p2 >= 0:
		if p1 != 0 && p2 != 0 {
			rect = momentYRec(math.Min(p1, p2))
		}
		if p1 < p2 {
			tri = momentYTri(length, p2-p1, up)
		} else if p1 > p2 {
			tri = momentYTri(length, p1-p2, down)
		}
	case p1 <= 0 && p2 <= 0:
		if p1 != 0 && p2 != 0 {
			rect = momentYRec(math.Max(p1, p2))
		}
		if math.Abs(p1) < math.Abs(p2) {
			tri = momentYTri(length, -(math.Abs(p2) - math.Abs(p1)), up)
		} else if math.Abs(p1) > math.Abs(p2) {
			tri = momentYTri(length, -(math.Abs(p1) - math.Abs(p2)), down)
		}
	default:
		root := zeroCrossing(length, p1, p2)
		t1 := momentYTri(root, p1, down)
		t2 := momentYTri(length-root, p2, up)
		tri.Rza += t1.Rza
		tri.Mya += t1.Mya
		tri.Rzb += t2.Rzb
		tri.Myb += t2.Myb

		moment := -(t1.Myb + t2.Mya)
		auxM := MomentY(length, root, moment)
		tri.Rza += auxM.Rza
		tri.Rzb += auxM.Rzb
		tri.Mya += auxM.Mya
		tri.Myb += auxM.Myb

		force := -(t1.Rzb + t2.Rza)
		auxF := ForceZ(length, root, force)
		tri.Rza += auxF.Rza
		tri.Rzb += auxF.Rzb
		tri.Mya += auxF.Mya
		tri.Myb += auxF.Myb
	}
	return MomentYReactions{
		Rza: rect.Rza + tri.Rza, Rzb: rect.Rzb + tri.Rzb,
		Mya: rect.Mya + tri.Mya, Myb: rect.Myb + tri.Myb,
	}
}

// --- z direction: force ------------------------------------------------------

func forceZRec(length, p float64) ForceZReactions {
	return ForceZReactions{
		Mya: (p * length * length) / 12, Myb: -(p * length * length) / 12,
		Rza: -(p * length) / 2, Rzb: -(p * length) / 2,
	}
}

func forceZTri(length, p float64, dir triDir) ForceZReactions {
	if dir == up {
		return ForceZReactions{
			Mya: (p * length * length) / 30, Myb: -(p * length * length) / 20,
			Rza: -(3 * p * length) / 20, Rzb: -(7 * p * length) / 20,
		}
	}
	return ForceZReactions{
		Mya: (p * length * length) / 20, Myb: -(p * length * length) / 30,
		Rza: -(7 * p * length) / 20, Rzb: -(3 * p * length) / 20,
	}
}

// ForceZTrap returns the full-span reactions of a trapezoidal transverse
// load along local z.
func ForceZTrap(length, p1, p2 float64) ForceZReactions {
	if p1 == 0 && p2 == 0 {
		return ForceZReactions{}
	}
	var rect, tri ForceZReactions
	switch {
	case p1 >= 0 && p2 >= 0:
		if p1 != 0 && p2 != 0 {
			rect = forceZRec(length, math.Min(p1, p2))
		}
		if p1 < p2 {
			tri = forceZTri(length, p2-p1, up)
		} else if p1 > p2 {
			tri = forceZTri(length, p1-p2, down)
		}
	case p1 <= 0 && p2 <= 0:
		if p1 != 0 && p2 != 0 {
			rect = forceZRec(length, math.Max(p1, p2))
		}
		if math.Abs(p1) < math.Abs(p2) {
			tri = forceZTri(length, -(math.Abs(p2) - math.Abs(p1)), up)
		} else if math.Abs(p1) > math.Abs(p2) {
			tri = forceZTri(length, -(math.Abs(p1) - math.Abs(p2)), down)
		}
	default:
		root := zeroCrossing(length, p1, p2)
		t1 := forceZTri(root, p1, down)
		t2 := forceZTri(length-root, p2, up)
		tri.Rza += t1.Rza
		tri.Mya += t1.Mya
		tri.Rzb += t2.Rzb
		tri.Myb += t2.Myb

		force := -(t1.Rzb + t2.Rza)
		auxF := ForceZ(length, root, force)
		tri.Rza += auxF.Rza
		tri.Rzb += auxF.Rzb
		tri.Mya += auxF.Mya
		tri.Myb += auxF.Myb

		moment := -(t1.Myb + t2.Mya)
		auxM := MomentY(length, root, moment)
		tri.Rza += auxM.Rza
		tri.Rzb += auxM.Rzb
		tri.Mya += auxM.Mya
		tri.Myb += auxM.Myb
	}
	return ForceZReactions{
		Rza: rect.Rza + tri.Rza, Rzb: rect.Rzb + tri.Rzb,
		Mya: rect.Mya + tri.Mya, Myb: rect.Myb + tri.Myb,
	}
}

// --- z direction: moment (about local z) -------------------------------------

func momentZRec(p float64) MomentZReactions {
	return MomentZReactions{Rya: p, Ryb: -p}
}

func momentZTri(length, p float64, dir triDir) MomentZReactions {
	if dir == up {
		return MomentZReactions{Mza: (p * length) / 12, Mzb: -(p * length) / 12, Rya: p / 2, Ryb: -p / 2}
	}
	return MomentZReactions{Mza: -(p * length) / 12, Mzb: (p * length) / 12, Rya: p / 2, Ryb: -p / 2}
}

// MomentZTrap returns the full-span reactions of a trapezoidal distributed
// moment about local z.
func MomentZTrap(length, p1, p2 float64) MomentZReactions {
	if p1 == 0 && p2 == 0 {
		return MomentZReactions{}
	}
	var rect, tri MomentZReactions
	switch {
	case p1 >= 0 && p2 >= 0:
		if p1 != 0 && p2 != 0 {
			rect = momentZRec(math.Min(p1, p2))
		}
		if p1 < p2 {
			tri = momentZTri(length, p2-p1, up)
		} else if p1 > p2 {
			tri = momentZTri(length, p1-p2, down)
		}
	case p1 <= 0 && p2 <= 0:
		if p1 != 0 && p2 != 0 {
			rect = momentZRec(math.Max(p1, p2))
		}
		if math.Abs(p1) < math.Abs(p2) {
			tri = momentZTri(length, -(math.Abs(p2) - math.Abs(p1)), up)
		} else if math.Abs(p1) > math.Abs(p2) {
			tri = momentZTri(length, -(math.Abs(p1) - math.Abs(p2)), down)
		}
	default:
		root := zeroCrossing(length, p1, p2)
		t1 := momentZTri(root, p1, down)
		t2 := momentZTri(length-root, p2, up)
		tri.Rya += t1.Rya
		tri.Mza += t1.Mza
		tri.Ryb += t2.Ryb
		tri.Mzb += t2.Mzb

		moment := -(t1.Mzb + t2.Mza)
		auxM := MomentZ(length, root, moment)
		tri.Rya += auxM.Rya
		tri.Ryb += auxM.Ryb
		tri.Mza += auxM.Mza
		tri.Mzb += auxM.Mzb

		force := -(t1.Ryb + t2.Rya)
		auxF := ForceY(length, root, force)
		tri.Rya += auxF.Rya
		tri.Ryb += auxF.Ryb
		tri.Mza += auxF.Mza
		tri.Mzb += auxF.Mzb
	}
	return MomentZReactions{
		Rya: rect.Rya + tri.Rya, Ryb: rect.Ryb + tri.Ryb,
		Mza: rect.Mza + tri.Mza, Mzb: rect.Mzb + tri.Mzb,
	}
}
