package reactions

import "github.com/cpmech/gosl/chk"

func checkSpan(length, x1, x2 float64) {
	if !(x1 >= 0 && x1 < x2 && x2 <= length) {
		chk.Panic("span [%g, %g] out of range for length %g", x1, x2, length)
	}
}

// SectionForceX returns the reactions on a full bar of the given length for
// a trapezoidal axial load spanning [x1,x2]. The full-length reactions are
// computed on the virtual sub-bar of length x2-x1 and translated onto the
// bar via the principle of superposition of effects.
func SectionForceX(length, x1, x2, p1, p2 float64) ForceXReactions {
	checkSpan(length, x1, x2)
	local := ForceXTrap(x2-x1, p1, p2)
	a1 := ForceX(length, x1, -local.Rxa)
	a2 := ForceX(length, x2, -local.Rxb)
	return ForceXReactions{Rxa: a1.Rxa + a2.Rxa, Rxb: a1.Rxb + a2.Rxb}
}

// SectionMomentX returns the reactions of a trapezoidal distributed torque
// spanning [x1,x2].
func SectionMomentX(length, x1, x2, p1, p2 float64) MomentXReactions {
	checkSpan(length, x1, x2)
	local := MomentXTrap(x2-x1, p1, p2)
	a1 := MomentX(length, x1, -local.Mxa)
	a2 := MomentX(length, x2, -local.Mxb)
	return MomentXReactions{Mxa: a1.Mxa + a2.Mxa, Mxb: a1.Mxb + a2.Mxb}
}

// SectionForceY returns the reactions of a trapezoidal transverse load
// (local y) spanning [x1,x2].
func SectionForceY(length, x1, x2, p1, p2 float64) ForceYReactions {
	checkSpan(length, x1, x2)
	local := ForceYTrap(x2-x1, p1, p2)
	a1 := ForceY(length, x1, -local.Rya)
	a2 := ForceY(length, x2, -local.Ryb)
	a3 := MomentZ(length, x1, -local.Mza)
	a4 := MomentZ(length, x2, -local.Mzb)
	return ForceYReactions{
		Rya: a1.Rya + a2.Rya + a3.Rya + a4.Rya,
		Ryb: a1.Ryb + a2.Ryb + a3.Ryb + a4.Ryb,
		Mza: a1.Mza + a2.Mza + a3.Mza + a4.Mza,
		Mzb: a1.Mzb + a2.Mzb + a3.Mzb + a4.Mzb,
	}
}

// SectionMomentZ returns the reactions of a trapezoidal distributed moment
// about local z spanning [x1,x2].
func SectionMomentZ(length, x1, x2, p1, p2 float64) MomentZReactions {
	checkSpan(length, x1, x2)
	local := MomentZTrap(x2-x1, p1, p2)
	a1 := ForceY(length, x1, -local.Rya)
	a2 := ForceY(length, x2, -local.Ryb)
	a3 := MomentZ(length, x1, -local.Mza)
	a4 := MomentZ(length, x2, -local.Mzb)
	return MomentZReactions{
		Rya: a1.Rya + a2.Rya + a3.Rya + a4.Rya,
		Ryb: a1.Ryb + a2.Ryb + a3.Ryb + a4.Ryb,
		Mza: a1.Mza + a2.Mza + a3.Mza + a4.Mza,
		Mzb: a1.Mzb + a2.Mzb + a3.Mzb + a4.Mzb,
	}
}

// SectionForceZ returns the reactions of a trapezoidal transverse load
// (local z) spanning [x1,x2].
func SectionForceZ(length, x1, x2, p1, p2 float64) ForceZReactions {
	checkSpan(length, x1, x2)
	local := ForceZTrap(x2-x1, p1, p2)
	a1 := ForceZ(length, x1, -local.Rza)
	a2 := ForceZ(length, x2, -local.Rzb)
	a3 := MomentY(length, x1, -local.Mya)
	a4 := MomentY(length, x2, -local.Myb)
	return ForceZReactions{
		Rza: a1.Rza + a2.Rza + a3.Rza + a4.Rza,
		Rzb: a1.Rzb + a2.Rzb + a3.Rzb + a4.Rzb,
		Mya: a1.Mya + a2.Mya + a3.Mya + a4.Mya,
		Myb: a1.Myb + a2.Myb + a3.Myb + a4.Myb,
	}
}

// SectionMomentY returns the reactions of a trapezoidal distributed moment
// about local y spanning [x1,x2].
func SectionMomentY(length, x1, x2, p1, p2 float64) MomentYReactions {
	checkSpan(length, x1, x2)
	local := MomentYTrap(x2-x1, p1, p2)
	a1 := ForceZ(length, x1, -local.Rza)
	a2 := ForceZ(length, x2, -local.Rzb)
	a3 := MomentY(length, x1, -local.Mya)
	a4 := MomentY(length, x2, -local.Myb)
	return MomentYReactions{
		Rza: a1.Rza + a2.Rza + a3.Rza + a4.Rza,
		Rzb: a1.Rzb + a2.Rzb + a3.Rzb + a4.Rzb,
		Mya: a1.Mya + a2.Mya + a3.Mya + a4.Mya,
		Myb: a1.Myb + a2.Myb + a3.Myb + a4.Myb,
	}
}
