package ele

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/lidaltonlima/go-frame3d/model"
	"github.com/lidaltonlima/go-frame3d/reactions"
)

// pseudoInverseTol is the tolerance passed to la.MatInvG when release
// condensation falls back from a direct inverse to a pseudo-inverse.
const pseudoInverseTol = 1e-12

// minDet is the minimum |determinant| la.MatInv accepts before reporting
// the matrix as singular; a rejected K_rr triggers the pseudo-inverse
// fallback.
const minDet = 1e-13

// transformToLocal6 rotates a single end's six global load components
// (Fx,Fy,Fz,Mx,My,Mz) into local axes using the top-left 6x6 block of the
// bar's 12x12 rotation matrix (two repeated 3x3 direction-cosine triads).
func transformToLocal6(r [][]float64, v [6]float64) [6]float64 {
	var out [6]float64
	for i := 0; i < 6; i++ {
		var sum float64
		for j := 0; j < 6; j++ {
			sum += r[i][j] * v[j]
		}
		out[i] = sum
	}
	return out
}

// PointLoadLocalVector assembles the 12-entry local equivalent load vector
// for a single bar point load, using the subtraction convention: each
// component of the twelve-vector accumulates the negative of the matching
// fixed-end reaction, with the two bending planes each gathering both their
// force-induced and moment-induced contributions.
func PointLoadLocalVector(length float64, local [6]float64, pos float64) [12]float64 {
	fx, fy, fz, mx, my, mz := local[0], local[1], local[2], local[3], local[4], local[5]

	var v [12]float64
	fxr := reactions.ForceX(length, pos, fx)
	v[0] -= fxr.Rxa
	v[6] -= fxr.Rxb

	fyr := reactions.ForceY(length, pos, fy)
	mzr := reactions.MomentZ(length, pos, mz)
	v[1] -= fyr.Rya + mzr.Rya
	v[7] -= fyr.Ryb + mzr.Ryb
	v[5] -= fyr.Mza + mzr.Mza
	v[11] -= fyr.Mzb + mzr.Mzb

	fzr := reactions.ForceZ(length, pos, fz)
	myr := reactions.MomentY(length, pos, my)
	v[2] -= fzr.Rza + myr.Rza
	v[8] -= fzr.Rzb + myr.Rzb
	v[4] -= fzr.Mya + myr.Mya
	v[10] -= fzr.Myb + myr.Myb

	mxr := reactions.MomentX(length, pos, mx)
	v[3] -= mxr.Mxa
	v[9] -= mxr.Mxb

	return v
}

// DistLoadLocalVector assembles the 12-entry local equivalent load vector
// for a bar distributed load spanning [s1,s2], with independently
// transformed endpoint intensities.
func DistLoadLocalVector(length float64, local1, local2 [6]float64, s1, s2 float64) [12]float64 {
	var v [12]float64

	fxr := reactions.SectionForceX(length, s1, s2, local1[0], local2[0])
	v[0] -= fxr.Rxa
	v[6] -= fxr.Rxb

	fyr := reactions.SectionForceY(length, s1, s2, local1[1], local2[1])
	mzr := reactions.SectionMomentZ(length, s1, s2, local1[5], local2[5])
	v[1] -= fyr.Rya + mzr.Rya
	v[7] -= fyr.Ryb + mzr.Ryb
	v[5] -= fyr.Mza + mzr.Mza
	v[11] -= fyr.Mzb + mzr.Mzb

	fzr := reactions.SectionForceZ(length, s1, s2, local1[2], local2[2])
	myr := reactions.SectionMomentY(length, s1, s2, local1[4], local2[4])
	v[2] -= fzr.Rza + myr.Rza
	v[8] -= fzr.Rzb + myr.Rzb
	v[4] -= fzr.Mya + myr.Mya
	v[10] -= fzr.Myb + myr.Myb

	mxr := reactions.SectionMomentX(length, s1, s2, local1[3], local2[3])
	v[3] -= mxr.Mxa
	v[9] -= mxr.Mxb

	return v
}

// CondenseLoadVector applies the release condensation to a local
// equivalent load vector, using the uncondensed local stiffness klNoReleases
// to couple released DOFs back onto the kept ones:
//
//	f_k' = f_k - K_kr * K_rr^-1 * f_r
//
// Released DOFs receive zero; a bar released at all twelve DOFs gets a zero
// vector without any inversion. If la.MatInv rejects K_rr (|determinant|
// below minDet), a pseudo-inverse (la.MatInvG with pseudoInverseTol) is used
// instead, logged but not fatal. The fallback is decided by that determinant
// test alone; no condition-number estimate is computed.
func CondenseLoadVector(klNoReleases [][]float64, v [12]float64, releases [12]bool) [12]float64 {
	var rIdx, kIdx []int
	for i := 0; i < 12; i++ {
		if releases[i] {
			rIdx = append(rIdx, i)
		} else {
			kIdx = append(kIdx, i)
		}
	}
	if len(rIdx) == 0 {
		return v
	}
	if len(kIdx) == 0 {
		return [12]float64{}
	}

	nr := len(rIdx)
	krr := la.MatAlloc(nr, nr)
	for a, i := range rIdx {
		for b, j := range rIdx {
			krr[a][b] = klNoReleases[i][j]
		}
	}
	fr := make([]float64, nr)
	for a, i := range rIdx {
		fr[a] = v[i]
	}

	krrInv := la.MatAlloc(nr, nr)
	_, err := la.MatInv(krrInv, krr, minDet)
	if err != nil {
		io.Pfyel("ele: release condensation: K_rr near-singular, using pseudo-inverse\n")
		if err := la.MatInvG(krrInv, krr, pseudoInverseTol); err != nil {
			panic(err)
		}
	}

	corr := make([]float64, nr)
	la.MatVecMul(corr, 1, krrInv, fr)

	var out [12]float64
	for _, i := range kIdx {
		var sum float64
		for b, j := range rIdx {
			sum += klNoReleases[i][j] * corr[b]
		}
		out[i] = v[i] - sum
	}
	return out
}

// RotateToGlobal12 rotates a condensed local 12-vector back into global
// axes via R^T.
func RotateToGlobal12(r [][]float64, v [12]float64) [12]float64 {
	var out [12]float64
	for i := 0; i < 12; i++ {
		var sum float64
		for j := 0; j < 12; j++ {
			sum += r[j][i] * v[j] // R^T
		}
		out[i] = sum
	}
	return out
}

// EquivalentLoadVector computes the global equivalent nodal load vector
// produced by one load case's point and distributed loads on bar. It reads
// bar's geometry-derived scratch (KlNoReleases, R, Releases) but never
// writes to bar, so it is safe to call concurrently for different load
// cases on the same bar.
func EquivalentLoadVector(bar *model.Bar, pointLoads []model.BarPointLoad, distLoads []model.BarDistLoad) []float64 {
	releases := bar.Releases.Flags()
	var total [12]float64

	for _, pl := range pointLoads {
		local := [6]float64{pl.Fx, pl.Fy, pl.Fz, pl.Mx, pl.My, pl.Mz}
		if pl.System == model.Global {
			local = transformToLocal6(bar.R, local)
		}
		lv := PointLoadLocalVector(bar.Length, local, pl.Position)
		cond := CondenseLoadVector(bar.KlNoReleases, lv, releases)
		glob := RotateToGlobal12(bar.R, cond)
		for i := 0; i < 12; i++ {
			total[i] += glob[i]
		}
	}

	for _, dl := range distLoads {
		l1 := [6]float64{dl.Fx[0], dl.Fy[0], dl.Fz[0], dl.Mx[0], dl.My[0], dl.Mz[0]}
		l2 := [6]float64{dl.Fx[1], dl.Fy[1], dl.Fz[1], dl.Mx[1], dl.My[1], dl.Mz[1]}
		if dl.System == model.Global {
			l1 = transformToLocal6(bar.R, l1)
			l2 = transformToLocal6(bar.R, l2)
		}
		lv := DistLoadLocalVector(bar.Length, l1, l2, dl.S1, dl.S2)
		cond := CondenseLoadVector(bar.KlNoReleases, lv, releases)
		glob := RotateToGlobal12(bar.R, cond)
		for i := 0; i < 12; i++ {
			total[i] += glob[i]
		}
	}

	return total[:]
}
