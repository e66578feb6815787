package ele

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/lidaltonlima/go-frame3d/model"
)

// RotationMatrix builds the 12x12 block-diagonal direction-cosine matrix
// that transforms global DOFs into the bar's local axes: a 3x3 triad
// repeated on the diagonal four times, one block per node-DOF-triplet
// (translations-i, rotations-i, translations-j, rotations-j).
//
// The local x-axis follows the bar's start-to-end direction. An auxiliary
// point fixes a reference direction a, chosen per the yUp convention: when
// yUp, a vertical bar (no x/z offset) picks the auxiliary point along +x; a
// non-vertical bar picks it one unit above in y. When not yUp ("z-up"), a
// bar with any x/y offset picks the auxiliary point one unit ahead in z; a
// purely vertical bar picks +/-x depending on whether it points up or down.
// The bar's Rotation field then rolls that auxiliary point about the bar
// axis via Rodrigues' formula. The local z and y axes are then built as two
// cross products so the triad stays right-handed: e2 = e0 x a, e1 = e2 x e0
// (never a itself, and never e1 derived before e2) — mirroring the
// reference implementation's row2/row1 construction.
func RotationMatrix(bar *model.Bar, yUp bool) [][]float64 {
	e0 := normalize([]float64{bar.Dx, bar.Dy, bar.Dz})

	auxOffset := [3]float64{}
	switch {
	case yUp:
		if bar.Dx != 0 || bar.Dz != 0 {
			auxOffset = [3]float64{0, 1, 0}
		} else {
			auxOffset = [3]float64{1, 0, 0}
		}
	default:
		if bar.Dx != 0 || bar.Dy != 0 {
			auxOffset = [3]float64{0, 0, 1}
		} else if bar.Dz > 0 {
			auxOffset = [3]float64{-1, 0, 0}
		} else {
			auxOffset = [3]float64{1, 0, 0}
		}
	}
	aux := [3]float64{
		bar.End.X + auxOffset[0],
		bar.End.Y + auxOffset[1],
		bar.End.Z + auxOffset[2],
	}

	axisUp := -90.0
	if yUp {
		axisUp = 0
	}
	theta := (bar.Rotation + axisUp) * math.Pi / 180

	aux = rotateAroundLine(aux, [3]float64{bar.Start.X, bar.Start.Y, bar.Start.Z}, [3]float64{bar.End.X, bar.End.Y, bar.End.Z}, theta)

	a := normalize([]float64{aux[0] - bar.End.X, aux[1] - bar.End.Y, aux[2] - bar.End.Z})

	e2 := make([]float64, 3)
	utl.Cross3d(e2, e0, a) // e2 := e0 x a
	e2 = normalize(e2)

	e1 := make([]float64, 3)
	utl.Cross3d(e1, e2, e0) // e1 := e2 x e0
	e1 = normalize(e1)

	triad := [3][]float64{e0, e1, e2}

	r := la.MatAlloc(12, 12)
	for block := 0; block < 4; block++ {
		base := 3 * block
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				r[base+row][base+col] = triad[row][col]
			}
		}
	}
	return r
}

func normalize(v []float64) []float64 {
	n := la.VecNorm(v)
	if n <= 0 {
		chk.Panic("cannot normalize a zero-length vector")
	}
	out := make([]float64, len(v))
	la.VecCopy(out, 1.0/n, v)
	return out
}

// rotateAroundLine rotates point p by angle (radians) about the line
// through a and b, via Rodrigues' rotation formula.
func rotateAroundLine(p, a, b [3]float64, angle float64) [3]float64 {
	u := normalize([]float64{b[0] - a[0], b[1] - a[1], b[2] - a[2]})
	rel := []float64{p[0] - a[0], p[1] - a[1], p[2] - a[2]}

	cross := make([]float64, 3)
	utl.Cross3d(cross, u, rel)

	dot := u[0]*rel[0] + u[1]*rel[1] + u[2]*rel[2]
	cos, sin := math.Cos(angle), math.Sin(angle)

	var out [3]float64
	for i := 0; i < 3; i++ {
		out[i] = rel[i]*cos + cross[i]*sin + u[i]*dot*(1-cos) + a[i]
	}
	return out
}
