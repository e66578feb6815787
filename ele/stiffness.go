// Package ele implements the element-level mechanics of a 3D frame bar:
// local stiffness assembly, end-release condensation, the rotation to
// global axes, and the equivalent nodal load vector for bar loads.
package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// LocalStiffness builds the 12x12 local stiffness matrix of a prismatic
// Euler-Bernoulli bar of length l, cross-sectional area a, second moments
// of area iy (about local y) and iz (about local z), torsional constant ix,
// Young's modulus e and shear modulus g. DOF order per node is
// Dx,Dy,Dz,Rx,Ry,Rz; node i occupies rows/cols 0..5, node j rows/cols 6..11.
func LocalStiffness(l, a, ix, iy, iz, e, g float64) [][]float64 {
	kl := la.MatAlloc(12, 12)

	kl[0][0] = (e * a) / l
	kl[0][6] = -kl[0][0]

	kl[1][1] = (12 * e * iz) / (l * l * l)
	kl[1][5] = (6 * e * iz) / (l * l)
	kl[1][7] = -kl[1][1]
	kl[1][11] = kl[1][5]

	kl[2][2] = (12 * e * iy) / (l * l * l)
	kl[2][4] = -(6 * e * iy) / (l * l)
	kl[2][8] = -kl[2][2]
	kl[2][10] = kl[2][4]

	kl[3][3] = (g * ix) / l
	kl[3][9] = -kl[3][3]

	kl[4][4] = (4 * e * iy) / l
	kl[4][8] = -kl[2][4]
	kl[4][10] = (2 * e * iy) / l

	kl[5][5] = (4 * e * iz) / l
	kl[5][7] = -kl[1][5]
	kl[5][11] = (2 * e * iz) / l

	kl[6][6] = kl[0][0]

	kl[7][7] = kl[1][1]
	kl[7][11] = -kl[1][5]

	kl[8][8] = kl[2][2]
	kl[8][10] = -kl[2][4]

	kl[9][9] = kl[3][3]
	kl[10][10] = kl[4][4]
	kl[11][11] = kl[5][5]

	for i := 0; i < 12; i++ {
		for j := i + 1; j < 12; j++ {
			kl[j][i] = kl[i][j]
		}
	}
	return kl
}

// CondenseReleases applies static condensation for the DOFs flagged in
// releases, in fixed index order 0..11, following the classical
// Gauss-elimination reduction: for each released DOF l, every remaining row
// j and column k are updated with kl[j][k] -= kl[j][l]*kl[l][k]/kl[l][l].
// Returns a new matrix; kl is left untouched. Panics (SingularMatrix) if a
// pivot kl[l][l] is not strictly positive.
func CondenseReleases(kl [][]float64, releases [12]bool) [][]float64 {
	cur := la.MatClone(kl)
	done := make([]bool, 12)
	for l := 0; l < 12; l++ {
		if !releases[l] {
			continue
		}
		pivot := cur[l][l]
		if pivot <= 0 {
			chk.Panic("release condensation: non-positive pivot at DOF %d", l)
		}
		next := la.MatClone(cur)
		for j := 0; j < 12; j++ {
			if j == l || done[j] {
				continue
			}
			for k := 0; k < 12; k++ {
				if k == l || done[k] {
					continue
				}
				next[j][k] = cur[j][k] - cur[j][l]*cur[l][k]/pivot
			}
		}
		cur = next
		done[l] = true
	}
	for i := 0; i < 12; i++ {
		if releases[i] {
			for j := 0; j < 12; j++ {
				cur[i][j] = 0
				cur[j][i] = 0
			}
		}
	}
	return cur
}

// GlobalStiffness returns R^T * kl * R, the element stiffness in global axes.
func GlobalStiffness(kl, r [][]float64) [][]float64 {
	k := la.MatAlloc(12, 12)
	la.MatTrMul3(k, 1, r, kl, r)
	return k
}
