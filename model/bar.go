package model

import "math"

// Releases flags which of a bar's twelve local end DOFs are free to rotate
// or translate independently of the connected node (a moment or shear
// release). Index order matches the bar's local DOF order: i-end
// Dx,Dy,Dz,Rx,Ry,Rz then j-end Dx,Dy,Dz,Rx,Ry,Rz.
type Releases struct {
	Dxi, Dyi, Dzi, Rxi, Ryi, Rzi bool
	Dxj, Dyj, Dzj, Rxj, Ryj, Rzj bool
}

// Flags returns the releases in fixed DOF-index order, 0..11.
func (r Releases) Flags() [12]bool {
	return [12]bool{
		r.Dxi, r.Dyi, r.Dzi, r.Rxi, r.Ryi, r.Rzi,
		r.Dxj, r.Dyj, r.Dzj, r.Rxj, r.Ryj, r.Rzj,
	}
}

// Bar is a straight prismatic frame element connecting two nodes.
type Bar struct {
	Name     string
	Start    *Node
	End      *Node
	Section  *Section
	Material *Material
	Rotation float64 // roll angle about the local x-axis, degrees
	Releases Releases

	// derived at construction
	Dx, Dy, Dz float64
	Length     float64

	// scratch fields populated by package ele/fem during analysis
	// Kl, KlNoReleases, R and Klg depend only on geometry, section and
	// material, never on a load case, so they are shared read-only once
	// ele.Prepare has run: concurrent solves across load cases may read them
	// freely. Per-case quantities (the equivalent load vector, end forces)
	// are NOT stored on Bar; they live in the caller's own per-case result
	// so that solving load cases concurrently never writes shared state.
	Kl           [][]float64 // condensed local stiffness
	KlNoReleases [][]float64 // local stiffness before release condensation
	R            [][]float64 // 12x12 rotation matrix
	Klg          [][]float64 // global stiffness (R^T * Kl * R)
}

// NewBar validates geometry and creates a bar. The start and end nodes must
// not coincide.
func NewBar(name string, start, end *Node, sec *Section, mat *Material, rotationDeg float64, rel Releases) (*Bar, error) {
	dx := end.X - start.X
	dy := end.Y - start.Y
	dz := end.Z - start.Z
	length := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if length <= 0 {
		return nil, wrapErr(ErrInvalidGeometry, "bar %q: start and end nodes coincide", name)
	}
	return &Bar{
		Name: name, Start: start, End: end, Section: sec, Material: mat,
		Rotation: rotationDeg, Releases: rel,
		Dx: dx, Dy: dy, Dz: dz, Length: length,
	}, nil
}
