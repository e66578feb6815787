package model

// System selects whether a bar load's components are given in the global
// coordinate system or already in the bar's local axes.
type System int

const (
	Global System = iota
	Local
)

// NodeLoad is a concentrated load applied directly at a node's six DOFs,
// always in the global system.
type NodeLoad struct {
	Fx, Fy, Fz, Mx, My, Mz float64
}

// BarPointLoad is a concentrated load applied at a position along a bar.
type BarPointLoad struct {
	Position float64 // distance from the bar's start node, 0 <= Position <= bar length
	System   System
	Fx, Fy, Fz, Mx, My, Mz float64
}

// BarDistLoad is a linearly varying load applied over a sub-span of a bar.
// P1 is the intensity at S1, P2 the intensity at S2, per unit length.
type BarDistLoad struct {
	S1, S2 float64 // 0 <= S1 < S2 <= bar length
	System System
	Fx, Fy, Fz [2]float64 // [p1, p2] force intensities
	Mx, My, Mz [2]float64 // [p1, p2] distributed moment intensities
}

// Load is one load case: a named collection of nodal and bar loads.
//
// A Load knows about the bars it loads; bars never reference their loads.
type Load struct {
	Name         string
	NodeLoads    map[*Node][]NodeLoad
	BarPointLoads map[*Bar][]BarPointLoad
	BarDistLoads  map[*Bar][]BarDistLoad
}

// NewLoad creates an empty load case.
func NewLoad(name string) *Load {
	return &Load{
		Name:          name,
		NodeLoads:     make(map[*Node][]NodeLoad),
		BarPointLoads: make(map[*Bar][]BarPointLoad),
		BarDistLoads:  make(map[*Bar][]BarDistLoad),
	}
}

// AddNodeLoad appends a concentrated nodal load.
func (l *Load) AddNodeLoad(n *Node, nl NodeLoad) {
	l.NodeLoads[n] = append(l.NodeLoads[n], nl)
}

// AddBarPointLoad appends a bar point load after validating its position.
func (l *Load) AddBarPointLoad(b *Bar, pl BarPointLoad) error {
	if pl.Position < 0 || pl.Position > b.Length {
		return wrapErr(ErrInvalidLoadPosition, "load %q: bar %q: position %g out of [0, %g]", l.Name, b.Name, pl.Position, b.Length)
	}
	l.BarPointLoads[b] = append(l.BarPointLoads[b], pl)
	return nil
}

// AddBarDistLoad appends a bar distributed load after validating its span.
func (l *Load) AddBarDistLoad(b *Bar, dl BarDistLoad) error {
	if !(dl.S1 >= 0 && dl.S1 < dl.S2 && dl.S2 <= b.Length) {
		return wrapErr(ErrInvalidLoadPosition, "load %q: bar %q: span [%g, %g] invalid for length %g", l.Name, b.Name, dl.S1, dl.S2, b.Length)
	}
	l.BarDistLoads[b] = append(l.BarDistLoads[b], dl)
	return nil
}
