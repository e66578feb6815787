package fem

import (
	"github.com/lidaltonlima/go-frame3d/model"
)

// Displacements returns the six global displacement components of the named
// node under the named load case.
func (a *Analysis) Displacements(nodeName, caseName string) ([6]float64, error) {
	var out [6]float64
	node, ok := a.domain.nodeByName[nodeName]
	if !ok {
		return out, wrapUnknown("node %q", nodeName)
	}
	res, ok := a.results[caseName]
	if !ok {
		return out, wrapUnknown("load case %q", caseName)
	}
	base := 6 * a.domain.nodeIdx[node]
	for k := 0; k < 6; k++ {
		out[k] = res.displacements[base+k]
	}
	return out, nil
}

// Reactions returns the six global reaction components of the named node
// under the named load case. Free (unrestrained) DOFs are always zero.
func (a *Analysis) Reactions(nodeName, caseName string) ([6]float64, error) {
	var out [6]float64
	node, ok := a.domain.nodeByName[nodeName]
	if !ok {
		return out, wrapUnknown("node %q", nodeName)
	}
	res, ok := a.results[caseName]
	if !ok {
		return out, wrapUnknown("load case %q", caseName)
	}
	base := 6 * a.domain.nodeIdx[node]
	for k := 0; k < 6; k++ {
		out[k] = res.reactions[base+k]
	}
	return out, nil
}

// EndForces returns the twelve local end-force components (i-end Fx,Fy,Fz,
// Mx,My,Mz followed by j-end Fx,Fy,Fz,Mx,My,Mz) of the named bar under the
// named load case.
func (a *Analysis) EndForces(barName, caseName string) ([12]float64, error) {
	var out [12]float64
	if _, ok := a.domain.barByName[barName]; !ok {
		return out, wrapUnknown("bar %q", barName)
	}
	res, ok := a.results[caseName]
	if !ok {
		return out, wrapUnknown("load case %q", caseName)
	}
	forces, ok := res.endForces[barName]
	if !ok {
		return out, wrapUnknown("bar %q", barName)
	}
	return forces, nil
}

func wrapUnknown(format string, args ...interface{}) error {
	return model.WrapUnknownEntity(format, args...)
}
