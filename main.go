// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command go-frame3d is a minimal demonstration of the library: it builds a
// two-node cantilever, solves one load case, and prints displacements,
// reactions and end forces.
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/lidaltonlima/go-frame3d/fem"
	"github.com/lidaltonlima/go-frame3d/model"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\ngo-frame3d -- 3D frame direct-stiffness solver\n\n")

	n1 := model.NewNode("n1", 0, 0, 0)
	n2 := model.NewNode("n2", 5, 0, 0)

	sec, err := model.NewSection("W200x", 1.63e-3, 1e-6, 8.28e-7, 8.28e-7)
	if err != nil {
		chk.Panic("%v", err)
	}
	mat, err := model.NewMaterial("steel", 2e11, 7.692308e10, 0.3, 7850)
	if err != nil {
		chk.Panic("%v", err)
	}
	bar, err := model.NewBar("b1", n1, n2, sec, mat, 0, model.Releases{})
	if err != nil {
		chk.Panic("%v", err)
	}

	sup := model.NewSupport()
	if err := sup.AddFixed(n1); err != nil {
		chk.Panic("%v", err)
	}

	dom, err := fem.NewDomain([]*model.Node{n1, n2}, []*model.Bar{bar}, sup)
	if err != nil {
		chk.Panic("%v", err)
	}
	analysis := fem.NewAnalysis(dom)

	tip := model.NewLoad("tip-load")
	tip.AddNodeLoad(n2, model.NodeLoad{Fy: 1000})
	if err := analysis.Run(tip); err != nil {
		chk.Panic("%v", err)
	}

	u2, err := analysis.Displacements("n2", "tip-load")
	if err != nil {
		chk.Panic("%v", err)
	}
	r1, err := analysis.Reactions("n1", "tip-load")
	if err != nil {
		chk.Panic("%v", err)
	}
	forces, err := analysis.EndForces("b1", "tip-load")
	if err != nil {
		chk.Panic("%v", err)
	}

	io.Pf("n2 displacements: Dy=%v Rz=%v\n", u2[1], u2[5])
	io.Pf("n1 reactions:     Fy=%v Mz=%v\n", r1[1], r1[5])
	io.Pf("b1 end forces:    i-end Fy=%v Mz=%v, j-end Fy=%v Mz=%v\n", forces[1], forces[5], forces[7], forces[11])
}
