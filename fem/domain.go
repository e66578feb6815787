// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fem assembles bars into a global stiffness system, solves each
// load case, and answers displacement/reaction/end-force queries.
package fem

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/lidaltonlima/go-frame3d/ele"
	"github.com/lidaltonlima/go-frame3d/model"
)

// penaltyStiffness is added to the diagonal of a restrained DOF that has no
// explicit spring value.
const penaltyStiffness = 1e25

// Domain owns the nodes, bars and supports of one structure and builds the
// global stiffness system from them. DOF numbering is 6 consecutive
// equations per node, in the order nodes were added, each node ordered
// Dx,Dy,Dz,Rx,Ry,Rz.
type Domain struct {
	YUp bool // true selects the y-up auxiliary-point convention in ele.RotationMatrix; false (default) selects z-up

	nodes      []*model.Node
	nodeIdx    map[*model.Node]int
	nodeByName map[string]*model.Node

	bars      []*model.Bar
	barByName map[string]*model.Bar

	support *model.Support

	Kg         [][]float64
	KgSolution [][]float64
}

// NewDomain validates and builds a Domain from the given nodes, bars and
// supports. Every bar's start/end node and every supported node must be one
// of nodes, else an UnknownEntity error is returned.
func NewDomain(nodes []*model.Node, bars []*model.Bar, support *model.Support) (*Domain, error) {
	d := &Domain{
		nodes:      nodes,
		nodeIdx:    make(map[*model.Node]int, len(nodes)),
		nodeByName: make(map[string]*model.Node, len(nodes)),
		bars:       bars,
		barByName:  make(map[string]*model.Bar, len(bars)),
		support:    support,
	}
	for i, n := range nodes {
		d.nodeIdx[n] = i
		d.nodeByName[n.Name] = n
	}
	for _, b := range bars {
		if _, ok := d.nodeIdx[b.Start]; !ok {
			return nil, model.ErrUnknownEntity
		}
		if _, ok := d.nodeIdx[b.End]; !ok {
			return nil, model.ErrUnknownEntity
		}
		d.barByName[b.Name] = b
	}
	if support != nil {
		for _, n := range support.Nodes() {
			if _, ok := d.nodeIdx[n]; !ok {
				return nil, model.ErrUnknownEntity
			}
		}
	}
	return d, nil
}

// Order returns the size of the global system: six DOFs per node.
func (d *Domain) Order() int {
	return 6 * len(d.nodes)
}

// spreadVector returns the twelve global equation numbers of bar's local
// DOFs, i-end block (0..5) followed by j-end block (6..11).
func (d *Domain) spreadVector(bar *model.Bar) [12]int {
	var sv [12]int
	ni := 6 * d.nodeIdx[bar.Start]
	nj := 6 * d.nodeIdx[bar.End]
	for k := 0; k < 6; k++ {
		sv[k] = ni + k
		sv[6+k] = nj + k
	}
	return sv
}

// Prepare computes every bar's local/global stiffness (ele.Prepare) and
// assembles the global stiffness matrix Kg.
func (d *Domain) Prepare() {
	d.logSummary()
	n := d.Order()
	d.Kg = la.MatAlloc(n, n)
	for _, bar := range d.bars {
		ele.Prepare(bar, d.YUp)
		sv := d.spreadVector(bar)
		for i := 0; i < 12; i++ {
			for j := 0; j < 12; j++ {
				d.Kg[sv[i]][sv[j]] += bar.Klg[i][j]
			}
		}
	}
}

// ApplyBoundaryConditions builds KgSolution from Kg by adding a diagonal
// penalty (or the spring stiffness) at every restrained DOF.
func (d *Domain) ApplyBoundaryConditions() {
	n := d.Order()
	d.KgSolution = la.MatAlloc(n, n)
	la.MatCopy(d.KgSolution, 1, d.Kg)
	if d.support == nil {
		return
	}
	for _, node := range d.support.Nodes() {
		entries, _ := d.support.Entries(node)
		base := 6 * d.nodeIdx[node]
		for k, e := range entries {
			switch e.Kind {
			case model.Rigid:
				d.KgSolution[base+k][base+k] += penaltyStiffness
			case model.Spring:
				d.KgSolution[base+k][base+k] += e.Stiffness
			}
		}
	}
}

// ApplyBoundaryConditionsByElimination is an alternative to
// ApplyBoundaryConditions: instead of a diagonal penalty it clears the
// restrained rows/columns of Kg and places a 1 on their diagonal, the
// classical row/column-elimination partitioning. Springs are still added to
// the diagonal before any rows are cleared. Provided because both schemes
// are common in practice; they agree to high precision away from the
// penalty value's own rounding noise.
func (d *Domain) ApplyBoundaryConditionsByElimination() {
	n := d.Order()
	d.KgSolution = la.MatAlloc(n, n)
	la.MatCopy(d.KgSolution, 1, d.Kg)
	if d.support == nil {
		return
	}
	for _, node := range d.support.Nodes() {
		entries, _ := d.support.Entries(node)
		base := 6 * d.nodeIdx[node]
		for k, e := range entries {
			switch e.Kind {
			case model.Spring:
				d.KgSolution[base+k][base+k] += e.Stiffness
			case model.Rigid:
				eq := base + k
				for j := 0; j < n; j++ {
					d.KgSolution[eq][j] = 0
					d.KgSolution[j][eq] = 0
				}
				d.KgSolution[eq][eq] = 1
			}
		}
	}
}

func (d *Domain) logSummary() {
	io.Pf("fem: domain with %d nodes, %d bars, %d equations\n", len(d.nodes), len(d.bars), d.Order())
}
