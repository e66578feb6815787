// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"
	"sync"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/lidaltonlima/go-frame3d/ele"
	"github.com/lidaltonlima/go-frame3d/model"
)

// minDet is the minimum |determinant| the global solve accepts before
// reporting the system as singular (under-constrained structure).
const minDet = 1e-10

// endForceSigns converts the bar-end-force vector computed in the klg/local
// convention into the reported sign convention (Fx and Mz reversed at the
// i-end; Fy, Fz, Mx and My reversed at the j-end).
var endForceSigns = [12]float64{-1, 1, 1, 1, 1, -1, 1, -1, -1, -1, -1, 1}

// caseResult holds one load case's solved state.
type caseResult struct {
	displacements []float64
	reactions     []float64
	endForces     map[string][12]float64 // by bar name
}

// Analysis solves a prepared Domain for one or more load cases and answers
// displacement/reaction/end-force queries by name.
type Analysis struct {
	domain    *Domain
	restrained []bool
	results   map[string]*caseResult
}

// NewAnalysis prepares the domain (element stiffnesses, global assembly,
// boundary conditions) and returns an Analysis ready to run load cases.
func NewAnalysis(d *Domain) *Analysis {
	d.Prepare()
	d.ApplyBoundaryConditions()
	restrained := make([]bool, d.Order())
	if d.support != nil {
		for _, node := range d.support.Nodes() {
			entries, _ := d.support.Entries(node)
			base := 6 * d.nodeIdx[node]
			for k, e := range entries {
				if e.Kind != model.Free {
					restrained[base+k] = true
				}
			}
		}
	}
	return &Analysis{domain: d, restrained: restrained, results: make(map[string]*caseResult)}
}

// Run solves each load case sequentially.
func (a *Analysis) Run(cases ...*model.Load) error {
	for _, c := range cases {
		res, err := a.solveCase(c)
		if err != nil {
			return err
		}
		a.results[c.Name] = res
	}
	return nil
}

// RunConcurrent solves the given load cases in parallel, one goroutine per
// case. Kg/KgSolution are read-only once the Domain has been prepared, so
// cases touch no shared mutable state; each writes its own result slot.
// Produces bit-identical results to Run.
func (a *Analysis) RunConcurrent(cases ...*model.Load) error {
	results := make([]*caseResult, len(cases))
	errs := make([]error, len(cases))
	var wg sync.WaitGroup
	for i, c := range cases {
		wg.Add(1)
		go func(i int, c *model.Load) {
			defer wg.Done()
			res, err := a.solveCase(c)
			results[i] = res
			errs[i] = err
		}(i, c)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			return err
		}
		a.results[cases[i].Name] = results[i]
	}
	return nil
}

func (a *Analysis) solveCase(load *model.Load) (*caseResult, error) {
	d := a.domain
	n := d.Order()
	f := make([]float64, n)

	for node, loads := range load.NodeLoads {
		base := 6 * d.nodeIdx[node]
		for _, nl := range loads {
			f[base+0] += nl.Fx
			f[base+1] += nl.Fy
			f[base+2] += nl.Fz
			f[base+3] += nl.Mx
			f[base+4] += nl.My
			f[base+5] += nl.Mz
		}
	}

	// equivLoads is local to this call (never written to the shared *Bar),
	// so solving load cases concurrently touches no shared mutable state.
	equivLoads := make(map[string][]float64, len(d.bars))
	for _, bar := range d.bars {
		pls := load.BarPointLoads[bar]
		dls := load.BarDistLoads[bar]
		if len(pls) == 0 && len(dls) == 0 {
			continue
		}
		vec := ele.EquivalentLoadVector(bar, pls, dls)
		equivLoads[bar.Name] = vec
		sv := d.spreadVector(bar)
		for i := 0; i < 12; i++ {
			f[sv[i]] += vec[i]
		}
	}

	u := make([]float64, n)
	kgSolutionInv := la.MatAlloc(n, n)
	det, err := la.MatInv(kgSolutionInv, d.KgSolution, minDet)
	if err != nil || det == 0 {
		return nil, fmt.Errorf("load case %q: %w", load.Name, model.ErrSingularMatrix)
	}
	la.MatVecMul(u, 1, kgSolutionInv, f)

	reactions := make([]float64, n)
	la.MatVecMul(reactions, 1, d.Kg, u)
	for i := 0; i < n; i++ {
		reactions[i] -= f[i]
		if !a.restrained[i] {
			reactions[i] = 0
		}
	}

	endForces := make(map[string][12]float64, len(d.bars))
	for _, bar := range d.bars {
		equivLoad := equivLoads[bar.Name] // nil (zero) when the bar carries no load in this case
		sv := d.spreadVector(bar)
		var uBar [12]float64
		for i := 0; i < 12; i++ {
			uBar[i] = u[sv[i]]
		}
		var global [12]float64
		for i := 0; i < 12; i++ {
			var sum float64
			for j := 0; j < 12; j++ {
				sum += bar.Klg[i][j] * uBar[j]
			}
			global[i] = sum
			if i < len(equivLoad) {
				global[i] -= equivLoad[i]
			}
		}
		var local [12]float64
		for i := 0; i < 12; i++ {
			var sum float64
			for j := 0; j < 12; j++ {
				sum += bar.R[i][j] * global[j]
			}
			local[i] = sum * endForceSigns[i]
		}
		endForces[bar.Name] = local
	}

	io.Pfgrey("fem: load case %q solved (%d equations)\n", load.Name, n)

	return &caseResult{displacements: u, reactions: reactions, endForces: endForces}, nil
}
