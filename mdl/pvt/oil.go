// Copyright 2026 The Eagle West Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/OilCoder/reservoir-simulation-sub006/inp"
)

// OilTable builds the N×4 oil PVT table with columns [pressure, Rs, Bo, viscosity].
// Rows follow the configuration order (ascending pressure by upstream contract;
// no re-sorting is performed). Pressures and viscosities are taken as already in
// simulation-consistent units. The four input arrays must share one length;
// any mismatch is a hard failure naming the inconsistent table.
func OilTable(cfg *inp.Config) (table [][]float64, err error) {

	// input arrays; Validate should have run first, but missing data is still
	// caught here so that a skipped validation cannot produce a partial table
	if cfg == nil || cfg.FluidProperties == nil {
		return nil, chk.Err("fluid_properties is missing in configuration; update fluid_properties_config.yaml")
	}
	fp := cfg.FluidProperties
	if fp.OilBoPressureTable == nil || fp.SolutionGorTable == nil || fp.OilViscosityTable == nil {
		return nil, chk.Err("oil tables (oil_bo_pressure_table, solution_gor_table, oil_viscosity_table) are incomplete; update fluid_properties_config.yaml")
	}
	p := fp.OilBoPressureTable.Pressures
	bo := fp.OilBoPressureTable.BoValues
	rs := fp.SolutionGorTable.RsValues
	mu := fp.OilViscosityTable.ViscosityValues

	// length consistency
	n := len(p)
	if len(bo) != n {
		return nil, chk.Err("oil_bo_pressure_table is inconsistent: len(bo_values)=%d != len(pressures)=%d", len(bo), n)
	}
	if len(rs) != n {
		return nil, chk.Err("solution_gor_table is inconsistent: len(rs_values)=%d != len(pressures)=%d", len(rs), n)
	}
	if len(mu) != n {
		return nil, chk.Err("oil_viscosity_table is inconsistent: len(viscosity_values)=%d != len(pressures)=%d", len(mu), n)
	}

	// pack columns
	table = utl.Alloc(n, 4)
	for i := 0; i < n; i++ {
		table[i][0] = p[i]
		table[i][1] = rs[i]
		table[i][2] = bo[i]
		table[i][3] = mu[i]
	}
	return
}
