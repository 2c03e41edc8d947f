// Copyright 2026 The Eagle West Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/OilCoder/reservoir-simulation-sub006/inp"
)

// GasTable builds the N×4 gas PVT table with columns [pressure, Rv, Bg, viscosity].
// Rv is zero (dry gas) unless rv_dry_gas is configured, in which case that
// constant is broadcast across all rows. Input viscosity is given in [cp] and
// converted to [Pa·s]. bg_values and viscosity_values must match the pressure
// array length; any mismatch is a hard failure naming the offending table.
func GasTable(cfg *inp.Config) (table [][]float64, err error) {

	// input arrays
	if cfg == nil || cfg.FluidProperties == nil {
		return nil, chk.Err("fluid_properties is missing in configuration; update fluid_properties_config.yaml")
	}
	fp := cfg.FluidProperties
	if fp.GasBgPressureTable == nil || fp.GasViscosityTable == nil {
		return nil, chk.Err("gas tables (gas_bg_pressure_table, gas_viscosity_table) are incomplete; update fluid_properties_config.yaml")
	}
	p := fp.GasBgPressureTable.Pressures
	bg := fp.GasBgPressureTable.BgValues
	mu := fp.GasViscosityTable.ViscosityValues

	// length consistency
	n := len(p)
	if len(bg) != n {
		return nil, chk.Err("gas_bg_pressure_table is inconsistent: len(bg_values)=%d != len(pressures)=%d", len(bg), n)
	}
	if len(mu) != n {
		return nil, chk.Err("gas_viscosity_table is inconsistent: len(viscosity_values)=%d != len(pressures)=%d", len(mu), n)
	}

	// vaporised oil-gas ratio
	rv := 0.0
	if fp.RvDryGas != nil {
		rv = *fp.RvDryGas
	}

	// pack columns
	table = utl.Alloc(n, 4)
	for i := 0; i < n; i++ {
		table[i][0] = p[i]
		table[i][1] = rv
		table[i][2] = bg[i]
		table[i][3] = mu[i] * CpToPaS
	}
	return
}
