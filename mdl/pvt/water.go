// Copyright 2026 The Eagle West Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"github.com/cpmech/gosl/chk"

	"github.com/OilCoder/reservoir-simulation-sub006/inp"
)

// WaterTable builds the single-row water PVT record
//
//	[p_ref, Bw_ref, cw, μw, dμw/dp]
//
// Water is slightly compressible and represented by one reference state rather
// than a pressure table. The reference pressure is the configured initial
// reservoir pressure (not the water table's own first entry) so that the water
// reference state matches the reservoir initial conditions. Input viscosity is
// given in [cp] and compressibility in [1/psi]; both are converted to SI.
func WaterTable(cfg *inp.Config) (row []float64, err error) {

	// input data
	if cfg == nil || cfg.FluidProperties == nil {
		return nil, chk.Err("fluid_properties is missing in configuration; update fluid_properties_config.yaml")
	}
	fp := cfg.FluidProperties
	if fp.WaterBwPressureTable == nil || fp.WaterCompressibilityTable == nil {
		return nil, chk.Err("water tables (water_bw_pressure_table, water_compressibility_table) are incomplete; update fluid_properties_config.yaml")
	}
	if len(fp.WaterBwPressureTable.BwValues) < 1 {
		return nil, chk.Err("water_bw_pressure_table.bw_values is empty; update fluid_properties_config.yaml")
	}
	if len(fp.WaterCompressibilityTable.CwValues) < 1 {
		return nil, chk.Err("water_compressibility_table.cw_values is empty; update fluid_properties_config.yaml")
	}

	// reference state with unit conversion
	pref := fp.InitialReservoirPressure
	bw := fp.WaterBwPressureTable.BwValues[0]
	cw := fp.WaterCompressibilityTable.CwValues[0] / PsiToPa
	mu := fp.WaterProperties.WaterViscosity * CpToPaS
	row = []float64{pref, bw, cw, mu, fp.WaterProperties.WaterViscosibility}
	return
}
