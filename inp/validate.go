// Copyright 2026 The Eagle West Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
)

// Validate gate-keeps malformed or incomplete configuration before any numeric
// work happens. Preconditions are checked in a fixed order and the first failure
// stops the pipeline with a message naming the missing key and the configuration
// file that must define it. There is no default-value fallback.
func (o *Config) Validate() (err error) {

	// structural type
	if o == nil {
		return chk.Err("config must be a mapping")
	}

	// top-level key
	if o.FluidProperties == nil {
		return chk.Err("fluid_properties is missing in configuration; update fluid_properties_config.yaml")
	}
	fp := o.FluidProperties

	// oil keys
	if fp.OilBoPressureTable == nil {
		return chk.Err("fluid_properties.oil_bo_pressure_table is missing; update fluid_properties_config.yaml")
	}
	if fp.SolutionGorTable == nil {
		return chk.Err("fluid_properties.solution_gor_table is missing; update fluid_properties_config.yaml")
	}
	if fp.OilViscosityTable == nil {
		return chk.Err("fluid_properties.oil_viscosity_table is missing; update fluid_properties_config.yaml")
	}

	// oil pressure table contents
	if fp.OilBoPressureTable.Pressures == nil {
		return chk.Err("oil_bo_pressure_table.pressures is missing; update fluid_properties_config.yaml")
	}
	if fp.OilBoPressureTable.BoValues == nil {
		return chk.Err("oil_bo_pressure_table.bo_values is missing; update fluid_properties_config.yaml")
	}
	np, nb := len(fp.OilBoPressureTable.Pressures), len(fp.OilBoPressureTable.BoValues)
	if np != nb {
		return chk.Err("oil_bo_pressure_table arrays are inconsistent: len(pressures)=%d != len(bo_values)=%d; fix fluid_properties_config.yaml", np, nb)
	}

	// water keys
	if fp.WaterBwPressureTable == nil {
		return chk.Err("fluid_properties.water_bw_pressure_table is missing; update fluid_properties_config.yaml")
	}
	if fp.WaterBwPressureTable.Pressures == nil {
		return chk.Err("water_bw_pressure_table.pressures is missing; update fluid_properties_config.yaml")
	}
	if fp.WaterBwPressureTable.BwValues == nil {
		return chk.Err("water_bw_pressure_table.bw_values is missing; update fluid_properties_config.yaml")
	}
	if fp.WaterCompressibilityTable == nil {
		return chk.Err("fluid_properties.water_compressibility_table is missing; update fluid_properties_config.yaml")
	}

	// gas keys
	if fp.GasBgPressureTable == nil {
		return chk.Err("fluid_properties.gas_bg_pressure_table is missing; update fluid_properties_config.yaml")
	}
	if fp.GasBgPressureTable.Pressures == nil {
		return chk.Err("gas_bg_pressure_table.pressures is missing; update fluid_properties_config.yaml")
	}
	if fp.GasBgPressureTable.BgValues == nil {
		return chk.Err("gas_bg_pressure_table.bg_values is missing; update fluid_properties_config.yaml")
	}
	if fp.GasViscosityTable == nil {
		return chk.Err("fluid_properties.gas_viscosity_table is missing; update fluid_properties_config.yaml")
	}
	return
}
