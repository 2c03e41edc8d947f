// Copyright 2026 The Eagle West Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a fluid properties YAML file
package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// OilBoTable holds tabulated oil formation volume factors indexed by pressure
type OilBoTable struct {
	Pressures []float64 `yaml:"pressures"` // tabulated pressures
	BoValues  []float64 `yaml:"bo_values"` // Bo at each pressure [-]
}

// GorTable holds tabulated solution gas-oil ratios
type GorTable struct {
	RsValues []float64 `yaml:"rs_values"` // Rs at each oil table pressure
}

// ViscTable holds tabulated viscosities
type ViscTable struct {
	ViscosityValues []float64 `yaml:"viscosity_values"` // viscosity at each table pressure
}

// WaterBwTable holds tabulated water formation volume factors
type WaterBwTable struct {
	Pressures []float64 `yaml:"pressures"` // tabulated pressures
	BwValues  []float64 `yaml:"bw_values"` // Bw at each pressure [-]
}

// CwTable holds tabulated water compressibilities
type CwTable struct {
	CwValues []float64 `yaml:"cw_values"` // compressibility at each pressure [1/psi]
}

// GasBgTable holds tabulated gas formation volume factors
type GasBgTable struct {
	Pressures []float64 `yaml:"pressures"` // tabulated pressures
	BgValues  []float64 `yaml:"bg_values"` // Bg at each pressure [-]
}

// WaterProps holds scalar water properties
type WaterProps struct {
	WaterViscosity     float64 `yaml:"water_viscosity"`     // reference viscosity [cp]
	WaterViscosibility float64 `yaml:"water_viscosibility"` // dμw/dp; typically 0
}

// FluidProperties holds all fluid data required to build the black-oil PVT tables.
// Table sub-records are pointers so that a missing key is distinguishable from an
// empty one; there are no default values (canon must specify exact values).
type FluidProperties struct {

	// oil
	OilBoPressureTable *OilBoTable `yaml:"oil_bo_pressure_table"`
	SolutionGorTable   *GorTable   `yaml:"solution_gor_table"`
	OilViscosityTable  *ViscTable  `yaml:"oil_viscosity_table"`

	// water
	WaterBwPressureTable      *WaterBwTable `yaml:"water_bw_pressure_table"`
	WaterCompressibilityTable *CwTable      `yaml:"water_compressibility_table"`
	WaterProperties           WaterProps    `yaml:"water_properties"`

	// gas
	GasBgPressureTable *GasBgTable `yaml:"gas_bg_pressure_table"`
	GasViscosityTable  *ViscTable  `yaml:"gas_viscosity_table"`
	RvDryGas           *float64    `yaml:"rv_dry_gas"` // constant Rv; nil => dry gas (Rv = 0)

	// scalars
	InitialReservoirPressure float64 `yaml:"initial_reservoir_pressure"` // reference pressure for water PVT
	SurfaceTemperature       float64 `yaml:"surface_temperature"`        // [°F]
	SurfacePressure          float64 `yaml:"surface_pressure"`           // [psia]

	// opaque model configuration; passed through verbatim, nil when absent
	MRSTFluidConfig map[string]interface{} `yaml:"mrst_fluid_config"`
}

// Config holds the configuration record read from fluid_properties_config.yaml
type Config struct {
	FluidProperties *FluidProperties `yaml:"fluid_properties"`
}

// ReadConfig reads the configuration record from a YAML file
func ReadConfig(fn string) (cfg *Config, err error) {
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("ReadConfig: cannot read configuration file %q", fn)
	}
	cfg = new(Config)
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, chk.Err("ReadConfig: config must be a mapping; cannot parse %q:\n%v", fn, err)
	}
	return
}

// String returns a compact rendering of the configuration for debugging
func (o *Config) String() string {
	if o == nil || o.FluidProperties == nil {
		return "{}"
	}
	fp := o.FluidProperties
	l := "fluid_properties:\n"
	if fp.OilBoPressureTable != nil {
		l += io.Sf("  oil_bo_pressure_table    : %d points\n", len(fp.OilBoPressureTable.Pressures))
	}
	if fp.WaterBwPressureTable != nil {
		l += io.Sf("  water_bw_pressure_table  : %d points\n", len(fp.WaterBwPressureTable.Pressures))
	}
	if fp.GasBgPressureTable != nil {
		l += io.Sf("  gas_bg_pressure_table    : %d points\n", len(fp.GasBgPressureTable.Pressures))
	}
	l += io.Sf("  initial_reservoir_pressure : %g\n", fp.InitialReservoirPressure)
	l += io.Sf("  surface_temperature        : %g [°F]\n", fp.SurfaceTemperature)
	l += io.Sf("  surface_pressure           : %g [psia]\n", fp.SurfacePressure)
	return l
}
