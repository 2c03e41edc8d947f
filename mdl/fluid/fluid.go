// Copyright 2026 The Eagle West Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements the composite black-oil fluid record assembled from
// the per-phase PVT tables, the surface conditions and the SCAL passthrough
package fluid

import (
	"github.com/OilCoder/reservoir-simulation-sub006/inp"
	"github.com/OilCoder/reservoir-simulation-sub006/mdl/pvt"
)

// SatFunc computes a saturation dependent property
type SatFunc func(sw float64) float64

// Scal holds capillary pressure and relative permeability data supplied by
// upstream (out of scope) code and carried through unmodified. The function
// fields are optional callables attached upstream; they are not serializable
// and are replaced by tagged descriptors on export.
type Scal struct {

	// tabulated data
	Saturations []float64 // water saturation points
	Krw         []float64 // water relative permeability at each saturation
	Kro         []float64 // oil relative permeability at each saturation
	Pcow        []float64 // oil-water capillary pressure at each saturation

	// optional callables
	KrwFcn  SatFunc // krw(sw)
	KroFcn  SatFunc // kro(sw)
	PcowFcn SatFunc // pcow(sw)
}

// Surface holds surface conditions derived from configuration
type Surface struct {
	TempK   float64 // temperature [K]
	PressPa float64 // pressure [Pa]
}

// Blackoil is the composite fluid record. It is created once per simulation
// setup run, is immutable after assembly, and is consumed by the simulation
// engine and the exporter.
type Blackoil struct {
	Scal    *Scal       // SCAL passthrough; may be nil when upstream supplies none
	Oil     [][]float64 // [n][4]: pressure, Rs, Bo, viscosity
	Water   []float64   // [5]: p_ref, Bw_ref, cw, viscosity, dμw/dp
	Gas     [][]float64 // [n][4]: pressure, Rv, Bg, viscosity
	Surface Surface     // surface conditions

	// opaque model configuration; nil when absent from configuration
	MRSTConfig map[string]interface{}
}

// Assemble merges the three phase tables, the surface conditions and the SCAL
// passthrough into one composite fluid record. No validation happens here;
// Validate must have run on the configuration first.
func Assemble(scal *Scal, oil [][]float64, water []float64, gas [][]float64, cfg *inp.Config) *Blackoil {
	fp := cfg.FluidProperties
	fld := &Blackoil{
		Scal:  scal,
		Oil:   oil,
		Water: water,
		Gas:   gas,
		Surface: Surface{
			TempK:   pvt.FahrToKelvin(fp.SurfaceTemperature),
			PressPa: pvt.PsiaToPa(fp.SurfacePressure),
		},
	}
	if fp.MRSTFluidConfig != nil {
		fld.MRSTConfig = fp.MRSTFluidConfig
	}
	return fld
}
