// Copyright 2026 The Eagle West Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/OilCoder/reservoir-simulation-sub006/inp"
	"github.com/OilCoder/reservoir-simulation-sub006/mdl/pvt"
)

// testConfig returns a minimal valid configuration
func testConfig() *inp.Config {
	return &inp.Config{
		FluidProperties: &inp.FluidProperties{
			OilBoPressureTable: &inp.OilBoTable{
				Pressures: []float64{500, 1000, 1500},
				BoValues:  []float64{1.1, 1.15, 1.2},
			},
			SolutionGorTable:  &inp.GorTable{RsValues: []float64{100, 150, 200}},
			OilViscosityTable: &inp.ViscTable{ViscosityValues: []float64{1.0, 0.9, 0.8}},
			WaterBwPressureTable: &inp.WaterBwTable{
				Pressures: []float64{500},
				BwValues:  []float64{1.01},
			},
			WaterCompressibilityTable: &inp.CwTable{CwValues: []float64{3e-6}},
			WaterProperties:           inp.WaterProps{WaterViscosity: 0.5, WaterViscosibility: 0},
			GasBgPressureTable: &inp.GasBgTable{
				Pressures: []float64{500, 1000},
				BgValues:  []float64{0.01, 0.008},
			},
			GasViscosityTable:        &inp.ViscTable{ViscosityValues: []float64{0.02, 0.018}},
			InitialReservoirPressure: 1000,
			SurfaceTemperature:       77,
			SurfacePressure:          14.7,
		},
	}
}

func Test_assemble01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assemble01. full pipeline happy path")

	cfg := testConfig()
	err := cfg.Validate()
	if err != nil {
		tst.Errorf("validation failed:\n%v", err)
		return
	}

	oil, err := pvt.OilTable(cfg)
	if err != nil {
		tst.Errorf("cannot build oil table:\n%v", err)
		return
	}
	water, err := pvt.WaterTable(cfg)
	if err != nil {
		tst.Errorf("cannot build water table:\n%v", err)
		return
	}
	gas, err := pvt.GasTable(cfg)
	if err != nil {
		tst.Errorf("cannot build gas table:\n%v", err)
		return
	}

	fld := Assemble(nil, oil, water, gas, cfg)
	io.Pforan("surface = %+v\n", fld.Surface)

	chk.IntAssert(len(fld.Oil), 3)
	chk.IntAssert(len(fld.Oil[0]), 4)
	chk.IntAssert(len(fld.Water), 5)
	chk.Scalar(tst, "water[0]", 1e-17, fld.Water[0], 1000)
	chk.IntAssert(len(fld.Gas), 2)
	chk.IntAssert(len(fld.Gas[0]), 4)
	chk.Scalar(tst, "temperature", 1e-12, fld.Surface.TempK, 298.15)
	chk.Scalar(tst, "pressure", 1e-8, fld.Surface.PressPa, 101352.972)
	if fld.MRSTConfig != nil {
		tst.Errorf("model configuration must be absent when not configured\n")
	}
}

func Test_assemble02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assemble02. surface condition conversions")

	cfg := testConfig()
	cfg.FluidProperties.SurfaceTemperature = 32 // [°F]
	cfg.FluidProperties.SurfacePressure = 1     // [psia]
	fld := Assemble(nil, nil, nil, nil, cfg)
	chk.Scalar(tst, "32°F", 1e-17, fld.Surface.TempK, 273.15)
	chk.Scalar(tst, "1 psia", 1e-17, fld.Surface.PressPa, 6894.76)

	cfg.FluidProperties.SurfaceTemperature = 212
	fld = Assemble(nil, nil, nil, nil, cfg)
	chk.Scalar(tst, "212°F", 1e-13, fld.Surface.TempK, 373.15)
}

func Test_assemble03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assemble03. passthrough of SCAL and model configuration")

	cfg := testConfig()
	cfg.FluidProperties.MRSTFluidConfig = map[string]interface{}{"model": "blackoil", "np": 50}
	scal := &Scal{
		Saturations: []float64{0.2, 0.5, 0.8},
		Krw:         []float64{0, 0.2, 0.6},
		Kro:         []float64{0.8, 0.3, 0},
		Pcow:        []float64{0, 0, 0},
		KrwFcn:      func(sw float64) float64 { return sw * sw },
	}

	fld := Assemble(scal, nil, nil, nil, cfg)
	if fld.Scal != scal {
		tst.Errorf("SCAL record must be carried through unmodified\n")
		return
	}
	if fld.MRSTConfig == nil {
		tst.Errorf("model configuration must be attached verbatim\n")
		return
	}
	chk.StrAssert(fld.MRSTConfig["model"].(string), "blackoil")
	chk.Scalar(tst, "krw_fcn(0.5)", 1e-17, fld.Scal.KrwFcn(0.5), 0.25)
}
