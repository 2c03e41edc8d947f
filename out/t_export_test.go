// Copyright 2026 The Eagle West Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/OilCoder/reservoir-simulation-sub006/mdl/fluid"
)

// testFluid returns a complete fluid record
func testFluid() *fluid.Blackoil {
	return &fluid.Blackoil{
		Scal: &fluid.Scal{
			Saturations: []float64{0.2, 0.5, 0.8},
			Krw:         []float64{0, 0.2, 0.6},
			Kro:         []float64{0.8, 0.3, 0},
			Pcow:        []float64{0, 0, 0},
		},
		Oil: [][]float64{
			{500, 100, 1.1, 1.0},
			{1000, 150, 1.15, 0.9},
			{1500, 200, 1.2, 0.8},
		},
		Water: []float64{1000, 1.01, 4.3511e-10, 5e-4, 0},
		Gas: [][]float64{
			{500, 0, 0.01, 2e-5},
			{1000, 0, 0.008, 1.8e-5},
		},
		Surface: fluid.Surface{TempK: 298.15, PressPa: 101352.972},
	}
}

func Test_export01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("export01. canonical, legacy and summary outputs")

	root := "/tmp/eaglewest/export01"
	os.RemoveAll(root)

	fld := testFluid()
	err := Export(fld, root, Options{})
	if err != nil {
		tst.Errorf("export failed:\n%v", err)
		return
	}

	// canonical record via registry
	can, err := ReadCanonical(root, "json")
	if err != nil {
		tst.Errorf("cannot read canonical record:\n%v", err)
		return
	}
	io.Pforan("pressure_table = %v\n", can.PressureTable)
	chk.Vector(tst, "pressure_table", 1e-17, can.PressureTable, []float64{500, 1000, 1500})
	chk.Vector(tst, "oil_fvf", 1e-17, can.OilFvf, []float64{1.1, 1.15, 1.2})
	chk.Vector(tst, "oil_viscosity", 1e-17, can.OilViscosity, []float64{1.0, 0.9, 0.8})
	chk.Scalar(tst, "water_fvf", 1e-17, can.WaterFvf, 1.01)
	chk.Scalar(tst, "water_viscosity", 1e-17, can.WaterViscosity, 5e-4)
	chk.Scalar(tst, "oil_density", 1e-17, can.OilDensity, 850)
	chk.Scalar(tst, "water_density", 1e-17, can.WaterDensity, 1000)
	chk.Scalar(tst, "connate_water_sat", 1e-17, can.ConnateWaterSat, 0.15)
	chk.Scalar(tst, "residual_oil_sat", 1e-17, can.ResidualOilSat, 0.2)
	chk.Vector(tst, "saturation_table", 1e-17, can.SaturationTable, []float64{0.2, 0.5, 0.8})
	if can.Fluid == nil {
		tst.Errorf("canonical record must nest the full fluid record\n")
		return
	}

	// legacy full record
	b, err := os.ReadFile(filepath.Join(root, LegacyDir, LegacyFluidFnk+".json"))
	if err != nil {
		tst.Errorf("legacy record was not written:\n%v", err)
		return
	}
	var rec FullRecord
	err = json.Unmarshal(b, &rec)
	if err != nil {
		tst.Errorf("cannot parse legacy record:\n%v", err)
		return
	}
	chk.Vector(tst, "legacy water", 1e-17, rec.Water, fld.Water)

	// summary report
	b, err = os.ReadFile(filepath.Join(root, LegacyDir, SummaryFilename))
	if err != nil {
		tst.Errorf("summary report was not written:\n%v", err)
		return
	}
	txt := string(b)
	io.Pfgrey("%s\n", txt)
	for _, section := range []string{"OIL PVT (PVTO) SUMMARY", "WATER PVT (PVTW) SUMMARY", "GAS PVT (PVTG) SUMMARY", "SURFACE CONDITIONS"} {
		if !strings.Contains(txt, section) {
			tst.Errorf("summary report is missing section %q\n", section)
			return
		}
	}
}

func Test_export02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("export02. legacy write failure is non-fatal")

	root := "/tmp/eaglewest/export02"
	os.RemoveAll(root)
	err := os.MkdirAll(root, 0777)
	if err != nil {
		tst.Errorf("cannot create test directory:\n%v", err)
		return
	}

	// a regular file blocks creation of the legacy subtree
	err = os.WriteFile(filepath.Join(root, "by_type"), []byte("not a directory"), 0644)
	if err != nil {
		tst.Errorf("cannot block legacy path:\n%v", err)
		return
	}

	err = Export(testFluid(), root, Options{})
	if err != nil {
		tst.Errorf("export must continue when only the legacy write fails:\n%v", err)
		return
	}

	// canonical record must exist regardless
	can, err := ReadCanonical(root, "json")
	if err != nil {
		tst.Errorf("canonical record must have been written:\n%v", err)
		return
	}
	chk.IntAssert(len(can.PressureTable), 3)
}

func Test_export03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("export03. incomplete records fail unless stub is explicit")

	root := "/tmp/eaglewest/export03"
	os.RemoveAll(root)

	fld := testFluid()
	fld.Oil = nil
	fld.Scal = nil

	err := Export(fld, root, Options{})
	if err == nil {
		tst.Errorf("exporting an incomplete fluid record must fail without the stub option\n")
		return
	}
	io.Pforan("err = %v\n", err)
	if !strings.Contains(err.Error(), "oil PVT table is empty") {
		tst.Errorf("error message must name the missing table; got:\n%v", err)
	}

	// explicit stub mode writes the placeholder tables
	err = Export(fld, root, Options{Stub: true})
	if err != nil {
		tst.Errorf("stub export failed:\n%v", err)
		return
	}
	can, err := ReadCanonical(root, "json")
	if err != nil {
		tst.Errorf("cannot read canonical record:\n%v", err)
		return
	}
	chk.IntAssert(len(can.PressureTable), 50)
	chk.IntAssert(len(can.SaturationTable), 100)
	chk.Scalar(tst, "p[0]", 1e-17, can.PressureTable[0], 1e5)
	chk.Scalar(tst, "p[49]", 1e-8, can.PressureTable[49], 400e5)
	chk.Scalar(tst, "Bo stub", 1e-17, can.OilFvf[0], 1.2)
	chk.Scalar(tst, "sw[0]", 1e-17, can.SaturationTable[0], 0.15)
	chk.Scalar(tst, "sw[99]", 1e-15, can.SaturationTable[99], 0.8)
	chk.Scalar(tst, "krw[0]", 1e-17, can.KrwTable[0], 0)
	chk.Scalar(tst, "kro[99]", 1e-15, can.KroTable[99], 0)
	chk.Scalar(tst, "pcow[0]", 1e-17, can.PcowTable[0], 0)
}

func Test_export04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("export04. callables are stripped with tagged descriptors")

	root := "/tmp/eaglewest/export04"
	os.RemoveAll(root)

	fld := testFluid()
	fld.Scal.KrwFcn = func(sw float64) float64 { return sw }

	err := Export(fld, root, Options{})
	if err != nil {
		tst.Errorf("export failed:\n%v", err)
		return
	}

	b, err := os.ReadFile(filepath.Join(root, LegacyDir, LegacyFluidFnk+".json"))
	if err != nil {
		tst.Errorf("legacy record was not written:\n%v", err)
		return
	}
	var rec FullRecord
	err = json.Unmarshal(b, &rec)
	if err != nil {
		tst.Errorf("cannot parse legacy record:\n%v", err)
		return
	}
	chk.StrAssert(rec.Scal.KrwFcn.Kind, "callable")
	chk.StrAssert(rec.Scal.KroFcn.Kind, "value")
	chk.StrAssert(rec.Scal.Krw.Kind, "value")
	if rec.Scal.KrwFcn.Desc == "" {
		tst.Errorf("stripped callable must carry a descriptor\n")
	}
}

func Test_export05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("export05. gob encoder round trip")

	root := "/tmp/eaglewest/export05"
	os.RemoveAll(root)

	err := Export(testFluid(), root, Options{EncType: "gob"})
	if err != nil {
		tst.Errorf("export failed:\n%v", err)
		return
	}
	can, err := ReadCanonical(root, "gob")
	if err != nil {
		tst.Errorf("cannot read canonical record:\n%v", err)
		return
	}
	chk.Vector(tst, "pressure_table", 1e-17, can.PressureTable, []float64{500, 1000, 1500})
	chk.Scalar(tst, "water_fvf", 1e-17, can.WaterFvf, 1.01)
}
