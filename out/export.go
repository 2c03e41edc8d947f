// Copyright 2026 The Eagle West Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the export of assembled fluid records to the
// canonical on-disk data structure, a legacy-compatible full record and a
// human-readable summary report
package out

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/google/uuid"

	"github.com/OilCoder/reservoir-simulation-sub006/mdl/fluid"
)

// canonical schema constants
const (
	OilDensity      = 850.0  // [kg/m³]
	WaterDensity    = 1000.0 // [kg/m³]
	ConnateWaterSat = 0.15
	ResidualOilSat  = 0.2
)

// placeholder table parameters, used only when Options.Stub is set
const (
	nStubPressures = 50
	stubPressMin   = 1e5   // [Pa]
	stubPressMax   = 400e5 // [Pa]
	stubBo         = 1.2
	stubOilVisc    = 2.0
	nStubSats      = 100
)

// legacy-compatible output locations below the output root
const (
	LegacyDir       = "by_type/static/fluid"
	LegacyFluidFnk  = "complete_fluid_blackoil"
	SummaryFilename = "pvt_comprehensive_summary.txt"
)

// Options holds export settings
type Options struct {

	// encoder type: "json" or "gob". The default is "json" because the fluid
	// record may carry free-form model configuration maps
	EncType string

	// Stub explicitly allows placeholder tables to be written when the fluid
	// record is incomplete. Without it, an incomplete record is a hard error;
	// placeholder output is opt-in, never a silent fallback
	Stub bool
}

// Canonical is the fixed-schema columnar record consumed downstream. Its shape
// is independent of the richness of the fluid record it was derived from.
type Canonical struct {
	PressureTable     []float64   `json:"pressure_table"`
	OilFvf            []float64   `json:"oil_fvf"`
	OilViscosity      []float64   `json:"oil_viscosity"`
	WaterFvf          float64     `json:"water_fvf"`
	WaterViscosity    float64     `json:"water_viscosity"`
	SaturationTable   []float64   `json:"saturation_table"`
	KrwTable          []float64   `json:"krw_table"`
	KroTable          []float64   `json:"kro_table"`
	PcowTable         []float64   `json:"pcow_table"`
	OilDensity        float64     `json:"oil_density"`
	WaterDensity      float64     `json:"water_density"`
	OilViscosityRef   float64     `json:"oil_viscosity_ref"`
	WaterViscosityRef float64     `json:"water_viscosity_ref"`
	ConnateWaterSat   float64     `json:"connate_water_sat"`
	ResidualOilSat    float64     `json:"residual_oil_sat"`
	Fluid             *FullRecord `json:"fluid"` // nested full fluid-record copy
}

// Export persists the composite fluid record under root. Three outputs are
// written: the canonical columnar record (versioned file plus registry entry;
// required, failures are fatal), the legacy full record and the plain-text
// summary report (both best-effort; failures are logged as warnings and the
// export continues).
func Export(fld *fluid.Blackoil, root string, opts Options) (err error) {

	// encoder type
	enctype := opts.EncType
	if enctype != "gob" && enctype != "json" {
		enctype = "json"
	}

	// canonical record
	can, err := canonical(fld, opts.Stub)
	if err != nil {
		return err
	}

	// canonical output directory
	err = os.MkdirAll(root, 0777)
	if err != nil {
		return chk.Err("cannot create output directory (%s): %v", root, err)
	}

	// versioned canonical file
	id := uuid.NewString()
	fn := io.Sf("fluid_%s.%s", id, enctype)
	err = writeRecord(filepath.Join(root, fn), enctype, can)
	if err != nil {
		return chk.Err("cannot write canonical fluid record: %v", err)
	}

	// registry entry
	reg, err := ReadRegistry(root)
	if err != nil {
		return err
	}
	reg.Set("fluid", id, fn)
	err = reg.Save()
	if err != nil {
		return err
	}

	// legacy full record (best effort)
	ldir := filepath.Join(root, LegacyDir)
	err = os.MkdirAll(ldir, 0777)
	if err != nil {
		io.PfRed("warning: cannot create legacy output directory (%s): %v\n", ldir, err)
	} else {
		lfn := filepath.Join(ldir, io.Sf("%s.%s", LegacyFluidFnk, enctype))
		err = writeRecord(lfn, enctype, can.Fluid)
		if err != nil {
			io.PfRed("warning: cannot write legacy fluid record (%s): %v\n", lfn, err)
		}
	}

	// summary report (best effort)
	err = appendSummary(filepath.Join(ldir, SummaryFilename), fld)
	if err != nil {
		io.PfRed("warning: cannot write summary report: %v\n", err)
	}
	return nil
}

// ReadCanonical reads the current canonical fluid record registered under root
func ReadCanonical(root, enctype string) (can *Canonical, err error) {
	if enctype != "gob" && enctype != "json" {
		enctype = "json"
	}
	reg, err := ReadRegistry(root)
	if err != nil {
		return
	}
	a := reg.Get("fluid")
	if a == nil {
		return nil, chk.Err("no canonical fluid record is registered in %q", root)
	}
	f, err := os.Open(filepath.Join(root, a.File))
	if err != nil {
		return nil, chk.Err("cannot open canonical fluid record: %v", err)
	}
	defer f.Close()
	can = new(Canonical)
	err = GetDecoder(f, enctype).Decode(can)
	if err != nil {
		return nil, chk.Err("cannot decode canonical fluid record (%s): %v", a.File, err)
	}
	return
}

// canonical derives the fixed-schema record from the fluid record. Missing
// tables are a hard error unless stub is set, in which case placeholder
// vectors are generated instead.
func canonical(fld *fluid.Blackoil, stub bool) (can *Canonical, err error) {
	if fld == nil {
		return nil, chk.Err("cannot export canonical fluid record: fluid record is nil")
	}
	can = new(Canonical)

	// oil vectors
	if len(fld.Oil) > 0 {
		can.PressureTable = column(fld.Oil, 0)
		can.OilFvf = column(fld.Oil, 2)
		can.OilViscosity = column(fld.Oil, 3)
	} else {
		if !stub {
			return nil, chk.Err("cannot export canonical fluid record: oil PVT table is empty (set Options.Stub to write placeholder tables)")
		}
		can.PressureTable = utl.LinSpace(stubPressMin, stubPressMax, nStubPressures)
		can.OilFvf = constants(nStubPressures, stubBo)
		can.OilViscosity = constants(nStubPressures, stubOilVisc)
	}
	can.OilViscosityRef = can.OilViscosity[0]

	// water scalars
	if len(fld.Water) < 5 {
		return nil, chk.Err("cannot export canonical fluid record: water PVT row is incomplete (%d of 5 entries)", len(fld.Water))
	}
	can.WaterFvf = fld.Water[1]
	can.WaterViscosity = fld.Water[3]
	can.WaterViscosityRef = fld.Water[3]

	// saturation and relative permeability vectors
	if fld.Scal != nil && len(fld.Scal.Saturations) > 0 {
		can.SaturationTable = fld.Scal.Saturations
		can.KrwTable = fld.Scal.Krw
		can.KroTable = fld.Scal.Kro
		can.PcowTable = fld.Scal.Pcow
	} else {
		if !stub {
			return nil, chk.Err("cannot export canonical fluid record: SCAL data is missing (set Options.Stub to write placeholder Corey curves)")
		}
		can.SaturationTable, can.KrwTable, can.KroTable, can.PcowTable = coreyCurves()
	}

	// fixed scalar constants
	can.OilDensity = OilDensity
	can.WaterDensity = WaterDensity
	can.ConnateWaterSat = ConnateWaterSat
	can.ResidualOilSat = ResidualOilSat

	// nested full record
	can.Fluid = NewFullRecord(fld)
	return
}

// coreyCurves generates the placeholder Corey-type relative permeability
// table:  krw = ((sw-0.15)/0.85)²   kro = ((0.8-sw)/0.65)²   pcow = 0
// over saturations spanning connate water to residual oil.
func coreyCurves() (sats, krw, kro, pcow []float64) {
	sats = utl.LinSpace(ConnateWaterSat, 1.0-ResidualOilSat, nStubSats)
	krw = make([]float64, nStubSats)
	kro = make([]float64, nStubSats)
	pcow = make([]float64, nStubSats)
	for i, sw := range sats {
		w := (sw - 0.15) / 0.85
		o := (0.8 - sw) / 0.65
		krw[i] = w * w
		kro[i] = o * o
	}
	return
}

// writeRecord encodes one record into a newly created file
func writeRecord(fn, enctype string, e interface{}) (err error) {
	f, err := os.Create(fn)
	if err != nil {
		return chk.Err("cannot create file %q: %v", fn, err)
	}
	defer func() {
		cerr := f.Close()
		if cerr != nil && err == nil {
			err = chk.Err("cannot close file %q: %v", fn, cerr)
		}
	}()
	err = GetEncoder(f, enctype).Encode(e)
	if err != nil {
		err = chk.Err("cannot encode record into %q: %v", fn, err)
	}
	return
}

// column extracts one column of a row-major table
func column(table [][]float64, j int) (col []float64) {
	col = make([]float64, len(table))
	for i, row := range table {
		col[i] = row[j]
	}
	return
}

// constants returns an n-vector filled with value
func constants(n int, value float64) (v []float64) {
	v = make([]float64, n)
	for i := 0; i < n; i++ {
		v[i] = value
	}
	return
}
