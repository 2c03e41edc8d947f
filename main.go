// Copyright 2026 The Eagle West Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/OilCoder/reservoir-simulation-sub006/inp"
	"github.com/OilCoder/reservoir-simulation-sub006/mdl/fluid"
	"github.com/OilCoder/reservoir-simulation-sub006/mdl/pvt"
	"github.com/OilCoder/reservoir-simulation-sub006/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	cfgfn, _ := io.ArgToFilename(0, "fluid_properties_config", ".yaml", true)
	outdir := io.ArgToString(1, "/tmp/eaglewest")
	enctype := io.ArgToString(2, "json")
	stub := io.ArgToBool(3, false)
	verbose := io.ArgToBool(4, true)

	// message
	if verbose {
		io.PfWhite("\nEagle West PVT assembly pipeline\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"configuration file", "cfgfn", cfgfn,
			"output directory", "outdir", outdir,
			"encoder type", "enctype", enctype,
			"allow placeholder tables", "stub", stub,
			"show messages", "verbose", verbose,
		))
	}

	// read and validate configuration
	cfg, err := inp.ReadConfig(cfgfn)
	if err != nil {
		chk.Panic("cannot read configuration:\n%v", err)
	}
	err = cfg.Validate()
	if err != nil {
		chk.Panic("configuration is invalid:\n%v", err)
	}

	// build phase tables
	oil, err := pvt.OilTable(cfg)
	if err != nil {
		chk.Panic("cannot build oil PVT table:\n%v", err)
	}
	water, err := pvt.WaterTable(cfg)
	if err != nil {
		chk.Panic("cannot build water PVT table:\n%v", err)
	}
	gas, err := pvt.GasTable(cfg)
	if err != nil {
		chk.Panic("cannot build gas PVT table:\n%v", err)
	}

	// assemble and export. SCAL data is attached by upstream tooling; the
	// driver has none, so placeholder curves require the explicit stub flag
	fld := fluid.Assemble(nil, oil, water, gas, cfg)
	err = out.Export(fld, outdir, out.Options{EncType: enctype, Stub: stub})
	if err != nil {
		chk.Panic("export failed:\n%v", err)
	}

	// message
	if verbose {
		io.Pf("\n%v\n", out.Summary(fld))
		io.Pf("results saved in %s\n", outdir)
	}
}
