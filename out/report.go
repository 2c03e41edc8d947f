// Copyright 2026 The Eagle West Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/OilCoder/reservoir-simulation-sub006/mdl/fluid"
)

// appendSummary appends the human-readable PVT summary report to fn. The
// report is for operator inspection only, not meant to be machine-parsed.
// The file handle is closed on all exit paths.
func appendSummary(fn string, fld *fluid.Blackoil) (err error) {
	f, err := os.OpenFile(fn, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return chk.Err("cannot open summary report %q: %v", fn, err)
	}
	defer func() {
		cerr := f.Close()
		if cerr != nil && err == nil {
			err = chk.Err("cannot close summary report %q: %v", fn, cerr)
		}
	}()
	_, err = f.WriteString(Summary(fld))
	if err != nil {
		err = chk.Err("cannot write summary report %q: %v", fn, err)
	}
	return
}

// Summary renders the PVT summary report of a fluid record
func Summary(fld *fluid.Blackoil) string {

	l := "================================================================\n"
	l += "OIL PVT (PVTO) SUMMARY\n"
	l += "================================================================\n"
	l += io.Sf("  entries        : %d\n", len(fld.Oil))
	if n := len(fld.Oil); n > 0 {
		l += io.Sf("  pressure range : %g to %g\n", fld.Oil[0][0], fld.Oil[n-1][0])
		l += io.Sf("  GOR range      : %g to %g\n", fld.Oil[0][1], fld.Oil[n-1][1])
	}

	l += "================================================================\n"
	l += "WATER PVT (PVTW) SUMMARY\n"
	l += "================================================================\n"
	if len(fld.Water) >= 5 {
		l += io.Sf("  reference pressure : %g\n", fld.Water[0])
		l += io.Sf("  reference Bw       : %g\n", fld.Water[1])
		l += io.Sf("  compressibility    : %g [1/Pa]\n", fld.Water[2])
	}

	l += "================================================================\n"
	l += "GAS PVT (PVTG) SUMMARY\n"
	l += "================================================================\n"
	l += io.Sf("  entries        : %d\n", len(fld.Gas))
	if n := len(fld.Gas); n > 0 {
		l += io.Sf("  pressure range : %g to %g\n", fld.Gas[0][0], fld.Gas[n-1][0])
	}

	l += "================================================================\n"
	l += "SURFACE CONDITIONS\n"
	l += "================================================================\n"
	l += io.Sf("  temperature : %g [K]\n", fld.Surface.TempK)
	l += io.Sf("  pressure    : %g [Pa]\n", fld.Surface.PressPa)
	return l
}
