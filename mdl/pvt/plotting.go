// Copyright 2026 The Eagle West Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"github.com/cpmech/gosl/plt"
)

// PlotOil plots Bo and viscosity versus pressure for an oil PVT table
func PlotOil(table [][]float64, dirout, fnkey string) {
	n := len(table)
	p := make([]float64, n)
	bo := make([]float64, n)
	mu := make([]float64, n)
	for i := 0; i < n; i++ {
		p[i] = table[i][0]
		bo[i] = table[i][2]
		mu[i] = table[i][3]
	}

	plt.Reset(false, &plt.A{Eps: true})

	plt.Subplot(2, 1, 1)
	plt.Plot(p, bo, &plt.A{C: "b", Ls: "-", M: ".", NoClip: true})
	plt.Gll("$p$", "$B_o$", nil)

	plt.Subplot(2, 1, 2)
	plt.Plot(p, mu, &plt.A{C: "r", Ls: "-", M: ".", NoClip: true})
	plt.Gll("$p$", "$\\mu_o$", nil)

	plt.Save(dirout, fnkey)
}

// PlotGas plots Bg and viscosity versus pressure for a gas PVT table
func PlotGas(table [][]float64, dirout, fnkey string) {
	n := len(table)
	p := make([]float64, n)
	bg := make([]float64, n)
	mu := make([]float64, n)
	for i := 0; i < n; i++ {
		p[i] = table[i][0]
		bg[i] = table[i][2]
		mu[i] = table[i][3]
	}

	plt.Reset(false, &plt.A{Eps: true})

	plt.Subplot(2, 1, 1)
	plt.Plot(p, bg, &plt.A{C: "b", Ls: "-", M: ".", NoClip: true})
	plt.Gll("$p$", "$B_g$", nil)

	plt.Subplot(2, 1, 2)
	plt.Plot(p, mu, &plt.A{C: "r", Ls: "-", M: ".", NoClip: true})
	plt.Gll("$p$", "$\\mu_g$", nil)

	plt.Save(dirout, fnkey)
}
