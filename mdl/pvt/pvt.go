// Copyright 2026 The Eagle West Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pvt builds black-oil PVT tables from validated configuration data.
// The builders perform unit conversion and array packing only; all phase
// behaviour modelling is tabulated upstream in the configuration.
package pvt

// unit conversion factors
const (
	PsiToPa = 6894.76 // [psi] → [Pa]
	CpToPaS = 1e-3    // [cp] → [Pa·s]
)

// FahrToKelvin converts temperature from Fahrenheit to Kelvin
func FahrToKelvin(f float64) float64 {
	return (f-32.0)*5.0/9.0 + 273.15
}

// PsiaToPa converts pressure from psia to Pa
func PsiaToPa(p float64) float64 {
	return p * PsiToPa
}
