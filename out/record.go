// Copyright 2026 The Eagle West Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/OilCoder/reservoir-simulation-sub006/mdl/fluid"
)

// Variant tags a serialized field as either a plain value or an opaque
// callable. Callables attached upstream (e.g. relative permeability functions)
// cannot be serialized; the tag round-trips so that a reader can tell a
// stripped callable apart from an absent value.
type Variant struct {
	Kind  string    `json:"kind"`            // "value" or "callable"
	Value []float64 `json:"value,omitempty"` // set when Kind == "value"
	Desc  string    `json:"desc,omitempty"`  // descriptor of the stripped callable
}

// value tags a plain serializable array
func value(v []float64) Variant {
	return Variant{Kind: "value", Value: v}
}

// callable tags a stripped non-serializable function field
func callable(desc string) Variant {
	return Variant{Kind: "callable", Desc: desc}
}

// ScalRecord is the serializable form of the SCAL passthrough; every field
// carries its variant tag
type ScalRecord struct {
	Saturations Variant `json:"saturations"`
	Krw         Variant `json:"krw"`
	Kro         Variant `json:"kro"`
	Pcow        Variant `json:"pcow"`
	KrwFcn      Variant `json:"krw_fcn"`
	KroFcn      Variant `json:"kro_fcn"`
	PcowFcn     Variant `json:"pcow_fcn"`
}

// FullRecord is a full-fidelity serializable copy of the composite fluid
// record, written to the legacy output location and nested inside the
// canonical record
type FullRecord struct {
	Scal       *ScalRecord            `json:"scal,omitempty"`
	Oil        [][]float64            `json:"oil"`
	Water      []float64              `json:"water"`
	Gas        [][]float64            `json:"gas"`
	Surface    fluid.Surface          `json:"surface"`
	MRSTConfig map[string]interface{} `json:"mrst_config,omitempty"`
}

// NewFullRecord copies a fluid record into its serializable form, replacing
// each attached callable with a tagged descriptor
func NewFullRecord(fld *fluid.Blackoil) (rec *FullRecord) {
	rec = &FullRecord{
		Oil:        fld.Oil,
		Water:      fld.Water,
		Gas:        fld.Gas,
		Surface:    fld.Surface,
		MRSTConfig: fld.MRSTConfig,
	}
	if fld.Scal != nil {
		rec.Scal = &ScalRecord{
			Saturations: value(fld.Scal.Saturations),
			Krw:         value(fld.Scal.Krw),
			Kro:         value(fld.Scal.Kro),
			Pcow:        value(fld.Scal.Pcow),
			KrwFcn:      value(nil),
			KroFcn:      value(nil),
			PcowFcn:     value(nil),
		}
		if fld.Scal.KrwFcn != nil {
			rec.Scal.KrwFcn = callable("krw(sw): non-serializable function removed on export")
		}
		if fld.Scal.KroFcn != nil {
			rec.Scal.KroFcn = callable("kro(sw): non-serializable function removed on export")
		}
		if fld.Scal.PcowFcn != nil {
			rec.Scal.PcowFcn = callable("pcow(sw): non-serializable function removed on export")
		}
	}
	return
}
