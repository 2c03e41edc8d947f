// Copyright 2026 The Eagle West Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// RegistryFilename is the metadata file kept alongside versioned artifacts
const RegistryFilename = "registry.json"

// Artifact records the current version of one logical artifact
type Artifact struct {
	Current  string            `json:"current"`            // current version id
	File     string            `json:"file"`               // filename of the current version
	Versions map[string]string `json:"versions,omitempty"` // version id → filename, all versions ever written
}

// Registry maps logical artifact names to their current version. It replaces
// symlink-style "X_current → X_timestamp" pointers with an explicit metadata
// record so that version tracking carries no platform-specific symlink
// semantics.
type Registry struct {
	Artifacts map[string]*Artifact `json:"artifacts"`

	// derived
	dir string // directory holding the registry file and the artifacts
}

// ReadRegistry reads the registry from dir; a missing registry file yields an
// empty registry (first export in a fresh directory)
func ReadRegistry(dir string) (reg *Registry, err error) {
	reg = &Registry{Artifacts: make(map[string]*Artifact), dir: dir}
	b, err := os.ReadFile(filepath.Join(dir, RegistryFilename))
	if err != nil {
		if os.IsNotExist(err) {
			return reg, nil
		}
		return nil, chk.Err("cannot read registry in %q: %v", dir, err)
	}
	err = json.Unmarshal(b, reg)
	if err != nil {
		return nil, chk.Err("cannot parse %s in %q: %v", RegistryFilename, dir, err)
	}
	if reg.Artifacts == nil {
		reg.Artifacts = make(map[string]*Artifact)
	}
	return
}

// Set records a new current version of a logical artifact
func (o *Registry) Set(name, versionID, filename string) {
	a := o.Artifacts[name]
	if a == nil {
		a = &Artifact{Versions: make(map[string]string)}
		o.Artifacts[name] = a
	}
	if a.Versions == nil {
		a.Versions = make(map[string]string)
	}
	a.Current = versionID
	a.File = filename
	a.Versions[versionID] = filename
}

// Get returns the artifact registered under name
//
//	Note: returns nil if not found
func (o *Registry) Get(name string) *Artifact {
	return o.Artifacts[name]
}

// Save writes the registry file back to its directory
func (o *Registry) Save() (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return chk.Err("cannot marshal registry: %v", err)
	}
	fn := filepath.Join(o.dir, RegistryFilename)
	err = os.WriteFile(fn, b, 0644)
	if err != nil {
		return chk.Err("cannot write registry file %q: %v", fn, err)
	}
	return
}

// String returns a one-line-per-artifact rendering for operator inspection
func (o *Registry) String() string {
	l := ""
	for name, a := range o.Artifacts {
		l += io.Sf("%s => %s (%s)\n", name, a.Current, a.File)
	}
	return l
}
