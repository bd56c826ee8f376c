// Package registrysnapshot persists a ckanreg.Registry to disk as
// deterministic JSON, fulfilling the core's "callers snapshot and
// restore state" persistence contract. It never mutates a Registry
// in-place; it only reads a Snapshot from one and writes a new one back.
package registrysnapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ksp-mods/ckanreg"
)

// filePermissions restricts snapshot files to the owner, since they may
// embed install paths specific to the local machine.
const filePermissions = 0o600

// Save writes r's current state to path as indented, deterministically
// ordered JSON.
func Save(path string, r *ckanreg.Registry) error {
	data, err := Marshal(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, filePermissions)
}

// Marshal serializes r's snapshot with sorted keys and 2-space
// indentation, so two snapshots of equal registry content produce
// byte-identical output.
func Marshal(r *ckanreg.Registry) ([]byte, error) {
	snap := r.Snapshot()

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(toOrdered(snap)); err != nil {
		return nil, fmt.Errorf("marshal registry snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// Load reads a registry snapshot from path and rebuilds a Registry from
// it, applying opts to the result. It fails with
// *ckanreg.RegistryVersionNotSupportedError if the file's schema version
// does not match the version this package's ckanreg dependency
// understands.
func Load(path string, opts ...ckanreg.Option) (*ckanreg.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry snapshot: %w", err)
	}
	return Unmarshal(data, opts...)
}

// Unmarshal parses snapshot JSON and rebuilds a Registry from it.
func Unmarshal(data []byte, opts ...ckanreg.Option) (*ckanreg.Registry, error) {
	var ordered orderedSnapshot
	if err := json.Unmarshal(data, &ordered); err != nil {
		return nil, fmt.Errorf("parse registry snapshot: %w", err)
	}
	return ckanreg.FromSnapshot(ordered.toSnapshot(), opts...)
}

// orderedSnapshot is the on-disk shape: field names and nesting are
// stable across versions of this package so older snapshots remain
// parseable even when ckanreg.Snapshot's Go-side layout changes.
type orderedSnapshot struct {
	SchemaVersion int                     `json:"schemaVersion"`
	Available     []ckanreg.CkanModule    `json:"available"`
	Installed     []ckanreg.InstalledModule `json:"installed"`
	DLLs          orderedStringMap        `json:"dlls"`
}

func toOrdered(s ckanreg.Snapshot) orderedSnapshot {
	return orderedSnapshot{
		SchemaVersion: s.SchemaVersion,
		Available:     s.Available,
		Installed:     s.Installed,
		DLLs:          newOrderedStringMap(s.DLLs),
	}
}

func (o orderedSnapshot) toSnapshot() ckanreg.Snapshot {
	return ckanreg.Snapshot{
		SchemaVersion: o.SchemaVersion,
		Available:     o.Available,
		Installed:     o.Installed,
		DLLs:          o.DLLs.values,
	}
}
