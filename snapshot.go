package ckanreg

import "sort"

// Snapshot is the serializable form of a Registry's three indices, as
// round-tripped by the sibling registrysnapshot package: SchemaVersion,
// then the available, installed, and auto-detected-DLL indices.
type Snapshot struct {
	SchemaVersion int
	Available     []CkanModule
	Installed     []InstalledModule
	DLLs          map[string]string // modName -> relPath
}

// Snapshot captures the registry's current state for persistence.
// Available entries are sorted by identifier then version, and Installed
// entries by identifier, so two snapshots of equal content always
// produce byte-identical serialized output regardless of map iteration
// order.
func (r *Registry) Snapshot() Snapshot {
	var available []CkanModule
	for _, am := range r.available {
		available = append(available, am.All()...)
	}
	sort.Slice(available, func(i, j int) bool {
		if available[i].Identifier != available[j].Identifier {
			return available[i].Identifier < available[j].Identifier
		}
		return available[i].Version < available[j].Version
	})

	var installed []InstalledModule
	for _, m := range r.installed {
		installed = append(installed, m)
	}
	sort.Slice(installed, func(i, j int) bool { return installed[i].Identifier < installed[j].Identifier })

	dlls := make(map[string]string, len(r.dlls))
	for k, v := range r.dlls {
		dlls[k] = v
	}

	return Snapshot{
		SchemaVersion: SchemaVersion,
		Available:     available,
		Installed:     installed,
		DLLs:          dlls,
	}
}

// FromSnapshot rebuilds a Registry from a previously captured Snapshot.
// It rejects any SchemaVersion other than the one this package currently
// understands.
func FromSnapshot(s Snapshot, opts ...Option) (*Registry, error) {
	if s.SchemaVersion != SchemaVersion {
		return nil, &RegistryVersionNotSupportedError{Version: s.SchemaVersion, Expected: SchemaVersion}
	}

	r := New(opts...)
	for _, m := range s.Available {
		r.AddAvailable(m)
	}
	for _, m := range s.Installed {
		if err := r.RegisterModule(m); err != nil {
			return nil, err
		}
	}
	for modName, relPath := range s.DLLs {
		r.dlls[modName] = relPath
	}
	return r, nil
}
