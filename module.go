package ckanreg

import "github.com/ksp-mods/ckanreg/version"

func versionEqual(a, b string) bool { return version.Equal(a, b) }
func versionLess(a, b string) bool  { return version.Less(a, b) }

// CkanModule is an immutable description of one version of a mod, as it
// appears in a catalog entry or an installed-module record.
type CkanModule struct {
	Identifier string
	Version    string

	HostRange HostRange

	Depends    []RelationshipDescriptor
	Conflicts  []RelationshipDescriptor
	Recommends []RelationshipDescriptor
	Suggests   []RelationshipDescriptor

	// Provides lists virtual package names this module satisfies in
	// addition to its own identifier.
	Provides []string

	// Replacement, if non-empty, names the identifier that supersedes
	// this module. Deprecation is advisory: it never excludes a module
	// from Available or Latest, unlike host incompatibility.
	Replacement string
}

// ProvidesAll reports whether name matches this module's own identifier
// or one of its declared provides entries.
func (m CkanModule) ProvidesAll(name string) bool {
	return m.Identifier == name || m.ProvidesVirtual(name)
}

// ProvidesVirtual reports whether name appears in this module's
// Provides list, independent of its own Identifier. A module whose
// Provides list names itself still returns true here.
func (m CkanModule) ProvidesVirtual(name string) bool {
	for _, p := range m.Provides {
		if p == name {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of m, safe to store without aliasing
// the caller's slices.
func (m CkanModule) Clone() CkanModule {
	c := m
	c.Depends = append([]RelationshipDescriptor(nil), m.Depends...)
	c.Conflicts = append([]RelationshipDescriptor(nil), m.Conflicts...)
	c.Recommends = append([]RelationshipDescriptor(nil), m.Recommends...)
	c.Suggests = append([]RelationshipDescriptor(nil), m.Suggests...)
	c.Provides = append([]string(nil), m.Provides...)
	return c
}

// InstalledModule is a CkanModule paired with the on-disk files it
// placed, keyed by path relative to the game install root (so a plugin
// file's key starts with "GameData/").
type InstalledModule struct {
	CkanModule
	InstalledFiles map[string]InstalledFile
}

// InstalledFile records provenance for one file an installed module owns.
type InstalledFile struct {
	// SHA1, if non-empty, lets a future verification pass detect
	// user-modified or corrupted files.
	SHA1 string
}
