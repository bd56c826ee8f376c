package ckanreg

import (
	"slices"

	"github.com/ksp-mods/ckanreg/version"
)

// AvailableModule collects every known release of one identifier, as
// published across one or more catalogs. It never drops a version on
// its own: only explicit Remove calls shrink it, matching the registry's
// append-biased catalog ingestion.
type AvailableModule struct {
	Identifier string
	releases   map[string]CkanModule // version string -> module
}

// NewAvailableModule returns an empty AvailableModule for identifier.
func NewAvailableModule(identifier string) *AvailableModule {
	return &AvailableModule{Identifier: identifier, releases: make(map[string]CkanModule)}
}

// Add records m as a known release, overwriting any existing entry at
// the same version (a catalog re-publishing metadata for a version it
// already listed).
func (a *AvailableModule) Add(m CkanModule) {
	a.releases[m.Version] = m.Clone()
}

// Remove drops the release at ver, reporting whether it was present.
func (a *AvailableModule) Remove(ver string) bool {
	if _, ok := a.releases[ver]; !ok {
		return false
	}
	delete(a.releases, ver)
	return true
}

// Get returns the release at ver.
func (a *AvailableModule) Get(ver string) (CkanModule, bool) {
	m, ok := a.releases[ver]
	return m, ok
}

// Len reports how many releases are known.
func (a *AvailableModule) Len() int {
	return len(a.releases)
}

// All returns every known release, in no particular order.
func (a *AvailableModule) All() []CkanModule {
	out := make([]CkanModule, 0, len(a.releases))
	for _, m := range a.releases {
		out = append(out, m)
	}
	return out
}

// CompatibleWith returns every release whose host range accepts
// hostVersion, ordered ascending by version.
func (a *AvailableModule) CompatibleWith(hostVersion string) []CkanModule {
	out := make([]CkanModule, 0, len(a.releases))
	for _, m := range a.releases {
		if m.HostRange.Accepts(hostVersion) {
			out = append(out, m)
		}
	}
	sortModulesByVersion(out)
	return out
}

// Latest returns the highest version compatible with hostVersion. An
// empty hostVersion imposes no filtering. The bool is false if no
// release qualifies.
func (a *AvailableModule) Latest(hostVersion string) (CkanModule, bool) {
	compatible := a.CompatibleWith(hostVersion)
	if len(compatible) == 0 {
		return CkanModule{}, false
	}
	return compatible[len(compatible)-1], true
}

func sortModulesByVersion(ms []CkanModule) {
	slices.SortFunc(ms, func(a, b CkanModule) int {
		return version.Compare(a.Version, b.Version)
	})
}
