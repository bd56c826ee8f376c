package ckanreg

import (
	"slices"

	"github.com/ksp-mods/ckanreg/version"
)

// ModuleChange is a module whose latest available release appeared or
// disappeared between two registry snapshots.
type ModuleChange struct {
	Identifier string `json:"identifier"`
	Version    string `json:"version"`
}

// ModuleUpgrade is a module whose latest available release changed
// version between two registry snapshots.
type ModuleUpgrade struct {
	Identifier string `json:"identifier"`
	OldVersion string `json:"old_version"`
	NewVersion string `json:"new_version"`
}

// CatalogDiff describes how the latest-available release of every known
// identifier changed between two catalog snapshots, e.g. before and
// after a catalogsync refresh. It only compares what each registry
// considers "latest" for hostVersion — it does not diff every release
// of every identifier.
type CatalogDiff struct {
	Added      []ModuleChange  `json:"added,omitempty"`
	Removed    []ModuleChange  `json:"removed,omitempty"`
	Upgraded   []ModuleUpgrade `json:"upgraded,omitempty"`
	Downgraded []ModuleUpgrade `json:"downgraded,omitempty"`
}

// IsEmpty reports whether the diff contains no changes.
func (d *CatalogDiff) IsEmpty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Upgraded) == 0 && len(d.Downgraded) == 0
}

// DiffAvailable compares the latest release of every identifier,
// compatible with hostVersion, between old and updated.
//
// It walks the sorted union of identifiers known to either snapshot in
// one pass, classifying each as it goes, so the four result slices come
// out already in identifier order with no separate sort step.
func DiffAvailable(old, updated *Registry, hostVersion string) *CatalogDiff {
	oldLatest := latestByIdentifier(old, hostVersion)
	newLatest := latestByIdentifier(updated, hostVersion)

	diff := &CatalogDiff{}
	for _, identifier := range unionSorted(oldLatest, newLatest) {
		oldVersion, hadOld := oldLatest[identifier]
		newVersion, hasNew := newLatest[identifier]

		switch {
		case !hadOld:
			diff.Added = append(diff.Added, ModuleChange{Identifier: identifier, Version: newVersion})
		case !hasNew:
			diff.Removed = append(diff.Removed, ModuleChange{Identifier: identifier, Version: oldVersion})
		case oldVersion != newVersion:
			classifyVersionChange(diff, identifier, oldVersion, newVersion)
		}
	}
	return diff
}

// classifyVersionChange appends to diff.Upgraded or diff.Downgraded
// depending on how newVersion compares to oldVersion. A change whose
// strings differ but whose parsed versions compare equal (e.g. build
// metadata alone changed) is recorded as neither.
func classifyVersionChange(diff *CatalogDiff, identifier, oldVersion, newVersion string) {
	switch c := version.Compare(newVersion, oldVersion); {
	case c > 0:
		diff.Upgraded = append(diff.Upgraded, ModuleUpgrade{Identifier: identifier, OldVersion: oldVersion, NewVersion: newVersion})
	case c < 0:
		diff.Downgraded = append(diff.Downgraded, ModuleUpgrade{Identifier: identifier, OldVersion: oldVersion, NewVersion: newVersion})
	}
}

func latestByIdentifier(r *Registry, hostVersion string) map[string]string {
	out := make(map[string]string)
	if r == nil {
		return out
	}
	for _, m := range r.Available(hostVersion) {
		out[m.Identifier] = m.Version
	}
	return out
}

// unionSorted returns the sorted set of keys present in either a or b.
func unionSorted(a, b map[string]string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		seen[k] = struct{}{}
	}
	for k := range b {
		seen[k] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
