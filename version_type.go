package ckanreg

import "github.com/ksp-mods/ckanreg/version"

// VersionKind discriminates the Version variants.
type VersionKind int

const (
	// KindReal is a real semantic version string, totally ordered.
	KindReal VersionKind = iota
	// KindDll marks an auto-detected artifact of unknown real version.
	// It satisfies dependencies by identifier match alone and is not
	// ordered against anything, including other Dll values.
	KindDll
	// KindProvides marks a virtual package claimed by a real module. It
	// satisfies dependencies by identifier match alone.
	KindProvides
)

// Version is a tagged union distinguishing a concrete release from an
// auto-detected artifact or a virtual package entry. Comparing across
// variants is meaningless and rejected by Equal; ordering is only
// defined for two KindReal values and lives in the version package.
type Version struct {
	kind     VersionKind
	real     string
	provider string
}

// RealVersion wraps a concrete release version string.
func RealVersion(v string) Version { return Version{kind: KindReal, real: v} }

// DllVersion represents a module known only from an auto-detected file.
func DllVersion() Version { return Version{kind: KindDll} }

// ProvidesVersion represents a virtual package claimed by provider.
func ProvidesVersion(provider string) Version { return Version{kind: KindProvides, provider: provider} }

// Kind reports which variant v holds.
func (v Version) Kind() VersionKind { return v.kind }

// Real returns the wrapped version string; only meaningful when
// Kind() == KindReal.
func (v Version) Real() string { return v.real }

// Provider returns the providing module's identifier; only meaningful
// when Kind() == KindProvides.
func (v Version) Provider() string { return v.provider }

// Equal reports whether v and o represent the same version. Values of
// different kinds are never equal. Two Dll values are always equal,
// even from different modules — Dll carries no identity beyond
// "present, unknown version".
func (v Version) Equal(o Version) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindReal:
		return version.Equal(v.real, o.real)
	case KindProvides:
		return v.provider == o.provider
	default: // KindDll
		return true
	}
}

func (v Version) String() string {
	switch v.kind {
	case KindReal:
		return v.real
	case KindProvides:
		return "provides:" + v.provider
	default:
		return "<auto-detected>"
	}
}
