package ckanreg

import "fmt"

// RelationshipDescriptor names a required, conflicting, recommended, or
// suggested module, optionally constrained to a version range. A zero
// value for Min/Max/Exact means that bound is unconstrained.
type RelationshipDescriptor struct {
	Name string

	// VersionExact, if non-empty, requires an exact version match and
	// takes precedence over Min/Max.
	VersionExact string

	// VersionMin and VersionMax bound an inclusive range. Either may be
	// empty to leave that side unbounded.
	VersionMin string
	VersionMax string
}

// Satisfies reports whether candidateVersion, offered under name,
// fulfills the relationship. This is the single predicate Registry and
// SanityChecker both consult, so "does X satisfy Y" has one definition
// regardless of whether X arrived as a real module or a provides entry.
func (r RelationshipDescriptor) Satisfies(name, candidateVersion string) bool {
	if name != r.Name {
		return false
	}
	if r.VersionExact != "" {
		return versionEqual(candidateVersion, r.VersionExact)
	}
	if r.VersionMin != "" && versionLess(candidateVersion, r.VersionMin) {
		return false
	}
	if r.VersionMax != "" && versionLess(r.VersionMax, candidateVersion) {
		return false
	}
	return true
}

func (r RelationshipDescriptor) String() string {
	switch {
	case r.VersionExact != "":
		return fmt.Sprintf("%s (= %s)", r.Name, r.VersionExact)
	case r.VersionMin != "" && r.VersionMax != "":
		return fmt.Sprintf("%s (>= %s, <= %s)", r.Name, r.VersionMin, r.VersionMax)
	case r.VersionMin != "":
		return fmt.Sprintf("%s (>= %s)", r.Name, r.VersionMin)
	case r.VersionMax != "":
		return fmt.Sprintf("%s (<= %s)", r.Name, r.VersionMax)
	default:
		return r.Name
	}
}

// HostRange bounds the host-application versions a module declares
// compatibility with. An empty Min or Max leaves that side unbounded;
// a non-empty Exact overrides both.
type HostRange struct {
	Min   string
	Max   string
	Exact string
}

// Accepts reports whether hostVersion falls within the range. An empty
// hostVersion (the caller did not supply one) is always accepted,
// matching the "compatibility filtering is opt-in" design.
func (h HostRange) Accepts(hostVersion string) bool {
	if hostVersion == "" {
		return true
	}
	if h.Exact != "" {
		return versionEqual(hostVersion, h.Exact)
	}
	if h.Min != "" && versionLess(hostVersion, h.Min) {
		return false
	}
	if h.Max != "" && versionLess(h.Max, hostVersion) {
		return false
	}
	return true
}
