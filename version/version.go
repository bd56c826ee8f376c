// Package version implements comparison for CKAN-style module and host
// application version strings.
//
// Format: [EPOCH:]RELEASE[-PRERELEASE][+BUILD]
//   - EPOCH: an optional non-negative integer prefix terminated by ':'.
//     A mod whose versioning scheme changes shape mid-life (e.g. jumping
//     from a date-based scheme to semantic versioning) bumps its epoch so
//     the new numbering sorts above the old regardless of how the RELEASE
//     strings would otherwise compare. Defaults to 0 when absent.
//   - RELEASE: dot-separated identifiers (alphanumeric, no hyphens)
//   - PRERELEASE: dot-separated identifiers (alphanumeric and hyphens allowed)
//   - BUILD: ignored for comparison purposes
//
// Release segments compare numerically when digits-only and
// lexicographically otherwise; a prerelease sorts before its
// corresponding release; epoch, when present, decides the comparison
// before any of that is consulted.
package version

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Identifier is a single dot-separated segment of a version string.
type Identifier struct {
	IsDigitsOnly bool
	AsNumber     uint64 // only valid if IsDigitsOnly
	AsString     string
}

// ParseIdentifier classifies a single dot-separated segment. Letting
// strconv.ParseUint decide digits-only-ness covers the empty string,
// signs, and non-digit runes in one step, with no separate scan needed.
func ParseIdentifier(s string) Identifier {
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return Identifier{IsDigitsOnly: true, AsNumber: n, AsString: s}
	}
	return Identifier{AsString: s}
}

// Compare orders id against other: digits-only identifiers sort before
// alphanumeric ones, compare numerically against each other, and
// alphanumeric identifiers compare lexicographically.
func (id Identifier) Compare(other Identifier) int {
	if id.IsDigitsOnly != other.IsDigitsOnly {
		if id.IsDigitsOnly {
			return -1
		}
		return 1
	}
	if id.IsDigitsOnly {
		return cmp.Compare(id.AsNumber, other.AsNumber)
	}
	return strings.Compare(id.AsString, other.AsString)
}

// CompareIdentifiers is the free-function form of Identifier.Compare.
func CompareIdentifiers(a, b Identifier) int { return a.Compare(b) }

// Parsed holds the decomposed form of a version string.
type Parsed struct {
	Epoch      uint64
	Release    []Identifier
	Prerelease []Identifier
	Normalized string
	IsEmpty    bool
}

// Compare orders p against other: epoch first, then release identifiers,
// then prerelease presence and identifiers.
func (p Parsed) Compare(other Parsed) int {
	if p.IsEmpty != other.IsEmpty {
		if p.IsEmpty {
			return 1
		}
		return -1
	}
	if p.IsEmpty {
		return 0
	}

	return cmp.Or(
		cmp.Compare(p.Epoch, other.Epoch),
		compareIdentifierLists(p.Release, other.Release),
		comparePrereleasePresence(p.Prerelease, other.Prerelease),
		compareIdentifierLists(p.Prerelease, other.Prerelease),
	)
}

// Parse decomposes a version string into epoch, release, and prerelease
// identifiers. An empty string is a valid, special "no version" value
// that always compares higher than any real version.
func Parse(s string) (Parsed, error) {
	if s == "" {
		return Parsed{IsEmpty: true}, nil
	}

	rest := s
	var epoch uint64
	if colon := strings.IndexByte(rest, ':'); colon >= 0 {
		n, err := strconv.ParseUint(rest[:colon], 10, 64)
		if err != nil {
			return Parsed{}, &ParseError{Version: s, Message: "epoch prefix is not a non-negative integer"}
		}
		epoch = n
		rest = rest[colon+1:]
	}

	if plus := strings.IndexByte(rest, '+'); plus >= 0 {
		if err := checkSegmentCharset(rest[plus+1:], true); err != nil {
			return Parsed{}, &ParseError{Version: s, Message: "build metadata: " + err.Error()}
		}
		rest = rest[:plus]
	}

	releaseStr, prereleaseStr, hasPrerelease := strings.Cut(rest, "-")
	if releaseStr == "" {
		return Parsed{}, &ParseError{Version: s, Message: "empty release segment"}
	}
	if err := checkSegmentCharset(releaseStr, false); err != nil {
		return Parsed{}, &ParseError{Version: s, Message: "release segment: " + err.Error()}
	}
	if hasPrerelease {
		if err := checkSegmentCharset(prereleaseStr, true); err != nil {
			return Parsed{}, &ParseError{Version: s, Message: "prerelease segment: " + err.Error()}
		}
	}

	release := splitIdentifiers(releaseStr)
	var prerelease []Identifier
	normalized := releaseStr
	if hasPrerelease {
		prerelease = splitIdentifiers(prereleaseStr)
		normalized = releaseStr + "-" + prereleaseStr
	}
	if epoch != 0 {
		normalized = strconv.FormatUint(epoch, 10) + ":" + normalized
	}

	return Parsed{Epoch: epoch, Release: release, Prerelease: prerelease, Normalized: normalized}, nil
}

func splitIdentifiers(s string) []Identifier {
	parts := strings.Split(s, ".")
	out := make([]Identifier, len(parts))
	for i, part := range parts {
		out[i] = ParseIdentifier(part)
	}
	return out
}

// checkSegmentCharset rejects runes outside a release or prerelease
// segment's charset. Releases are strictly alphanumeric (plus the '.'
// separator); prerelease and build segments also allow hyphens.
func checkSegmentCharset(s string, allowHyphen bool) error {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.':
		case r == '-' && allowHyphen:
		default:
			return fmt.Errorf("unexpected character %q", r)
		}
	}
	return nil
}

// ParseError reports a version string that does not match the expected grammar.
type ParseError struct {
	Version string
	Message string
}

func (e *ParseError) Error() string {
	return "bad version " + e.Version + ": " + e.Message
}

// Compare returns -1, 0, or 1 as a is less than, equal to, or greater
// than b. Unparseable strings fall back to byte-wise comparison rather
// than failing, since callers need a total order to sort by.
func Compare(a, b string) int {
	va, errA := Parse(a)
	vb, errB := Parse(b)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	return va.Compare(vb)
}

// comparePrereleasePresence ranks a version carrying a prerelease below
// its corresponding release (e.g. "2.0.0-pre1" < "2.0.0"); it is a no-op
// once both sides agree on whether they carry one.
func comparePrereleasePresence(a, b []Identifier) int {
	aHas, bHas := len(a) > 0, len(b) > 0
	switch {
	case aHas == bHas:
		return 0
	case aHas:
		return -1
	default:
		return 1
	}
}

func compareIdentifierLists(a, b []Identifier) int {
	n := min(len(a), len(b))
	for i := range n {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// Sort orders a slice of version strings ascending.
func Sort(versions []string) {
	slices.SortFunc(versions, Compare)
}

// Max returns the higher of two version strings.
func Max(a, b string) string {
	if Compare(a, b) >= 0 {
		return a
	}
	return b
}

// Equal reports whether two version strings compare equal.
func Equal(a, b string) bool {
	return Compare(a, b) == 0
}

// Less reports whether a sorts before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}
