package ckanreg

import "sort"

// SanityChecker validates a set of modules against their own declared
// relationships and a set of auto-detected DLL identifiers. It holds no
// state and performs no I/O, so a single value is safe to share across
// goroutines; same inputs always produce the same outputs.
type SanityChecker struct{}

// UnmetDependencies returns, for every module in modules, each Depends
// entry that nothing in modules (by identifier or provides, version
// permitting) and nothing in dlls (by identifier alone — an
// auto-detected DLL always satisfies by identifier match) currently
// satisfies. The result maps the unmet identifier to its sorted
// dependents.
func (SanityChecker) UnmetDependencies(modules []CkanModule, dlls map[string]bool) []UnmetDependency {
	byMissing := make(map[string][]string)
	for _, m := range modules {
		for _, dep := range m.Depends {
			if dependencySatisfied(dep, modules, dlls) {
				continue
			}
			byMissing[dep.Name] = append(byMissing[dep.Name], m.Identifier)
		}
	}

	out := make([]UnmetDependency, 0, len(byMissing))
	for name, dependents := range byMissing {
		sort.Strings(dependents)
		out = append(out, UnmetDependency{Identifier: name, Dependents: dependents})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Identifier < out[j].Identifier })
	return out
}

// Conflicts returns every unordered pair of distinct modules in modules
// where either lists the other as a conflict (directly by identifier or
// via a provides entry, version constraints permitting). Each pair is
// reported once.
func (SanityChecker) Conflicts(modules []CkanModule) []Conflict {
	seen := make(map[[2]string]bool)
	var out []Conflict

	for _, m := range modules {
		for _, c := range m.Conflicts {
			for _, other := range modules {
				if other.Identifier == m.Identifier {
					continue
				}
				if !other.ProvidesAll(c.Name) || !c.Satisfies(c.Name, other.Version) {
					continue
				}
				pair := orderedPair(m.Identifier, other.Identifier)
				if seen[pair] {
					continue
				}
				seen[pair] = true
				out = append(out, Conflict{A: pair[0], B: pair[1]})
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// EnforceConsistency raises an *InconsistentError iff modules has any
// unmet dependency or any conflict.
func (c SanityChecker) EnforceConsistency(modules []CkanModule, dlls map[string]bool) error {
	unmet := c.UnmetDependencies(modules, dlls)
	conflicts := c.Conflicts(modules)
	if len(unmet) == 0 && len(conflicts) == 0 {
		return nil
	}
	return &InconsistentError{UnmetDependencies: unmet, Conflicts: conflicts}
}

// dependencySatisfied is the single predicate consulted everywhere "does
// something installed satisfy dep" is asked: by a real module's own
// identifier or a provides entry (version constraints apply), or by an
// auto-detected DLL matching the identifier alone.
func dependencySatisfied(dep RelationshipDescriptor, modules []CkanModule, dlls map[string]bool) bool {
	for _, m := range modules {
		if m.ProvidesAll(dep.Name) && dep.Satisfies(dep.Name, m.Version) {
			return true
		}
	}
	return dlls[dep.Name]
}

func orderedPair(a, b string) [2]string {
	if a <= b {
		return [2]string{a, b}
	}
	return [2]string{b, a}
}

// EnforceConsistency checks the registry's current installed set,
// treating auto-detected DLL identifiers as satisfiers but never as
// members subject to conflict or dependency checks themselves.
func (r *Registry) EnforceConsistency() error {
	var checker SanityChecker
	return checker.EnforceConsistency(r.installedModuleList(), r.dllIdentifierSet())
}
