package ckanreg

import "sort"

// FindReverseDependencies computes the least fixed point of "if these
// identifiers are removed, what else becomes broken?": it starts from
// toRemove, repeatedly finds installed modules whose dependencies would
// go unmet once everything currently slated for removal is gone, and
// folds those into the removal set, stopping when a pass adds nothing
// new.
//
// This is phrased as an iterative loop rather than recursion on a
// growing set, so a large installation cannot grow the call stack.
// Auto-detected DLLs are only ever satisfiers here, never candidates for
// removal. Conflicts do not drive reverse removal, only unmet
// dependencies.
func FindReverseDependencies(installed []CkanModule, dlls map[string]bool, toRemove []string) []string {
	current := make(map[string]bool, len(toRemove))
	for _, id := range toRemove {
		current[id] = true
	}

	var checker SanityChecker
	for {
		hypothetical := withoutIdentifiers(installed, current)
		broken := make(map[string]bool)
		for _, unmet := range checker.UnmetDependencies(hypothetical, dlls) {
			for _, dependent := range unmet.Dependents {
				broken[dependent] = true
			}
		}

		grew := false
		for id := range broken {
			if !current[id] {
				current[id] = true
				grew = true
			}
		}
		if !grew {
			break
		}
	}

	out := make([]string, 0, len(current))
	for id := range current {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func withoutIdentifiers(modules []CkanModule, excluded map[string]bool) []CkanModule {
	out := make([]CkanModule, 0, len(modules))
	for _, m := range modules {
		if !excluded[m.Identifier] {
			out = append(out, m)
		}
	}
	return out
}

// FindReverseDependencies computes the removal closure against the
// registry's current installed set.
func (r *Registry) FindReverseDependencies(toRemove []string) []string {
	return FindReverseDependencies(r.installedModuleList(), r.dllIdentifierSet(), toRemove)
}
