package ckanreg

import (
	"log/slog"
	"sort"
)

// SchemaVersion is the registry snapshot schema this package understands.
// registrysnapshot.Load rejects any other value.
const SchemaVersion = 1

// Registry is the aggregate store of everything known about a mod
// installation: every release ever seen in a catalog, every module
// actually installed, and every DLL found on disk but not (yet) claimed
// by an installed module.
//
// Registry is not safe for concurrent use; see the package doc comment.
type Registry struct {
	cfg registryConfig

	available map[string]*AvailableModule // identifier -> known releases
	installed map[string]InstalledModule  // identifier -> installed record
	dlls      map[string]string           // modName -> GameData-relative path
}

// New returns an empty Registry at the current SchemaVersion.
func New(opts ...Option) *Registry {
	cfg := registryConfig{}
	for _, o := range opts {
		o(&cfg)
	}
	return &Registry{
		cfg:       cfg,
		available: make(map[string]*AvailableModule),
		installed: make(map[string]InstalledModule),
		dlls:      make(map[string]string),
	}
}

func (r *Registry) log() *slog.Logger { return r.cfg.log() }

// --- mutation ---

// AddAvailable records m as a known catalog release, creating the
// identifier's AvailableModule bucket if this is its first release.
func (r *Registry) AddAvailable(m CkanModule) {
	am, ok := r.available[m.Identifier]
	if !ok {
		am = NewAvailableModule(m.Identifier)
		r.available[m.Identifier] = am
	}
	am.Add(m)
}

// RemoveAvailable drops one release of identifier; a no-op if the
// identifier or version is unknown. If that was the last known release,
// the identifier's bucket is removed entirely.
func (r *Registry) RemoveAvailable(identifier, ver string) {
	am, ok := r.available[identifier]
	if !ok {
		return
	}
	am.Remove(ver)
	if am.Len() == 0 {
		delete(r.available, identifier)
	}
}

// ClearAvailable discards every known catalog release. Installed and
// auto-detected indices are untouched.
func (r *Registry) ClearAvailable() {
	r.available = make(map[string]*AvailableModule)
}

// RegisterModule marks m installed, keyed by its identifier. It fails
// with *AlreadyInstalledError if the identifier is already installed;
// callers that want to replace an installed version must
// DeregisterModule first.
func (r *Registry) RegisterModule(m InstalledModule) error {
	if _, ok := r.installed[m.Identifier]; ok {
		return &AlreadyInstalledError{Identifier: m.Identifier}
	}
	r.installed[m.Identifier] = m
	return nil
}

// DeregisterModule removes identifier from the installed index; a no-op
// if it was not present. This does not remove its files from disk.
func (r *Registry) DeregisterModule(identifier string) {
	delete(r.installed, identifier)
}

// RegisterDLL records path as an auto-detected artifact:
//  1. If any installed module's file map already owns path, either as
//     given or in its GameData-rooted form ("GameData/" + relPath), do
//     nothing — an explicit install always shadows the auto-detected copy.
//  2. Otherwise classify path. A path that fails to classify is
//     logged at warn level and otherwise ignored.
//  3. Otherwise record installed_dlls[modName] = relPath, overwriting any
//     prior entry for modName.
func (r *Registry) RegisterDLL(path string) {
	modName, relPath, ok := ClassifyDLLPath(path)
	for _, m := range r.installed {
		if _, owned := m.InstalledFiles[path]; owned {
			return
		}
		if ok {
			if _, owned := m.InstalledFiles[gameDataAnchor+"/"+relPath]; owned {
				return
			}
		}
	}

	if !ok {
		r.log().Warn("could not classify auto-detected path", "path", path)
		return
	}
	r.dlls[modName] = relPath
}

// ClearDLLs discards every registered auto-detected DLL.
func (r *Registry) ClearDLLs() {
	r.dlls = make(map[string]string)
}

// --- queries ---

// InstalledVersion reports the version installed under identifier,
// preferring an explicit install, then an auto-detected DLL, then a
// provides entry.
func (r *Registry) InstalledVersion(identifier string) (Version, bool) {
	if m, ok := r.installed[identifier]; ok {
		return RealVersion(m.Version), true
	}
	if _, ok := r.dlls[identifier]; ok {
		return DllVersion(), true
	}
	if provider, ok := r.Provided()[identifier]; ok {
		return provider, true
	}
	return Version{}, false
}

// IsInstalled reports whether identifier resolves to any installed
// version, explicit, auto-detected, or provided.
func (r *Registry) IsInstalled(identifier string) bool {
	_, ok := r.InstalledVersion(identifier)
	return ok
}

// InstalledVersions builds the identifier -> Version overlay: seeded
// with auto-detected DLLs, overlaid with provides entries, overlaid
// again with real installed versions. Installed always wins over
// provides, which always wins over DLL.
func (r *Registry) InstalledVersions() map[string]Version {
	out := make(map[string]Version, len(r.dlls)+len(r.installed))
	for modName := range r.dlls {
		out[modName] = DllVersion()
	}
	for identifier, v := range r.Provided() {
		out[identifier] = v
	}
	for identifier, m := range r.installed {
		out[identifier] = RealVersion(m.Version)
	}
	return out
}

// Provided builds the identifier -> ProvidesVersion mapping derived from
// every installed module's provides list. When two installed modules
// provide the same identifier, the lexicographically smallest provider
// identifier wins, giving a deterministic, documented tie-break for an
// otherwise unspecified choice.
func (r *Registry) Provided() map[string]Version {
	winner := make(map[string]string) // virtual identifier -> provider identifier
	for _, m := range r.installed {
		for _, provided := range m.Provides {
			if current, ok := winner[provided]; !ok || m.Identifier < current {
				winner[provided] = m.Identifier
			}
		}
	}
	out := make(map[string]Version, len(winner))
	for provided, provider := range winner {
		out[provided] = ProvidesVersion(provider)
	}
	return out
}

// Available returns the latest release of every known identifier
// compatible with hostVersion whose every Depends entry resolves via
// latestAvailableWithProvides, ordered by identifier ascending. An empty
// hostVersion imposes no compatibility filter.
func (r *Registry) Available(hostVersion string) []CkanModule {
	identifiers := r.availableIdentifiersSorted()
	out := make([]CkanModule, 0, len(identifiers))
	for _, identifier := range identifiers {
		m, ok := r.available[identifier].Latest(hostVersion)
		if !ok {
			continue
		}
		if r.dependenciesResolvable(m, hostVersion) {
			out = append(out, m)
		}
	}
	return out
}

func (r *Registry) dependenciesResolvable(m CkanModule, hostVersion string) bool {
	for _, dep := range m.Depends {
		if len(r.LatestAvailableWithProvides(dep.Name, hostVersion)) == 0 {
			return false
		}
	}
	return true
}

// Incompatible returns, for every alphabetically-sorted identifier with
// no release compatible with hostVersion, that identifier's latest
// release under no host-version filter.
func (r *Registry) Incompatible(hostVersion string) []CkanModule {
	identifiers := r.availableIdentifiersSorted()
	out := make([]CkanModule, 0)
	for _, identifier := range identifiers {
		if _, ok := r.available[identifier].Latest(hostVersion); ok {
			continue
		}
		if m, ok := r.available[identifier].Latest(""); ok {
			out = append(out, m)
		}
	}
	return out
}

// LatestAvailable returns the latest release of identifier compatible
// with hostVersion, failing with *ModuleNotFoundError if identifier is
// unknown or has no compatible release.
func (r *Registry) LatestAvailable(identifier, hostVersion string) (CkanModule, error) {
	am, ok := r.available[identifier]
	if !ok {
		return CkanModule{}, &ModuleNotFoundError{Identifier: identifier}
	}
	m, ok := am.Latest(hostVersion)
	if !ok {
		return CkanModule{}, &ModuleNotFoundError{Identifier: identifier}
	}
	return m, nil
}

// LatestAvailableWithProvides returns every release that satisfies name,
// either as a direct identifier match (seeded first, if any) or via a
// provides entry. It does not deduplicate: a module whose own Provides
// list also names its own identifier is reported once for the direct
// match and once for the provides match. Callers that care must
// deduplicate themselves.
func (r *Registry) LatestAvailableWithProvides(name, hostVersion string) []CkanModule {
	var out []CkanModule
	if m, err := r.LatestAvailable(name, hostVersion); err == nil {
		out = append(out, m)
	}

	for _, am := range r.available {
		m, ok := am.Latest(hostVersion)
		if !ok {
			continue
		}
		if m.ProvidesVirtual(name) {
			out = append(out, m)
		}
	}
	return out
}

func (r *Registry) availableIdentifiersSorted() []string {
	identifiers := make([]string, 0, len(r.available))
	for identifier := range r.available {
		identifiers = append(identifiers, identifier)
	}
	sort.Strings(identifiers)
	return identifiers
}

// installedModuleList is the internal raw view SanityChecker and
// FindReverseDependencies consume; it is deliberately not exported so
// callers use the Version-typed query surface instead.
func (r *Registry) installedModuleList() []CkanModule {
	out := make([]CkanModule, 0, len(r.installed))
	for _, m := range r.installed {
		out = append(out, m.CkanModule)
	}
	return out
}

func (r *Registry) dllIdentifierSet() map[string]bool {
	out := make(map[string]bool, len(r.dlls))
	for modName := range r.dlls {
		out[modName] = true
	}
	return out
}
