// Package ckanreg implements the registry data model and resolver
// algorithms for a game modding ecosystem: compatibility filtering
// against a host-application version, provides-aware lookup (virtual
// packages), sanity checking of installed sets, and transitive
// reverse-dependency closure.
//
// The package is a pure, synchronous library: no operation performs
// file or network I/O, and nothing here suspends or spawns background
// work. Callers are responsible for persisting Registry state across
// process runs (see the sibling registrysnapshot package) and for
// populating it from a catalog (see the sibling catalogsync package).
//
// # Thread safety
//
// Registry is mutable aggregate state. Callers embedding it in a
// multi-threaded host must serialize access themselves — typically
// with a single exclusive lock held for the duration of any operation.
// SanityChecker and FindReverseDependencies are pure functions and are
// safe to share across goroutines without locking.
package ckanreg
