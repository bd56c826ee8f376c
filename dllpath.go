package ckanreg

import "strings"

// gameDataAnchor is the directory name every DLL path is classified
// relative to, matching the KSP install layout convention.
const gameDataAnchor = "GameData"

// ClassifyDLLPath splits a filesystem path into the owning module name
// and the path relative to GameData, under the conventional layout
// <anything>/GameData/<subpath>/<fileStem>.dll:
//
//   - relPath is everything after the first GameData/ segment.
//   - modName is the file stem: the last path component with a trailing
//     ".dll" stripped and any further dotted suffix trimmed.
//
// ok is false if no GameData segment is present, or if the resulting
// modName or relPath would be empty; callers treat that as "ignore,
// warn".
func ClassifyDLLPath(p string) (modName, relPath string, ok bool) {
	segments := strings.Split(filepathToSlash(p), "/")

	anchor := -1
	for i, seg := range segments {
		if seg == gameDataAnchor {
			anchor = i
			break
		}
	}
	if anchor == -1 || anchor+1 >= len(segments) {
		return "", "", false
	}

	relSegments := segments[anchor+1:]
	relPath = strings.Join(relSegments, "/")
	if relPath == "" {
		return "", "", false
	}

	stem := strings.TrimSuffix(relSegments[len(relSegments)-1], ".dll")
	if i := strings.Index(stem, "."); i != -1 {
		stem = stem[:i]
	}
	if stem == "" {
		return "", "", false
	}
	return stem, relPath, true
}

// filepathToSlash normalizes Windows-style separators so classification
// behaves the same regardless of the host OS a catalog or install was
// produced on.
func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
