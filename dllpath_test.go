package ckanreg

import "testing"

func TestClassifyDLLPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantMod string
		wantRel string
		wantOK  bool
	}{
		{
			name:    "basic classification",
			path:    "/home/u/KSP/GameData/FooMod/Plugins/FooMod.dll",
			wantMod: "FooMod",
			wantRel: "FooMod/Plugins/FooMod.dll",
			wantOK:  true,
		},
		{
			name:    "file stem differs from subdirectory",
			path:    "/home/u/KSP/GameData/Libraries/Bar.dll",
			wantMod: "Bar",
			wantRel: "Libraries/Bar.dll",
			wantOK:  true,
		},
		{
			name:    "dotted suffix trimmed from stem",
			path:    "GameData/Baz/Baz.v2.dll",
			wantMod: "Baz",
			wantRel: "Baz/Baz.v2.dll",
			wantOK:  true,
		},
		{
			name:   "no GameData anchor",
			path:   "/home/u/KSP/Plugins/FooMod.dll",
			wantOK: false,
		},
		{
			name:   "GameData with nothing after it",
			path:   "/home/u/KSP/GameData",
			wantOK: false,
		},
		{
			name:   "windows-style separators",
			wantMod: "FooMod",
			wantRel: "FooMod/Plugins/FooMod.dll",
			path:    `C:\KSP\GameData\FooMod\Plugins\FooMod.dll`,
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mod, rel, ok := ClassifyDLLPath(tt.path)
			if ok != tt.wantOK {
				t.Fatalf("ClassifyDLLPath(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if mod != tt.wantMod || rel != tt.wantRel {
				t.Errorf("ClassifyDLLPath(%q) = (%q, %q), want (%q, %q)",
					tt.path, mod, rel, tt.wantMod, tt.wantRel)
			}
		})
	}
}
