package registrysnapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/ksp-mods/ckanreg"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	r := ckanreg.New()
	r.AddAvailable(ckanreg.CkanModule{Identifier: "A", Version: "1.0"})
	if err := r.RegisterModule(ckanreg.InstalledModule{
		CkanModule: ckanreg.CkanModule{Identifier: "A", Version: "1.0"},
	}); err != nil {
		t.Fatalf("RegisterModule: %v", err)
	}
	r.RegisterDLL("/home/u/KSP/GameData/FooMod/Plugins/FooMod.dll")

	path := filepath.Join(t.TempDir(), "registry.json")
	if err := Save(path, r); err != nil {
		t.Fatalf("Save: %v", err)
	}

	restored, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !restored.IsInstalled("A") {
		t.Error("restored registry does not show A installed")
	}
	if len(restored.Available("")) != 1 {
		t.Errorf("restored Available() = %v, want 1 entry", restored.Available(""))
	}
}

func TestMarshal_Deterministic(t *testing.T) {
	r := ckanreg.New()
	r.AddAvailable(ckanreg.CkanModule{Identifier: "B", Version: "1.0"})
	r.AddAvailable(ckanreg.CkanModule{Identifier: "A", Version: "1.0"})

	first, err := Marshal(r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	second, err := Marshal(r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(first) != string(second) {
		t.Error("Marshal output is not deterministic across repeated calls")
	}
}

func TestSnapshot_RoundTripsExactly(t *testing.T) {
	r := ckanreg.New()
	r.AddAvailable(ckanreg.CkanModule{
		Identifier: "A",
		Version:    "1.0",
		HostRange:  ckanreg.HostRange{Min: "1.0", Max: "1.12"},
		Depends:    []ckanreg.RelationshipDescriptor{{Name: "B", VersionMin: "2.0"}},
		Provides:   []string{"VirtualA"},
	})
	if err := r.RegisterModule(ckanreg.InstalledModule{
		CkanModule:     ckanreg.CkanModule{Identifier: "A", Version: "1.0"},
		InstalledFiles: map[string]ckanreg.InstalledFile{"GameData/A/A.dll": {SHA1: "deadbeef"}},
	}); err != nil {
		t.Fatalf("RegisterModule: %v", err)
	}
	r.RegisterDLL("/home/u/KSP/GameData/FooMod/Plugins/FooMod.dll")

	path := filepath.Join(t.TempDir(), "registry.json")
	if err := Save(path, r); err != nil {
		t.Fatalf("Save: %v", err)
	}
	restored, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := r.Snapshot()
	got := restored.Snapshot()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("snapshot did not round-trip exactly (-want +got):\n%s", diff)
	}
}

func TestLoad_RejectsUnsupportedSchemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	raw := `{"schemaVersion": 99, "available": [], "installed": [], "dlls": {}}`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load with a mismatched schema version should fail")
	}
}
