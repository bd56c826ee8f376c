package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/ksp-mods/ckanreg"
	"github.com/ksp-mods/ckanreg/registrysnapshot"
	"github.com/spf13/cobra"
)

func executeCommand(root *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func newRootWithRegistry(t *testing.T, cmd *cobra.Command, r *ckanreg.Registry) *cobra.Command {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registry.json")
	if r != nil {
		if err := registrysnapshot.Save(path, r); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	root := &cobra.Command{Use: "ckanregistry"}
	root.PersistentFlags().String("registry", path, "")
	root.PersistentFlags().Bool("verbose", false, "")
	root.AddCommand(cmd)
	return root
}

func TestCheckCmd_ConsistentInstalledSet(t *testing.T) {
	r := ckanreg.New()
	if err := r.RegisterModule(ckanreg.InstalledModule{CkanModule: ckanreg.CkanModule{Identifier: "A", Version: "1.0"}}); err != nil {
		t.Fatalf("RegisterModule: %v", err)
	}

	root := newRootWithRegistry(t, CheckCmd, r)
	out, err := executeCommand(root, "check")
	if err != nil {
		t.Fatalf("check: %v (output: %s)", err, out)
	}
}

func TestCheckCmd_UnmetDependency(t *testing.T) {
	r := ckanreg.New()
	if err := r.RegisterModule(ckanreg.InstalledModule{
		CkanModule: ckanreg.CkanModule{
			Identifier: "A", Version: "1.0",
			Depends: []ckanreg.RelationshipDescriptor{{Name: "Missing"}},
		},
	}); err != nil {
		t.Fatalf("RegisterModule: %v", err)
	}

	root := newRootWithRegistry(t, CheckCmd, r)
	if _, err := executeCommand(root, "check"); err == nil {
		t.Error("check should fail for an unmet dependency")
	}
}

func TestRemoveCmd_PreviewDoesNotMutate(t *testing.T) {
	r := ckanreg.New()
	if err := r.RegisterModule(ckanreg.InstalledModule{CkanModule: ckanreg.CkanModule{Identifier: "A", Version: "1.0"}}); err != nil {
		t.Fatalf("RegisterModule: %v", err)
	}

	root := newRootWithRegistry(t, RemoveCmd, r)
	out, err := executeCommand(root, "remove", "A")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if out == "" {
		t.Error("remove should print the removal closure")
	}

	path, _ := root.PersistentFlags().GetString("registry")
	restored, err := registrysnapshot.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !restored.IsInstalled("A") {
		t.Error("remove without --apply deregistered A from the saved snapshot")
	}
}

func TestInfoCmd_UnknownIdentifier(t *testing.T) {
	root := newRootWithRegistry(t, InfoCmd, ckanreg.New())
	if _, err := executeCommand(root, "info", "Nope"); err == nil {
		t.Error("info on an unknown identifier should fail")
	}
}
