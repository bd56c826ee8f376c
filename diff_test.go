package ckanreg

import "testing"

func TestDiffAvailable(t *testing.T) {
	old := New()
	old.AddAvailable(CkanModule{Identifier: "A", Version: "1.0"})
	old.AddAvailable(CkanModule{Identifier: "B", Version: "1.0"})

	updated := New()
	updated.AddAvailable(CkanModule{Identifier: "A", Version: "2.0"}) // upgraded
	updated.AddAvailable(CkanModule{Identifier: "C", Version: "1.0"}) // added
	// B removed

	diff := DiffAvailable(old, updated, "")

	if len(diff.Added) != 1 || diff.Added[0].Identifier != "C" {
		t.Errorf("Added = %+v, want [C]", diff.Added)
	}
	if len(diff.Removed) != 1 || diff.Removed[0].Identifier != "B" {
		t.Errorf("Removed = %+v, want [B]", diff.Removed)
	}
	if len(diff.Upgraded) != 1 || diff.Upgraded[0].Identifier != "A" {
		t.Errorf("Upgraded = %+v, want [A]", diff.Upgraded)
	}
	if diff.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
}

func TestDiffAvailable_NoChange(t *testing.T) {
	a := New()
	a.AddAvailable(CkanModule{Identifier: "A", Version: "1.0"})
	b := New()
	b.AddAvailable(CkanModule{Identifier: "A", Version: "1.0"})

	diff := DiffAvailable(a, b, "")
	if !diff.IsEmpty() {
		t.Errorf("diff = %+v, want empty", diff)
	}
}
