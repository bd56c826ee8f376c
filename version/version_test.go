package version

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal", "1.2.0", "1.2.0", 0},
		{"numeric segment", "1.9.0", "1.10.0", -1},
		{"patch bump", "1.12.2", "1.12.1", 1},
		{"prerelease sorts before release", "1.0.0-pre1", "1.0.0", -1},
		{"shorter is less", "1.2", "1.2.0", -1},
		{"empty sorts highest", "", "999.0.0", 1},
		{"both empty", "", "", 0},
		{"alnum release segment", "1.2.0a", "1.2.0b", -1},
		{"higher epoch wins despite lower release", "1:0.0.1", "2.0.0", 1},
		{"equal epoch falls through to release", "1:1.0.0", "1:1.0.1", -1},
		{"implicit epoch is zero", "1.0.0", "0:1.0.0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.a, tt.b)
			if sign(got) != sign(tt.want) {
				t.Errorf("Compare(%q, %q) = %d, want sign %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func TestSort(t *testing.T) {
	versions := []string{"1.10.0", "1.2.0", "1.9.0", "1.2.0-pre1"}
	Sort(versions)
	want := []string{"1.2.0-pre1", "1.2.0", "1.9.0", "1.10.0"}
	for i, v := range versions {
		if v != want[i] {
			t.Errorf("Sort()[%d] = %q, want %q (full: %v)", i, v, want[i], versions)
		}
	}
}

func TestMax(t *testing.T) {
	if got := Max("1.2.0", "1.10.0"); got != "1.10.0" {
		t.Errorf("Max(1.2.0, 1.10.0) = %q, want 1.10.0", got)
	}
}

func TestParseIdentifier(t *testing.T) {
	id := ParseIdentifier("042")
	if !id.IsDigitsOnly || id.AsNumber != 42 {
		t.Errorf("ParseIdentifier(042) = %+v, want digits-only 42", id)
	}
	id = ParseIdentifier("rc1")
	if id.IsDigitsOnly {
		t.Errorf("ParseIdentifier(rc1) should not be digits-only")
	}
}

func TestParseError(t *testing.T) {
	if _, err := Parse("bad version!"); err == nil {
		t.Error("expected a parse error for an invalid version string")
	}
}

func TestParseEpoch(t *testing.T) {
	p, err := Parse("3:1.2.0")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Epoch != 3 {
		t.Errorf("Epoch = %d, want 3", p.Epoch)
	}
	if p.Normalized != "3:1.2.0" {
		t.Errorf("Normalized = %q, want 3:1.2.0", p.Normalized)
	}

	if _, err := Parse("x:1.2.0"); err == nil {
		t.Error("expected a parse error for a non-numeric epoch prefix")
	}
}
