package buildinfo

import "testing"

func TestSetVersionOverrides(t *testing.T) {
	orig := version
	defer func() { version = orig }()

	SetVersion("")
	if version != orig {
		t.Fatalf("empty version must be ignored")
	}
	SetVersion("v1.2.3")
	if got := Version(); got != "v1.2.3" {
		t.Fatalf("expected overridden version, got %q", got)
	}
}

func TestCommitIsShortened(t *testing.T) {
	orig := commit
	defer func() { commit = orig }()

	commit = "0123456789abcdef0123"
	if got := Commit(); got != "0123456789ab" {
		t.Fatalf("unexpected commit %q", got)
	}
}
