package version

import "testing"

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	// GitCommit, GitMessage and BuildDate are optional ldflags overrides
	_ = GitCommit
	_ = GitMessage
	_ = BuildDate
}

func TestVersion_CanBeOverridden(t *testing.T) {
	origVersion := Version
	defer func() { Version = origVersion }()

	Version = "1.2.3"
	if Version != "1.2.3" {
		t.Errorf("Version = %q, want %q", Version, "1.2.3")
	}
}
