package version

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  SemVer
		err   bool
	}{
		{"0.1.0", SemVer{0, 1, 0, ""}, false},
		{"v1.2.3", SemVer{1, 2, 3, ""}, false},
		{"1.0.0-rc.1", SemVer{1, 0, 0, "rc.1"}, false},
		{"1.0.0+build.7", SemVer{1, 0, 0, ""}, false},
		{" 10.20.30 ", SemVer{10, 20, 30, ""}, false},
		{"bad", SemVer{}, true},
		{"1.2", SemVer{}, true},
		{"1.2.x", SemVer{}, true},
		{"1.-2.0", SemVer{}, true},
		{"", SemVer{}, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if tt.err {
			if err == nil {
				t.Errorf("Parse(%q) expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSemVer_String(t *testing.T) {
	if s := (SemVer{1, 2, 3, ""}).String(); s != "1.2.3" {
		t.Errorf("String() = %q, want %q", s, "1.2.3")
	}
	if s := (SemVer{1, 0, 0, "beta"}).String(); s != "1.0.0-beta" {
		t.Errorf("String() = %q, want %q", s, "1.0.0-beta")
	}
}

func TestSemVer_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"2.0.0", "1.0.0", 1},
		{"1.0.0", "2.0.0", -1},
		{"1.2.0", "1.1.0", 1},
		{"1.1.1", "1.1.2", -1},
		{"1.0.0-rc.1", "1.0.0", -1},
		{"1.0.0", "1.0.0-rc.1", 1},
		{"1.0.0-alpha", "1.0.0-beta", -1},
	}

	for _, tt := range tests {
		a, _ := Parse(tt.a)
		b, _ := Parse(tt.b)
		if got := a.Compare(b); got != tt.want {
			t.Errorf("%s.Compare(%s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIsNewerThan(t *testing.T) {
	tests := []struct {
		latest, current string
		want            bool
	}{
		{"0.2.0", "0.1.0", true},
		{"0.1.0", "0.1.0", false},
		{"0.0.9", "0.1.0", false},
		{"v1.0.0", "0.1.0", true},
		{"0.1.0", "0.1.0-dev", true},
		{"bad", "0.1.0", false},
		{"0.1.0", "bad", false},
	}

	for _, tt := range tests {
		if got := IsNewerThan(tt.latest, tt.current); got != tt.want {
			t.Errorf("IsNewerThan(%q, %q) = %v, want %v", tt.latest, tt.current, got, tt.want)
		}
	}
}

func TestInfo_Dev(t *testing.T) {
	origSHA, origDate := CommitSHA, BuildDate
	defer func() { CommitSHA, BuildDate = origSHA, origDate }()

	CommitSHA = "dev"
	BuildDate = "unknown"
	if info := Info(); info != Version {
		t.Errorf("Info() = %q, want %q", info, Version)
	}
}

func TestInfo_Release(t *testing.T) {
	origSHA, origDate := CommitSHA, BuildDate
	defer func() { CommitSHA, BuildDate = origSHA, origDate }()

	CommitSHA = "abc1234"
	BuildDate = "2026-10-01"
	want := Version + " (abc1234, 2026-10-01)"
	if info := Info(); info != want {
		t.Errorf("Info() = %q, want %q", info, want)
	}
}
