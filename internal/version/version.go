package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version, CommitSHA, and BuildDate are set via ldflags at build time.
// Example: go build -ldflags "-X .../version.Version=0.2.0 -X .../version.CommitSHA=abc1234 -X .../version.BuildDate=2026-10-01"
var (
	Version   = "0.1.0"
	CommitSHA = "dev"
	BuildDate = "unknown"
)

// Info returns a human-readable version string.
// For dev builds: "0.1.0"
// For release builds: "0.1.0 (abc1234, 2026-10-01)"
func Info() string {
	v := strings.TrimPrefix(Version, "v")
	if CommitSHA == "dev" || CommitSHA == "" {
		return v
	}
	return fmt.Sprintf("%s (%s, %s)", v, CommitSHA, BuildDate)
}

// SemVer represents a parsed semantic version (major.minor.patch[-pre]).
type SemVer struct {
	Major int
	Minor int
	Patch int
	Pre   string // pre-release label, "" for a release
}

// Parse parses a version string like "0.1.0", "v0.1.0" or "1.0.0-rc.1".
// Build metadata after "+" is ignored.
func Parse(s string) (SemVer, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	s, _, _ = strings.Cut(s, "+")
	core, pre, _ := strings.Cut(s, "-")

	segments := strings.Split(core, ".")
	if len(segments) != 3 {
		return SemVer{}, fmt.Errorf("invalid version %q: expected major.minor.patch", s)
	}

	var nums [3]int
	for i, name := range []string{"major", "minor", "patch"} {
		n, err := strconv.Atoi(segments[i])
		if err != nil || n < 0 {
			return SemVer{}, fmt.Errorf("invalid %s version %q", name, segments[i])
		}
		nums[i] = n
	}
	return SemVer{Major: nums[0], Minor: nums[1], Patch: nums[2], Pre: pre}, nil
}

// String returns the version as "major.minor.patch[-pre]".
func (v SemVer) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	return s
}

// Compare returns -1, 0, or 1 depending on whether v is less than, equal to,
// or greater than other. A pre-release sorts before its release; two
// pre-release labels compare as strings.
func (v SemVer) Compare(other SemVer) int {
	if c := cmpInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := cmpInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := cmpInt(v.Patch, other.Patch); c != 0 {
		return c
	}
	switch {
	case v.Pre == other.Pre:
		return 0
	case v.Pre == "":
		return 1
	case other.Pre == "":
		return -1
	}
	return strings.Compare(v.Pre, other.Pre)
}

// IsNewerThan returns true if latest is a newer version than current.
// Returns false on parse errors or if versions are equal.
func IsNewerThan(latest, current string) bool {
	l, err := Parse(latest)
	if err != nil {
		return false
	}
	c, err := Parse(current)
	if err != nil {
		return false
	}
	return l.Compare(c) > 0
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
