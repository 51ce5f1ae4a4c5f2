package versioninfo

import (
	"strings"

	"github.com/coreos/go-semver/semver"
)

// A Info contains a version.
type Info struct {
	Version string
	Commit  string
	BuiltBy string
}

// Parse parses a semantic version, accepting an optional "v" prefix.
func Parse(s string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(s), "v"))
}

// IsVersion reports whether s is exactly one semantic version, such as the
// subject of a release commit ("1.2.0", "v2.0.0-rc.1").
func IsVersion(s string) bool {
	if s == "" || strings.ContainsAny(strings.TrimSpace(s), " \t") {
		return false
	}
	_, err := Parse(s)
	return err == nil
}

func (vi Info) String() string {
	var versionElems []string
	if vi.Version != "" {
		version, err := Parse(vi.Version)
		if err != nil {
			return vi.Version
		}
		versionElems = append(versionElems, "v"+version.String())
	} else {
		versionElems = append(versionElems, "dev")
	}
	if vi.Commit != "" {
		versionElems = append(versionElems, "commit "+vi.Commit)
	}
	if vi.BuiltBy != "" {
		versionElems = append(versionElems, "built by "+vi.BuiltBy)
	}
	return strings.Join(versionElems, ", ")
}
