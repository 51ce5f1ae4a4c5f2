package lint

import (
	"regexp"
	"strings"

	"github.com/zbiljic/commitlint/pkg/versioninfo"
)

// IgnoreFunc reports whether a commit message should be skipped.
type IgnoreFunc func(message string) bool

var wildcards = []*regexp.Regexp{
	regexp.MustCompile(`^((Merge pull request)|(Merge (.*?) into (.*?)|(Merge branch (.*?)))(?:\r?\n)*$)`),
	regexp.MustCompile(`^(Merge tag (.*?))(?:\r?\n)*$`),
	regexp.MustCompile(`^(R|r)evert (.*)`),
	regexp.MustCompile(`^(fixup|squash|amend)! `),
	regexp.MustCompile(`^Merged (.*?)(in|into) (.*)`),
	regexp.MustCompile(`^Merge remote-tracking branch(\s*)(.*)`),
	regexp.MustCompile(`^Automatic merge(.*)`),
	regexp.MustCompile(`^Auto-merged (.*?) into (.*)`),
	regexp.MustCompile(`^Initial [Cc]ommit$`),
}

// DefaultIgnores are the checks applied unless disabled: merge, revert and
// autosquash commits, the initial commit, and version bump commits.
var DefaultIgnores = []IgnoreFunc{
	isWildcard,
	isReleaseCommit,
}

func firstLine(message string) string {
	line, _, _ := strings.Cut(strings.TrimLeft(message, "\r\n"), "\n")
	return strings.TrimRight(line, "\r")
}

func isWildcard(message string) bool {
	header := firstLine(message)
	for _, re := range wildcards {
		if re.MatchString(header) {
			return true
		}
	}
	return false
}

// isReleaseCommit matches headers made of a single semantic version, as
// written by release tooling ("1.2.0", "v2.0.0-rc.1").
func isReleaseCommit(message string) bool {
	return versioninfo.IsVersion(strings.TrimSpace(firstLine(message)))
}
