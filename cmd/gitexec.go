package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/duke-git/lancet/v2/strutil"
	"github.com/zbiljic/gitexec"
)

// commitSeparator terminates every message in the git log output.
const commitSeparator = "\x00"

func gitWorkingTreeDir(path string) (string, error) {
	out, err := gitexec.RevParse(&gitexec.RevParseOptions{
		CmdDir:       path,
		ShowToplevel: true,
	})
	if err != nil {
		return string(out), err
	}

	return strings.TrimSpace(string(out)), nil
}

// gitEditMessagePath returns the absolute path of the COMMIT_EDITMSG file,
// which also resolves correctly inside linked worktrees.
func gitEditMessagePath(workDir string) (string, error) {
	out, err := gitexec.RevParse(&gitexec.RevParseOptions{
		CmdDir: workDir,
		Arg:    []string{"--git-path", "COMMIT_EDITMSG"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to locate COMMIT_EDITMSG: %w", err)
	}

	path := strings.TrimSpace(string(out))
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	return path, nil
}

// gitCommitMessages returns the full messages of the commits in the range
// from..to, oldest first. With an empty from, only the commit to is
// returned.
func gitCommitMessages(workDir, from, to string) ([]string, error) {
	if to == "" {
		to = "HEAD"
	}

	opts := &gitexec.LogOptions{
		CmdDir: workDir,
		Format: "%B" + "%x00",
	}

	if from != "" {
		opts.RevisionRange = fmt.Sprintf("%s..%s", from, to)
	} else {
		opts.MaxCount = 1
		opts.RevisionRange = to
	}

	output, err := gitexec.Log(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read commits %s: %w: %s", opts.RevisionRange, err, strings.TrimSpace(string(output)))
	}

	messages := splitCommitLog(string(output))
	slice.Reverse(messages)

	return messages, nil
}

// splitCommitLog splits git log output on the commit separator, dropping
// empty entries.
func splitCommitLog(output string) []string {
	parts := strings.Split(output, commitSeparator)

	messages := slice.Map(parts, func(_ int, s string) string {
		return strings.Trim(s, "\n")
	})

	return slice.Filter(messages, func(_ int, s string) bool {
		return strutil.IsNotBlank(s)
	})
}

func gitCommit(path, message string) error {
	_, err := gitexec.Commit(&gitexec.CommitOptions{
		CmdDir:  path,
		Message: message,
	})
	if err != nil {
		return err
	}

	return nil
}
