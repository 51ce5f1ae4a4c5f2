package commit

import (
	"regexp"
	"strings"
)

var commitMessageRegex = regexp.MustCompile(`^(?P<type>\w+)(\((?P<scope>[\w\-\.\/, ]+)\))?(!)?: (?P<message>.+)$`)

// footerTokenRegex matches the first line of a footer section, either a git
// trailer ("Reviewed-by: Z", "Refs #123") or a breaking change note.
var footerTokenRegex = regexp.MustCompile(`^(BREAKING[ -]CHANGE|[A-Za-z][\w-]*)(: | #)`)

// ScissorsLine is the marker git places in COMMIT_EDITMSG when the commit
// is created with --verbose; everything below it is discarded.
const ScissorsLine = "# ------------------------ >8 ------------------------"

func ParseMessage(message string) Message {
	match := commitMessageRegex.FindStringSubmatch(message)
	if len(match) == 0 {
		return Message{
			CommitMessage: message,
		}
	}

	typeString := match[1]
	scopeString := match[3]
	breakingString := match[4]
	messageString := match[5]

	if typeString == "" {
		return Message{
			CommitMessage: message,
		}
	}

	return Message{
		Type:          typeString,
		Scope:         scopeString,
		Breaking:      breakingString != "",
		CommitMessage: messageString,
	}
}

// Parse splits a raw commit message into header, body and footer, and
// parses the header in the conventional commit format.
//
// Comment lines and anything after the scissors line are dropped first,
// the same way git cleans up a message before committing it.
func Parse(raw string) Commit {
	lines := cleanLines(raw)

	c := Commit{Raw: raw}
	if len(lines) == 0 {
		return c
	}

	c.Header = lines[0]
	if m := ParseMessage(c.Header); m.Type != "" {
		c.Type = m.Type
		c.Scope = m.Scope
		c.Breaking = m.Breaking
		c.Subject = m.CommitMessage
	}

	rest := lines[1:]

	footerStart := -1
	for i, line := range rest {
		if footerTokenRegex.MatchString(line) && (i == 0 || isBlank(rest[i-1])) {
			footerStart = i
			break
		}
	}

	bodyLines := rest
	if footerStart >= 0 {
		bodyLines = rest[:footerStart]
		c.Footer = strings.TrimSpace(strings.Join(rest[footerStart:], "\n"))
		c.FooterLeadingBlank = footerStart > 0 && isBlank(rest[footerStart-1])
	}

	c.Body = strings.TrimSpace(strings.Join(bodyLines, "\n"))
	if c.Body != "" {
		c.BodyLeadingBlank = isBlank(rest[0])
	}

	if strings.Contains(c.Footer, "BREAKING CHANGE:") || strings.Contains(c.Footer, "BREAKING-CHANGE:") {
		c.Breaking = true
	}

	return c
}

// cleanLines normalizes line endings, drops comment lines and the scissors
// section, and trims leading and trailing blank lines.
func cleanLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if line == ScissorsLine {
			break
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}

	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}

	return lines
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
