package commit

import (
	"fmt"
	"strings"
)

type Message struct {
	Type          string
	Scope         string
	Breaking      bool
	CommitMessage string
}

// ToString converts the Message struct into a string representation.
func (m Message) ToString() string {
	var out string
	if m.Type != "" {
		if strings.HasSuffix(m.Type, "!") {
			m.Type = m.Type[:len(m.Type)-1]
			m.Breaking = true
		}
		m.Type = strings.TrimSpace(m.Type)
		out += m.Type
		if strings.HasSuffix(m.Scope, "!") {
			m.Scope = m.Scope[:len(m.Scope)-1]
			m.Breaking = true
		}
		m.Scope = strings.TrimSpace(m.Scope)
		if m.Scope != "" {
			out += fmt.Sprintf("(%s)", m.Scope)
		}
		if m.Breaking {
			out += "!"
		}
		out += ": "
	}
	m.CommitMessage = strings.TrimSpace(m.CommitMessage)
	out += m.CommitMessage
	return out
}

// Commit is a fully parsed commit message: the conventional header split
// into its parts, plus the body and footer paragraphs.
type Commit struct {
	Raw      string
	Header   string
	Type     string
	Scope    string
	Breaking bool
	Subject  string
	Body     string
	Footer   string

	// BodyLeadingBlank and FooterLeadingBlank report whether the body and
	// footer were separated from the preceding section by an empty line.
	BodyLeadingBlank   bool
	FooterLeadingBlank bool
}

// Message returns the header part of the commit as a Message. A header
// that is not in the conventional format becomes the whole CommitMessage.
func (c Commit) Message() Message {
	if c.Type == "" {
		return Message{CommitMessage: c.Header}
	}
	return Message{
		Type:          c.Type,
		Scope:         c.Scope,
		Breaking:      c.Breaking,
		CommitMessage: c.Subject,
	}
}

// Scopes returns the individual scopes of a multi-scope header such as
// "feat(api,cli): ...".
func (c Commit) Scopes() []string {
	if c.Scope == "" {
		return nil
	}

	var scopes []string
	for _, s := range strings.FieldsFunc(c.Scope, func(r rune) bool {
		return r == ',' || r == '/' || r == '\\'
	}) {
		if s = strings.TrimSpace(s); s != "" {
			scopes = append(scopes, s)
		}
	}
	return scopes
}

type Type int

const (
	// SimpleType denotes a basic type of commit without any specific
	// format or structure.
	SimpleType Type = iota
	// ConventionalType represents a commit type that adheres to the
	// conventional commit format.
	ConventionalType
)

var TypeIds = map[Type][]string{
	SimpleType:       {"simple"},
	ConventionalType: {"conventional"},
}

// ToString converts the Type value to a string representation.
func (t Type) ToString() string {
	if val, ok := TypeIds[t]; ok {
		return val[0]
	}
	return fmt.Sprintf("UnknownType(%d)", t)
}

// commitTypeFormats provides format templates for different commit types.
var commitTypeFormats = map[Type]string{
	SimpleType:       "<commit message>",
	ConventionalType: "<type>(<optional scope>): <commit message>",
}

// CommitFormat returns the format template associated with the commit type.
func (t Type) CommitFormat() string {
	return commitTypeFormats[t]
}
