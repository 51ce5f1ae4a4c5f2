package lint

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/duke-git/lancet/v2/strutil"
	"github.com/samber/lo"
)

// Case is a letter case a commit message part can be required to be in.
type Case string

const (
	LowerCase    Case = "lower-case"
	UpperCase    Case = "upper-case"
	CamelCase    Case = "camel-case"
	KebabCase    Case = "kebab-case"
	PascalCase   Case = "pascal-case"
	SentenceCase Case = "sentence-case"
	SnakeCase    Case = "snake-case"
	StartCase    Case = "start-case"
)

// caseAliases maps the alternative spellings accepted in configuration
// files to the canonical case name.
var caseAliases = map[string]Case{
	"lowercase":    LowerCase,
	"lowerCase":    LowerCase,
	"uppercase":    UpperCase,
	"sentencecase": SentenceCase,
}

var knownCases = []Case{LowerCase, UpperCase, CamelCase, KebabCase, PascalCase, SentenceCase, SnakeCase, StartCase}

// ParseCase returns the canonical case for name.
func ParseCase(name string) (Case, bool) {
	if c, ok := caseAliases[name]; ok {
		return c, true
	}
	c := Case(name)
	return c, lo.Contains(knownCases, c)
}

// quotedRegex matches quoted fragments, which may contain proper nouns and
// are left out of case checks.
var quotedRegex = regexp.MustCompile("(\"[^\"]*\"|'[^']*'|`[^`]*`)(\\s|$)")

var whitespaceRegex = regexp.MustCompile(`\s+`)

// IsCase reports whether s is already written in the given case, that is
// converting it leaves it unchanged. Strings without letters are in every
// case.
func IsCase(s string, c Case) bool {
	input := quotedRegex.ReplaceAllString(s, "")
	input = strings.TrimSpace(whitespaceRegex.ReplaceAllString(input, " "))

	if !strings.ContainsFunc(input, unicode.IsLetter) {
		return true
	}

	transformed := ToCase(input, c)
	if transformed == "" || unicode.IsDigit([]rune(transformed)[0]) {
		return true
	}

	return transformed == input
}

// ToCase converts s to the given case. Unknown cases return s unchanged.
func ToCase(s string, c Case) string {
	switch c {
	case LowerCase:
		return strings.ToLower(s)
	case UpperCase:
		return strings.ToUpper(s)
	case CamelCase:
		return strutil.CamelCase(s)
	case KebabCase:
		return strutil.KebabCase(s)
	case SnakeCase:
		return strutil.SnakeCase(s)
	case PascalCase:
		return strutil.UpperFirst(strutil.CamelCase(s))
	case SentenceCase:
		return strutil.UpperFirst(s)
	case StartCase:
		return startCase(s)
	}
	return s
}

// startCase upper-cases the first letter of every word and joins the words
// with single spaces. Words are split on non-alphanumeric characters and
// on lower-to-upper transitions.
func startCase(s string) string {
	var (
		words []string
		word  []rune
		prev  rune
	)

	flush := func() {
		if len(word) > 0 {
			words = append(words, strutil.UpperFirst(string(word)))
			word = word[:0]
		}
	}

	for _, r := range s {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			flush()
			word = append(word, r)
		default:
			word = append(word, r)
		}
		prev = r
	}
	flush()

	return strings.Join(words, " ")
}
