// Package poetics extracts poetic lines from source code and compares their
// end words for rhyme.
package poetics

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eykd/poetic-source-go/internal/domain"
)

// BlockComment is a multi-line comment delimiter pair. Start and End may be
// the same string.
type BlockComment struct {
	Start string
	End   string
}

// Lexicon describes the comment and string syntax of one language.
// Markers are tried in order and the first match wins.
type Lexicon struct {
	SingleLineComment []string
	MultiLineComment  *BlockComment
	StringDelimiters  []string

	stringPatterns []*regexp.Regexp
}

// ConfigurationError reports a language with no lexicon entry. It is a
// programming error, not a problem with the poem.
type ConfigurationError struct {
	Language domain.Language
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unsupported language: %q has no lexical configuration", string(e.Language))
}

var cStyle = &BlockComment{Start: "/*", End: "*/"}

var lexicons = map[domain.Language]*Lexicon{
	domain.LanguageAda: {
		SingleLineComment: []string{"--"},
		StringDelimiters:  []string{`"`},
	},
	domain.LanguageAlgol68: {
		SingleLineComment: []string{"#", "CO"},
		MultiLineComment:  &BlockComment{Start: "COMMENT", End: "COMMENT"},
		StringDelimiters:  []string{`"`},
	},
	domain.LanguageAPL: {
		SingleLineComment: []string{"⍝"},
		StringDelimiters:  []string{"'"},
	},
	domain.LanguageBefunge: {
		SingleLineComment: []string{";"},
		StringDelimiters:  []string{`"`},
	},
	domain.LanguageC: {
		SingleLineComment: []string{"//"},
		MultiLineComment:  cStyle,
		StringDelimiters:  []string{`"`},
	},
	domain.LanguageCPP: {
		SingleLineComment: []string{"//"},
		MultiLineComment:  cStyle,
		StringDelimiters:  []string{`"`},
	},
	domain.LanguageGo: {
		SingleLineComment: []string{"//"},
		MultiLineComment:  cStyle,
		StringDelimiters:  []string{`"`, "`"},
	},
	domain.LanguageJava: {
		SingleLineComment: []string{"//"},
		MultiLineComment:  cStyle,
		StringDelimiters:  []string{`"`},
	},
	domain.LanguageJavaScript: {
		SingleLineComment: []string{"//"},
		MultiLineComment:  cStyle,
		StringDelimiters:  []string{`"`, "'", "`"},
	},
	domain.LanguageKotlin: {
		SingleLineComment: []string{"//"},
		MultiLineComment:  cStyle,
		StringDelimiters:  []string{`"`, "'"},
	},
	domain.LanguageLisp: {
		SingleLineComment: []string{";"},
		MultiLineComment:  &BlockComment{Start: "#|", End: "|#"},
		StringDelimiters:  []string{`"`},
	},
	domain.LanguageObjectiveC: {
		SingleLineComment: []string{"//"},
		MultiLineComment:  cStyle,
		StringDelimiters:  []string{`@"`, `"`},
	},
	domain.LanguagePython: {
		SingleLineComment: []string{"#"},
		StringDelimiters:  []string{`"""`, "'''", `"`, "'"},
	},
	domain.LanguageRuby: {
		SingleLineComment: []string{"#"},
		MultiLineComment:  &BlockComment{Start: "=begin", End: "=end"},
		StringDelimiters:  []string{`"`, "'"},
	},
	domain.LanguageSQL: {
		SingleLineComment: []string{"--"},
		MultiLineComment:  cStyle,
		StringDelimiters:  []string{"'"},
	},
	domain.LanguageSwift: {
		SingleLineComment: []string{"//"},
		MultiLineComment:  cStyle,
		StringDelimiters:  []string{`"`},
	},
}

func init() {
	for _, lex := range lexicons {
		lex.stringPatterns = make([]*regexp.Regexp, len(lex.StringDelimiters))
		for i, d := range lex.StringDelimiters {
			lex.stringPatterns[i] = delimitedPattern(d)
		}
	}
}

// delimitedPattern matches d, a run of characters not in d, then d again.
func delimitedPattern(d string) *regexp.Regexp {
	var class strings.Builder
	seen := make(map[rune]bool)
	for _, r := range d {
		if seen[r] {
			continue
		}
		seen[r] = true
		class.WriteString(regexp.QuoteMeta(string(r)))
	}
	q := regexp.QuoteMeta(d)
	return regexp.MustCompile(q + "[^" + class.String() + "]*" + q)
}

// LexiconFor returns the lexical configuration for lang.
func LexiconFor(lang domain.Language) (*Lexicon, error) {
	lex, ok := lexicons[lang]
	if !ok {
		return nil, &ConfigurationError{Language: lang}
	}
	return lex, nil
}

// firstString returns the inner text of the first delimited span, trying
// delimiters in order. It reports false when no delimiter matched at all.
func (l *Lexicon) firstString(line string) (string, bool) {
	for i, d := range l.StringDelimiters {
		m := l.stringPatterns[i].FindString(line)
		if m == "" {
			continue
		}
		return m[len(d) : len(m)-len(d)], true
	}
	return "", false
}
