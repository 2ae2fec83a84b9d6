package forms

import (
	"github.com/eykd/poetic-source-go/internal/domain"
	"github.com/eykd/poetic-source-go/internal/poetics"
)

// RhymePattern names a quatrain rhyme scheme.
type RhymePattern string

const (
	PatternNone RhymePattern = ""
	PatternAABA RhymePattern = "AABA"
	PatternAAAA RhymePattern = "AAAA"
)

const quatrainSize = 4

// RubaiResult adds the first rhyme pattern found to Result. PatternLine is
// the source line where the matching quatrain starts.
type RubaiResult struct {
	Result
	Pattern     RhymePattern `json:"pattern,omitempty"`
	PatternLine int          `json:"patternLine,omitempty"`
}

// ValidateRubai requires at least four meaningful lines, then searches every
// run of four consecutive lines for an AABA or AAAA rhyme. A missing pattern
// is a warning: rhyme matching is approximate.
func ValidateRubai(content string, lang domain.Language) (RubaiResult, error) {
	lines, err := poetics.ExtractPoeticLines(content, lang)
	if err != nil {
		return RubaiResult{}, err
	}

	if len(lines) < quatrainSize {
		return RubaiResult{Result: newResult(domain.FormRubai, lines, []Issue{{
			Message:  "Rubaʿi must have at least four meaningful lines",
			Severity: domain.SeverityError,
		}})}, nil
	}

	endWords := make([]string, len(lines))
	for i, l := range lines {
		endWords[i] = poetics.QuatrainEndWord(l.Content, l.Type == domain.LineComment)
	}

	for i := 0; i+quatrainSize <= len(lines); i++ {
		if p := rhymePattern(endWords[i : i+quatrainSize]); p != PatternNone {
			return RubaiResult{
				Result:      newResult(domain.FormRubai, lines, nil),
				Pattern:     p,
				PatternLine: lines[i].LineNumber,
			}, nil
		}
	}

	return RubaiResult{Result: newResult(domain.FormRubai, lines, []Issue{{
		Message:  "Rubaʿi should follow either AABA or AAAA rhyme pattern. Check end rhymes of each line.",
		Severity: domain.SeverityWarning,
	}})}, nil
}

// rhymePattern classifies four end words.
func rhymePattern(w []string) RhymePattern {
	if poetics.RhymesWith(w[1], w[0]) && poetics.RhymesWith(w[2], w[0]) && poetics.RhymesWith(w[3], w[0]) {
		return PatternAAAA
	}
	if poetics.RhymesWith(w[0], w[1]) && poetics.RhymesWith(w[1], w[3]) && !poetics.RhymesWith(w[2], w[0]) {
		return PatternAABA
	}
	return PatternNone
}
