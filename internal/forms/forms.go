// Package forms checks extracted poetic lines against the structural rules
// of each poetic form.
package forms

import (
	"github.com/eykd/poetic-source-go/internal/domain"
	"github.com/eykd/poetic-source-go/internal/poetics"
)

// Issue is a form-level finding. Line is 0 when the finding is not tied to
// a single source line.
type Issue struct {
	Message  string          `json:"message"`
	Line     int             `json:"line,omitempty"`
	Severity domain.Severity `json:"severity"`
}

// Result is the outcome of validating content against one form.
type Result struct {
	Form   domain.Form         `json:"form"`
	Valid  bool                `json:"isValid"`
	Issues []Issue             `json:"errors"`
	Lines  []domain.PoeticLine `json:"lines"`
}

// Validator checks content written in lang against a form.
type Validator func(content string, lang domain.Language) (Result, error)

var registry = map[domain.Form]Validator{
	domain.FormHaiku: ValidateHaiku,
	domain.FormTanka: ValidateTanka,
	domain.FormGhazal: func(content string, lang domain.Language) (Result, error) {
		r, err := ValidateGhazal(content, lang)
		return r.Result, err
	},
	domain.FormRubai: func(content string, lang domain.Language) (Result, error) {
		r, err := ValidateRubai(content, lang)
		return r.Result, err
	},
	domain.FormKoan:      ValidateKoan,
	domain.FormFreeVerse: ValidateFreeVerse,
}

// For returns the validator registered for form.
func For(form domain.Form) (Validator, bool) {
	v, ok := registry[form]
	return v, ok
}

func newResult(form domain.Form, lines []domain.PoeticLine, issues []Issue) Result {
	valid := true
	for _, is := range issues {
		if is.Severity == domain.SeverityError {
			valid = false
			break
		}
	}
	return Result{Form: form, Valid: valid, Issues: issues, Lines: lines}
}

// lineCountRule is the shape shared by haiku and tanka: a hard minimum and a
// soft maximum on the number of meaningful lines.
type lineCountRule struct {
	form     domain.Form
	min, max int
	tooFew   string
	tooMany  string
}

func (r lineCountRule) validate(content string, lang domain.Language) (Result, error) {
	lines, err := poetics.ExtractPoeticLines(content, lang)
	if err != nil {
		return Result{}, err
	}

	if len(lines) < r.min {
		return newResult(r.form, lines, []Issue{{Message: r.tooFew, Severity: domain.SeverityError}}), nil
	}

	var issues []Issue
	if len(lines) > r.max {
		issues = append(issues, Issue{Message: r.tooMany, Severity: domain.SeverityWarning})
	}
	return newResult(r.form, lines, issues), nil
}

var haikuRule = lineCountRule{
	form:    domain.FormHaiku,
	min:     3,
	max:     5,
	tooFew:  "Haiku must have at least three meaningful lines",
	tooMany: "Haiku seems to have too many meaningful lines. Consider condensing the expression",
}

var tankaRule = lineCountRule{
	form:    domain.FormTanka,
	min:     5,
	max:     8,
	tooFew:  "Tanka must have at least five meaningful lines",
	tooMany: "Tanka seems to have too many meaningful lines. Consider condensing the expression",
}

// ValidateHaiku requires at least three meaningful lines and warns past five.
func ValidateHaiku(content string, lang domain.Language) (Result, error) {
	return haikuRule.validate(content, lang)
}

// ValidateTanka requires at least five meaningful lines and warns past eight.
func ValidateTanka(content string, lang domain.Language) (Result, error) {
	return tankaRule.validate(content, lang)
}

// ValidateKoan accepts any content; koans are unconstrained.
func ValidateKoan(content string, lang domain.Language) (Result, error) {
	return unconstrained(domain.FormKoan, content, lang)
}

// ValidateFreeVerse accepts any content.
func ValidateFreeVerse(content string, lang domain.Language) (Result, error) {
	return unconstrained(domain.FormFreeVerse, content, lang)
}

func unconstrained(form domain.Form, content string, lang domain.Language) (Result, error) {
	lines, err := poetics.ExtractPoeticLines(content, lang)
	if err != nil {
		return Result{}, err
	}
	return newResult(form, lines, nil), nil
}
