package forms

import (
	"fmt"

	"github.com/eykd/poetic-source-go/internal/domain"
	"github.com/eykd/poetic-source-go/internal/poetics"
)

const minCouplets = 3

// Couplet is a pair of consecutive poetic lines.
type Couplet struct {
	First  domain.PoeticLine `json:"first"`
	Second domain.PoeticLine `json:"second"`
}

// GhazalResult adds the grouped couplets to Result.
type GhazalResult struct {
	Result
	Couplets []Couplet `json:"couplets"`
}

// ValidateGhazal groups lines into couplets, requires at least three of
// them, and warns when a couplet's second line does not rhyme with the
// refrain set by the first couplet.
func ValidateGhazal(content string, lang domain.Language) (GhazalResult, error) {
	lines, err := poetics.ExtractPoeticLines(content, lang)
	if err != nil {
		return GhazalResult{}, err
	}

	couplets := make([]Couplet, 0, len(lines)/2)
	for i := 0; i+1 < len(lines); i += 2 {
		couplets = append(couplets, Couplet{First: lines[i], Second: lines[i+1]})
	}

	var issues []Issue
	if len(couplets) < minCouplets {
		issues = append(issues, Issue{
			Message:  fmt.Sprintf("Ghazal should have at least %d couplets", minCouplets),
			Severity: domain.SeverityError,
		})
	}

	if len(couplets) > 0 {
		refrain := poetics.EndWord(couplets[0].Second.Content)
		for i, c := range couplets[1:] {
			if poetics.RhymesWith(refrain, poetics.EndWord(c.Second.Content)) {
				continue
			}
			issues = append(issues, Issue{
				Message:  fmt.Sprintf("Couplet %d doesn't maintain the rhyme pattern", i+2),
				Line:     c.Second.LineNumber,
				Severity: domain.SeverityWarning,
			})
		}
	}

	return GhazalResult{
		Result:   newResult(domain.FormGhazal, lines, issues),
		Couplets: couplets,
	}, nil
}
