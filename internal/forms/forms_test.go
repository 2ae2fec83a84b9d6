package forms

import (
	"errors"
	"strings"
	"testing"

	"github.com/eykd/poetic-source-go/internal/domain"
	"github.com/eykd/poetic-source-go/internal/poetics"
)

func pyComments(lines ...string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString("# " + l + "\n")
	}
	return b.String()
}

func countSeverity(issues []Issue, sev domain.Severity) int {
	n := 0
	for _, is := range issues {
		if is.Severity == sev {
			n++
		}
	}
	return n
}

func TestValidateHaiku(t *testing.T) {
	tests := []struct {
		name         string
		lines        []string
		wantValid    bool
		wantErrors   int
		wantWarnings int
	}{
		{"three lines", []string{"morning light breaks through", "frost upon the silent pond", "shadows dance and fade"}, true, 0, 0},
		{"two lines", []string{"morning light", "shadows fade"}, false, 1, 0},
		{"five lines", []string{"a1", "b1", "c1", "d1", "e1"}, true, 0, 0},
		{"six lines warns", []string{"a1", "b1", "c1", "d1", "e1", "f1"}, true, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ValidateHaiku(pyComments(tt.lines...), domain.LanguagePython)
			if err != nil {
				t.Fatalf("ValidateHaiku() error = %v", err)
			}
			if r.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", r.Valid, tt.wantValid)
			}
			if got := countSeverity(r.Issues, domain.SeverityError); got != tt.wantErrors {
				t.Errorf("errors = %d, want %d", got, tt.wantErrors)
			}
			if got := countSeverity(r.Issues, domain.SeverityWarning); got != tt.wantWarnings {
				t.Errorf("warnings = %d, want %d", got, tt.wantWarnings)
			}
			if len(r.Lines) != len(tt.lines) {
				t.Errorf("Lines = %d, want %d", len(r.Lines), len(tt.lines))
			}
		})
	}
}

func TestValidateHaiku_TooFewShortCircuits(t *testing.T) {
	r, err := ValidateHaiku("", domain.LanguageGo)
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if len(r.Issues) != 1 {
		t.Fatalf("Issues = %d, want 1", len(r.Issues))
	}
	if r.Issues[0].Message != "Haiku must have at least three meaningful lines" {
		t.Errorf("Message = %q", r.Issues[0].Message)
	}
}

func TestValidateTanka(t *testing.T) {
	tests := []struct {
		name         string
		count        int
		wantValid    bool
		wantWarnings int
	}{
		{"four lines", 4, false, 0},
		{"five lines", 5, true, 0},
		{"eight lines", 8, true, 0},
		{"nine lines", 9, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := make([]string, tt.count)
			for i := range lines {
				lines[i] = "verse line"
			}
			r, err := ValidateTanka(pyComments(lines...), domain.LanguagePython)
			if err != nil {
				t.Fatalf("ValidateTanka() error = %v", err)
			}
			if r.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", r.Valid, tt.wantValid)
			}
			if got := countSeverity(r.Issues, domain.SeverityWarning); got != tt.wantWarnings {
				t.Errorf("warnings = %d, want %d", got, tt.wantWarnings)
			}
		})
	}
}

func TestValidateKoanAndFreeVerse_AlwaysValid(t *testing.T) {
	for _, v := range []Validator{ValidateKoan, ValidateFreeVerse} {
		r, err := v("", domain.LanguageLisp)
		if err != nil {
			t.Fatalf("error = %v", err)
		}
		if !r.Valid || len(r.Issues) != 0 {
			t.Errorf("got Valid=%v Issues=%v, want valid with no issues", r.Valid, r.Issues)
		}
	}
}

func TestValidateGhazal_SharedRefrain(t *testing.T) {
	content := pyComments(
		"I search the stars", "and wait for you",
		"the loop returns", "and waits for you",
		"the stack unwinds", "still calls for you",
	)

	r, err := ValidateGhazal(content, domain.LanguagePython)
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if !r.Valid {
		t.Errorf("Valid = false, issues: %+v", r.Issues)
	}
	if len(r.Issues) != 0 {
		t.Errorf("Issues = %+v, want none", r.Issues)
	}
	if len(r.Couplets) != 3 {
		t.Errorf("Couplets = %d, want 3", len(r.Couplets))
	}
}

func TestValidateGhazal_TwoCouplets(t *testing.T) {
	content := pyComments("one", "for you", "two", "for you")

	r, err := ValidateGhazal(content, domain.LanguagePython)
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if r.Valid {
		t.Error("Valid = true, want false")
	}
	if countSeverity(r.Issues, domain.SeverityError) != 1 {
		t.Fatalf("Issues = %+v, want one error", r.Issues)
	}
	if !strings.Contains(r.Issues[0].Message, "at least 3 couplets") {
		t.Errorf("Message = %q, want mention of at least 3 couplets", r.Issues[0].Message)
	}
}

func TestValidateGhazal_MismatchIsWarning(t *testing.T) {
	content := pyComments(
		"first", "the night",
		"second", "the light",
		"third", "the stack",
		"dangling",
	)

	r, err := ValidateGhazal(content, domain.LanguagePython)
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if !r.Valid {
		t.Errorf("Valid = false, want true")
	}
	if len(r.Couplets) != 3 {
		t.Errorf("Couplets = %d, want 3 (trailing line dropped)", len(r.Couplets))
	}
	if len(r.Issues) != 1 {
		t.Fatalf("Issues = %+v, want one warning", r.Issues)
	}
	is := r.Issues[0]
	if is.Severity != domain.SeverityWarning {
		t.Errorf("Severity = %q, want warning", is.Severity)
	}
	if is.Line != 6 {
		t.Errorf("Line = %d, want 6", is.Line)
	}
	if is.Message != "Couplet 3 doesn't maintain the rhyme pattern" {
		t.Errorf("Message = %q", is.Message)
	}
}

func TestValidateRubai(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		wantValid   bool
		wantPattern RhymePattern
		wantIssues  int
	}{
		{"AABA", []string{"we design", "stars align", "the night slips away", "and we design"}, true, PatternAABA, 0},
		{"AAAA", []string{"light", "night", "bright", "sight"}, true, PatternAAAA, 0},
		{"pattern in later window", []string{"preface", "we design", "stars align", "the night slips away", "and we design"}, true, PatternAABA, 0},
		{"no pattern warns", []string{"stack", "heap", "queue", "tree"}, true, PatternNone, 1},
		{"too few lines", []string{"light", "night", "bright"}, false, PatternNone, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ValidateRubai(pyComments(tt.lines...), domain.LanguagePython)
			if err != nil {
				t.Fatalf("ValidateRubai() error = %v", err)
			}
			if r.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", r.Valid, tt.wantValid)
			}
			if r.Pattern != tt.wantPattern {
				t.Errorf("Pattern = %q, want %q", r.Pattern, tt.wantPattern)
			}
			if len(r.Issues) != tt.wantIssues {
				t.Errorf("Issues = %+v, want %d", r.Issues, tt.wantIssues)
			}
		})
	}
}

func TestValidateRubai_PatternLine(t *testing.T) {
	content := "# preface\n\n# we design\n# stars align\n# far away\n# we design\n"

	r, err := ValidateRubai(content, domain.LanguagePython)
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if r.PatternLine != 3 {
		t.Errorf("PatternLine = %d, want 3", r.PatternLine)
	}
}

func TestValidators_PropagateConfigurationError(t *testing.T) {
	for _, form := range domain.Forms() {
		v, ok := For(form)
		if !ok {
			t.Fatalf("For(%q) not registered", form)
		}
		_, err := v("// x", domain.Language("brainfuck"))
		var cfgErr *poetics.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%s: error = %v, want *ConfigurationError", form, err)
		}
	}
}

func TestFor_UnknownForm(t *testing.T) {
	if _, ok := For(domain.Form("sonnet")); ok {
		t.Error("For(sonnet) ok = true, want false")
	}
}
