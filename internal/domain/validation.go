package domain

// Severity indicates how severe a validation finding is.
type Severity string

const (
	// SeverityError marks a finding that makes a poem invalid.
	SeverityError Severity = "error"
	// SeverityWarning marks a finding that should be reviewed but does not
	// invalidate the poem.
	SeverityWarning Severity = "warning"
)

// Field names used by findings that are not tied to a frontmatter key.
const (
	FieldForm    = "form"
	FieldContent = "content"
	FieldFormat  = "format"
)

// ValidationError is a single field-tagged validation finding.
type ValidationError struct {
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// ValidationResult aggregates the findings for one poem file.
// IsValid is true iff no finding has error severity.
type ValidationResult struct {
	IsValid bool              `json:"isValid"`
	Errors  []ValidationError `json:"errors"`
}

// NewValidationResult builds a result from findings, deriving IsValid.
func NewValidationResult(errs []ValidationError) ValidationResult {
	if errs == nil {
		errs = []ValidationError{}
	}
	r := ValidationResult{Errors: errs}
	r.IsValid = r.ErrorCount() == 0
	return r
}

// ErrorCount returns the number of error-severity findings.
func (r ValidationResult) ErrorCount() int {
	n := 0
	for _, e := range r.Errors {
		if e.Severity == SeverityError {
			n++
		}
	}
	return n
}

// WarningCount returns the number of warning-severity findings.
func (r ValidationResult) WarningCount() int {
	return len(r.Errors) - r.ErrorCount()
}

// HasField reports whether any finding is tagged with field.
func (r ValidationResult) HasField(field string) bool {
	for _, e := range r.Errors {
		if e.Field == field {
			return true
		}
	}
	return false
}
