// Package validate checks poem files: frontmatter structure first, then the
// poetic form the poem declares.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/eykd/poetic-source-go/internal/domain"
	"github.com/eykd/poetic-source-go/internal/forms"
)

// MaxPreviewLength is the longest allowed preview, in characters.
const MaxPreviewLength = 250

var requiredFields = []string{"id", "title", "author", "date", "form", "language", "tags", "preview"}

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FrontmatterParser splits a poem file into frontmatter fields and body.
type FrontmatterParser interface {
	Parse(input string) (domain.Frontmatter, error)
}

// SlugSuggester proposes a valid slug for an invalid ID or tag.
type SlugSuggester interface {
	Suggest(s string) (string, bool)
}

// Option configures a Validator.
type Option func(*Validator)

// WithSlugSuggester adds "try ..." hints to ID and tag errors.
func WithSlugSuggester(s SlugSuggester) Option {
	return func(v *Validator) { v.slugs = s }
}

// Validator validates poem files.
type Validator struct {
	parser FrontmatterParser
	slugs  SlugSuggester
}

// NewValidator creates a Validator that reads frontmatter with parser.
func NewValidator(parser FrontmatterParser, opts ...Option) *Validator {
	v := &Validator{parser: parser}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidatePoemStructure validates a poem file. Frontmatter problems are
// reported together and stop form validation; otherwise the declared form's
// findings are added under the "form" field. The returned error is reserved
// for configuration faults such as a language with no lexicon.
func (v *Validator) ValidatePoemStructure(fileContent string) (domain.ValidationResult, error) {
	doc, err := v.parser.Parse(fileContent)
	if err != nil {
		return domain.NewValidationResult([]domain.ValidationError{
			errorf(domain.FieldFormat, "Invalid frontmatter format"),
		}), nil
	}

	if errs := v.checkStructure(doc); len(errs) > 0 {
		return domain.NewValidationResult(errs), nil
	}

	form, _ := domain.ParseForm(doc.Get("form").Text)
	lang, _ := domain.ParseLanguage(doc.Get("language").Text)
	errs, err := formFindings(doc.Body, form, lang)
	if err != nil {
		return domain.ValidationResult{}, err
	}
	return domain.NewValidationResult(errs), nil
}

// CreateValidatedPoem validates fileContent and, when it is valid, returns
// the poem it describes.
func (v *Validator) CreateValidatedPoem(fileContent string) (*domain.Poem, domain.ValidationResult, error) {
	result, err := v.ValidatePoemStructure(fileContent)
	if err != nil || !result.IsValid {
		return nil, result, err
	}

	doc, err := v.parser.Parse(fileContent)
	if err != nil {
		return nil, result, err
	}

	date, _ := parseDate(doc.Get("date").Text)
	form, _ := domain.ParseForm(doc.Get("form").Text)
	lang, _ := domain.ParseLanguage(doc.Get("language").Text)

	tags := make([]string, 0, len(doc.Get("tags").Items))
	for _, t := range doc.Get("tags").Items {
		tags = append(tags, t.Text)
	}

	notes := doc.Get("notes")
	return &domain.Poem{
		ID:       doc.Get("id").Text,
		Title:    doc.Get("title").Text,
		Author:   doc.Get("author").Text,
		Date:     date.UTC(),
		Form:     form,
		Language: lang,
		Tags:     tags,
		Content:  doc.Body,
		Notes: domain.PoemNotes{
			Composition:   notes.Fields[domain.NoteComposition].Text,
			Technical:     notes.Fields[domain.NoteTechnical].Text,
			Philosophical: notes.Fields[domain.NotePhilosophical].Text,
		},
		Preview: doc.Get("preview").Text,
	}, result, nil
}

func (v *Validator) checkStructure(doc domain.Frontmatter) []domain.ValidationError {
	var errs []domain.ValidationError

	for _, field := range requiredFields {
		if !doc.Has(field) {
			errs = append(errs, errorf(field, "Missing required field: %s", field))
		}
	}

	if doc.Has("id") {
		errs = append(errs, v.checkID(doc.Get("id"))...)
	}
	if doc.Has("date") {
		errs = append(errs, checkDate(doc.Get("date"))...)
	}
	if doc.Has("form") {
		errs = append(errs, checkFormName(doc.Get("form"))...)
	}
	if doc.Has("language") {
		errs = append(errs, checkLanguage(doc.Get("language"))...)
	}
	if doc.Has("tags") {
		errs = append(errs, v.checkTags(doc.Get("tags"))...)
	}
	if doc.Has("preview") {
		errs = append(errs, checkPreview(doc.Get("preview"))...)
	}
	if doc.Has("notes") {
		errs = append(errs, checkNotes(doc.Get("notes"))...)
	}

	if strings.TrimSpace(doc.Body) == "" {
		errs = append(errs, errorf(domain.FieldContent, "Poem content cannot be empty"))
	}

	return errs
}

func (v *Validator) checkID(val domain.FieldValue) []domain.ValidationError {
	if val.Kind != domain.KindScalar {
		return []domain.ValidationError{errorf("id", "ID must be a string")}
	}
	if slugPattern.MatchString(val.Text) {
		return nil
	}
	return []domain.ValidationError{
		errorf("id", "ID must contain only lowercase letters, numbers, and hyphens%s", v.hint(val.Text)),
	}
}

func checkDate(val domain.FieldValue) []domain.ValidationError {
	if val.Kind == domain.KindScalar {
		if _, ok := parseDate(val.Text); ok {
			return nil
		}
	}
	return []domain.ValidationError{
		errorf("date", "Invalid date format. Use ISO 8601 format (YYYY-MM-DDTHH:MM:SSZ)"),
	}
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func checkFormName(val domain.FieldValue) []domain.ValidationError {
	if _, ok := domain.ParseForm(val.Text); ok && val.Kind == domain.KindScalar {
		return nil
	}
	return []domain.ValidationError{
		errorf("form", "Invalid form. Must be one of: %s", domain.FormNames(", ")),
	}
}

func checkLanguage(val domain.FieldValue) []domain.ValidationError {
	if _, ok := domain.ParseLanguage(val.Text); ok && val.Kind == domain.KindScalar {
		return nil
	}
	return []domain.ValidationError{
		errorf("language", "Invalid language. Must be one of: %s", domain.LanguageNames(", ")),
	}
}

func (v *Validator) checkTags(val domain.FieldValue) []domain.ValidationError {
	if val.Kind != domain.KindSequence {
		return []domain.ValidationError{errorf("tags", "Tags must be an array")}
	}

	var errs []domain.ValidationError
	for i, tag := range val.Items {
		field := fmt.Sprintf("tags[%d]", i)
		switch {
		case !tag.IsString():
			errs = append(errs, errorf(field, "Each tag must be a string"))
		case !slugPattern.MatchString(tag.Text):
			errs = append(errs, errorf(field, "Tags must contain only lowercase letters, numbers, and hyphens%s", v.hint(tag.Text)))
		}
	}
	return errs
}

func checkPreview(val domain.FieldValue) []domain.ValidationError {
	if !val.IsString() {
		return []domain.ValidationError{errorf("preview", "Preview must be a string")}
	}
	if utf8.RuneCountInString(val.Text) > MaxPreviewLength {
		return []domain.ValidationError{
			errorf("preview", "Preview must be %d characters or less", MaxPreviewLength),
		}
	}
	return nil
}

func checkNotes(val domain.FieldValue) []domain.ValidationError {
	if val.Kind != domain.KindMapping {
		return []domain.ValidationError{errorf("notes", "Notes must be an object")}
	}

	allowed := domain.NoteKeys()
	var errs []domain.ValidationError
	for _, key := range val.Keys {
		field := "notes." + key
		if !contains(allowed, key) {
			errs = append(errs, errorf(field, "Invalid note type. Must be one of: %s", strings.Join(allowed, ", ")))
		}
		if note := val.Fields[key]; note.Truthy() && !note.IsString() {
			errs = append(errs, errorf(field, "Note content must be a string"))
		}
	}
	return errs
}

// formFindings dispatches to the form validator and flattens its issues.
func formFindings(body string, form domain.Form, lang domain.Language) ([]domain.ValidationError, error) {
	validator, ok := forms.For(form)
	if !ok {
		return []domain.ValidationError{errorf(domain.FieldForm, "Unknown poem form: %s", form)}, nil
	}

	result, err := validator(body, lang)
	if err != nil {
		return nil, err
	}

	errs := make([]domain.ValidationError, 0, len(result.Issues))
	for _, is := range result.Issues {
		msg := is.Message
		if is.Line > 0 {
			msg += fmt.Sprintf(" (line %d)", is.Line)
		}
		errs = append(errs, domain.ValidationError{Field: domain.FieldForm, Message: msg, Severity: is.Severity})
	}
	return errs, nil
}

func (v *Validator) hint(s string) string {
	if v.slugs == nil {
		return ""
	}
	if suggestion, ok := v.slugs.Suggest(s); ok {
		return fmt.Sprintf(" (try %q)", suggestion)
	}
	return ""
}

func errorf(field, format string, args ...any) domain.ValidationError {
	return domain.ValidationError{
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
		Severity: domain.SeverityError,
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
