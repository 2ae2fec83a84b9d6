package domain

import "strings"

// Form is a named poetic structure.
type Form string

// Poetic forms, in their canonical order.
const (
	FormGhazal    Form = "ghazal"
	FormHaiku     Form = "haiku"
	FormKoan      Form = "koan"
	FormRubai     Form = "rubai"
	FormTanka     Form = "tanka"
	FormFreeVerse Form = "freeverse"
)

var forms = []Form{FormGhazal, FormHaiku, FormKoan, FormRubai, FormTanka, FormFreeVerse}

// Forms returns every supported form in canonical order.
func Forms() []Form {
	out := make([]Form, len(forms))
	copy(out, forms)
	return out
}

// ParseForm returns the Form named by s, or false if s is not a known form.
func ParseForm(s string) (Form, bool) {
	for _, f := range forms {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// FormNames joins all form names with the given separator.
func FormNames(sep string) string {
	names := make([]string, len(forms))
	for i, f := range forms {
		names[i] = string(f)
	}
	return strings.Join(names, sep)
}

// FormInfo describes a form for readers and authors.
type FormInfo struct {
	Form               Form
	DisplayName        string
	Description        string
	Rules              []string
	CodeConsiderations []string
}

var formInfo = map[Form]FormInfo{
	FormGhazal: {
		Form:        FormGhazal,
		Description: "Repeated patterns mirror recursive functions",
		Rules: []string{
			"Series of couplets with repeating refrain",
			"Each couplet is independent yet connected",
			"Often deals with love and longing",
			"Complex internal rhyme schemes",
		},
		CodeConsiderations: []string{
			"Good for repetitive operations with variations",
			"Can represent different cases of same operation",
			"Refrain can echo core programming concept",
		},
	},
	FormHaiku: {
		Form:        FormHaiku,
		Description: "5-7-5 syllables, perfect for concise algorithms",
		Rules: []string{
			"Three lines of 5, 7, and 5 syllables",
			"Often contains a seasonal reference",
			"Presents a single, clear image or feeling",
		},
		CodeConsiderations: []string{
			"Works well for simple functions or operations",
			"Each line can represent a step in a small algorithm",
			"Comments can be used to maintain syllable structure",
		},
	},
	FormKoan: {
		Form:        FormKoan,
		Description: "Explores paradoxes in computer science",
		Rules: []string{
			"Presents a paradox or puzzle",
			"Often includes a surprising turn",
			"Questions common assumptions",
			"May not have a clear resolution",
		},
		CodeConsiderations: []string{
			"Excellent for exploring recursive concepts",
			"Can demonstrate programming paradoxes",
			"Works well with self-referential code",
		},
	},
	FormRubai: {
		Form:        FormRubai,
		DisplayName: "Rubaʿi",
		Description: "Four-line mathematical-mystical form bridging computation and cosmic truth",
		Rules: []string{
			"Four lines (quatrain) with AABA or AAAA rhyme pattern",
			"First, second, and fourth lines rhyme",
			"Often structured as: statement, elaboration, pivot, conclusion",
			"Traditionally explores philosophical or metaphysical themes",
		},
		CodeConsiderations: []string{
			"First two lines can establish a computational concept",
			"Third line can introduce a twist or different perspective",
			"Final line often reveals deeper meaning or returns to initial concept",
		},
	},
	FormTanka: {
		Form:        FormTanka,
		Description: "5-7-5-7-7 syllables, good for multi-step algorithms",
		Rules: []string{
			"Five lines of 5, 7, 5, 7, 7 syllables",
			"Builds on haiku with two additional lines",
			"Often more personal and emotional than haiku",
		},
		CodeConsiderations: []string{
			"Suitable for algorithms with setup and results",
			"Extra lines allow for more complex operations",
			"Can include both operation and its outcome",
		},
	},
	FormFreeVerse: {
		Form:        FormFreeVerse,
		DisplayName: "Free Verse",
		Description: "Unrestricted form for complex concepts",
		Rules: []string{
			"No fixed pattern of rhyme or meter",
			"Freedom to break conventional rules",
			"Emphasis on natural rhythm",
			"Structure serves the content",
		},
		CodeConsiderations: []string{
			"Flexible format for complex algorithms",
			"Can follow natural flow of code",
			"Allows focus on clarity of expression",
		},
	},
}

// Info returns the descriptive metadata for f. DisplayName is empty when the
// form has no irregular display name; callers title-case the form instead.
func (f Form) Info() (FormInfo, bool) {
	info, ok := formInfo[f]
	return info, ok
}
