// Package catalog holds the set of valid poems and answers listing and
// search queries over it.
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/eykd/poetic-source-go/internal/domain"
)

var titleCaser = cases.Title(language.English)

// Catalog is an immutable, date-ordered collection of poems.
type Catalog struct {
	poems []domain.Poem
}

// New builds a catalog sorted newest first. Poems with the same date are
// ordered by ID.
func New(poems []domain.Poem) *Catalog {
	sorted := make([]domain.Poem, len(poems))
	copy(sorted, poems)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.After(sorted[j].Date)
		}
		return sorted[i].ID < sorted[j].ID
	})
	return &Catalog{poems: sorted}
}

// Len returns the number of poems.
func (c *Catalog) Len() int { return len(c.poems) }

// All returns every poem, newest first.
func (c *Catalog) All() []domain.Poem {
	return c.filter(func(domain.Poem) bool { return true })
}

// Find returns the poem with the given ID.
func (c *Catalog) Find(id string) (domain.Poem, bool) {
	for _, p := range c.poems {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Poem{}, false
}

// ByForm returns the poems written in form.
func (c *Catalog) ByForm(form domain.Form) []domain.Poem {
	return c.filter(func(p domain.Poem) bool { return p.Form == form })
}

// ByLanguage returns the poems written in lang.
func (c *Catalog) ByLanguage(lang domain.Language) []domain.Poem {
	return c.filter(func(p domain.Poem) bool { return p.Language == lang })
}

// ByTag returns the poems carrying tag.
func (c *Catalog) ByTag(tag string) []domain.Poem {
	return c.filter(func(p domain.Poem) bool { return p.HasTag(tag) })
}

func (c *Catalog) filter(keep func(domain.Poem) bool) []domain.Poem {
	out := []domain.Poem{}
	for _, p := range c.poems {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// Summary counts the poems in one form or language.
type Summary struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Count       int    `json:"count"`
	Description string `json:"description,omitempty"`
}

// FormSummaries returns one summary per form that has poems, in canonical
// form order.
func (c *Catalog) FormSummaries() []Summary {
	out := []Summary{}
	for _, f := range domain.Forms() {
		n := len(c.ByForm(f))
		if n == 0 {
			continue
		}
		s := Summary{Name: string(f), DisplayName: FormDisplayName(f), Count: n}
		if info, ok := f.Info(); ok {
			s.Description = info.Description
		}
		out = append(out, s)
	}
	return out
}

// LanguageSummaries returns one summary per language that has poems, in
// canonical language order.
func (c *Catalog) LanguageSummaries() []Summary {
	out := []Summary{}
	for _, l := range domain.Languages() {
		n := len(c.ByLanguage(l))
		if n == 0 {
			continue
		}
		out = append(out, Summary{Name: string(l), DisplayName: l.DisplayName(), Count: n})
	}
	return out
}

// FormDisplayName returns the form's display name, title-casing the form
// name when none is set.
func FormDisplayName(f domain.Form) string {
	if info, ok := f.Info(); ok && info.DisplayName != "" {
		return info.DisplayName
	}
	return titleCaser.String(string(f))
}

// Search returns the poems whose title, content, preview, notes, tags, form
// or language contain term, ignoring case. A blank term matches everything.
func (c *Catalog) Search(term string) []domain.Poem {
	if strings.TrimSpace(term) == "" {
		return c.All()
	}
	needle := strings.ToLower(term)
	return c.filter(func(p domain.Poem) bool {
		return strings.Contains(searchableText(p), needle)
	})
}

func searchableText(p domain.Poem) string {
	parts := []string{
		p.Title,
		p.Content,
		p.Preview,
		p.Notes.Technical,
		p.Notes.Philosophical,
		p.Notes.Composition,
	}
	parts = append(parts, p.Tags...)
	parts = append(parts, string(p.Form), string(p.Language))

	nonEmpty := parts[:0]
	for _, s := range parts {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	return strings.ToLower(strings.Join(nonEmpty, " "))
}

// Match records which parts of a poem a search term hit.
type Match struct {
	Title   bool `json:"title"`
	Content bool `json:"content"`
	Tags    bool `json:"tags"`
	Notes   bool `json:"notes"`
}

// Any reports whether any part matched.
func (m Match) Any() bool { return m.Title || m.Content || m.Tags || m.Notes }

// Matches reports where term occurs in p, ignoring case.
func Matches(p domain.Poem, term string) Match {
	needle := strings.ToLower(term)
	has := func(s string) bool { return strings.Contains(strings.ToLower(s), needle) }

	m := Match{Title: has(p.Title), Content: has(p.Content)}
	for _, t := range p.Tags {
		if has(t) {
			m.Tags = true
			break
		}
	}
	for _, n := range []string{p.Notes.Technical, p.Notes.Philosophical, p.Notes.Composition} {
		if n != "" && has(n) {
			m.Notes = true
			break
		}
	}
	return m
}
