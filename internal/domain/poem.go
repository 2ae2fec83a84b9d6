package domain

import "time"

// PoemNotes holds the optional commentary attached to a poem.
type PoemNotes struct {
	Composition   string `json:"composition,omitempty"`
	Technical     string `json:"technical,omitempty"`
	Philosophical string `json:"philosophical,omitempty"`
}

// Allowed note keys in frontmatter.
const (
	NoteComposition   = "composition"
	NoteTechnical     = "technical"
	NotePhilosophical = "philosophical"
)

// NoteKeys returns the allowed note keys in canonical order.
func NoteKeys() []string {
	return []string{NoteComposition, NoteTechnical, NotePhilosophical}
}

// Poem is a validated code poem.
type Poem struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Author   string    `json:"author"`
	Date     time.Time `json:"date"`
	Form     Form      `json:"form"`
	Language Language  `json:"language"`
	Tags     []string  `json:"tags"`
	Content  string    `json:"content"`
	Notes    PoemNotes `json:"notes"`
	Preview  string    `json:"preview"`
	Path     string    `json:"path,omitempty"`
}

// HasTag reports whether the poem carries tag.
func (p Poem) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
