package domain

// LineType records the syntactic origin of a PoeticLine.
type LineType string

const (
	LineComment LineType = "comment"
	LineString  LineType = "string"
	LineMixed   LineType = "mixed"
	LineCode    LineType = "code"
)

// PoeticLine is one unit of poetic meaning extracted from a physical source
// line. LineNumber is 1-based; a block comment reports the line it closes on.
type PoeticLine struct {
	Content    string   `json:"content"`
	LineNumber int      `json:"lineNumber"`
	Type       LineType `json:"type"`
}
