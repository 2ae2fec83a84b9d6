package domain

// FieldKind classifies a parsed frontmatter value.
type FieldKind int

const (
	KindNull FieldKind = iota
	KindScalar
	KindSequence
	KindMapping
)

// Scalar tags a parser may report. They follow the YAML core schema.
const (
	TagString    = "!!str"
	TagInt       = "!!int"
	TagFloat     = "!!float"
	TagBool      = "!!bool"
	TagTimestamp = "!!timestamp"
	TagNull      = "!!null"
)

// FieldValue is a frontmatter value decoupled from any particular parser.
type FieldValue struct {
	Kind FieldKind
	Tag  string
	Text string
	// Items holds sequence elements.
	Items []FieldValue
	// Keys preserves mapping key order; Fields holds the values.
	Keys   []string
	Fields map[string]FieldValue
	Line   int
}

// IsString reports whether v is a string scalar.
func (v FieldValue) IsString() bool {
	return v.Kind == KindScalar && v.Tag == TagString
}

// Truthy reports whether v counts as present. Null, the empty string, false
// and numeric zero are absent; empty sequences and mappings are present.
func (v FieldValue) Truthy() bool {
	switch v.Kind {
	case KindNull:
		return false
	case KindScalar:
		switch v.Tag {
		case TagString:
			return v.Text != ""
		case TagBool:
			return v.Text != "false" && v.Text != "False" && v.Text != "FALSE"
		case TagInt, TagFloat:
			return !isNumericZero(v.Text)
		case TagNull:
			return false
		}
		return true
	default:
		return true
	}
}

func isNumericZero(s string) bool {
	switch s {
	case "0", "-0", "+0", "0.0", "-0.0", "+0.0", ".0", "0x0", "0o0", ".nan", ".NaN", ".NAN":
		return true
	}
	return false
}

// Frontmatter is a parsed document: its top-level fields and body text.
type Frontmatter struct {
	Fields map[string]FieldValue
	Keys   []string
	Body   string
}

// Get returns the named field, or a null value if it is absent.
func (f Frontmatter) Get(key string) FieldValue {
	if v, ok := f.Fields[key]; ok {
		return v
	}
	return FieldValue{Kind: KindNull}
}

// Has reports whether key is present and truthy.
func (f Frontmatter) Has(key string) bool {
	return f.Get(key).Truthy()
}
