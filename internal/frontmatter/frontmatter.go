// Package frontmatter splits poem files into YAML frontmatter and body and
// decodes the frontmatter into domain field values.
package frontmatter

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eykd/poetic-source-go/internal/domain"
)

// ErrUnclosed is returned when the opening --- has no matching close.
var ErrUnclosed = errors.New("unclosed frontmatter")

// ErrNotMapping is returned when the frontmatter is not a YAML mapping.
var ErrNotMapping = errors.New("frontmatter is not a mapping")

// ErrAliasCycle is returned when an alias refers to a node that contains it.
var ErrAliasCycle = errors.New("frontmatter alias refers to itself")

// ErrTooLarge is returned when alias expansion exceeds MaxNodes.
var ErrTooLarge = errors.New("frontmatter expands to too many values")

// MaxNodes bounds the number of values a frontmatter block may expand to,
// counting every alias expansion.
const MaxNodes = 10000

// Split separates a document into frontmatter and body components.
// Frontmatter is delimited by --- on its own line.
func Split(input string) (string, string, error) {
	if input == "" {
		return "", "", nil
	}
	if !strings.HasPrefix(input, "---\n") {
		return "", input, nil
	}

	rest := input[4:]
	pos := 0
	for pos < len(rest) {
		nlIdx := strings.IndexByte(rest[pos:], '\n')

		var line string
		var nextPos int
		if nlIdx < 0 {
			line = rest[pos:]
			nextPos = len(rest)
		} else {
			line = rest[pos : pos+nlIdx]
			nextPos = pos + nlIdx + 1
		}

		if strings.TrimRight(line, " \t") == "---" {
			if nlIdx < 0 {
				return rest[:pos], "", nil
			}
			return rest[:pos], rest[nextPos:], nil
		}

		pos = nextPos
	}

	return "", "", ErrUnclosed
}

// Parse splits input and decodes its frontmatter. A document without
// frontmatter yields no fields and the whole input as body.
func Parse(input string) (domain.Frontmatter, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")

	fm, body, err := Split(input)
	if err != nil {
		return domain.Frontmatter{}, err
	}

	out := domain.Frontmatter{Fields: map[string]domain.FieldValue{}, Body: body}
	if strings.TrimSpace(fm) == "" {
		return out, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(fm), &doc); err != nil {
		return domain.Frontmatter{}, fmt.Errorf("decoding frontmatter: %w", err)
	}
	if len(doc.Content) == 0 {
		return out, nil
	}

	c := converter{expanding: map[*yaml.Node]bool{}, budget: MaxNodes}
	root, err := c.convert(doc.Content[0])
	if err != nil {
		return domain.Frontmatter{}, err
	}
	if root.Kind != domain.KindMapping {
		return domain.Frontmatter{}, ErrNotMapping
	}
	out.Fields = root.Fields
	out.Keys = root.Keys
	return out, nil
}

// converter maps yaml.Node trees onto FieldValues. expanding holds the
// alias targets on the current path; budget is the number of values left.
type converter struct {
	expanding map[*yaml.Node]bool
	budget    int
}

// convert maps a yaml.Node onto a FieldValue, resolving aliases.
func (c *converter) convert(n *yaml.Node) (domain.FieldValue, error) {
	if c.budget--; c.budget < 0 {
		return domain.FieldValue{}, ErrTooLarge
	}

	switch n.Kind {
	case yaml.AliasNode:
		if n.Alias == nil {
			return domain.FieldValue{Kind: domain.KindNull, Line: n.Line}, nil
		}
		if c.expanding[n.Alias] {
			return domain.FieldValue{}, fmt.Errorf("%w at line %d", ErrAliasCycle, n.Line)
		}
		c.expanding[n.Alias] = true
		v, err := c.convert(n.Alias)
		delete(c.expanding, n.Alias)
		return v, err
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return domain.FieldValue{Kind: domain.KindNull, Line: n.Line}, nil
		}
		return c.convert(n.Content[0])
	case yaml.SequenceNode:
		v := domain.FieldValue{Kind: domain.KindSequence, Tag: n.ShortTag(), Line: n.Line}
		v.Items = make([]domain.FieldValue, len(n.Content))
		for i, child := range n.Content {
			item, err := c.convert(child)
			if err != nil {
				return domain.FieldValue{}, err
			}
			v.Items[i] = item
		}
		return v, nil
	case yaml.MappingNode:
		v := domain.FieldValue{
			Kind:   domain.KindMapping,
			Tag:    n.ShortTag(),
			Fields: make(map[string]domain.FieldValue, len(n.Content)/2),
			Line:   n.Line,
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			val, err := c.convert(n.Content[i+1])
			if err != nil {
				return domain.FieldValue{}, err
			}
			if _, dup := v.Fields[key]; !dup {
				v.Keys = append(v.Keys, key)
			}
			v.Fields[key] = val
		}
		return v, nil
	default:
		tag := n.ShortTag()
		if tag == domain.TagNull {
			return domain.FieldValue{Kind: domain.KindNull, Tag: tag, Line: n.Line}, nil
		}
		return domain.FieldValue{Kind: domain.KindScalar, Tag: tag, Text: n.Value, Line: n.Line}, nil
	}
}
