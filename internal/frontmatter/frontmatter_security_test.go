package frontmatter

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/eykd/poetic-source-go/internal/domain"
)

func TestParse_AliasesResolve(t *testing.T) {
	input := "---\nbase: &b haiku\nform: *b\n---\nbody"

	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := doc.Get("form"); !got.IsString() || got.Text != "haiku" {
		t.Errorf("form = %+v, want string haiku", got)
	}
}

func TestParse_BodyDelimitersNotFrontmatter(t *testing.T) {
	// A body that itself contains --- lines must not leak into the fields.
	input := "---\nid: a\n---\nline\n---\nevil: true\n---\n"

	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, ok := doc.Fields["evil"]; ok {
		t.Error("body content parsed as frontmatter")
	}
	if !strings.Contains(doc.Body, "evil: true") {
		t.Errorf("Body = %q, want body to keep its text", doc.Body)
	}
}

func TestParse_NullValues(t *testing.T) {
	doc, err := Parse("---\ntitle:\npreview: null\n---\nbody")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	for _, key := range []string{"title", "preview"} {
		if got := doc.Get(key); got.Kind != domain.KindNull {
			t.Errorf("%s kind = %v, want null", key, got.Kind)
		}
		if doc.Has(key) {
			t.Errorf("Has(%s) = true, want false", key)
		}
	}
}

func TestParse_SelfReferentialAliasFails(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"sequence", "---\ntags: &a [*a]\n---\nbody\n"},
		{"mapping", "---\nnotes: &n\n  technical: *n\n---\nbody\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if !errors.Is(err, ErrAliasCycle) {
				t.Errorf("Parse() error = %v, want ErrAliasCycle", err)
			}
		})
	}
}

// nestedAliases builds frontmatter where each level repeats the previous
// level's anchor ten times.
func nestedAliases(levels int) string {
	var b strings.Builder
	b.WriteString("---\nl0: &l0 [x, x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i <= levels; i++ {
		refs := strings.TrimSuffix(strings.Repeat(fmt.Sprintf("*l%d, ", i-1), 10), ", ")
		fmt.Fprintf(&b, "l%d: &l%d [%s]\n", i, i, refs)
	}
	b.WriteString("---\nbody\n")
	return b.String()
}

func TestParse_AliasExpansionBounded(t *testing.T) {
	_, err := Parse(nestedAliases(6))
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("Parse() error = %v, want ErrTooLarge", err)
	}
}

func TestParse_SmallAliasExpansionAllowed(t *testing.T) {
	doc, err := Parse(nestedAliases(1))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := len(doc.Get("l1").Items); got != 10 {
		t.Errorf("len(l1) = %d, want 10", got)
	}
}

func TestParse_SiblingAliasesAreNotCycles(t *testing.T) {
	doc, err := Parse("---\nbase: &b [go]\nfirst: *b\nsecond: *b\n---\nbody\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if doc.Get("second").Items[0].Text != "go" {
		t.Errorf("second = %+v", doc.Get("second"))
	}
}
