package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/eykd/poetic-source-go/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type memSource struct {
	files map[string]string
}

func (s *memSource) Dirs(context.Context) ([]string, error) {
	seen := map[string]bool{}
	var dirs []string
	for p := range s.files {
		dir, _, _ := strings.Cut(p, "/")
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

func (s *memSource) Poems(_ context.Context, dir string) ([]string, error) {
	var out []string
	for p := range s.files {
		if strings.HasPrefix(p, dir+"/") {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (s *memSource) ReadFile(_ context.Context, path string) (string, error) {
	return s.files[path], nil
}

// stubValidator reads "id|language|date-day" and rejects "invalid".
type stubValidator struct {
	err error
}

func (v stubValidator) CreateValidatedPoem(content string) (*domain.Poem, domain.ValidationResult, error) {
	if v.err != nil {
		return nil, domain.ValidationResult{}, v.err
	}
	if content == "invalid" {
		return nil, domain.NewValidationResult([]domain.ValidationError{
			{Field: "date", Message: "Missing required field: date", Severity: domain.SeverityError},
		}), nil
	}
	parts := strings.Split(content, "|")
	d := map[string]int{"early": 1, "late": 28}[parts[2]]
	return &domain.Poem{ID: parts[0], Language: domain.Language(parts[1]), Date: day(d)},
		domain.NewValidationResult(nil), nil
}

func TestLoader_Load(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	src := &memSource{files: map[string]string{
		"go/a.md":     "alpha|go|early",
		"go/b.md":     "invalid",
		"python/c.md": "gamma|python|late",
		"python/d.md": "delta|go|early",
	}}

	c, err := NewLoader(src, stubValidator{}, 2, zap.New(core)).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if diff := cmp.Diff([]string{"gamma", "alpha", "delta"}, ids(c.All())); diff != "" {
		t.Errorf("poems mismatch (-want +got):\n%s", diff)
	}
	if p, _ := c.Find("gamma"); p.Path != "python/c.md" {
		t.Errorf("Path = %q, want python/c.md", p.Path)
	}

	excluded := logs.FilterMessage("excluding invalid poem").All()
	if len(excluded) != 1 || excluded[0].Level != zapcore.WarnLevel {
		t.Errorf("excluded entries = %+v, want one warning", excluded)
	}
	if logs.FilterMessage("poem language does not match its directory").Len() != 1 {
		t.Error("expected a directory mismatch warning for python/d.md")
	}
}

func TestLoader_Load_PropagatesValidatorError(t *testing.T) {
	errCfg := errors.New("no lexicon")
	src := &memSource{files: map[string]string{"go/a.md": "x"}}

	_, err := NewLoader(src, stubValidator{err: errCfg}, 1, nil).Load(context.Background())
	if !errors.Is(err, errCfg) {
		t.Errorf("error = %v, want %v", err, errCfg)
	}
}

func TestLoader_Load_Empty(t *testing.T) {
	c, err := NewLoader(&memSource{}, stubValidator{}, 4, nil).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}
