// Package fs provides filesystem adapters that implement the poem service
// interfaces.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/eykd/poetic-source-go/internal/domain"
	"github.com/eykd/poetic-source-go/internal/frontmatter"
	"github.com/eykd/poetic-source-go/internal/slug"
)

// PoemExt is the extension of poem files.
const PoemExt = ".md"

// ErrDestinationExists is returned when a move would overwrite a file.
var ErrDestinationExists = errors.New("destination already exists")

// PoemStore reads and moves poem files under a poems directory. Paths it
// returns are joined with Root and are accepted back as-is.
type PoemStore struct {
	Root string
}

// Dirs returns the names of the non-hidden subdirectories of Root, sorted.
func (s *PoemStore) Dirs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", s.Root, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Poems returns the paths of the poem files directly inside Root/dir, sorted.
// An empty dir lists Root itself.
func (s *PoemStore) Poems(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	base := filepath.Join(s.Root, dir)
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", base, err)
	}
	var paths []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), PoemExt) {
			paths = append(paths, filepath.Join(base, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadFile reads the full content of the file at path.
func (s *PoemStore) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// LanguagePath returns where a poem file named name belongs for lang.
func (s *PoemStore) LanguagePath(lang domain.Language, name string) string {
	return filepath.Join(s.Root, string(lang), filepath.Base(name))
}

// Exists reports whether a file exists at path.
func (s *PoemStore) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// MoveFile renames from to to, creating the destination directory. It never
// overwrites an existing file.
func (s *PoemStore) MoveFile(ctx context.Context, from, to string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	exists, err := s.Exists(ctx, to)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("moving %s: %w: %s", from, ErrDestinationExists, to)
	}
	dir := filepath.Dir(to)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return os.Rename(from, to)
}

// SlugAdapter implements validate.SlugSuggester using the slug package.
type SlugAdapter struct{}

// Suggest proposes a valid slug for s.
func (SlugAdapter) Suggest(s string) (string, bool) { return slug.Suggest(s) }

// FMAdapter implements validate.FrontmatterParser using the frontmatter package.
type FMAdapter struct{}

// Parse splits and decodes a poem file.
func (FMAdapter) Parse(input string) (domain.Frontmatter, error) { return frontmatter.Parse(input) }
