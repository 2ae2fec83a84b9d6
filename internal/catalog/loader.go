package catalog

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eykd/poetic-source-go/internal/domain"
)

// PoemSource abstracts listing and reading poem files.
type PoemSource interface {
	Dirs(ctx context.Context) ([]string, error)
	Poems(ctx context.Context, dir string) ([]string, error)
	ReadFile(ctx context.Context, path string) (string, error)
}

// PoemValidator turns file content into a poem when it is valid.
type PoemValidator interface {
	CreateValidatedPoem(fileContent string) (*domain.Poem, domain.ValidationResult, error)
}

// Loader builds a Catalog from the poems directory.
type Loader struct {
	source    PoemSource
	validator PoemValidator
	workers   int
	logger    *zap.Logger
}

// NewLoader creates a Loader. A nil logger discards output.
func NewLoader(source PoemSource, validator PoemValidator, workers int, logger *zap.Logger) *Loader {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{source: source, validator: validator, workers: workers, logger: logger}
}

// Load reads every poem in every language directory. Invalid poems are
// logged and left out; read and configuration errors abort the load.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	dirs, err := l.source.Dirs(ctx)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, dir := range dirs {
		files, err := l.source.Poems(ctx, dir)
		if err != nil {
			return nil, err
		}
		paths = append(paths, files...)
	}

	loaded := make([]*domain.Poem, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)
	for i, path := range paths {
		g.Go(func() error {
			content, err := l.source.ReadFile(ctx, path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			poem, result, err := l.validator.CreateValidatedPoem(content)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}
			if poem == nil {
				l.logger.Warn("excluding invalid poem",
					zap.String("path", path),
					zap.Int("errors", result.ErrorCount()))
				return nil
			}

			if dir := filepath.Base(filepath.Dir(path)); dir != string(poem.Language) {
				l.logger.Warn("poem language does not match its directory",
					zap.String("path", path),
					zap.String("language", string(poem.Language)))
			}

			poem.Path = path
			loaded[i] = poem
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	poems := make([]domain.Poem, 0, len(loaded))
	for _, p := range loaded {
		if p != nil {
			poems = append(poems, *p)
		}
	}
	l.logger.Debug("catalog loaded", zap.Int("poems", len(poems)), zap.Int("files", len(paths)))
	return New(poems), nil
}
