package validate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eykd/poetic-source-go/internal/domain"
)

// ErrLanguageNotFound is returned when a requested language directory does
// not exist under the poems directory.
var ErrLanguageNotFound = errors.New("language directory not found")

// PoemSource abstracts listing and reading poem files.
type PoemSource interface {
	Dirs(ctx context.Context) ([]string, error)
	Poems(ctx context.Context, dir string) ([]string, error)
	ReadFile(ctx context.Context, path string) (string, error)
}

// FileReport is the validation outcome for one file.
type FileReport struct {
	Path     string                  `json:"path"`
	Language string                  `json:"language"`
	Result   domain.ValidationResult `json:"result"`
}

// Report summarizes a batch run. Files holds only files with findings,
// sorted by path.
type Report struct {
	Checked int          `json:"checked"`
	Files   []FileReport `json:"files"`
}

// Valid reports whether no checked file has an error.
func (r *Report) Valid() bool { return r.InvalidCount() == 0 }

// InvalidCount returns the number of files with at least one error.
func (r *Report) InvalidCount() int {
	n := 0
	for _, f := range r.Files {
		if !f.Result.IsValid {
			n++
		}
	}
	return n
}

// ErrorCount returns the number of error-severity findings across all files.
func (r *Report) ErrorCount() int {
	n := 0
	for _, f := range r.Files {
		n += f.Result.ErrorCount()
	}
	return n
}

// Service validates poem files in bulk.
type Service struct {
	source    PoemSource
	validator *Validator
	workers   int
	logger    *zap.Logger
}

// NewService creates a Service. workers bounds concurrent file validations;
// a nil logger discards output.
func NewService(source PoemSource, validator *Validator, workers int, logger *zap.Logger) *Service {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, validator: validator, workers: workers, logger: logger}
}

// ValidateAll validates every poem in every language directory, or only in
// the named one when language is non-empty.
func (s *Service) ValidateAll(ctx context.Context, language string) (*Report, error) {
	dirs, err := s.source.Dirs(ctx)
	if err != nil {
		return nil, err
	}

	if language != "" {
		if !contains(dirs, language) {
			return nil, fmt.Errorf("%w: %s", ErrLanguageNotFound, language)
		}
		dirs = []string{language}
	}

	var paths []string
	for _, dir := range dirs {
		files, err := s.source.Poems(ctx, dir)
		if err != nil {
			return nil, err
		}
		paths = append(paths, files...)
	}

	return s.ValidateFiles(ctx, paths)
}

// ValidateFiles validates the given files concurrently. The language of each
// report is the name of the file's directory.
func (s *Service) ValidateFiles(ctx context.Context, paths []string) (*Report, error) {
	reports := make([]FileReport, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, path := range paths {
		g.Go(func() error {
			content, err := s.source.ReadFile(ctx, path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			result, err := s.validator.ValidatePoemStructure(content)
			if err != nil {
				return fmt.Errorf("validating %s: %w", path, err)
			}

			s.logger.Debug("validated poem",
				zap.String("path", path),
				zap.Bool("valid", result.IsValid),
				zap.Int("errors", result.ErrorCount()),
				zap.Int("warnings", result.WarningCount()))
			if !result.IsValid {
				s.logger.Info("invalid poem", zap.String("path", path), zap.Int("errors", result.ErrorCount()))
			}

			reports[i] = FileReport{
				Path:     path,
				Language: filepath.Base(filepath.Dir(path)),
				Result:   result,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Checked: len(paths), Files: []FileReport{}}
	for _, r := range reports {
		if len(r.Result.Errors) > 0 {
			report.Files = append(report.Files, r)
		}
	}
	sort.Slice(report.Files, func(i, j int) bool {
		return report.Files[i].Path < report.Files[j].Path
	})
	return report, nil
}
