// Package migrate moves poems kept flat in the poems directory into their
// per-language subdirectories.
package migrate

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/eykd/poetic-source-go/internal/domain"
)

// Skip reasons.
const (
	ReasonUnreadable      = "frontmatter could not be parsed"
	ReasonMissingLanguage = "missing language"
	ReasonUnknownLanguage = "unknown language"
	ReasonExists          = "destination already exists"
)

// Store abstracts the poem file operations a migration needs.
type Store interface {
	Poems(ctx context.Context, dir string) ([]string, error)
	ReadFile(ctx context.Context, path string) (string, error)
	LanguagePath(lang domain.Language, name string) string
	Exists(ctx context.Context, path string) (bool, error)
	MoveFile(ctx context.Context, from, to string) error
}

// FrontmatterParser reads the declared language from a poem file.
type FrontmatterParser interface {
	Parse(input string) (domain.Frontmatter, error)
}

// Locker runs fn while holding an advisory lock.
type Locker interface {
	With(ctx context.Context, fn func() error) error
}

// Move is one planned or applied relocation.
type Move struct {
	From     string          `json:"from"`
	To       string          `json:"to"`
	Language domain.Language `json:"language"`
}

// Skip is a flat poem left where it is.
type Skip struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Result reports a migration. With DryRun set nothing was moved.
type Result struct {
	DryRun  bool   `json:"dryRun"`
	Moves   []Move `json:"moves"`
	Skipped []Skip `json:"skipped"`
}

// Service plans and applies migrations.
type Service struct {
	store  Store
	parser FrontmatterParser
	locker Locker
	logger *zap.Logger
}

// NewService creates a Service. A nil logger discards output.
func NewService(store Store, parser FrontmatterParser, locker Locker, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, parser: parser, locker: locker, logger: logger}
}

// Plan works out where each flat poem belongs without touching the disk.
func (s *Service) Plan(ctx context.Context) (*Result, error) {
	paths, err := s.store.Poems(ctx, "")
	if err != nil {
		return nil, err
	}

	res := &Result{DryRun: true, Moves: []Move{}, Skipped: []Skip{}}
	for _, path := range paths {
		content, err := s.store.ReadFile(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		lang, reason := s.language(content)
		if reason != "" {
			res.Skipped = append(res.Skipped, Skip{Path: path, Reason: reason})
			continue
		}

		to := s.store.LanguagePath(lang, filepath.Base(path))
		exists, err := s.store.Exists(ctx, to)
		if err != nil {
			return nil, err
		}
		if exists {
			res.Skipped = append(res.Skipped, Skip{Path: path, Reason: ReasonExists})
			continue
		}
		res.Moves = append(res.Moves, Move{From: path, To: to, Language: lang})
	}
	return res, nil
}

// Migrate plans and, unless dryRun is set, applies the moves while holding
// the advisory lock.
func (s *Service) Migrate(ctx context.Context, dryRun bool) (*Result, error) {
	if dryRun {
		return s.Plan(ctx)
	}

	var res *Result
	err := s.locker.With(ctx, func() error {
		var err error
		res, err = s.Plan(ctx)
		if err != nil {
			return err
		}
		res.DryRun = false
		return s.apply(ctx, res)
	})
	return res, err
}

// apply performs the planned moves in order, trimming Moves to those that
// succeeded when one fails.
func (s *Service) apply(ctx context.Context, res *Result) error {
	for i, m := range res.Moves {
		if err := s.store.MoveFile(ctx, m.From, m.To); err != nil {
			res.Moves = res.Moves[:i]
			return fmt.Errorf("migrating %s: %w", m.From, err)
		}
		s.logger.Info("migrated poem", zap.String("from", m.From), zap.String("to", m.To))
	}
	return nil
}

func (s *Service) language(content string) (domain.Language, string) {
	doc, err := s.parser.Parse(content)
	if err != nil {
		return "", ReasonUnreadable
	}
	v := doc.Get("language")
	if !v.Truthy() {
		return "", ReasonMissingLanguage
	}
	lang, ok := domain.ParseLanguage(v.Text)
	if !ok {
		return "", fmt.Sprintf("%s %q", ReasonUnknownLanguage, v.Text)
	}
	return lang, ""
}
