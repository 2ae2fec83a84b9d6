package cmd

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/eykd/poetic-source-go/internal/catalog"
	"github.com/eykd/poetic-source-go/internal/config"
	"github.com/eykd/poetic-source-go/internal/domain"
	"github.com/eykd/poetic-source-go/internal/fs"
	"github.com/eykd/poetic-source-go/internal/lock"
	"github.com/eykd/poetic-source-go/internal/migrate"
	"github.com/eykd/poetic-source-go/internal/poetics"
	"github.com/eykd/poetic-source-go/internal/validate"
)

// App wires the services for one invocation from configuration.
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	store     *fs.PoemStore
	validator *validate.Validator
}

// NewApp creates an App rooted at cfg.PoemsDir. A nil logger discards output.
func NewApp(cfg *config.Config, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		Config:    cfg,
		Logger:    logger,
		store:     &fs.PoemStore{Root: cfg.PoemsDir},
		validator: validate.NewValidator(fs.FMAdapter{}, validate.WithSlugSuggester(fs.SlugAdapter{})),
	}
}

// ValidateAll validates the poems directory, or one language directory.
func (a *App) ValidateAll(ctx context.Context, language string) (*validate.Report, error) {
	return a.batch().ValidateAll(ctx, language)
}

// ValidateFiles validates individual files.
func (a *App) ValidateFiles(ctx context.Context, paths []string) (*validate.Report, error) {
	return a.batch().ValidateFiles(ctx, paths)
}

func (a *App) batch() *validate.Service {
	return validate.NewService(a.store, a.validator, a.Config.Workers, a.Logger)
}

// LoadCatalog reads every valid poem.
func (a *App) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	return catalog.NewLoader(a.store, a.validator, a.Config.Workers, a.Logger).Load(ctx)
}

// Migrate moves flat poems into language directories.
func (a *App) Migrate(ctx context.Context, dryRun bool) (*migrate.Result, error) {
	l := lock.NewFromPath(filepath.Join(a.Config.PoemsDir, lock.FileName))
	return migrate.NewService(a.store, fs.FMAdapter{}, l, a.Logger).Migrate(ctx, dryRun)
}

// Extract reads a poem file and extracts its poetic lines. An empty lang
// uses the language declared in the frontmatter.
func (a *App) Extract(ctx context.Context, path string, lang domain.Language) (*ExtractResult, error) {
	content, err := a.store.ReadFile(ctx, path)
	if err != nil {
		return nil, &ContextError{Op: "read", Path: path, Err: err}
	}

	doc, err := fs.FMAdapter{}.Parse(content)
	if err != nil {
		return nil, &ContextError{Op: "parse", Path: path, Err: err}
	}

	if lang == "" {
		lang = domain.Language(doc.Get("language").Text)
	}

	lines, err := poetics.ExtractPoeticLines(doc.Body, lang)
	if err != nil {
		return nil, &ContextError{Op: "extract", Path: path, Err: err}
	}
	if lines == nil {
		lines = []domain.PoeticLine{}
	}
	return &ExtractResult{Path: path, Language: lang, Lines: lines}, nil
}

// session forwards to the App built for the running command.
type session struct {
	app *App
}

func (s *session) ValidateAll(ctx context.Context, language string) (*validate.Report, error) {
	if s.app == nil {
		return nil, ErrNotConfigured
	}
	return s.app.ValidateAll(ctx, language)
}

func (s *session) ValidateFiles(ctx context.Context, paths []string) (*validate.Report, error) {
	if s.app == nil {
		return nil, ErrNotConfigured
	}
	return s.app.ValidateFiles(ctx, paths)
}

func (s *session) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	if s.app == nil {
		return nil, ErrNotConfigured
	}
	return s.app.LoadCatalog(ctx)
}

func (s *session) Migrate(ctx context.Context, dryRun bool) (*migrate.Result, error) {
	if s.app == nil {
		return nil, ErrNotConfigured
	}
	return s.app.Migrate(ctx, dryRun)
}

func (s *session) Extract(ctx context.Context, path string, lang domain.Language) (*ExtractResult, error) {
	if s.app == nil {
		return nil, ErrNotConfigured
	}
	return s.app.Extract(ctx, path, lang)
}
