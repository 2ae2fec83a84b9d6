// Package cmd contains the CLI commands for the poetic application.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eykd/poetic-source-go/internal/config"
)

var rootCmd *cobra.Command

// Global flag state.
var (
	verbose    bool
	jsonOutput bool
	dryRun     bool
	poemsDir   string
)

func init() {
	rootCmd = NewRootCmd()
}

// GetVerbose returns the current verbose flag state.
func GetVerbose() bool {
	return verbose
}

// GetJSON reports whether --json was given.
func GetJSON() bool {
	return jsonOutput
}

// GetDryRun reports whether --dry-run was given.
func GetDryRun() bool {
	return dryRun
}

// GetPoemsDir returns the --poems-dir override, empty when unset.
func GetPoemsDir() string {
	return poemsDir
}

// NewRootCmd creates a new root command wired to the real configuration.
// This is useful for testing to get a fresh command tree.
func NewRootCmd() *cobra.Command {
	return BuildCommandTree(setupFromConfig)
}

// SetupFunc builds the App once flags are parsed.
type SetupFunc func(cmd *cobra.Command) (*App, error)

// BuildCommandTree assembles the root command and its subcommands. A nil
// setup leaves every command that needs services returning ErrNotConfigured.
func BuildCommandTree(setup SetupFunc) *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:           "poetic",
		Short:         "Validate and browse code poems",
		Long:          "poetic validates code poems against their declared poetic form and browses the poems directory.",
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if setup == nil {
				return nil
			}
			app, err := setup(cmd)
			if err != nil {
				return err
			}
			s.app = app
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if s.app != nil {
				_ = s.app.Logger.Sync()
			}
		},
	}

	addPersistentFlags(root)

	root.AddCommand(
		NewValidateCmd(s),
		NewCheckCmd(s),
		NewExtractCmd(s),
		NewListCmd(s),
		NewSearchCmd(s),
		NewStatsCmd(s),
		NewFormsCmd(),
		NewMigrateCmd(s),
	)
	return root
}

// addPersistentFlags binds the global flags to root.
func addPersistentFlags(root *cobra.Command) {
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	root.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Show what would change without changing it")
	root.PersistentFlags().StringVar(&poemsDir, "poems-dir", "", "Poems directory (overrides POETIC_POEMS_DIR)")
}

// setupFromConfig loads configuration, applies flag overrides and builds the
// logger.
func setupFromConfig(cmd *cobra.Command) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dir := GetPoemsDir(); dir != "" {
		cfg.PoemsDir = dir
	}

	logger, err := newLogger(cfg, GetVerbose())
	if err != nil {
		return nil, err
	}
	return NewApp(cfg, logger), nil
}

// newLogger builds a production zap logger on stderr. --verbose forces debug.
func newLogger(cfg *config.Config, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = cfg.LogFormat
	zc.DisableStacktrace = true

	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	return logger, nil
}

// Main runs the CLI with process stdio and returns the exit code.
func Main(ctx context.Context, args []string) int {
	rootCmd.SetContext(ctx)
	return RunCLI(rootCmd, args, rootCmd.OutOrStdout(), rootCmd.ErrOrStderr())
}
