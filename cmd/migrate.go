package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/poetic-source-go/internal/migrate"
)

// MigrateRunner defines the interface for running a migration.
type MigrateRunner interface {
	Migrate(ctx context.Context, dryRun bool) (*migrate.Result, error)
}

// NewMigrateCmd creates the migrate command with the given runner.
func NewMigrateCmd(runner MigrateRunner) *cobra.Command {
	return &cobra.Command{
		Use:          "migrate",
		Short:        "Move flat poems into per-language directories",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			isDryRun := GetDryRun()
			result, err := runner.Migrate(cmd.Context(), isDryRun)
			if result != nil && GetJSON() {
				writeJSON(cmd.OutOrStdout(), result)
			} else if result != nil {
				formatMigrateHuman(cmd, result)
			}
			return err
		},
	}
}

func formatMigrateHuman(cmd *cobra.Command, result *migrate.Result) {
	w := cmd.OutOrStdout()
	st := newStyles(w)

	verb := "Migrated"
	if result.DryRun {
		verb = "Would move"
	}
	for _, m := range result.Moves {
		fmt.Fprintf(w, "%s %s -> %s\n", verb, m.From, m.To)
	}
	for _, s := range result.Skipped {
		fmt.Fprintln(w, st.warn.Render(fmt.Sprintf("Skipped %s: %s", s.Path, s.Reason)))
	}

	summary := fmt.Sprintf("%s %d poems, skipped %d", verb, len(result.Moves), len(result.Skipped))
	fmt.Fprintln(w, st.ok.Render(summary))
}
