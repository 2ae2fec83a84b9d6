package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/poetic-source-go/internal/validate"
)

// ValidateRunner defines the interface for validating the poems directory.
type ValidateRunner interface {
	ValidateAll(ctx context.Context, language string) (*validate.Report, error)
}

// NewValidateCmd creates the validate command with the given runner.
func NewValidateCmd(runner ValidateRunner) *cobra.Command {
	return &cobra.Command{
		Use:          "validate [language]",
		Short:        "Validate every poem, or the poems of one language",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var language string
			if len(args) == 1 {
				language = args[0]
			}

			report, err := runner.ValidateAll(cmd.Context(), language)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if language != "" && !GetJSON() {
				fmt.Fprintln(w, newStyles(w).info.Render("Validating poems for language: "+language))
				fmt.Fprintln(w)
			}
			return writeReport(w, report, GetJSON())
		},
	}
}
