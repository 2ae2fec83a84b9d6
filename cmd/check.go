package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/eykd/poetic-source-go/internal/validate"
)

// CheckRunner defines the interface for validating individual files.
type CheckRunner interface {
	ValidateFiles(ctx context.Context, paths []string) (*validate.Report, error)
}

// NewCheckCmd creates the check command with the given runner.
func NewCheckCmd(runner CheckRunner) *cobra.Command {
	return &cobra.Command{
		Use:          "check <file>...",
		Short:        "Validate individual poem files",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := runner.ValidateFiles(cmd.Context(), args)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), report, GetJSON())
		},
	}
}
