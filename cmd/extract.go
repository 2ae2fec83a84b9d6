package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/poetic-source-go/internal/domain"
	"github.com/eykd/poetic-source-go/internal/poetics"
)

// ExtractResult holds the poetic lines extracted from one file.
type ExtractResult struct {
	Path     string              `json:"path"`
	Language domain.Language     `json:"language"`
	Lines    []domain.PoeticLine `json:"lines"`
}

// ExtractRunner defines the interface for extracting poetic lines.
type ExtractRunner interface {
	Extract(ctx context.Context, path string, lang domain.Language) (*ExtractResult, error)
}

// NewExtractCmd creates the extract command with the given runner.
func NewExtractCmd(runner ExtractRunner) *cobra.Command {
	var language string
	var clean bool

	cmd := &cobra.Command{
		Use:          "extract <file>",
		Short:        "Show the poetic lines found in a poem's code",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var lang domain.Language
			if language != "" {
				parsed, ok := domain.ParseLanguage(language)
				if !ok {
					return fmt.Errorf("unknown language %q; must be one of: %s", language, domain.LanguageNames(", "))
				}
				lang = parsed
			}

			result, err := runner.Extract(cmd.Context(), args[0], lang)
			if err != nil {
				return err
			}

			if clean {
				for i := range result.Lines {
					result.Lines[i].Content = poetics.CleanLine(result.Lines[i].Content)
				}
			}

			w := cmd.OutOrStdout()
			if GetJSON() {
				writeJSON(w, result)
				return nil
			}
			st := newStyles(w)
			for _, l := range result.Lines {
				fmt.Fprintf(w, "%4d  %s  %s\n", l.LineNumber, st.dim.Render(fmt.Sprintf("%-7s", l.Type)), l.Content)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "Override the language declared in the frontmatter")
	cmd.Flags().BoolVar(&clean, "clean", false, "Strip comment markers and trailing punctuation from each line")

	return cmd
}
