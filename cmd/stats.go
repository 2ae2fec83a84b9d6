package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eykd/poetic-source-go/internal/catalog"
)

// statsOutput is the JSON structure for stats output.
type statsOutput struct {
	Total     int               `json:"total"`
	Forms     []catalog.Summary `json:"forms"`
	Languages []catalog.Summary `json:"languages"`
}

// NewStatsCmd creates the stats command with the given runner.
func NewStatsCmd(runner CatalogRunner) *cobra.Command {
	return &cobra.Command{
		Use:          "stats",
		Short:        "Count valid poems by form and by language",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := runner.LoadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			out := statsOutput{
				Total:     cat.Len(),
				Forms:     cat.FormSummaries(),
				Languages: cat.LanguageSummaries(),
			}
			if GetJSON() {
				writeJSON(cmd.OutOrStdout(), out)
				return nil
			}

			w := cmd.OutOrStdout()
			st := newStyles(w)
			fmt.Fprintln(w, st.heading.Render(fmt.Sprintf("%d poems", out.Total)))
			writeSummaries(w, st, "Forms", out.Forms)
			writeSummaries(w, st, "Languages", out.Languages)
			return nil
		},
	}
}

func writeSummaries(w io.Writer, st styles, title string, summaries []catalog.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, st.heading.Render(title))
	for _, s := range summaries {
		fmt.Fprintf(w, "  %-12s %3d\n", s.DisplayName, s.Count)
	}
}
