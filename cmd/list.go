package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eykd/poetic-source-go/internal/catalog"
	"github.com/eykd/poetic-source-go/internal/domain"
)

// CatalogRunner defines the interface for loading the poem catalog.
type CatalogRunner interface {
	LoadCatalog(ctx context.Context) (*catalog.Catalog, error)
}

// listOutput is the top-level JSON structure for list output.
type listOutput struct {
	Poems []domain.Poem `json:"poems"`
}

// NewListCmd creates the list command with the given runner.
func NewListCmd(runner CatalogRunner) *cobra.Command {
	var formFilter, languageFilter, tagFilter string

	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List valid poems, newest first",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var keep []func(domain.Poem) bool
			if formFilter != "" {
				form, ok := domain.ParseForm(formFilter)
				if !ok {
					return fmt.Errorf("unknown form %q; must be one of: %s", formFilter, domain.FormNames(", "))
				}
				keep = append(keep, func(p domain.Poem) bool { return p.Form == form })
			}
			if languageFilter != "" {
				lang, ok := domain.ParseLanguage(languageFilter)
				if !ok {
					return fmt.Errorf("unknown language %q; must be one of: %s", languageFilter, domain.LanguageNames(", "))
				}
				keep = append(keep, func(p domain.Poem) bool { return p.Language == lang })
			}
			if tagFilter != "" {
				keep = append(keep, func(p domain.Poem) bool { return p.HasTag(tagFilter) })
			}

			cat, err := runner.LoadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			poems := []domain.Poem{}
		next:
			for _, p := range cat.All() {
				for _, k := range keep {
					if !k(p) {
						continue next
					}
				}
				poems = append(poems, p)
			}

			if GetJSON() {
				writeJSON(cmd.OutOrStdout(), &listOutput{Poems: poems})
				return nil
			}
			renderPoems(cmd.OutOrStdout(), poems, nil)
			return nil
		},
	}

	cmd.Flags().StringVar(&formFilter, "form", "", "Only poems in this form")
	cmd.Flags().StringVar(&languageFilter, "language", "", "Only poems in this language")
	cmd.Flags().StringVar(&tagFilter, "tag", "", "Only poems with this tag")

	return cmd
}

// searchHit pairs a poem with where the term matched.
type searchHit struct {
	Poem    domain.Poem   `json:"poem"`
	Matches catalog.Match `json:"matches"`
}

// searchOutput is the top-level JSON structure for search output.
type searchOutput struct {
	Term    string      `json:"term"`
	Results []searchHit `json:"results"`
}

// NewSearchCmd creates the search command with the given runner.
func NewSearchCmd(runner CatalogRunner) *cobra.Command {
	return &cobra.Command{
		Use:          "search <term>",
		Short:        "Search poems by title, content, notes, tags, form or language",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.Join(args, " ")

			cat, err := runner.LoadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			poems := cat.Search(term)
			hits := make([]searchHit, len(poems))
			for i, p := range poems {
				hits[i] = searchHit{Poem: p, Matches: catalog.Matches(p, term)}
			}

			if GetJSON() {
				writeJSON(cmd.OutOrStdout(), &searchOutput{Term: term, Results: hits})
				return nil
			}
			renderPoems(cmd.OutOrStdout(), poems, func(p domain.Poem) string {
				return matchLabel(catalog.Matches(p, term))
			})
			return nil
		},
	}
}

// matchLabel names the matched parts, e.g. "[title, tags]".
func matchLabel(m catalog.Match) string {
	var parts []string
	if m.Title {
		parts = append(parts, "title")
	}
	if m.Content {
		parts = append(parts, "content")
	}
	if m.Tags {
		parts = append(parts, "tags")
	}
	if m.Notes {
		parts = append(parts, "notes")
	}
	if len(parts) == 0 {
		return ""
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// renderPoems writes one line per poem. suffix, when set, is appended to
// each line.
func renderPoems(w io.Writer, poems []domain.Poem, suffix func(domain.Poem) string) {
	st := newStyles(w)
	if len(poems) == 0 {
		fmt.Fprintln(w, st.dim.Render("No poems found."))
		return
	}
	for _, p := range poems {
		line := poemLine(st, p)
		if suffix != nil {
			if s := suffix(p); s != "" {
				line += "  " + st.info.Render(s)
			}
		}
		fmt.Fprintln(w, line)
	}
}
