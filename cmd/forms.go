package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/poetic-source-go/internal/catalog"
	"github.com/eykd/poetic-source-go/internal/domain"
)

// formOutput is the JSON shape of one form description.
type formOutput struct {
	Form               domain.Form `json:"form"`
	DisplayName        string      `json:"displayName"`
	Description        string      `json:"description"`
	Rules              []string    `json:"rules"`
	CodeConsiderations []string    `json:"codeConsiderations"`
}

// NewFormsCmd creates the forms command. It needs no services.
func NewFormsCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "forms",
		Short:        "Describe the supported poetic forms",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out []formOutput
			for _, f := range domain.Forms() {
				info, _ := f.Info()
				out = append(out, formOutput{
					Form:               f,
					DisplayName:        catalog.FormDisplayName(f),
					Description:        info.Description,
					Rules:              info.Rules,
					CodeConsiderations: info.CodeConsiderations,
				})
			}

			w := cmd.OutOrStdout()
			if GetJSON() {
				writeJSON(w, out)
				return nil
			}

			st := newStyles(w)
			for i, f := range out {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintln(w, st.heading.Render(f.DisplayName)+" "+st.dim.Render("("+string(f.Form)+")"))
				fmt.Fprintln(w, "  "+f.Description)
				for _, r := range f.Rules {
					fmt.Fprintln(w, "  • "+r)
				}
			}
			return nil
		},
	}
}
