package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/eykd/poetic-source-go/internal/domain"
	"github.com/eykd/poetic-source-go/internal/validate"
)

// writeJSON encodes v as JSON to w, handling I/O errors at the boundary.
func writeJSON(w io.Writer, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Fprintf(w, "{\"error\":%q}\n", err.Error())
	}
}

// styles colours human output. Colours are dropped when w is not a terminal.
type styles struct {
	ok      lipgloss.Style
	bad     lipgloss.Style
	warn    lipgloss.Style
	info    lipgloss.Style
	heading lipgloss.Style
	dim     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		ok:      r.NewStyle().Foreground(lipgloss.Color("2")),
		bad:     r.NewStyle().Foreground(lipgloss.Color("1")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("3")),
		info:    r.NewStyle().Foreground(lipgloss.Color("4")),
		heading: r.NewStyle().Bold(true),
		dim:     r.NewStyle().Faint(true),
	}
}

// reportJSON is the JSON output of validate and check.
type reportJSON struct {
	Files   []validate.FileReport `json:"files"`
	Summary struct {
		Checked  int `json:"checked"`
		Invalid  int `json:"invalid"`
		Errors   int `json:"errors"`
		Warnings int `json:"warnings"`
	} `json:"summary"`
}

func warningCount(r *validate.Report) int {
	n := 0
	for _, f := range r.Files {
		n += f.Result.WarningCount()
	}
	return n
}

// writeReport renders a batch report and returns FindingsDetectedError when
// any file is invalid.
func writeReport(w io.Writer, report *validate.Report, asJSON bool) error {
	if asJSON {
		out := reportJSON{Files: report.Files}
		out.Summary.Checked = report.Checked
		out.Summary.Invalid = report.InvalidCount()
		out.Summary.Errors = report.ErrorCount()
		out.Summary.Warnings = warningCount(report)
		writeJSON(w, out)
	} else {
		formatReportHuman(w, report)
	}

	if report.Valid() {
		return nil
	}
	return &FindingsDetectedError{
		Errors:   report.ErrorCount(),
		Warnings: warningCount(report),
		Files:    report.InvalidCount(),
	}
}

func formatReportHuman(w io.Writer, report *validate.Report) {
	st := newStyles(w)

	invalid := report.InvalidCount()
	if invalid > 0 {
		fmt.Fprintln(w, st.bad.Render(fmt.Sprintf("✗ Found validation errors in %d of %d poems:", invalid, report.Checked)))
		fmt.Fprintln(w)
	}

	for _, f := range report.Files {
		fmt.Fprintln(w, st.warn.Render("File: "+f.Path))
		fmt.Fprintln(w, st.warn.Render("Language: "+f.Language))
		fmt.Fprintln(w)
		for _, e := range f.Result.Errors {
			line := fmt.Sprintf("%s: %s", e.Field, e.Message)
			if e.Severity == domain.SeverityWarning {
				fmt.Fprintln(w, "  "+st.warn.Render("! "+line))
			} else {
				fmt.Fprintln(w, "  "+st.bad.Render("✗ "+line))
			}
		}
		fmt.Fprintln(w)
	}

	if invalid == 0 {
		fmt.Fprintln(w, st.ok.Render(fmt.Sprintf("✓ All %d poems are valid!", report.Checked)))
		return
	}
	fmt.Fprintln(w, st.bad.Render(fmt.Sprintf("Found %d total errors across %d files", report.ErrorCount(), invalid)))
}

// poemLine renders a one-line poem summary for list and search.
func poemLine(st styles, p domain.Poem) string {
	return fmt.Sprintf("%s  %-9s  %-10s  %s  %s",
		st.dim.Render(p.Date.Format("2006-01-02")),
		p.Form,
		p.Language,
		st.heading.Render(p.Title),
		st.dim.Render("("+p.ID+")"))
}
