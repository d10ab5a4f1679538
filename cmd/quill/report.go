package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/quill/internal/revision"
	"github.com/alexisbeaulieu97/quill/internal/site"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(12)
	fileStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	summaryStyle = lipgloss.NewStyle().MarginTop(1)
)

// printer writes reports, styling them only when w is a terminal.
type printer struct {
	w      io.Writer
	styled bool
}

func newPrinter(w io.Writer) printer {
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	return printer{w: w, styled: styled}
}

func (p printer) render(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

func (p printer) field(label, value string) {
	if p.styled {
		fmt.Fprintf(p.w, "%s%s\n", labelStyle.Render(label), value)
		return
	}
	fmt.Fprintf(p.w, "%-12s%s\n", label, value)
}

func (p printer) warnings(extra []string) {
	for _, class := range extra {
		fmt.Fprintln(p.w, p.render(warningStyle, fmt.Sprintf("! stylesheet class %q is not produced by any component", class)))
	}
}

func (p printer) buildReport(res site.Result, rev revision.Revision) {
	fmt.Fprintln(p.w, p.render(titleStyle, "Site built"))
	p.field("Output", res.OutDir)
	p.field("Pages", fmt.Sprintf("%d", res.Pages))
	p.field("Stylesheet", res.Stylesheet)
	if !rev.IsZero() {
		p.field("Revision", rev.Short())
	}
	p.field("Size", formatBytes(res.Bytes))
	p.field("Duration", res.Duration.Round(time.Millisecond).String())

	fmt.Fprintln(p.w)
	for _, f := range res.Files {
		fmt.Fprintln(p.w, "  "+p.render(fileStyle, f))
	}
	p.warnings(res.ExtraClasses)

	summary := fmt.Sprintf("✔ %d files written", len(res.Files))
	if p.styled {
		fmt.Fprintln(p.w, summaryStyle.Render(successStyle.Render(summary)))
		return
	}
	fmt.Fprintln(p.w, "\n"+summary)
}

func (p printer) checkReport(configPath string, res site.Result, identifiers int) {
	fmt.Fprintln(p.w, p.render(titleStyle, "Site check"))
	p.field("Config", configPath)
	p.field("Pages", fmt.Sprintf("%d", res.Pages))
	p.field("Identifiers", fmt.Sprintf("%d", identifiers))
	p.warnings(res.ExtraClasses)
	fmt.Fprintln(p.w, p.render(successStyle, "✔ configuration and stylesheet are consistent"))
}

func (p printer) diffReport(changes []site.FileChange) {
	fmt.Fprintln(p.w, p.render(titleStyle, "Site diff"))
	if len(changes) == 0 {
		fmt.Fprintln(p.w, p.render(successStyle, "✔ published output is up to date"))
		return
	}

	for _, c := range changes {
		style := fileStyle
		switch c.Kind {
		case site.ChangeAdded:
			style = successStyle
		case site.ChangeRemoved:
			style = failureStyle
		}
		fmt.Fprintf(p.w, "%-9s %s (+%d -%d)\n", c.Kind, p.render(style, c.Path), c.Stats.Added, c.Stats.Removed)
	}
	for _, c := range changes {
		if c.Kind == site.ChangeModified {
			fmt.Fprintln(p.w)
			fmt.Fprint(p.w, c.Patch)
		}
	}
	fmt.Fprintln(p.w, p.render(failureStyle, fmt.Sprintf("✖ %d files differ; run 'quill build' to publish", len(changes))))
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), strings.ToUpper("kmgtpe")[exp])
}
