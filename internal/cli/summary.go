package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Calebjackson-photonics/structured-light-education/internal/domain"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
)

type theme struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Faint lipgloss.Style
	Card  lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Title: lipgloss.NewStyle().Bold(true),
		Label: lipgloss.NewStyle().Faint(true).Width(12),
		Value: lipgloss.NewStyle(),
		Faint: lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}

func checkFormat(format string) error {
	switch format {
	case formatPretty, formatJSON, "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printReport(w io.Writer, r domain.FigureReport, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case formatPretty, "":
		_, err := fmt.Fprintln(w, renderReport(defaultTheme(), r))
		return err
	default:
		return checkFormat(format)
	}
}

func renderReport(th theme, r domain.FigureReport) string {
	var rows []string
	row := func(label, value string) {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, th.Label.Render(label), th.Value.Render(value)))
	}

	var title string
	switch r.Kind {
	case domain.FigureVortex:
		title = fmt.Sprintf("Optical vortex, l = %d", r.Charge)
		row("charge", fmt.Sprintf("%d", r.Charge))
	default:
		title = "Basic optical phase map"
	}

	row("grid", fmt.Sprintf("%d x %d", r.GridSize, r.GridSize))
	row("extent", fmt.Sprintf("[-%g, %g]", r.Extent, r.Extent))

	if r.Kind == domain.FigureVortex {
		row("w0", fmt.Sprintf("%g", r.Waist))
		row("peak |E|^2", fmt.Sprintf("%.6g", r.PeakIntensity))
		row("core |E|^2", fmt.Sprintf("%.3g", r.CoreIntensity))
	}

	if r.OutputPath != "" {
		row("output", r.OutputPath)
	}
	if r.Shown {
		row("display", "shown")
	}
	row("elapsed", r.Duration().String())

	body := lipgloss.JoinVertical(lipgloss.Left, append([]string{th.Title.Render(title), ""}, rows...)...)
	return th.Card.Render(strings.TrimRight(body, "\n"))
}
