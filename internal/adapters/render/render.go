// Package render prints scan results, deletion plans and reports to the terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/wsg/internal/core/domain"
	"go.trai.ch/wsg/internal/core/ports"
	"go.trai.ch/wsg/internal/ui/output"
	"go.trai.ch/wsg/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer using lipgloss.
type Renderer struct {
	w     io.Writer
	width int

	box     lipgloss.Style
	title   lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	total   lipgloss.Style
}

// New creates a Renderer writing to stdout.
func New() *Renderer {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a Renderer writing to w.
// The box width follows the terminal behind w.
func NewWithWriter(w io.Writer) *Renderer {
	lg := output.NewRenderer(w)

	return &Renderer{
		w:     w,
		width: output.Width(w),

		box: lg.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.Slate).
			Padding(0, 1),
		title: lg.NewStyle().
			Bold(true).
			Foreground(style.Iris),
		label: lg.NewStyle().
			Foreground(style.Slate),
		muted: lg.NewStyle().
			Foreground(style.Slate).
			Faint(true),
		success: lg.NewStyle().
			Foreground(style.Green),
		failure: lg.NewStyle().
			Foreground(style.Red),
		total: lg.NewStyle().
			Bold(true),
	}
}

// Listing prints one box per match followed by the total reclaimable size.
func (r *Renderer) Listing(results []domain.MatchResult) {
	if len(results) == 0 {
		r.println(r.muted.Render("No build artifacts found."))
		return
	}

	// Border and padding take four columns.
	boxWidth := max(r.width-2, 20)

	for _, res := range results {
		lines := []string{
			r.title.Render(fmt.Sprintf("[%d] %s", res.Index, res.Recognizer.Name)),
			r.label.Render("Project:  ") + res.Directory,
			r.label.Render("To clean: ") + domain.FormatBytes(res.Size),
		}
		for _, p := range res.Deletable {
			lines = append(lines, r.label.Render(style.Arrow+" ")+p)
		}
		r.println(r.box.Width(boxWidth).Render(strings.Join(lines, "\n")))
	}

	r.println("")
	r.println(r.total.Render("Cleanable storage: " + domain.FormatBytes(domain.TotalSize(results))))
	r.println(r.muted.Render("Run 'wsg clean --ids <index,...|all>' to delete the listed artifacts."))
}

// Plan prints what a clean run is about to delete.
func (r *Renderer) Plan(results []domain.MatchResult) {
	for _, res := range results {
		r.println(r.title.Render(fmt.Sprintf("[%d]", res.Index)) + " - " + res.Directory)
		r.println("    " + r.label.Render(res.Recognizer.Name+", "+domain.FormatBytes(res.Size)))
		for _, p := range res.Deletable {
			r.println("    Delete: " + p)
		}
	}
	r.println("")
	r.println(r.total.Render(fmt.Sprintf("Total: %s in %d project(s)",
		domain.FormatBytes(domain.TotalSize(results)), len(results))))
}

// Report prints the outcome of every deleted path and a summary line.
func (r *Renderer) Report(selections []domain.DeleteOperationSelection) {
	for _, sel := range selections {
		r.println(r.title.Render(sel.Name) + " " + sel.Directory)
		for _, res := range sel.Results {
			if res.Success {
				r.println("  " + r.success.Render(style.Check) + " " + res.Path)
				continue
			}
			r.println("  " + r.failure.Render(style.Cross) + " " + res.Path)
			r.println("    " + r.failure.Render(res.ErrorMessage))
		}
	}

	succeeded, failed := domain.CountOutcomes(selections)
	summary := fmt.Sprintf("Deleted %d path(s), %d failed.", succeeded, failed)
	r.println("")
	if failed > 0 {
		r.println(r.failure.Render(summary))
		return
	}
	r.println(r.success.Render(summary))
}

// Volume prints the free space of the volume holding a scanned root.
func (r *Renderer) Volume(usage domain.VolumeUsage) {
	r.println(r.muted.Render(fmt.Sprintf("Free space: %s of %s",
		domain.FormatBytes(usage.Free), domain.FormatBytes(usage.Total))))
}

// Recognizers prints every recognizer with its markers.
func (r *Renderer) Recognizers(registry *domain.Registry) {
	for _, rec := range registry.Recognizers() {
		r.println(r.title.Render(rec.Name))
		r.println("  " + r.label.Render("presence:  ") + joinSignatures(rec.Presence))
		r.println("  " + r.label.Render("deletable: ") + joinSignatures(rec.Deletable))
	}
}

func (r *Renderer) println(s string) {
	_, _ = fmt.Fprintln(r.w, s)
}

func joinSignatures(sigs []domain.PathSignature) string {
	parts := make([]string, len(sigs))
	for i, s := range sigs {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}
