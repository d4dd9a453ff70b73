// Package console renders probe results for a terminal. Styling is a
// pure severity→style mapping; nothing here mutates shared color state.
package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/camera"
)

var (
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#04B575"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB454"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F56")).
			Bold(true)
)

// StyleFor maps an outcome severity to its terminal style.
func StyleFor(s camera.Severity) lipgloss.Style {
	switch s {
	case camera.SeverityOK:
		return okStyle
	case camera.SeverityWarn:
		return warnStyle
	default:
		return failStyle
	}
}

func glyph(s camera.Severity) string {
	switch s {
	case camera.SeverityOK:
		return "✔"
	case camera.SeverityWarn:
		return "⚠"
	default:
		return "✖"
	}
}

// Writer is a probe.Sink that prints one styled line per stage result
// as it arrives.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) Emit(r camera.ProbeResult) {
	sev := r.Severity()
	line := fmt.Sprintf("%s %-4s %s", glyph(sev), r.Stage, r.Detail)
	if r.LatencyMS > 0 {
		line += fmt.Sprintf(" (%.0f ms)", r.LatencyMS)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.out, StyleFor(sev).Render(line))
}

// Summary prints the final verdict line.
func (w *Writer) Summary(text string, sev camera.Severity) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.out, StyleFor(sev).Render(glyph(sev)+" "+text))
}
