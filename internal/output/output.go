package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled lines to a single destination.
type Printer struct {
	w       io.Writer
	verbose bool
	err     error

	titleStyle   lipgloss.Style
	successStyle lipgloss.Style
	failureStyle lipgloss.Style
	infoStyle    lipgloss.Style
	stepStyle    lipgloss.Style
}

// Option configures a Printer.
type Option func(*Printer)

// WithVerbose enables or disables verbose lines.
func WithVerbose(v bool) Option {
	return func(p *Printer) {
		p.verbose = v
	}
}

// NewPrinter creates a printer for w. A nil writer means os.Stdout.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	if w == nil {
		w = os.Stdout
	}

	r := lipgloss.NewRenderer(w)
	p := &Printer{
		w:            w,
		titleStyle:   r.NewStyle().Bold(true),
		successStyle: r.NewStyle().Foreground(lipgloss.Color("green")).Bold(true),
		failureStyle: r.NewStyle().Foreground(lipgloss.Color("red")).Bold(true),
		infoStyle:    r.NewStyle().Foreground(lipgloss.Color("cyan")),
		stepStyle:    r.NewStyle().Foreground(lipgloss.Color("240")),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Err returns the first write error, if any. Later writes are skipped once
// an error has occurred.
func (p *Printer) Err() error {
	return p.err
}

// Title prints msg in bold followed by a rule of "=" the same width.
func (p *Printer) Title(msg string) {
	p.println(p.titleStyle.Render(msg))
	p.println(strings.Repeat("=", lipgloss.Width(msg)))
}

// Line prints msg unstyled.
func (p *Printer) Line(msg string) {
	p.println(msg)
}

// Linef prints a formatted, unstyled line.
func (p *Printer) Linef(format string, args ...any) {
	p.println(fmt.Sprintf(format, args...))
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	p.println("")
}

// Success prints msg with a ✓ mark in green.
func (p *Printer) Success(msg string) {
	p.println(p.successStyle.Render("✓ " + msg))
}

// Failure prints msg with a ✗ mark in red.
func (p *Printer) Failure(msg string) {
	p.println(p.failureStyle.Render("✗ " + msg))
}

// Info prints msg in cyan.
func (p *Printer) Info(msg string) {
	p.println(p.infoStyle.Render(msg))
}

// Step prints an indented gray line.
func (p *Printer) Step(msg string) {
	p.println(p.stepStyle.Render("   " + msg))
}

// Verbose prints msg only if verbose mode is enabled.
func (p *Printer) Verbose(msg string) {
	if p.verbose {
		p.println(p.stepStyle.Render("🔍 " + msg))
	}
}

func (p *Printer) println(s string) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintln(p.w, s); err != nil {
		p.err = fmt.Errorf("writing output: %w", err)
	}
}
