package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorEnabled reports whether styled output should be written to f.
// NO_COLOR, a non terminal destination or an ASCII-only profile all turn
// colour off.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if f == nil {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}

// Printer renders text with or without styling.
type Printer struct {
	color bool
}

// NewPrinter returns a printer for f with colour detection applied.
func NewPrinter(f *os.File) *Printer {
	return &Printer{color: ColorEnabled(f)}
}

// PlainPrinter never emits escape sequences.
func PlainPrinter() *Printer {
	return &Printer{}
}

func (p *Printer) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

func (p *Printer) Error(text string) string   { return p.render(ErrorStyle, text) }
func (p *Printer) Success(text string) string { return p.render(SuccessStyle, text) }
func (p *Printer) Warning(text string) string { return p.render(WarningStyle, text) }
func (p *Printer) Key(text string) string     { return p.render(KeyStyle, text) }
func (p *Printer) Value(text string) string   { return p.render(ValueStyle, text) }
func (p *Printer) Muted(text string) string   { return p.render(MutedStyle, text) }
