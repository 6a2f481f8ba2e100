// File: pkg/ui/printer.go

// Package ui renders install progress for the terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorStatus  = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
	colorMuted   = lipgloss.Color("#9CA3AF")
)

var (
	statusStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorStatus)
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWarning)
	verboseStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

// Printer writes progress lines. Quiet suppresses everything; Verbose enables
// the per-package diagnostics block.
type Printer struct {
	out     io.Writer
	quiet   bool
	verbose bool
}

// NewPrinter creates a Printer. Quiet wins over verbose.
func NewPrinter(out io.Writer, quiet, verbose bool) *Printer {
	return &Printer{out: out, quiet: quiet, verbose: verbose && !quiet}
}

// Quiet reports whether output is suppressed.
func (p *Printer) Quiet() bool { return p.quiet }

// Verbose reports whether diagnostics are printed.
func (p *Printer) Verbose() bool { return p.verbose }

func (p *Printer) println(s string) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, s)
}

// Status prints a "==> msg" banner.
func (p *Printer) Status(msg string) {
	p.println(statusStyle.Render("==>") + " " + msg)
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	p.println("")
}

// Done prints the completion marker.
func (p *Printer) Done() {
	p.Status("Done.")
}

// Warning prints a highlighted warning line.
func (p *Printer) Warning(msg string) {
	p.println(warningStyle.Render("WARN:") + " " + msg)
}

// InstallStatus prints the outcome of materializing one package.
func (p *Printer) InstallStatus(ok bool, name, version string) {
	marker := statusStyle.Render("  ●  ")
	if !ok {
		marker = failStyle.Render("  ×  ")
	}
	p.println(marker + name + ": " + version)
}

// Diagnostics prints the keys computed for a package before it is acted on.
func (p *Printer) Diagnostics(name, version, cacheKey, projectKey string, cached bool) {
	if !p.verbose {
		return
	}
	for _, line := range []string{
		"NAME: " + name,
		"  VERSION: " + version,
		"  CACHE_NAME: " + cacheKey,
		"  CURRENT_NAME: " + projectKey,
		fmt.Sprintf("  IS_CACHED: %t", cached),
	} {
		p.println(verboseStyle.Render(line))
	}
	p.Blank()
}
