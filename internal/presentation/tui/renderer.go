package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/waterjug/pkg/domain"
	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Markdown formats a solution as a markdown document with one table row per step.
func Markdown(p domain.Problem, steps domain.Solution) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Water jug %s\n\n", p)
	if len(steps) == 0 {
		sb.WriteString("Both jugs start empty, so the target is already measured.\n")
		return sb.String()
	}

	sb.WriteString("| Step | Jug X | Jug Y | Action |\n")
	sb.WriteString("|---:|---:|---:|:---|\n")
	for i, s := range steps {
		fmt.Fprintf(&sb, "| %d | %d | %d | %s |\n", i+1, s.X, s.Y, s.Action)
	}
	fmt.Fprintf(&sb, "\nSolved in **%d** steps.\n", len(steps))
	return sb.String()
}

// Plain formats a solution as aligned text for pipes and log files.
func Plain(p domain.Problem, steps domain.Solution) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Water jug %s\n", p)
	if len(steps) == 0 {
		sb.WriteString("Already solved: both jugs start empty.\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "%4s  %5s  %5s  %s\n", "STEP", "X", "Y", "ACTION")
	for i, s := range steps {
		fmt.Fprintf(&sb, "%4d  %5d  %5d  %s\n", i+1, s.X, s.Y, s.Action)
	}
	return sb.String()
}

// PrintSolution writes the solution to w, rendered with glamour when w is a
// terminal and as plain text otherwise.
func PrintSolution(w io.Writer, p domain.Problem, steps domain.Solution) error {
	if !IsTerminal(w) {
		_, err := io.WriteString(w, Plain(p, steps))
		return err
	}

	render, err := NewRenderer()
	if err != nil {
		return err
	}
	out, err := render(Markdown(p, steps))
	if err != nil {
		return fmt.Errorf("render solution: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
