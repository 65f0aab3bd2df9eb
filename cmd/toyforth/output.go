package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	forth "github.com/jcorbin/toyforth"
	"github.com/jcorbin/toyforth/internal/flushio"
)

// output prints stacks and dumps to the terminal, styled, and to an optional
// plain text transcript file.
type output struct {
	term       flushio.WriteFlusher
	transcript *flushio.File
	stackStyle lipgloss.Style
}

// newOutput binds styles to w, so that color is only used when w is a color
// capable terminal.
func newOutput(w io.Writer) *output {
	return &output{
		term:       flushio.NewWriteFlusher(w),
		stackStyle: lipgloss.NewRenderer(w).NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
	}
}

// teeTo starts copying all output to the named file.
func (out *output) teeTo(name string) error {
	file, err := flushio.Create(name)
	if err == nil {
		out.transcript = file
	}
	return err
}

func (out *output) plain() flushio.WriteFlusher {
	if out.transcript == nil {
		return out.term
	}
	return flushio.WriteFlushers(out.term, out.transcript)
}

func (out *output) printStack(values []forth.Value) error {
	line := formatStack(values)
	_, err := fmt.Fprintln(out.term, out.stackStyle.Render(line))
	if out.transcript != nil {
		if _, terr := fmt.Fprintln(out.transcript, line); err == nil {
			err = terr
		}
	}
	return err
}

func (out *output) dump(e *forth.Evaluator) error { return e.Dump(out.plain()) }

func (out *output) Flush() error { return out.plain().Flush() }

// Close flushes all output and closes any transcript file.
func (out *output) Close() error {
	err := out.term.Flush()
	if out.transcript != nil {
		if cerr := out.transcript.Close(); err == nil {
			err = cerr
		}
		out.transcript = nil
	}
	return err
}

func formatStack(values []forth.Value) string {
	var sb strings.Builder
	for i, val := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, val)
	}
	if sb.Len() == 0 {
		return "<empty>"
	}
	return sb.String()
}
