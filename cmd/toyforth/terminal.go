package main

import (
	"errors"
	"io"
	"strings"

	"github.com/jcorbin/toyforth/internal/fileinput"
	"github.com/peterh/liner"
)

// terminalInput reads lines from an interactive terminal with line editing
// and history.  Ctrl-C and Ctrl-D both end input.
type terminalInput struct {
	state  *liner.State
	prompt string
	loc    fileinput.Location
}

func newTerminalInput(prompt string) *terminalInput {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &terminalInput{
		state:  state,
		prompt: prompt,
		loc:    fileinput.Location{Name: "<tty>"},
	}
}

func (ti *terminalInput) ReadLine() (fileinput.Line, error) {
	text, err := ti.state.Prompt(ti.prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		err = io.EOF
	}
	if err != nil {
		return fileinput.Line{}, err
	}
	ti.loc.Line++
	if strings.TrimSpace(text) != "" {
		ti.state.AppendHistory(text)
	}
	return fileinput.Line{Location: ti.loc, Text: text}, nil
}

// Close restores the terminal mode.
func (ti *terminalInput) Close() error { return ti.state.Close() }
