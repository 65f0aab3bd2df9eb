package main

import (
	"errors"
	"io"

	"github.com/charmbracelet/lipgloss"
	forth "github.com/jcorbin/toyforth"
	"github.com/jcorbin/toyforth/internal/fileinput"
	"github.com/jcorbin/toyforth/internal/logio"
	"github.com/jcorbin/toyforth/internal/panicerr"
)

// lineReader is implemented by *fileinput.Input and *terminalInput.
type lineReader interface {
	ReadLine() (fileinput.Line, error)
	Close() error
}

// session feeds input lines to one evaluator.
type session struct {
	in       lineReader
	out      *output
	log      logio.Logger
	errStyle lipgloss.Style
	quiet    bool
	forth    *forth.Evaluator
}

// newErrorStyle binds the error style to the log stream w.
func newErrorStyle(w io.Writer) lipgloss.Style {
	return lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("196"))
}

// run evaluates every input line, logging any evaluation error along with
// the line's location.  Only input and output errors are returned.  The
// input is closed once exhausted; any error doing so is logged.
func (sess *session) run() error {
	defer func() { sess.log.ErrorIf(sess.in.Close()) }()
	for {
		line, err := sess.in.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		if err := sess.forth.Eval(line.Text); err != nil {
			sess.evalError(line.Location, err)
		}
		if !sess.quiet {
			if err := sess.out.printStack(sess.forth.Stack()); err != nil {
				return err
			}
		}
		if err := sess.out.Flush(); err != nil {
			return err
		}
	}
}

func (sess *session) evalError(loc fileinput.Location, err error) {
	sess.log.Errorf("%v: %v", loc, sess.errStyle.Render(err.Error()))
	if panicerr.IsPanic(err) {
		sess.log.Printf("PANIC", "%s", panicerr.PanicStack(err))
	}
}
