package forth

import (
	"errors"
	"io"
	"strings"

	"github.com/jcorbin/toyforth/internal/panicerr"
)

// New creates an Evaluator with an empty stack and dictionary, and then
// applies any options.
func New(opts ...Option) *Evaluator {
	var e Evaluator
	Options(opts...).apply(&e)
	return &e
}

// Eval processes one line of input.  It returns the first error encountered,
// as a *TokenError wrapping an ErrorKind; processing stops at that point.
// Stack changes made before the failing token are kept; a definition that
// fails is not recorded.  A panic, such as one raised by a trace function,
// is returned as an error carrying its stack (see internal/panicerr).
func (e *Evaluator) Eval(line string) error {
	err := panicerr.Recover("forth.Eval", func() error {
		e.logf(">", "eval %q", line)
		defer e.withLogPrefix("\t")()
		e.eval(line)
		return nil
	})
	var halted haltError
	if errors.As(err, &halted) {
		err = halted.error
	}
	return err
}

// Stack returns a copy of the value stack, bottom first.
func (e *Evaluator) Stack() []Value {
	return append(make([]Value, 0, len(e.stack)), e.stack...)
}

// Words returns the sorted names of all user defined words.
func (e *Evaluator) Words() []string {
	return e.dict.names()
}

// Definition returns the tokens recorded for a user defined word.
// References to other words appear as their captured snapshot, rendered
// like "{foo bar 2}".
func (e *Evaluator) Definition(name string) ([]string, bool) {
	name = strings.ToLower(name)
	if isShadowKey(name) {
		return nil, false
	}
	body, defined := e.dict.lookup(name)
	if !defined {
		return nil, false
	}
	tokens := make([]string, len(body))
	for i, tok := range body {
		tokens[i] = tok.String()
	}
	return tokens, true
}

// Dump writes a human readable description of the stack and dictionary.
func (e *Evaluator) Dump(w io.Writer) error {
	return dumper{e: e, out: w}.dump()
}
