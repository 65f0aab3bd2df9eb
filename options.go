package forth

import (
	"fmt"
	"io"
)

// Option configures an Evaluator under construction.
type Option interface{ apply(e *Evaluator) }

// Options combines any number of options into one; nil options are ignored.
func Options(opts ...Option) Option {
	var flat options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			flat = append(flat, impl...)
		default:
			flat = append(flat, opt)
		}
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return flat
}

// WithLogf sets a trace logging function, called for every token processed.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithTrace writes trace lines to w, one per call that WithLogf would see.
func WithTrace(w io.Writer) Option {
	return withLogfn(func(mess string, args ...interface{}) {
		fmt.Fprintf(w, mess+"\n", args...)
	})
}

// WithStack pushes initial values onto the stack.
func WithStack(values ...Value) Option { return stackOption(values) }

// WithWords evaluates each line of source while the Evaluator is being
// constructed, typically to preload definitions.  New panics if any of
// them fails.
func WithWords(lines ...string) Option { return wordsOption(lines) }

type options []Option

func (opts options) apply(e *Evaluator) {
	for _, opt := range opts {
		opt.apply(e)
	}
}

type withLogfn func(mess string, args ...interface{})
type stackOption []Value
type wordsOption []string

func (logfn withLogfn) apply(e *Evaluator) {
	e.logfn = logfn
}

func (values stackOption) apply(e *Evaluator) {
	e.stack = append(e.stack, values...)
}

func (lines wordsOption) apply(e *Evaluator) {
	defer e.withLogPrefix("preload: ")()
	for _, line := range lines {
		if err := e.Eval(line); err != nil {
			panic(fmt.Sprintf("forth: preloading %q: %v", line, err))
		}
	}
}
