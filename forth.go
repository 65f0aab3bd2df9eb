package forth

import "github.com/edwingeng/deque"

// Value is the type of every value stack element.
type Value int32

// Evaluator holds the state of a FORTH session: a value stack, and a
// dictionary of user defined words.  An Evaluator is not safe for concurrent
// use; each session should have its own.
type Evaluator struct {
	logging

	// The stack is a standard LIFO of Values, the last element is the top.
	stack []Value

	// The dictionary maps lower case word names to their recorded tokens;
	// it also holds the snapshots that definitions capture.
	dict dictionary

	// State of the current Eval call.
	mode mode
	def  *definition
	work deque.Deque // of token
	cur  token       // token being processed
	pos  int         // index of the input token being processed
}

// token is one unit of work for the evaluator.  Tokens read from input are
// never pinned; a pinned token names a built-in, and was recorded in a
// definition body so that it bypasses any later user definition.
type token struct {
	text   string
	pinned bool
}

func (e *Evaluator) push(val Value) {
	e.stack = append(e.stack, val)
}

func (e *Evaluator) pop() (val Value) {
	i := len(e.stack) - 1
	val, e.stack = e.stack[i], e.stack[:i]
	return val
}

// need halts with StackUnderflow unless the stack holds at least n values.
func (e *Evaluator) need(n int) {
	if len(e.stack) < n {
		e.halt(StackUnderflow)
	}
}

func (tok token) String() string {
	if isShadowKey(tok.text) {
		return "{" + tok.text + "}"
	}
	return tok.text
}
