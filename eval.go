package forth

import (
	"strings"

	"github.com/edwingeng/deque"
)

type mode int

const (
	// modeEval runs tokens: words expand, literals push, built-ins execute.
	modeEval mode = iota

	// modeDefineSymbol takes the next token as the name of a new word.
	modeDefineSymbol

	// modeDefineValue records tokens into the new word until ";".
	modeDefineValue
)

var modeNames = [...]string{
	modeEval:         "eval",
	modeDefineSymbol: "define-symbol",
	modeDefineValue:  "define-value",
}

func (m mode) String() string { return modeNames[m] }

// eval processes one line of input, halting on the first error.
//
// Each input token is pushed onto the work queue, which is then drained
// before the next input token is read.  Word expansion pushes the word's
// tokens onto the front of the same queue, so nested words run in order
// without recursion.
func (e *Evaluator) eval(line string) {
	e.mode = modeEval
	e.def = nil
	e.work = deque.NewDeque()
	e.cur = token{}

	tokens := Tokenize(line)
	for i, text := range tokens {
		e.pos = i
		e.work.PushBack(token{text: text})
		for !e.work.Empty() {
			e.cur = e.work.PopFront().(token)
			e.step()
		}
	}

	if e.mode != modeEval {
		e.cur = token{}
		e.pos = len(tokens)
		e.logf("#", "input ended in %v mode", e.mode)
		e.halt(InvalidWord)
	}
}

func (e *Evaluator) step() {
	tok := e.cur
	name := strings.ToLower(tok.text)
	e.logf(">", "%v %q stack:%v", e.mode, tok.text, e.stack)
	switch e.mode {
	case modeEval:
		e.evalToken(tok, name)
	case modeDefineSymbol:
		e.defineSymbol(name)
	case modeDefineValue:
		e.defineValue(tok, name)
	}
}

func (e *Evaluator) evalToken(tok token, name string) {
	if !tok.pinned {
		switch name {
		case ":":
			e.mode = modeDefineSymbol
			return
		case ";":
			e.halt(InvalidWord)
		}
		if body, defined := e.dict.lookup(name); defined {
			e.expand(name, body)
			return
		}
	}
	if val, ok := literal(name); ok {
		e.push(val)
		return
	}
	if code, ok := builtins[name]; ok {
		code(e)
		return
	}
	e.halt(UnknownWord)
}

func (e *Evaluator) defineSymbol(name string) {
	if name == ":" || name == ";" || isLiteral(name) {
		e.halt(InvalidWord)
	}
	e.def = e.dict.begin(name)
	e.mode = modeDefineValue
}

func (e *Evaluator) defineValue(tok token, name string) {
	// pinned built-ins and snapshots only arrive here by re-inlining the
	// prior meaning of the word being defined; both are already resolved
	if tok.pinned || isShadowKey(name) {
		e.def.record(tok)
		return
	}

	switch name {
	case ";":
		e.logf(":", "define %v %v", e.def.name, e.def.body)
		e.dict.commit(e.def)
		e.def = nil
		e.mode = modeEval
		return
	case ":":
		e.halt(InvalidWord)
	}

	if body, defined := e.dict.lookup(name); defined {
		if name == e.def.name {
			e.expand(name, body)
		} else {
			key := e.def.shadow(name, body)
			e.logf("=", "snapshot %v as %q", name, key)
			e.def.record(token{text: key})
		}
		return
	}
	if isLiteral(name) {
		e.def.record(token{text: name})
		return
	}
	if _, ok := builtins[name]; ok {
		e.def.record(token{text: name, pinned: true})
		return
	}
	e.halt(UnknownWord)
}

// expand pushes body onto the front of the work queue, preserving its order.
func (e *Evaluator) expand(name string, body []token) {
	e.logf("+", "expand %v %v", name, body)
	for i := len(body) - 1; i >= 0; i-- {
		e.work.PushFront(body[i])
	}
}
