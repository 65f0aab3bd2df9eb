package forth

import "fmt"

// ErrorKind classifies evaluation failures.
type ErrorKind int

// Error kinds returned (wrapped in a *TokenError) by Evaluator.Eval.
const (
	DivisionByZero ErrorKind = iota + 1
	StackUnderflow
	UnknownWord
	InvalidWord
)

var errorKindNames = [...]string{
	DivisionByZero: "division by zero",
	StackUnderflow: "stack underflow",
	UnknownWord:    "unknown word",
	InvalidWord:    "invalid word",
}

func (kind ErrorKind) Error() string {
	if kind > 0 && int(kind) < len(errorKindNames) {
		return errorKindNames[kind]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(kind))
}

// TokenError is the error returned by Eval; it records which token failed.
// Token is the failing token after any word expansion, Pos is the index of
// the input token being processed at the time.  An empty Token means that
// input ended inside a definition.
type TokenError struct {
	Kind  ErrorKind
	Token string
	Pos   int
}

func (te *TokenError) Error() string {
	if te.Token == "" {
		return fmt.Sprintf("%v at end of input", te.Kind)
	}
	return fmt.Sprintf("%v %q at token %v", te.Kind, te.Token, te.Pos)
}

// Unwrap returns the error kind, so that errors.Is(err, UnknownWord) works.
func (te *TokenError) Unwrap() error { return te.Kind }
