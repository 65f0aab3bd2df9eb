package forth

import "strconv"

// Tokens iterates over the whitespace separated tokens of a line.
// The zero value is an empty sequence; Reset rewinds to the first token.
type Tokens struct {
	line string
	off  int
}

// NewTokens returns a token sequence over line.
func NewTokens(line string) *Tokens { return &Tokens{line: line} }

// Next returns the next token and true, or "" and false once the line is
// exhausted.  Tokens are never empty and preserve case.
func (ts *Tokens) Next() (string, bool) {
	i := ts.off
	for i < len(ts.line) && isSpace(ts.line[i]) {
		i++
	}
	j := i
	for j < len(ts.line) && !isSpace(ts.line[j]) {
		j++
	}
	ts.off = j
	if i == j {
		return "", false
	}
	return ts.line[i:j], true
}

// Reset restarts the sequence from the beginning of the line.
func (ts *Tokens) Reset() { ts.off = 0 }

// Tokenize splits line into all of its tokens.
func Tokenize(line string) (tokens []string) {
	ts := NewTokens(line)
	for tok, ok := ts.Next(); ok; tok, ok = ts.Next() {
		tokens = append(tokens, tok)
	}
	return tokens
}

// isSpace matches ASCII whitespace only; any other byte, including those of
// multi-byte runes, is part of a token.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func literal(tok string) (Value, bool) {
	n, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, false
	}
	return Value(n), true
}

func isLiteral(tok string) bool {
	_, ok := literal(tok)
	return ok
}
