package forth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Tokenize(t *testing.T) {
	for _, tc := range []struct {
		name   string
		line   string
		tokens []string
	}{
		{"empty", "", nil},
		{"only space", " \t\r\n\v\f", nil},
		{"single", "dup", []string{"dup"}},
		{"preserves case", "1 DUP Swap", []string{"1", "DUP", "Swap"}},
		{"collapses runs", "  1\t\t2  \n 3 ", []string{"1", "2", "3"}},
		{"symbols", ": + - ;", []string{":", "+", "-", ";"}},
		{"no quoting", `"a b"`, []string{`"a`, `b"`}},
		{"non-ascii space is not a separator", "a\u00a0b c", []string{"a\u00a0b", "c"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.tokens, Tokenize(tc.line))
		})
	}
}

func Test_Tokens_restart(t *testing.T) {
	ts := NewTokens(" 1 2 ")
	var first, second []string
	for tok, ok := ts.Next(); ok; tok, ok = ts.Next() {
		first = append(first, tok)
	}
	_, ok := ts.Next()
	assert.False(t, ok, "expected exhausted tokens to stay exhausted")

	ts.Reset()
	for tok, ok := ts.Next(); ok; tok, ok = ts.Next() {
		second = append(second, tok)
	}
	assert.Equal(t, []string{"1", "2"}, first)
	assert.Equal(t, first, second, "expected Reset to restart the sequence")

	var zero Tokens
	_, ok = zero.Next()
	assert.False(t, ok, "expected zero Tokens to be empty")
}

func Test_literal(t *testing.T) {
	for _, tc := range []struct {
		tok string
		val Value
		ok  bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"-7", -7, true},
		{"+7", 7, true},
		{"2147483647", 2147483647, true},
		{"-2147483648", -2147483648, true},
		{"2147483648", 0, false},
		{"0x10", 0, false},
		{"1.5", 0, false},
		{"-", 0, false},
		{"dup", 0, false},
	} {
		t.Run(tc.tok, func(t *testing.T) {
			val, ok := literal(tc.tok)
			assert.Equal(t, tc.ok, ok, "expected literal ok")
			assert.Equal(t, tc.val, val, "expected literal value")
		})
	}
}
