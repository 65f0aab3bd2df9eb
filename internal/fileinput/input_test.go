package fileinput_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jcorbin/toyforth/internal/fileinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closeRecorder struct {
	io.Reader
	closed *int
}

func (cr closeRecorder) Close() error {
	*cr.closed++
	return nil
}

func Test_Input(t *testing.T) {
	var closed int
	in := fileinput.Input{Queue: []io.Reader{
		fileinput.NamedReader("a", strings.NewReader(": sq dup * ;\n3 sq\n")),
		fileinput.NamedReader("empty", strings.NewReader("")),
		fileinput.NamedReader("b", closeRecorder{strings.NewReader("1 2\r\nno newline"), &closed}),
		strings.NewReader("x"),
	}}

	var got []string
	for {
		line, err := in.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err, "unexpected read error")
		got = append(got, line.String())
	}

	assert.Equal(t, []string{
		`a:1 ": sq dup * ;"`,
		`a:2 "3 sq"`,
		`b:1 "1 2"`,
		`b:2 "no newline"`,
		`<unnamed *strings.Reader>:1 "x"`,
	}, got)
	assert.Equal(t, 1, closed, "expected exhausted stream to be closed")

	_, err := in.ReadLine()
	assert.Equal(t, io.EOF, err, "expected input to stay at EOF")
}

func Test_Input_Close(t *testing.T) {
	var closed int
	in := fileinput.Input{Queue: []io.Reader{
		fileinput.NamedReader("a", closeRecorder{strings.NewReader("1\n2\n"), &closed}),
		fileinput.NamedReader("b", closeRecorder{strings.NewReader("3\n"), &closed}),
	}}
	line, err := in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "a:1", line.Location.String())

	assert.NoError(t, in.Close())
	assert.Equal(t, 2, closed, "expected current and queued streams to be closed")

	_, err = in.ReadLine()
	assert.Equal(t, io.EOF, err)
}
