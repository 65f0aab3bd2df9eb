// Package fileinput reads lines from a sequence of named input streams.
package fileinput

import (
	"bufio"
	"fmt"
	"io"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line is one line of input text along with its Location.
type Line struct {
	Location
	Text string
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Text) }

// Input implements sequential line reading through a Queue of one or more
// input streams.
type Input struct {
	Queue []io.Reader

	cur io.Reader
	sc  *bufio.Scanner
	loc Location
}

// ReadLine returns the next line, without its line terminator, moving on
// through Queue as each stream is exhausted; streams that implement
// io.Closer are closed once exhausted.  Returns io.EOF after the last line
// of the last stream.
func (in *Input) ReadLine() (Line, error) {
	for {
		if in.sc == nil && !in.nextIn() {
			return Line{}, io.EOF
		}
		if in.sc.Scan() {
			in.loc.Line++
			return Line{Location: in.loc, Text: in.sc.Text()}, nil
		}
		err := in.sc.Err()
		in.closeIn()
		if err != nil {
			return Line{}, fmt.Errorf("%v: %w", in.loc, err)
		}
	}
}

// Close closes the current stream, and any still queued.
func (in *Input) Close() (err error) {
	in.closeIn()
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.cur = r
	in.sc = bufio.NewScanner(r)
	in.loc = Location{Name: nameOf(r)}
	return true
}

func (in *Input) closeIn() {
	if cl, ok := in.cur.(io.Closer); ok {
		cl.Close()
	}
	in.cur = nil
	in.sc = nil
}

// NamedReader attaches a name to r, used as the Location.Name of its lines.
func NamedReader(name string, r io.Reader) io.Reader {
	if cl, ok := r.(io.Closer); ok {
		return namedReadCloser{namedReader{r, name}, cl}
	}
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

type namedReadCloser struct {
	namedReader
	io.Closer
}

func (nr namedReader) Name() string { return nr.name }

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
