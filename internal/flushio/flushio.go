// Package flushio provides buffered output streams that are flushed
// explicitly, typically once per line of input processed.
package flushio

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// NewWriteFlusher returns w if it is already a WriteFlusher. In memory
// buffers get a noop Flush, anything else is wrapped by a bufio.Writer.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	switch impl := w.(type) {
	case WriteFlusher:
		return impl
	case *bytes.Buffer, *strings.Builder:
		return nopFlusher{w}
	}
	if w == io.Discard {
		return nopFlusher{w}
	}
	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nopFlusher) Flush() error { return nil }

// WriteFlushers returns a WriteFlusher that writes to, and flushes, every
// non-nil one given. Returns nil if there are none.
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	var all multi
	for _, wf := range wfs {
		switch impl := wf.(type) {
		case nil:
		case multi:
			all = append(all, impl...)
		default:
			all = append(all, wf)
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	}
	return all
}

type multi []WriteFlusher

// Write writes p to every stream, even after one fails; the first error wins.
func (m multi) Write(p []byte) (int, error) {
	var err error
	for _, wf := range m {
		n, werr := wf.Write(p)
		if werr == nil && n < len(p) {
			werr = io.ErrShortWrite
		}
		if err == nil {
			err = werr
		}
	}
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

func (m multi) Flush() (err error) {
	for _, wf := range m {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}

// File is a buffered file being written; Close flushes it first.
type File struct {
	*bufio.Writer
	f *os.File
}

// Create creates, or truncates, the named file for buffered writing.
func Create(name string) (*File, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	return &File{bufio.NewWriter(f), f}, nil
}

// Name returns the name that the file was created with.
func (file *File) Name() string { return file.f.Name() }

// Close flushes any buffered output then closes the file, returning the
// first error.
func (file *File) Close() error {
	err := file.Flush()
	if cerr := file.f.Close(); err == nil {
		err = cerr
	}
	return err
}
