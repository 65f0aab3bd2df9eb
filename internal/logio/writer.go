package logio

import (
	"bytes"
	"sync"
)

// Writer is an io.Writer that logs each line written to it, through a
// printf-style Logf function such as testing.T.Logf or Logger.Leveledf.
// A partial last line is held until more is written, or Close.
type Writer struct {
	Logf func(string, ...interface{})

	mu      sync.Mutex
	partial []byte
}

// Writer returns a Writer that logs each line at the given level.
func (log *Logger) Writer(level string) *Writer {
	return &Writer{Logf: log.Leveledf(level)}
}

func (lw *Writer) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	rest := p
	for {
		line, more, found := bytes.Cut(rest, []byte{'\n'})
		if !found {
			lw.partial = append(lw.partial, rest...)
			return len(p), nil
		}
		if len(lw.partial) > 0 {
			line = append(lw.partial, line...)
			lw.partial = lw.partial[:0]
		}
		lw.Logf("%s", line)
		rest = more
	}
}

// Close logs any partial line.
func (lw *Writer) Close() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if len(lw.partial) > 0 {
		lw.Logf("%s", lw.partial)
		lw.partial = nil
	}
	return nil
}
