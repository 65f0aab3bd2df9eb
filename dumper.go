package forth

import (
	"fmt"
	"io"
)

type dumper struct {
	e   *Evaluator
	out io.Writer

	err error
}

func (dump dumper) dump() error {
	dump.printf("# Forth Dump\n")
	dump.printf("  stack: %v\n", dump.e.stack)

	words := dump.e.dict.names()
	dump.printf("  words: %v\n", words)
	for _, name := range words {
		dump.formatWord(name, name)
	}

	if keys := dump.e.dict.shadowKeys(); len(keys) > 0 {
		dump.printf("# Snapshots\n")
		for _, key := range keys {
			dump.formatWord(token{text: key}.String(), key)
		}
	}

	return dump.err
}

func (dump *dumper) formatWord(label, name string) {
	body, _ := dump.e.dict.lookup(name)
	dump.printf("  : %v", label)
	for _, tok := range body {
		dump.printf(" %v", tok)
	}
	dump.printf(" ;\n")
}

func (dump *dumper) printf(format string, args ...interface{}) {
	if dump.err == nil {
		_, dump.err = fmt.Fprintf(dump.out, format, args...)
	}
}
