// Command toyforth feeds lines of input to a toy FORTH evaluator, printing
// the stack after each one.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var code exitCode
		if errors.As(err, &code) {
			os.Exit(int(code))
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type exitCode int

func (code exitCode) Error() string { return fmt.Sprintf("exit status %d", int(code)) }
