package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	forth "github.com/jcorbin/toyforth"
	"github.com/jcorbin/toyforth/internal/fileinput"
	"github.com/jcorbin/toyforth/internal/version"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type config struct {
	trace bool
	dump  bool
	quiet bool
	tee   string
}

func newRootCmd() *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:   "toyforth [file...]",
		Short: "Evaluate toy FORTH, one line at a time",
		Long: `Reads lines from the named files, or standard input if none are given, and
evaluates each with a single FORTH session.  The stack is printed after each
line; errors are reported with their file and line, and evaluation continues.

A file named "-" reads standard input.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, args)
		},
	}
	cmd.Version = version.Version
	cmd.SetVersionTemplate(fmt.Sprintf("toyforth %s\n", version.String()))

	// trace flag with env var fallback
	defaultTrace := os.Getenv("TOYFORTH_TRACE") != ""
	cmd.Flags().BoolVar(&cfg.trace, "trace", defaultTrace, "Log every token evaluated to stderr (env TOYFORTH_TRACE)")
	cmd.Flags().BoolVar(&cfg.dump, "dump", false, "Dump the stack and dictionary after all input")
	cmd.Flags().BoolVarP(&cfg.quiet, "quiet", "q", false, "Do not print the stack after each line")
	cmd.Flags().StringVar(&cfg.tee, "tee", "", "Also write output to the given file")
	return cmd
}

func run(cmd *cobra.Command, cfg config, args []string) (rerr error) {
	errOut := cmd.ErrOrStderr()

	var sess session
	sess.log.SetOutput(errOut)
	sess.errStyle = newErrorStyle(errOut)
	sess.quiet = cfg.quiet

	sess.out = newOutput(cmd.OutOrStdout())
	defer func() {
		if cerr := sess.out.Close(); rerr == nil {
			rerr = cerr
		}
	}()
	if cfg.tee != "" {
		if err := sess.out.teeTo(cfg.tee); err != nil {
			return err
		}
	}

	in, err := openInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	sess.in = in

	var opts []forth.Option
	if cfg.trace {
		trace := sess.log.Writer(traceLabel(errOut))
		defer trace.Close()
		opts = append(opts, forth.WithTrace(trace))
	}
	sess.forth = forth.New(opts...)

	if err := sess.run(); err != nil {
		return err
	}
	if cfg.dump {
		if err := sess.out.dump(sess.forth); err != nil {
			return err
		}
	}
	if err := sess.out.Flush(); err != nil {
		return err
	}
	if code := sess.log.ExitCode(); code != 0 {
		return exitCode(code)
	}
	return nil
}

// traceLabel colors the trace level only if the log stream is a terminal.
func traceLabel(logOut io.Writer) string {
	label := color.New(color.FgCyan)
	if isTerminal(logOut) && os.Getenv("NO_COLOR") == "" {
		label.EnableColor()
	} else {
		label.DisableColor()
	}
	return label.Sprint("trace")
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// openInput queues the named files, with "-" naming stdin, or reads from an
// interactive terminal when no files are named and stdin is one.
func openInput(stdin io.Reader, args []string) (lineReader, error) {
	if len(args) == 0 {
		if isTerminal(stdin) {
			return newTerminalInput("forth> "), nil
		}
		args = []string{"-"}
	}

	in := &fileinput.Input{}
	for _, arg := range args {
		if arg == "-" {
			in.Queue = append(in.Queue, fileinput.NamedReader("<stdin>", io.NopCloser(stdin)))
			continue
		}
		f, err := os.Open(arg)
		if err != nil {
			in.Close()
			return nil, err
		}
		in.Queue = append(in.Queue, f)
	}
	return in, nil
}
