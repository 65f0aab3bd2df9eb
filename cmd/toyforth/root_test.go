package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hostTestCase struct {
	name  string
	args  []string
	files map[string]string
	stdin string

	wantOut  string
	wantErr  string
	wantCode int
}

func (htc hostTestCase) run(t *testing.T) {
	t.Setenv("TOYFORTH_TRACE", "")

	dir := t.TempDir()
	for name, content := range htc.files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	args := make([]string, len(htc.args))
	for i, arg := range htc.args {
		if _, isFile := htc.files[arg]; isFile {
			arg = filepath.Join(dir, arg)
		}
		args[i] = arg
	}

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(htc.stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	var code exitCode
	if htc.wantCode != 0 {
		require.True(t, errors.As(err, &code), "expected exit code error, got %v", err)
		assert.Equal(t, htc.wantCode, int(code), "expected exit code")
	} else {
		require.NoError(t, err)
	}
	assert.Equal(t, htc.wantOut, out.String(), "expected output")
	assert.Equal(t, htc.wantErr, strings.ReplaceAll(errOut.String(), dir+string(filepath.Separator), ""), "expected error output")
}

func Test_rootCmd(t *testing.T) {
	for _, htc := range []hostTestCase{
		{
			name:    "stdin",
			stdin:   "1 2 +\n: sq dup * ;\n3 sq\n",
			wantOut: "3\n3\n3 9\n",
		},
		{
			name:  "errors continue",
			stdin: "1 2\nfoo\n0 /\ndrop\n",
			wantOut: "1 2\n" +
				"1 2\n" +
				"1 2 0\n" +
				"1 2\n",
			wantErr: "ERROR: <stdin>:2: unknown word \"foo\" at token 0\n" +
				"ERROR: <stdin>:3: division by zero \"/\" at token 1\n",
			wantCode: 1,
		},
		{
			name:    "empty stack",
			stdin:   "1 drop\n",
			wantOut: "<empty>\n",
		},
		{
			name:  "files share a session",
			args:  []string{"defs.fth", "main.fth"},
			files: map[string]string{
				"defs.fth": ": sq dup * ;\n: cube dup sq * ;\n",
				"main.fth": "2 cube\nbogus\n",
			},
			wantOut:  "<empty>\n<empty>\n8\n8\n",
			wantErr:  "ERROR: main.fth:2: unknown word \"bogus\" at token 0\n",
			wantCode: 1,
		},
		{
			name:  "stdin among files",
			args:  []string{"defs.fth", "-"},
			files: map[string]string{"defs.fth": ": inc 1 + ;\n"},
			stdin: "41 inc\n",
			wantOut: "<empty>\n" +
				"42\n",
		},
		{
			name:  "quiet dump",
			args:  []string{"--quiet", "--dump"},
			stdin: "1 2 +\n: five 5 ;\n",
			wantOut: "# Forth Dump\n" +
				"  stack: [3]\n" +
				"  words: [five]\n" +
				"  : five 5 ;\n",
		},
		{
			name:     "unterminated definition",
			args:     []string{"-q"},
			stdin:    ": foo 1\n",
			wantErr:  "ERROR: <stdin>:1: invalid word at end of input\n",
			wantCode: 1,
		},
	} {
		t.Run(htc.name, htc.run)
	}
}

func Test_rootCmd_missingFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.fth")})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	assert.True(t, errors.Is(err, os.ErrNotExist), "expected not exist error, got %v", err)
}

func Test_rootCmd_tee(t *testing.T) {
	t.Setenv("TOYFORTH_TRACE", "")
	teePath := filepath.Join(t.TempDir(), "out.txt")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--tee", teePath, "--dump"})
	cmd.SetIn(strings.NewReader("1 2 swap\n: inc 1 + ;\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.Execute())

	want := "2 1\n" +
		"2 1\n" +
		"# Forth Dump\n" +
		"  stack: [2 1]\n" +
		"  words: [inc]\n" +
		"  : inc 1 + ;\n"
	teed, err := os.ReadFile(teePath)
	require.NoError(t, err)
	assert.Equal(t, want, out.String())
	assert.Equal(t, want, string(teed), "expected transcript to match output")
}

func Test_rootCmd_trace(t *testing.T) {
	t.Setenv("TOYFORTH_TRACE", "1")

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	cmd.SetIn(strings.NewReader("1 2 +\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "3\n", out.String())
	trace := errOut.String()
	assert.Contains(t, trace, `trace: > eval "1 2 +"`)
	assert.NotContains(t, trace, "\x1b[", "expected no color codes when logging to a non-terminal")
	for _, line := range strings.Split(strings.TrimSuffix(trace, "\n"), "\n") {
		assert.True(t, strings.HasPrefix(line, "trace: "), "expected trace level on %q", line)
	}
}

func Test_traceLabel(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.Equal(t, "trace", traceLabel(&bytes.Buffer{}), "expected a plain label for a non-terminal")
}
