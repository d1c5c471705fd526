package arguments

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput redirects the framework's stdout and stderr writers for
// the duration of a test.
func captureOutput(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout = &bytes.Buffer{}
	stderr = &bytes.Buffer{}
	SetStdoutWriter(stdout)
	SetStderrWriter(stderr)
	t.Cleanup(func() {
		SetStdoutWriter(os.Stdout)
		SetStderrWriter(os.Stderr)
	})
	return stdout, stderr
}

// captureExit replaces the exit function with one that records the code.
func captureExit(t *testing.T) *[]int {
	t.Helper()
	var codes []int
	SetExitFunc(func(code int) { codes = append(codes, code) })
	t.Cleanup(func() { SetExitFunc(os.Exit) })
	return &codes
}

func TestMainRunsHooksInOrder(t *testing.T) {
	captureOutput(t)
	s, count, _ := newCountSchema(t)

	var order []string
	code := s.Main([]string{"-c", "5"}, Hooks{
		Setup: func(argv []string) int {
			order = append(order, "setup")
			return 0
		},
		Run: func(state *ParseState, rest []string) int {
			order = append(order, "run")
			assert.Equal(t, 5, *count)
			assert.Empty(t, rest)
			return 0
		},
		Teardown: func() {
			order = append(order, "teardown")
		},
	})

	assert.Equal(t, CodeOK, code)
	assert.Equal(t, []string{"setup", "run", "teardown"}, order)
}

func TestMainPassesLeftoverTokensToRun(t *testing.T) {
	captureOutput(t)
	s, _, _ := newCountSchema(t)

	var rest []string
	code := s.Main([]string{"-c", "5", "in.txt", "out.txt"}, Hooks{
		Run: func(state *ParseState, leftover []string) int {
			rest = leftover
			return 0
		},
	})

	assert.Equal(t, CodeOK, code)
	assert.Equal(t, []string{"in.txt", "out.txt"}, rest)
}

func TestMainHelpExitsZero(t *testing.T) {
	t.Setenv("ARGUMENTS_COLOR", "never")
	stdout, stderr := captureOutput(t)
	s, _, _ := newCountSchema(t)

	ran := false
	code := s.Main([]string{"--help"}, Hooks{
		Run: func(*ParseState, []string) int { ran = true; return 1 },
	}, WithColumns(80))

	assert.Equal(t, CodeOK, code)
	assert.False(t, ran)
	assert.Contains(t, stdout.String(), "Arguments:")
	assert.Contains(t, stdout.String(), "--count, -c")
	assert.Empty(t, stderr.String())
}

func TestMainMissingValueExitCode(t *testing.T) {
	stdout, stderr := captureOutput(t)
	s, _, _ := newCountSchema(t)

	code := s.Main([]string{"--count"}, Hooks{})

	assert.Equal(t, CodeParameterInvalid, code)
	assert.Contains(t, stderr.String(), "--count")
	assert.Contains(t, stderr.String(), "missing value")
	assert.Empty(t, stdout.String())
}

func TestMainInvalidValueExitCode(t *testing.T) {
	_, stderr := captureOutput(t)
	s, _, _ := newCountSchema(t)

	code := s.Main([]string{"-c", "five"}, Hooks{})

	assert.Equal(t, CodeParameterInvalid, code)
	assert.Contains(t, stderr.String(), "--count")
}

func TestMainMissingRequiredExitCode(t *testing.T) {
	_, stderr := captureOutput(t)
	s, _, _ := newCountSchema(t)

	code := s.Main(nil, Hooks{})

	assert.Equal(t, CodeParameterMissing, code)
	assert.Equal(t, "missing required argument: count\n", stderr.String())
}

func TestMainCustomMissingFormat(t *testing.T) {
	_, stderr := captureOutput(t)
	s, _, _ := newCountSchema(t)

	code := s.Main(nil, Hooks{}, WithMissingFormat("need %s!\n"))

	assert.Equal(t, CodeParameterMissing, code)
	assert.Equal(t, "need count!\n", stderr.String())
}

func TestMainGatesRequiredBeforeSetup(t *testing.T) {
	_, stderr := captureOutput(t)
	s, _, _ := newCountSchema(t)

	setupRan := false
	code := s.Main(nil, Hooks{
		Setup:    func([]string) int { setupRan = true; return 0 },
		Teardown: func() { t.Error("teardown must not run when setup did not") },
	})

	assert.Equal(t, CodeParameterMissing, code)
	assert.False(t, setupRan, "setup must not run when a required argument is missing")
	assert.Equal(t, "missing required argument: count\n", stderr.String())
}

func TestMainSetupFailureShortCircuits(t *testing.T) {
	captureOutput(t)
	s, _, _ := newCountSchema(t)

	ran, toreDown := false, false
	code := s.Main([]string{"-c", "5"}, Hooks{
		Setup:    func([]string) int { return 3 },
		Run:      func(*ParseState, []string) int { ran = true; return 0 },
		Teardown: func() { toreDown = true },
	})

	assert.Equal(t, 3, code)
	assert.False(t, ran)
	assert.False(t, toreDown)
}

func TestMainReleasesAfterInvalidValue(t *testing.T) {
	captureOutput(t)
	s := NewSchema("widgets")
	var cleaned []string
	_, err := NewString("held").
		SetCleanup(func(v string) { cleaned = append(cleaned, v) }).
		Register(s)
	require.NoError(t, err)
	_, err = NewInt("count").Register(s)
	require.NoError(t, err)

	code := s.Main([]string{"--held", "resource", "--count", "x"}, Hooks{})

	assert.Equal(t, CodeParameterInvalid, code)
	assert.Equal(t, []string{"resource"}, cleaned)
}

func TestMainDump(t *testing.T) {
	stdout, _ := captureOutput(t)
	s, _, _ := newCountSchema(t)

	code := s.Main([]string{"-c", "5"}, Hooks{
		Run: func(*ParseState, []string) int { return 1 },
	}, WithDump(true))

	assert.Equal(t, CodeOK, code)
	assert.Contains(t, stdout.String(), "Arguments Schema Dump")
}

func TestParseOrErrorSuccess(t *testing.T) {
	s, count, verbose := newCountSchema(t)

	state, err := s.ParseOrError([]string{"-c", "5", "--verbose"})
	require.NoError(t, err)
	defer state.Release()

	assert.Equal(t, 5, *count)
	assert.True(t, *verbose)
}

func TestParseOrErrorHelp(t *testing.T) {
	s, _, _ := newCountSchema(t)

	state, err := s.ParseOrError([]string{"--help"})
	assert.ErrorIs(t, err, HelpRequestedErr)
	state.Release()
}

func TestParseOrErrorDump(t *testing.T) {
	s, _, _ := newCountSchema(t)

	_, err := s.ParseOrError(nil, WithDump(true))
	assert.ErrorIs(t, err, DumpRequestedErr)
}

func TestParseOrExitSuccess(t *testing.T) {
	captureOutput(t)
	codes := captureExit(t)
	s, count, _ := newCountSchema(t)

	state := s.ParseOrExit([]string{"-c", "5"})
	defer state.Release()

	assert.Empty(t, *codes)
	assert.Equal(t, 5, *count)
}

func TestParseOrExitHelp(t *testing.T) {
	t.Setenv("ARGUMENTS_COLOR", "never")
	stdout, _ := captureOutput(t)
	codes := captureExit(t)
	s, _, _ := newCountSchema(t)

	s.ParseOrExit([]string{"--help"}, WithColumns(80))

	assert.Equal(t, []int{CodeOK}, *codes)
	assert.Contains(t, stdout.String(), "Arguments:")
}

func TestParseOrExitMissingRequired(t *testing.T) {
	_, stderr := captureOutput(t)
	codes := captureExit(t)
	s, _, _ := newCountSchema(t)

	s.ParseOrExit(nil)

	assert.Equal(t, []int{CodeParameterMissing}, *codes)
	assert.Contains(t, stderr.String(), "count")
}

func TestParseOrExitInvalidValue(t *testing.T) {
	_, stderr := captureOutput(t)
	codes := captureExit(t)
	s, _, _ := newCountSchema(t)

	s.ParseOrExit([]string{"-c", "five"})

	assert.Equal(t, []int{CodeParameterInvalid}, *codes)
	assert.Contains(t, stderr.String(), "--count")
}
