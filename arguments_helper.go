package arguments

import (
	"io"
	"os"
)

var osExit func(int) = os.Exit
var stdoutWriter io.Writer = os.Stdout
var stderrWriter io.Writer = os.Stderr

// SetExitFunc allows overriding the exit function for testing.
func SetExitFunc(fn func(int)) {
	osExit = fn
}

// SetStdoutWriter allows overriding the stdout writer for testing or custom output.
func SetStdoutWriter(w io.Writer) {
	stdoutWriter = w
}

// SetStderrWriter allows overriding the stderr writer for testing or custom output.
func SetStderrWriter(w io.Writer) {
	stderrWriter = w
}
