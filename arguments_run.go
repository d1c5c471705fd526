package arguments

import (
	"errors"
	"fmt"
)

// DumpRequestedErr is returned by ParseOrError when a dump is requested via
// WithDump instead of a parse.
var DumpRequestedErr = errors.New("dump requested")

// Exit codes used by the driver for user facing parameter failures.
const (
	CodeOK               = 0
	CodeParameterInvalid = 110 // invalid value or arity under-run
	CodeParameterMissing = 120 // required argument absent
)

// Hooks are the user callbacks orchestrated by Main.
type Hooks struct {
	// Setup initializes external resources required by argument readers.
	// It runs after matching and the required-presence gate, but before
	// values are converted; returning a non-zero code terminates with
	// that code.
	Setup func(argv []string) int
	// Run receives the resolved state and the leftover tokens the matcher
	// did not consume. Its return value is the process exit code.
	Run func(state *ParseState, rest []string) int
	// Teardown runs on the way out once Setup has succeeded.
	Teardown func()
}

// Main drives a full schema-declare, match, resolve, run, release cycle
// and returns the process exit code. Release runs for every initialized
// argument no matter how the run ends.
func (s *Schema) Main(argv []string, hooks Hooks, opts ...ParseOpt) int {
	cfg := applyParseOpts(opts)

	if cfg.dump {
		fmt.Fprint(stdoutWriter, s.GenerateDump(argv))
		return CodeOK
	}

	state := s.NewParseState()
	next, err := state.Read(argv, 0)
	if err != nil {
		if errors.Is(err, HelpRequestedErr) {
			fmt.Fprint(stdoutWriter, s.generateHelp(cfg.width()))
			return CodeOK
		}
		fmt.Fprintln(stderrWriter, err.Error())
		return CodeParameterInvalid
	}

	// Required presence is gated before Setup so that user side effects
	// never run when the parse is already doomed.
	if err := state.checkRequired(); err != nil {
		var missing *MissingRequiredError
		if errors.As(err, &missing) {
			fmt.Fprintf(stderrWriter, cfg.missingFormat, missing.Name)
		}
		return CodeParameterMissing
	}

	if hooks.Setup != nil {
		if code := hooks.Setup(argv); code != 0 {
			return code
		}
	}
	if hooks.Teardown != nil {
		defer hooks.Teardown()
	}

	defer state.Release()
	if err := state.Resolve(); err != nil {
		var missing *MissingRequiredError
		if errors.As(err, &missing) {
			fmt.Fprintf(stderrWriter, cfg.missingFormat, missing.Name)
			return CodeParameterMissing
		}
		fmt.Fprintln(stderrWriter, err.Error())
		return CodeParameterInvalid
	}

	if hooks.Run != nil {
		return hooks.Run(state, argv[next:])
	}
	return CodeOK
}

// ParseOrError matches and resolves argv against the schema. argv excludes
// the program name. The caller owns Release on the returned state: it must
// be called even when an error is returned, since arguments initialized
// before a failure point own resources.
func (s *Schema) ParseOrError(argv []string, opts ...ParseOpt) (*ParseState, error) {
	cfg := applyParseOpts(opts)
	state := s.NewParseState()
	if cfg.dump {
		return state, DumpRequestedErr
	}
	if _, err := state.Read(argv, 0); err != nil {
		return state, err
	}
	if err := state.Resolve(); err != nil {
		return state, err
	}
	return state, nil
}

// ParseOrExit is ParseOrError with the driver's user facing behavior: help
// is rendered to stdout and exits zero, parameter failures print a
// diagnostic to stderr and exit with the distinct parameter codes.
func (s *Schema) ParseOrExit(argv []string, opts ...ParseOpt) *ParseState {
	cfg := applyParseOpts(opts)
	if cfg.dump {
		fmt.Fprint(stdoutWriter, s.GenerateDump(argv))
		osExit(CodeOK)
		return nil
	}

	state, err := s.ParseOrError(argv, opts...)
	if err != nil {
		if errors.Is(err, HelpRequestedErr) {
			fmt.Fprint(stdoutWriter, s.generateHelp(cfg.width()))
			osExit(CodeOK)
		} else {
			state.Release()
			var missing *MissingRequiredError
			if errors.As(err, &missing) {
				fmt.Fprintf(stderrWriter, cfg.missingFormat, missing.Name)
				osExit(CodeParameterMissing)
			} else {
				fmt.Fprintln(stderrWriter, err.Error())
				osExit(CodeParameterInvalid)
			}
		}
	}
	// Reached on success, or when the exit function is overridden.
	return state
}
