package arguments

import (
	"errors"
	"fmt"
	"strings"
)

// HelpRequestedErr is returned by Read and ParseOrError when a help flag is
// encountered. It is a control signal, not a failure: the caller should
// render help and exit zero.
var HelpRequestedErr = errors.New("help requested")

// MissingValueError reports a flag whose trailing values ran out of input.
// Index is the position of the offending flag token in the argument vector.
type MissingValueError struct {
	Name  string
	Index int
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("argument %s at index %d: missing value", longFlag(e.Name), e.Index)
}

// InvalidValueError reports a value the argument's reader rejected.
type InvalidValueError struct {
	Name string
	Err  error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %s: %v", longFlag(e.Name), e.Err)
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}

// MissingRequiredError reports a required argument that was absent after
// the full pass and had no default.
type MissingRequiredError struct {
	Name string
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("missing required argument %s", longFlag(e.Name))
}

// ProgrammingError wraps errors caused by incorrect schema setup. These are
// bugs in the code using the framework, not user input errors.
type ProgrammingError struct {
	msg string
}

func (e *ProgrammingError) Error() string {
	return e.msg
}

func NewProgrammingError(msg string) *ProgrammingError {
	return &ProgrammingError{msg: msg}
}

func newEnumError(value string, allowed []string) error {
	return fmt.Errorf("value %q not in allowed values [%s]", value, strings.Join(allowed, ", "))
}

// Status is the tagged result the core hands its driver.
type Status int

const (
	StatusOK    Status = iota // parse and validation succeeded
	StatusError               // invalid value, arity under-run or missing required
	StatusHelp                // help was requested; exit zero without further processing
)

// StatusOf maps an error returned by Read, Resolve or ParseOrError to its
// result code.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, HelpRequestedErr):
		return StatusHelp
	default:
		return StatusError
	}
}

// argState is the per-argument mutable state of one parse run.
type argState struct {
	present     bool
	raw         []string // borrowed view into the argument vector
	initialized bool     // a typed value was produced; cleanup must run
}

// ParseState owns the mutable state of one parse run against an immutable
// Schema. Multiple states may exist for the same schema, but typed values
// are written through the pointers bound at registration time, so
// concurrent runs against one schema are not supported.
type ParseState struct {
	schema   *Schema
	states   []argState
	released bool
}

func (s *Schema) NewParseState() *ParseState {
	return &ParseState{
		schema: s,
		states: make([]argState, len(s.args)),
	}
}

// Present reports whether the named argument was matched on the command
// line. It may be called from deferred required predicates.
func (p *ParseState) Present(name string) bool {
	if i := p.schema.indexOf(name); i >= 0 {
		return p.states[i].present
	}
	return false
}

// Raw returns the raw string tokens captured for the named argument. The
// slice is a view into the argument vector and must not outlive it.
func (p *ParseState) Raw(name string) []string {
	if i := p.schema.indexOf(name); i >= 0 {
		return p.states[i].raw
	}
	return nil
}

// longFlagMatches compares a command line token to an argument name. The
// token must begin with "--"; the rest is compared byte for byte against
// the name with '_' normalized to '-' on the name side only.
func longFlagMatches(token, name string) bool {
	if len(token) < 2 || token[0] != '-' || token[1] != '-' {
		return false
	}
	rest := token[2:]
	if len(rest) != len(name) {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '_' {
			c = '-'
		}
		if rest[i] != c {
			return false
		}
	}
	return true
}

// Read scans the argument vector from start, consuming flags and their
// trailing values. It returns the index of the first unconsumed token.
//
// The scan stops, without error, at the first token that matches no
// registered argument; the caller decides whether leftover tokens are an
// error. If help is enabled and a help flag is seen, HelpRequestedErr is
// returned with the index of the help token and no further state changes.
// An arity under-run returns a MissingValueError with the flag's index.
func (p *ParseState) Read(argv []string, start int) (int, error) {
	i := start
	for i < len(argv) {
		token := argv[i]

		if p.schema.helpEnabled && (token == "--help" || token == "-h") {
			return i, HelpRequestedErr
		}

		matched := false
		for idx, arg := range p.schema.args {
			b := arg.base()
			if !longFlagMatches(token, b.Name) && (b.Short == "" || token != b.Short) {
				continue
			}

			st := &p.states[idx]
			st.present = true
			if i+b.Arity < len(argv) {
				i++
				st.raw = argv[i : i+b.Arity]
				i += b.Arity
			} else {
				return i, &MissingValueError{Name: b.Name, Index: i}
			}
			matched = true
			break
		}
		if !matched {
			break
		}
	}
	return i, nil
}

// Resolve runs the default and validation pass. For each argument in
// declaration order it converts captured raw values through the reader, or
// applies the default when absent. A rejected value fails the pass
// immediately; arguments after the failure point are left untouched.
// Required predicates are then evaluated against the resolved state.
//
// Release must be called after Resolve, even when Resolve fails: every
// argument initialized before the failure point owns resources.
func (p *ParseState) Resolve() error {
	for idx, arg := range p.schema.args {
		st := &p.states[idx]
		if st.present {
			if err := arg.read(st.raw); err != nil {
				return &InvalidValueError{Name: arg.base().Name, Err: err}
			}
			st.initialized = true
		} else if arg.applyDefault() {
			st.initialized = true
		}
	}

	return p.checkRequired()
}

// checkRequired evaluates the deferred required predicates. An argument is
// missing when it was not matched, has no default to fall back on and its
// predicate holds. The check only depends on presence and defaults, so the
// driver may also run it before values are resolved.
func (p *ParseState) checkRequired() error {
	for idx, arg := range p.schema.args {
		st := &p.states[idx]
		b := arg.base()
		if st.present || st.initialized || arg.hasDefault() {
			continue
		}
		if b.Required != nil && b.Required(p) {
			return &MissingRequiredError{Name: b.Name}
		}
	}
	return nil
}

// Release runs the cleanup action of every initialized argument, exactly
// once per parse run. Further calls are no-ops.
func (p *ParseState) Release() {
	if p.released {
		return
	}
	p.released = true
	for idx, arg := range p.schema.args {
		if p.states[idx].initialized {
			arg.release()
		}
	}
}
