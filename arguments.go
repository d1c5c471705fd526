// Package arguments is a declarative command line argument framework. A
// program registers a fixed schema of named arguments, each with a type,
// an optional short flag, an arity, a deferred required predicate, a
// default, a reader and a cleanup action. The framework parses an argument
// vector against that schema, applies defaults, validates required
// presence and renders aligned, word wrapped help text sized to the
// terminal.
package arguments

import (
	"fmt"
	"strings"
)

// Schema is an ordered collection of argument specifications. It is append
// only during program setup and read only during parsing; declaration
// order is display order in help and matching priority.
type Schema struct {
	name        string
	description string
	args        []handler
	byName      map[string]handler
	shortToName map[string]string

	helpEnabled bool // default true handles --help and -h during parsing
}

func NewSchema(name string) *Schema {
	return &Schema{
		name:        name,
		byName:      make(map[string]handler),
		shortToName: make(map[string]string),
		helpEnabled: true,
	}
}

// SetDescription sets the help preamble, rendered word wrapped above the
// argument listing.
func (s *Schema) SetDescription(desc string) *Schema {
	s.description = desc
	return s
}

// SetHelpEnabled controls whether --help and -h are recognized during
// parsing. The help flags are fixed and not schema configurable.
func (s *Schema) SetHelpEnabled(enable bool) *Schema {
	s.helpEnabled = enable
	return s
}

// Len returns the number of registered arguments.
func (s *Schema) Len() int {
	return len(s.args)
}

// Names returns the registered argument names in declaration order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.args))
	for i, arg := range s.args {
		names[i] = arg.base().Name
	}
	return names
}

// longFlag returns the long flag token for a registered name, with
// underscores rendered as dashes.
func longFlag(name string) string {
	return "--" + strings.ReplaceAll(name, "_", "-")
}

// register appends an argument to the schema after validating its
// metadata. Long names and short flags must be unique so that matching
// never depends on declaration order for identical tokens.
func (s *Schema) register(h handler) error {
	b := h.base()

	if b.Name == "" {
		return NewProgrammingError("argument name cannot be empty")
	}
	if b.Arity < 0 {
		return NewProgrammingError(fmt.Sprintf("argument %q has negative arity", b.Name))
	}
	if b.Short != "" && !strings.HasPrefix(b.Short, "-") {
		return NewProgrammingError(fmt.Sprintf("short flag %q for argument %q must start with '-'", b.Short, b.Name))
	}

	if _, exists := s.byName[b.Name]; exists {
		return NewProgrammingError(fmt.Sprintf("argument %q already defined", b.Name))
	}
	if s.helpEnabled && (longFlag(b.Name) == "--help" || b.Short == "-h") {
		return NewProgrammingError(fmt.Sprintf("argument %q collides with the built-in help flags", b.Name))
	}
	if b.Short != "" {
		if other, exists := s.shortToName[b.Short]; exists {
			return NewProgrammingError(fmt.Sprintf("short flag %q already defined by argument %q", b.Short, other))
		}
		s.shortToName[b.Short] = b.Name
	}

	s.args = append(s.args, h)
	s.byName[b.Name] = h
	return nil
}

func (s *Schema) indexOf(name string) int {
	for i, arg := range s.args {
		if arg.base().Name == name {
			return i
		}
	}
	return -1
}
