package arguments

import (
	"fmt"
	"strings"
)

// GenerateDump renders a debug view of the schema and the argument vector
// that would be parsed. Intended for troubleshooting schema declarations,
// not for end users.
func (s *Schema) GenerateDump(argv []string) string {
	var sb strings.Builder

	sb.WriteString("Arguments Schema Dump\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n")

	sb.WriteString("\nSchema Information:\n")
	sb.WriteString(fmt.Sprintf("  Name: %s\n", s.name))
	if s.description != "" {
		sb.WriteString(fmt.Sprintf("  Description: %s\n", s.description))
	} else {
		sb.WriteString("  Description: <not set>\n")
	}
	sb.WriteString(fmt.Sprintf("  Help Enabled: %t\n", s.helpEnabled))

	sb.WriteString("\nArguments to Parse:\n")
	if len(argv) == 0 {
		sb.WriteString("  <no arguments>\n")
	} else {
		for i, arg := range argv {
			sb.WriteString(fmt.Sprintf("  [%d]: %q\n", i, arg))
		}
	}

	sb.WriteString("\nRegistered Arguments (in order):\n")
	if len(s.args) == 0 {
		sb.WriteString("  <none>\n")
	} else {
		for i, arg := range s.args {
			b := arg.base()
			var parts []string
			parts = append(parts, fmt.Sprintf("[%d] %s", i, b.Name))
			if b.Short != "" {
				parts = append(parts, fmt.Sprintf("(%s)", b.Short))
			}
			parts = append(parts, fmt.Sprintf("arity:%d", b.Arity))
			if b.Required != nil {
				parts = append(parts, "required:deferred")
			} else {
				parts = append(parts, "optional")
			}
			if def := arg.defaultString(); def != "none" {
				parts = append(parts, fmt.Sprintf("default:%s", def))
			}
			if b.Help != "" {
				parts = append(parts, fmt.Sprintf("help:%q", b.Help))
			}
			sb.WriteString("  " + strings.Join(parts, " ") + "\n")
		}
	}

	return sb.String()
}
