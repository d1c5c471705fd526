package arguments

import (
	"fmt"
	"os"
	"strings"

	"github.com/amterp/color"
)

var (
	greenBold  = color.New(color.FgGreen, color.Bold)
	GreenBoldS = greenBold.SprintfFunc()
)

func initializeColorFromEnv() {
	colorValue := strings.ToLower(strings.TrimSpace(os.Getenv("ARGUMENTS_COLOR")))
	switch colorValue {
	case "never":
		color.NoColor = true
	case "always":
		color.NoColor = false
	case "", "auto":
		// let the color package decide based on tty
	default:
		// invalid value - treat as auto
	}
}

// headerWidth returns the number of characters needed for the widest
// argument names header.
func (s *Schema) headerWidth() int {
	width := 0
	for _, arg := range s.args {
		b := arg.base()
		current := 2 + len(b.Name)
		if b.Short != "" {
			current += 2 + len(b.Short)
		}
		if current > width {
			width = current
		}
	}
	return width
}

// writeHelpString writes one help entry: an optional header column padded
// to headerWidth, followed by the help text word wrapped to the remaining
// terminal columns. Continuation lines are indented headerWidth+1 spaces
// so the text column stays aligned. A header-less call, used for the help
// preamble, gets one extra column since no header separator is reserved.
//
// The newline after a line is suppressed when the line exactly fills the
// available width; the terminal wraps it itself, and printing a newline
// would leave a blank line.
func writeHelpString(sb *strings.Builder, header, help string, headerWidth, terminalWidth int) {
	hasHeader := header != ""
	if hasHeader {
		fmt.Fprintf(sb, "\n%-*s ", headerWidth, header)
	} else {
		headerWidth = 0
	}

	c := help
	for len(c) > 0 {
		maxLength := terminalWidth - headerWidth
		if !hasHeader && terminalWidth != WidthUnknown {
			maxLength++
		}

		length, n := wrapLine(c, maxLength)
		sb.WriteString(runePrefix(c, length))
		if length < maxLength-1 {
			sb.WriteByte('\n')
		}
		if n == 0 {
			// Degenerate width: nothing was consumed.
			break
		}
		c = c[n:]

		if len(c) > 0 && hasHeader {
			sb.WriteString(strings.Repeat(" ", headerWidth+1))
		}
	}
}

// GenerateHelp renders the help listing for the whole schema, sized to the
// detected terminal width.
func (s *Schema) GenerateHelp() string {
	return s.generateHelp(TerminalWidth())
}

func (s *Schema) generateHelp(terminalWidth int) string {
	initializeColorFromEnv()

	var sb strings.Builder
	if s.description != "" {
		writeHelpString(&sb, "", s.description, 0, terminalWidth)
	}
	if len(s.args) == 0 {
		return sb.String()
	}

	sb.WriteString("\n" + GreenBoldS("Arguments:") + "\n")
	headerWidth := s.headerWidth()
	for _, arg := range s.args {
		b := arg.base()

		header := "--" + b.Name
		if b.Short != "" {
			header += ", " + b.Short
		}
		header = strings.ReplaceAll(header, "_", "-")

		// The first %s in the help text receives the rendered default.
		help := b.Help
		if strings.Contains(help, "%s") {
			help = strings.Replace(help, "%s", arg.defaultString(), 1)
		}

		writeHelpString(&sb, header, help, headerWidth, terminalWidth)
	}
	return sb.String()
}
