package arguments

import (
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// WidthUnknown is the sentinel used when the terminal width cannot be
// determined. Callers must treat it as "do not wrap".
const WidthUnknown = math.MaxInt

// TerminalWidth returns the column count used to wrap help text. A COLUMNS
// environment variable that parses as a positive integer overrides
// auto-detection; a COLUMNS value of zero or that does not parse yields
// WidthUnknown. Without COLUMNS the width is detected from stdout, falling
// back to 80.
func TerminalWidth() int {
	if columns, ok := os.LookupEnv("COLUMNS"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(columns))
		if err != nil || n <= 0 {
			return WidthUnknown
		}
		return n
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// wrapLine determines the number of characters of s to print on one line
// and the byte offset where the next line begins. s must start at the
// first character of a line.
//
// A literal newline ends the line unconditionally. Otherwise the break
// lands after the last completed word that still fits in maxLength
// characters; a single unbroken token longer than maxLength is force-broken
// mid-word. Multibyte sequences count as one
// character; an invalid or incomplete sequence advances a single byte.
// Spaces following the break are skipped so the next line starts on a word
// or at the end of the string.
func wrapLine(s string, maxLength int) (length, next int) {
	var wasSpace, seenSpace bool
	end := len(s)
	l := 0

	for i := 0; i < end && l < maxLength; {
		if s[i] == '\n' {
			length = l
			next = i + 1
			break
		}

		if !seenSpace {
			// No space yet in this line: the current word has to be
			// squeezed in, so the break trails the scan position.
			length = l
			next = i
		}

		l++

		isSpace := isSpaceByte(s[i])
		seenSpace = seenSpace || isSpace
		if isSpace && !wasSpace {
			// Previous character ended a word.
			length = l - 1
		} else if !isSpace && wasSpace {
			// First character of a new word.
			next = i
		}
		wasSpace = isSpace

		_, size := utf8.DecodeRuneInString(s[i:])
		if size < 1 {
			size = 1
		}
		i += size

		if i == end {
			length = l
			next = i
		}
	}

	// Never regress: the next line must not start before the printed text
	// ends.
	if next < length {
		next = length
	}
	for next < end && s[next] == ' ' {
		next++
	}
	return length, next
}

// runePrefix returns the prefix of s holding at most n characters.
func runePrefix(s string, n int) string {
	if n >= len(s) {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
