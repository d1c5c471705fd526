package arguments

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderWidth(t *testing.T) {
	s, _, _ := newCountSchema(t)

	// "--count, -c" is the widest header.
	assert.Equal(t, 11, s.headerWidth())
}

func TestHeaderWidthWithoutShorts(t *testing.T) {
	s := NewSchema("widgets")
	_, err := NewBool("verbose").Register(s)
	require.NoError(t, err)

	assert.Equal(t, 9, s.headerWidth())
}

func TestGenerateHelpNarrowTerminal(t *testing.T) {
	t.Setenv("ARGUMENTS_COLOR", "never")
	s, _, _ := newCountSchema(t)

	got := s.generateHelp(20)

	// With 20 columns and an 11 column header the text column is 9 wide.
	// "process," fills it exactly, so its newline is suppressed and the
	// continuation indent follows on the same line; the terminal itself
	// wraps there.
	want := "\nArguments:\n" +
		"\n--count, -c Number\n" +
		"            of\n" +
		"            widgets\n" +
		"            to\n" +
		"            process,            must be\n" +
		"            positive" +
		"\n--verbose   Enable\n" +
		"            verbose\n" +
		"            output\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("help mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateHelpUnknownWidthDoesNotWrap(t *testing.T) {
	t.Setenv("ARGUMENTS_COLOR", "never")
	s, _, _ := newCountSchema(t)

	got := s.generateHelp(WidthUnknown)

	assert.Contains(t, got,
		"\n--count, -c Number of widgets to process, must be positive\n")
	assert.Contains(t, got,
		"\n--verbose   Enable verbose output\n")
}

func TestGenerateHelpWithDescription(t *testing.T) {
	t.Setenv("ARGUMENTS_COLOR", "never")
	s := NewSchema("widgets").SetDescription("Process widgets.")
	_, err := NewBool("verbose").SetHelp("Enable verbose output").Register(s)
	require.NoError(t, err)

	got := s.generateHelp(80)

	want := "Process widgets.\n" +
		"\nArguments:\n" +
		"\n--verbose Enable verbose output\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("help mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateHelpDescriptionOnly(t *testing.T) {
	t.Setenv("ARGUMENTS_COLOR", "never")
	s := NewSchema("widgets").SetDescription("Process widgets.")

	got := s.generateHelp(80)

	assert.Equal(t, "Process widgets.\n", got)
	assert.NotContains(t, got, "Arguments:")
}

func TestGenerateHelpSubstitutesDefault(t *testing.T) {
	t.Setenv("ARGUMENTS_COLOR", "never")
	s := NewSchema("widgets")
	_, err := NewInt("count").SetDefault(10).
		SetHelp("Widgets to process (default %s)").Register(s)
	require.NoError(t, err)

	got := s.generateHelp(WidthUnknown)

	assert.Contains(t, got, "Widgets to process (default 10)")
}

func TestGenerateHelpSubstitutesNoneWithoutDefault(t *testing.T) {
	t.Setenv("ARGUMENTS_COLOR", "never")
	s := NewSchema("widgets")
	_, err := NewString("name").SetHelp("Widget name (default %s)").Register(s)
	require.NoError(t, err)

	got := s.generateHelp(WidthUnknown)

	assert.Contains(t, got, "Widget name (default none)")
}

func TestGenerateHelpRendersUnderscoresAsDashes(t *testing.T) {
	t.Setenv("ARGUMENTS_COLOR", "never")
	s := NewSchema("runner")
	_, err := NewBool("dry_run").SetHelp("Do not write anything").Register(s)
	require.NoError(t, err)

	got := s.generateHelp(WidthUnknown)

	assert.Contains(t, got, "--dry-run")
	assert.NotContains(t, got, "--dry_run")
}

func TestGenerateHelpColorAlways(t *testing.T) {
	t.Setenv("ARGUMENTS_COLOR", "always")
	s, _, _ := newCountSchema(t)

	got := s.generateHelp(WidthUnknown)

	assert.Contains(t, got, "\x1b[")
}

func TestGenerateHelpColorNever(t *testing.T) {
	t.Setenv("ARGUMENTS_COLOR", "never")
	s, _, _ := newCountSchema(t)

	got := s.generateHelp(WidthUnknown)

	assert.NotContains(t, got, "\x1b[")
}

func TestGenerateHelpUsesColumnsVariable(t *testing.T) {
	t.Setenv("ARGUMENTS_COLOR", "never")
	t.Setenv("COLUMNS", "20")
	s, _, _ := newCountSchema(t)

	assert.Equal(t, s.generateHelp(20), s.GenerateHelp())
}

func TestWriteHelpStringContinuationIndent(t *testing.T) {
	var sb strings.Builder
	writeHelpString(&sb, "--count, -c", "Number of widgets to process, must be positive", 11, 20)

	for _, line := range strings.Split(sb.String(), "\n")[2:] {
		assert.True(t, strings.HasPrefix(line, strings.Repeat(" ", 12)),
			"continuation line %q must be indented", line)
	}
}

func TestWriteHelpStringDegenerateWidth(t *testing.T) {
	// A header wider than the terminal must not loop forever.
	var sb strings.Builder
	writeHelpString(&sb, "--very-long-header", "help text", 18, 10)

	assert.Contains(t, sb.String(), "--very-long-header")
}
