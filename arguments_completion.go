package arguments

import (
	"fmt"
	"io"
	"strings"
)

const bashCompletionTemplate = `# bash completion for %s

_%s_completions()
{
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    opts="%s"

    if [[ "$cur" == -* ]]; then
        COMPREPLY=($(compgen -W "$opts" -- "$cur"))
        return
    fi
    COMPREPLY=($(compgen -f -- "$cur"))
}

complete -o default -F _%s_completions %s
`

const zshCompletionTemplate = `#compdef %s

_%s() {
    local -a opts
    opts=(%s)

    if [[ "$words[CURRENT]" == -* ]]; then
        compadd -a opts
        return
    fi
    _files
}

compdef _%s %s
`

// flagCandidates returns every flag token the schema accepts, long flags
// first in declaration order, then short flags, then the help flags.
func (s *Schema) flagCandidates() []string {
	var candidates []string
	for _, arg := range s.args {
		candidates = append(candidates, longFlag(arg.base().Name))
	}
	for _, arg := range s.args {
		if short := arg.base().Short; short != "" {
			candidates = append(candidates, short)
		}
	}
	if s.helpEnabled {
		candidates = append(candidates, "--help", "-h")
	}
	return candidates
}

// GenerateBashCompletion writes a bash completion script offering the
// schema's flags as candidates.
func (s *Schema) GenerateBashCompletion(w io.Writer) error {
	name := s.name
	words := strings.Join(s.flagCandidates(), " ")
	_, err := fmt.Fprintf(w, bashCompletionTemplate, name, name, words, name, name)
	return err
}

// GenerateZshCompletion writes a zsh completion script offering the
// schema's flags as candidates.
func (s *Schema) GenerateZshCompletion(w io.Writer) error {
	name := s.name
	words := strings.Join(s.flagCandidates(), " ")
	_, err := fmt.Fprintf(w, zshCompletionTemplate, name, name, words, name, name)
	return err
}
