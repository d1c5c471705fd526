package arguments

import "strings"

// StringSliceArg consumes a fixed number of trailing tokens, set with
// SetArity. The typed value is a copy; the raw captures stay a borrowed
// view into the argument vector.
type StringSliceArg struct {
	Arg[[]string]
}

func NewStringSlice(name string) *StringSliceArg {
	a := &StringSliceArg{Arg: Arg[[]string]{BaseArg: BaseArg{Name: name, Arity: 1}}}
	a.reader = func(raw []string) ([]string, error) {
		return append([]string(nil), raw...), nil
	}
	return a
}

func (a *StringSliceArg) SetShort(s string) *StringSliceArg {
	a.Short = s
	return a
}

func (a *StringSliceArg) SetHelp(h string) *StringSliceArg {
	a.Help = h
	return a
}

// SetArity sets the number of trailing tokens the flag consumes.
func (a *StringSliceArg) SetArity(n int) *StringSliceArg {
	a.Arity = n
	return a
}

func (a *StringSliceArg) SetDefault(v []string) *StringSliceArg {
	a.Default = &v
	return a
}

func (a *StringSliceArg) SetRequired(b bool) *StringSliceArg {
	if b {
		a.Required = func(*ParseState) bool { return true }
	} else {
		a.Required = nil
	}
	return a
}

func (a *StringSliceArg) SetRequiredIf(fn func(*ParseState) bool) *StringSliceArg {
	a.Required = fn
	return a
}

func (a *StringSliceArg) SetReader(fn func(raw []string) ([]string, error)) *StringSliceArg {
	a.reader = fn
	return a
}

func (a *StringSliceArg) SetCleanup(fn func([]string)) *StringSliceArg {
	a.cleanup = fn
	return a
}

func (a *StringSliceArg) Register(s *Schema) (*[]string, error) {
	ptr := new([]string)
	return ptr, a.RegisterWithPtr(s, ptr)
}

func (a *StringSliceArg) RegisterWithPtr(s *Schema, ptr *[]string) error {
	arg := *a
	arg.Value = ptr
	return s.register(&arg)
}

func (a *StringSliceArg) defaultString() string {
	if a.Default != nil && len(*a.Default) > 0 {
		return "[" + strings.Join(*a.Default, ", ") + "]"
	}
	return "none"
}
