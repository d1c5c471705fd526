package arguments

import "strconv"

// BoolArg is a presence flag: it consumes no trailing values and reads as
// true when matched. Absent flags resolve to their default, or false.
type BoolArg struct {
	Arg[bool]
}

func NewBool(name string) *BoolArg {
	a := &BoolArg{Arg: Arg[bool]{BaseArg: BaseArg{Name: name, Arity: 0}}}
	a.reader = func([]string) (bool, error) { return true, nil }
	return a
}

func (a *BoolArg) SetShort(s string) *BoolArg {
	a.Short = s
	return a
}

func (a *BoolArg) SetHelp(h string) *BoolArg {
	a.Help = h
	return a
}

func (a *BoolArg) SetDefault(v bool) *BoolArg {
	a.Default = &v
	return a
}

func (a *BoolArg) SetRequiredIf(fn func(*ParseState) bool) *BoolArg {
	a.Required = fn
	return a
}

func (a *BoolArg) SetReader(fn func(raw []string) (bool, error)) *BoolArg {
	a.reader = fn
	return a
}

func (a *BoolArg) SetCleanup(fn func(bool)) *BoolArg {
	a.cleanup = fn
	return a
}

func (a *BoolArg) Register(s *Schema) (*bool, error) {
	ptr := new(bool)
	return ptr, a.RegisterWithPtr(s, ptr)
}

func (a *BoolArg) RegisterWithPtr(s *Schema, ptr *bool) error {
	arg := *a
	arg.Value = ptr
	return s.register(&arg)
}

// Bools always have a default so that an absent flag still initializes its
// value to false.
func (a *BoolArg) hasDefault() bool {
	return true
}

func (a *BoolArg) applyDefault() bool {
	if a.Default != nil {
		*a.Value = *a.Default
	} else {
		*a.Value = false
	}
	return true
}

func (a *BoolArg) defaultString() string {
	if a.Default != nil {
		return strconv.FormatBool(*a.Default)
	}
	return "false"
}
