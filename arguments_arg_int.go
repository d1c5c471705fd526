package arguments

import (
	"fmt"
	"strconv"
)

type IntArg struct {
	Arg[int]
	min *int
	max *int
}

func NewInt(name string) *IntArg {
	a := &IntArg{Arg: Arg[int]{BaseArg: BaseArg{Name: name, Arity: 1}}}
	a.reader = a.readInt
	return a
}

func (a *IntArg) SetShort(s string) *IntArg {
	a.Short = s
	return a
}

func (a *IntArg) SetHelp(h string) *IntArg {
	a.Help = h
	return a
}

func (a *IntArg) SetDefault(v int) *IntArg {
	a.Default = &v
	return a
}

func (a *IntArg) SetRequired(b bool) *IntArg {
	if b {
		a.Required = func(*ParseState) bool { return true }
	} else {
		a.Required = nil
	}
	return a
}

func (a *IntArg) SetRequiredIf(fn func(*ParseState) bool) *IntArg {
	a.Required = fn
	return a
}

func (a *IntArg) SetMin(min int) *IntArg {
	a.min = &min
	return a
}

func (a *IntArg) SetMax(max int) *IntArg {
	a.max = &max
	return a
}

func (a *IntArg) SetReader(fn func(raw []string) (int, error)) *IntArg {
	a.reader = fn
	return a
}

func (a *IntArg) SetCleanup(fn func(int)) *IntArg {
	a.cleanup = fn
	return a
}

func (a *IntArg) Register(s *Schema) (*int, error) {
	ptr := new(int)
	return ptr, a.RegisterWithPtr(s, ptr)
}

func (a *IntArg) RegisterWithPtr(s *Schema, ptr *int) error {
	arg := *a
	arg.Value = ptr
	return s.register(&arg)
}

func (a *IntArg) readInt(raw []string) (int, error) {
	v, err := strconv.Atoi(raw[0])
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", raw[0])
	}
	if a.min != nil && v < *a.min {
		return 0, fmt.Errorf("value %d is < minimum %d", v, *a.min)
	}
	if a.max != nil && v > *a.max {
		return 0, fmt.Errorf("value %d is > maximum %d", v, *a.max)
	}
	return v, nil
}

func (a *IntArg) defaultString() string {
	if a.Default != nil {
		return strconv.Itoa(*a.Default)
	}
	return "none"
}
