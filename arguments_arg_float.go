package arguments

import (
	"fmt"
	"strconv"
)

type Float64Arg struct {
	Arg[float64]
}

func NewFloat64(name string) *Float64Arg {
	a := &Float64Arg{Arg: Arg[float64]{BaseArg: BaseArg{Name: name, Arity: 1}}}
	a.reader = func(raw []string) (float64, error) {
		v, err := strconv.ParseFloat(raw[0], 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", raw[0])
		}
		return v, nil
	}
	return a
}

func (a *Float64Arg) SetShort(s string) *Float64Arg {
	a.Short = s
	return a
}

func (a *Float64Arg) SetHelp(h string) *Float64Arg {
	a.Help = h
	return a
}

func (a *Float64Arg) SetDefault(v float64) *Float64Arg {
	a.Default = &v
	return a
}

func (a *Float64Arg) SetRequired(b bool) *Float64Arg {
	if b {
		a.Required = func(*ParseState) bool { return true }
	} else {
		a.Required = nil
	}
	return a
}

func (a *Float64Arg) SetRequiredIf(fn func(*ParseState) bool) *Float64Arg {
	a.Required = fn
	return a
}

func (a *Float64Arg) SetReader(fn func(raw []string) (float64, error)) *Float64Arg {
	a.reader = fn
	return a
}

func (a *Float64Arg) SetCleanup(fn func(float64)) *Float64Arg {
	a.cleanup = fn
	return a
}

func (a *Float64Arg) Register(s *Schema) (*float64, error) {
	ptr := new(float64)
	return ptr, a.RegisterWithPtr(s, ptr)
}

func (a *Float64Arg) RegisterWithPtr(s *Schema, ptr *float64) error {
	arg := *a
	arg.Value = ptr
	return s.register(&arg)
}

func (a *Float64Arg) defaultString() string {
	if a.Default != nil {
		return strconv.FormatFloat(*a.Default, 'g', -1, 64)
	}
	return "none"
}
