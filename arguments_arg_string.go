package arguments

type StringArg struct {
	Arg[string]
	EnumConstraint *[]string // if set, the value must be one of these
}

func NewString(name string) *StringArg {
	a := &StringArg{Arg: Arg[string]{BaseArg: BaseArg{Name: name, Arity: 1}}}
	a.reader = a.readString
	return a
}

func (a *StringArg) SetShort(s string) *StringArg {
	a.Short = s
	return a
}

func (a *StringArg) SetHelp(h string) *StringArg {
	a.Help = h
	return a
}

func (a *StringArg) SetDefault(v string) *StringArg {
	a.Default = &v
	return a
}

func (a *StringArg) SetRequired(b bool) *StringArg {
	if b {
		a.Required = func(*ParseState) bool { return true }
	} else {
		a.Required = nil
	}
	return a
}

// SetRequiredIf defers the required decision until all arguments have been
// resolved; the predicate may inspect other arguments' presence and values.
func (a *StringArg) SetRequiredIf(fn func(*ParseState) bool) *StringArg {
	a.Required = fn
	return a
}

func (a *StringArg) SetEnumConstraint(values []string) *StringArg {
	if len(values) == 0 {
		a.EnumConstraint = nil
	} else {
		a.EnumConstraint = &values
	}
	return a
}

// SetReader replaces the default value reader.
func (a *StringArg) SetReader(fn func(raw []string) (string, error)) *StringArg {
	a.reader = fn
	return a
}

func (a *StringArg) SetCleanup(fn func(string)) *StringArg {
	a.cleanup = fn
	return a
}

func (a *StringArg) Register(s *Schema) (*string, error) {
	ptr := new(string)
	return ptr, a.RegisterWithPtr(s, ptr)
}

func (a *StringArg) RegisterWithPtr(s *Schema, ptr *string) error {
	arg := *a
	arg.Value = ptr
	return s.register(&arg)
}

func (a *StringArg) readString(raw []string) (string, error) {
	v := raw[0]
	if a.EnumConstraint != nil {
		valid := false
		for _, allowed := range *a.EnumConstraint {
			if v == allowed {
				valid = true
				break
			}
		}
		if !valid {
			return "", newEnumError(v, *a.EnumConstraint)
		}
	}
	return v, nil
}

func (a *StringArg) defaultString() string {
	if a.Default != nil {
		return *a.Default
	}
	return "none"
}
