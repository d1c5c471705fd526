package arguments

import "os"

// FileArg reads its value by opening the named file. The handle is owned by
// the argument: the default cleanup closes it when the parse run is
// released, whether or not later arguments failed.
type FileArg struct {
	Arg[*os.File]
}

func NewFile(name string) *FileArg {
	a := &FileArg{Arg: Arg[*os.File]{BaseArg: BaseArg{Name: name, Arity: 1}}}
	a.reader = func(raw []string) (*os.File, error) {
		return os.Open(raw[0])
	}
	a.cleanup = closeFile
	return a
}

func (a *FileArg) SetShort(s string) *FileArg {
	a.Short = s
	return a
}

func (a *FileArg) SetHelp(h string) *FileArg {
	a.Help = h
	return a
}

// SetDefault sets the handle used when the argument is absent, typically
// os.Stdin. The standard streams are never closed by the default cleanup.
func (a *FileArg) SetDefault(f *os.File) *FileArg {
	a.Default = &f
	return a
}

func (a *FileArg) SetRequired(b bool) *FileArg {
	if b {
		a.Required = func(*ParseState) bool { return true }
	} else {
		a.Required = nil
	}
	return a
}

func (a *FileArg) SetRequiredIf(fn func(*ParseState) bool) *FileArg {
	a.Required = fn
	return a
}

func (a *FileArg) SetReader(fn func(raw []string) (*os.File, error)) *FileArg {
	a.reader = fn
	return a
}

func (a *FileArg) SetCleanup(fn func(*os.File)) *FileArg {
	a.cleanup = fn
	return a
}

func (a *FileArg) Register(s *Schema) (**os.File, error) {
	ptr := new(*os.File)
	return ptr, a.RegisterWithPtr(s, ptr)
}

func (a *FileArg) RegisterWithPtr(s *Schema, ptr **os.File) error {
	arg := *a
	arg.Value = ptr
	return s.register(&arg)
}

func (a *FileArg) defaultString() string {
	if a.Default != nil && *a.Default != nil {
		return (*a.Default).Name()
	}
	return "none"
}

func closeFile(f *os.File) {
	if f == nil || f == os.Stdin || f == os.Stdout || f == os.Stderr {
		return
	}
	f.Close()
}
