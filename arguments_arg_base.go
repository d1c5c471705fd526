package arguments

// BaseArg holds the metadata shared by every argument type.
type BaseArg struct {
	Name     string                 // Primary identifier; the long flag is "--" + Name with '_' rendered as '-'
	Short    string                 // Full alternate flag token (e.g. "-c"); empty if none
	Arity    int                    // Number of following tokens consumed as values
	Help     string                 // Help text; the first %s receives the rendered default value
	Required func(*ParseState) bool // Evaluated after the whole parse; nil means never required
}

// Arg is the generic carrier for a typed argument. Concrete argument types
// embed it and add their own fluent setters.
type Arg[T any] struct {
	BaseArg
	Default *T                          // Value applied when the argument is absent; nil means no default
	Value   *T                          // Pointer receiving the parsed value
	reader  func(raw []string) (T, error) // Maps captured raw tokens to a typed value
	cleanup func(T)                     // Releases resources owned by the value
}

func (a *Arg[T]) base() *BaseArg {
	return &a.BaseArg
}

func (a *Arg[T]) read(raw []string) error {
	v, err := a.reader(raw)
	if err != nil {
		return err
	}
	*a.Value = v
	return nil
}

func (a *Arg[T]) applyDefault() bool {
	if a.Default == nil {
		return false
	}
	*a.Value = *a.Default
	return true
}

func (a *Arg[T]) hasDefault() bool {
	return a.Default != nil
}

func (a *Arg[T]) release() {
	if a.cleanup != nil {
		a.cleanup(*a.Value)
	}
}

// handler is the capability surface the registry and the parse pipeline see.
// One implementation per argument type.
type handler interface {
	base() *BaseArg
	read(raw []string) error
	applyDefault() bool
	hasDefault() bool
	release()
	defaultString() string
}
