package arguments

type parseCfg struct {
	columns       *int
	missingFormat string
	dump          bool
}

type ParseOpt func(*parseCfg)

// WithColumns overrides terminal width detection for help rendering.
func WithColumns(columns int) ParseOpt {
	return func(c *parseCfg) {
		c.columns = &columns
	}
}

// WithMissingFormat sets the stderr diagnostic printed when a required
// argument is absent. The format receives the argument name.
func WithMissingFormat(format string) ParseOpt {
	return func(c *parseCfg) {
		c.missingFormat = format
	}
}

// WithDump prints a debug dump of the schema and the argument vector
// instead of parsing.
func WithDump(dump bool) ParseOpt {
	return func(c *parseCfg) {
		c.dump = dump
	}
}

func applyParseOpts(opts []ParseOpt) *parseCfg {
	cfg := &parseCfg{
		missingFormat: "missing required argument: %s\n",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *parseCfg) width() int {
	if c.columns != nil {
		return *c.columns
	}
	return TerminalWidth()
}
