package dgparse

// Config groups the parser's tunable limits and options, following the
// teacher's convention of a small value-type options struct rather than a
// package of global flags.
type Config struct {
	// TabWidth is how many report columns a tab character advances;
	// affects only reported column indices, never the grammar.
	TabWidth int

	// MaxIdentifierLen bounds identifier byte length.
	MaxIdentifierLen int

	// MaxStringLen bounds string literal byte length.
	MaxStringLen int

	// SysNamespacePrefix is the reserved identifier/keyword prefix
	// restricted to compiler-injected lines.
	SysNamespacePrefix string

	// LabelWidth is the maximum decimal width of a base/sub label.
	LabelWidth int
}

// DefaultConfig returns the configuration used when a caller does not
// override the tunables.
func DefaultConfig() Config {
	return Config{
		TabWidth:           4,
		MaxIdentifierLen:   64,
		MaxStringLen:       4096,
		SysNamespacePrefix: "__sys_",
		LabelWidth:         5,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.TabWidth <= 0 {
		c.TabWidth = d.TabWidth
	}
	if c.MaxIdentifierLen <= 0 {
		c.MaxIdentifierLen = d.MaxIdentifierLen
	}
	if c.MaxStringLen <= 0 {
		c.MaxStringLen = d.MaxStringLen
	}
	if c.SysNamespacePrefix == "" {
		c.SysNamespacePrefix = d.SysNamespacePrefix
	}
	if c.LabelWidth <= 0 {
		c.LabelWidth = d.LabelWidth
	}
	return c
}
