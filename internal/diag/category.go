package diag

// Category is one entry of the diagnostic catalog. Its identity is fixed; its
// current severity changes only through Registry.SetSeverity.
type Category struct {
	code     Code
	settable bool
	def      Severity
	level    Severity
	help     string
}

func newCategory(d categoryDef) *Category {
	return &Category{
		code:     d.code,
		settable: d.settable,
		def:      d.level,
		level:    d.level,
		help:     d.help,
	}
}

// Code returns the category's code.
func (c *Category) Code() Code { return c.code }

// Severity returns the severity currently in effect.
func (c *Category) Severity() Severity { return c.level }

// DefaultSeverity returns the severity the category was registered with.
func (c *Category) DefaultSeverity() Severity { return c.def }

// LevelSettable reports whether the severity may be overridden.
func (c *Category) LevelSettable() bool { return c.settable }

// Help returns the help text; it may span several lines.
func (c *Category) Help() string { return c.help }
