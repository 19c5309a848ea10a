package md2typst

// Option customizes a Converter.
type Option func(*Converter)

// WithHeadingNumbering emits a show-set rule turning on heading numbering
// with the given Typst numbering pattern (e.g. "1.").
func WithHeadingNumbering(pattern string) Option {
	return func(c *Converter) {
		c.cfg.headingNumbering = pattern
	}
}

// WithOutline emits an #outline() call ahead of the content, producing a
// table of contents from the converted headings.
func WithOutline() Option {
	return func(c *Converter) {
		c.cfg.outline = true
	}
}
