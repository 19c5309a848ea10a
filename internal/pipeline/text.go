package pipeline

import (
	"strings"

	"github.com/alnah/go-md2typst/internal/markdown"
	"github.com/alnah/go-md2typst/internal/typst"
)

// Text rewrites literal text runs into destination text. It tracks the
// verbatim-region depth so the mdbook MathJax idiom (\[...\]) is only
// stripped from prose, never from code content. Escaping itself is the
// serializer's job; the converter carries text through verbatim.
type Text struct {
	iter  Iterator
	depth int
}

func NewText(iter Iterator) *Text {
	return &Text{iter: iter}
}

func (c *Text) Next() (Event, bool) {
	for {
		e, ok := c.iter.Next()
		if !ok {
			return Event{}, false
		}
		switch md := e.Markdown.(type) {
		case markdown.Text:
			if c.depth == 0 && isMathDelimited(string(md)) {
				// mdbook's non-standard MathJax syntax has no destination
				// equivalent; drop the run entirely.
				continue
			}
			return Ty(typst.Text(md)), true
		case markdown.HTML:
			// Only the line-break forms have a destination meaning: the
			// serializer's cell escaping rewrites them, so they must
			// arrive unescaped. All other HTML is dropped.
			if isHTMLBreak(string(md)) {
				return Ty(typst.Raw(md)), true
			}
			continue
		case markdown.Start:
			if _, ok := md.Tag.(markdown.CodeBlock); ok {
				c.depth++
			}
		case markdown.End:
			if _, ok := md.Tag.(markdown.CodeBlock); ok {
				c.depth--
			}
		}
		return e, true
	}
}

func isMathDelimited(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, `\[`) && strings.HasSuffix(s, `\]`)
}

func isHTMLBreak(s string) bool {
	switch strings.TrimSpace(s) {
	case "<br>", "<br/>", "<br />":
		return true
	}
	return false
}
