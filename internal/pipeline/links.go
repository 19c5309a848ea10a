package pipeline

import (
	"github.com/alnah/go-md2typst/internal/markdown"
	"github.com/alnah/go-md2typst/internal/typst"
)

// Links rewrites hyperlink boundaries. Inline links become content links,
// autolinks stay autolinks, and email autolinks gain the mailto scheme.
// Reference-style, shortcut, and collapsed links have no conversion: their
// boundary events are dropped and the link text flows through as prose.
type Links struct {
	iter Iterator
}

func NewLinks(iter Iterator) *Links {
	return &Links{iter: iter}
}

func (c *Links) Next() (Event, bool) {
	for {
		e, ok := c.iter.Next()
		if !ok {
			return Event{}, false
		}
		switch md := e.Markdown.(type) {
		case markdown.Start:
			if l, ok := md.Tag.(markdown.Link); ok {
				tag, ok := linkTag(l)
				if !ok {
					continue
				}
				return Ty(typst.Start{Tag: tag}), true
			}
		case markdown.End:
			if l, ok := md.Tag.(markdown.Link); ok {
				tag, ok := linkTag(l)
				if !ok {
					continue
				}
				return Ty(typst.End{Tag: tag}), true
			}
		}
		return e, true
	}
}

func linkTag(l markdown.Link) (typst.Link, bool) {
	switch l.Type {
	case markdown.LinkInline:
		return typst.Link{Type: typst.LinkContent, URL: l.Destination}, true
	case markdown.LinkAuto:
		return typst.Link{Type: typst.LinkAuto, URL: l.Destination}, true
	case markdown.LinkEmail:
		return typst.Link{Type: typst.LinkURL, URL: "mailto:" + l.Destination}, true
	default:
		return typst.Link{}, false
	}
}
