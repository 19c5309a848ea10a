package pipeline

import (
	"github.com/alnah/go-md2typst/internal/markdown"
	"github.com/alnah/go-md2typst/internal/typst"
)

// Paragraphs rewrites source paragraph boundaries into destination
// paragraph boundaries, 1:1.
type Paragraphs struct {
	iter Iterator
}

func NewParagraphs(iter Iterator) *Paragraphs {
	return &Paragraphs{iter: iter}
}

func (c *Paragraphs) Next() (Event, bool) {
	e, ok := c.iter.Next()
	if !ok {
		return Event{}, false
	}
	switch md := e.Markdown.(type) {
	case markdown.Start:
		if _, ok := md.Tag.(markdown.Paragraph); ok {
			return Ty(typst.Start{Tag: typst.Paragraph{}}), true
		}
	case markdown.End:
		if _, ok := md.Tag.(markdown.Paragraph); ok {
			return Ty(typst.End{Tag: typst.Paragraph{}}), true
		}
	}
	return e, true
}

// Strong rewrites strong-emphasis boundaries, 1:1.
type Strong struct {
	iter Iterator
}

func NewStrong(iter Iterator) *Strong {
	return &Strong{iter: iter}
}

func (c *Strong) Next() (Event, bool) {
	e, ok := c.iter.Next()
	if !ok {
		return Event{}, false
	}
	switch md := e.Markdown.(type) {
	case markdown.Start:
		if _, ok := md.Tag.(markdown.Strong); ok {
			return Ty(typst.Start{Tag: typst.Strong{}}), true
		}
	case markdown.End:
		if _, ok := md.Tag.(markdown.Strong); ok {
			return Ty(typst.End{Tag: typst.Strong{}}), true
		}
	}
	return e, true
}

// Emphasis rewrites emphasis boundaries, 1:1.
type Emphasis struct {
	iter Iterator
}

func NewEmphasis(iter Iterator) *Emphasis {
	return &Emphasis{iter: iter}
}

func (c *Emphasis) Next() (Event, bool) {
	e, ok := c.iter.Next()
	if !ok {
		return Event{}, false
	}
	switch md := e.Markdown.(type) {
	case markdown.Start:
		if _, ok := md.Tag.(markdown.Emphasis); ok {
			return Ty(typst.Start{Tag: typst.Emphasis{}}), true
		}
	case markdown.End:
		if _, ok := md.Tag.(markdown.Emphasis); ok {
			return Ty(typst.End{Tag: typst.Emphasis{}}), true
		}
	}
	return e, true
}

// SoftBreaks rewrites soft line breaks into a single literal space: the
// destination has no soft-break concept.
type SoftBreaks struct {
	iter Iterator
}

func NewSoftBreaks(iter Iterator) *SoftBreaks {
	return &SoftBreaks{iter: iter}
}

func (c *SoftBreaks) Next() (Event, bool) {
	e, ok := c.iter.Next()
	if !ok {
		return Event{}, false
	}
	if _, isSoft := e.Markdown.(markdown.SoftBreak); isSoft {
		return Ty(typst.Text(" ")), true
	}
	return e, true
}

// HardBreaks rewrites hard line breaks into explicit destination linebreaks.
type HardBreaks struct {
	iter Iterator
}

func NewHardBreaks(iter Iterator) *HardBreaks {
	return &HardBreaks{iter: iter}
}

func (c *HardBreaks) Next() (Event, bool) {
	e, ok := c.iter.Next()
	if !ok {
		return Event{}, false
	}
	if _, isHard := e.Markdown.(markdown.HardBreak); isHard {
		return Ty(typst.Linebreak{}), true
	}
	return e, true
}

// BlockQuotes rewrites block quotes into destination quotes with block
// style and automatic quote marks. Attribution is a destination-only
// capability with no source syntax, so it stays empty.
type BlockQuotes struct {
	iter Iterator
}

func NewBlockQuotes(iter Iterator) *BlockQuotes {
	return &BlockQuotes{iter: iter}
}

func (c *BlockQuotes) Next() (Event, bool) {
	e, ok := c.iter.Next()
	if !ok {
		return Event{}, false
	}
	quote := typst.Quote{Kind: typst.QuoteBlock, Style: typst.QuotesAuto}
	switch md := e.Markdown.(type) {
	case markdown.Start:
		if _, ok := md.Tag.(markdown.BlockQuote); ok {
			return Ty(typst.Start{Tag: quote}), true
		}
	case markdown.End:
		if _, ok := md.Tag.(markdown.BlockQuote); ok {
			return Ty(typst.End{Tag: quote}), true
		}
	}
	return e, true
}

// Code rewrites inline code spans and code-block boundaries. Inline code is
// carried verbatim; escaping for the raw-literal call happens in the
// serializer. Fenced and indented blocks both map to block display, with an
// empty fence token normalized to no language.
type Code struct {
	iter Iterator
}

func NewCode(iter Iterator) *Code {
	return &Code{iter: iter}
}

func (c *Code) Next() (Event, bool) {
	e, ok := c.iter.Next()
	if !ok {
		return Event{}, false
	}
	switch md := e.Markdown.(type) {
	case markdown.Code:
		return Ty(typst.Code(md)), true
	case markdown.Start:
		if cb, ok := md.Tag.(markdown.CodeBlock); ok {
			return Ty(typst.Start{Tag: codeBlockTag(cb)}), true
		}
	case markdown.End:
		if cb, ok := md.Tag.(markdown.CodeBlock); ok {
			return Ty(typst.End{Tag: codeBlockTag(cb)}), true
		}
	}
	return e, true
}

func codeBlockTag(cb markdown.CodeBlock) typst.CodeBlock {
	return typst.CodeBlock{Language: cb.Language, Display: typst.DisplayBlock}
}

// Lists rewrites list and item boundaries. Unordered lists become bullet
// lists, ordered lists carry their starting number. Tightness is not
// distinguished.
type Lists struct {
	iter Iterator
}

func NewLists(iter Iterator) *Lists {
	return &Lists{iter: iter}
}

func (c *Lists) Next() (Event, bool) {
	e, ok := c.iter.Next()
	if !ok {
		return Event{}, false
	}
	switch md := e.Markdown.(type) {
	case markdown.Start:
		switch tag := md.Tag.(type) {
		case markdown.List:
			return Ty(typst.Start{Tag: listTag(tag)}), true
		case markdown.Item:
			return Ty(typst.Start{Tag: typst.Item{}}), true
		}
	case markdown.End:
		switch tag := md.Tag.(type) {
		case markdown.List:
			return Ty(typst.End{Tag: listTag(tag)}), true
		case markdown.Item:
			return Ty(typst.End{Tag: typst.Item{}}), true
		}
	}
	return e, true
}

func listTag(l markdown.List) typst.Tag {
	if l.Ordered {
		return typst.NumberedList{Start: l.Start}
	}
	return typst.BulletList{}
}

// Headings rewrites the six heading levels into destination headings that
// are always included in the table of contents and bookmarks: the source
// has no mechanism to suppress either.
type Headings struct {
	iter Iterator
}

func NewHeadings(iter Iterator) *Headings {
	return &Headings{iter: iter}
}

func (c *Headings) Next() (Event, bool) {
	e, ok := c.iter.Next()
	if !ok {
		return Event{}, false
	}
	switch md := e.Markdown.(type) {
	case markdown.Start:
		if h, ok := md.Tag.(markdown.Heading); ok {
			return Ty(typst.Start{Tag: headingTag(h)}), true
		}
	case markdown.End:
		if h, ok := md.Tag.(markdown.Heading); ok {
			return Ty(typst.End{Tag: headingTag(h)}), true
		}
	}
	return e, true
}

func headingTag(h markdown.Heading) typst.Heading {
	return typst.Heading{Level: h.Level, TOC: true, Bookmarks: true}
}

// Tables rewrites table, head, row, and cell boundaries 1:1, translating
// the column alignment enumeration.
type Tables struct {
	iter Iterator
}

func NewTables(iter Iterator) *Tables {
	return &Tables{iter: iter}
}

func (c *Tables) Next() (Event, bool) {
	e, ok := c.iter.Next()
	if !ok {
		return Event{}, false
	}
	switch md := e.Markdown.(type) {
	case markdown.Start:
		if tag, ok := tableTag(md.Tag); ok {
			return Ty(typst.Start{Tag: tag}), true
		}
	case markdown.End:
		if tag, ok := tableTag(md.Tag); ok {
			return Ty(typst.End{Tag: tag}), true
		}
	}
	return e, true
}

func tableTag(tag markdown.Tag) (typst.Tag, bool) {
	switch t := tag.(type) {
	case markdown.Table:
		aligns := make([]typst.CellAlignment, len(t.Alignments))
		for i, a := range t.Alignments {
			switch a {
			case markdown.AlignLeft:
				aligns[i] = typst.AlignLeft
			case markdown.AlignCenter:
				aligns[i] = typst.AlignCenter
			case markdown.AlignRight:
				aligns[i] = typst.AlignRight
			default:
				aligns[i] = typst.AlignNone
			}
		}
		return typst.Table{Alignments: aligns}, true
	case markdown.TableHead:
		return typst.TableHead{}, true
	case markdown.TableRow:
		return typst.TableRow{}, true
	case markdown.TableCell:
		return typst.TableCell{}, true
	}
	return nil, false
}

// Rules rewrites thematic breaks into a full-width destination line.
type Rules struct {
	iter Iterator
}

func NewRules(iter Iterator) *Rules {
	return &Rules{iter: iter}
}

func (c *Rules) Next() (Event, bool) {
	e, ok := c.iter.Next()
	if !ok {
		return Event{}, false
	}
	if _, isRule := e.Markdown.(markdown.Rule); isRule {
		return Ty(typst.Line{Length: "100%"}), true
	}
	return e, true
}
