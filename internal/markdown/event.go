// Package markdown defines the source-side document event stream: a flat
// sequence of start/end/leaf events produced by parsing a Markdown document.
//
// Events form a properly nested stream: every Start carries a Tag that is
// matched by exactly one End with an equal Tag, in LIFO order. Leaf events
// (Text, Code, breaks) carry no tag.
package markdown

// Event is one atomic point in a Markdown document stream.
//
// The unexported marker method seals the interface: only the variants
// declared in this package exist.
type Event interface {
	markdownEvent()
}

// Start opens the construct identified by Tag.
type Start struct {
	Tag Tag
}

// End closes the construct identified by Tag. The tag must equal the one
// carried by the matching Start.
type End struct {
	Tag Tag
}

// Text is a literal text run.
type Text string

// Code is an inline code span. Content is carried verbatim.
type Code string

// HTML is a raw inline or block HTML run. No converter owns it; it is
// dropped before serialization.
type HTML string

// SoftBreak is a soft line break (a plain newline inside a paragraph).
type SoftBreak struct{}

// HardBreak is a hard line break (trailing spaces or backslash).
type HardBreak struct{}

// Rule is a thematic break.
type Rule struct{}

func (Start) markdownEvent()     {}
func (End) markdownEvent()       {}
func (Text) markdownEvent()      {}
func (Code) markdownEvent()      {}
func (HTML) markdownEvent()      {}
func (SoftBreak) markdownEvent() {}
func (HardBreak) markdownEvent() {}
func (Rule) markdownEvent()     {}

// Interface compliance checks.
var (
	_ Event = Start{}
	_ Event = End{}
	_ Event = Text("")
	_ Event = Code("")
	_ Event = HTML("")
	_ Event = SoftBreak{}
	_ Event = HardBreak{}
	_ Event = Rule{}
)

// Tag identifies which construct a Start/End pair brackets.
type Tag interface {
	markdownTag()
}

// Paragraph brackets a paragraph.
type Paragraph struct{}

// Heading brackets a heading. Level is 1..6.
type Heading struct {
	Level int
}

// BlockQuote brackets a block quote.
type BlockQuote struct{}

// CodeBlock brackets a code block. Language is the fence info string for
// fenced blocks and empty for indented blocks.
type CodeBlock struct {
	Fenced   bool
	Language string
}

// List brackets a list. Start is meaningful only when Ordered.
type List struct {
	Ordered bool
	Start   int
}

// Item brackets a list item.
type Item struct{}

// Emphasis brackets emphasized text.
type Emphasis struct{}

// Strong brackets strongly emphasized text.
type Strong struct{}

// LinkType distinguishes how a link was written in the source.
type LinkType int

const (
	// LinkInline is a standard [text](url) link.
	LinkInline LinkType = iota
	// LinkAuto is an <https://...> autolink.
	LinkAuto
	// LinkEmail is an <addr@example.com> autolink.
	LinkEmail
	// LinkReference covers reference, shortcut, and collapsed links.
	// Converters drop these; see pipeline.ConvertLinks.
	LinkReference
)

// Link brackets a hyperlink. Events between Start and End are the link text.
type Link struct {
	Type        LinkType
	Destination string
	Title       string
}

// Image brackets an image. Events between Start and End are the alt text.
type Image struct {
	Destination string
	Title       string
}

// Alignment is a table column alignment.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Table brackets a table. Alignments has one entry per column.
type Table struct {
	Alignments []Alignment
}

// TableHead brackets the header row of a table.
type TableHead struct{}

// TableRow brackets a body row.
type TableRow struct{}

// TableCell brackets one cell of a row.
type TableCell struct{}

func (Paragraph) markdownTag() {}
func (Heading) markdownTag()   {}
func (BlockQuote) markdownTag(){}
func (CodeBlock) markdownTag() {}
func (List) markdownTag()      {}
func (Item) markdownTag()      {}
func (Emphasis) markdownTag()  {}
func (Strong) markdownTag()    {}
func (Link) markdownTag()      {}
func (Image) markdownTag()     {}
func (Table) markdownTag()     {}
func (TableHead) markdownTag() {}
func (TableRow) markdownTag()  {}
func (TableCell) markdownTag() {}

// Interface compliance checks.
var (
	_ Tag = Paragraph{}
	_ Tag = Heading{}
	_ Tag = BlockQuote{}
	_ Tag = CodeBlock{}
	_ Tag = List{}
	_ Tag = Item{}
	_ Tag = Emphasis{}
	_ Tag = Strong{}
	_ Tag = Link{}
	_ Tag = Image{}
	_ Tag = Table{}
	_ Tag = TableHead{}
	_ Tag = TableRow{}
	_ Tag = TableCell{}
)
