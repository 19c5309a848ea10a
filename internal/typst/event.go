// Package typst defines the destination-side document event stream and the
// serializer that turns it into literal Typst markup.
//
// The vocabulary is wider than the Markdown one: besides start/end/leaf
// events it carries destination-only constructs (function calls, variable
// bindings, set/show rules) that have no source equivalent.
package typst

// Event is one atomic point in a Typst document stream.
type Event interface {
	typstEvent()
}

// Start opens the construct identified by Tag.
type Start struct {
	Tag Tag
}

// End closes the construct identified by Tag. The tag must equal the one
// carried by the matching Start; the serializer asserts this.
type End struct {
	Tag Tag
}

// Text is a literal text run. It is escaped on emission unless a verbatim
// region is active.
type Text string

// Code is an inline raw span, emitted as #raw("...").
type Code string

// Raw is pre-rendered Typst markup passed through without escaping.
type Raw string

// Linebreak emits #linebreak().
type Linebreak struct{}

// Parbreak emits #parbreak().
type Parbreak struct{}

// Pagebreak emits #pagebreak().
type Pagebreak struct{}

// Line emits #line(...). Empty fields are omitted from the argument list.
type Line struct {
	Start  string
	End    string
	Length string
	Angle  string
	Stroke string
}

// Let emits a variable binding: #let Name = Value.
type Let struct {
	Name  string
	Value string
}

// FunctionCall emits #Name(args...) or #Receiver.Name(args...).
// Arguments are joined with commas and not validated further.
type FunctionCall struct {
	Receiver string
	Name     string
	Args     []string
}

// Set emits a set rule: #set Element(Key: Value).
type Set struct {
	Element string
	Key     string
	Value   string
}

// DocumentSet emits #set document(Key: Value).
type DocumentSet struct {
	Key   string
	Value string
}

func (Start) typstEvent()        {}
func (End) typstEvent()          {}
func (Text) typstEvent()         {}
func (Code) typstEvent()         {}
func (Raw) typstEvent()          {}
func (Linebreak) typstEvent()    {}
func (Parbreak) typstEvent()     {}
func (Pagebreak) typstEvent()    {}
func (Line) typstEvent()         {}
func (Let) typstEvent()          {}
func (FunctionCall) typstEvent() {}
func (Set) typstEvent()          {}
func (DocumentSet) typstEvent()  {}

// Interface compliance checks.
var (
	_ Event = Start{}
	_ Event = End{}
	_ Event = Text("")
	_ Event = Code("")
	_ Event = Raw("")
	_ Event = Linebreak{}
	_ Event = Parbreak{}
	_ Event = Pagebreak{}
	_ Event = Line{}
	_ Event = Let{}
	_ Event = FunctionCall{}
	_ Event = Set{}
	_ Event = DocumentSet{}
)

// Tag identifies which construct a Start/End pair brackets.
type Tag interface {
	typstTag()
}

// Paragraph brackets a #par()[...] block.
type Paragraph struct{}

// Heading brackets a heading. Level is 1..6; TOC and Bookmarks control
// whether the heading appears in the outline and PDF bookmarks.
type Heading struct {
	Level     int
	TOC       bool
	Bookmarks bool
}

// Emphasis brackets #emph[...].
type Emphasis struct{}

// Strong brackets #strong[...].
type Strong struct{}

// LinkType distinguishes destination link flavors.
type LinkType int

const (
	// LinkContent is a link with arbitrary content: #link(target)[content].
	LinkContent LinkType = iota
	// LinkURL is a bare URL link.
	LinkURL
	// LinkAuto is an autolink.
	LinkAuto
)

// Link brackets a #link(...)[...] construct.
type Link struct {
	Type LinkType
	URL  string
}

// QuoteKind selects between block and inline quotes.
type QuoteKind int

const (
	QuoteBlock QuoteKind = iota
	QuoteInline
)

// QuoteStyle controls the quotes: argument of #quote.
type QuoteStyle int

const (
	QuotesAuto QuoteStyle = iota
	QuotesWrap
	QuotesNone
)

// Quote brackets a #quote(...)[...] construct. Attribution is optional;
// empty means no attribution argument.
type Quote struct {
	Kind        QuoteKind
	Style       QuoteStyle
	Attribution string
}

// Display selects inline or block rendering for a code region.
type Display int

const (
	DisplayBlock Display = iota
	DisplayInline
)

// CodeBlock brackets a fenced verbatim region. Language is the fence token;
// empty means none.
type CodeBlock struct {
	Language string
	Display  Display
}

// BulletList brackets an unordered list.
type BulletList struct {
	Tight bool
}

// NumberedList brackets an ordered list starting at Start.
type NumberedList struct {
	Start int
	Tight bool
}

// Item brackets one list item.
type Item struct{}

// CellAlignment is a table column alignment.
type CellAlignment int

const (
	AlignNone CellAlignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Table brackets a #table(...) call. Alignments has one entry per column.
type Table struct {
	Alignments []CellAlignment
}

// TableHead brackets the header row.
type TableHead struct{}

// TableRow brackets a body row.
type TableRow struct{}

// TableCell brackets one cell.
type TableCell struct{}

// ShowKind selects the form of a show rule.
type ShowKind int

const (
	// ShowSet is a show-set rule: #show selector: set element(key: value).
	ShowSet ShowKind = iota
	// ShowFunction is a show rule with a function body: #show selector: body.
	ShowFunction
)

// Show brackets a selector-based display override. For ShowSet the
// Element/Key/Value triple is required; for ShowFunction the Body is.
type Show struct {
	Kind     ShowKind
	Selector string
	Element  string
	Key      string
	Value    string
	Body     string
}

func (Paragraph) typstTag()    {}
func (Heading) typstTag()      {}
func (Emphasis) typstTag()     {}
func (Strong) typstTag()       {}
func (Link) typstTag()         {}
func (Quote) typstTag()        {}
func (CodeBlock) typstTag()    {}
func (BulletList) typstTag()   {}
func (NumberedList) typstTag() {}
func (Item) typstTag()         {}
func (Table) typstTag()        {}
func (TableHead) typstTag()    {}
func (TableRow) typstTag()     {}
func (TableCell) typstTag()    {}
func (Show) typstTag()         {}

// Interface compliance checks.
var (
	_ Tag = Paragraph{}
	_ Tag = Heading{}
	_ Tag = Emphasis{}
	_ Tag = Strong{}
	_ Tag = Link{}
	_ Tag = Quote{}
	_ Tag = CodeBlock{}
	_ Tag = BulletList{}
	_ Tag = NumberedList{}
	_ Tag = Item{}
	_ Tag = Table{}
	_ Tag = TableHead{}
	_ Tag = TableRow{}
	_ Tag = TableCell{}
	_ Tag = Show{}
)
