package typst

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/alnah/go-md2typst/internal/fileutil"
)

// Iterator is a pull source of Typst events.
type Iterator interface {
	Next() (Event, bool)
}

type sliceIterator struct {
	events []Event
	pos    int
}

func (it *sliceIterator) Next() (Event, bool) {
	if it.pos >= len(it.events) {
		return nil, false
	}
	e := it.events[it.pos]
	it.pos++
	return e, true
}

// Events wraps an event slice in an Iterator.
func Events(events []Event) Iterator {
	return &sliceIterator{events: events}
}

// Markup serializes a Typst event stream into literal markup fragments.
//
// It is a single-pass state machine. State it owns: the tag stack used to
// assert proper nesting, the verbatim-region depth that sizes code fences
// and suppresses escaping, row/cell accumulation buffers that defer table
// output until a full row is known, and the heading-label table used to
// resolve in-document anchor links.
//
// Fragments may contain embedded newlines; the caller concatenates them in
// order. Structurally malformed input (mismatched tags, an item outside a
// list) indicates a bug in an upstream converter and panics.
type Markup struct {
	iter    Iterator
	tags    []Tag
	fences  int
	rowBuf  *strings.Builder
	cell    *cellBuffer
	heading *strings.Builder
	labels  map[string]string
}

// NewMarkup creates a serializer pulling from iter.
func NewMarkup(iter Iterator) *Markup {
	return &Markup{
		iter:   iter,
		labels: make(map[string]string),
	}
}

// Render drains iter and concatenates all fragments.
func Render(iter Iterator) string {
	m := NewMarkup(iter)
	var b strings.Builder
	for {
		frag, ok := m.Next()
		if !ok {
			return b.String()
		}
		b.WriteString(frag)
	}
}

// RenderEvents serializes a complete event slice.
func RenderEvents(events []Event) string {
	return Render(Events(events))
}

// Next returns the next output fragment. Fragments can be empty when an
// event's output was deferred into a row or cell buffer.
func (m *Markup) Next() (string, bool) {
	event, ok := m.iter.Next()
	if !ok {
		// Input ended mid-table: emit the pending row rather than
		// dropping it.
		if m.rowBuf != nil {
			buf := strings.TrimSuffix(m.rowBuf.String(), ", ")
			m.rowBuf = nil
			return buf, true
		}
		return "", false
	}

	switch e := event.(type) {
	case Start:
		return m.start(e.Tag), true
	case End:
		return m.end(e.Tag), true
	case Text:
		content := string(e)
		if m.heading != nil {
			m.heading.WriteString(content)
		}
		if m.fences == 0 {
			content = escapeMarkup(content)
		}
		return m.buffered(content), true
	case Code:
		if m.heading != nil {
			m.heading.WriteString(string(e))
		}
		return m.bufferedRaw(rawCall(string(e))), true
	case Raw:
		return m.buffered(string(e)), true
	case Linebreak:
		return "#linebreak()\n", true
	case Parbreak:
		return "#parbreak()\n", true
	case Pagebreak:
		return "#pagebreak()\n", true
	case Line:
		return lineCall(e), true
	case Let:
		return fmt.Sprintf("#let %s = %s\n", e.Name, e.Value), true
	case FunctionCall:
		args := strings.Join(e.Args, ", ")
		if e.Receiver != "" {
			return fmt.Sprintf("#%s.%s(%s)\n", e.Receiver, e.Name, args), true
		}
		return fmt.Sprintf("#%s(%s)\n", e.Name, args), true
	case Set:
		return fmt.Sprintf("#set %s(%s: %s)\n", e.Element, e.Key, e.Value), true
	case DocumentSet:
		return fmt.Sprintf("#set document(%s: %s)\n", e.Key, e.Value), true
	default:
		panic(fmt.Sprintf("typst: unhandled event %T", event))
	}
}

// start emits the opening literal syntax for tag and pushes it.
func (m *Markup) start(tag Tag) string {
	var open string
	switch t := tag.(type) {
	case Paragraph:
		open = "#par()["
	case Show:
		open = showRule(t)
	case Heading:
		open = strings.Repeat("=", t.Level) + " "
		m.heading = &strings.Builder{}
	case CodeBlock:
		open = strings.Repeat("`", 6+m.fences) + t.Language + "\n"
		m.fences++
	case BulletList, NumberedList:
		// No literal syntax; items carry the markers.
	case Item:
		open = m.itemMarker()
	case Emphasis:
		open = "#emph["
	case Strong:
		open = "#strong["
	case Link:
		open = "#link(" + m.linkTarget(t.URL) + ")["
	case Quote:
		open = quoteOpen(t)
	case Table:
		open = tableOpen(t)
	case TableHead, TableRow:
		m.rowBuf = &strings.Builder{}
	case TableCell:
		m.cell = &cellBuffer{}
	default:
		panic(fmt.Sprintf("typst: unhandled start tag %T", tag))
	}

	m.tags = append(m.tags, tag)
	return m.buffered(open)
}

// end emits the closing literal syntax for tag, pops the stack, and asserts
// proper nesting.
func (m *Markup) end(tag Tag) string {
	var clos string
	switch t := tag.(type) {
	case Paragraph:
		clos = "]\n"
	case Heading:
		clos = m.closeHeading()
	case Item:
		clos = "\n"
	case Emphasis, Strong, Link:
		clos = "]"
	case BulletList, NumberedList:
		// Nothing to close.
	case CodeBlock:
		m.fences--
		clos = strings.Repeat("`", 6+m.fences) + "\n"
	case Show:
		clos = "\n"
	case Quote:
		if t.Kind == QuoteInline {
			clos = "]"
		} else {
			clos = "]\n"
		}
	case Table:
		clos = ")\n"
	case TableHead, TableRow:
		clos = m.flushRow()
	case TableCell:
		m.flushCell()
	default:
		panic(fmt.Sprintf("typst: unhandled end tag %T", tag))
	}

	if len(m.tags) == 0 {
		panic(fmt.Sprintf("typst: closing %T with empty tag stack", tag))
	}
	top := m.tags[len(m.tags)-1]
	m.tags = m.tags[:len(m.tags)-1]
	if !reflect.DeepEqual(top, tag) {
		panic(fmt.Sprintf("typst: tag mismatch: closing %#v, open %#v", tag, top))
	}

	// Row/head/cell closings manage the buffers themselves; everything else
	// nested inside a pending row defers into it.
	switch tag.(type) {
	case TableHead, TableRow, TableCell:
		return clos
	}
	return m.buffered(clos)
}

// buffered redirects s into the cell buffer, else the row buffer, else
// yields it as output.
func (m *Markup) buffered(s string) string {
	switch {
	case m.cell != nil:
		m.cell.writeText(s)
		return ""
	case m.rowBuf != nil:
		m.rowBuf.WriteString(s)
		return ""
	default:
		return s
	}
}

// bufferedRaw is buffered for fragments that are already complete Typst
// syntax (inline raw calls): inside a cell they are recorded as exempt
// from cell-level escaping, which would corrupt their string literals.
func (m *Markup) bufferedRaw(s string) string {
	if m.cell != nil {
		m.cell.writeRaw(s)
		return ""
	}
	return m.buffered(s)
}

// itemMarker picks the marker for a list item from the enclosing list tag.
func (m *Markup) itemMarker() string {
	if len(m.tags) == 0 {
		panic("typst: list item with no enclosing list")
	}
	switch m.tags[len(m.tags)-1].(type) {
	case BulletList:
		return "- "
	case NumberedList:
		return "+ "
	default:
		panic(fmt.Sprintf("typst: list item inside %T", m.tags[len(m.tags)-1]))
	}
}

// closeHeading derives the heading's label from the accumulated raw text,
// records it for later anchor resolution, and emits the trailing anchor.
func (m *Markup) closeHeading() string {
	if m.heading == nil {
		return "\n"
	}
	raw := m.heading.String()
	m.heading = nil
	label := DeriveLabel(raw)
	if label == "" {
		return "\n"
	}
	m.labels[raw] = label
	return " <" + label + ">\n"
}

// flushRow drains the row buffer into one formatted row literal.
func (m *Markup) flushRow() string {
	if m.rowBuf == nil {
		return "\n"
	}
	row := strings.TrimSuffix(m.rowBuf.String(), ", ")
	m.rowBuf = nil
	return "  " + row + ",\n"
}

// flushCell drains the cell buffer, applies cell escaping, and appends the
// bracketed cell to the row buffer.
func (m *Markup) flushCell() {
	if m.rowBuf == nil {
		panic("typst: table cell closed outside a row")
	}
	var content string
	if m.cell != nil {
		content = m.cell.render()
		m.cell = nil
	}
	if m.rowBuf.Len() > 0 {
		m.rowBuf.WriteString(", ")
	}
	m.rowBuf.WriteString("[" + content + "]")
}

// linkTarget rewrites a link destination into Typst link-argument syntax:
// in-document anchors become label references, Markdown file paths are
// rewritten to the Typst extension, everything else is quoted verbatim.
func (m *Markup) linkTarget(url string) string {
	target := strings.TrimPrefix(url, "./")
	if raw, ok := strings.CutPrefix(target, "#"); ok {
		label, ok := m.labels[raw]
		if !ok {
			// Derivation is deterministic, so a link can resolve before
			// its heading has been serialized.
			label = DeriveLabel(raw)
		}
		return "<" + label + ">"
	}
	path, fragment, hasFragment := strings.Cut(target, "#")
	if !strings.Contains(path, "://") && fileutil.IsMarkdownPath(path) {
		target = fileutil.ReplaceExt(path, ".typ")
		if hasFragment {
			target += "#" + fragment
		}
	}
	return strconv.Quote(target)
}

func quoteOpen(t Quote) string {
	block := "block: true,"
	if t.Kind == QuoteInline {
		block = "block: false,"
	}
	var quotes string
	switch t.Style {
	case QuotesWrap:
		quotes = "quotes: true,"
	case QuotesNone:
		quotes = "quotes: false,"
	default:
		quotes = "quotes: auto,"
	}
	if t.Attribution != "" {
		return fmt.Sprintf("#quote(%s %s attribution: [%s])[", block, quotes, t.Attribution)
	}
	return fmt.Sprintf("#quote(%s %s)[", block, quotes)
}

func tableOpen(t Table) string {
	params := []string{fmt.Sprintf("columns: %d", len(t.Alignments))}
	aligned := false
	names := make([]string, len(t.Alignments))
	for i, a := range t.Alignments {
		switch a {
		case AlignLeft:
			names[i] = "left"
		case AlignCenter:
			names[i] = "center"
		case AlignRight:
			names[i] = "right"
		default:
			names[i] = "start"
		}
		if a != AlignNone {
			aligned = true
		}
	}
	if aligned {
		params = append(params, fmt.Sprintf("align: (%s)", strings.Join(names, ", ")))
	}
	return fmt.Sprintf("#table(\n  %s,\n", strings.Join(params, ", "))
}

func showRule(t Show) string {
	switch t.Kind {
	case ShowSet:
		if t.Element == "" || t.Key == "" {
			panic("typst: show-set rule missing set data")
		}
		return fmt.Sprintf("#show %s: set %s(%s:%s)", t.Selector, t.Element, t.Key, t.Value)
	case ShowFunction:
		if t.Body == "" {
			panic("typst: show rule missing function body")
		}
		return fmt.Sprintf("#show %s:%s", t.Selector, t.Body)
	default:
		panic(fmt.Sprintf("typst: unknown show kind %d", t.Kind))
	}
}

// rawCall wraps inline code in #raw("..."), escaping only the two
// characters that would break out of the string literal.
func rawCall(content string) string {
	content = strings.ReplaceAll(content, `\`, `\\`)
	content = strings.ReplaceAll(content, `"`, `\"`)
	return `#raw("` + content + `")`
}

// lineCall builds #line(...), omitting unset arguments.
func lineCall(e Line) string {
	var parts []string
	if e.Start != "" {
		parts = append(parts, "start: "+e.Start)
	}
	if e.End != "" {
		parts = append(parts, "end: "+e.End)
	}
	if e.Length != "" {
		parts = append(parts, "length: "+e.Length)
	}
	if e.Angle != "" {
		parts = append(parts, "angle: "+e.Angle)
	}
	if e.Stroke != "" {
		parts = append(parts, "stroke: "+e.Stroke)
	}
	return fmt.Sprintf("#line(%s)\n", strings.Join(parts, ", "))
}

// markupEscaper escapes the characters Typst treats specially in prose.
// The underscore gains a leading space so the escape does not fuse with the
// preceding word.
var markupEscaper = strings.NewReplacer(
	"$", `\$`,
	"#", `\#`,
	"<", `\<`,
	">", `\>`,
	"*", `\*`,
	"_", ` \_`,
	"`", "\\`",
	"@", `\@`,
)

func escapeMarkup(s string) string {
	return markupEscaper.Replace(s)
}

// cellBuffer accumulates one table cell as an ordered list of segments so
// that cell-level escaping applies to text but never to fragments that are
// already complete Typst syntax.
type cellBuffer struct {
	segs []cellSegment
	text strings.Builder
}

type cellSegment struct {
	content string
	raw     bool
}

func (c *cellBuffer) writeText(s string) {
	c.text.WriteString(s)
}

func (c *cellBuffer) writeRaw(s string) {
	c.sealText()
	c.segs = append(c.segs, cellSegment{content: s, raw: true})
}

func (c *cellBuffer) sealText() {
	if c.text.Len() > 0 {
		c.segs = append(c.segs, cellSegment{content: c.text.String()})
		c.text.Reset()
	}
}

// render escapes the text segments, splices the raw segments through
// untouched, and trims the cell's surrounding whitespace.
func (c *cellBuffer) render() string {
	c.sealText()
	var b strings.Builder
	for _, seg := range c.segs {
		if seg.raw {
			b.WriteString(seg.content)
		} else {
			b.WriteString(escapeCell(seg.content))
		}
	}
	return strings.TrimSpace(b.String())
}

// escapeCell applies the additional escaping table-cell text needs: HTML
// line breaks become the inline escape, and comment starts and emphasis
// markers are escaped without double-escaping content escaped upstream.
func escapeCell(s string) string {
	for _, br := range []string{"<br>", "<br/>", "<br />"} {
		s = strings.ReplaceAll(s, br, `\n`)
	}
	s = strings.ReplaceAll(s, "//", `\/\/`)

	var b strings.Builder
	b.Grow(len(s))
	var prev rune
	for _, r := range s {
		// Text events arrive with the emphasis marker already escaped;
		// only a bare marker needs escaping here.
		if r == '*' && prev != '\\' {
			b.WriteString(`\*`)
			prev = r
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

// DeriveLabel derives a cross-reference identifier from heading text:
// case-folded, non-alphanumeric runs collapsed to a single dash, leading
// and trailing dashes trimmed. Non-ASCII characters pass through so
// non-Latin headings keep usable labels.
func DeriveLabel(text string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(text) {
		if r > unicode.MaxASCII || unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}
