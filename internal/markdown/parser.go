package markdown

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Parse parses a Markdown document into a flat event stream.
//
// GFM extensions are enabled so that tables and autolinks produce their
// dedicated events instead of falling back to plain text.
func Parse(source []byte) ([]Event, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(source))

	w := &walker{source: source}
	if err := ast.Walk(doc, w.visit); err != nil {
		return nil, fmt.Errorf("walking markdown AST: %w", err)
	}
	return w.events, nil
}

// walker flattens the goldmark AST into start/end/leaf events.
type walker struct {
	source []byte
	events []Event
}

func (w *walker) emit(e Event) {
	w.events = append(w.events, e)
}

// bracket emits Start(tag) on entering and End(tag) on leaving.
func (w *walker) bracket(tag Tag, entering bool) {
	if entering {
		w.emit(Start{Tag: tag})
	} else {
		w.emit(End{Tag: tag})
	}
}

func (w *walker) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := n.(type) {
	case *ast.Document:
		// No events for the document root.

	case *ast.Heading:
		w.bracket(Heading{Level: n.Level}, entering)

	case *ast.Paragraph:
		w.bracket(Paragraph{}, entering)

	case *ast.TextBlock:
		// Tight list item content: no paragraph wrapper, children flow bare.

	case *ast.Blockquote:
		w.bracket(BlockQuote{}, entering)

	case *ast.FencedCodeBlock:
		if entering {
			w.emit(Start{Tag: CodeBlock{Fenced: true, Language: string(n.Language(w.source))}})
			w.emitLines(n)
			w.emit(End{Tag: CodeBlock{Fenced: true, Language: string(n.Language(w.source))}})
		}
		return ast.WalkSkipChildren, nil

	case *ast.CodeBlock:
		if entering {
			w.emit(Start{Tag: CodeBlock{}})
			w.emitLines(n)
			w.emit(End{Tag: CodeBlock{}})
		}
		return ast.WalkSkipChildren, nil

	case *ast.List:
		tag := List{Ordered: n.IsOrdered()}
		if tag.Ordered {
			tag.Start = n.Start
		}
		w.bracket(tag, entering)

	case *ast.ListItem:
		w.bracket(Item{}, entering)

	case *ast.ThematicBreak:
		if entering {
			w.emit(Rule{})
		}

	case *ast.HTMLBlock:
		if entering {
			w.emit(HTML(w.nodeLines(n)))
		}
		return ast.WalkSkipChildren, nil

	case *ast.RawHTML:
		if entering {
			var raw []byte
			for i := 0; i < n.Segments.Len(); i++ {
				s := n.Segments.At(i)
				raw = append(raw, s.Value(w.source)...)
			}
			w.emit(HTML(raw))
		}
		return ast.WalkSkipChildren, nil

	case *ast.Text:
		if entering {
			w.emit(Text(n.Segment.Value(w.source)))
			switch {
			case n.HardLineBreak():
				w.emit(HardBreak{})
			case n.SoftLineBreak():
				w.emit(SoftBreak{})
			}
		}

	case *ast.String:
		if entering {
			w.emit(Text(n.Value))
		}

	case *ast.CodeSpan:
		if entering {
			var content []byte
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					content = append(content, t.Segment.Value(w.source)...)
				}
			}
			w.emit(Code(content))
		}
		return ast.WalkSkipChildren, nil

	case *ast.Emphasis:
		if n.Level >= 2 {
			w.bracket(Strong{}, entering)
		} else {
			w.bracket(Emphasis{}, entering)
		}

	case *ast.Link:
		tag := Link{
			Type:        LinkInline,
			Destination: string(n.Destination),
			Title:       string(n.Title),
		}
		w.bracket(tag, entering)

	case *ast.AutoLink:
		if entering {
			url := string(n.URL(w.source))
			typ := LinkAuto
			if n.AutoLinkType == ast.AutoLinkEmail {
				typ = LinkEmail
			}
			tag := Link{Type: typ, Destination: url}
			w.emit(Start{Tag: tag})
			w.emit(Text(n.Label(w.source)))
			w.emit(End{Tag: tag})
		}
		return ast.WalkSkipChildren, nil

	case *ast.Image:
		tag := Image{
			Destination: string(n.Destination),
			Title:       string(n.Title),
		}
		w.bracket(tag, entering)

	case *east.Table:
		aligns := make([]Alignment, len(n.Alignments))
		for i, a := range n.Alignments {
			aligns[i] = tableAlignment(a)
		}
		w.bracket(Table{Alignments: aligns}, entering)

	case *east.TableHeader:
		w.bracket(TableHead{}, entering)

	case *east.TableRow:
		w.bracket(TableRow{}, entering)

	case *east.TableCell:
		w.bracket(TableCell{}, entering)
	}
	return ast.WalkContinue, nil
}

// emitLines emits one Text event per stored source line of a code block.
func (w *walker) emitLines(n ast.Node) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		s := lines.At(i)
		w.emit(Text(s.Value(w.source)))
	}
}

func (w *walker) nodeLines(n ast.Node) string {
	var raw []byte
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		s := lines.At(i)
		raw = append(raw, s.Value(w.source)...)
	}
	return string(raw)
}

func tableAlignment(a east.Alignment) Alignment {
	switch a {
	case east.AlignLeft:
		return AlignLeft
	case east.AlignCenter:
		return AlignCenter
	case east.AlignRight:
		return AlignRight
	default:
		return AlignNone
	}
}
