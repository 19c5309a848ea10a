package pipeline

import (
	"reflect"
	"testing"

	"github.com/alnah/go-md2typst/internal/markdown"
	"github.com/alnah/go-md2typst/internal/typst"
)

func TestConverters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		wrap  func(Iterator) Iterator
		input []markdown.Event
		want  []typst.Event
	}{
		{
			name: "paragraph boundaries",
			wrap: func(it Iterator) Iterator { return NewParagraphs(it) },
			input: []markdown.Event{
				markdown.Start{Tag: markdown.Paragraph{}},
				markdown.End{Tag: markdown.Paragraph{}},
			},
			want: []typst.Event{
				typst.Start{Tag: typst.Paragraph{}},
				typst.End{Tag: typst.Paragraph{}},
			},
		},
		{
			name: "strong boundaries",
			wrap: func(it Iterator) Iterator { return NewStrong(it) },
			input: []markdown.Event{
				markdown.Start{Tag: markdown.Strong{}},
				markdown.End{Tag: markdown.Strong{}},
			},
			want: []typst.Event{
				typst.Start{Tag: typst.Strong{}},
				typst.End{Tag: typst.Strong{}},
			},
		},
		{
			name: "emphasis boundaries",
			wrap: func(it Iterator) Iterator { return NewEmphasis(it) },
			input: []markdown.Event{
				markdown.Start{Tag: markdown.Emphasis{}},
				markdown.End{Tag: markdown.Emphasis{}},
			},
			want: []typst.Event{
				typst.Start{Tag: typst.Emphasis{}},
				typst.End{Tag: typst.Emphasis{}},
			},
		},
		{
			name: "soft break becomes space",
			wrap: func(it Iterator) Iterator { return NewSoftBreaks(it) },
			input: []markdown.Event{
				markdown.SoftBreak{},
			},
			want: []typst.Event{
				typst.Text(" "),
			},
		},
		{
			name: "hard break becomes linebreak",
			wrap: func(it Iterator) Iterator { return NewHardBreaks(it) },
			input: []markdown.Event{
				markdown.HardBreak{},
			},
			want: []typst.Event{
				typst.Linebreak{},
			},
		},
		{
			name: "block quote",
			wrap: func(it Iterator) Iterator { return NewBlockQuotes(it) },
			input: []markdown.Event{
				markdown.Start{Tag: markdown.BlockQuote{}},
				markdown.End{Tag: markdown.BlockQuote{}},
			},
			want: []typst.Event{
				typst.Start{Tag: typst.Quote{Kind: typst.QuoteBlock, Style: typst.QuotesAuto}},
				typst.End{Tag: typst.Quote{Kind: typst.QuoteBlock, Style: typst.QuotesAuto}},
			},
		},
		{
			name: "inline code",
			wrap: func(it Iterator) Iterator { return NewCode(it) },
			input: []markdown.Event{
				markdown.Code("x := 1"),
			},
			want: []typst.Event{
				typst.Code("x := 1"),
			},
		},
		{
			name: "fenced code block with language",
			wrap: func(it Iterator) Iterator { return NewCode(it) },
			input: []markdown.Event{
				markdown.Start{Tag: markdown.CodeBlock{Fenced: true, Language: "go"}},
				markdown.End{Tag: markdown.CodeBlock{Fenced: true, Language: "go"}},
			},
			want: []typst.Event{
				typst.Start{Tag: typst.CodeBlock{Language: "go", Display: typst.DisplayBlock}},
				typst.End{Tag: typst.CodeBlock{Language: "go", Display: typst.DisplayBlock}},
			},
		},
		{
			name: "indented code block",
			wrap: func(it Iterator) Iterator { return NewCode(it) },
			input: []markdown.Event{
				markdown.Start{Tag: markdown.CodeBlock{}},
				markdown.End{Tag: markdown.CodeBlock{}},
			},
			want: []typst.Event{
				typst.Start{Tag: typst.CodeBlock{Display: typst.DisplayBlock}},
				typst.End{Tag: typst.CodeBlock{Display: typst.DisplayBlock}},
			},
		},
		{
			name: "bullet list",
			wrap: func(it Iterator) Iterator { return NewLists(it) },
			input: []markdown.Event{
				markdown.Start{Tag: markdown.List{}},
				markdown.Start{Tag: markdown.Item{}},
				markdown.End{Tag: markdown.Item{}},
				markdown.End{Tag: markdown.List{}},
			},
			want: []typst.Event{
				typst.Start{Tag: typst.BulletList{}},
				typst.Start{Tag: typst.Item{}},
				typst.End{Tag: typst.Item{}},
				typst.End{Tag: typst.BulletList{}},
			},
		},
		{
			name: "ordered list keeps start number",
			wrap: func(it Iterator) Iterator { return NewLists(it) },
			input: []markdown.Event{
				markdown.Start{Tag: markdown.List{Ordered: true, Start: 3}},
				markdown.End{Tag: markdown.List{Ordered: true, Start: 3}},
			},
			want: []typst.Event{
				typst.Start{Tag: typst.NumberedList{Start: 3}},
				typst.End{Tag: typst.NumberedList{Start: 3}},
			},
		},
		{
			name: "heading joins toc and bookmarks",
			wrap: func(it Iterator) Iterator { return NewHeadings(it) },
			input: []markdown.Event{
				markdown.Start{Tag: markdown.Heading{Level: 2}},
				markdown.End{Tag: markdown.Heading{Level: 2}},
			},
			want: []typst.Event{
				typst.Start{Tag: typst.Heading{Level: 2, TOC: true, Bookmarks: true}},
				typst.End{Tag: typst.Heading{Level: 2, TOC: true, Bookmarks: true}},
			},
		},
		{
			name: "table alignments translated",
			wrap: func(it Iterator) Iterator { return NewTables(it) },
			input: []markdown.Event{
				markdown.Start{Tag: markdown.Table{Alignments: []markdown.Alignment{
					markdown.AlignLeft, markdown.AlignCenter, markdown.AlignRight, markdown.AlignNone,
				}}},
				markdown.Start{Tag: markdown.TableHead{}},
				markdown.Start{Tag: markdown.TableRow{}},
				markdown.Start{Tag: markdown.TableCell{}},
			},
			want: []typst.Event{
				typst.Start{Tag: typst.Table{Alignments: []typst.CellAlignment{
					typst.AlignLeft, typst.AlignCenter, typst.AlignRight, typst.AlignNone,
				}}},
				typst.Start{Tag: typst.TableHead{}},
				typst.Start{Tag: typst.TableRow{}},
				typst.Start{Tag: typst.TableCell{}},
			},
		},
		{
			name: "thematic break becomes full-width line",
			wrap: func(it Iterator) Iterator { return NewRules(it) },
			input: []markdown.Event{
				markdown.Rule{},
			},
			want: []typst.Event{
				typst.Line{Length: "100%"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := drainTypst(t, tt.wrap(NewSource(tt.input)))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("converted stream = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestConvertersPassThroughUnownedEvents(t *testing.T) {
	t.Parallel()

	input := []markdown.Event{
		markdown.Text("plain"),
		markdown.Start{Tag: markdown.Emphasis{}},
	}
	got := drain(t, NewParagraphs(NewSource(input)))
	if len(got) != len(input) {
		t.Fatalf("drained %d events, want %d", len(got), len(input))
	}
	for i, e := range got {
		if !reflect.DeepEqual(e.Markdown, input[i]) {
			t.Errorf("event %d = %#v, want untouched %#v", i, e.Markdown, input[i])
		}
	}
}
