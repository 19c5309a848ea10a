package markdown

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   []Event
	}{
		{
			name:   "heading and paragraph",
			source: "# Hello\n\nWorld\n",
			want: []Event{
				Start{Tag: Heading{Level: 1}},
				Text("Hello"),
				End{Tag: Heading{Level: 1}},
				Start{Tag: Paragraph{}},
				Text("World"),
				End{Tag: Paragraph{}},
			},
		},
		{
			name:   "emphasis and strong",
			source: "*a* **b**\n",
			want: []Event{
				Start{Tag: Paragraph{}},
				Start{Tag: Emphasis{}},
				Text("a"),
				End{Tag: Emphasis{}},
				Text(" "),
				Start{Tag: Strong{}},
				Text("b"),
				End{Tag: Strong{}},
				End{Tag: Paragraph{}},
			},
		},
		{
			name:   "fenced code block",
			source: "```go\nx := 1\n```\n",
			want: []Event{
				Start{Tag: CodeBlock{Fenced: true, Language: "go"}},
				Text("x := 1\n"),
				End{Tag: CodeBlock{Fenced: true, Language: "go"}},
			},
		},
		{
			name:   "inline code",
			source: "use `go vet` often\n",
			want: []Event{
				Start{Tag: Paragraph{}},
				Text("use "),
				Code("go vet"),
				Text(" often"),
				End{Tag: Paragraph{}},
			},
		},
		{
			name:   "tight bullet list",
			source: "- a\n- b\n",
			want: []Event{
				Start{Tag: List{}},
				Start{Tag: Item{}},
				Text("a"),
				End{Tag: Item{}},
				Start{Tag: Item{}},
				Text("b"),
				End{Tag: Item{}},
				End{Tag: List{}},
			},
		},
		{
			name:   "ordered list keeps start",
			source: "3. a\n4. b\n",
			want: []Event{
				Start{Tag: List{Ordered: true, Start: 3}},
				Start{Tag: Item{}},
				Text("a"),
				End{Tag: Item{}},
				Start{Tag: Item{}},
				Text("b"),
				End{Tag: Item{}},
				End{Tag: List{Ordered: true, Start: 3}},
			},
		},
		{
			name:   "thematic break",
			source: "a\n\n---\n",
			want: []Event{
				Start{Tag: Paragraph{}},
				Text("a"),
				End{Tag: Paragraph{}},
				Rule{},
			},
		},
		{
			name:   "block quote",
			source: "> quoted\n",
			want: []Event{
				Start{Tag: BlockQuote{}},
				Start{Tag: Paragraph{}},
				Text("quoted"),
				End{Tag: Paragraph{}},
				End{Tag: BlockQuote{}},
			},
		},
		{
			name:   "inline link",
			source: "[label](https://example.com)\n",
			want: []Event{
				Start{Tag: Paragraph{}},
				Start{Tag: Link{Type: LinkInline, Destination: "https://example.com"}},
				Text("label"),
				End{Tag: Link{Type: LinkInline, Destination: "https://example.com"}},
				End{Tag: Paragraph{}},
			},
		},
		{
			name:   "autolink",
			source: "<https://example.com>\n",
			want: []Event{
				Start{Tag: Paragraph{}},
				Start{Tag: Link{Type: LinkAuto, Destination: "https://example.com"}},
				Text("https://example.com"),
				End{Tag: Link{Type: LinkAuto, Destination: "https://example.com"}},
				End{Tag: Paragraph{}},
			},
		},
		{
			name:   "email autolink",
			source: "<someone@example.com>\n",
			want: []Event{
				Start{Tag: Paragraph{}},
				Start{Tag: Link{Type: LinkEmail, Destination: "someone@example.com"}},
				Text("someone@example.com"),
				End{Tag: Link{Type: LinkEmail, Destination: "someone@example.com"}},
				End{Tag: Paragraph{}},
			},
		},
		{
			name:   "image with alt",
			source: "![alt text](cat.png)\n",
			want: []Event{
				Start{Tag: Paragraph{}},
				Start{Tag: Image{Destination: "cat.png"}},
				Text("alt text"),
				End{Tag: Image{Destination: "cat.png"}},
				End{Tag: Paragraph{}},
			},
		},
		{
			name:   "soft and hard breaks",
			source: "a\nb  \nc\n",
			want: []Event{
				Start{Tag: Paragraph{}},
				Text("a"),
				SoftBreak{},
				Text("b"),
				HardBreak{},
				Text("c"),
				End{Tag: Paragraph{}},
			},
		},
		{
			name:   "inline html",
			source: "a <br> b\n",
			want: []Event{
				Start{Tag: Paragraph{}},
				Text("a "),
				HTML("<br>"),
				Text(" b"),
				End{Tag: Paragraph{}},
			},
		},
		{
			name:   "gfm table with alignments",
			source: "| h1 | h2 |\n|:---|---:|\n| a | b |\n",
			want: []Event{
				Start{Tag: Table{Alignments: []Alignment{AlignLeft, AlignRight}}},
				Start{Tag: TableHead{}},
				Start{Tag: TableCell{}},
				Text("h1"),
				End{Tag: TableCell{}},
				Start{Tag: TableCell{}},
				Text("h2"),
				End{Tag: TableCell{}},
				End{Tag: TableHead{}},
				Start{Tag: TableRow{}},
				Start{Tag: TableCell{}},
				Text("a"),
				End{Tag: TableCell{}},
				Start{Tag: TableCell{}},
				Text("b"),
				End{Tag: TableCell{}},
				End{Tag: TableRow{}},
				End{Tag: Table{Alignments: []Alignment{AlignLeft, AlignRight}}},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse([]byte(tt.source))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseEmptyDocument(t *testing.T) {
	t.Parallel()

	got, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Parse(empty) = %#v, want no events", got)
	}
}
