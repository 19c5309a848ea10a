package pipeline

import (
	"reflect"
	"testing"

	"github.com/alnah/go-md2typst/internal/typst"
)

func TestMergeParagraphs(t *testing.T) {
	t.Parallel()

	parStart := Ty(typst.Start{Tag: typst.Paragraph{}})
	parEnd := Ty(typst.End{Tag: typst.Paragraph{}})

	tests := []struct {
		name  string
		input []Event
		want  []typst.Event
	}{
		{
			name: "adjacent paragraphs merge",
			input: []Event{
				parStart, Ty(typst.Text("a")), parEnd,
				parStart, Ty(typst.Text("b")), parEnd,
			},
			want: []typst.Event{
				typst.Start{Tag: typst.Paragraph{}},
				typst.Text("a"),
				typst.Text("b"),
				typst.End{Tag: typst.Paragraph{}},
			},
		},
		{
			name: "text between boundaries joins the merged paragraph",
			input: []Event{
				parStart, Ty(typst.Text("a")), parEnd,
				Ty(typst.Text(" ")),
				parStart, Ty(typst.Text("b")), parEnd,
			},
			want: []typst.Event{
				typst.Start{Tag: typst.Paragraph{}},
				typst.Text("a"),
				typst.Text(" "),
				typst.Text("b"),
				typst.End{Tag: typst.Paragraph{}},
			},
		},
		{
			name: "linebreak between boundaries joins the merged paragraph",
			input: []Event{
				parStart, Ty(typst.Text("a")), parEnd,
				Ty(typst.Linebreak{}),
				parStart, Ty(typst.Text("b")), parEnd,
			},
			want: []typst.Event{
				typst.Start{Tag: typst.Paragraph{}},
				typst.Text("a"),
				typst.Linebreak{},
				typst.Text("b"),
				typst.End{Tag: typst.Paragraph{}},
			},
		},
		{
			name: "structural event cancels the merge",
			input: []Event{
				parStart, Ty(typst.Text("a")), parEnd,
				Ty(typst.FunctionCall{Name: "image", Args: []string{`"x.png"`}}),
				parStart, Ty(typst.Text("b")), parEnd,
			},
			want: []typst.Event{
				typst.Start{Tag: typst.Paragraph{}},
				typst.Text("a"),
				typst.End{Tag: typst.Paragraph{}},
				typst.FunctionCall{Name: "image", Args: []string{`"x.png"`}},
				typst.Start{Tag: typst.Paragraph{}},
				typst.Text("b"),
				typst.End{Tag: typst.Paragraph{}},
			},
		},
		{
			name: "three paragraphs collapse into one",
			input: []Event{
				parStart, Ty(typst.Text("a")), parEnd,
				parStart, Ty(typst.Text("b")), parEnd,
				parStart, Ty(typst.Text("c")), parEnd,
			},
			want: []typst.Event{
				typst.Start{Tag: typst.Paragraph{}},
				typst.Text("a"),
				typst.Text("b"),
				typst.Text("c"),
				typst.End{Tag: typst.Paragraph{}},
			},
		},
		{
			name: "final paragraph end survives",
			input: []Event{
				parStart, Ty(typst.Text("a")), parEnd,
			},
			want: []typst.Event{
				typst.Start{Tag: typst.Paragraph{}},
				typst.Text("a"),
				typst.End{Tag: typst.Paragraph{}},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := drainTypst(t, NewMergeParagraphs(&staticIterator{events: tt.input}))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("converted stream = %#v, want %#v", got, tt.want)
			}
		})
	}
}
