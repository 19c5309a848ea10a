package pipeline

import (
	"github.com/alnah/go-md2typst/internal/markdown"
	"github.com/alnah/go-md2typst/internal/typst"
)

// MergeParagraphs collapses a paragraph end immediately followed by a
// paragraph start into one continuous paragraph. Break handling and image
// splitting can legitimately close and re-open a paragraph that is a single
// semantic block in the destination's paragraph model; without this pass
// prose that was only line-wrapped in the source would fragment into
// multiple laid-out blocks.
//
// The adjacency window tolerates any number of text and break events
// between the two boundaries and nothing else: the first structural event
// cancels the merge and the buffered window replays unchanged.
type MergeParagraphs struct {
	iter    Iterator
	pending []Event
}

func NewMergeParagraphs(iter Iterator) *MergeParagraphs {
	return &MergeParagraphs{iter: iter}
}

func (c *MergeParagraphs) Next() (Event, bool) {
	if len(c.pending) > 0 {
		e := c.pending[0]
		c.pending = c.pending[1:]
		return e, true
	}

	e, ok := c.iter.Next()
	if !ok {
		return Event{}, false
	}
	if !isParagraphEnd(e) {
		return e, true
	}

	var window []Event
	for {
		next, ok := c.iter.Next()
		if !ok {
			c.pending = window
			return e, true
		}
		if isParagraphStart(next) {
			// Merge: both boundary events vanish, the window splices into
			// the combined paragraph.
			c.pending = append(c.pending, window...)
			return c.Next()
		}
		if isMergeWindow(next) {
			window = append(window, next)
			continue
		}
		c.pending = append(c.pending, window...)
		c.pending = append(c.pending, next)
		return e, true
	}
}

func isParagraphEnd(e Event) bool {
	if end, ok := e.Typst.(typst.End); ok {
		_, isPar := end.Tag.(typst.Paragraph)
		return isPar
	}
	return false
}

func isParagraphStart(e Event) bool {
	if start, ok := e.Typst.(typst.Start); ok {
		_, isPar := start.Tag.(typst.Paragraph)
		return isPar
	}
	return false
}

// isMergeWindow reports whether e may sit between two paragraph boundaries
// without cancelling the merge: text and break events only.
func isMergeWindow(e Event) bool {
	switch e.Typst.(type) {
	case typst.Text, typst.Linebreak:
		return true
	}
	switch e.Markdown.(type) {
	case markdown.Text, markdown.SoftBreak, markdown.HardBreak:
		return true
	}
	return false
}
