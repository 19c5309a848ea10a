// Package pipeline implements the event-stream converters that rewrite a
// Markdown event stream into a Typst event stream.
//
// Each converter is a pull iterator wrapping an upstream iterator: it
// rewrites exactly one construct class and passes every other event through
// untouched, so converters compose by simple sequential wrapping. Between
// converters the stream is a mix of not-yet-converted Markdown events and
// already-converted Typst events; Chain applies the full converter set and
// TypstOnly drops whatever no converter claimed.
package pipeline

import (
	"github.com/alnah/go-md2typst/internal/markdown"
	"github.com/alnah/go-md2typst/internal/typst"
)

// Event is one element of the mixed stream: exactly one of Markdown or
// Typst is set.
type Event struct {
	Markdown markdown.Event
	Typst    typst.Event
}

// Md wraps a source event.
func Md(e markdown.Event) Event {
	return Event{Markdown: e}
}

// Ty wraps a destination event.
func Ty(e typst.Event) Event {
	return Event{Typst: e}
}

// Iterator is a pull source of pipeline events. Next reports false when the
// stream is exhausted.
type Iterator interface {
	Next() (Event, bool)
}

// Source adapts a parsed Markdown event slice into the head of a pipeline.
type Source struct {
	events []markdown.Event
	pos    int
}

// NewSource creates a Source over events.
func NewSource(events []markdown.Event) *Source {
	return &Source{events: events}
}

func (s *Source) Next() (Event, bool) {
	if s.pos >= len(s.events) {
		return Event{}, false
	}
	e := s.events[s.pos]
	s.pos++
	return Md(e), true
}

// Prefix yields a fixed run of destination events before draining the rest
// of the pipeline. It carries preamble events (document set rules, bindings)
// that have no source-side origin.
type Prefix struct {
	events []typst.Event
	pos    int
	iter   Iterator
}

// NewPrefix creates a Prefix emitting events ahead of iter.
func NewPrefix(events []typst.Event, iter Iterator) *Prefix {
	return &Prefix{events: events, iter: iter}
}

func (p *Prefix) Next() (Event, bool) {
	if p.pos < len(p.events) {
		e := p.events[p.pos]
		p.pos++
		return Ty(e), true
	}
	return p.iter.Next()
}

// TypstOnly drops events no converter rewrote, leaving a pure destination
// stream for the serializer.
type TypstOnly struct {
	iter Iterator
}

// NewTypstOnly creates the final filter stage over iter.
func NewTypstOnly(iter Iterator) *TypstOnly {
	return &TypstOnly{iter: iter}
}

func (f *TypstOnly) Next() (typst.Event, bool) {
	for {
		e, ok := f.iter.Next()
		if !ok {
			return nil, false
		}
		if e.Typst != nil {
			return e.Typst, true
		}
	}
}

// Chain wraps src in the full converter set, in dependency order: table,
// heading, and paragraph boundaries must exist as destination events before
// the image converter renegotiates them, and text conversion must run after
// break handling so stripped constructs never reach the escaper.
func Chain(src Iterator) *MergeParagraphs {
	return NewMergeParagraphs(
		NewRules(
			NewLists(
				NewCode(
					NewBlockQuotes(
						NewEmphasis(
							NewStrong(
								NewLinks(
									NewImages(
										NewText(
											NewHardBreaks(
												NewSoftBreaks(
													NewParagraphs(
														NewHeadings(
															NewTables(src)))))))))))))))
}
