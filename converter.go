package md2typst

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/alnah/go-md2typst/internal/markdown"
	"github.com/alnah/go-md2typst/internal/pipeline"
	"github.com/alnah/go-md2typst/internal/typst"
)

// Compile-time interface implementation checks.
var (
	_ markdownPreprocessor = (*commonMarkPreprocessor)(nil)
	_ typst.Iterator       = (*pipeline.TypstOnly)(nil)
)

// converterConfig holds option-controlled settings.
type converterConfig struct {
	headingNumbering string
	outline          bool
}

// Converter turns Markdown documents into Typst markup.
// Create with NewConverter and use Convert per document; a Converter is
// stateless across conversions and safe for sequential reuse.
type Converter struct {
	cfg          converterConfig
	preprocessor markdownPreprocessor
}

// NewConverter creates a Converter.
// Use options to customize behavior (e.g., WithHeadingNumbering, WithOutline).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		preprocessor: &commonMarkPreprocessor{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert runs the full pipeline: preprocess, parse, convert the event
// stream, and serialize. The context is used for cancellation between
// stages. Recovers from internal panics so structural bugs surface as
// errors rather than crashes.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	// Preprocess markdown
	content := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Parse to the source event stream
	events, err := markdown.Parse([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Convert and serialize
	stream := pipeline.NewTypstOnly(
		pipeline.NewPrefix(
			c.preamble(input),
			pipeline.Chain(pipeline.NewSource(events)),
		),
	)
	out := typst.Render(stream)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return &Result{Typst: []byte(out)}, nil
}

// validateInput checks that required fields are present and valid.
//
// This is the trust boundary for direct library users who build Input
// manually; the CLI validates earlier at config load time. Both paths
// converge here.
func (c *Converter) validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	if err := validateVariables(input.Variables); err != nil {
		return err
	}
	return nil
}

// preamble builds the destination-only events emitted ahead of the
// converted content: document metadata, page setup, heading numbering,
// variable bindings, and the outline call.
func (c *Converter) preamble(input Input) []typst.Event {
	var events []typst.Event

	if d := input.Document; d != nil {
		if d.Title != "" {
			events = append(events, typst.DocumentSet{Key: "title", Value: strconv.Quote(d.Title)})
		}
		if d.Author != "" {
			events = append(events, typst.DocumentSet{Key: "author", Value: strconv.Quote(d.Author)})
		}
	}
	if p := input.Page; p != nil && p.Paper != "" {
		events = append(events, typst.Set{Element: "page", Key: "paper", Value: strconv.Quote(p.Paper)})
	}
	if c.cfg.headingNumbering != "" {
		show := typst.Show{
			Kind:     typst.ShowSet,
			Selector: "heading",
			Element:  "heading",
			Key:      "numbering",
			Value:    strconv.Quote(c.cfg.headingNumbering),
		}
		events = append(events, typst.Start{Tag: show}, typst.End{Tag: show})
	}

	names := make([]string, 0, len(input.Variables))
	for name := range input.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		events = append(events, typst.Let{Name: name, Value: input.Variables[name]})
	}

	if c.cfg.outline {
		events = append(events, typst.FunctionCall{Name: "outline"})
	}
	return events
}
