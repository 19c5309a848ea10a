// Package md2typst converts Markdown documents to Typst markup.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv := md2typst.NewConverter()
//
//	result, err := conv.Convert(ctx, md2typst.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.typ", result.Typst, 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line ending normalization, blank line compression)
//  2. Markdown parsing to an event stream via Goldmark (GFM)
//  3. Event-by-event conversion to Typst events (paragraph merging,
//     image extraction, link resolution)
//  4. Serialization to Typst markup with escaping and heading labels
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv := md2typst.NewConverter(
//	    md2typst.WithHeadingNumbering("1.1"),
//	    md2typst.WithOutline(),
//	)
//
// Per-conversion settings are passed via Input:
//
//	result, err := conv.Convert(ctx, md2typst.Input{
//	    Markdown: content,
//	    Document: &md2typst.DocumentSettings{Title: "Report", Author: "Jane"},
//	    Page:     &md2typst.PageSettings{Paper: "a4"},
//	    Variables: map[string]string{"version": "\"1.2\""},
//	})
//
// Document metadata, page setup, and variable bindings are emitted as a
// Typst preamble ahead of the converted content.
package md2typst
