package md2typst

import (
	"fmt"
	"regexp"
)

// Input holds per-conversion parameters.
type Input struct {
	// Markdown is the source document. Required.
	Markdown string

	// Document sets Typst document metadata emitted ahead of the content.
	Document *DocumentSettings

	// Page sets Typst page properties emitted ahead of the content.
	Page *PageSettings

	// Variables emits #let bindings ahead of the content, in name order.
	// Values are raw Typst expressions and are not validated.
	Variables map[string]string
}

// DocumentSettings maps to a #set document(...) preamble rule.
type DocumentSettings struct {
	Title  string
	Author string
}

// PageSettings maps to a #set page(...) preamble rule.
type PageSettings struct {
	Paper string // e.g. "a4", "us-letter"; empty = Typst default
}

// validPaperSizes are the paper names accepted by PageSettings.Paper.
var validPaperSizes = map[string]bool{
	"a3":        true,
	"a4":        true,
	"a5":        true,
	"us-letter": true,
	"us-legal":  true,
}

// Validate checks page settings. Nil settings are valid (defaults).
func (p *PageSettings) Validate() error {
	if p == nil || p.Paper == "" {
		return nil
	}
	if !validPaperSizes[p.Paper] {
		return fmt.Errorf("%w: %q", ErrInvalidPaperSize, p.Paper)
	}
	return nil
}

// variableName matches valid Typst identifiers for #let bindings.
var variableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// validateVariables checks that all binding names are Typst identifiers.
func validateVariables(vars map[string]string) error {
	for name := range vars {
		if !variableName.MatchString(name) {
			return fmt.Errorf("%w: %q", ErrInvalidVariableName, name)
		}
	}
	return nil
}

// Result contains the conversion output.
type Result struct {
	// Typst is the emitted markup, ready to hand to the Typst compiler.
	Typst []byte
}
