package md2typst

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrParse         = errors.New("markdown parsing failed")

	// Page settings validation errors.
	ErrInvalidPaperSize = errors.New("invalid paper size")

	// Variable binding validation errors.
	ErrInvalidVariableName = errors.New("invalid variable name")
)
