// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// IsMarkdownPath returns true if the path carries a Markdown extension.
func IsMarkdownPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// ReplaceExt swaps the path's extension for newExt (which must include the
// leading dot). A path without an extension is returned unchanged.
func ReplaceExt(path, newExt string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return path
	}
	return strings.TrimSuffix(path, ext) + newExt
}

// IsFilePath returns true if the string looks like a file path rather than
// a name: anything containing a path separator.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
