package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	md2typst "github.com/alnah/go-md2typst"
	"github.com/alnah/go-md2typst/internal/config"
	"github.com/alnah/go-md2typst/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteTypst       = errors.New("failed to write typst file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// run orchestrates a single conversion from the command line.
func run(args []string) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Printf("md2typst %s\n", Version)
		return nil
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	mergeFlags(flags, cfg)

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}
	if !fileutil.IsMarkdownPath(inputPath) {
		return fmt.Errorf("%w: %s", ErrInvalidExtension, inputPath)
	}

	outputPath := resolveOutputPath(flags.output, inputPath, cfg)

	source, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	conv := md2typst.NewConverter(converterOptions(cfg)...)

	start := time.Now()
	result, err := conv.Convert(context.Background(), buildInput(string(source), cfg))
	if err != nil {
		return fmt.Errorf("converting %s: %w", inputPath, err)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteTypst, err)
		}
	}
	if err := os.WriteFile(outputPath, result.Typst, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteTypst, err)
	}

	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Converted %s -> %s (%s)\n", inputPath, outputPath, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// mergeFlags overlays CLI flags onto the loaded config. CLI wins.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.title != "" {
		cfg.Document.Title = flags.title
	}
	if flags.author != "" {
		cfg.Document.Author = flags.author
	}
	if flags.paper != "" {
		cfg.Page.Paper = flags.paper
	}
	if flags.headingNumbering != "" {
		cfg.Headings.Numbering = flags.headingNumbering
	}
	if flags.outline {
		cfg.Headings.Outline = true
	}
}

// resolveInputPath picks the input file from positional args or config.
func resolveInputPath(positional []string, cfg *config.Config) (string, error) {
	if len(positional) > 0 {
		return positional[0], nil
	}
	if cfg.Input.DefaultPath != "" {
		return cfg.Input.DefaultPath, nil
	}
	return "", ErrNoInput
}

// resolveOutputPath picks the output file: explicit flag, config output
// directory, or the input path with a .typ extension.
func resolveOutputPath(output, inputPath string, cfg *config.Config) string {
	if output != "" {
		return output
	}
	typPath := fileutil.ReplaceExt(inputPath, ".typ")
	if cfg.Output.DefaultDir != "" {
		return filepath.Join(cfg.Output.DefaultDir, filepath.Base(typPath))
	}
	return typPath
}

// converterOptions maps config to converter options.
func converterOptions(cfg *config.Config) []md2typst.Option {
	var opts []md2typst.Option
	if cfg.Headings.Numbering != "" {
		opts = append(opts, md2typst.WithHeadingNumbering(cfg.Headings.Numbering))
	}
	if cfg.Headings.Outline {
		opts = append(opts, md2typst.WithOutline())
	}
	return opts
}

// buildInput maps config to a conversion input.
func buildInput(markdown string, cfg *config.Config) md2typst.Input {
	input := md2typst.Input{Markdown: markdown}
	if cfg.Document.Title != "" || cfg.Document.Author != "" {
		input.Document = &md2typst.DocumentSettings{
			Title:  cfg.Document.Title,
			Author: cfg.Document.Author,
		}
	}
	if cfg.Page.Paper != "" {
		input.Page = &md2typst.PageSettings{Paper: cfg.Page.Paper}
	}
	if len(cfg.Variables) > 0 {
		input.Variables = cfg.Variables
	}
	return input
}
