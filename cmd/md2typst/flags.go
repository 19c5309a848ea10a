package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line flags.
type cliFlags struct {
	output           string
	config           string
	title            string
	author           string
	paper            string
	headingNumbering string
	outline          bool
	verbose          bool
	version          bool
}

// parseFlags parses command-line arguments.
// Returns the flags, the positional arguments, and any parse error.
func parseFlags(args []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("md2typst", flag.ContinueOnError)
	fs.StringVarP(&flags.output, "output", "o", "", "Output file path (default: input with .typ extension)")
	fs.StringVarP(&flags.config, "config", "c", "", "YAML config file path")
	fs.StringVar(&flags.title, "title", "", "Document title")
	fs.StringVar(&flags.author, "author", "", "Document author")
	fs.StringVar(&flags.paper, "paper", "", "Paper size (a3, a4, a5, us-letter, us-legal)")
	fs.StringVar(&flags.headingNumbering, "numbered-headings", "", "Heading numbering pattern (e.g. \"1.1\")")
	fs.BoolVar(&flags.outline, "outline", false, "Emit an outline (table of contents) before the content")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVar(&flags.version, "version", false, "Print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return flags, fs.Args(), nil
}
