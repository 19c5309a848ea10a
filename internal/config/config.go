// Package config loads and validates CLI configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2typst/internal/fileutil"
	"github.com/alnah/go-md2typst/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits for multi-tenant safety.
const (
	MaxTitleLength     = 200 // Document title
	MaxAuthorLength    = 100 // Author name
	MaxPaperSizeLength = 10  // "a4", "us-letter"
	MaxNumberingLength = 30  // "1.1", "I.A.1"
	MaxVariableLength  = 500 // Variable value (Typst expression)
)

// Config holds all configuration for Typst generation.
type Config struct {
	Input     InputConfig       `yaml:"input"`
	Output    OutputConfig      `yaml:"output"`
	Document  DocumentConfig    `yaml:"document"`
	Page      PageConfig        `yaml:"page"`
	Headings  HeadingsConfig    `yaml:"headings"`
	Variables map[string]string `yaml:"variables"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultPath string `yaml:"defaultPath"` // Default input file (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// DocumentConfig defines document metadata emitted as #set document(...).
type DocumentConfig struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

// PageConfig defines page settings emitted as #set page(...).
type PageConfig struct {
	Paper string `yaml:"paper"` // "a3", "a4", "a5", "us-letter", "us-legal"
}

// HeadingsConfig defines heading numbering and outline options.
type HeadingsConfig struct {
	Numbering string `yaml:"numbering"` // e.g. "1.1" (empty = no numbering)
	Outline   bool   `yaml:"outline"`   // Emit #outline() before the content
}

// Validate checks field lengths to prevent abuse in multi-tenant scenarios.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.author", c.Document.Author, MaxAuthorLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.paper", c.Page.Paper, MaxPaperSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("headings.numbering", c.Headings.Numbering, MaxNumberingLength); err != nil {
		return err
	}
	for name, value := range c.Variables {
		if err := validateFieldLength("variables."+name, value, MaxVariableLength); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration with all features disabled.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2typst/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-md2typst", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
