// Package config loads and validates site configuration files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"

	"github.com/alnah/go-sitegen/internal/fileutil"
	"github.com/alnah/go-sitegen/internal/pipeline"
	"github.com/alnah/go-sitegen/internal/yamlutil"
)

// Sentinel errors for configuration operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxBasePathLength = 2048 // Browser URL limit
	MaxNameLength     = 64   // Style and engine names
)

// Worker bounds. Zero means "derive from GOMAXPROCS".
const (
	MinWorkers = 0
	MaxWorkers = 64
)

// appDir is the directory under the user config dir searched for configs.
const appDir = "go-sitegen"

// Config is the site configuration.
type Config struct {
	Content  string `yaml:"content"`  // Markdown source tree (default: "content")
	Static   string `yaml:"static"`   // Copied verbatim to Output (empty = none)
	Output   string `yaml:"output"`   // Generated site (default: "public")
	Template string `yaml:"template"` // Site template (default: "template.html")
	BasePath string `yaml:"basePath"` // URL prefix for root-relative links (default: "/")
	Pretty   bool   `yaml:"pretty"`   // Indent generated HTML
	Engine   string `yaml:"engine"`   // "native" or "goldmark" (default: "native")
	Workers  int    `yaml:"workers"`  // Parallel page conversions (0 = auto)
	NoClean  bool   `yaml:"noClean"`  // Keep existing files in Output
	Style    string `yaml:"style"`    // Style name or .css path injected into pages (empty = none)
	Assets   string `yaml:"assets"`   // Directory overriding embedded styles/templates (empty = embedded)
}

// DefaultConfig returns the configuration used when no file is given.
// It mirrors the conventional layout: content/, static/, public/, template.html.
func DefaultConfig() *Config {
	return &Config{
		Content:  "content",
		Static:   "static",
		Output:   "public",
		Template: "template.html",
		BasePath: "/",
		Engine:   pipeline.EngineNative,
	}
}

// Validate checks field lengths and enumerated values.
func (c *Config) Validate() error {
	for _, f := range []struct {
		name  string
		value string
		max   int
	}{
		{"content", c.Content, MaxPathLength},
		{"static", c.Static, MaxPathLength},
		{"output", c.Output, MaxPathLength},
		{"template", c.Template, MaxPathLength},
		{"assets", c.Assets, MaxPathLength},
		{"style", c.Style, MaxPathLength},
		{"basePath", c.BasePath, MaxBasePathLength},
		{"engine", c.Engine, MaxNameLength},
	} {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Engine != "" && !slices.Contains(pipeline.Engines, c.Engine) {
		return fmt.Errorf("%w: engine %q (must be one of %s)", ErrInvalidField, c.Engine, strings.Join(pipeline.Engines, ", "))
	}
	if c.Workers < MinWorkers || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between %d and %d, got %d", ErrInvalidField, MinWorkers, MaxWorkers, c.Workers)
	}
	if strings.ContainsAny(c.BasePath, " \t\n?#") {
		return fmt.Errorf("%w: basePath %q contains whitespace, query or fragment", ErrInvalidField, c.BasePath)
	}
	if c.Output != "" && c.Content != "" && filepath.Clean(c.Output) == filepath.Clean(c.Content) {
		return fmt.Errorf("%w: output and content must differ (%s)", ErrInvalidField, c.Output)
	}
	if c.Output != "" && c.Static != "" && filepath.Clean(c.Output) == filepath.Clean(c.Static) {
		return fmt.Errorf("%w: output and static must differ (%s)", ErrInvalidField, c.Output)
	}
	return nil
}

// validateFieldLength returns an error if value exceeds maxLength.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name on the OS filesystem.
func LoadConfig(nameOrPath string) (*Config, error) {
	return LoadConfigFs(afero.NewOsFs(), nameOrPath)
}

// LoadConfigFs loads configuration from fsys.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields missing from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfigFs(fsys afero.Fs, nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(fsys, nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFileStrict(fsys, configPath, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths returns the paths tried for a config name, in order:
// current directory then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing path from SearchPaths.
func resolveConfigPath(fsys afero.Fs, name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(fsys, p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
