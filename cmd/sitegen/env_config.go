package main

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/go-sitegen/internal/config"
)

// envPrefix starts every environment variable read by the CLI.
const envPrefix = "SITEGEN_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // SITEGEN_CONFIG: config file name or path
	ContentDir string // SITEGEN_CONTENT_DIR: markdown source directory
	StaticDir  string // SITEGEN_STATIC_DIR: static files directory
	OutputDir  string // SITEGEN_OUTPUT_DIR: generated site directory
	Template   string // SITEGEN_TEMPLATE: site template file
	BasePath   string // SITEGEN_BASEPATH: URL prefix
	Engine     string // SITEGEN_ENGINE: native, goldmark
	Style      string // SITEGEN_STYLE: CSS style name or path
	Workers    int    // SITEGEN_WORKERS: parallel page conversions
	Pretty     *bool  // SITEGEN_PRETTY: indent generated HTML
}

// knownEnvVars lists valid SITEGEN_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SITEGEN_CONFIG":      true,
	"SITEGEN_CONTENT_DIR": true,
	"SITEGEN_STATIC_DIR":  true,
	"SITEGEN_OUTPUT_DIR":  true,
	"SITEGEN_TEMPLATE":    true,
	"SITEGEN_BASEPATH":    true,
	"SITEGEN_ENGINE":      true,
	"SITEGEN_STYLE":       true,
	"SITEGEN_WORKERS":     true,
	"SITEGEN_PRETTY":      true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparsable numbers and booleans are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("SITEGEN_CONFIG"),
		ContentDir: getenv("SITEGEN_CONTENT_DIR"),
		StaticDir:  getenv("SITEGEN_STATIC_DIR"),
		OutputDir:  getenv("SITEGEN_OUTPUT_DIR"),
		Template:   getenv("SITEGEN_TEMPLATE"),
		BasePath:   getenv("SITEGEN_BASEPATH"),
		Engine:     getenv("SITEGEN_ENGINE"),
		Style:      getenv("SITEGEN_STYLE"),
	}

	if workers := getenv("SITEGEN_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	if pretty := getenv("SITEGEN_PRETTY"); pretty != "" {
		if p, err := strconv.ParseBool(pretty); err == nil {
			cfg.Pretty = &p
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized SITEGEN_* variables.
// Helps catch typos like SITEGEN_OUTPUT instead of SITEGEN_OUTPUT_DIR.
func warnUnknownEnvVars(log zerolog.Logger, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			log.Warn().Str("variable", name).Msg("unknown environment variable (typo?)")
		}
	}
}

// applyEnvConfig applies environment variable values over the config file.
// Only set variables override, giving: flags > env vars > config file > defaults
// (flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	overrides := []struct {
		value string
		field *string
	}{
		{env.ContentDir, &cfg.Content},
		{env.StaticDir, &cfg.Static},
		{env.OutputDir, &cfg.Output},
		{env.Template, &cfg.Template},
		{env.BasePath, &cfg.BasePath},
		{env.Engine, &cfg.Engine},
		{env.Style, &cfg.Style},
	}
	for _, o := range overrides {
		if o.value != "" {
			*o.field = o.value
		}
	}

	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
	if env.Pretty != nil {
		cfg.Pretty = *env.Pretty
	}
}
