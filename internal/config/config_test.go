package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Content != "content" {
		t.Errorf("Content = %q, want %q", cfg.Content, "content")
	}
	if cfg.Static != "static" {
		t.Errorf("Static = %q, want %q", cfg.Static, "static")
	}
	if cfg.Output != "public" {
		t.Errorf("Output = %q, want %q", cfg.Output, "public")
	}
	if cfg.Template != "template.html" {
		t.Errorf("Template = %q, want %q", cfg.Template, "template.html")
	}
	if cfg.BasePath != "/" {
		t.Errorf("BasePath = %q, want %q", cfg.BasePath, "/")
	}
	if cfg.Pretty {
		t.Error("Pretty = true, want false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty value is valid", "", 10, false},
		{"value at limit is valid", "1234567890", 10, false},
		{"value over limit returns error", "12345678901", 10, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("test.field", tt.value, tt.maxLength)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Fatalf("error = %v, want ErrFieldTooLong", err)
				}
				if !strings.Contains(err.Error(), "test.field") {
					t.Errorf("error should name the field, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"defaults", func(c *Config) {}, nil},
		{"goldmark engine", func(c *Config) { c.Engine = "goldmark" }, nil},
		{"empty engine", func(c *Config) { c.Engine = "" }, nil},
		{"unknown engine", func(c *Config) { c.Engine = "pandoc" }, ErrInvalidField},
		{"negative workers", func(c *Config) { c.Workers = -1 }, ErrInvalidField},
		{"too many workers", func(c *Config) { c.Workers = MaxWorkers + 1 }, ErrInvalidField},
		{"max workers", func(c *Config) { c.Workers = MaxWorkers }, nil},
		{"base path with query", func(c *Config) { c.BasePath = "/repo/?x=1" }, ErrInvalidField},
		{"base path with space", func(c *Config) { c.BasePath = "/my repo/" }, ErrInvalidField},
		{"output equals content", func(c *Config) { c.Output = "./content" }, ErrInvalidField},
		{"output equals static", func(c *Config) { c.Output = "static/" }, ErrInvalidField},
		{"long base path", func(c *Config) { c.BasePath = "/" + strings.Repeat("a", MaxBasePathLength) }, ErrFieldTooLong},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfigFs
// ---------------------------------------------------------------------------

func TestLoadConfigFs(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	files := map[string]string{
		"site.yaml":         "content: docs\noutput: dist\npretty: true\nbasePath: /repo/\n",
		"yml.yml":           "engine: goldmark\n",
		"/etc/site.yaml":    "workers: 8\n",
		"unknown.yaml":      "content: docs\ncolour: red\n",
		"invalid.yaml":      "engine: pandoc\n",
		"syntax.yaml":       "content: [docs\n",
		"/abs/empty.yaml":   "",
		"both.yaml":         "static: yaml\n",
		"both.yml":          "static: yml\n",
		"/etc/outside.yaml": "output: content\n",
	}
	for path, content := range files {
		if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("by name", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFs(fsys, "site")
		if err != nil {
			t.Fatalf("LoadConfigFs() unexpected error: %v", err)
		}
		if cfg.Content != "docs" || cfg.Output != "dist" || !cfg.Pretty || cfg.BasePath != "/repo/" {
			t.Errorf("LoadConfigFs() = %+v", cfg)
		}
		// Missing keys keep defaults.
		if cfg.Template != "template.html" || cfg.Static != "static" {
			t.Errorf("defaults not preserved: %+v", cfg)
		}
	})

	t.Run("yml extension", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFs(fsys, "yml")
		if err != nil {
			t.Fatalf("LoadConfigFs() unexpected error: %v", err)
		}
		if cfg.Engine != "goldmark" {
			t.Errorf("Engine = %q, want goldmark", cfg.Engine)
		}
	})

	t.Run("yaml preferred over yml", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFs(fsys, "both")
		if err != nil {
			t.Fatalf("LoadConfigFs() unexpected error: %v", err)
		}
		if cfg.Static != "yaml" {
			t.Errorf("Static = %q, want yaml", cfg.Static)
		}
	})

	t.Run("by path", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFs(fsys, "/etc/site.yaml")
		if err != nil {
			t.Fatalf("LoadConfigFs() unexpected error: %v", err)
		}
		if cfg.Workers != 8 {
			t.Errorf("Workers = %d, want 8", cfg.Workers)
		}
	})

	errTests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty name", "", ErrEmptyConfigName},
		{"name not found", "nope", ErrConfigNotFound},
		{"path not found", "/etc/nope.yaml", ErrConfigNotFound},
		{"unknown field", "unknown", ErrConfigParse},
		{"syntax error", "syntax", ErrConfigParse},
		{"empty file", "/abs/empty.yaml", ErrConfigParse},
		{"invalid engine", "invalid", ErrInvalidField},
		{"output equals content", "/etc/outside.yaml", ErrInvalidField},
	}

	for _, tt := range errTests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadConfigFs(fsys, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfigFs(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("site")
	if len(paths) < 2 {
		t.Fatalf("SearchPaths() = %v, want at least local paths", paths)
	}
	if paths[0] != "site.yaml" || paths[1] != "site.yml" {
		t.Errorf("SearchPaths() local paths = %v", paths[:2])
	}
	for _, p := range paths[2:] {
		if !strings.Contains(p, appDir) {
			t.Errorf("user path %q missing %q", p, appDir)
		}
	}
}
