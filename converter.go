package sitegen

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/alnah/go-sitegen/internal/assets"
	"github.com/alnah/go-sitegen/internal/fileutil"
	"github.com/alnah/go-sitegen/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.SourcePreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.NativeConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.PageInjector         = pipeline.TemplateInjection{}
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
)

// Converter turns one Markdown page into a complete HTML page.
// Create with NewConverter. A Converter is safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	fs            afero.Fs
	assetLoader   assets.AssetLoader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	pageInjector  pipeline.PageInjector
	cssInjector   pipeline.CSSInjector
}

// NewConverter creates a Converter with the native engine and the embedded
// default template. Use options to customize behavior.
// Returns error if the engine is unknown, or if the style or template
// cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		fs:           afero.NewOsFs(),
		preprocessor: &pipeline.SourcePreprocessor{},
		pageInjector: pipeline.TemplateInjection{},
		cssInjector:  &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.htmlConverter == nil {
		if err := c.resolveEngine(); err != nil {
			return nil, err
		}
	}

	if c.assetLoader == nil {
		resolver, err := assets.NewAssetResolver(c.fs, c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}
	if err := c.resolveTemplate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Convert runs the page pipeline on input.
// The context is used for cancellation.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	tmpl := c.cfg.template
	if input.Template != "" {
		tmpl = input.Template
	}
	if err := pipeline.ValidateTemplate(tmpl); err != nil {
		return nil, err
	}

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	title, err := ExtractTitle(mdContent)
	if err != nil {
		return nil, err
	}

	content, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	page, err := c.pageInjector.InjectPage(ctx, tmpl, title, content)
	if err != nil {
		return nil, fmt.Errorf("injecting page: %w", err)
	}

	// Converter style first, input CSS last so it can override.
	cssContent := c.cfg.resolvedStyle
	if input.CSS != "" {
		if cssContent != "" {
			cssContent += "\n"
		}
		cssContent += input.CSS
	}
	page = c.cssInjector.InjectCSS(ctx, page, cssContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	basePath := c.cfg.basePath
	if input.BasePath != "" {
		basePath = input.BasePath
	}
	page, err = pipeline.RewriteBasePath(page, basePath)
	if err != nil {
		return nil, fmt.Errorf("rewriting base path: %w", err)
	}

	return &Result{
		Title:   title,
		Content: content,
		HTML:    []byte(page),
	}, nil
}

// resolveEngine creates the HTML converter for the configured engine.
func (c *Converter) resolveEngine() error {
	conv, err := pipeline.NewHTMLConverter(c.cfg.engine, c.cfg.pretty)
	if err != nil {
		return err
	}
	if native, ok := conv.(*pipeline.NativeConverter); ok {
		native.BaseDepth = c.cfg.baseDepth
	}
	c.htmlConverter = conv
	return nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		return nil
	}

	if fileutil.IsFilePath(input) {
		content, err := afero.ReadFile(c.fs, input)
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.cfg.resolvedStyle = css
	return nil
}

// resolveTemplate loads the default template unless WithTemplate set one.
func (c *Converter) resolveTemplate() error {
	if c.cfg.template == "" {
		tmpl, err := c.assetLoader.LoadTemplate(assets.DefaultTemplateName)
		if err != nil {
			return fmt.Errorf("loading default template: %w", err)
		}
		c.cfg.template = tmpl
	}
	if err := pipeline.ValidateTemplate(c.cfg.template); err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}
	return nil
}
