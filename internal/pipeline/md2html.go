package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-sitegen/internal/htmltree"
	"github.com/alnah/go-sitegen/internal/markdown"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// ErrUnknownEngine indicates an engine name that NewHTMLConverter does not know.
var ErrUnknownEngine = errors.New("unknown markdown engine")

// Engine names accepted by NewHTMLConverter.
const (
	EngineNative   = "native"
	EngineGoldmark = "goldmark"
)

// Engines lists the supported engine names, default first.
var Engines = []string{EngineNative, EngineGoldmark}

// fragmentWrapper matches the root element produced by the native engine.
const fragmentWrapper = "<div>%s</div>"

// HTMLConverter abstracts Markdown to HTML fragment conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// NewHTMLConverter returns the converter for engine. An empty engine selects
// the native engine. pretty only affects the native engine.
func NewHTMLConverter(engine string, pretty bool) (HTMLConverter, error) {
	switch engine {
	case "", EngineNative:
		return &NativeConverter{Pretty: pretty}, nil
	case EngineGoldmark:
		return NewGoldmarkConverter(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}

// NativeConverter converts the site's markdown dialect with internal/markdown
// and renders the tree with internal/htmltree.
type NativeConverter struct {
	// Pretty indents nested elements.
	Pretty bool
	// BaseDepth is the depth of the root div, shifting all indentation.
	BaseDepth int
}

// ToHTML converts content to a single <div> fragment.
// Syntax errors are returned as-is so callers can match them with errors.Is.
func (c *NativeConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tree, err := markdown.DocumentToTree(content)
	if err != nil {
		return "", err
	}
	out, err := htmltree.Render(htmltree.Stamp(tree, c.BaseDepth), htmltree.Options{Pretty: c.Pretty})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTMLConversion, err)
	}
	return out, nil
}

// GoldmarkConverter converts CommonMark with GFM extensions using goldmark.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and syntax highlighting.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes, styled by the page stylesheet
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Anchors for in-page links
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to a <div> fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: fmt.Sprintf(fragmentWrapper, buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
