package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Template placeholders replaced by InjectPage.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// ErrMissingPlaceholder indicates a page template without a content placeholder.
var ErrMissingPlaceholder = errors.New("template missing placeholder")

// ValidateTemplate checks that tmpl has somewhere to put the page content.
// A missing title placeholder is allowed.
func ValidateTemplate(tmpl string) error {
	if !strings.Contains(tmpl, ContentPlaceholder) {
		return fmt.Errorf("%w: %s", ErrMissingPlaceholder, ContentPlaceholder)
	}
	return nil
}

// PageInjector defines the contract for assembling a page from a template.
type PageInjector interface {
	InjectPage(ctx context.Context, tmpl, title, content string) (string, error)
}

// TemplateInjection substitutes the title and content placeholders.
type TemplateInjection struct{}

// InjectPage replaces every title and content placeholder in tmpl.
// Placeholders appearing inside title or content are left as-is.
func (TemplateInjection) InjectPage(ctx context.Context, tmpl, title, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r := strings.NewReplacer(
		TitlePlaceholder, title,
		ContentPlaceholder, content,
	)
	return r.Replace(tmpl), nil
}

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes "</" so the stylesheet cannot close its <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
