package pipeline

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// byteOrderMark is stripped from the start of documents saved by some editors.
const byteOrderMark = "\uFEFF"

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// SourcePreprocessor cleans up markdown sources before conversion.
type SourcePreprocessor struct{}

// PreprocessMarkdown strips a leading byte order mark, normalizes line
// endings to \n and applies Unicode NFC so that composed and decomposed
// accents produce identical output.
func (p *SourcePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, byteOrderMark)
	content = normalizeLineEndings(content)
	return norm.NFC.String(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
