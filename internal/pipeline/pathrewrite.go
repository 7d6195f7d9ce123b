package pipeline

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// rewrittenAttrs are the attributes whose root-relative values get the base path.
var rewrittenAttrs = map[string]bool{
	"href": true,
	"src":  true,
}

// NormalizeBasePath returns basePath with exactly one leading and one
// trailing slash. An empty base path is the site root "/".
func NormalizeBasePath(basePath string) string {
	trimmed := strings.Trim(basePath, "/")
	if trimmed == "" {
		return "/"
	}
	return "/" + trimmed + "/"
}

// RewriteBasePath prefixes root-relative href and src values with basePath,
// so that a site built for "/repo/" links "/blog" as "/repo/blog".
// If basePath is the root, returns the HTML unchanged.
//
// Rewrites any element's href or src whose value starts with a single "/".
// Does NOT rewrite:
//   - protocol-relative URLs ("//cdn.example.com")
//   - relative paths, anchors and absolute URLs
//   - text content, comments and script bodies
//
// Tags that are not rewritten are copied byte for byte. Rewritten tags are
// re-serialized, which lowercases names and escapes attribute values.
func RewriteBasePath(htmlContent, basePath string) (string, error) {
	basePath = NormalizeBasePath(basePath)
	if basePath == "/" {
		return htmlContent, nil
	}

	z := html.NewTokenizer(strings.NewReader(htmlContent))
	var buf strings.Builder
	buf.Grow(len(htmlContent))

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", err
			}
			return buf.String(), nil
		case html.StartTagToken, html.SelfClosingTagToken:
			// Token() lowercases the tokenizer buffer in place, so copy first.
			raw := string(z.Raw())
			tok := z.Token()
			if rewriteAttrs(tok.Attr, basePath) {
				buf.WriteString(tok.String())
			} else {
				buf.WriteString(raw)
			}
		default:
			buf.Write(z.Raw())
		}
	}
}

// rewriteAttrs rewrites attrs in place and reports whether any changed.
func rewriteAttrs(attrs []html.Attribute, basePath string) bool {
	changed := false
	for i, a := range attrs {
		if !rewrittenAttrs[a.Key] || !isRootRelative(a.Val) {
			continue
		}
		attrs[i].Val = basePath + strings.TrimPrefix(a.Val, "/")
		changed = true
	}
	return changed
}

// isRootRelative returns true for "/path" but not "//host/path".
func isRootRelative(path string) bool {
	return strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//")
}
