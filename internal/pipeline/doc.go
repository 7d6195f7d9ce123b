// Package pipeline implements the stages that turn one markdown document into
// one HTML page.
//
// Stages, in order:
//   - Markdown preprocessing (line endings, Unicode normalization)
//   - Markdown to HTML fragment conversion, with one of two engines:
//     the native engine (internal/markdown + internal/htmltree) or goldmark
//   - Page assembly: title and content substitution into a template,
//     optional CSS injection
//   - Base path rewriting of root-relative href and src attributes
//
// File discovery, template lookup and writing are handled by the root
// sitegen package. This package works on strings only.
package pipeline
