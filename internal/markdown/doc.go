// Package markdown parses a small markdown dialect into an htmltree.
//
// The dialect covers headings, fenced code, block quotes, flat ordered and
// unordered lists, and paragraphs. Inline text supports bold (**), italic
// (* and _), code (`), links and images. Parsing happens in three stages:
//
//  1. SplitBlocks cuts the document on blank lines.
//  2. Classify and Normalize identify each block and strip its syntax.
//  3. TextToSpans splits inline text into typed spans, which
//     BlockToElement turns into leaf and parent nodes.
//
// There is no recovery from malformed input: an unmatched inline delimiter
// is an error, not literal text.
package markdown
