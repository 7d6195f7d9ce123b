package markdown

import "errors"

// Sentinel errors for markdown parsing.
var (
	ErrUnmatchedDelimiter = errors.New("unmatched inline delimiter")
	ErrUnknownBlockKind   = errors.New("unknown block kind")
	ErrUnknownSpanKind    = errors.New("unknown span kind")
	ErrEmptyDocument      = errors.New("document has no blocks")
)
