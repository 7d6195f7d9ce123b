package htmltree

import "errors"

// Sentinel errors for tree rendering.
var (
	// Structure errors.
	ErrMissingTag  = errors.New("parent node requires a tag")
	ErrNoChildren  = errors.New("parent node requires at least one child")
	ErrUnknownNode = errors.New("unknown node type")

	// Leaf errors.
	ErrEmptyValue = errors.New("leaf node requires a value")
)
