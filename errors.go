package sitegen

import (
	"errors"

	"github.com/alnah/go-sitegen/internal/assets"
	"github.com/alnah/go-sitegen/internal/markdown"
	"github.com/alnah/go-sitegen/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrMissingTitle  = errors.New("first line must be an h1 heading")

	// Engine and syntax errors.
	ErrUnknownEngine      = pipeline.ErrUnknownEngine
	ErrHTMLConversion     = pipeline.ErrHTMLConversion
	ErrUnmatchedDelimiter = markdown.ErrUnmatchedDelimiter
	ErrEmptyDocument      = markdown.ErrEmptyDocument

	// Template errors.
	ErrMissingPlaceholder = pipeline.ErrMissingPlaceholder
	ErrTemplateRead       = errors.New("failed to read template")

	// Asset loading errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Site build errors.
	ErrContentNotFound = errors.New("content directory not found")
	ErrStaticCopy      = errors.New("failed to copy static files")
	ErrOutputDir       = errors.New("failed to prepare output directory")
	ErrPageRead        = errors.New("failed to read page")
	ErrPageWrite       = errors.New("failed to write page")
)
