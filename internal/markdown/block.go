package markdown

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// BlockKind identifies the kind of a markdown block.
type BlockKind int

const (
	Paragraph BlockKind = iota
	Heading
	CodeBlock
	Quote
	UnorderedList
	OrderedList
)

func (k BlockKind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case CodeBlock:
		return "code"
	case Quote:
		return "quote"
	case UnorderedList:
		return "unordered_list"
	case OrderedList:
		return "ordered_list"
	default:
		return fmt.Sprintf("BlockKind(%d)", int(k))
	}
}

const (
	codeFence        = "```"
	unorderedMarker  = "- "
	quoteMarker      = ">"
	minCodeBlockSize = 2 * len(codeFence)

	// Characters stripped from each list line.
	unorderedMarkerWidth = 2
	orderedMarkerWidth   = 3
)

// Precompiled block patterns.
var (
	// One to six '#' then a space, at the start of the block
	headingPattern = regexp.MustCompile(`^#{1,6} `)

	// Blocks are separated by one or more blank lines
	blockSeparator = regexp.MustCompile(`\n{2,}`)
)

// SplitBlocks splits a document on blank lines, trims surrounding
// whitespace from each block and drops blocks left empty.
func SplitBlocks(markdown string) []string {
	raw := blockSeparator.Split(markdown, -1)
	blocks := make([]string, 0, len(raw))
	for _, b := range raw {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// Classify returns the kind of a single block. The first matching rule
// wins; anything unrecognised is a Paragraph.
func Classify(block string) BlockKind {
	if headingPattern.MatchString(block) {
		return Heading
	}
	if len(block) >= minCodeBlockSize &&
		strings.HasPrefix(block, codeFence) &&
		strings.HasSuffix(block, codeFence) {
		return CodeBlock
	}

	lines := strings.Split(block, "\n")
	switch {
	case allLines(lines, func(_ int, l string) bool { return strings.HasPrefix(l, quoteMarker) }):
		return Quote
	case allLines(lines, func(_ int, l string) bool { return strings.HasPrefix(l, unorderedMarker) }):
		return UnorderedList
	case allLines(lines, func(i int, l string) bool { return strings.HasPrefix(l, orderedMarker(i)) }):
		return OrderedList
	default:
		return Paragraph
	}
}

// Normalize strips the block syntax of kind from block. Lists are
// normalized per item by the tree builder and are rejected here.
func Normalize(block string, kind BlockKind) (string, error) {
	switch kind {
	case Paragraph:
		return strings.Join(strings.Split(block, "\n"), " "), nil
	case CodeBlock:
		// Drop the opening fence and its newline, and the closing fence.
		if len(block) < len(codeFence)+1+len(codeFence) {
			return "", nil
		}
		return block[len(codeFence)+1 : len(block)-len(codeFence)], nil
	case Quote:
		lines := strings.Split(block, "\n")
		for i, l := range lines {
			lines[i] = strings.TrimLeft(l, "> ")
		}
		return strings.Join(lines, " "), nil
	case Heading:
		return strings.TrimLeft(block, "# "), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownBlockKind, kind)
	}
}

// HeadingLevel returns the number of leading '#' characters in block.
func HeadingLevel(block string) int {
	return len(block) - len(strings.TrimLeft(block, "#"))
}

// ListItems returns the lines of a list block with their markers removed.
// Markers have a fixed width: 2 characters for "- " and 3 for "N. ", so
// from item 10 on the rest of the number marker stays in the item text.
func ListItems(block string, kind BlockKind) ([]string, error) {
	var width int
	switch kind {
	case UnorderedList:
		width = unorderedMarkerWidth
	case OrderedList:
		width = orderedMarkerWidth
	default:
		return nil, fmt.Errorf("%w: %s is not a list", ErrUnknownBlockKind, kind)
	}

	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = l[min(width, len(l)):]
	}
	return lines, nil
}

// orderedMarker returns the prefix expected on line i of an ordered list.
func orderedMarker(i int) string {
	return strconv.Itoa(i+1) + ". "
}

func allLines(lines []string, pred func(int, string) bool) bool {
	for i, l := range lines {
		if !pred(i, l) {
			return false
		}
	}
	return true
}
