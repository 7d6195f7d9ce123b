package markdown

import (
	"fmt"

	"github.com/alnah/go-sitegen/internal/htmltree"
)

// rootTag wraps every block of a document.
const rootTag = "div"

// DocumentToTree parses a whole document into a tree rooted at a div with
// one child per block. A document without blocks is an error.
func DocumentToTree(markdown string) (*htmltree.Parent, error) {
	blocks := SplitBlocks(markdown)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrEmptyDocument, htmltree.ErrNoChildren)
	}

	children := make([]htmltree.Node, 0, len(blocks))
	for i, block := range blocks {
		el, err := BlockToElement(block)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i+1, err)
		}
		children = append(children, el)
	}
	return htmltree.NewParent(rootTag, children), nil
}

// BlockToElement builds the subtree for a single block.
func BlockToElement(block string) (*htmltree.Parent, error) {
	kind := Classify(block)
	switch kind {
	case Paragraph:
		return inlineElement("p", block, kind)
	case Quote:
		return inlineElement("blockquote", block, kind)
	case Heading:
		return inlineElement(fmt.Sprintf("h%d", HeadingLevel(block)), block, kind)
	case CodeBlock:
		text, err := Normalize(block, kind)
		if err != nil {
			return nil, err
		}
		code := htmltree.NewParent("code", []htmltree.Node{htmltree.Text(text)})
		return htmltree.NewParent("pre", []htmltree.Node{code}), nil
	case UnorderedList:
		return listElement("ul", block, kind)
	case OrderedList:
		return listElement("ol", block, kind)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBlockKind, kind)
	}
}

// SpanToLeaf converts a span into the leaf that renders it.
func SpanToLeaf(s Span) (*htmltree.Leaf, error) {
	switch s.Kind {
	case Plain:
		return htmltree.Text(s.Text), nil
	case Bold:
		return htmltree.NewLeaf("b", s.Text), nil
	case Italic:
		return htmltree.NewLeaf("i", s.Text), nil
	case Code:
		return htmltree.NewLeaf("code", s.Text), nil
	case Link:
		return htmltree.NewLeaf("a", s.Text, htmltree.Attr("href", s.URL)), nil
	case Image:
		return htmltree.NewLeaf("img", s.Text,
			htmltree.Attr("src", s.URL),
			htmltree.Attr("alt", s.Text),
		), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSpanKind, s.Kind)
	}
}

// TextToChildren splits inline text into leaf nodes.
func TextToChildren(text string) ([]htmltree.Node, error) {
	spans, err := TextToSpans(text)
	if err != nil {
		return nil, err
	}
	nodes := make([]htmltree.Node, 0, len(spans))
	for _, s := range spans {
		leaf, err := SpanToLeaf(s)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, leaf)
	}
	return nodes, nil
}

func inlineElement(tag, block string, kind BlockKind) (*htmltree.Parent, error) {
	text, err := Normalize(block, kind)
	if err != nil {
		return nil, err
	}
	children, err := TextToChildren(text)
	if err != nil {
		return nil, err
	}
	return htmltree.NewParent(tag, children), nil
}

func listElement(tag, block string, kind BlockKind) (*htmltree.Parent, error) {
	items, err := ListItems(block, kind)
	if err != nil {
		return nil, err
	}
	children := make([]htmltree.Node, 0, len(items))
	for _, item := range items {
		nodes, err := TextToChildren(item)
		if err != nil {
			return nil, err
		}
		children = append(children, htmltree.NewParent("li", nodes))
	}
	return htmltree.NewParent(tag, children), nil
}
