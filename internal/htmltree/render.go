package htmltree

import (
	"fmt"
	"strings"
)

// indentUnit is the whitespace added per depth level in pretty output.
const indentUnit = "  "

// compactTags never indent their children, even in pretty output.
var compactTags = map[string]bool{
	"p":  true,
	"li": true,
}

// Options controls rendering.
type Options struct {
	// Pretty indents children by depth. Depths come from Stamp.
	Pretty bool
}

// Render renders n and its descendants to HTML.
// Values and attribute values are written as-is, without escaping.
func Render(n Node, opts Options) (string, error) {
	var b strings.Builder
	if err := render(&b, n, opts); err != nil {
		return "", err
	}
	return b.String(), nil
}

func render(b *strings.Builder, n Node, opts Options) error {
	switch v := n.(type) {
	case *Leaf:
		if v == nil {
			return fmt.Errorf("%w: nil leaf", ErrUnknownNode)
		}
		return renderLeaf(b, v)
	case *Parent:
		if v == nil {
			return fmt.Errorf("%w: nil parent", ErrUnknownNode)
		}
		return renderParent(b, v, opts)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownNode, n)
	}
}

func renderLeaf(b *strings.Builder, l *Leaf) error {
	if !l.hasValue {
		if l.tag == "" {
			return ErrEmptyValue
		}
		return fmt.Errorf("%w: <%s>", ErrEmptyValue, l.tag)
	}
	if l.tag == "" {
		b.WriteString(l.value)
		return nil
	}

	writeOpenTag(b, l.tag, l.attrs)
	if l.SelfClosing() {
		return nil
	}
	b.WriteString(l.value)
	writeCloseTag(b, l.tag)
	return nil
}

func renderParent(b *strings.Builder, p *Parent, opts Options) error {
	if p.tag == "" {
		return ErrMissingTag
	}
	if len(p.children) == 0 {
		return fmt.Errorf("%w: <%s>", ErrNoChildren, p.tag)
	}

	indent := opts.Pretty && len(p.children) > 1 && !compactTags[p.tag]

	writeOpenTag(b, p.tag, p.attrs)
	for _, child := range p.children {
		if indent && child != nil {
			writeIndent(b, child.Depth()+1)
		}
		if err := render(b, child, opts); err != nil {
			return err
		}
	}
	if indent {
		writeIndent(b, p.depth+1)
	}
	writeCloseTag(b, p.tag)
	return nil
}

func writeOpenTag(b *strings.Builder, tag string, attrs []Attribute) {
	b.WriteByte('<')
	b.WriteString(tag)
	b.WriteString(renderAttrs(attrs))
	b.WriteByte('>')
}

func writeCloseTag(b *strings.Builder, tag string) {
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

func writeIndent(b *strings.Builder, levels int) {
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(indentUnit, levels))
}

// renderAttrs formats attributes as ` key="value"` pairs in insertion order.
func renderAttrs(attrs []Attribute) string {
	if len(attrs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(a.Value)
		b.WriteByte('"')
	}
	return b.String()
}
