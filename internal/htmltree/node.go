package htmltree

// selfClosingTags lists void elements rendered without a closing tag.
var selfClosingTags = map[string]bool{
	"img":   true,
	"br":    true,
	"hr":    true,
	"input": true,
	"meta":  true,
	"link":  true,
}

// Attribute is a single HTML attribute. Attributes render in the order given.
type Attribute struct {
	Key   string
	Value string
}

// Attr is shorthand for building an Attribute.
func Attr(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Node is an element of the tree: either a *Leaf or a *Parent.
type Node interface {
	// Tag returns the element name, or "" for raw text.
	Tag() string
	// Depth returns the nesting depth assigned by Stamp.
	Depth() int
	// Attributes returns a copy of the node's attributes.
	Attributes() []Attribute

	node()
}

// Compile-time interface implementation checks.
var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Parent)(nil)
)

// Leaf is a node without children. An untagged leaf renders its value as raw
// text. The zero Leaf carries no value and fails to render.
type Leaf struct {
	tag      string
	value    string
	hasValue bool
	attrs    []Attribute
	depth    int
}

// NewLeaf creates a leaf with the given tag, value and attributes.
// An empty value is valid and renders as an empty element.
func NewLeaf(tag, value string, attrs ...Attribute) *Leaf {
	return &Leaf{
		tag:      tag,
		value:    value,
		hasValue: true,
		attrs:    cloneAttrs(attrs),
	}
}

// Text creates an untagged leaf that renders as raw text.
func Text(value string) *Leaf {
	return NewLeaf("", value)
}

func (l *Leaf) Tag() string { return l.tag }

func (l *Leaf) Depth() int { return l.depth }

func (l *Leaf) Attributes() []Attribute { return cloneAttrs(l.attrs) }

// Value returns the leaf's text and whether one was set.
func (l *Leaf) Value() (string, bool) { return l.value, l.hasValue }

// SelfClosing reports whether the leaf renders as a void element.
func (l *Leaf) SelfClosing() bool { return selfClosingTags[l.tag] }

func (*Leaf) node() {}

// Parent is an element node with ordered children.
type Parent struct {
	tag      string
	children []Node
	attrs    []Attribute
	depth    int
}

// NewParent creates a parent node. Tag and children are checked at render
// time so that trees can be assembled before they are complete.
func NewParent(tag string, children []Node, attrs ...Attribute) *Parent {
	return &Parent{
		tag:      tag,
		children: append([]Node(nil), children...),
		attrs:    cloneAttrs(attrs),
	}
}

func (p *Parent) Tag() string { return p.tag }

func (p *Parent) Depth() int { return p.depth }

func (p *Parent) Attributes() []Attribute { return cloneAttrs(p.attrs) }

// Children returns a copy of the node's children.
func (p *Parent) Children() []Node { return append([]Node(nil), p.children...) }

func (*Parent) node() {}

// Stamp returns a copy of n with n at the given depth and every descendant
// one level deeper than its parent. The input tree is left untouched.
func Stamp(n Node, depth int) Node {
	switch v := n.(type) {
	case *Leaf:
		if v == nil {
			return n
		}
		c := *v
		c.depth = depth
		return &c
	case *Parent:
		if v == nil {
			return n
		}
		children := make([]Node, len(v.children))
		for i, child := range v.children {
			children[i] = Stamp(child, depth+1)
		}
		return &Parent{
			tag:      v.tag,
			children: children,
			attrs:    v.attrs,
			depth:    depth,
		}
	default:
		return n
	}
}

func cloneAttrs(attrs []Attribute) []Attribute {
	if len(attrs) == 0 {
		return nil
	}
	return append([]Attribute(nil), attrs...)
}
