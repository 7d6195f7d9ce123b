package htmltree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestRenderLeaf - Leaf rendering
// ---------------------------------------------------------------------------

func TestRenderLeaf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		leaf    *Leaf
		want    string
		wantErr error
	}{
		{
			name: "paragraph",
			leaf: NewLeaf("p", "This is a paragraph of text."),
			want: "<p>This is a paragraph of text.</p>",
		},
		{
			name: "link with href",
			leaf: NewLeaf("a", "Click me!", Attr("href", "https://www.google.com")),
			want: `<a href="https://www.google.com">Click me!</a>`,
		},
		{
			name: "raw text",
			leaf: Text("just text"),
			want: "just text",
		},
		{
			name: "image is self-closing and keeps attribute order",
			leaf: NewLeaf("img", "alt text", Attr("src", "http://x/y.png"), Attr("alt", "alt text")),
			want: `<img src="http://x/y.png" alt="alt text">`,
		},
		{
			name: "line break",
			leaf: NewLeaf("br", ""),
			want: "<br>",
		},
		{
			name: "empty value is valid",
			leaf: NewLeaf("code", ""),
			want: "<code></code>",
		},
		{
			name: "empty raw text is valid",
			leaf: Text(""),
			want: "",
		},
		{
			name:    "zero leaf has no value",
			leaf:    &Leaf{},
			wantErr: ErrEmptyValue,
		},
		{
			name: "value is not escaped",
			leaf: NewLeaf("b", "a < b & c"),
			want: "<b>a < b & c</b>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Render(tt.leaf, Options{})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Render() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRenderParent - Parent rendering, compact
// ---------------------------------------------------------------------------

func TestRenderParent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		node    Node
		want    string
		wantErr error
	}{
		{
			name: "mixed children",
			node: NewParent("p", []Node{
				NewLeaf("b", "Bold text"),
				Text("Normal text"),
				NewLeaf("i", "italic text"),
				Text("Normal text"),
			}),
			want: "<p><b>Bold text</b>Normal text<i>italic text</i>Normal text</p>",
		},
		{
			name: "nested parents",
			node: NewParent("div", []Node{
				NewParent("ul", []Node{
					NewParent("li", []Node{Text("one")}),
					NewParent("li", []Node{Text("two")}),
				}),
			}),
			want: "<div><ul><li>one</li><li>two</li></ul></div>",
		},
		{
			name: "parent attributes",
			node: NewParent("div", []Node{Text("x")}, Attr("class", "a"), Attr("id", "b")),
			want: `<div class="a" id="b">x</div>`,
		},
		{
			name:    "missing tag",
			node:    NewParent("", []Node{Text("x")}),
			wantErr: ErrMissingTag,
		},
		{
			name:    "no children",
			node:    NewParent("div", nil),
			wantErr: ErrNoChildren,
		},
		{
			name:    "nested child error propagates",
			node:    NewParent("div", []Node{NewParent("p", nil)}),
			wantErr: ErrNoChildren,
		},
		{
			name:    "child leaf without value",
			node:    NewParent("div", []Node{&Leaf{tag: "b"}}),
			wantErr: ErrEmptyValue,
		},
		{
			name:    "nil child",
			node:    NewParent("div", []Node{nil}),
			wantErr: ErrUnknownNode,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Render(tt.node, Options{})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Render() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRenderPretty - Indented output
// ---------------------------------------------------------------------------

func TestRenderPretty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		node  Node
		depth int
		want  string
	}{
		{
			name: "children indented by child depth",
			node: NewParent("div", []Node{
				NewLeaf("h1", "Title"),
				NewLeaf("p", "Body"),
			}),
			want: "<div>\n    <h1>Title</h1>\n    <p>Body</p>\n  </div>",
		},
		{
			name: "single child is not indented",
			node: NewParent("div", []Node{NewLeaf("p", "only")}),
			want: "<div><p>only</p></div>",
		},
		{
			name: "paragraph children stay inline",
			node: NewParent("p", []Node{Text("a "), NewLeaf("b", "b")}),
			want: "<p>a <b>b</b></p>",
		},
		{
			name: "list items stay inline",
			node: NewParent("li", []Node{Text("a "), NewLeaf("i", "b")}),
			want: "<li>a <i>b</i></li>",
		},
		{
			name: "nested list",
			node: NewParent("ul", []Node{
				NewParent("li", []Node{Text("one")}),
				NewParent("li", []Node{Text("two")}),
			}),
			depth: 1,
			want:  "<ul>\n      <li>one</li>\n      <li>two</li>\n    </ul>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Render(Stamp(tt.node, tt.depth), Options{Pretty: true})
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Render() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRender_Idempotent(t *testing.T) {
	t.Parallel()

	tree := Stamp(NewParent("div", []Node{
		NewParent("p", []Node{Text("x "), NewLeaf("code", "y")}),
		NewLeaf("h2", "z"),
	}), 0)

	for _, pretty := range []bool{false, true} {
		first, err := Render(tree, Options{Pretty: pretty})
		if err != nil {
			t.Fatalf("Render() unexpected error: %v", err)
		}
		second, err := Render(tree, Options{Pretty: pretty})
		if err != nil {
			t.Fatalf("Render() unexpected error: %v", err)
		}
		if first != second {
			t.Errorf("Render(pretty=%v) not idempotent: %q != %q", pretty, first, second)
		}
	}
}

// ---------------------------------------------------------------------------
// TestStamp - Depth assignment
// ---------------------------------------------------------------------------

func TestStamp(t *testing.T) {
	t.Parallel()

	leaf := NewLeaf("b", "x")
	inner := NewParent("p", []Node{leaf})
	root := NewParent("div", []Node{inner})

	stamped := Stamp(root, 2).(*Parent)

	if stamped.Depth() != 2 {
		t.Errorf("root depth = %d, want 2", stamped.Depth())
	}
	p := stamped.Children()[0].(*Parent)
	if p.Depth() != 3 {
		t.Errorf("child depth = %d, want 3", p.Depth())
	}
	if got := p.Children()[0].Depth(); got != 4 {
		t.Errorf("grandchild depth = %d, want 4", got)
	}

	// Original tree is not modified.
	if root.Depth() != 0 || inner.Depth() != 0 || leaf.Depth() != 0 {
		t.Error("Stamp() modified the input tree")
	}
}

func TestNewParent_CopiesChildren(t *testing.T) {
	t.Parallel()

	children := []Node{Text("a"), Text("b")}
	p := NewParent("div", children)
	children[0] = Text("changed")

	got, err := Render(p, Options{})
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if got != "<div>ab</div>" {
		t.Errorf("Render() = %q, want %q", got, "<div>ab</div>")
	}
}
