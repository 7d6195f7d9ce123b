package markdown

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-sitegen/internal/htmltree"
)

func renderDocument(t *testing.T, md string, pretty bool) string {
	t.Helper()

	tree, err := DocumentToTree(md)
	if err != nil {
		t.Fatalf("DocumentToTree() unexpected error: %v", err)
	}
	html, err := htmltree.Render(htmltree.Stamp(tree, 0), htmltree.Options{Pretty: pretty})
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	return html
}

// ---------------------------------------------------------------------------
// TestDocumentToTree - Markdown to rendered HTML
// ---------------------------------------------------------------------------

func TestDocumentToTree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		md   string
		want string
	}{
		{
			name: "heading and paragraph",
			md:   "# Heading\n\nSome **bold** text",
			want: "<div><h1>Heading</h1><p>Some <b>bold</b> text</p></div>",
		},
		{
			name: "unordered list",
			md:   "- item one\n- item two",
			want: "<div><ul><li>item one</li><li>item two</li></ul></div>",
		},
		{
			name: "paragraphs",
			md: `
This is **bolded** paragraph
text in a p
tag here

This is another paragraph with _italic_ text and ` + "`code`" + ` here

`,
			want: "<div><p>This is <b>bolded</b> paragraph text in a p tag here</p>" +
				"<p>This is another paragraph with <i>italic</i> text and <code>code</code> here</p></div>",
		},
		{
			name: "code block keeps inline syntax",
			md: "```\nThis is text that _should_ remain\nthe **same** even with inline stuff\n```",
			want: "<div><pre><code>This is text that _should_ remain\n" +
				"the **same** even with inline stuff\n</code></pre></div>",
		},
		{
			name: "lists",
			md: `
- This is a list
- with items
- and _more_ items

1. This is an ` + "`ordered`" + ` list
2. with items
3. and more items
`,
			want: "<div><ul><li>This is a list</li><li>with items</li><li>and <i>more</i> items</li></ul>" +
				"<ol><li>This is an <code>ordered</code> list</li><li>with items</li><li>and more items</li></ol></div>",
		},
		{
			name: "ordered list past nine items",
			md:   "1. a\n2. b\n3. c\n4. d\n5. e\n6. f\n7. g\n8. h\n9. i\n10. j",
			want: "<div><ol><li>a</li><li>b</li><li>c</li><li>d</li><li>e</li>" +
				"<li>f</li><li>g</li><li>h</li><li>i</li><li> j</li></ol></div>",
		},
		{
			name: "headings and quote",
			md: `
# this is an h1

this is paragraph text

## this is an h2

> This is a
> blockquote block
`,
			want: "<div><h1>this is an h1</h1><p>this is paragraph text</p><h2>this is an h2</h2>" +
				"<blockquote>This is a blockquote block</blockquote></div>",
		},
		{
			name: "image and link",
			md:   "![alt](http://x/y.png) see [docs](/docs)",
			want: `<div><p><img src="http://x/y.png" alt="alt"> see <a href="/docs">docs</a></p></div>`,
		},
		{
			name: "seven hashes is a paragraph",
			md:   "####### not a heading",
			want: "<div><p>####### not a heading</p></div>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := renderDocument(t, tt.md, false)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("render mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDocumentToTree_Pretty(t *testing.T) {
	t.Parallel()

	got := renderDocument(t, "# Title\n\n- a\n- b", true)
	want := "<div>\n" +
		"    <h1>Title</h1>\n" +
		"    <ul>\n" +
		"      <li>a</li>\n" +
		"      <li>b</li>\n" +
		"    </ul>\n" +
		"  </div>"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pretty render mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentToTree_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		md      string
		wantErr []error
	}{
		{
			name:    "empty document",
			md:      "",
			wantErr: []error{ErrEmptyDocument, htmltree.ErrNoChildren},
		},
		{
			name:    "whitespace document",
			md:      "\n\n   \n\n",
			wantErr: []error{ErrEmptyDocument},
		},
		{
			name:    "unmatched delimiter in second block",
			md:      "# fine\n\nthis is *broken",
			wantErr: []error{ErrUnmatchedDelimiter},
		},
		{
			name:    "unmatched delimiter in list item",
			md:      "- ok\n- not `ok",
			wantErr: []error{ErrUnmatchedDelimiter},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, err := DocumentToTree(tt.md)
			if tree != nil {
				t.Errorf("DocumentToTree() returned a tree on error")
			}
			for _, want := range tt.wantErr {
				if !errors.Is(err, want) {
					t.Errorf("DocumentToTree() error = %v, want %v", err, want)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestSpanToLeaf
// ---------------------------------------------------------------------------

func TestSpanToLeaf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		span Span
		want string
	}{
		{"plain", Span{Text: "This is a text node", Kind: Plain}, "This is a text node"},
		{"bold", Span{Text: "b", Kind: Bold}, "<b>b</b>"},
		{"italic", Span{Text: "i", Kind: Italic}, "<i>i</i>"},
		{"code", Span{Text: "x := 1", Kind: Code}, "<code>x := 1</code>"},
		{"link", Span{Text: "boot", Kind: Link, URL: "https://boot.dev"}, `<a href="https://boot.dev">boot</a>`},
		{"image", Span{Text: "alt", Kind: Image, URL: "u"}, `<img src="u" alt="alt">`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			leaf, err := SpanToLeaf(tt.span)
			if err != nil {
				t.Fatalf("SpanToLeaf() unexpected error: %v", err)
			}
			got, err := htmltree.Render(leaf, htmltree.Options{})
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SpanToLeaf() rendered %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := SpanToLeaf(Span{Kind: SpanKind(99)}); !errors.Is(err, ErrUnknownSpanKind) {
		t.Errorf("SpanToLeaf(unknown) error = %v, want %v", err, ErrUnknownSpanKind)
	}
}
