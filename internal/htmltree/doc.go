// Package htmltree models an HTML document as an immutable tree of nodes and
// renders it to a string.
//
// A tree is made of two node kinds:
//   - Leaf: a single element with a text value, or raw text when untagged
//   - Parent: an element with one or more children
//
// Nodes are built with NewLeaf and NewParent and are never mutated afterwards.
// Indentation depth is assigned by Stamp, which returns a fresh copy of the
// tree with every node's depth set relative to the root. Render walks the
// tree once and produces compact or indented output depending on Options.
package htmltree
