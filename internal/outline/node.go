// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package outline models a loaded writing project as an immutable tree of
// titled nodes with named text fields. Loaders build the tree once; the
// Markdown projector only reads it through the accessors here.
package outline

import "strings"

// FieldKind names one of the free-text fields a node may carry. The values
// match the Manuskript metadata keys.
type FieldKind string

const (
	// FieldDescription is the world-building description text.
	FieldDescription FieldKind = "description"
	// FieldBody is the full scene text.
	FieldBody FieldKind = "body"
	// FieldSummaryFull is the long synopsis.
	FieldSummaryFull FieldKind = "summaryFull"
	// FieldSummaryShort is the one-sentence synopsis.
	FieldSummaryShort FieldKind = "summarySentence"
)

// UntitledPlaceholder stands in for a node whose source provides no title.
const UntitledPlaceholder = "Untitled"

// Node is one entry in the outline: a world topic, a chapter, or a scene.
type Node struct {
	title    string
	fields   map[FieldKind]string
	children []*Node
}

// New returns a node with the given title and no children or fields.
func New(title string) *Node {
	return &Node{title: title}
}

// SetField records field text on the node. Loader-side only.
func (n *Node) SetField(kind FieldKind, text string) {
	if n.fields == nil {
		n.fields = make(map[FieldKind]string)
	}
	n.fields[kind] = text
}

// AddChild appends a child in document order.
func (n *Node) AddChild(c *Node) {
	n.children = append(n.children, c)
}

// Children returns the node's direct children in document order. A nil node
// or a leaf yields an empty sequence.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return n.children
}

// Title returns the node's display title, or a stable placeholder when the
// source provided none. It never fails: a missing title must not abort a
// conversion.
func (n *Node) Title() string {
	if n == nil || strings.TrimSpace(n.title) == "" {
		return UntitledPlaceholder
	}
	return n.title
}

// Field returns the requested field's text. A missing or whitespace-only
// field reports absent.
func (n *Node) Field(kind FieldKind) (string, bool) {
	if n == nil {
		return "", false
	}
	text, ok := n.fields[kind]
	if !ok || strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}

// Walk visits every node under root in pre-order, depth-first. Depth is
// 1-based at root's direct children; root itself is the invisible document
// root and is never visited.
func Walk(root *Node, fn func(n *Node, depth int)) {
	var visit func(n *Node, depth int)
	visit = func(n *Node, depth int) {
		fn(n, depth)
		for _, c := range n.Children() {
			visit(c, depth+1)
		}
	}
	for _, c := range root.Children() {
		visit(c, 1)
	}
}

// MaxDepth returns the deepest level present under root, counted the way
// Walk counts. An empty tree reports 0.
func MaxDepth(root *Node) int {
	deepest := 0
	Walk(root, func(_ *Node, depth int) {
		if depth > deepest {
			deepest = depth
		}
	})
	return deepest
}
