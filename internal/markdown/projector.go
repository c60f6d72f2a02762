// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown projects an outline tree onto flat Markdown documents.
// The projection is one-way and lossy: structure plus the selected field,
// nothing else. Same tree and same variant always produce byte-identical
// output.
package markdown

import (
	"strings"

	"github.com/pdiddy/manuskript-md/internal/outline"
)

// maxHeadingLevel caps Markdown heading depth. Nodes nested deeper than
// this all render at level 6.
const maxHeadingLevel = 6

// Variant describes one rendering of the outline tree: which field follows
// each heading and how deep the document reaches.
type Variant struct {
	// Name is the output document name, without extension.
	Name string

	// Field is rendered as body text under each heading. Ignored when
	// TitleOnly is set.
	Field outline.FieldKind

	// TitleOnly emits headings with no body.
	TitleOnly bool

	// MaxDepth limits the document to nodes at or above this level.
	// Zero means unlimited.
	MaxDepth int
}

// Render projects the subtree under root into one Markdown document. Every
// visited node contributes a heading of min(depth, 6) hash marks; a node
// whose selected field is absent or empty contributes the heading alone,
// with no placeholder line. Traversal is pre-order, so a node's content
// always precedes its first child's heading.
func Render(root *outline.Node, v Variant) string {
	var blocks []string
	outline.Walk(root, func(n *outline.Node, depth int) {
		if v.MaxDepth > 0 && depth > v.MaxDepth {
			return
		}
		level := depth
		if level > maxHeadingLevel {
			level = maxHeadingLevel
		}
		block := strings.Repeat("#", level) + " " + n.Title()
		if !v.TitleOnly {
			if text, ok := n.Field(v.Field); ok {
				block += "\n" + text
			}
		}
		blocks = append(blocks, block)
	})
	return joinBlocks(blocks)
}

// RenderWorld renders the world subtree: one heading per topic followed by
// its description.
func RenderWorld(root *outline.Node) string {
	return Render(root, Variant{Name: DocWorld, Field: outline.FieldDescription})
}

// RenderCharacters renders the character roster. Each character gets a
// level-1 heading regardless of source position, followed by its present
// fields as level-2 sections in the fixed order. Empty fields are skipped
// entirely.
func RenderCharacters(chars []outline.Character) string {
	var blocks []string
	for _, c := range chars {
		blocks = append(blocks, "# "+c.DisplayName())
		for _, name := range outline.CharacterFieldOrder {
			if text, ok := c.Field(name); ok {
				blocks = append(blocks, "## "+name+"\n"+text)
			}
		}
	}
	return joinBlocks(blocks)
}

// joinBlocks separates blocks with one blank line and ends the document
// with a single newline. An empty block list yields an empty document.
func joinBlocks(blocks []string) string {
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}
