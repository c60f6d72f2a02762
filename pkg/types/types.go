// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the manuskript-md pipeline.
package types

// Document is one rendered Markdown output. Name is the conventional document
// name (world, characters, manuscript, ...) without a file extension; the
// writer appends ".md".
type Document struct {
	Name    string
	Content string
}

// Selection controls which documents a conversion run produces. Each switch
// independently enables one output family; an empty selection means the
// caller wants the full set.
type Selection struct {
	World      bool
	Characters bool
	Outline    bool
}

// IsEmpty reports whether no document kind is selected.
func (s Selection) IsEmpty() bool {
	return !s.World && !s.Characters && !s.Outline
}

// AllSelected returns a selection with every document kind enabled.
func AllSelected() Selection {
	return Selection{World: true, Characters: true, Outline: true}
}
