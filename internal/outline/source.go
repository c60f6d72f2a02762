// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import "strings"

// Source is the read-only view of a loaded project. Both source shapes (a
// full project directory and a standalone world outline file) implement it,
// so the projector never cares where the tree came from. A section missing
// from the source yields a nil tree or an empty slice, never an error.
type Source interface {
	// World returns the invisible root of the world subtree, or nil.
	World() *Node
	// Characters returns the character sheets in source order.
	Characters() []Character
	// Manuscript returns the invisible root of the outline subtree, or nil.
	Manuscript() *Node
}

// Character holds one character sheet: a display name plus the structured
// Manuskript field set.
type Character struct {
	Name   string
	Fields map[string]string
}

// CharacterFieldOrder is the deterministic render order for character sheet
// fields. Fields outside this list are not rendered.
var CharacterFieldOrder = []string{
	"Motivation",
	"Goal",
	"Conflict",
	"Epiphany",
	"Phrase Summary",
	"Paragraph Summary",
}

// UnknownCharacter stands in for a character sheet without a name entry.
const UnknownCharacter = "Unknown"

// DisplayName returns the character's name, or a stable placeholder when
// the sheet has none.
func (c Character) DisplayName() string {
	if strings.TrimSpace(c.Name) == "" {
		return UnknownCharacter
	}
	return c.Name
}

// Field returns the named field's text. A missing or whitespace-only field
// reports absent.
func (c Character) Field(name string) (string, bool) {
	text, ok := c.Fields[name]
	if !ok || strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}
