// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manuskript

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/manuskript-md/internal/outline"
)

// worldPlaceholder titles a world topic whose outline element has no name
// attribute.
const worldPlaceholder = "Element"

type opmlDoc struct {
	XMLName xml.Name `xml:"opml"`
	Body    opmlBody `xml:"body"`
}

type opmlBody struct {
	XMLName  xml.Name      `xml:"body"`
	Outlines []opmlOutline `xml:"outline"`
}

type opmlOutline struct {
	Name        string        `xml:"name,attr"`
	Description string        `xml:"description,attr"`
	Children    []opmlOutline `xml:"outline"`
}

// ParseWorld parses a Manuskript world OPML document. The returned node is
// the invisible root; its children are the top-level world topics. A
// document without a body element is not a world file and is rejected.
func ParseWorld(r io.Reader) (*outline.Node, error) {
	var doc opmlDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing OPML: %w", err)
	}
	if doc.Body.XMLName.Local == "" {
		return nil, fmt.Errorf("no body element: not a Manuskript world file")
	}

	root := outline.New("")
	for _, o := range doc.Body.Outlines {
		root.AddChild(buildWorldNode(o))
	}
	return root, nil
}

func buildWorldNode(o opmlOutline) *outline.Node {
	title := o.Name
	if strings.TrimSpace(title) == "" {
		title = worldPlaceholder
	}
	n := outline.New(title)
	if o.Description != "" {
		n.SetField(outline.FieldDescription, breakParagraphs(o.Description))
	}
	for _, c := range o.Children {
		n.AddChild(buildWorldNode(c))
	}
	return n
}
