// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"fmt"

	"github.com/pdiddy/manuskript-md/internal/outline"
	"github.com/pdiddy/manuskript-md/pkg/types"
)

// Conventional document names. The per-level synopsis documents append
// _level_N for N = 1 up to the deepest level present.
const (
	DocWorld               = "world"
	DocCharacters          = "characters"
	DocManuscript          = "manuscript"
	DocSceneTitles         = "scene_titles"
	DocFullSceneSummaries  = "full_scene_summaries"
	DocShortSceneSummaries = "short_scene_summaries"
)

// outlineVariants returns the manuscript-side variants: the four unbounded
// documents plus one full and one short chapter-summary document per level,
// from 1 up to maxDepth (capped at the heading ceiling). One parameterized
// traversal per variant instead of hand-written special cases.
func outlineVariants(maxDepth int) []Variant {
	variants := []Variant{
		{Name: DocManuscript, Field: outline.FieldBody},
		{Name: DocSceneTitles, TitleOnly: true},
		{Name: DocFullSceneSummaries, Field: outline.FieldSummaryFull},
		{Name: DocShortSceneSummaries, Field: outline.FieldSummaryShort},
	}
	if maxDepth > maxHeadingLevel {
		maxDepth = maxHeadingLevel
	}
	for level := 1; level <= maxDepth; level++ {
		variants = append(variants, Variant{
			Name:     fmt.Sprintf("full_chapter_summaries_level_%d", level),
			Field:    outline.FieldSummaryFull,
			MaxDepth: level,
		})
		variants = append(variants, Variant{
			Name:     fmt.Sprintf("short_chapter_summaries_level_%d", level),
			Field:    outline.FieldSummaryShort,
			MaxDepth: level,
		})
	}
	return variants
}

// BuildDocuments renders every document enabled by sel from src. An empty
// selection produces the full set. A subtree missing from the source simply
// contributes no documents; the rest still render.
func BuildDocuments(src outline.Source, sel types.Selection) []types.Document {
	if sel.IsEmpty() {
		sel = types.AllSelected()
	}

	var docs []types.Document
	if sel.World {
		if root := src.World(); root != nil {
			docs = append(docs, types.Document{Name: DocWorld, Content: RenderWorld(root)})
		}
	}
	if sel.Characters {
		if chars := src.Characters(); len(chars) > 0 {
			docs = append(docs, types.Document{Name: DocCharacters, Content: RenderCharacters(chars)})
		}
	}
	if sel.Outline {
		if root := src.Manuscript(); root != nil {
			for _, v := range outlineVariants(outline.MaxDepth(root)) {
				docs = append(docs, types.Document{Name: v.Name, Content: Render(root, v)})
			}
		}
	}
	return docs
}
