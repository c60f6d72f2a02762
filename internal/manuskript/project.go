// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manuskript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/manuskript-md/internal/outline"
)

const (
	worldFile     = "world.opml"
	charactersDir = "characters"
	outlineDir    = "outline"
	folderFile    = "folder.txt"
)

// outlinePlaceholder titles a chapter or scene whose metadata has no title
// entry.
const outlinePlaceholder = "No title"

// Metadata keys in Manuskript folder and scene headers.
const (
	metaTitle        = "title"
	metaSummaryFull  = "summaryFull"
	metaSummaryShort = "summarySentence"
	metaName         = "Name"
)

// Project is the full-directory source shape: world, characters, and the
// manuscript outline loaded from a Manuskript project directory.
type Project struct {
	world      *outline.Node
	characters []outline.Character
	manuscript *outline.Node

	// Warnings collects per-section load problems. The conversion proceeds
	// with whatever sections loaded.
	Warnings []string
}

var _ outline.Source = (*Project)(nil)

// World returns the world subtree root, or nil when world.opml is missing
// or malformed.
func (p *Project) World() *outline.Node { return p.world }

// Characters returns the character sheets in file-name order.
func (p *Project) Characters() []outline.Character { return p.characters }

// Manuscript returns the outline subtree root, or nil when the outline
// directory is missing or unreadable.
func (p *Project) Manuscript() *outline.Node { return p.manuscript }

func (p *Project) warnf(format string, args ...any) {
	p.Warnings = append(p.Warnings, fmt.Sprintf(format, args...))
}

// Load reads a Manuskript project directory. Sections load independently: a
// missing or malformed section becomes a warning and an empty subtree, never
// a failure of the other sections. Only an unreadable project directory is
// fatal.
func Load(projectDir string) (*Project, error) {
	if _, err := os.Stat(projectDir); err != nil {
		return nil, fmt.Errorf("reading project directory: %w", err)
	}

	p := &Project{}

	world, err := loadWorld(filepath.Join(projectDir, worldFile))
	if err != nil {
		p.warnf("world: %v", err)
	} else {
		p.world = world
	}

	chars, err := loadCharacters(filepath.Join(projectDir, charactersDir))
	if err != nil {
		p.warnf("characters: %v", err)
	} else {
		p.characters = chars
	}

	manuscript, err := loadOutlineDir(filepath.Join(projectDir, outlineDir))
	if err != nil {
		p.warnf("outline: %v", err)
	} else {
		p.manuscript = manuscript
	}

	return p, nil
}

// WorldFile is the standalone source shape: a single world outline file
// with no characters or manuscript.
type WorldFile struct {
	world *outline.Node
}

var _ outline.Source = (*WorldFile)(nil)

// LoadWorldFile reads a standalone .opml world outline.
func LoadWorldFile(path string) (*WorldFile, error) {
	world, err := loadWorld(path)
	if err != nil {
		return nil, err
	}
	return &WorldFile{world: world}, nil
}

// World returns the world subtree root.
func (w *WorldFile) World() *outline.Node { return w.world }

// Characters returns an empty roster; a standalone world file has none.
func (w *WorldFile) Characters() []outline.Character { return nil }

// Manuscript returns nil; a standalone world file has no outline.
func (w *WorldFile) Manuscript() *outline.Node { return nil }

func loadWorld(path string) (*outline.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading world outline: %w", err)
	}
	defer f.Close()

	world, err := ParseWorld(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return world, nil
}

// loadCharacters reads every .txt sheet under the characters directory in
// name order. A missing directory is an empty roster, not an error.
func loadCharacters(dir string) ([]outline.Character, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading characters directory: %w", err)
	}

	var chars []outline.Character
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading character sheet %s: %w", e.Name(), err)
		}
		meta, _ := ParseHeader(string(data))
		chars = append(chars, outline.Character{Name: meta[metaName], Fields: meta})
	}
	return chars, nil
}

// loadOutlineDir builds the manuscript subtree from the outline directory.
// Each subdirectory is a chapter titled from its folder.txt; each .md entry
// is a scene leaf. Children keep directory name order, which is how
// Manuskript numbers them.
func loadOutlineDir(dir string) (*outline.Node, error) {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading outline directory: %w", err)
	}

	root := outline.New("")
	if err := appendEntries(root, dir); err != nil {
		return nil, err
	}
	return root, nil
}

func appendEntries(parent *outline.Node, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading outline directory: %w", err)
	}
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		switch {
		case e.IsDir():
			chapter, err := loadChapter(path)
			if err != nil {
				return err
			}
			parent.AddChild(chapter)
			if err := appendEntries(chapter, path); err != nil {
				return err
			}
		case strings.HasSuffix(e.Name(), ".md"):
			scene, err := loadScene(path)
			if err != nil {
				return err
			}
			parent.AddChild(scene)
		}
	}
	return nil
}

// loadChapter reads a chapter directory's folder.txt metadata. A directory
// without one is still a chapter, just untitled.
func loadChapter(dir string) (*outline.Node, error) {
	data, err := os.ReadFile(filepath.Join(dir, folderFile))
	if err != nil {
		if os.IsNotExist(err) {
			return outline.New(outlinePlaceholder), nil
		}
		return nil, fmt.Errorf("reading chapter metadata in %s: %w", filepath.Base(dir), err)
	}

	meta, _ := ParseHeader(string(data))
	n := outline.New(titleOrPlaceholder(meta[metaTitle]))
	n.SetField(outline.FieldSummaryFull, meta[metaSummaryFull])
	n.SetField(outline.FieldSummaryShort, meta[metaSummaryShort])
	return n, nil
}

// loadScene reads one scene file: metadata header plus Markdown body.
func loadScene(path string) (*outline.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", filepath.Base(path), err)
	}

	meta, body := ParseHeader(string(data))
	n := outline.New(titleOrPlaceholder(meta[metaTitle]))
	n.SetField(outline.FieldSummaryFull, meta[metaSummaryFull])
	n.SetField(outline.FieldSummaryShort, meta[metaSummaryShort])
	n.SetField(outline.FieldBody, joinParagraphs(body))
	return n, nil
}

func titleOrPlaceholder(title string) string {
	if strings.TrimSpace(title) == "" {
		return outlinePlaceholder
	}
	return title
}
