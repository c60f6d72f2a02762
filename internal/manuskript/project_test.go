// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manuskript

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/manuskript-md/internal/outline"
)

// writeProjectFile creates a file under dir, making parent directories as
// needed.
func writeProjectFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// sampleProject builds a small but complete Manuskript project on disk.
func sampleProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeProjectFile(t, dir, "world.opml", sampleWorld)

	writeProjectFile(t, dir, "characters/1-sherlock.txt",
		"Name: Sherlock\nMotivation: Find the truth\nGoal: \n")
	writeProjectFile(t, dir, "characters/2-watson.txt",
		"Name: Watson\nConflict: Divided loyalties\n")

	writeProjectFile(t, dir, "outline/0-part_one/folder.txt",
		"title: Part One\nsummaryFull: The long beginning.\nsummarySentence: It begins.\n")
	writeProjectFile(t, dir, "outline/0-part_one/0-opening.md",
		"title: Opening\nsummaryFull: Night falls over the city.\nsummarySentence: Night falls.\n\n\nIt was a dark night.\nRain hammered the windows.")
	writeProjectFile(t, dir, "outline/0-part_one/1-chase/folder.txt",
		"title: The Chase\nsummarySentence: They run.\n")
	writeProjectFile(t, dir, "outline/0-part_one/1-chase/0-alley.md",
		"title: The Alley\n\n\nFootsteps echoed.")
	writeProjectFile(t, dir, "outline/1-part_two/folder.txt",
		"title: Part Two\n")

	return dir
}

func TestLoad(t *testing.T) {
	project, err := Load(sampleProject(t))
	require.NoError(t, err)
	assert.Empty(t, project.Warnings)

	// World section.
	world := project.World()
	require.NotNil(t, world)
	require.Len(t, world.Children(), 2)
	assert.Equal(t, "Kingdom", world.Children()[0].Title())

	// Characters in file-name order.
	chars := project.Characters()
	require.Len(t, chars, 2)
	assert.Equal(t, "Sherlock", chars[0].DisplayName())
	assert.Equal(t, "Watson", chars[1].DisplayName())
	motivation, ok := chars[0].Field("Motivation")
	require.True(t, ok)
	assert.Equal(t, "Find the truth", motivation)
	_, ok = chars[0].Field("Goal")
	assert.False(t, ok, "blank Goal entry must report absent")

	// Outline tree: two parts, nested chapter, scenes as leaves.
	ms := project.Manuscript()
	require.NotNil(t, ms)
	parts := ms.Children()
	require.Len(t, parts, 2)

	partOne := parts[0]
	assert.Equal(t, "Part One", partOne.Title())
	full, ok := partOne.Field(outline.FieldSummaryFull)
	require.True(t, ok)
	assert.Equal(t, "The long beginning.", full)

	require.Len(t, partOne.Children(), 2)
	opening := partOne.Children()[0]
	assert.Equal(t, "Opening", opening.Title())
	body, ok := opening.Field(outline.FieldBody)
	require.True(t, ok)
	assert.Equal(t, "It was a dark night.\n\nRain hammered the windows.", body)

	chase := partOne.Children()[1]
	assert.Equal(t, "The Chase", chase.Title())
	require.Len(t, chase.Children(), 1)
	assert.Equal(t, "The Alley", chase.Children()[0].Title())

	assert.Equal(t, "Part Two", parts[1].Title())
}

func TestLoadPartialProject(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "characters/1-solo.txt", "Name: Solo\n")

	project, err := Load(dir)
	require.NoError(t, err)

	assert.Nil(t, project.World())
	assert.Nil(t, project.Manuscript())
	require.Len(t, project.Characters(), 1)

	// Only the missing world file warns; absent characters/outline dirs are
	// normal for partial projects.
	require.Len(t, project.Warnings, 1)
	assert.Contains(t, project.Warnings[0], "world")
}

func TestLoadMalformedWorldDegrades(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "world.opml", "<opml><head/></opml>")
	writeProjectFile(t, dir, "characters/1-solo.txt", "Name: Solo\n")

	project, err := Load(dir)
	require.NoError(t, err)
	assert.Nil(t, project.World())
	assert.Len(t, project.Characters(), 1)
	require.NotEmpty(t, project.Warnings)
}

func TestLoadMissingProjectDirIsFatal(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestLoadChapterWithoutMetadata(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "outline", "0-untitled"), 0o755))

	project, err := Load(dir)
	require.NoError(t, err)
	ms := project.Manuscript()
	require.NotNil(t, ms)
	require.Len(t, ms.Children(), 1)
	assert.Equal(t, "No title", ms.Children()[0].Title())
}

func TestLoadWorldFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "standalone.opml")
	require.NoError(t, os.WriteFile(path, []byte(sampleWorld), 0o644))

	src, err := LoadWorldFile(path)
	require.NoError(t, err)
	require.NotNil(t, src.World())
	assert.Len(t, src.World().Children(), 2)
	assert.Nil(t, src.Manuscript())
	assert.Empty(t, src.Characters())

	_, err = LoadWorldFile(filepath.Join(dir, "missing.opml"))
	assert.Error(t, err)
}
