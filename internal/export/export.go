// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes rendered Markdown documents to disk alongside the
// source project, plus a manifest describing what a run produced.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/manuskript-md/pkg/types"
)

// manifestFile names the per-run manifest written next to the documents.
const manifestFile = "manifest.yaml"

// Result summarizes a write batch.
type Result struct {
	Written int
	Failed  int
}

// HasFailures reports whether any document failed to write.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// WriteDocuments writes each document to outDir as <name>.md, printing
// per-file status to w. Existing files are overwritten: the projection is
// regenerated in full on every run. It returns the batch result and the
// paths written.
func WriteDocuments(docs []types.Document, outDir string, w io.Writer) (Result, []string) {
	var res Result
	var paths []string
	for _, d := range docs {
		path := filepath.Join(outDir, d.Name+".md")
		if err := os.WriteFile(path, []byte(d.Content), 0o644); err != nil {
			fmt.Fprintf(w, "failed: %s (%v)\n", d.Name, err)
			res.Failed++
			continue
		}
		fmt.Fprintf(w, "Markdown file written: %s\n", path)
		res.Written++
		paths = append(paths, path)
	}
	fmt.Fprintf(w, "\nBatch summary: %d written, %d failed\n", res.Written, res.Failed)
	return res, paths
}

// Manifest is the on-disk record of one conversion run.
type Manifest struct {
	Project     string          `yaml:"project"`
	GeneratedAt time.Time       `yaml:"generated_at"`
	Documents   []ManifestEntry `yaml:"documents"`
}

// ManifestEntry describes one produced document.
type ManifestEntry struct {
	Name  string `yaml:"name"`
	Bytes int    `yaml:"bytes"`
}

// WriteManifest saves manifest.yaml in outDir, listing the source project
// and every produced document.
func WriteManifest(outDir, project string, docs []types.Document) error {
	m := Manifest{
		Project:     project,
		GeneratedAt: time.Now().UTC(),
	}
	for _, d := range docs {
		m.Documents = append(m.Documents, ManifestEntry{Name: d.Name, Bytes: len(d.Content)})
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return os.WriteFile(filepath.Join(outDir, manifestFile), data, 0o644)
}

// ReadManifest loads a previously written manifest from outDir.
func ReadManifest(outDir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(outDir, manifestFile))
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}
