// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/manuskript-md/pkg/types"
)

func openStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, dir
}

func TestOpenCreatesDatabase(t *testing.T) {
	_, dir := openStore(t)
	if _, err := os.Stat(filepath.Join(dir, ".manuskript-md", "catalog.db")); err != nil {
		t.Errorf("expected catalog database on disk: %v", err)
	}
}

func TestRecordAndListRuns(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()

	docs := []types.Document{
		{Name: "world", Content: "# Kingdom\n"},
		{Name: "characters", Content: "# Sherlock\n"},
	}
	if err := store.RecordRun(ctx, "/projects/novel", docs); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if err := store.RecordRun(ctx, "/projects/other", docs[:1]); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	runs, err := store.Runs(ctx, 0)
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs = %d, want 2", len(runs))
	}

	// Newest first.
	if runs[0].Project != "/projects/other" {
		t.Errorf("first run project = %q, want newest", runs[0].Project)
	}
	if len(runs[1].Documents) != 2 {
		t.Errorf("documents = %v, want 2", runs[1].Documents)
	}
	if runs[1].Documents[0] != "world" {
		t.Errorf("document order = %v, want world first", runs[1].Documents)
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("created_at should be set")
	}
}

func TestRunsLimit(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := store.RecordRun(ctx, "/projects/novel", nil); err != nil {
			t.Fatalf("RecordRun: %v", err)
		}
	}

	runs, err := store.Runs(ctx, 3)
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("runs = %d, want 3", len(runs))
	}
}

func TestRunsEmpty(t *testing.T) {
	store, _ := openStore(t)
	runs, err := store.Runs(context.Background(), 0)
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("runs = %v, want none", runs)
	}
}
