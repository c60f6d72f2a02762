// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/manuskript-md/internal/catalog"
	"github.com/pdiddy/manuskript-md/internal/export"
	"github.com/pdiddy/manuskript-md/internal/manuskript"
	"github.com/pdiddy/manuskript-md/internal/markdown"
	"github.com/pdiddy/manuskript-md/internal/outline"
	"github.com/pdiddy/manuskript-md/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [project]",
	Short: "Convert a Manuskript project to Markdown documents",
	Long: `Convert walks a Manuskript project directory and writes Markdown
documents for the selected outputs: the story world (world.md), the
character roster (characters.md), and the manuscript outline (manuscript,
scene titles, and per-level synopsis documents).

With no selection flags, all documents are generated. Passing a standalone
.opml world file instead of a project directory converts just the world
outline.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	projectPath := args[0]

	var sel types.Selection
	sel.World, _ = cmd.Flags().GetBool("world")
	sel.Characters, _ = cmd.Flags().GetBool("characters")
	sel.Outline, _ = cmd.Flags().GetBool("outline")

	src, outDir, err := openSource(projectPath)
	if err != nil {
		return err
	}
	if flagOut, _ := cmd.Flags().GetString("out-dir"); flagOut != "" {
		outDir = flagOut
	} else if cfgOut := viper.GetString("out_dir"); cfgOut != "" {
		outDir = cfgOut
	}

	docs := markdown.BuildDocuments(src, sel)
	if len(docs) == 0 {
		fmt.Fprintln(os.Stderr, "nothing to convert: no matching sections in the source")
		return nil
	}

	res, _ := export.WriteDocuments(docs, outDir, os.Stdout)
	if err := export.WriteManifest(outDir, projectPath, docs); err != nil {
		return err
	}

	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		if err := recordRun(outDir, projectPath, docs); err != nil {
			return err
		}
	}

	if res.HasFailures() {
		return fmt.Errorf("%d document(s) failed to write", res.Failed)
	}
	return nil
}

// openSource picks the source shape from the path: a .opml file loads as a
// standalone world outline, anything else as a full project directory. The
// second return value is the default output directory for that shape.
func openSource(path string) (outline.Source, string, error) {
	if strings.EqualFold(filepath.Ext(path), ".opml") {
		src, err := manuskript.LoadWorldFile(path)
		if err != nil {
			return nil, "", err
		}
		return src, filepath.Dir(path), nil
	}

	project, err := manuskript.Load(path)
	if err != nil {
		return nil, "", err
	}
	for _, warn := range project.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warn)
	}
	return project, path, nil
}

func recordRun(outDir, project string, docs []types.Document) error {
	store, err := catalog.Open(outDir)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.RecordRun(context.Background(), project, docs)
}

func init() {
	convertCmd.Flags().Bool("world", false, `create the "world.md" document`)
	convertCmd.Flags().Bool("characters", false, `create the "characters.md" document`)
	convertCmd.Flags().Bool("outline", false, "create the manuscript and per-level synopsis documents")
	convertCmd.Flags().String("out-dir", "", "output directory (default: the project directory)")
	convertCmd.Flags().Bool("no-history", false, "skip recording the run in the conversion history")

	rootCmd.AddCommand(convertCmd)
}
