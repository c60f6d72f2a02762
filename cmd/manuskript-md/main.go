// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the manuskript-md CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the manuskript-md CLI.
var rootCmd = &cobra.Command{
	Use:   "manuskript-md",
	Short: "Create Markdown files from a Manuskript writing project",
	Long: `manuskript-md converts a Manuskript writing project into flat Markdown
documents: a story-world description, a character roster, and the manuscript
outline with synopsis documents on every chapter level.

The created files are placed in the project directory (or --out-dir) and are
ready for an external document converter such as pandoc.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./manuskript-md.yaml or ~/.config/manuskript-md/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("manuskript-md")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "manuskript-md"))
		}
	}

	viper.SetEnvPrefix("MANUSKRIPT_MD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
