// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the reflow-engine CLI.
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

// rootCmd is the base command for the reflow-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "reflow-engine",
	Short: "Reconstruct readable documents from raw OCR text",
	Long: `reflow-engine rebuilds structured documents from raw OCR output: it fixes
recognition artifacts, reassembles wrapped paragraphs, classifies headings
and lists, optionally spell-corrects the result, and renders Markdown,
plain text, or HTML.

Each input file is either a JSON array of page records from a recognition
engine or a plain text file treated as a single extracted page.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./reflow-engine.yaml or ~/.config/reflow-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("reflow-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "reflow-engine"))
		}
	}

	viper.SetEnvPrefix("REFLOW_ENGINE")
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
