// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/reflow-engine/internal/correct"
	"github.com/pdiddy/reflow-engine/internal/history"
	"github.com/pdiddy/reflow-engine/internal/pipeline"
	"github.com/pdiddy/reflow-engine/internal/wordlist"
	"github.com/pdiddy/reflow-engine/pkg/types"
)

var processCmd = &cobra.Command{
	Use:   "process [files...]",
	Short: "Reconstruct documents from OCR page records",
	Long: `Process runs each input file through the reconstruction pipeline and
writes the rendered document to the output directory. A .json input is
parsed as an array of page records; any other file is treated as one
directly extracted page at full confidence.

Existing output files are skipped, never overwritten.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProcess,
}

func init() {
	f := processCmd.Flags()
	f.String("language", "eng", "OCR language hint (informational passthrough)")
	f.Float64("confidence-threshold", 0, "flag pages below this confidence (default 70)")
	f.Bool("preserve-layout", false, "preserve source line-break layout where possible")
	f.Bool("spellcheck", false, "enable the spell-correction stage")
	f.Bool("aggressive", false, "always accept the top spelling suggestion")
	f.String("dictionary", "", "directory of custom dictionary term files")
	f.String("format", "markdown", "output format: markdown, txt, or html")
	f.Bool("metadata", false, "emit a metadata header block")
	f.Bool("preserve-formatting", false, "keep recognized inline formatting untouched")
	f.Bool("toc", false, "emit a table of contents")
	f.String("rules", "", "YAML file of correction rules replacing the built-in tables")
	f.String("out-dir", "out", "output directory")
	f.String("speller-url", "", "remote dictionary service base URL")
	f.String("history-dir", "", "record runs in a history database under this directory")

	rootCmd.AddCommand(processCmd)
}

func processConfig(cmd *cobra.Command) (types.PipelineConfig, error) {
	flags := cmd.Flags()

	language, _ := flags.GetString("language")
	threshold, _ := flags.GetFloat64("confidence-threshold")
	preserveLayout, _ := flags.GetBool("preserve-layout")
	spellcheck, _ := flags.GetBool("spellcheck")
	aggressive, _ := flags.GetBool("aggressive")
	format, _ := flags.GetString("format")
	metadata, _ := flags.GetBool("metadata")
	preserveFormatting, _ := flags.GetBool("preserve-formatting")
	toc, _ := flags.GetBool("toc")
	spellerURL, _ := flags.GetString("speller-url")

	cfg := types.PipelineConfig{
		OCRLanguage:            language,
		ConfidenceThreshold:    threshold,
		PreserveLayout:         preserveLayout,
		EnableSpellCheck:       spellcheck,
		AggressiveCorrection:   aggressive,
		OutputFormat:           types.OutputFormat(format),
		IncludeMetadata:        metadata,
		PreserveFormatting:     preserveFormatting,
		IncludeTableOfContents: toc,
		Speller: types.SpellerConfig{
			ServiceURL: spellerURL,
			Timeout:    10 * time.Second,
			MaxRetries: 3,
		},
	}

	if dictDir, _ := flags.GetString("dictionary"); dictDir != "" {
		terms, err := wordlist.Load(dictDir)
		if err != nil {
			return cfg, err
		}
		cfg.CustomDictionary = terms
	}

	return cfg, nil
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := processConfig(cmd)
	if err != nil {
		return err
	}

	rules := correct.DefaultRules()
	if rulesPath, _ := cmd.Flags().GetString("rules"); rulesPath != "" {
		rules, err = correct.LoadRules(rulesPath)
		if err != nil {
			return err
		}
	}

	o, err := pipeline.NewWithRules(&cfg, rules)
	if err != nil {
		return err
	}

	var store *history.Store
	if historyDir, _ := cmd.Flags().GetString("history-dir"); historyDir != "" {
		store, err = history.NewStore(types.HistoryConfig{HistoryDir: historyDir})
		if err != nil {
			return err
		}
		defer store.Close()
	}

	outDir, _ := cmd.Flags().GetString("out-dir")
	ctx := context.Background()

	var onDone func(path string, result *pipeline.Result)
	if store != nil {
		onDone = func(path string, result *pipeline.Result) {
			base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			run := history.Run{
				Source:             filepath.Base(path),
				PageCount:          result.PageCount,
				AverageConfidence:  result.AverageConfidence,
				LowConfidencePages: result.LowConfidencePages,
				OutputFormat:       cfg.OutputFormat,
				OutputPath:         filepath.Join(outDir, base+pipeline.OutputExt(cfg.OutputFormat)),
			}
			if _, err := store.Record(ctx, run, result.Output); err != nil {
				fmt.Fprintf(os.Stderr, "warning: history record failed for %s: %v\n", base, err)
			}
		}
	}

	summary := pipeline.ProcessBatch(ctx, o, args, outDir, os.Stdout, onDone)

	if summary.HasFailures() {
		return fmt.Errorf("%d file(s) failed processing", summary.Failed)
	}
	return nil
}
