// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/reflow-engine/internal/correct"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the active correction rule table",
	Long: `Rules prints the ordered correction rule table the process command
applies, either the built-in tables or a YAML rule file given with
--rules. Rules run in the listed order, one scope pass at a time.`,
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().String("rules", "", "YAML file of correction rules replacing the built-in tables")
	rulesCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	rules := correct.DefaultRules()
	if rulesPath, _ := cmd.Flags().GetString("rules"); rulesPath != "" {
		loaded, err := correct.LoadRules(rulesPath)
		if err != nil {
			return err
		}
		rules = loaded
	}

	// Validate the table compiles before printing it.
	if _, err := correct.NewEngine(rules); err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rules)
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-12s  %-30s  %s\n", "Pos", "Scope", "Pattern", "Replacement")
	for i, r := range rules {
		fmt.Fprintf(os.Stdout, "%-4d  %-12s  %-30q  %q\n", i+1, r.Scope, r.Pattern, r.Replacement)
	}
	fmt.Fprintf(os.Stdout, "\n%d rules\n", len(rules))
	return nil
}
