// Package main provides the hirescope CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "hirescope",
		Short: "Deterministic hiring-practice audit engine",
		Long: `Hirescope evaluates hiring-practice questionnaire submissions against a
rule catalog and produces a diagnosis: block statuses, escalation gates,
contradictions, confidence, and remediation recommendations.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newScoreCmd(),
		newCatalogCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
