package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hirescope/hirescope/pkg/scoring"
)

func newCatalogCmd() *cobra.Command {
	var (
		catalogPath string
		outputFmt   string
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the active rule catalog",
		Long:  `Prints the rule catalog (blocks, gates, contradiction rules, recommendations) in YAML or JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := scoring.DefaultCatalog()
			if catalogPath != "" {
				var err error
				catalog, err = scoring.LoadCatalog(catalogPath)
				if err != nil {
					return fmt.Errorf("loading catalog: %w", err)
				}
			}

			switch outputFmt {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(catalog)
			case "yaml":
				enc := yaml.NewEncoder(os.Stdout)
				defer enc.Close()
				return enc.Encode(catalog)
			default:
				return fmt.Errorf("unknown output format %q (want yaml or json)", outputFmt)
			}
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to rule catalog YAML override")
	cmd.Flags().StringVar(&outputFmt, "output", "yaml", "Output format: yaml or json")

	return cmd
}
