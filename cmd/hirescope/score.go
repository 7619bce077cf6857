package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hirescope/hirescope/pkg/audit"
	"github.com/hirescope/hirescope/pkg/config"
	"github.com/hirescope/hirescope/pkg/scoring"
	"github.com/hirescope/hirescope/pkg/surface"
)

func newScoreCmd() *cobra.Command {
	var (
		inputPath   string
		catalogPath string
		scoringPath string
		configPath  string
		outputFmt   string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Evaluate a questionnaire submission",
		Long:  `Reads a submission JSON file, runs the rule engine, and renders the diagnosis.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(scoreOpts{
				inputPath:   inputPath,
				catalogPath: catalogPath,
				scoringPath: scoringPath,
				configPath:  configPath,
				outputFmt:   outputFmt,
			})
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to submission JSON (required, - for stdin)")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to rule catalog YAML override")
	cmd.Flags().StringVar(&scoringPath, "scoring", "", "Path to scoring constants YAML override")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to CLI config file (default: discover .hirescope/config.yaml)")
	cmd.Flags().StringVar(&outputFmt, "output", "", "Output format: text, json, or markdown")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

type scoreOpts struct {
	inputPath   string
	catalogPath string
	scoringPath string
	configPath  string
	outputFmt   string
}

func runScore(opts scoreOpts) error {
	cfg, err := loadCLIConfig(opts.configPath)
	if err != nil {
		return err
	}

	catalogPath := firstNonEmpty(opts.catalogPath, cfg.CatalogPath)
	scoringPath := firstNonEmpty(opts.scoringPath, cfg.ScoringPath)
	outputFmt := firstNonEmpty(opts.outputFmt, cfg.Output, "text")

	engine, err := buildEngine(catalogPath, scoringPath)
	if err != nil {
		return err
	}

	sub, err := readSubmission(opts.inputPath)
	if err != nil {
		return err
	}

	diagnosis, err := engine.Evaluate(*sub)
	if err != nil {
		return fmt.Errorf("evaluating submission: %w", err)
	}

	var renderer surface.Renderer
	switch outputFmt {
	case "json":
		renderer = &surface.JSONRenderer{}
	case "markdown":
		renderer = &surface.MarkdownRenderer{Names: surface.BlockNames(engine.Catalog())}
	case "text":
		renderer = &surface.TerminalRenderer{Names: surface.BlockNames(engine.Catalog())}
	default:
		return fmt.Errorf("unknown output format %q (want text, json, or markdown)", outputFmt)
	}

	if err := renderer.Render(os.Stdout, diagnosis); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return nil
}

func loadCLIConfig(path string) (*config.Config, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return config.DefaultConfig(), nil
		}
		path = config.FindConfigFile(cwd)
		if path == "" {
			return config.DefaultConfig(), nil
		}
	}
	return config.Load(path)
}

func buildEngine(catalogPath, scoringPath string) (*scoring.Engine, error) {
	catalog := scoring.DefaultCatalog()
	if catalogPath != "" {
		var err error
		catalog, err = scoring.LoadCatalog(catalogPath)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
	}

	cfg := scoring.DefaultConfig()
	if scoringPath != "" {
		var err error
		cfg, err = scoring.LoadConfig(scoringPath)
		if err != nil {
			return nil, fmt.Errorf("loading scoring config: %w", err)
		}
	}

	return scoring.NewEngine(cfg, catalog)
}

func readSubmission(path string) (*audit.Submission, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading submission: %w", err)
	}

	var sub audit.Submission
	if err := json.Unmarshal(data, &sub); err != nil {
		return nil, fmt.Errorf("parsing submission JSON: %w", err)
	}
	return &sub, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
