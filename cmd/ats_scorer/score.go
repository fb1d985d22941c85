package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/logger"
	"github.com/jonathan/ats-scorer/internal/pipeline"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one or more resumes against a job description",
	Long:  "Score reads a job description text file and one or more resume profile JSON files, computes the weighted compatibility score for each resume, and optionally writes the reports as JSON.",
	RunE:  runScore,
}

var (
	scoreConfigFile string
	scoreJobFile    string
	scoreResumes    []string
	scoreRegistry   string
	scoreOutput     string
	scoreAPIKey     string
	scoreModel      string
	scoreTimeout    int
	scoreJSONLogs   bool
	scoreVerbose    bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfigFile, "config", "c", "", "Path to JSON config file")
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to job description text file")
	scoreCmd.Flags().StringSliceVarP(&scoreResumes, "resume", "r", nil, "Path to resume profile JSON file (repeatable)")
	scoreCmd.Flags().StringVar(&scoreRegistry, "registry", "", "Path to skill registry JSON file (default: embedded registry)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Directory for score report JSON files")
	scoreCmd.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API key for semantic matching (overrides GEMINI_API_KEY env var)")
	scoreCmd.Flags().StringVar(&scoreModel, "model", "", "Gemini model for semantic matching")
	scoreCmd.Flags().IntVar(&scoreTimeout, "semantic-timeout", 0, "Per-judgment semantic timeout in seconds")
	scoreCmd.Flags().BoolVar(&scoreJSONLogs, "json-logs", false, "Emit logs as JSON")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print detailed per-category breakdowns")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	cfg, err := mergedConfig()
	if err != nil {
		return err
	}

	if cfg.Job == "" {
		return fmt.Errorf("a job description is required (use --job or the config file)")
	}
	if len(cfg.Resumes) == 0 {
		return fmt.Errorf("at least one resume is required (use --resume or the config file)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	results, err := pipeline.Run(context.Background(), pipeline.RunOptions{
		JobPath:         cfg.Job,
		ResumePaths:     cfg.Resumes,
		RegistryPath:    cfg.Registry,
		OutputDir:       cfg.Output,
		APIKey:          apiKey,
		Model:           cfg.Model,
		SemanticTimeout: time.Duration(cfg.SemanticTimeoutSeconds) * time.Second,
		Verbose:         cfg.Verbose,
		Logger:          log,
	})
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Fprintf(os.Stdout, "%s: %.1f (%s)\n", r.ResumePath, r.Report.OverallScore, r.Report.Grade)
	}
	if cfg.Output != "" {
		fmt.Fprintf(os.Stdout, "Reports written to %s\n", cfg.Output)
	}
	return nil
}

// mergedConfig applies the optional config file as defaults under the
// CLI flags. Flags always win; bools are never merged.
func mergedConfig() (config.Config, error) {
	flags := config.Config{
		Job:                    scoreJobFile,
		Resumes:                scoreResumes,
		Registry:               scoreRegistry,
		Output:                 scoreOutput,
		APIKey:                 scoreAPIKey,
		Model:                  scoreModel,
		SemanticTimeoutSeconds: scoreTimeout,
		JSONLogs:               scoreJSONLogs,
		Verbose:                scoreVerbose,
	}

	if scoreConfigFile == "" {
		return flags.MergeWithDefaults(config.Config{}), nil
	}

	fileCfg, err := config.LoadConfig(scoreConfigFile)
	if err != nil {
		return config.Config{}, err
	}
	return flags.MergeWithDefaults(*fileCfg), nil
}
