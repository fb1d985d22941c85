package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/analyzing"
	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/registry"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job description into a structured profile",
	Long:  "Analyze segments a job description, extracts tiered keywords and skill mentions, and prints the resulting job profile without scoring any resume.",
	RunE:  runAnalyze,
}

var (
	analyzeJobFile  string
	analyzeRegistry string
	analyzeJSON     bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job description text file (required)")
	analyzeCmd.Flags().StringVar(&analyzeRegistry, "registry", "", "Path to skill registry JSON file (default: embedded registry)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the profile as JSON instead of the formatted summary")

	if err := analyzeCmd.MarkFlagRequired("job"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	reg, err := loadAnalyzeRegistry()
	if err != nil {
		return err
	}

	jobText, err := os.ReadFile(analyzeJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}

	profile := analyzing.New(reg).Analyze(string(jobText))

	if analyzeJSON {
		data, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal job profile: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintJobProfile(profile)
	return nil
}

func loadAnalyzeRegistry() (*registry.Registry, error) {
	if analyzeRegistry == "" {
		return registry.LoadDefault()
	}
	return registry.Load(analyzeRegistry)
}
