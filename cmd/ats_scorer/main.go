// Package main provides the entry point for the ATS scorer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_scorer",
	Short: "ATS resume compatibility scorer",
	Long:  "ats_scorer analyzes a job description, matches one or more resumes against it, and produces weighted compatibility reports with actionable recommendations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
