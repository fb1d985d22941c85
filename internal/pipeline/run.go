// Package pipeline provides the high-level orchestration for scoring
// one or more resumes against a job description.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-scorer/internal/analyzing"
	"github.com/jonathan/ats-scorer/internal/matching"
	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/parsing"
	"github.com/jonathan/ats-scorer/internal/registry"
	"github.com/jonathan/ats-scorer/internal/scoring"
	"github.com/jonathan/ats-scorer/internal/semantic"
	"github.com/jonathan/ats-scorer/internal/types"
)

// maxConcurrentScores bounds the number of resumes scored in parallel.
const maxConcurrentScores = 4

// RunOptions holds configuration for a scoring run.
type RunOptions struct {
	JobPath         string
	ResumePaths     []string
	RegistryPath    string // empty uses the embedded default registry
	OutputDir       string // empty disables report files
	APIKey          string // empty disables the semantic judge
	Model           string
	SemanticTimeout time.Duration
	Verbose         bool
	Logger          *zap.Logger
}

// Result pairs one resume with its score report.
type Result struct {
	ResumePath string             `json:"resume_path"`
	Report     *types.ScoreReport `json:"report"`
}

// Run scores every resume in opts against the job description and
// returns results in the input order. Resumes are scored concurrently;
// the job profile and registry are immutable and shared.
func Run(ctx context.Context, opts RunOptions) ([]Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	reg, err := loadRegistry(opts.RegistryPath)
	if err != nil {
		return nil, err
	}

	jobText, err := os.ReadFile(opts.JobPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	job := analyzing.New(reg).Analyze(string(jobText))
	log.Info("job analyzed",
		zap.String("title", job.Title),
		zap.Int("keywords", job.Keywords.Len()),
		zap.Int("hard_skills", len(job.HardSkills)),
		zap.Int("soft_skills", len(job.SoftSkills)),
	)

	matcher, cleanup, err := buildMatcher(ctx, reg, opts, log)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	calc := scoring.New()
	results := make([]Result, len(opts.ResumePaths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentScores)
	for i, path := range opts.ResumePaths {
		i, path := i, path
		g.Go(func() error {
			resume, err := parsing.LoadResumeProfile(path)
			if err != nil {
				return fmt.Errorf("resume %s: %w", path, err)
			}
			matches := matcher.MatchAll(gctx, job, resume)
			results[i] = Result{
				ResumePath: path,
				Report:     calc.Calculate(job, matches, resume),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Verbose {
		printVerbose(job, results)
	}

	if opts.OutputDir != "" {
		if err := writeReports(opts.OutputDir, results); err != nil {
			return nil, err
		}
	}

	return results, nil
}

// loadRegistry loads the registry from disk, or the embedded default
// when no path is configured.
func loadRegistry(path string) (*registry.Registry, error) {
	if path == "" {
		return registry.LoadDefault()
	}
	return registry.Load(path)
}

// buildMatcher wires the matcher, attaching the semantic judge behind
// the deterministic fallback when an API key is configured. The returned
// cleanup releases the judge's API client.
func buildMatcher(ctx context.Context, reg *registry.Registry, opts RunOptions, log *zap.Logger) (*matching.Matcher, func(), error) {
	if opts.APIKey == "" {
		return matching.New(reg), func() {}, nil
	}

	gemini, err := semantic.NewGeminiJudge(ctx, opts.APIKey, opts.Model)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize semantic judge: %w", err)
	}

	timeout := opts.SemanticTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	judge := matching.NewFallbackJudge(gemini, matching.NewRegistryJudge(reg), timeout, log)
	cleanup := func() {
		if err := gemini.Close(); err != nil {
			log.Warn("failed to close semantic judge", zap.Error(err))
		}
	}
	return matching.New(reg, matching.WithJudge(judge)), cleanup, nil
}

// printVerbose prints the analyzed job once, then each resume's report.
func printVerbose(job *types.JobProfile, results []Result) {
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintJobProfile(job)
	for _, r := range results {
		fmt.Fprintf(os.Stdout, "\n%s\n", r.ResumePath)
		printer.PrintScoreReport(r.Report)
	}
}

// writeReports writes one indented JSON report per resume into dir,
// named after the resume file.
func writeReports(dir string, results []Result) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, r := range results {
		data, err := json.MarshalIndent(r.Report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		name := reportFileName(r.ResumePath)
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

// reportFileName derives "<resume base>_score.json".
func reportFileName(resumePath string) string {
	base := filepath.Base(resumePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + "_score.json"
}
