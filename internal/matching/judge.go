// Package matching compares resume-derived terms against job-derived
// terms, producing one MatchResult per scored category.
package matching

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/ats-scorer/internal/registry"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Judge is the capability interface for term-equivalence judgments.
// Implementations return a confidence in [0,1] that the two terms name
// the same skill or concept. The deterministic registry matcher
// implements the same interface, so callers compose semantic-then-
// fallback without special-casing.
type Judge interface {
	JudgeEquivalence(ctx context.Context, termA, termB string) (float64, error)
}

// semanticMatchThreshold is the confidence at which a semantic judgment
// counts as a synonym-tier match.
const semanticMatchThreshold = 0.8

// RegistryJudge is the deterministic Judge: equivalence via the skill
// registry's canonical/synonym/related relations.
type RegistryJudge struct {
	reg *registry.Registry
}

// NewRegistryJudge constructs the deterministic judge.
func NewRegistryJudge(reg *registry.Registry) *RegistryJudge {
	return &RegistryJudge{reg: reg}
}

// JudgeEquivalence resolves both terms against the registry and reports
// the weaker match tier's credit when they share a canonical skill, 1.0
// on direct case-insensitive equality, and 0 otherwise. It never errors.
func (j *RegistryJudge) JudgeEquivalence(_ context.Context, termA, termB string) (float64, error) {
	if equalFold(termA, termB) {
		return 1.0, nil
	}

	ra := j.reg.Resolve(termA)
	rb := j.reg.Resolve(termB)
	if ra.Category == types.SkillCategoryUnknown || rb.Category == types.SkillCategoryUnknown {
		return 0, nil
	}
	if ra.Canonical != rb.Canonical {
		return 0, nil
	}

	return weakerCredit(ra.Match, rb.Match), nil
}

// FallbackJudge wraps a primary (typically semantic) judge with a
// timeout and a deterministic fallback. Primary failures are logged as
// degraded-mode events and never surface to the caller.
type FallbackJudge struct {
	primary  Judge
	fallback Judge
	timeout  time.Duration
	log      *zap.Logger
}

// NewFallbackJudge composes primary-then-fallback. A nil logger is
// replaced with a no-op logger.
func NewFallbackJudge(primary, fallback Judge, timeout time.Duration, log *zap.Logger) *FallbackJudge {
	if log == nil {
		log = zap.NewNop()
	}
	return &FallbackJudge{primary: primary, fallback: fallback, timeout: timeout, log: log}
}

// JudgeEquivalence consults the primary judge within the timeout and
// falls back deterministically on any error or timeout.
func (j *FallbackJudge) JudgeEquivalence(ctx context.Context, termA, termB string) (float64, error) {
	if j.primary != nil {
		judgeCtx, cancel := context.WithTimeout(ctx, j.timeout)
		confidence, err := j.primary.JudgeEquivalence(judgeCtx, termA, termB)
		cancel()
		if err == nil {
			return confidence, nil
		}
		j.log.Warn("semantic judge failed, using deterministic fallback",
			zap.String("term_a", termA),
			zap.String("term_b", termB),
			zap.Error(err),
		)
	}
	return j.fallback.JudgeEquivalence(ctx, termA, termB)
}

// weakerCredit returns the credit of the lower-confidence match tier.
func weakerCredit(a, b types.MatchTier) float64 {
	ca, cb := a.Credit(), b.Credit()
	if ca < cb {
		return ca
	}
	return cb
}
