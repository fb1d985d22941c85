package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/types"
)

func TestMatchHardSkills_RequiredAndPreferredPartitions(t *testing.T) {
	job := analyzeJob(t, "Requirements: Python, Django, PostgreSQL. Preferred: AWS, Docker.")
	resume := &types.ResumeProfile{FullText: "Python, PostgreSQL"}

	result := New(defaultRegistry(t)).MatchHardSkills(context.Background(), job, resume)

	// required fraction 2/3, preferred fraction 0/2
	assert.InDelta(t, (2.0/3.0*0.8)*100, result.Score, 0.1)
	assert.Len(t, result.Matched, 2)
	assert.Len(t, result.Missing, 3)
}

func TestMatchHardSkills_DeclaredSkillsCount(t *testing.T) {
	job := analyzeJob(t, "Requirements: Python, Django.")
	resume := &types.ResumeProfile{
		FullText: "Experienced backend developer.",
		Skills: []types.ResumeSkill{
			{Name: "Python", Category: types.SkillCategoryHard},
			{Name: "Django", Category: types.SkillCategoryHard},
		},
	}

	result := New(defaultRegistry(t)).MatchHardSkills(context.Background(), job, resume)

	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, 2, result.TierBreakdown[types.MatchExact])
}

func TestMatchHardSkills_SynonymGetsPartialCredit(t *testing.T) {
	job := analyzeJob(t, "Requirements: Kubernetes.")
	resume := &types.ResumeProfile{
		FullText: "Ran k8s clusters.",
		Skills:   []types.ResumeSkill{{Name: "k8s"}},
	}

	result := New(defaultRegistry(t)).MatchHardSkills(context.Background(), job, resume)

	// Job side resolves exact, resume side synonym: weaker tier wins.
	assert.InDelta(t, (0.8*0.8)*100, result.Score, 0.1)
	assert.Equal(t, 1, result.TierBreakdown[types.MatchSynonym])
}

func TestMatchHardSkills_NoMentionsIsVacuous(t *testing.T) {
	job := analyzeJob(t, "We value curiosity above all else.")
	resume := &types.ResumeProfile{FullText: ""}

	result := New(defaultRegistry(t)).MatchHardSkills(context.Background(), job, resume)

	assert.Equal(t, 100.0, result.Score)
}

func TestMatchSoftSkills_PreferredWeighting(t *testing.T) {
	job := analyzeJob(t, "Requirements: communication. Preferred: leadership.")
	resume := &types.ResumeProfile{FullText: "Strong communication record."}

	result := New(defaultRegistry(t)).MatchSoftSkills(context.Background(), job, resume)

	// required fraction 1, preferred fraction 0, soft weights (0.6, 0.4)
	assert.InDelta(t, 60.0, result.Score, 0.1)
}

func TestMatchSkills_PartitionInvariant(t *testing.T) {
	job := analyzeJob(t, "Requirements: Python, Django, PostgreSQL. Preferred: AWS, Docker.")
	resume := &types.ResumeProfile{FullText: "Python only."}

	result := New(defaultRegistry(t)).MatchHardSkills(context.Background(), job, resume)

	require.Len(t, job.HardSkills, 5)
	assert.Equal(t, 5, len(result.Matched)+len(result.Missing))
}
