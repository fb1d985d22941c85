// Package semantic provides the optional LLM-backed term-equivalence
// judge. It implements the matching.Judge interface; availability is
// never required, and callers wrap it with a deterministic fallback.
package semantic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the Gemini model used for equivalence judgments.
// Equivalence is a cheap classification task, so the lite tier suffices.
const DefaultModel = "gemini-2.0-flash-lite"

const judgePromptTemplate = `You are comparing two skill or technology terms from a resume and a job description.

Term A: %q
Term B: %q

Do these terms refer to the same skill, technology, or competency?
Respond with JSON only: {"confidence": <number between 0.0 and 1.0>, "reasoning": "<one sentence>"}
confidence 1.0 means definitely the same, 0.0 means definitely unrelated.`

// judgeResponse is the expected JSON shape from the model.
type judgeResponse struct {
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// GeminiJudge judges term equivalence with a Gemini model.
type GeminiJudge struct {
	client *genai.Client
	model  string
}

// NewGeminiJudge constructs a judge against the Gemini API. The API key
// is required; model may be empty to use DefaultModel.
func NewGeminiJudge(ctx context.Context, apiKey, model string) (*GeminiJudge, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiJudge{client: client, model: model}, nil
}

// JudgeEquivalence asks the model whether the two terms name the same
// skill and returns its confidence in [0,1].
func (j *GeminiJudge) JudgeEquivalence(ctx context.Context, termA, termB string) (float64, error) {
	model := j.client.GenerativeModel(j.model)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	prompt := fmt.Sprintf(judgePromptTemplate, termA, termB)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return 0, fmt.Errorf("equivalence judgment failed: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return 0, err
	}

	var parsed judgeResponse
	if err := json.Unmarshal([]byte(cleanJSONBlock(text)), &parsed); err != nil {
		return 0, fmt.Errorf("failed to parse judge response: %w (content: %s)", err, text)
	}

	if parsed.Confidence < 0 {
		parsed.Confidence = 0
	}
	if parsed.Confidence > 1 {
		parsed.Confidence = 1
	}
	return parsed.Confidence, nil
}

// Close releases the underlying API client.
func (j *GeminiJudge) Close() error {
	if j.client != nil {
		return j.client.Close()
	}
	return nil
}

// extractText pulls the text parts out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
