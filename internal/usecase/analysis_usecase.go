package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"resume-match/internal/domain/matching"
)

const (
	maxResumePromptChars = 6000
	aiCallTimeout        = 12 * time.Second
)

// AnalysisResult is the per-request outcome of one resume/job comparison.
type AnalysisResult struct {
	MatchScore    int      `json:"match_score"`
	MissingSkills []string `json:"missing_skills"`
	Improvements  []string `json:"improvements"`
	Roadmap       []string `json:"roadmap"`
}

// TextGenerator is the external AI completion capability. Implementations
// return the raw model text, which is expected to contain a JSON object.
type TextGenerator interface {
	GenerateContent(ctx context.Context, model, prompt string) (string, error)
}

// AnalysisUsecase composes the AI scorer with the deterministic local
// engine. The AI path is attempted once per configured model; the local
// path is the unconditional backstop and never fails.
type AnalysisUsecase struct {
	gen    TextGenerator
	models []string
	logger *log.Logger
}

func NewAnalysisUsecase(gen TextGenerator, models []string, logger *log.Logger) *AnalysisUsecase {
	if logger == nil {
		logger = log.Default()
	}
	return &AnalysisUsecase{gen: gen, models: models, logger: logger}
}

func (uc *AnalysisUsecase) Analyze(ctx context.Context, resumeText, jobTitle, jobDesc string) AnalysisResult {
	if uc.gen != nil && len(uc.models) > 0 {
		if res, ok := uc.analyzeWithAI(ctx, resumeText, jobTitle, jobDesc); ok {
			return res
		}
	}
	return uc.analyzeLocal(resumeText, jobTitle)
}

func (uc *AnalysisUsecase) analyzeWithAI(ctx context.Context, resumeText, jobTitle, jobDesc string) (AnalysisResult, bool) {
	prompt := buildAnalysisPrompt(resumeText, jobTitle, jobDesc)
	for _, model := range uc.models {
		raw, err := uc.generate(ctx, model, prompt)
		if err != nil {
			uc.logger.Printf("[AI] model %s failed, trying next: %v", model, err)
			continue
		}
		res, err := parseAnalysisResponse(raw)
		if err != nil {
			uc.logger.Printf("[AI] model %s returned malformed output: %v", model, err)
			continue
		}
		return res, true
	}
	uc.logger.Printf("[AI] all models failed, falling back to local scoring")
	return AnalysisResult{}, false
}

func (uc *AnalysisUsecase) generate(ctx context.Context, model, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, aiCallTimeout)
	defer cancel()
	return uc.gen.GenerateContent(callCtx, model, prompt)
}

func (uc *AnalysisUsecase) analyzeLocal(resumeText, jobTitle string) AnalysisResult {
	roleKey := matching.ClassifyRole(jobTitle)
	profile := matching.ProfileFor(roleKey)
	skills := matching.ExtractSkills(resumeText)
	gap := matching.ScoreGap(skills, profile.RequiredSkills)

	return AnalysisResult{
		MatchScore:    gap.Score,
		MissingSkills: gap.Missing,
		Improvements:  profile.Improvements,
		Roadmap:       profile.Roadmap,
	}
}

func buildAnalysisPrompt(resumeText, jobTitle, jobDesc string) string {
	resume := strings.TrimSpace(resumeText)
	if len(resume) > maxResumePromptChars {
		resume = resume[:maxResumePromptChars]
	}

	var b strings.Builder
	b.WriteString("You are a technical recruiter. Compare the resume below against the job and respond with a single JSON object, no prose, with exactly these fields:\n")
	b.WriteString(`{"match_score": <integer 0-100>, "missing_skills": [<up to 5 strings>], "improvements": [<strings>], "roadmap": [<strings>]}`)
	b.WriteString("\n\nJob title: ")
	b.WriteString(strings.TrimSpace(jobTitle))
	if d := strings.TrimSpace(jobDesc); d != "" {
		b.WriteString("\nJob description: ")
		b.WriteString(d)
	}
	b.WriteString("\n\nResume:\n")
	b.WriteString(resume)
	return b.String()
}

// parseAnalysisResponse extracts the JSON object from raw model output and
// validates that every required field is present and sane.
func parseAnalysisResponse(raw string) (AnalysisResult, error) {
	cleaned := stripCodeFences(raw)
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return AnalysisResult{}, fmt.Errorf("no JSON object in response")
	}

	var parsed struct {
		MatchScore    *int     `json:"match_score"`
		MissingSkills []string `json:"missing_skills"`
		Improvements  []string `json:"improvements"`
		Roadmap       []string `json:"roadmap"`
	}
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &parsed); err != nil {
		return AnalysisResult{}, fmt.Errorf("decode response: %w", err)
	}
	if parsed.MatchScore == nil {
		return AnalysisResult{}, fmt.Errorf("missing match_score")
	}
	if *parsed.MatchScore < 0 || *parsed.MatchScore > 100 {
		return AnalysisResult{}, fmt.Errorf("match_score %d out of range", *parsed.MatchScore)
	}
	if parsed.MissingSkills == nil || parsed.Improvements == nil || parsed.Roadmap == nil {
		return AnalysisResult{}, fmt.Errorf("missing required list fields")
	}

	return AnalysisResult{
		MatchScore:    *parsed.MatchScore,
		MissingSkills: parsed.MissingSkills,
		Improvements:  parsed.Improvements,
		Roadmap:       parsed.Roadmap,
	}, nil
}

// stripCodeFences removes a surrounding ```json ... ``` block if present.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimLeft(s, "\r\n")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
