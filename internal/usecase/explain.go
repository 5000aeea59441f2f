package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fairyhunter13/internship-recommender/internal/adapter/observability"
	"github.com/fairyhunter13/internship-recommender/internal/domain"
)

const advisorSystemPrompt = "You are a career advisor AI."

const advisorTaskPrompt = `Task:
- Re-rank based on user fit
- For each internship, add a short explanation
- Focus on skills, sector interests, location, and career goals
- Only return internships that are a good match
- Ensure the output is valid JSON
- Return ONLY a JSON array (no text) where each item has fields:
  id, title, company, location, sector, skills, apply_url, explanation`

// RefineWithExplanations asks the generative-model provider to re-rank the
// candidates and attach a per-item rationale. It is a total function: any
// provider or parse failure yields the input candidates with a templated
// explanation instead.
func RefineWithExplanations(ctx context.Context, ai domain.AIClient, profile domain.UserProfile, candidates []domain.ScoredCandidate) []domain.Recommendation {
	items := make([]domain.Recommendation, len(candidates))
	for i, c := range candidates {
		items[i] = toRecommendation(c.Posting)
	}

	refined, err := refine(ctx, ai, profile, items)
	if err != nil {
		slog.Warn("llm refinement degraded to templated explanations",
			slog.Int("candidates", len(items)), slog.Any("error", err))
		observability.PipelineStageFallbacks.WithLabelValues("explain").Inc()
		for i := range items {
			items[i].Explanation = fmt.Sprintf("Matched with %s's profile", profile.Name)
		}
		return items
	}
	return refined
}

func refine(ctx context.Context, ai domain.AIClient, profile domain.UserProfile, items []domain.Recommendation) ([]domain.Recommendation, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshal candidates: %w", err)
	}
	userPrompt := fmt.Sprintf("User profile: %s\nInternship list: %s\n%s",
		profileJSON, itemsJSON, advisorTaskPrompt)

	content, err := ai.ChatJSON(ctx, advisorSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	raw, ok := ExtractJSONList(content)
	if !ok {
		return nil, fmt.Errorf("could not parse model JSON response")
	}
	refined := make([]domain.Recommendation, 0, len(raw))
	for _, r := range raw {
		var rec domain.Recommendation
		if err := json.Unmarshal(r, &rec); err != nil {
			// Tolerate individually malformed items.
			continue
		}
		refined = append(refined, rec)
	}
	return refined, nil
}

func toRecommendation(p *domain.Posting) domain.Recommendation {
	return domain.Recommendation{
		ID:       p.ID,
		Title:    p.Title,
		Company:  p.Company,
		Location: p.Location,
		Sector:   p.Sector,
		Skills:   p.Skills,
		ApplyURL: p.ApplyURL,
	}
}
