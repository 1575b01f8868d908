package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"insight-gateway/internal/domain/entity"
	"insight-gateway/internal/domain/repository"
)

const DefaultMaxTokens = 500

type InsightService struct {
	provider  repository.InsightProvider
	maxTokens int
}

func NewInsightService(p repository.InsightProvider, maxTokens int) *InsightService {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &InsightService{provider: p, maxTokens: maxTokens}
}

// Generate returns *entity.InsightText or *entity.InsightObject depending on the mode.
func (s *InsightService) Generate(ctx context.Context, req entity.InsightRequest) (any, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, entity.ErrPromptRequired
	}

	if req.Mode == entity.ModeObject {
		return s.generateObject(ctx, prompt)
	}

	text, err := s.provider.GenerateText(ctx, prompt, s.maxTokens)
	if err != nil {
		return nil, &entity.ProviderError{Op: "text", Err: err}
	}
	return &entity.InsightText{Insight: text}, nil
}

func (s *InsightService) generateObject(ctx context.Context, prompt string) (*entity.InsightObject, error) {
	raw, err := s.provider.GenerateObject(ctx, prompt)
	if err != nil {
		return nil, &entity.ProviderError{Op: "object", Err: err}
	}

	obj, err := decodeInsightObject(raw)
	if err != nil {
		return nil, &entity.ProviderError{Op: "object", Err: err}
	}
	return obj, nil
}

// decodeInsightObject enforces the {summary, anomalies} shape. Missing or
// null fields become "" and [].
func decodeInsightObject(raw string) (*entity.InsightObject, error) {
	var parsed struct {
		Summary   *string  `json:"summary"`
		Anomalies []string `json:"anomalies"`
	}
	raw = strings.TrimSpace(raw)
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			return nil, fmt.Errorf("response does not match insight schema: %w", err)
		}
	}

	obj := &entity.InsightObject{Anomalies: []string{}}
	if parsed.Summary != nil {
		obj.Summary = *parsed.Summary
	}
	if parsed.Anomalies != nil {
		obj.Anomalies = parsed.Anomalies
	}
	return obj, nil
}
