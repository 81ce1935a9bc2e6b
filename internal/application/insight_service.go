package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"weather-insight/internal/domain"
	"weather-insight/internal/ports/output"
)

// InsightService struct - Application service producing AI-generated text
type InsightService struct {
	generator output.InsightGenerator
	location  *time.Location
}

// NewInsightService func - Creates new insight service.
// location controls how event timestamps are rendered in the digest; nil means time.Local.
func NewInsightService(generator output.InsightGenerator, location *time.Location) *InsightService {
	if location == nil {
		location = time.Local
	}
	return &InsightService{
		generator: generator,
		location:  location,
	}
}

// Generate func - Use case: forward a free-text prompt
func (s *InsightService) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: prompt is required", domain.ErrInvalidInput)
	}

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		if !errors.Is(err, domain.ErrUpstreamUnavailable) {
			err = fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
		}
		return "", err
	}
	return text, nil
}

// AnalyzeEvents func - Use case: summarize a list of calendar events
func (s *InsightService) AnalyzeEvents(ctx context.Context, events []domain.CalendarEvent) (string, error) {
	if events == nil {
		return "", fmt.Errorf("%w: events must be a list", domain.ErrInvalidInput)
	}

	lines := domain.EventDigestLines(events, s.location)
	return s.Generate(ctx, domain.EventAnalysisPrompt(lines))
}
