package input

import (
	"context"

	"weather-insight/internal/domain"
)

// InsightService interface - Input port (use case)
type InsightService interface {
	// Generate forwards a free-text prompt and returns the produced text verbatim
	Generate(ctx context.Context, prompt string) (string, error)

	// AnalyzeEvents builds a digest of the events, wraps it in the analysis
	// template and generates an insight from it
	AnalyzeEvents(ctx context.Context, events []domain.CalendarEvent) (string, error)
}
