package output

import "context"

// InsightGenerator interface - Output port
// Defines what the application needs from a generative-text provider
type InsightGenerator interface {
	// GenerateText sends a single user prompt to the provider's fixed model and
	// returns the produced text. Failures are wrapped with domain.ErrUpstreamUnavailable.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
