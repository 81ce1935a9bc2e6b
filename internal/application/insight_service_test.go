package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"weather-insight/internal/domain"
)

// TestInsightServiceGenerate tests that the prompt is forwarded verbatim
func TestInsightServiceGenerate(t *testing.T) {
	generator := &MockInsightGenerator{}
	service := NewInsightService(generator, time.UTC)

	text, err := service.Generate(context.Background(), "What should I wear?")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "AI response" {
		t.Errorf("expected AI response, got %s", text)
	}
	if generator.LastPrompt != "What should I wear?" {
		t.Errorf("unexpected prompt: %s", generator.LastPrompt)
	}
}

// TestInsightServiceEmptyPrompt tests that blank prompts are rejected locally
func TestInsightServiceEmptyPrompt(t *testing.T) {
	generator := &MockInsightGenerator{}
	service := NewInsightService(generator, time.UTC)

	_, err := service.Generate(context.Background(), "   ")

	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if generator.Calls != 0 {
		t.Error("expected generator not to be called")
	}
}

// TestInsightServiceUpstreamFailure tests that generator errors are wrapped
func TestInsightServiceUpstreamFailure(t *testing.T) {
	generator := &MockInsightGenerator{
		GenerateTextFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("quota exceeded")
		},
	}
	service := NewInsightService(generator, time.UTC)

	_, err := service.Generate(context.Background(), "hello")

	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Errorf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

// TestInsightServiceAnalyzeEvents tests the digest embedded in the analysis prompt
func TestInsightServiceAnalyzeEvents(t *testing.T) {
	generator := &MockInsightGenerator{}
	service := NewInsightService(generator, time.UTC)
	events := []domain.CalendarEvent{
		{Summary: "Standup", Start: &domain.EventTime{DateTime: "2024-01-01T09:00:00Z"}},
		{Start: &domain.EventTime{Date: "2024-01-02"}},
	}

	_, err := service.AnalyzeEvents(context.Background(), events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(generator.LastPrompt, "• Standup on 1/1/2024, 9:00:00 AM") {
		t.Errorf("expected standup line in prompt, got %s", generator.LastPrompt)
	}
	if !strings.Contains(generator.LastPrompt, "• Untitled event on 2024-01-02") {
		t.Errorf("expected untitled line in prompt, got %s", generator.LastPrompt)
	}
	if !strings.Contains(generator.LastPrompt, "Here are the upcoming events:") {
		t.Error("expected instructional template in prompt")
	}
}

// TestInsightServiceAnalyzeEmptyList tests that an empty list still produces a prompt
func TestInsightServiceAnalyzeEmptyList(t *testing.T) {
	generator := &MockInsightGenerator{}
	service := NewInsightService(generator, time.UTC)

	_, err := service.AnalyzeEvents(context.Background(), []domain.CalendarEvent{})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if generator.Calls != 1 {
		t.Errorf("expected one generator call, got %d", generator.Calls)
	}
}

// TestInsightServiceAnalyzeNilEvents tests that a missing list is rejected
func TestInsightServiceAnalyzeNilEvents(t *testing.T) {
	generator := &MockInsightGenerator{}
	service := NewInsightService(generator, time.UTC)

	_, err := service.AnalyzeEvents(context.Background(), nil)

	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if generator.Calls != 0 {
		t.Error("expected generator not to be called")
	}
}
