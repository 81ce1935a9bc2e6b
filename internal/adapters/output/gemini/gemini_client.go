package gemini

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"weather-insight/configs"
	"weather-insight/internal/domain"
	"weather-insight/internal/ports/output"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

var _ output.InsightGenerator = (*GeminiClientAdapter)(nil)

const (
	defaultAPIVersion = "v1beta"
	defaultModel      = "gemini-1.5-flash"
)

// GeminiClientAdapter struct - Output adapter for the Gemini generateContent API
type GeminiClientAdapter struct {
	clientConfig *genai.ClientConfig
	model        string
}

// NewGeminiClientAdapter func - Creates new Gemini client adapter
// An empty base URL uses the SDK's public endpoint.
func NewGeminiClientAdapter(config configs.Gemini) *GeminiClientAdapter {
	model := config.Model
	if model == "" {
		model = defaultModel
	}
	apiVersion := config.APIVersion
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}
	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = 60 * time.Second
	}

	if config.APIKey == "" {
		logrus.Warn("Gemini API key is not configured, insight requests will be rejected")
	}

	logrus.Infof("Gemini client adapter initialized with model: %s, timeout: %v", model, timeout)

	return &GeminiClientAdapter{
		clientConfig: &genai.ClientConfig{
			APIKey:     config.APIKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: &http.Client{Timeout: timeout},
			HTTPOptions: genai.HTTPOptions{
				BaseURL:    config.BaseURL,
				APIVersion: apiVersion,
			},
		},
		model: model,
	}
}

// GenerateText func - Sends one user turn and returns the first candidate's text
func (a *GeminiClientAdapter) GenerateText(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, a.clientConfig)
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", domain.ErrUpstreamUnavailable, err)
	}

	resp, err := client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", domain.ErrUpstreamUnavailable, err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked: %s", domain.ErrUpstreamUnavailable, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", domain.ErrUpstreamUnavailable)
	}

	logrus.Debugf("Gemini generateContent finished with reason %s", resp.Candidates[0].FinishReason)

	return resp.Text(), nil
}
