package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

// completionTemperature biases the model toward deterministic, literal JSON
// output. This is an accuracy/consistency trade-off, not a performance knob.
const completionTemperature = 0.5

const defaultCompletionURL = "https://api.openai.com/v1/chat/completions"

// CompletionService calls an OpenAI-compatible chat-completions API. Exactly
// one request is made per analysis; there is no retry or backoff.
type CompletionService struct {
	apiKey      string
	apiURL      string
	visionModel string
	textModel   string
	client      *http.Client
	logger      *slog.Logger
}

// NewCompletionService creates a CompletionService from the environment.
func NewCompletionService(logger *slog.Logger) (*CompletionService, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		apiKeyFile := os.Getenv("OPENAI_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY or OPENAI_API_KEY_FILE must be set")
		}

		apiKeyBytes, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}

		apiKey = strings.TrimSpace(string(apiKeyBytes))
		if apiKey == "" {
			return nil, fmt.Errorf("API key file is empty")
		}
	}

	apiURL := os.Getenv("OPENAI_API_URL")
	if apiURL == "" {
		apiURL = defaultCompletionURL
	}

	visionModel := os.Getenv("OPENAI_VISION_MODEL")
	if visionModel == "" {
		visionModel = "gpt-4o-mini"
	}
	textModel := os.Getenv("OPENAI_TEXT_MODEL")
	if textModel == "" {
		textModel = "gpt-4"
	}

	return &CompletionService{
		apiKey:      apiKey,
		apiURL:      apiURL,
		visionModel: visionModel,
		textModel:   textModel,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}, nil
}

type imageURLPayload struct {
	URL string `json:"url"`
}

type contentPart struct {
	Type     string           `json:"type"`
	Text     string           `json:"text,omitempty"`
	ImageURL *imageURLPayload `json:"image_url,omitempty"`
}

// message content is either a plain string or a multimodal part list.
type message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// AnalyzeImage sends a single multimodal instruction combining the rendered
// prompt and the data-URL image fragment, returning the raw response text.
func (s *CompletionService) AnalyzeImage(ctx context.Context, prompt, imageDataURL string) (string, error) {
	req := completionRequest{
		Model: s.visionModel,
		Messages: []message{
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: prompt},
					{Type: "image_url", ImageURL: &imageURLPayload{URL: imageDataURL}},
				},
			},
		},
		Temperature: completionTemperature,
	}
	return s.complete(ctx, req)
}

// CompleteText sends a text-only instruction with a system role, returning
// the raw response text.
func (s *CompletionService) CompleteText(ctx context.Context, system, prompt string) (string, error) {
	req := completionRequest{
		Model: s.textModel,
		Messages: []message{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature: completionTemperature,
	}
	return s.complete(ctx, req)
}

func (s *CompletionService) complete(ctx context.Context, reqBody completionRequest) (string, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return "", upstreamFailure("completion request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", upstreamFailure("failed to read completion response", err)
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("completion request rejected",
			"status", resp.StatusCode, "body", string(body))
		return "", upstreamFailure(fmt.Sprintf("completion API returned status %d", resp.StatusCode), nil)
	}

	var result completionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", upstreamFailure("failed to decode completion response", err)
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", upstreamFailure("no content returned by model", nil)
	}

	s.logger.Debug("completion call finished",
		"model", reqBody.Model, "elapsed", time.Since(start))

	return result.Choices[0].Message.Content, nil
}
