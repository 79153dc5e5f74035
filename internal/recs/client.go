package recs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"recohub/pkg/logger"
	"recohub/pkg/utils"
)

// GenTimeout bounds one generation request end to end. There is no retry;
// the caller surfaces a failure and the user may re-trigger manually.
const GenTimeout = 25 * time.Second

const (
	temperature = 0.6
	maxTokens   = 3000
)

var (
	// ErrRateLimited maps the endpoint's HTTP 429.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrQuotaExhausted maps the endpoint's HTTP 402.
	ErrQuotaExhausted = errors.New("ai credits exhausted")
)

// Generator produces one best-effort text completion for a system/user
// prompt pair. The HTTP client below is the only implementation outside of
// tests.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

type Client struct {
	Endpoint   string
	APIKey     string
	Model      string
	HTTPClient *http.Client
	Log        *logger.Logger
}

func NewClient(cfg utils.GenConfig, log *logger.Logger) *Client {
	return &Client{
		Endpoint:   cfg.Endpoint,
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		HTTPClient: &http.Client{},
		Log:        log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, GenTimeout)
	defer cancel()

	body, err := json.Marshal(chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call generation endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if c.Log != nil {
			c.Log.Error("generation endpoint error", "status", resp.StatusCode, "body", string(errBody))
		}
		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			return "", ErrRateLimited
		case http.StatusPaymentRequired:
			return "", ErrQuotaExhausted
		default:
			return "", fmt.Errorf("generation endpoint error: status %d", resp.StatusCode)
		}
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", errors.New("no content in model response")
	}
	return out.Choices[0].Message.Content, nil
}
