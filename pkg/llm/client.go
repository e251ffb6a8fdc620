package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/glowpaw/steampet/pkg/config"
)

//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . Settings

// Settings provides the runtime LLM overrides from the settings store
type Settings interface {
	LLMSettings() (baseURL, apiKey, model string)
}

// Client talks to an OpenAI-compatible chat endpoint. Runtime settings
// override the config defaults on every call, so a key pasted into the
// settings window takes effect without a restart.
type Client struct {
	cfg      config.LLMConfig
	settings Settings
}

// NewClient creates an LLM client over config defaults and runtime settings
func NewClient(cfg config.LLMConfig, settings Settings) *Client {
	return &Client{cfg: cfg, settings: settings}
}

// resolved is the effective endpoint after runtime overrides
type resolved struct {
	client *openai.Client
	model  string
}

func (c *Client) resolve() (resolved, error) {
	baseURL, apiKey, model := c.settings.LLMSettings()
	if apiKey == "" {
		apiKey = c.cfg.APIKey
	}
	if baseURL == "" {
		baseURL = c.cfg.Endpoint
	}
	if model == "" {
		model = c.cfg.Model
	}
	if apiKey == "" {
		return resolved{}, errors.New("no api key configured")
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	return resolved{client: openai.NewClientWithConfig(clientConfig), model: model}, nil
}

// Configured reports whether an API key is available from settings or config
func (c *Client) Configured() bool {
	_, apiKey, _ := c.settings.LLMSettings()
	return apiKey != "" || c.cfg.APIKey != ""
}

// Probe performs a minimal one-token completion to verify the endpoint
func (c *Client) Probe(ctx context.Context) error {
	r, err := c.resolve()
	if err != nil {
		return err
	}
	_, err = r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     r.model,
		MaxTokens: 1,
		Messages:  []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: "hi"}},
	})
	if err != nil {
		return fmt.Errorf("probe endpoint: %w", err)
	}
	return nil
}

// Complete runs one chat completion and returns the trimmed answer
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	r, err := c.resolve()
	if err != nil {
		return "", err
	}

	resp, err := r.client.CreateChatCompletion(ctx, c.request(r.model, systemPrompt, userPrompt))
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Stream runs one streaming chat completion, invoking onDelta for every
// content chunk as it arrives. Cancellation goes through ctx.
func (c *Client) Stream(ctx context.Context, systemPrompt, userPrompt string, onDelta func(chunk string)) error {
	r, err := c.resolve()
	if err != nil {
		return err
	}

	req := c.request(r.model, systemPrompt, userPrompt)
	req.Stream = true

	stream, err := r.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return fmt.Errorf("open stream: %w", err)
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("receive chunk: %w", err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		if chunk := resp.Choices[0].Delta.Content; chunk != "" {
			onDelta(chunk)
		}
	}
}

func (c *Client) request(model, systemPrompt, userPrompt string) openai.ChatCompletionRequest {
	req := openai.ChatCompletionRequest{
		Model:       model,
		Temperature: float32(c.cfg.Temperature),
		MaxTokens:   c.cfg.MaxTokens,
	}
	if systemPrompt != "" {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: systemPrompt})
	}
	req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: userPrompt})
	return req
}
