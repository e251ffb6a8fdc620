package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowpaw/steampet/pkg/config"
	"github.com/glowpaw/steampet/pkg/llm/mocks"
)

func emptySettings() *mocks.SettingsMock {
	return &mocks.SettingsMock{LLMSettingsFunc: func() (string, string, string) { return "", "", "" }}
}

func TestClient_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "you are a desktop pet", req.Messages[0].Content)
		assert.Equal(t, "say hi", req.Messages[1].Content)

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "  你好呀！ "}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp) //nolint:errcheck // test server
	}))
	defer server.Close()

	client := NewClient(config.LLMConfig{
		Endpoint: server.URL + "/v1",
		APIKey:   "test-key",
		Model:    "gpt-4o-mini",
	}, emptySettings())

	answer, err := client.Complete(context.Background(), "you are a desktop pet", "say hi")
	require.NoError(t, err)
	assert.Equal(t, "你好呀！", answer, "answer trimmed")
}

func TestClient_SettingsOverrideConfig(t *testing.T) {
	var gotModel string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer runtime-key", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotModel = req.Model

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: "ok"}}},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp) //nolint:errcheck // test server
	}))
	defer server.Close()

	settings := &mocks.SettingsMock{
		LLMSettingsFunc: func() (string, string, string) {
			return server.URL + "/v1", "runtime-key", "runtime-model"
		},
	}
	client := NewClient(config.LLMConfig{Endpoint: "https://unused.example.com", APIKey: "config-key", Model: "config-model"}, settings)

	_, err := client.Complete(context.Background(), "", "ping")
	require.NoError(t, err)
	assert.Equal(t, "runtime-model", gotModel)
}

func TestClient_NoKeyConfigured(t *testing.T) {
	client := NewClient(config.LLMConfig{}, emptySettings())

	assert.False(t, client.Configured())
	_, err := client.Complete(context.Background(), "", "ping")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no api key")
}

func TestClient_ConfiguredFromEitherSource(t *testing.T) {
	fromConfig := NewClient(config.LLMConfig{APIKey: "k"}, emptySettings())
	assert.True(t, fromConfig.Configured())

	fromSettings := NewClient(config.LLMConfig{}, &mocks.SettingsMock{
		LLMSettingsFunc: func() (string, string, string) { return "", "runtime-key", "" },
	})
	assert.True(t, fromSettings.Configured())
}

func TestClient_Probe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 1, req.MaxTokens, "probe spends one token")

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: "h"}}},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp) //nolint:errcheck // test server
	}))
	defer server.Close()

	client := NewClient(config.LLMConfig{Endpoint: server.URL + "/v1", APIKey: "test-key", Model: "m"}, emptySettings())
	require.NoError(t, client.Probe(context.Background()))
}

func TestClient_ProbeEndpointDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(config.LLMConfig{Endpoint: server.URL + "/v1", APIKey: "bad-key", Model: "m"}, emptySettings())
	require.Error(t, client.Probe(context.Background()))
}

func TestClient_Stream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Stream)

		w.Header().Set("Content-Type", "text/event-stream")
		for _, chunk := range []string{"你好", "，", "今天也要加油"} {
			delta := openai.ChatCompletionStreamResponse{
				Choices: []openai.ChatCompletionStreamChoice{
					{Delta: openai.ChatCompletionStreamChoiceDelta{Content: chunk}},
				},
			}
			data, err := json.Marshal(delta)
			require.NoError(t, err)
			fmt.Fprintf(w, "data: %s\n\n", data)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer server.Close()

	client := NewClient(config.LLMConfig{Endpoint: server.URL + "/v1", APIKey: "test-key", Model: "m"}, emptySettings())

	var got strings.Builder
	err := client.Stream(context.Background(), "", "greet me", func(chunk string) {
		got.WriteString(chunk)
	})
	require.NoError(t, err)
	assert.Equal(t, "你好，今天也要加油", got.String())
}

func TestClient_StreamCancelled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		delta := openai.ChatCompletionStreamResponse{
			Choices: []openai.ChatCompletionStreamChoice{
				{Delta: openai.ChatCompletionStreamChoiceDelta{Content: "partial"}},
			},
		}
		data, _ := json.Marshal(delta)
		fmt.Fprintf(w, "data: %s\n\n", data)
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		<-release // hold the stream open until the client goes away
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	client := NewClient(config.LLMConfig{Endpoint: server.URL + "/v1", APIKey: "test-key", Model: "m"}, emptySettings())

	var chunks []string
	errCh := make(chan error, 1)
	go func() {
		errCh <- client.Stream(ctx, "", "greet me", func(chunk string) {
			chunks = append(chunks, chunk)
			cancel() // cancel as soon as the first chunk lands
		})
	}()

	err := <-errCh
	require.Error(t, err)
	assert.Equal(t, []string{"partial"}, chunks)
}
