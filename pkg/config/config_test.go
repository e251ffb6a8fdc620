package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
server:
  enabled: true
  listen: "127.0.0.1:9090"
  timeout: 45s

behavior:
  speak_chance_denominator: 1500
  min_push_gap: 90s

news:
  feeds:
    - url: https://example.com/feed1.xml
      name: Feed1
    - url: https://example.com/feed2.xml
      name: Feed2
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.True(t, cfg.Server.Enabled)
		assert.Equal(t, "127.0.0.1:9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)

		assert.Equal(t, 1500, cfg.Behavior.SpeakChanceDenominator)
		assert.Equal(t, 90*time.Second, cfg.Behavior.MinPushGap)

		require.Len(t, cfg.News.Feeds, 2)
		assert.Equal(t, "https://example.com/feed1.xml", cfg.News.Feeds[0].URL)
		assert.Equal(t, "Feed1", cfg.News.Feeds[0].Name)

		assert.Equal(t, cfg.News.Feeds, cfg.GetFeeds())
		assert.Equal(t, cfg.LLM, cfg.GetLLMConfig())
	})

	t.Run("defaults", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte("{}"), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.False(t, cfg.Server.Enabled)
		assert.Equal(t, "127.0.0.1:8845", cfg.Server.Listen)
		assert.Equal(t, "config", cfg.Data.Dir)
		assert.Equal(t, 100*time.Millisecond, cfg.Behavior.TickInterval)
		assert.Equal(t, 3000, cfg.Behavior.SpeakChanceDenominator)
		assert.Equal(t, 60*time.Second, cfg.Behavior.MinPushGap)
		assert.Equal(t, 300, cfg.Behavior.SpeakTicks)
		assert.Equal(t, "https://api.steampowered.com", cfg.Steam.APIBase)
		assert.Equal(t, 10*time.Second, cfg.Steam.Timeout)
		assert.Equal(t, 5*time.Second, cfg.Steam.StoreTimeout)
		assert.Equal(t, int64(2<<20), cfg.News.MaxBodySize)
		assert.Equal(t, "https://store-site-backend-static-ipv4.ak.epicgames.com", cfg.Epic.BaseURL)
		assert.Equal(t, "0 9 * * *", cfg.Schedule.NewsCron)
		assert.Equal(t, 6*time.Hour, cfg.Schedule.EpicEvery)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "bad.yml")
		err := os.WriteFile(configPath, []byte("server: [not a map"), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("TEST_LLM_KEY", "sk-test")
		configContent := `
llm:
  api_key: $TEST_LLM_KEY
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "env.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name    string
			content string
			errMsg  string
		}{
			{"bad temperature", "llm:\n  temperature: 3.0\n", "llm.temperature"},
			{"feed without url", "news:\n  feeds:\n    - name: NoURL\n", "has no url"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				tmpDir := t.TempDir()
				configPath := filepath.Join(tmpDir, "bad.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tc.content), 0o644))

				_, err := Load(configPath)
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errMsg)
			})
		}
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "config", cfg.Data.Dir)
	assert.Equal(t, 3000, cfg.Behavior.SpeakChanceDenominator)
	assert.NoError(t, validate(cfg))
}
