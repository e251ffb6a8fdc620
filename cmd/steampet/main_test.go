package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowpaw/steampet/pkg/config"
)

func TestRun_StartStop(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := config.Default()
	cfg.Data.Dir = tmpDir
	cfg.Epic.BaseURL = "http://127.0.0.1:1" // unreachable, fetch fails fast
	cfg.Server.Enabled = true
	cfg.Server.Listen = "127.0.0.1:0"

	settings := config.NewStore(filepath.Join(tmpDir, "settings.json"), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, cancel, cfg, settings, false) }()

	time.Sleep(300 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after cancel")
	}
}

func TestSecrets(t *testing.T) {
	assert.Empty(t, secrets("", ""))
	assert.Equal(t, []string{"key-1", "key-2"}, secrets("key-1", "", "key-2"))
}

func TestDefaultMenuLayout(t *testing.T) {
	require.Len(t, defaultMenuLayout, 8)
	seen := map[string]bool{}
	for _, key := range defaultMenuLayout {
		assert.False(t, seen[key], "duplicate slot key %s", key)
		seen[key] = true
	}
}
