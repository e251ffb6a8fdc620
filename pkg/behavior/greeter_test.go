package behavior

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowpaw/steampet/pkg/behavior/mocks"
	"github.com/glowpaw/steampet/pkg/domain"
	"github.com/glowpaw/steampet/pkg/steam"
)

// promptsStub records the last assembly request
type promptsStub struct {
	name string
	vars map[string]string
	out  string
	err  error
}

func (p *promptsStub) Assemble(name string, vars map[string]string) (string, error) {
	p.name = name
	p.vars = vars
	return p.out, p.err
}

// syncRecorder is a recorder whose done event releases a channel, so tests
// can wait for the background stream
type syncRecorder struct {
	*recorder
	done chan struct{}
}

func newSyncRecorder() *syncRecorder {
	r := &syncRecorder{recorder: newRecorder(), done: make(chan struct{}, 1)}
	inner := r.SpeechMock.StreamDoneFunc
	r.SpeechMock.StreamDoneFunc = func(id string) {
		inner(id)
		r.done <- struct{}{}
	}
	return r
}

func (r *syncRecorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(time.Second):
		t.Fatal("stream never finished")
	}
}

func testDatasets() steam.Datasets {
	created := time.Now().AddDate(-10, -1, 0) // ten years and change
	return steam.Datasets{
		Summary: &domain.PlayerSummary{
			PersonaName: "Gordon",
			SteamLevel:  42,
			TimeCreated: created.Unix(),
			LastLogoff:  time.Date(2026, 2, 28, 23, 30, 0, 0, time.Local).Unix(),
		},
		Games: &domain.GamesPayload{
			Count:         120,
			AllGames:      []domain.Game{{AppID: 220, Name: "Half-Life 2"}},
			TotalPlaytime: 6000, // minutes
			Top2Weeks: []domain.Game{
				{Name: "Half-Life 2"}, {Name: "Portal"}, {Name: "Dota 2"}, {Name: "Factorio"},
			},
		},
	}
}

func TestGreeter_SayHello(t *testing.T) {
	t.Run("streams the assembled greeting", func(t *testing.T) {
		speech := newSyncRecorder()
		llm := &mocks.LLMMock{
			StreamFunc: func(_ context.Context, _, user string, onDelta func(string)) error {
				assert.Equal(t, "assembled prompt", user)
				onDelta("你好，Gordon！")
				return nil
			},
		}
		prompts := &promptsStub{out: "assembled prompt"}
		cache := &mocks.CacheReaderMock{GameDatasetsFunc: testDatasets}
		settings := &mocks.GreetingSettingsMock{SayHelloContentFunc: func(def string) string { return def }}

		g := NewGreeter(fixedStreamer(llm, speech.recorder, "r1"), prompts, settings, cache)
		g.SayHello(context.Background())
		speech.wait(t)

		assert.Equal(t, []string{"started:r1", "delta:r1:你好，Gordon！", "done:r1"}, speech.events)
		assert.Equal(t, "say_hello", prompts.name)
	})

	t.Run("prompt vars carry the profile facts", func(t *testing.T) {
		vars := greetingVars(testDatasets())
		assert.Equal(t, "Gordon", vars["persona"])
		assert.Equal(t, "42", vars["level"])
		assert.Equal(t, "120", vars["game_count"])
		assert.Equal(t, "100", vars["total_hours"])
		assert.Equal(t, "Half-Life 2、Portal、Dota 2", vars["recent_games"], "capped at three names")
		assert.Equal(t, "10", vars["account_age"])
		assert.NotEqual(t, "未知", vars["created"])
		assert.NotEqual(t, "未知", vars["last_logoff"])
	})

	t.Run("empty cache uses placeholder facts", func(t *testing.T) {
		vars := greetingVars(steam.Datasets{})
		assert.Equal(t, "玩家", vars["persona"])
		assert.Equal(t, "0", vars["game_count"])
		assert.Equal(t, "最近没怎么玩", vars["recent_games"])
		assert.Equal(t, "未知", vars["created"])
	})

	t.Run("llm failure degrades to configured static greeting", func(t *testing.T) {
		speech := newSyncRecorder()
		llm := &mocks.LLMMock{
			StreamFunc: func(context.Context, string, string, func(string)) error {
				return errors.New("no api key configured")
			},
		}
		prompts := &promptsStub{out: "assembled prompt"}
		cache := &mocks.CacheReaderMock{GameDatasetsFunc: func() steam.Datasets { return steam.Datasets{} }}
		settings := &mocks.GreetingSettingsMock{SayHelloContentFunc: func(string) string { return "主人好！" }}

		g := NewGreeter(fixedStreamer(llm, speech.recorder, "r1"), prompts, settings, cache)
		g.SayHello(context.Background())
		speech.wait(t)

		require.Len(t, speech.events, 3)
		assert.Equal(t, "delta:r1:主人好！", speech.events[1])
	})

	t.Run("fresh session per call", func(t *testing.T) {
		speech := newSyncRecorder()
		llm := &mocks.LLMMock{
			StreamFunc: func(_ context.Context, _, _ string, onDelta func(string)) error {
				onDelta("嗨")
				return nil
			},
		}
		prompts := &promptsStub{out: "p"}
		cache := &mocks.CacheReaderMock{GameDatasetsFunc: func() steam.Datasets { return steam.Datasets{} }}
		settings := &mocks.GreetingSettingsMock{SayHelloContentFunc: func(def string) string { return def }}

		g := NewGreeter(fixedStreamer(llm, speech.recorder, "r1", "r2"), prompts, settings, cache)
		g.SayHello(context.Background())
		speech.wait(t)
		g.SayHello(context.Background())
		speech.wait(t)

		started := make([]string, 0, 2)
		for _, ev := range speech.events {
			if strings.HasPrefix(ev, "started:") {
				started = append(started, strings.TrimPrefix(ev, "started:"))
			}
		}
		assert.Equal(t, []string{"r1", "r2"}, started)
	})
}
