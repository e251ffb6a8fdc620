package behavior

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowpaw/steampet/pkg/config"
)

// stubSubstate records executions through a channel
type stubSubstate struct {
	name string
	ran  chan string
}

func (s *stubSubstate) Name() string { return s.name }
func (s *stubSubstate) Execute(context.Context) {
	if s.ran != nil {
		s.ran <- s.name
	}
}

func testEngine(subs ...Substate) (*Engine, *recorder) {
	speech := newRecorder()
	cfg := config.BehaviorConfig{SpeakChanceDenominator: 3000, MinPushGap: time.Minute, SpeakTicks: 3}
	e := NewEngine(cfg, speech.SpeechMock, subs...)
	return e, speech
}

func TestEngine_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("dragging overrides everything", func(t *testing.T) {
		e, _ := testEngine()
		e.TransitionTo(StateSpeaking)
		assert.Equal(t, "dragged", e.Update(ctx, true))
		assert.Equal(t, StateSpeaking, e.State(), "drag does not transition")
	})

	t.Run("paused reports idle and forces idle state", func(t *testing.T) {
		e, _ := testEngine()
		e.TransitionTo(StateSpeaking)
		e.SetPaused("menu_hover", true)
		assert.Equal(t, StateIdle, e.State())
		assert.Equal(t, "idle", e.Update(ctx, false))
	})

	t.Run("any reason in the set keeps it paused", func(t *testing.T) {
		e, _ := testEngine()
		e.SetPaused("menu_hover", true)
		e.SetPaused("settings_open", true)
		e.SetPaused("menu_hover", false)
		assert.True(t, e.Paused())
		e.SetPaused("settings_open", false)
		assert.False(t, e.Paused())
	})

	t.Run("idle without a winning roll stays idle", func(t *testing.T) {
		e, _ := testEngine(&stubSubstate{name: "a"})
		e.intn = func(int) int { return 1 } // roll always misses
		for i := 0; i < 100; i++ {
			assert.Equal(t, "idle", e.Update(ctx, false))
		}
		assert.Equal(t, StateIdle, e.State())
	})

	t.Run("winning roll starts speaking and runs one substate", func(t *testing.T) {
		ran := make(chan string, 1)
		e, _ := testEngine(&stubSubstate{name: "news_push", ran: ran})
		e.intn = func(int) int { return 0 }

		assert.Equal(t, "speaking", e.Update(ctx, false))
		assert.Equal(t, StateSpeaking, e.State())
		select {
		case name := <-ran:
			assert.Equal(t, "news_push", name)
		case <-time.After(time.Second):
			t.Fatal("substate never ran")
		}
	})

	t.Run("push gap blocks another trigger", func(t *testing.T) {
		ran := make(chan string, 2)
		e, _ := testEngine(&stubSubstate{name: "a", ran: ran})
		e.intn = func(int) int { return 0 }
		base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		now := base
		e.now = func() time.Time { return now }

		require.Equal(t, "speaking", e.Update(ctx, false))
		<-ran

		// speaking counts down and returns to idle
		e.TransitionTo(StateIdle)
		now = base.Add(30 * time.Second)
		assert.Equal(t, "idle", e.Update(ctx, false), "still inside the push gap")

		now = base.Add(61 * time.Second)
		assert.Equal(t, "speaking", e.Update(ctx, false))
		<-ran
	})

	t.Run("speaking auto-returns after the tick budget", func(t *testing.T) {
		e, _ := testEngine()
		e.TransitionTo(StateSpeaking)
		assert.Equal(t, "speaking", e.Update(ctx, false))
		assert.Equal(t, "speaking", e.Update(ctx, false))
		assert.Equal(t, "idle", e.Update(ctx, false), "third tick exhausts the budget")
		assert.Equal(t, StateIdle, e.State())
	})

	t.Run("no substates never speaks", func(t *testing.T) {
		e, _ := testEngine()
		e.intn = func(int) int { return 0 }
		assert.Equal(t, "idle", e.Update(ctx, false))
	})

	t.Run("substate panic is contained", func(t *testing.T) {
		e, _ := testEngine(panicSubstate{})
		e.intn = func(int) int { return 0 }
		assert.NotPanics(t, func() {
			e.Update(ctx, false)
			time.Sleep(50 * time.Millisecond) // let the goroutine crash and recover
		})
	})
}

type panicSubstate struct{}

func (panicSubstate) Name() string            { return "boom" }
func (panicSubstate) Execute(context.Context) { panic("boom") }

func TestEngine_TransitionTo(t *testing.T) {
	e, _ := testEngine()
	e.TransitionTo(State("dreaming"))
	assert.Equal(t, StateIdle, e.State(), "unknown target ignored")

	e.TransitionTo(StateSpeaking)
	assert.Equal(t, StateSpeaking, e.State())
}

func TestEngine_RequestSpeech(t *testing.T) {
	e, speech := testEngine()
	e.RequestSpeech("抱抱", "petting")
	assert.Equal(t, []string{"speech:抱抱"}, speech.events)
	require.Len(t, speech.SpeechRequestedCalls(), 1)
	assert.Equal(t, "petting", speech.SpeechRequestedCalls()[0].InteractionContext)
}
