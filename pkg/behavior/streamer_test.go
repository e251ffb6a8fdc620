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
)

// recorder collects speech events in arrival order
type recorder struct {
	*mocks.SpeechMock
	events []string
}

func newRecorder() *recorder {
	r := &recorder{}
	r.SpeechMock = &mocks.SpeechMock{
		SpeechRequestedFunc: func(text, _ string) { r.events = append(r.events, "speech:"+text) },
		StreamStartedFunc:   func(id string) { r.events = append(r.events, "started:"+id) },
		StreamDeltaFunc:     func(id, delta string) { r.events = append(r.events, "delta:"+id+":"+delta) },
		StreamDoneFunc:      func(id string) { r.events = append(r.events, "done:"+id) },
	}
	return r
}

// fixedStreamer pins ids and the clock so flushes are deterministic
func fixedStreamer(llm *mocks.LLMMock, speech *recorder, ids ...string) *Streamer {
	s := NewStreamer(llm, speech.SpeechMock)
	s.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	return s
}

func TestStreamer_Run(t *testing.T) {
	t.Run("flushes every twenty runes and drains the tail", func(t *testing.T) {
		speech := newRecorder()
		llm := &mocks.LLMMock{
			StreamFunc: func(_ context.Context, _, _ string, onDelta func(string)) error {
				onDelta(strings.Repeat("喵", 10))
				onDelta(strings.Repeat("喵", 10)) // hits the rune threshold
				onDelta("尾巴")
				return nil
			},
		}
		s := fixedStreamer(llm, speech, "r1")

		s.Run(context.Background(), "", "hi", "fb")
		assert.Equal(t, []string{
			"started:r1",
			"delta:r1:" + strings.Repeat("喵", 20),
			"delta:r1:尾巴",
			"done:r1",
		}, speech.events)
	})

	t.Run("time threshold flushes short buffers", func(t *testing.T) {
		speech := newRecorder()
		llm := &mocks.LLMMock{
			StreamFunc: func(_ context.Context, _, _ string, onDelta func(string)) error {
				onDelta("你好")
				return nil
			},
		}
		s := NewStreamer(llm, speech.SpeechMock)
		s.newID = func() string { return "r1" }
		base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		calls := 0
		s.now = func() time.Time {
			calls++
			return base.Add(time.Duration(calls) * 60 * time.Millisecond)
		}

		s.Run(context.Background(), "", "hi", "")
		assert.Equal(t, []string{"started:r1", "delta:r1:你好", "done:r1"}, speech.events)
	})

	t.Run("stream error falls back to static text", func(t *testing.T) {
		speech := newRecorder()
		llm := &mocks.LLMMock{
			StreamFunc: func(context.Context, string, string, func(string)) error {
				return errors.New("api down")
			},
		}
		s := fixedStreamer(llm, speech, "r1")

		s.Run(context.Background(), "", "hi", "你好呀")
		assert.Equal(t, []string{"started:r1", "delta:r1:你好呀", "done:r1"}, speech.events)
	})

	t.Run("empty stream falls back to static text", func(t *testing.T) {
		speech := newRecorder()
		llm := &mocks.LLMMock{
			StreamFunc: func(context.Context, string, string, func(string)) error { return nil },
		}
		s := fixedStreamer(llm, speech, "r1")

		s.Run(context.Background(), "", "hi", "你好呀")
		assert.Equal(t, []string{"started:r1", "delta:r1:你好呀", "done:r1"}, speech.events)
	})

	t.Run("empty fallback closes the session without output", func(t *testing.T) {
		speech := newRecorder()
		llm := &mocks.LLMMock{
			StreamFunc: func(context.Context, string, string, func(string)) error { return nil },
		}
		s := fixedStreamer(llm, speech, "r1")

		s.Run(context.Background(), "", "hi", "")
		assert.Equal(t, []string{"started:r1", "done:r1"}, speech.events)
	})

	t.Run("new session supersedes the active one", func(t *testing.T) {
		speech := newRecorder()
		var s *Streamer
		llm := &mocks.LLMMock{
			StreamFunc: func(ctx context.Context, _, user string, onDelta func(string)) error {
				if user == "first" {
					onDelta(strings.Repeat("早", 20))
					// second request lands mid-stream
					s.Run(context.Background(), "", "second", "fb2")
					onDelta(strings.Repeat("晚", 20)) // dropped, session superseded
					return ctx.Err()
				}
				onDelta(strings.Repeat("午", 20))
				return nil
			},
		}
		s = fixedStreamer(llm, speech, "r1", "r2")

		s.Run(context.Background(), "", "first", "fb1")

		require.Equal(t, []string{
			"started:r1",
			"delta:r1:" + strings.Repeat("早", 20),
			"started:r2",
			"delta:r2:" + strings.Repeat("午", 20),
			"done:r2",
		}, speech.events, "no delta after supersede and no done for r1")
	})
}
