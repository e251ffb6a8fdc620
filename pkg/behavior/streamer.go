package behavior

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

//go:generate moq -out mocks/speech.go -pkg mocks -skip-ensure -fmt goimports . Speech
//go:generate moq -out mocks/llm.go -pkg mocks -skip-ensure -fmt goimports . LLM

// Speech is the outbound speech surface of the behavior layer. The UI hub
// implements it; tests subscribe with mocks.
type Speech interface {
	SpeechRequested(text, interactionContext string)
	StreamStarted(requestID string)
	StreamDelta(requestID, delta string)
	StreamDone(requestID string)
}

// LLM is the streaming completion surface the behavior layer consumes
type LLM interface {
	Configured() bool
	Stream(ctx context.Context, system, user string, onDelta func(delta string)) error
}

// flush thresholds for buffered stream deltas
const (
	flushRunes    = 20
	flushInterval = 50 * time.Millisecond
)

// Streamer runs streaming speech sessions, one active at a time. Starting
// a session supersedes the active one: the superseded session stops before
// its next flush and never emits its stream_done.
type Streamer struct {
	llm    LLM
	speech Speech

	mu     sync.Mutex
	active string

	newID func() string
	now   func() time.Time
}

// NewStreamer creates a streamer over the given LLM and speech sink
func NewStreamer(llm LLM, speech Speech) *Streamer {
	return &Streamer{llm: llm, speech: speech, newID: uuid.NewString, now: time.Now}
}

// begin claims a fresh session id, superseding the active one
func (s *Streamer) begin() string {
	id := s.newID()
	s.mu.Lock()
	s.active = id
	s.mu.Unlock()
	return id
}

func (s *Streamer) isActive(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active == id
}

// Run executes one streaming session to completion and blocks until the
// stream ends or the session is superseded. Callers run it on a background
// goroutine. When the stream fails or yields nothing, fallback is emitted
// as a single delta; an empty fallback emits nothing.
func (s *Streamer) Run(ctx context.Context, system, user, fallback string) {
	id := s.begin()
	s.speech.StreamStarted(id)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var buf strings.Builder
	lastFlush := s.now()
	emitted := false

	// flush sends the buffered text as one delta; a superseded session
	// cancels the stream instead
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		if !s.isActive(id) {
			cancel()
			return
		}
		s.speech.StreamDelta(id, buf.String())
		buf.Reset()
		emitted = true
		lastFlush = s.now()
	}

	err := s.llm.Stream(ctx, system, user, func(delta string) {
		buf.WriteString(delta)
		if utf8.RuneCountInString(buf.String()) >= flushRunes || s.now().Sub(lastFlush) >= flushInterval {
			flush()
		}
	})

	if !s.isActive(id) {
		return // superseded, stop silently
	}
	flush()

	if err != nil || !emitted {
		if err != nil {
			log.Printf("[WARN] speech stream failed: %v", err)
		}
		if fallback != "" && s.isActive(id) {
			s.speech.StreamDelta(id, fallback)
		}
	}
	if s.isActive(id) {
		s.speech.StreamDone(id)
	}
}
