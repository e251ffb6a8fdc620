package behavior

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/glowpaw/steampet/pkg/config"
)

// State is a top-level behavior state
type State string

// Behavior states. SPEAKING runs one substate and auto-returns to IDLE.
const (
	StateIdle     State = "idle"
	StateSpeaking State = "speaking"
)

// Substate is a leaf behavior executed during SPEAKING. Execute runs on a
// background goroutine and produces a streamed utterance; it must tolerate
// missing data by returning without output.
type Substate interface {
	Name() string
	Execute(ctx context.Context)
}

// Engine is the pet behavior state machine. Update runs on the UI
// goroutine at the renderer's tick rate and never blocks; substate work
// happens on background goroutines.
type Engine struct {
	cfg       config.BehaviorConfig
	speech    Speech
	substates []Substate

	mu           sync.Mutex
	state        State
	pauseReasons map[string]bool
	speakTicks   int
	lastPush     time.Time

	intn func(n int) int
	now  func() time.Time
}

// NewEngine creates an idle engine with the given substate set
func NewEngine(cfg config.BehaviorConfig, speech Speech, substates ...Substate) *Engine {
	if cfg.SpeakChanceDenominator <= 0 {
		cfg.SpeakChanceDenominator = 3000
	}
	if cfg.SpeakTicks <= 0 {
		cfg.SpeakTicks = 300
	}
	return &Engine{
		cfg:          cfg,
		speech:       speech,
		substates:    substates,
		state:        StateIdle,
		pauseReasons: map[string]bool{},
		intn:         rand.Intn, //nolint:gosec // speak chance, not crypto
		now:          time.Now,
	}
}

// State returns the current top-level state
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Paused reports whether any pause reason is set
func (e *Engine) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.pauseReasons) > 0
}

// SetPaused adds or removes a pause reason. Any non-empty reason set
// pauses the engine; entering paused forces the state back to IDLE.
func (e *Engine) SetPaused(reason string, paused bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if paused {
		e.pauseReasons[reason] = true
		e.transitionLocked(StateIdle)
		return
	}
	delete(e.pauseReasons, reason)
}

// TransitionTo switches to the target state. Unknown targets are no-ops.
func (e *Engine) TransitionTo(target State) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if target != StateIdle && target != StateSpeaking {
		return
	}
	e.transitionLocked(target)
}

func (e *Engine) transitionLocked(target State) {
	if e.state == target {
		return
	}
	e.state = target
	if target == StateSpeaking {
		e.speakTicks = 0
	}
}

// RequestSpeech emits a one-shot speech bubble with optional interaction
// context, bypassing the state machine
func (e *Engine) RequestSpeech(text, interactionContext string) {
	e.speech.SpeechRequested(text, interactionContext)
}

// Update advances the state machine one tick and returns the animation
// tag for the renderer: dragged, idle or speaking. Dragging overrides
// everything; a paused engine reports idle without transitions.
func (e *Engine) Update(ctx context.Context, isDragging bool) string {
	if isDragging {
		return "dragged"
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.pauseReasons) > 0 {
		return "idle"
	}

	switch e.state {
	case StateSpeaking:
		e.speakTicks++
		if e.speakTicks >= e.cfg.SpeakTicks {
			e.transitionLocked(StateIdle)
			return "idle"
		}
		return "speaking"
	default:
		if e.shouldSpeakLocked() {
			e.transitionLocked(StateSpeaking)
			e.lastPush = e.now()
			sub := e.substates[e.intn(len(e.substates))]
			go e.runSubstate(ctx, sub)
			return "speaking"
		}
		return "idle"
	}
}

// shouldSpeakLocked rolls the per-tick speak chance gated by the minimum
// push gap
func (e *Engine) shouldSpeakLocked() bool {
	if len(e.substates) == 0 {
		return false
	}
	if e.cfg.MinPushGap > 0 && !e.lastPush.IsZero() && e.now().Sub(e.lastPush) < e.cfg.MinPushGap {
		return false
	}
	return e.intn(e.cfg.SpeakChanceDenominator) == 0
}

func (e *Engine) runSubstate(ctx context.Context, sub Substate) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] substate %s panic: %v", sub.Name(), r)
		}
	}()
	sub.Execute(ctx)
}
