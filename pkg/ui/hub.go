// Package ui is the intent boundary between the core and the UI shell.
// The core publishes named intents with snapshot payloads; the shell
// subscribes by name and decides how to realize each one.
package ui

import (
	"log"
	"sync"

	"github.com/glowpaw/steampet/pkg/domain"
)

// Intent names the event streams the core can emit
type Intent string

// Intents the shell can subscribe to
const (
	IntentAnimation     Intent = "animation"
	IntentSpeech        Intent = "speech"
	IntentStreamStarted Intent = "speech_stream_started"
	IntentStreamDelta   Intent = "speech_stream_delta"
	IntentStreamDone    Intent = "speech_stream_done"
	IntentToast         Intent = "toast"
	IntentTimerState    Intent = "timer_state"
	IntentOpenWindow    Intent = "open_window"
	IntentHidePet       Intent = "hide_pet"
	IntentToggleTopmost Intent = "toggle_topmost"
	IntentActivatePet   Intent = "activate_pet"
	IntentExit          Intent = "exit"

	IntentSummaryUpdated      Intent = "summary_updated"
	IntentGamesUpdated        Intent = "games_updated"
	IntentPricesUpdated       Intent = "prices_updated"
	IntentWishlistUpdated     Intent = "wishlist_updated"
	IntentAchievementsUpdated Intent = "achievements_updated"
	IntentFreeGamesUpdated    Intent = "free_games_updated"
	IntentNewsUpdated         Intent = "news_updated"
	IntentError               Intent = "error"
)

// Speech is a one-shot speech bubble request with optional interaction
// context. The context applies while the bubble shows and clears with it.
type Speech struct {
	Text    string
	Context string
}

// StreamEvent carries one streaming speech lifecycle event. Delta is set
// only for IntentStreamDelta.
type StreamEvent struct {
	RequestID string
	Delta     string
}

// Toast is a tray notification request
type Toast struct {
	Title   string
	Message string
}

// TimerState is the once-a-second timer snapshot for the countdown view
type TimerState struct {
	Active         bool
	Running        bool
	ElapsedSeconds int
}

// Subscriber receives every event published under a subscribed intent
type Subscriber func(payload any)

// Hub routes intents from the core to shell subscribers. Publish is safe
// from any goroutine; subscriber panics are contained per subscriber.
type Hub struct {
	mu   sync.RWMutex
	subs map[Intent][]Subscriber
}

// NewHub creates an empty intent hub
func NewHub() *Hub {
	return &Hub{subs: map[Intent][]Subscriber{}}
}

// Subscribe registers fn for every future publish of intent
func (h *Hub) Subscribe(intent Intent, fn Subscriber) {
	h.mu.Lock()
	h.subs[intent] = append(h.subs[intent], fn)
	h.mu.Unlock()
}

// Publish delivers payload to all subscribers of intent, in order
func (h *Hub) Publish(intent Intent, payload any) {
	h.mu.RLock()
	subs := h.subs[intent]
	h.mu.RUnlock()

	for _, fn := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[WARN] subscriber panic on %s: %v", intent, r)
				}
			}()
			fn(payload)
		}()
	}
}

// PlayerSummaryUpdated publishes a fresh profile snapshot
func (h *Hub) PlayerSummaryUpdated(summary domain.PlayerSummary) {
	h.Publish(IntentSummaryUpdated, summary)
}

// GamesStatsUpdated publishes the merged library payload
func (h *Hub) GamesStatsUpdated(games domain.GamesPayload) {
	h.Publish(IntentGamesUpdated, games)
}

// StorePricesUpdated publishes a price delta
func (h *Hub) StorePricesUpdated(delta map[string]domain.PriceEntry) {
	h.Publish(IntentPricesUpdated, delta)
}

// WishlistUpdated publishes the full wishlist snapshot
func (h *Hub) WishlistUpdated(items []domain.WishlistItem) {
	h.Publish(IntentWishlistUpdated, items)
}

// AchievementsUpdated publishes an achievements delta
func (h *Hub) AchievementsUpdated(delta map[string]domain.AchievementStat) {
	h.Publish(IntentAchievementsUpdated, delta)
}

// ErrorOccurred publishes an error toast
func (h *Hub) ErrorOccurred(msg string) {
	h.Publish(IntentError, msg)
	h.Publish(IntentToast, Toast{Title: "出错了", Message: msg})
}

// SpeechRequested publishes a one-shot speech bubble
func (h *Hub) SpeechRequested(text, interactionContext string) {
	h.Publish(IntentSpeech, Speech{Text: text, Context: interactionContext})
}

// StreamStarted opens a streaming speech session
func (h *Hub) StreamStarted(requestID string) {
	h.Publish(IntentStreamStarted, StreamEvent{RequestID: requestID})
}

// StreamDelta appends a text fragment to the session
func (h *Hub) StreamDelta(requestID, delta string) {
	h.Publish(IntentStreamDelta, StreamEvent{RequestID: requestID, Delta: delta})
}

// StreamDone closes a streaming speech session
func (h *Hub) StreamDone(requestID string) {
	h.Publish(IntentStreamDone, StreamEvent{RequestID: requestID})
}
