package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/glowpaw/steampet/pkg/domain"
)

// Known settings keys
const (
	KeySteamAPIKey          = "steam_api_key"
	KeySteamID              = "steam_id"
	KeySteamAltIDs          = "steam_alt_ids"
	KeyExplorerPaths        = "explorer_paths"
	KeyExplorerPathAliases  = "explorer_path_aliases"
	KeyQuickLaunchGames     = "steam_quick_launch_games"
	KeySteamMenuPages       = "steam_menu_pages"
	KeySayHelloContent      = "say_hello_content"
	KeyTimerReminder        = "timer_reminder"
	KeyTimerReminderPresets = "timer_reminder_presets"
	KeyLLMAPIKey            = "llm_api_key"
	KeyLLMBaseURL           = "llm_base_url"
	KeyLLMModel             = "llm_model"
)

// QuickLaunchGame is one configured quick-launch slot; nil slots stay empty
type QuickLaunchGame struct {
	AppID int    `json:"appid"`
	Name  string `json:"name"`
}

// ReminderPreset is a named reminder settings bundle
type ReminderPreset struct {
	Name string `json:"name"`
	domain.ReminderSettings
}

// Store is the runtime key/value settings document backed by settings.json.
// Unknown keys are preserved across load/save; missing keys fall back to
// caller-supplied defaults. Save marshals the whole document before
// touching the file, so a failed save leaves it intact.
type Store struct {
	path    string
	onError func(error)

	mu   sync.RWMutex
	data map[string]json.RawMessage
}

// NewStore loads the settings document from path. A missing file starts an
// empty store; a corrupt one is logged and reported through onError.
func NewStore(path string, onError func(error)) *Store {
	s := &Store{path: path, onError: onError, data: map[string]json.RawMessage{}}

	raw, err := os.ReadFile(path) //nolint:gosec // path is derived from the data dir
	if err != nil {
		if !os.IsNotExist(err) {
			s.reportError(fmt.Errorf("read settings: %w", err))
		}
		return s
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		log.Printf("[WARN] settings file corrupt, starting with defaults: %v", err)
		s.data = map[string]json.RawMessage{}
		s.reportError(fmt.Errorf("decode settings: %w", err))
	}
	return s
}

func (s *Store) reportError(err error) {
	if s.onError != nil {
		s.onError(err)
	}
}

// Get decodes the value for key into out, reporting whether the key exists
// and decoded cleanly.
func (s *Store) Get(key string, out any) bool {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("[WARN] settings key %q has unexpected shape: %v", key, err)
		return false
	}
	return true
}

// GetString returns a string value or def when absent
func (s *Store) GetString(key, def string) string {
	var v string
	if s.Get(key, &v) && v != "" {
		return v
	}
	return def
}

// GetStringSlice returns a string sequence or def when absent
func (s *Store) GetStringSlice(key string, def []string) []string {
	var v []string
	if s.Get(key, &v) {
		return v
	}
	return def
}

// Set stores a value under key. The value is marshaled immediately so a
// later Save cannot fail on it.
func (s *Store) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode settings key %q: %w", key, err)
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

// Keys returns all present keys, including unrecognized ones
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

// Save writes the whole document, 2-space indented. All-or-nothing: the
// document is marshaled before the file is opened.
func (s *Store) Save() error {
	s.mu.RLock()
	raw, err := json.MarshalIndent(s.data, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.reportError(err)
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		s.reportError(err)
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// SteamCredentials returns the WebAPI key, the primary account id and up to
// three alt account ids.
func (s *Store) SteamCredentials() (apiKey, steamID string, altIDs []string) {
	apiKey = s.GetString(KeySteamAPIKey, "")
	steamID = s.GetString(KeySteamID, "")
	altIDs = s.GetStringSlice(KeySteamAltIDs, nil)
	if len(altIDs) > 3 {
		altIDs = altIDs[:3]
	}
	return apiKey, steamID, altIDs
}

// ExplorerPaths returns the three configured explorer paths
func (s *Store) ExplorerPaths() []string {
	return s.GetStringSlice(KeyExplorerPaths, nil)
}

// ExplorerPathAliases returns display aliases for the explorer paths
func (s *Store) ExplorerPathAliases() []string {
	return s.GetStringSlice(KeyExplorerPathAliases, nil)
}

// QuickLaunchGames returns the three quick-launch slots; empty slots are nil
func (s *Store) QuickLaunchGames() []*QuickLaunchGame {
	var v []*QuickLaunchGame
	s.Get(KeyQuickLaunchGames, &v)
	if len(v) > 3 {
		v = v[:3]
	}
	return v
}

// MenuPages returns the three configured Steam page shortcuts
func (s *Store) MenuPages() []string {
	pages := s.GetStringSlice(KeySteamMenuPages, nil)
	if len(pages) > 3 {
		pages = pages[:3]
	}
	return pages
}

// SayHelloContent returns the static greeting fallback text
func (s *Store) SayHelloContent(def string) string {
	return s.GetString(KeySayHelloContent, def)
}

// TimerReminder returns the persisted reminder settings
func (s *Store) TimerReminder() domain.ReminderSettings {
	var v domain.ReminderSettings
	s.Get(KeyTimerReminder, &v)
	return v.Normalized()
}

// TimerReminderPresets returns the named reminder presets
func (s *Store) TimerReminderPresets() []ReminderPreset {
	var v []ReminderPreset
	s.Get(KeyTimerReminderPresets, &v)
	return v
}

// LLMSettings returns the runtime LLM overrides (possibly empty)
func (s *Store) LLMSettings() (baseURL, apiKey, model string) {
	return s.GetString(KeyLLMBaseURL, ""), s.GetString(KeyLLMAPIKey, ""), s.GetString(KeyLLMModel, "")
}
