package actions

import (
	"errors"
	"fmt"
	"log"
)

//go:generate moq -out mocks/launcher.go -pkg mocks -skip-ensure -fmt goimports . Launcher
//go:generate moq -out mocks/timer_control.go -pkg mocks -skip-ensure -fmt goimports . TimerControl
//go:generate moq -out mocks/pet_intents.go -pkg mocks -skip-ensure -fmt goimports . PetIntents
//go:generate moq -out mocks/path_settings.go -pkg mocks -skip-ensure -fmt goimports . PathSettings

// ErrPathNotFound is reported when OPEN_PATH has nothing to open
var ErrPathNotFound = errors.New("path not found")

// Launcher opens paths and URLs through the operating system
type Launcher interface {
	OpenPath(path string) error
	OpenURL(rawURL string) error
}

// TimerControl is the timer surface the bus drives
type TimerControl interface {
	Toggle()
	Pause()
	Resume()
	Stop()
}

// PetIntents receives the pet-facing intents of executed actions
type PetIntents interface {
	SayHello()
	HidePet()
	ToggleTopmost()
	ActivatePet()
	OpenWindow(name string)
	Exit()
}

// PathSettings provides the configured explorer paths
type PathSettings interface {
	ExplorerPaths() []string
}

// window names the shell knows how to open
var knownWindows = map[string]bool{
	"settings":          true,
	"stats":             true,
	"all_games":         true,
	"discounts":         true,
	"achievements":      true,
	"reminder_settings": true,
	"info":              true,
}

// steamPage is a client URI with its browser fallback
type steamPage struct {
	uri      string
	fallback string
}

// steamPages maps the closed page-name set to client URIs. When the
// client URI cannot be opened the browser fallback is used instead.
var steamPages = map[string]steamPage{
	"library":   {uri: "steam://open/games", fallback: "https://steamcommunity.com/my/games"},
	"store":     {uri: "steam://store", fallback: "https://store.steampowered.com"},
	"community": {uri: "steam://url/CommunityHome", fallback: "https://steamcommunity.com"},
	"workshop":  {uri: "steam://url/SteamWorkshopPage", fallback: "https://steamcommunity.com/workshop/"},
	"profile":   {uri: "steam://url/SteamIDMyProfile", fallback: "https://steamcommunity.com/my/profile"},
	"downloads": {uri: "steam://open/downloads", fallback: "https://store.steampowered.com/account/"},
	"settings":  {uri: "steam://open/settings", fallback: "https://store.steampowered.com/account/preferences"},
}

// RegisterDefaults wires the full action set into the bus
func RegisterDefaults(bus *Bus, launcher Launcher, timer TimerControl, pet PetIntents, paths PathSettings) {
	bus.Register(OpenPath, func(kwargs map[string]any) (any, error) {
		path, _ := kwargs["path"].(string)
		if path == "" {
			if configured := paths.ExplorerPaths(); len(configured) > 0 {
				path = configured[0]
			}
		}
		if path == "" {
			return nil, ErrPathNotFound
		}
		if err := launcher.OpenPath(path); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		return path, nil
	})

	bus.Register(OpenURL, func(kwargs map[string]any) (any, error) {
		rawURL, _ := kwargs["url"].(string)
		if rawURL == "" {
			return nil, errors.New("no url given")
		}
		return nil, launcher.OpenURL(rawURL)
	})

	bus.Register(LaunchGame, func(kwargs map[string]any) (any, error) {
		appID, ok := asInt(kwargs["appid"])
		if !ok || appID <= 0 {
			return nil, fmt.Errorf("invalid appid: %v", kwargs["appid"])
		}
		uri := fmt.Sprintf("steam://run/%d", appID)
		return uri, launcher.OpenURL(uri)
	})

	bus.Register(OpenSteamPage, func(kwargs map[string]any) (any, error) {
		name, _ := kwargs["page"].(string)
		page, ok := steamPages[name]
		if !ok {
			return nil, fmt.Errorf("unknown steam page: %q", name)
		}
		if err := launcher.OpenURL(page.uri); err != nil {
			log.Printf("[WARN] steam client unavailable for %s, opening browser: %v", name, err)
			return page.fallback, launcher.OpenURL(page.fallback)
		}
		return page.uri, nil
	})

	bus.Register(ToggleTimer, func(map[string]any) (any, error) { timer.Toggle(); return nil, nil })
	bus.Register(PauseTimer, func(map[string]any) (any, error) { timer.Pause(); return nil, nil })
	bus.Register(ResumeTimer, func(map[string]any) (any, error) { timer.Resume(); return nil, nil })
	bus.Register(StopTimer, func(map[string]any) (any, error) { timer.Stop(); return nil, nil })

	bus.Register(OpenWindow, func(kwargs map[string]any) (any, error) {
		name, _ := kwargs["name"].(string)
		if !knownWindows[name] {
			return nil, fmt.Errorf("unknown window: %q", name)
		}
		pet.OpenWindow(name)
		return nil, nil
	})

	bus.Register(SayHello, func(map[string]any) (any, error) { pet.SayHello(); return nil, nil })
	bus.Register(HidePet, func(map[string]any) (any, error) { pet.HidePet(); return nil, nil })
	bus.Register(ToggleTopmost, func(map[string]any) (any, error) { pet.ToggleTopmost(); return nil, nil })
	bus.Register(ActivatePet, func(map[string]any) (any, error) { pet.ActivatePet(); return nil, nil })
	bus.Register(Exit, func(map[string]any) (any, error) { pet.Exit(); return nil, nil })
}

// asInt accepts the int-ish types that reach kwargs from JSON or code
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
