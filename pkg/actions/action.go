package actions

// Action is one user-triggerable verb routed through the bus
type Action string

// The closed action set. Menu callbacks, tray items and hotkeys all
// dispatch through these; there is no other way to reach a handler.
const (
	OpenPath      Action = "open_path"
	OpenURL       Action = "open_url"
	Exit          Action = "exit"
	LaunchGame    Action = "launch_game"
	OpenSteamPage Action = "open_steam_page"
	ToggleTimer   Action = "toggle_timer"
	PauseTimer    Action = "pause_timer"
	ResumeTimer   Action = "resume_timer"
	StopTimer     Action = "stop_timer"
	OpenWindow    Action = "open_window"
	SayHello      Action = "say_hello"
	HidePet       Action = "hide_pet"
	ToggleTopmost Action = "toggle_topmost"
	ActivatePet   Action = "activate_pet"
)

// All lists every member of the closed action set
func All() []Action {
	return []Action{
		OpenPath, OpenURL, Exit, LaunchGame, OpenSteamPage,
		ToggleTimer, PauseTimer, ResumeTimer, StopTimer,
		OpenWindow, SayHello, HidePet, ToggleTopmost, ActivatePet,
	}
}

// Valid reports whether a belongs to the closed action set
func (a Action) Valid() bool {
	for _, known := range All() {
		if a == known {
			return true
		}
	}
	return false
}
