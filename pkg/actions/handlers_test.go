package actions_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowpaw/steampet/pkg/actions"
	"github.com/glowpaw/steampet/pkg/actions/mocks"
)

type fixture struct {
	bus      *actions.Bus
	launcher *mocks.LauncherMock
	timer    *mocks.TimerControlMock
	pet      *mocks.PetIntentsMock
	paths    *mocks.PathSettingsMock
	errs     []error
}

func newFixture() *fixture {
	f := &fixture{
		launcher: &mocks.LauncherMock{
			OpenPathFunc: func(string) error { return nil },
			OpenURLFunc:  func(string) error { return nil },
		},
		timer: &mocks.TimerControlMock{
			ToggleFunc: func() {}, PauseFunc: func() {}, ResumeFunc: func() {}, StopFunc: func() {},
		},
		pet: &mocks.PetIntentsMock{
			SayHelloFunc: func() {}, HidePetFunc: func() {}, ToggleTopmostFunc: func() {},
			ActivatePetFunc: func() {}, OpenWindowFunc: func(string) {}, ExitFunc: func() {},
		},
		paths: &mocks.PathSettingsMock{ExplorerPathsFunc: func() []string { return nil }},
	}
	f.bus = actions.NewBus(func(err error, action actions.Action, kwargs map[string]any) {
		f.errs = append(f.errs, err)
	})
	actions.RegisterDefaults(f.bus, f.launcher, f.timer, f.pet, f.paths)
	return f
}

func TestOpenPath(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		f := newFixture()
		res := f.bus.Execute(actions.OpenPath, map[string]any{"path": `D:\games`})
		assert.Equal(t, `D:\games`, res)
		require.Len(t, f.launcher.OpenPathCalls(), 1)
		assert.Equal(t, `D:\games`, f.launcher.OpenPathCalls()[0].Path)
	})

	t.Run("falls back to first configured path", func(t *testing.T) {
		f := newFixture()
		f.paths.ExplorerPathsFunc = func() []string { return []string{`C:\steam`, `C:\other`} }
		res := f.bus.Execute(actions.OpenPath, nil)
		assert.Equal(t, `C:\steam`, res)
		require.Len(t, f.launcher.OpenPathCalls(), 1)
		assert.Equal(t, `C:\steam`, f.launcher.OpenPathCalls()[0].Path)
	})

	t.Run("nothing to open", func(t *testing.T) {
		f := newFixture()
		res := f.bus.Execute(actions.OpenPath, nil)
		assert.Nil(t, res)
		require.Len(t, f.errs, 1)
		assert.True(t, errors.Is(f.errs[0], actions.ErrPathNotFound))
		assert.Empty(t, f.launcher.OpenPathCalls())
	})

	t.Run("launcher failure maps to path not found", func(t *testing.T) {
		f := newFixture()
		f.launcher.OpenPathFunc = func(string) error { return errors.New("no such dir") }
		res := f.bus.Execute(actions.OpenPath, map[string]any{"path": `Z:\gone`})
		assert.Nil(t, res)
		require.Len(t, f.errs, 1)
		assert.True(t, errors.Is(f.errs[0], actions.ErrPathNotFound))
		assert.Contains(t, f.errs[0].Error(), `Z:\gone`)
	})
}

func TestOpenURL(t *testing.T) {
	f := newFixture()
	f.bus.Execute(actions.OpenURL, map[string]any{"url": "https://store.steampowered.com/app/440"})
	require.Len(t, f.launcher.OpenURLCalls(), 1)
	assert.Equal(t, "https://store.steampowered.com/app/440", f.launcher.OpenURLCalls()[0].RawURL)

	f.bus.Execute(actions.OpenURL, nil)
	require.Len(t, f.errs, 1)
	assert.Contains(t, f.errs[0].Error(), "no url")
}

func TestLaunchGame(t *testing.T) {
	t.Run("builds run uri from appid", func(t *testing.T) {
		f := newFixture()
		res := f.bus.Execute(actions.LaunchGame, map[string]any{"appid": 570})
		assert.Equal(t, "steam://run/570", res)
		require.Len(t, f.launcher.OpenURLCalls(), 1)
		assert.Equal(t, "steam://run/570", f.launcher.OpenURLCalls()[0].RawURL)
	})

	t.Run("float appid from json accepted", func(t *testing.T) {
		f := newFixture()
		res := f.bus.Execute(actions.LaunchGame, map[string]any{"appid": float64(730)})
		assert.Equal(t, "steam://run/730", res)
	})

	t.Run("missing or bad appid rejected", func(t *testing.T) {
		f := newFixture()
		assert.Nil(t, f.bus.Execute(actions.LaunchGame, nil))
		assert.Nil(t, f.bus.Execute(actions.LaunchGame, map[string]any{"appid": "570"}))
		assert.Nil(t, f.bus.Execute(actions.LaunchGame, map[string]any{"appid": -1}))
		assert.Len(t, f.errs, 3)
		assert.Empty(t, f.launcher.OpenURLCalls())
	})
}

func TestOpenSteamPage(t *testing.T) {
	t.Run("client uri preferred", func(t *testing.T) {
		f := newFixture()
		res := f.bus.Execute(actions.OpenSteamPage, map[string]any{"page": "library"})
		assert.Equal(t, "steam://open/games", res)
		require.Len(t, f.launcher.OpenURLCalls(), 1)
	})

	t.Run("browser fallback when client unavailable", func(t *testing.T) {
		f := newFixture()
		f.launcher.OpenURLFunc = func(rawURL string) error {
			if rawURL == "steam://store" {
				return errors.New("no steam client")
			}
			return nil
		}
		res := f.bus.Execute(actions.OpenSteamPage, map[string]any{"page": "store"})
		assert.Equal(t, "https://store.steampowered.com", res)
		calls := f.launcher.OpenURLCalls()
		require.Len(t, calls, 2)
		assert.Equal(t, "steam://store", calls[0].RawURL)
		assert.Equal(t, "https://store.steampowered.com", calls[1].RawURL)
		assert.Empty(t, f.errs)
	})

	t.Run("unknown page rejected", func(t *testing.T) {
		f := newFixture()
		assert.Nil(t, f.bus.Execute(actions.OpenSteamPage, map[string]any{"page": "market"}))
		require.Len(t, f.errs, 1)
		assert.Contains(t, f.errs[0].Error(), "unknown steam page")
	})
}

func TestTimerVerbs(t *testing.T) {
	f := newFixture()
	f.bus.Execute(actions.ToggleTimer, nil)
	f.bus.Execute(actions.PauseTimer, nil)
	f.bus.Execute(actions.ResumeTimer, nil)
	f.bus.Execute(actions.StopTimer, nil)

	assert.Len(t, f.timer.ToggleCalls(), 1)
	assert.Len(t, f.timer.PauseCalls(), 1)
	assert.Len(t, f.timer.ResumeCalls(), 1)
	assert.Len(t, f.timer.StopCalls(), 1)
	assert.Empty(t, f.errs)
}

func TestOpenWindow(t *testing.T) {
	f := newFixture()
	f.bus.Execute(actions.OpenWindow, map[string]any{"name": "stats"})
	require.Len(t, f.pet.OpenWindowCalls(), 1)
	assert.Equal(t, "stats", f.pet.OpenWindowCalls()[0].Name)

	f.bus.Execute(actions.OpenWindow, map[string]any{"name": "devtools"})
	assert.Len(t, f.pet.OpenWindowCalls(), 1)
	require.Len(t, f.errs, 1)
	assert.Contains(t, f.errs[0].Error(), "unknown window")
}

func TestPetVerbs(t *testing.T) {
	f := newFixture()
	f.bus.Execute(actions.SayHello, nil)
	f.bus.Execute(actions.HidePet, nil)
	f.bus.Execute(actions.ToggleTopmost, nil)
	f.bus.Execute(actions.ActivatePet, nil)
	f.bus.Execute(actions.Exit, nil)

	assert.Len(t, f.pet.SayHelloCalls(), 1)
	assert.Len(t, f.pet.HidePetCalls(), 1)
	assert.Len(t, f.pet.ToggleTopmostCalls(), 1)
	assert.Len(t, f.pet.ActivatePetCalls(), 1)
	assert.Len(t, f.pet.ExitCalls(), 1)
	assert.Empty(t, f.errs)
}
