package menu

import (
	"fmt"

	"github.com/glowpaw/steampet/pkg/actions"
	"github.com/glowpaw/steampet/pkg/config"
	"github.com/glowpaw/steampet/pkg/domain"
)

// Executor dispatches actions triggered by menu callbacks
type Executor interface {
	Execute(action actions.Action, kwargs map[string]any) any
}

// MenuSettings is the settings surface the standard providers read
type MenuSettings interface {
	ExplorerPaths() []string
	ExplorerPathAliases() []string
	MenuPages() []string
	QuickLaunchGames() []*config.QuickLaunchGame
}

// TimerState is the timer surface the timer provider reads
type TimerState interface {
	Active() bool
	Running() bool
}

// RecentReader provides the most recently played games
type RecentReader interface {
	RecentGames(limit int) []domain.Game
}

// Exit provides the always-present exit sector
func Exit(exec Executor) Provider {
	return func() *domain.MenuItem {
		return &domain.MenuItem{
			Key:      "exit",
			Label:    "退出",
			Callback: func() { exec.Execute(actions.Exit, nil) },
		}
	}
}

// OpenPath provides the explorer shortcut sector. The first configured path
// is the main callback; the next two become sub items. No paths, no sector.
func OpenPath(exec Executor, settings MenuSettings) Provider {
	return func() *domain.MenuItem {
		paths := settings.ExplorerPaths()
		if len(paths) == 0 {
			return nil
		}
		aliases := settings.ExplorerPathAliases()
		label := func(i int) string {
			if i < len(aliases) && aliases[i] != "" {
				return aliases[i]
			}
			return paths[i]
		}

		item := &domain.MenuItem{
			Key:      "open_path",
			Label:    label(0),
			Callback: pathCallback(exec, paths[0]),
		}
		for i := 1; i < len(paths) && i < 3; i++ {
			item.SubItems = append(item.SubItems, domain.MenuSubItem{
				Label:    label(i),
				Callback: pathCallback(exec, paths[i]),
			})
		}
		return item
	}
}

func pathCallback(exec Executor, path string) func() {
	return func() { exec.Execute(actions.OpenPath, map[string]any{"path": path}) }
}

// SteamPages provides the Steam page shortcuts sector from the configured
// page names
func SteamPages(exec Executor, settings MenuSettings) Provider {
	labels := map[string]string{
		"library":   "游戏库",
		"store":     "商店",
		"community": "社区",
		"workshop":  "创意工坊",
		"profile":   "个人资料",
		"downloads": "下载",
		"settings":  "Steam设置",
	}
	return func() *domain.MenuItem {
		pages := settings.MenuPages()
		if len(pages) == 0 {
			return nil
		}
		label := func(page string) string {
			if l, ok := labels[page]; ok {
				return l
			}
			return page
		}

		item := &domain.MenuItem{
			Key:      "open_steam_page",
			Label:    label(pages[0]),
			Callback: pageCallback(exec, pages[0]),
		}
		for _, page := range pages[1:] {
			item.SubItems = append(item.SubItems, domain.MenuSubItem{
				Label:    label(page),
				Callback: pageCallback(exec, page),
			})
		}
		return item
	}
}

func pageCallback(exec Executor, page string) func() {
	return func() { exec.Execute(actions.OpenSteamPage, map[string]any{"page": page}) }
}

// Stats provides the stats window sector
func Stats(exec Executor) Provider {
	return func() *domain.MenuItem {
		return &domain.MenuItem{
			Key:      "stats",
			Label:    "游戏统计",
			Callback: func() { exec.Execute(actions.OpenWindow, map[string]any{"name": "stats"}) },
		}
	}
}

// Timer provides the timer sector. The label follows the live timer state;
// an active timer also gets a stop sub item.
func Timer(exec Executor, timer TimerState) Provider {
	return func() *domain.MenuItem {
		label := "开始计时"
		if timer.Active() {
			if timer.Running() {
				label = "暂停计时"
			} else {
				label = "继续计时"
			}
		}
		item := &domain.MenuItem{
			Key:      "timer",
			Label:    label,
			Callback: func() { exec.Execute(actions.ToggleTimer, nil) },
		}
		if timer.Active() {
			item.SubItems = append(item.SubItems, domain.MenuSubItem{
				Label:    "结束计时",
				Callback: func() { exec.Execute(actions.StopTimer, nil) },
			})
		}
		return item
	}
}

// LaunchRecent provides the continue-playing sector from the merged library
func LaunchRecent(exec Executor, cache RecentReader) Provider {
	return func() *domain.MenuItem {
		recent := cache.RecentGames(1)
		if len(recent) == 0 {
			return nil
		}
		game := recent[0]
		return &domain.MenuItem{
			Key:      "launch_recent",
			Label:    fmt.Sprintf("继续玩《%s》", game.Name),
			Callback: launchCallback(exec, game.AppID),
		}
	}
}

// LaunchFavorite provides the quick-launch sector from the configured
// slots. The first filled slot is the main callback, the rest sub items.
func LaunchFavorite(exec Executor, settings MenuSettings) Provider {
	return func() *domain.MenuItem {
		var filled []*config.QuickLaunchGame
		for _, slot := range settings.QuickLaunchGames() {
			if slot != nil && slot.AppID > 0 {
				filled = append(filled, slot)
			}
		}
		if len(filled) == 0 {
			return nil
		}

		item := &domain.MenuItem{
			Key:      "launch_favorite",
			Label:    filled[0].Name,
			Callback: launchCallback(exec, filled[0].AppID),
		}
		for _, slot := range filled[1:] {
			item.SubItems = append(item.SubItems, domain.MenuSubItem{
				Label:    slot.Name,
				Callback: launchCallback(exec, slot.AppID),
			})
		}
		return item
	}
}

func launchCallback(exec Executor, appID int) func() {
	return func() { exec.Execute(actions.LaunchGame, map[string]any{"appid": appID}) }
}

// SayHello provides the greeting sector
func SayHello(exec Executor) Provider {
	return func() *domain.MenuItem {
		return &domain.MenuItem{
			Key:      "say_hello",
			Label:    "打个招呼",
			Callback: func() { exec.Execute(actions.SayHello, nil) },
		}
	}
}
