package behavior

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/glowpaw/steampet/pkg/domain"
	"github.com/glowpaw/steampet/pkg/prompt"
	"github.com/glowpaw/steampet/pkg/steam"
)

//go:generate moq -out mocks/cache_reader.go -pkg mocks -skip-ensure -fmt goimports . CacheReader
//go:generate moq -out mocks/greeting_settings.go -pkg mocks -skip-ensure -fmt goimports . GreetingSettings

// CacheReader is the read-only Steam cache surface the behavior layer uses
type CacheReader interface {
	GameDatasets() steam.Datasets
}

// GreetingSettings provides the static greeting fallback from runtime settings
type GreetingSettings interface {
	SayHelloContent(def string) string
}

// Prompts assembles named prompt templates with placeholder substitution
type Prompts interface {
	Assemble(name string, vars map[string]string) (string, error)
}

const defaultGreeting = "你好呀，今天也要好好玩游戏哦！"

// Greeter is the Say-Hello orchestrator. Each call starts a fresh
// streaming session built from the Steam cache facts; a call made while a
// session is streaming supersedes it.
type Greeter struct {
	streamer *Streamer
	prompts  Prompts
	settings GreetingSettings
	cache    CacheReader
}

// NewGreeter wires the orchestrator over its injected dependencies
func NewGreeter(streamer *Streamer, prompts Prompts, settings GreetingSettings, cache CacheReader) *Greeter {
	return &Greeter{streamer: streamer, prompts: prompts, settings: settings, cache: cache}
}

// SayHello starts a greeting stream on a background goroutine and returns
// immediately. LLM failures degrade to the configured static greeting.
func (g *Greeter) SayHello(ctx context.Context) {
	fallback := g.settings.SayHelloContent(defaultGreeting)

	user, err := g.prompts.Assemble(prompt.SayHello, greetingVars(g.cache.GameDatasets()))
	if err != nil {
		log.Printf("[WARN] assemble greeting prompt: %v", err)
		user = ""
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[ERROR] say-hello panic: %v", r)
			}
		}()
		g.streamer.Run(ctx, "", user, fallback)
	}()
}

// greetingVars extracts the profile facts the greeting prompt references
func greetingVars(ds steam.Datasets) map[string]string {
	vars := map[string]string{
		"persona":      "玩家",
		"level":        "0",
		"game_count":   "0",
		"total_hours":  "0",
		"recent_games": "最近没怎么玩",
		"created":      "未知",
		"account_age":  "0",
		"last_logoff":  "未知",
	}

	if s := ds.Summary; s != nil {
		if s.PersonaName != "" {
			vars["persona"] = s.PersonaName
		}
		vars["level"] = fmt.Sprintf("%d", s.SteamLevel)
		if s.TimeCreated > 0 {
			created := time.Unix(s.TimeCreated, 0)
			vars["created"] = created.Format("2006-01-02")
			vars["account_age"] = fmt.Sprintf("%d", int(time.Since(created).Hours()/24/365))
		}
		if s.LastLogoff > 0 {
			vars["last_logoff"] = time.Unix(s.LastLogoff, 0).Format("2006-01-02 15:04")
		}
	}

	if g := ds.Games; !g.IsEmpty() {
		vars["game_count"] = fmt.Sprintf("%d", g.Count)
		vars["total_hours"] = fmt.Sprintf("%d", g.TotalPlaytime/60)
		if names := gameNames(g.Top2Weeks, 3); len(names) > 0 {
			vars["recent_games"] = strings.Join(names, "、")
		} else if g.RecentGame != nil {
			vars["recent_games"] = g.RecentGame.Name
		}
	}
	return vars
}

func gameNames(games []domain.Game, limit int) []string {
	names := make([]string, 0, limit)
	for _, g := range games {
		if len(names) == limit {
			break
		}
		names = append(names, g.Name)
	}
	return names
}
