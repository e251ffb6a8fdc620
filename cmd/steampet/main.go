package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/glowpaw/steampet/pkg/actions"
	"github.com/glowpaw/steampet/pkg/app"
	"github.com/glowpaw/steampet/pkg/behavior"
	"github.com/glowpaw/steampet/pkg/config"
	"github.com/glowpaw/steampet/pkg/epic"
	"github.com/glowpaw/steampet/pkg/llm"
	"github.com/glowpaw/steampet/pkg/menu"
	"github.com/glowpaw/steampet/pkg/news"
	"github.com/glowpaw/steampet/pkg/prompt"
	"github.com/glowpaw/steampet/pkg/repository"
	"github.com/glowpaw/steampet/pkg/steam"
	"github.com/glowpaw/steampet/pkg/timer"
	"github.com/glowpaw/steampet/pkg/ui"
	"github.com/glowpaw/steampet/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config/config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

// defaultMenuLayout is the radial slot order, clockwise from the top
var defaultMenuLayout = []string{
	"exit", "open_path", "open_steam_page", "stats",
	"timer", "launch_recent", "launch_favorite", "say_hello",
}

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			setupLog(opts.Debug, opts.NoColor)
			log.Printf("[ERROR] can't load config %s: %v", opts.Config, err)
			os.Exit(1)
		}
		cfg = config.Default()
	}

	if err := os.MkdirAll(cfg.Data.Dir, 0o700); err != nil {
		setupLog(opts.Debug, opts.NoColor)
		log.Printf("[ERROR] can't create data dir %s: %v", cfg.Data.Dir, err)
		os.Exit(1)
	}

	settingsErr := func(err error) { log.Printf("[WARN] settings store: %v", err) }
	settings := config.NewStore(filepath.Join(cfg.Data.Dir, "settings.json"), settingsErr)

	// keys never appear in logs, whatever the source
	steamKey, _, _ := settings.SteamCredentials()
	_, llmKey, _ := settings.LLMSettings()
	setupLog(opts.Debug, opts.NoColor, secrets(steamKey, llmKey, cfg.LLM.APIKey)...)

	log.Printf("[INFO] starting steampet version %s", revision)

	lock, err := app.AcquireInstanceLock("steampet")
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	defer lock.Release()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cancel, cfg, settings, opts.Debug); err != nil {
		log.Printf("[ERROR] steampet failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires the application and blocks until ctx is done
func run(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, settings *config.Store, debug bool) error {
	warn := func(what string) func(error) {
		return func(err error) { log.Printf("[WARN] %s: %v", what, err) }
	}

	prompts := prompt.NewStore(filepath.Join(cfg.Data.Dir, "prompts.json"), warn("prompt store"))
	steamRepo := repository.NewSteamCacheRepository(filepath.Join(cfg.Data.Dir, "steam_cache.json"), warn("steam cache"))
	newsRepo := repository.NewNewsRepository(filepath.Join(cfg.Data.Dir, "news_cache.json"), warn("news cache"))
	timerLog := repository.NewTimerLogRepository(filepath.Join(cfg.Data.Dir, "timer_log.json"), warn("timer log"))

	hub := ui.NewHub()

	tasks := steam.NewTaskService(steam.NewClient(cfg.Steam), cfg.Steam.Country, 32)
	facade := steam.NewFacade(settings, steamRepo, tasks, hub)

	newsService := news.NewService(cfg.GetFeeds(), cfg.News.MaxItems,
		news.NewParser(cfg.News.Timeout, cfg.News.UserAgent, cfg.News.MaxBodySize), newsRepo)
	epicClient := epic.NewClient(cfg.Epic)
	llmClient := llm.NewClient(cfg.GetLLMConfig(), settings)

	streamer := behavior.NewStreamer(llmClient, hub)
	greeter := behavior.NewGreeter(streamer, prompts, settings, facade)
	engine := behavior.NewEngine(cfg.Behavior, hub,
		behavior.NewGameRecommendation(facade, prompts, streamer),
		behavior.NewNewsPush(newsService, prompts, streamer),
		behavior.NewFreeGamePush(facade, prompts, streamer),
		behavior.NewDiscountPush(facade, prompts, streamer),
	)

	timerService := timer.NewService(settings.TimerReminder(), timerLog)

	bus := actions.NewBus(func(err error, action actions.Action, kwargs map[string]any) {
		log.Printf("[WARN] action %s failed: %v, kwargs %v", action, err, kwargs)
		hub.ErrorOccurred(fmt.Sprintf("%s: %v", action, err))
	})
	bridge := &petBridge{ctx: ctx, hub: hub, greeter: greeter, cancel: cancel}
	actions.RegisterDefaults(bus, actions.OSLauncher{}, timerService, bridge, settings)

	composer := menu.NewComposer(defaultMenuLayout, len(defaultMenuLayout),
		menu.Exit(bus),
		menu.OpenPath(bus, settings),
		menu.SteamPages(bus, settings),
		menu.Stats(bus),
		menu.Timer(bus, timerService),
		menu.LaunchRecent(bus, facade),
		menu.LaunchFavorite(bus, settings),
		menu.SayHello(bus),
	)

	if cfg.Server.Enabled {
		srv := server.New(cfg, facade, newsService, timerService, bus, composer, revision, debug)
		go func() {
			if err := srv.Run(ctx); err != nil {
				log.Printf("[ERROR] status server failed: %v", err)
			}
		}()
	}

	rt := app.NewRuntime(*cfg, hub, facade, engine, timerService, newsService, epicClient, tasks.Results())
	err := rt.Run(ctx)

	tasks.Wait() // let in-flight fetches land before the process exits
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// secrets filters out empty values so lgr.Secret never masks ""
func secrets(vals ...string) []string {
	res := make([]string, 0, len(vals))
	for _, v := range vals {
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug)
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
