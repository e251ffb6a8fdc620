// Package server exposes the localhost status/control API: read-only
// snapshots of the Steam cache, news and timer state, plus action
// dispatch through the bus. It is a debug and automation surface, not
// the UI shell.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/glowpaw/steampet/pkg/actions"
	"github.com/glowpaw/steampet/pkg/domain"
	"github.com/glowpaw/steampet/pkg/steam"
)

//go:generate moq -out mocks/config_provider.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/steam_reader.go -pkg mocks -skip-ensure -fmt goimports . SteamReader
//go:generate moq -out mocks/news_provider.go -pkg mocks -skip-ensure -fmt goimports . NewsProvider
//go:generate moq -out mocks/timer_status.go -pkg mocks -skip-ensure -fmt goimports . TimerStatus
//go:generate moq -out mocks/action_executor.go -pkg mocks -skip-ensure -fmt goimports . ActionExecutor
//go:generate moq -out mocks/menu_composer.go -pkg mocks -skip-ensure -fmt goimports . MenuComposer

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// SteamReader is the read-only Steam cache surface
type SteamReader interface {
	RecentGames(limit int) []domain.Game
	SearchGames(keyword string) []domain.Game
	GameDatasets() steam.Datasets
}

// NewsProvider serves the day's news
type NewsProvider interface {
	Today(ctx context.Context, forceRefresh bool) ([]domain.NewsItem, bool, error)
}

// TimerStatus is the read-only timer surface
type TimerStatus interface {
	Active() bool
	Running() bool
	ElapsedSeconds() int
	Settings() domain.ReminderSettings
}

// ActionExecutor dispatches actions from control requests
type ActionExecutor interface {
	Execute(action actions.Action, kwargs map[string]any) any
}

// MenuComposer produces the current radial menu layout
type MenuComposer interface {
	Compose() []*domain.MenuItem
}

// Server represents the status/control HTTP server
type Server struct {
	config  ConfigProvider
	steam   SteamReader
	news    NewsProvider
	timer   TimerStatus
	bus     ActionExecutor
	menu    MenuComposer
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// New initializes a new server instance
func New(cfg ConfigProvider, steamReader SteamReader, news NewsProvider, timer TimerStatus,
	bus ActionExecutor, menu MenuComposer, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		steam:   steamReader,
		news:    news,
		timer:   timer,
		bus:     bus,
		menu:    menu,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting status server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down status server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("steampet", "glowpaw", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // action kwargs are small
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /games/recent", s.recentGamesHandler)
		r.HandleFunc("GET /games/search", s.searchGamesHandler)
		r.HandleFunc("GET /news", s.newsHandler)
		r.HandleFunc("GET /timer", s.timerHandler)
		r.HandleFunc("GET /menu", s.menuHandler)
		r.HandleFunc("POST /action/{action}", s.actionHandler)
	})
}
