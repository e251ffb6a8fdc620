// Package app runs the core loop: it drains worker results into the Steam
// facade, ticks the behavior engine and the timer, and schedules the
// background news and Epic refreshes.
package app

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/glowpaw/steampet/pkg/config"
	"github.com/glowpaw/steampet/pkg/domain"
	"github.com/glowpaw/steampet/pkg/steam"
	"github.com/glowpaw/steampet/pkg/timer"
	"github.com/glowpaw/steampet/pkg/ui"
)

// Facade is the Steam coordination surface the runtime drives
type Facade interface {
	FetchPlayerSummary(ctx context.Context)
	FetchGamesStats(ctx context.Context)
	FetchWishlist(ctx context.Context)
	HandleResult(res steam.TaskResult)
	UpdateFreeGames(items []domain.EpicOffer)
}

// Engine is the behavior state machine surface
type Engine interface {
	Update(ctx context.Context, isDragging bool) string
}

// Timer is the timer service surface the 1 Hz tick drives
type Timer interface {
	Tick() timer.TickResult
	Stop()
	Active() bool
	Running() bool
	ElapsedSeconds() int
}

// NewsService serves the day's news
type NewsService interface {
	Today(ctx context.Context, forceRefresh bool) ([]domain.NewsItem, bool, error)
}

// EpicClient fetches the current Epic giveaways
type EpicClient interface {
	FreeGames(ctx context.Context) ([]domain.EpicOffer, error)
}

// Runtime owns the UI-goroutine loop. Everything it calls runs serially;
// workers deliver through their channels only.
type Runtime struct {
	cfg     config.Config
	hub     *ui.Hub
	facade  Facade
	engine  Engine
	timer   Timer
	news    NewsService
	epic    EpicClient
	results <-chan steam.TaskResult

	dragging atomic.Bool
	cron     *cron.Cron

	// epic fetches run on worker goroutines; offers cross back to the
	// loop goroutine here so only the loop touches the facade
	epicResults chan []domain.EpicOffer
}

// NewRuntime wires the core loop over its already-constructed parts
func NewRuntime(cfg config.Config, hub *ui.Hub, facade Facade, engine Engine, tmr Timer,
	news NewsService, epic EpicClient, results <-chan steam.TaskResult) *Runtime {
	return &Runtime{
		cfg:         cfg,
		hub:         hub,
		facade:      facade,
		engine:      engine,
		timer:       tmr,
		news:        news,
		epic:        epic,
		results:     results,
		epicResults: make(chan []domain.EpicOffer, 1),
	}
}

// SetDragging records the shell's drag state for the next behavior tick
func (r *Runtime) SetDragging(dragging bool) {
	r.dragging.Store(dragging)
}

// Run starts the schedules, kicks the initial fetches and loops until ctx
// is done. It blocks; the caller owns signal handling.
func (r *Runtime) Run(ctx context.Context) error {
	if err := r.startSchedules(ctx); err != nil {
		return err
	}
	defer r.cron.Stop()

	r.facade.FetchPlayerSummary(ctx)
	r.facade.FetchGamesStats(ctx)
	r.facade.FetchWishlist(ctx)
	go r.refreshEpic(ctx)
	go r.refreshNews(ctx, false)

	tickEvery := r.cfg.Behavior.TickInterval
	if tickEvery <= 0 {
		tickEvery = 100 * time.Millisecond
	}
	behaviorTick := time.NewTicker(tickEvery)
	defer behaviorTick.Stop()
	timerTick := time.NewTicker(time.Second)
	defer timerTick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-behaviorTick.C:
			r.drainResults()
			tag := r.engine.Update(ctx, r.dragging.Load())
			r.hub.Publish(ui.IntentAnimation, tag)
		case <-timerTick.C:
			r.tickTimer()
		case offers := <-r.epicResults:
			r.facade.UpdateFreeGames(offers)
			r.hub.Publish(ui.IntentFreeGamesUpdated, offers)
		}
	}
}

// drainResults applies every pending worker result before the behavior
// tick, so the engine always sees a settled cache
func (r *Runtime) drainResults() {
	for {
		select {
		case res := <-r.results:
			r.facade.HandleResult(res)
		default:
			return
		}
	}
}

func (r *Runtime) tickTimer() {
	res := r.timer.Tick()
	if res.Notify != nil {
		r.hub.Publish(ui.IntentToast, ui.Toast{Title: res.Notify.Title, Message: res.Notify.Body})
	}
	if res.StopAndPersist {
		r.timer.Stop()
	}
	if r.timer.Active() {
		r.hub.Publish(ui.IntentTimerState, ui.TimerState{
			Active:         true,
			Running:        r.timer.Running(),
			ElapsedSeconds: r.timer.ElapsedSeconds(),
		})
	}
}

// startSchedules registers the news cron and the Epic refresh interval
func (r *Runtime) startSchedules(ctx context.Context) error {
	r.cron = cron.New()

	newsCron := r.cfg.Schedule.NewsCron
	if newsCron == "" {
		newsCron = "0 9 * * *"
	}
	if _, err := r.cron.AddFunc(newsCron, func() { r.refreshNews(ctx, true) }); err != nil {
		return err
	}

	epicEvery := r.cfg.Schedule.EpicEvery
	if epicEvery <= 0 {
		epicEvery = 6 * time.Hour
	}
	r.cron.Schedule(cron.Every(epicEvery), cron.FuncJob(func() { r.refreshEpic(ctx) }))

	r.cron.Start()
	return nil
}

// refreshNews runs on a background goroutine; failures are silent for the
// scheduled path and the stale cache keeps serving
func (r *Runtime) refreshNews(ctx context.Context, force bool) {
	items, _, err := r.news.Today(ctx, force)
	if err != nil {
		log.Printf("[WARN] news refresh: %v", err)
		return
	}
	r.hub.Publish(ui.IntentNewsUpdated, items)
}

func (r *Runtime) refreshEpic(ctx context.Context) {
	offers, err := r.epic.FreeGames(ctx)
	if err != nil {
		log.Printf("[WARN] epic refresh: %v", err)
		return
	}
	select {
	case r.epicResults <- offers:
	case <-ctx.Done():
	}
}
