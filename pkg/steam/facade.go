package steam

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/glowpaw/steampet/pkg/domain"
)

//go:generate moq -out mocks/cache_repository.go -pkg mocks -skip-ensure -fmt goimports . CacheRepository
//go:generate moq -out mocks/submitter.go -pkg mocks -skip-ensure -fmt goimports . Submitter
//go:generate moq -out mocks/ui_signals.go -pkg mocks -skip-ensure -fmt goimports . UISignals
//go:generate moq -out mocks/credentials.go -pkg mocks -skip-ensure -fmt goimports . Credentials

// CacheRepository persists the Steam cache document
type CacheRepository interface {
	Load() *domain.SteamCache
	Save(cache *domain.SteamCache) error
}

// Submitter schedules background Steam fetches
type Submitter interface {
	SubmitSummary(ctx context.Context, apiKey, steamID string)
	SubmitProfileAndGames(ctx context.Context, apiKey, steamID string)
	SubmitStorePrices(ctx context.Context, appIDs []int)
	SubmitWishlist(ctx context.Context, apiKey, steamID string)
	SubmitAchievements(ctx context.Context, apiKey, steamID string, appIDs []int)
}

// UISignals receives the emit side of processed effect steps
type UISignals interface {
	PlayerSummaryUpdated(summary domain.PlayerSummary)
	GamesStatsUpdated(games domain.GamesPayload)
	StorePricesUpdated(delta map[string]domain.PriceEntry)
	WishlistUpdated(items []domain.WishlistItem)
	AchievementsUpdated(delta map[string]domain.AchievementStat)
	ErrorOccurred(msg string)
}

// Credentials provides the Steam account policy from runtime settings
type Credentials interface {
	SteamCredentials() (apiKey, steamID string, altIDs []string)
}

// Datasets is a read snapshot of the cache handed to stats windows
type Datasets struct {
	Summary      *domain.PlayerSummary
	Games        *domain.GamesPayload
	Wishlist     []domain.WishlistItem
	Achievements map[string]domain.AchievementStat
	Prices       map[string]domain.PriceEntry
	FreeGame     *domain.FreeGames
}

// Facade owns the Steam cache and coordinates fetch requests, result
// processing, persistence and UI signals. Mutations stay on the loop
// goroutine; read snapshots may be taken from any goroutine, guarded by
// the cache lock.
type Facade struct {
	creds Credentials
	repo  CacheRepository
	tasks Submitter
	ui    UISignals
	proc  Processor

	mu    sync.RWMutex
	agg   Aggregator
	cache *domain.SteamCache
}

// NewFacade loads the cache and enforces the startup invariant: a missing
// merged library is re-derived from games_accounts and saved once before
// any UI signal.
func NewFacade(creds Credentials, repo CacheRepository, tasks Submitter, ui UISignals) *Facade {
	f := &Facade{creds: creds, repo: repo, tasks: tasks, ui: ui}
	f.cache = repo.Load()

	if f.cache.Games.IsEmpty() && len(f.cache.GamesAccounts) > 0 {
		_, primary, _ := creds.SteamCredentials()
		if rebuilt := DeriveGamesFromAccounts(f.cache.GamesAccounts, primary); !rebuilt.IsEmpty() {
			f.cache.Games = rebuilt
			if err := repo.Save(f.cache); err != nil {
				log.Printf("[WARN] save rebuilt games cache: %v", err)
			}
		}
	}
	return f
}

// FetchPlayerSummary requests the primary profile, fire and forget
func (f *Facade) FetchPlayerSummary(ctx context.Context) {
	apiKey, steamID, _ := f.creds.SteamCredentials()
	if apiKey == "" || steamID == "" {
		return // credentials missing, nothing to surface
	}
	f.tasks.SubmitSummary(ctx, apiKey, steamID)
}

// FetchGamesStats opens the aggregation barrier and requests every
// configured account: primary first, then alts, de-duplicated in order.
func (f *Facade) FetchGamesStats(ctx context.Context) {
	apiKey, steamID, altIDs := f.creds.SteamCredentials()
	if apiKey == "" || steamID == "" {
		return
	}

	accounts := []string{steamID}
	seen := map[string]bool{steamID: true}
	for _, id := range altIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		accounts = append(accounts, id)
	}

	f.mu.Lock()
	f.agg.Begin(accounts, steamID)
	f.mu.Unlock()
	for _, id := range accounts {
		f.tasks.SubmitProfileAndGames(ctx, apiKey, id)
	}
}

// FetchStorePrices requests store prices for the given appids
func (f *Facade) FetchStorePrices(ctx context.Context, appIDs []int) {
	if len(appIDs) == 0 {
		return
	}
	f.tasks.SubmitStorePrices(ctx, appIDs)
}

// FetchWishlist requests the wishlist discounts for the primary account
func (f *Facade) FetchWishlist(ctx context.Context) {
	apiKey, steamID, _ := f.creds.SteamCredentials()
	if apiKey == "" || steamID == "" {
		return
	}
	f.tasks.SubmitWishlist(ctx, apiKey, steamID)
}

// FetchAchievements requests achievement progress for the given appids
func (f *Facade) FetchAchievements(ctx context.Context, appIDs []int) {
	apiKey, steamID, _ := f.creds.SteamCredentials()
	if apiKey == "" || steamID == "" || len(appIDs) == 0 {
		return
	}
	f.tasks.SubmitAchievements(ctx, apiKey, steamID, appIDs)
}

// OnCredentialsChanged re-runs the main fetches with the new accounts.
// In-flight tasks from the old credentials still deliver; their results
// are absorbed idempotently.
func (f *Facade) OnCredentialsChanged(ctx context.Context) {
	f.FetchGamesStats(ctx)
	f.FetchWishlist(ctx)
}

// HandleResult processes one worker result and applies its effect steps in
// order. Called serially on the loop goroutine; the cache mutation runs
// under the write lock so snapshot readers never see it mid-change.
func (f *Facade) HandleResult(res TaskResult) {
	f.mu.Lock()
	steps := f.proc.Process(res, f.cache, &f.agg)
	f.mu.Unlock()
	for _, s := range steps {
		switch step := s.(type) {
		case SaveStep:
			if err := f.repo.Save(f.cache); err != nil {
				log.Printf("[WARN] save steam cache (%s): %v", step.Reason, err)
			}
		case EmitPlayerSummary:
			f.ui.PlayerSummaryUpdated(*step.Summary)
		case EmitGamesStats:
			f.ui.GamesStatsUpdated(*step.Games)
		case EmitStorePrices:
			f.ui.StorePricesUpdated(step.Prices)
		case EmitWishlist:
			f.ui.WishlistUpdated(step.Items)
		case EmitAchievements:
			f.ui.AchievementsUpdated(step.Stats)
		case EmitError:
			log.Printf("[WARN] steam task failed: %s", step.Message)
			f.ui.ErrorOccurred(step.Message)
		}
	}
}

// UpdateFreeGames stores the Epic free-games block and persists once
func (f *Facade) UpdateFreeGames(items []domain.EpicOffer) {
	f.mu.Lock()
	f.cache.FreeGame = &domain.FreeGames{
		UpdatedAt: time.Now().Format(time.RFC3339),
		Items:     items,
	}
	f.mu.Unlock()
	if err := f.repo.Save(f.cache); err != nil {
		log.Printf("[WARN] save free games: %v", err)
	}
}

// RecentGames returns up to limit games ordered by last-played desc
func (f *Facade) RecentGames(limit int) []domain.Game {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.cache.Games.IsEmpty() || limit <= 0 {
		return nil
	}
	games := make([]domain.Game, len(f.cache.Games.AllGames))
	copy(games, f.cache.Games.AllGames)
	sort.SliceStable(games, func(i, j int) bool { return games[i].LastPlayed > games[j].LastPlayed })
	if len(games) > limit {
		games = games[:limit]
	}
	return games
}

// SearchGames returns library games whose name contains keyword,
// case-insensitive, in library order.
func (f *Facade) SearchGames(keyword string) []domain.Game {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.cache.Games.IsEmpty() || keyword == "" {
		return nil
	}
	needle := strings.ToLower(keyword)
	var found []domain.Game
	for _, g := range f.cache.Games.AllGames {
		if strings.Contains(strings.ToLower(g.Name), needle) {
			found = append(found, g)
		}
	}
	return found
}

// GameDatasets returns a snapshot of the cache, safe to take from any
// goroutine. Maps and slices are copied under the lock; Summary, Games
// and FreeGame are replaced whole by the processor, never edited in
// place, so handing the pointers out is safe.
func (f *Facade) GameDatasets() Datasets {
	f.mu.RLock()
	defer f.mu.RUnlock()
	ds := Datasets{Summary: f.cache.Summary, Games: f.cache.Games, FreeGame: f.cache.FreeGame}

	if len(f.cache.Wishlist) > 0 {
		ds.Wishlist = make([]domain.WishlistItem, len(f.cache.Wishlist))
		copy(ds.Wishlist, f.cache.Wishlist)
	}
	if len(f.cache.Achievements) > 0 {
		ds.Achievements = make(map[string]domain.AchievementStat, len(f.cache.Achievements))
		for k, v := range f.cache.Achievements {
			ds.Achievements[k] = v
		}
	}
	if len(f.cache.Prices) > 0 {
		ds.Prices = make(map[string]domain.PriceEntry, len(f.cache.Prices))
		for k, v := range f.cache.Prices {
			ds.Prices[k] = v
		}
	}
	return ds
}
