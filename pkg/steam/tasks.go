package steam

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/glowpaw/steampet/pkg/domain"
)

//go:generate moq -out mocks/apiclient.go -pkg mocks -skip-ensure -fmt goimports . APIClient

// TaskType identifies one kind of background fetch
type TaskType string

// Task types delivered through the result channel
const (
	TaskSummary         TaskType = "summary"
	TaskGames           TaskType = "games"
	TaskProfileAndGames TaskType = "profile_and_games"
	TaskStorePrices     TaskType = "store_prices"
	TaskWishlist        TaskType = "wishlist"
	TaskAchievements    TaskType = "achievements"
)

// ProfileAndGames is the combined payload of a profile_and_games task
type ProfileAndGames struct {
	Games   *domain.GamesPayload
	Summary *domain.PlayerSummary
}

// TaskResult crosses the worker/UI boundary. Exactly one result is
// delivered per submitted task; errors are carried as values, never
// panics. Data holds the task-specific payload and may be nil.
type TaskResult struct {
	Type    TaskType
	SteamID string
	Data    any
	Err     error
}

// APIClient is the Steam transport the task service drives
type APIClient interface {
	GetPlayerSummaries(ctx context.Context, apiKey string, steamIDs []string) ([]domain.PlayerSummary, error)
	GetOwnedGames(ctx context.Context, apiKey, steamID string) (*domain.GamesPayload, error)
	GetSteamLevel(ctx context.Context, apiKey, steamID string) (int, error)
	GetAppPrices(ctx context.Context, appIDs []int, countryCode string) (map[string]domain.PriceEntry, error)
	GetPlayerAchievements(ctx context.Context, apiKey, steamID string, appID int) (*domain.AchievementStat, error)
	GetWishlist(ctx context.Context, apiKey, steamID, countryCode string) ([]domain.WishlistItem, error)
}

// TaskService runs Steam fetches on background goroutines and delivers
// each result to a buffered channel drained by the UI loop. Tasks are not
// cancellable once submitted; late results are still delivered and the
// processor absorbs them idempotently.
type TaskService struct {
	client  APIClient
	country string
	results chan TaskResult
	wg      sync.WaitGroup
}

// NewTaskService creates a task service with the given result buffer size
func NewTaskService(client APIClient, country string, buffer int) *TaskService {
	if buffer <= 0 {
		buffer = 32
	}
	return &TaskService{
		client:  client,
		country: country,
		results: make(chan TaskResult, buffer),
	}
}

// Results is the single-reader channel the UI loop drains
func (s *TaskService) Results() <-chan TaskResult {
	return s.results
}

// Wait blocks until all in-flight tasks have delivered their result
func (s *TaskService) Wait() {
	s.wg.Wait()
}

func (s *TaskService) run(task func() TaskResult) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[ERROR] steam task panic: %v", r)
			}
		}()
		s.results <- task()
	}()
}

// SubmitSummary fetches the primary player summary
func (s *TaskService) SubmitSummary(ctx context.Context, apiKey, steamID string) {
	s.run(func() TaskResult {
		res := TaskResult{Type: TaskSummary, SteamID: steamID}
		summaries, err := s.client.GetPlayerSummaries(ctx, apiKey, []string{steamID})
		if err != nil {
			res.Err = err
			return res
		}
		if len(summaries) == 0 {
			res.Err = fmt.Errorf("no summary for %s", steamID)
			return res
		}
		summary := summaries[0]
		if level, err := s.client.GetSteamLevel(ctx, apiKey, steamID); err == nil {
			summary.SteamLevel = level
		} else {
			log.Printf("[WARN] steam level for %s unavailable: %v", steamID, err)
		}
		res.Data = &summary
		return res
	})
}

// SubmitProfileAndGames fetches one account's library and profile together.
// An empty library counts as a task error so the aggregator barrier still
// receives its decrement.
func (s *TaskService) SubmitProfileAndGames(ctx context.Context, apiKey, steamID string) {
	s.run(func() TaskResult {
		res := TaskResult{Type: TaskProfileAndGames, SteamID: steamID}
		games, err := s.client.GetOwnedGames(ctx, apiKey, steamID)
		if err != nil {
			res.Err = err
			return res
		}
		if games.IsEmpty() {
			res.Err = fmt.Errorf("no games for %s", steamID)
			return res
		}

		payload := &ProfileAndGames{Games: games}
		summaries, err := s.client.GetPlayerSummaries(ctx, apiKey, []string{steamID})
		if err != nil || len(summaries) == 0 {
			log.Printf("[WARN] summary for %s unavailable: %v", steamID, err)
		} else {
			summary := summaries[0]
			if level, err := s.client.GetSteamLevel(ctx, apiKey, steamID); err == nil {
				summary.SteamLevel = level
			}
			payload.Summary = &summary
		}
		res.Data = payload
		return res
	})
}

// SubmitStorePrices fetches the price delta for the given appids
func (s *TaskService) SubmitStorePrices(ctx context.Context, appIDs []int) {
	s.run(func() TaskResult {
		res := TaskResult{Type: TaskStorePrices}
		prices, err := s.client.GetAppPrices(ctx, appIDs, s.country)
		if err != nil {
			res.Err = err
			return res
		}
		if len(prices) > 0 {
			res.Data = prices
		}
		return res
	})
}

// SubmitWishlist fetches the replacement wishlist discounts
func (s *TaskService) SubmitWishlist(ctx context.Context, apiKey, steamID string) {
	s.run(func() TaskResult {
		res := TaskResult{Type: TaskWishlist, SteamID: steamID}
		items, err := s.client.GetWishlist(ctx, apiKey, steamID, s.country)
		if err != nil {
			res.Err = err
			return res
		}
		res.Data = items
		return res
	})
}

// SubmitAchievements fetches achievement progress for the given appids
func (s *TaskService) SubmitAchievements(ctx context.Context, apiKey, steamID string, appIDs []int) {
	s.run(func() TaskResult {
		res := TaskResult{Type: TaskAchievements, SteamID: steamID}
		stats := map[string]domain.AchievementStat{}
		for _, appID := range appIDs {
			stat, err := s.client.GetPlayerAchievements(ctx, apiKey, steamID, appID)
			if err != nil {
				log.Printf("[WARN] achievements for app %d unavailable: %v", appID, err)
				continue
			}
			if stat != nil {
				stats[strconv.Itoa(appID)] = *stat
			}
		}
		if len(stats) > 0 {
			res.Data = stats
		}
		return res
	})
}
