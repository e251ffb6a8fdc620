package behavior

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/glowpaw/steampet/pkg/domain"
	"github.com/glowpaw/steampet/pkg/prompt"
)

//go:generate moq -out mocks/news_reader.go -pkg mocks -skip-ensure -fmt goimports . NewsReader

// NewsReader provides the day's news, served from cache when fresh
type NewsReader interface {
	Today(ctx context.Context, forceRefresh bool) ([]domain.NewsItem, bool, error)
}

// GameRecommendation nudges the player toward a game from their library
type GameRecommendation struct {
	cache    CacheReader
	prompts  Prompts
	streamer *Streamer
}

// NewGameRecommendation creates the game recommendation substate
func NewGameRecommendation(cache CacheReader, prompts Prompts, streamer *Streamer) *GameRecommendation {
	return &GameRecommendation{cache: cache, prompts: prompts, streamer: streamer}
}

// Name implements Substate
func (s *GameRecommendation) Name() string { return "game_recommendation" }

// Execute streams a recommendation built from the library stats. With an
// empty library it returns without output.
func (s *GameRecommendation) Execute(ctx context.Context) {
	ds := s.cache.GameDatasets()
	if ds.Games.IsEmpty() {
		return
	}

	recentGame, recentHours := "未知", "0"
	if g := ds.Games.RecentGame; g != nil {
		recentGame = g.Name
		recentHours = fmt.Sprintf("%d", g.PlaytimeForever/60)
	}
	vars := map[string]string{
		"recent_game":  recentGame,
		"recent_hours": recentHours,
		"game_count":   fmt.Sprintf("%d", ds.Games.Count),
		"total_hours":  fmt.Sprintf("%d", ds.Games.TotalPlaytime/60),
	}

	user, err := s.prompts.Assemble(prompt.ActiveGameRecommendation, vars)
	if err != nil {
		log.Printf("[WARN] assemble recommendation prompt: %v", err)
		return
	}
	s.streamer.Run(ctx, "", user, "")
}

// NewsPush reads out one of today's news items
type NewsPush struct {
	news     NewsReader
	prompts  Prompts
	streamer *Streamer
}

// NewNewsPush creates the news push substate
func NewNewsPush(news NewsReader, prompts Prompts, streamer *Streamer) *NewsPush {
	return &NewsPush{news: news, prompts: prompts, streamer: streamer}
}

// Name implements Substate
func (s *NewsPush) Name() string { return "news_push" }

// Execute streams a news digest. A failed or empty fetch produces nothing.
func (s *NewsPush) Execute(ctx context.Context) {
	items, _, err := s.news.Today(ctx, false)
	if err != nil || len(items) == 0 {
		if err != nil {
			log.Printf("[WARN] news push fetch: %v", err)
		}
		return
	}

	titles := make([]string, 0, 5)
	for _, item := range items {
		if len(titles) == 5 {
			break
		}
		titles = append(titles, item.Title)
	}

	user, err := s.prompts.Assemble(prompt.NewsPush, map[string]string{"news_titles": strings.Join(titles, "；")})
	if err != nil {
		log.Printf("[WARN] assemble news prompt: %v", err)
		return
	}
	s.streamer.Run(ctx, "", user, "")
}

// FreeGamePush reminds the player about current Epic giveaways
type FreeGamePush struct {
	cache    CacheReader
	prompts  Prompts
	streamer *Streamer
}

// NewFreeGamePush creates the free game push substate
func NewFreeGamePush(cache CacheReader, prompts Prompts, streamer *Streamer) *FreeGamePush {
	return &FreeGamePush{cache: cache, prompts: prompts, streamer: streamer}
}

// Name implements Substate
func (s *FreeGamePush) Name() string { return "free_game_push" }

// Execute streams a giveaway reminder from the cached Epic block
func (s *FreeGamePush) Execute(ctx context.Context) {
	ds := s.cache.GameDatasets()
	if ds.FreeGame == nil || len(ds.FreeGame.Items) == 0 {
		return
	}

	var names []string
	for i := range ds.FreeGame.Items {
		offer := &ds.FreeGame.Items[i]
		if offer.IsUpcoming || !offer.IsFree() {
			continue
		}
		names = append(names, "《"+offer.Title+"》")
	}
	if len(names) == 0 {
		return
	}

	user, err := s.prompts.Assemble(prompt.FreeGamePush, map[string]string{"free_games": strings.Join(names, "、")})
	if err != nil {
		log.Printf("[WARN] assemble free game prompt: %v", err)
		return
	}
	s.streamer.Run(ctx, "", user, "")
}

// DiscountPush points out wishlist games on sale
type DiscountPush struct {
	cache    CacheReader
	prompts  Prompts
	streamer *Streamer
}

// NewDiscountPush creates the discount push substate
func NewDiscountPush(cache CacheReader, prompts Prompts, streamer *Streamer) *DiscountPush {
	return &DiscountPush{cache: cache, prompts: prompts, streamer: streamer}
}

// Name implements Substate
func (s *DiscountPush) Name() string { return "discount_push" }

// Execute streams a discount reminder from the cached wishlist
func (s *DiscountPush) Execute(ctx context.Context) {
	ds := s.cache.GameDatasets()

	var lines []string
	for _, item := range ds.Wishlist {
		if item.DiscountPercent <= 0 {
			continue
		}
		if len(lines) == 5 {
			break
		}
		lines = append(lines, fmt.Sprintf("《%s》-%d%%，现价%.2f（原价%.2f）",
			item.Name, item.DiscountPercent, float64(item.FinalPrice)/100, float64(item.OriginalPrice)/100))
	}
	if len(lines) == 0 {
		return
	}

	user, err := s.prompts.Assemble(prompt.DiscountPush, map[string]string{"discounts": strings.Join(lines, "；")})
	if err != nil {
		log.Printf("[WARN] assemble discount prompt: %v", err)
		return
	}
	s.streamer.Run(ctx, "", user, "")
}
