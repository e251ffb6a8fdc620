package behavior

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowpaw/steampet/pkg/behavior/mocks"
	"github.com/glowpaw/steampet/pkg/domain"
	"github.com/glowpaw/steampet/pkg/steam"
)

// substateHarness bundles the shared substate dependencies
type substateHarness struct {
	speech  *recorder
	prompts *promptsStub
	stream  *Streamer
}

func newSubstateHarness(t *testing.T) *substateHarness {
	t.Helper()
	speech := newRecorder()
	llm := &mocks.LLMMock{
		StreamFunc: func(_ context.Context, _, _ string, onDelta func(string)) error {
			onDelta("推送内容")
			return nil
		},
	}
	return &substateHarness{
		speech:  speech,
		prompts: &promptsStub{out: "assembled"},
		stream:  fixedStreamer(llm, speech, "r1"),
	}
}

func cacheWith(ds steam.Datasets) *mocks.CacheReaderMock {
	return &mocks.CacheReaderMock{GameDatasetsFunc: func() steam.Datasets { return ds }}
}

func TestGameRecommendation(t *testing.T) {
	t.Run("streams with library vars", func(t *testing.T) {
		h := newSubstateHarness(t)
		cache := cacheWith(steam.Datasets{Games: &domain.GamesPayload{
			Count:         50,
			AllGames:      []domain.Game{{AppID: 220}},
			TotalPlaytime: 3000,
			RecentGame:    &domain.Game{Name: "Factorio", PlaytimeForever: 600},
		}})

		sub := NewGameRecommendation(cache, h.prompts, h.stream)
		assert.Equal(t, "game_recommendation", sub.Name())
		sub.Execute(context.Background())

		assert.Equal(t, "active_game_recommendation", h.prompts.name)
		assert.Equal(t, "Factorio", h.prompts.vars["recent_game"])
		assert.Equal(t, "10", h.prompts.vars["recent_hours"])
		assert.Equal(t, "50", h.prompts.vars["game_count"])
		assert.Equal(t, "50", h.prompts.vars["total_hours"])
		assert.Equal(t, []string{"started:r1", "delta:r1:推送内容", "done:r1"}, h.speech.events)
	})

	t.Run("empty library stays silent", func(t *testing.T) {
		h := newSubstateHarness(t)
		sub := NewGameRecommendation(cacheWith(steam.Datasets{}), h.prompts, h.stream)
		sub.Execute(context.Background())
		assert.Empty(t, h.speech.events)
	})
}

func TestNewsPush(t *testing.T) {
	t.Run("streams joined titles", func(t *testing.T) {
		h := newSubstateHarness(t)
		news := &mocks.NewsReaderMock{
			TodayFunc: func(context.Context, bool) ([]domain.NewsItem, bool, error) {
				items := make([]domain.NewsItem, 7)
				for i := range items {
					items[i] = domain.NewsItem{Title: string(rune('A' + i))}
				}
				return items, false, nil
			},
		}

		sub := NewNewsPush(news, h.prompts, h.stream)
		assert.Equal(t, "news_push", sub.Name())
		sub.Execute(context.Background())

		require.Len(t, news.TodayCalls(), 1)
		assert.False(t, news.TodayCalls()[0].ForceRefresh, "cache-first read")
		assert.Equal(t, "A；B；C；D；E", h.prompts.vars["news_titles"], "capped at five titles")
		assert.NotEmpty(t, h.speech.events)
	})

	t.Run("fetch failure stays silent", func(t *testing.T) {
		h := newSubstateHarness(t)
		news := &mocks.NewsReaderMock{
			TodayFunc: func(context.Context, bool) ([]domain.NewsItem, bool, error) {
				return nil, false, errors.New("offline")
			},
		}
		NewNewsPush(news, h.prompts, h.stream).Execute(context.Background())
		assert.Empty(t, h.speech.events)
	})
}

func TestFreeGamePush(t *testing.T) {
	t.Run("pushes only live giveaways", func(t *testing.T) {
		h := newSubstateHarness(t)
		cache := cacheWith(steam.Datasets{FreeGame: &domain.FreeGames{Items: []domain.EpicOffer{
			{Title: "Control", DiscountPrice: 0},
			{Title: "Alan Wake", DiscountPrice: 0, IsUpcoming: true},
			{Title: "Hades", DiscountPrice: 990, OriginalPrice: 1980},
		}}})

		NewFreeGamePush(cache, h.prompts, h.stream).Execute(context.Background())

		assert.Equal(t, "free_game_push", h.prompts.name)
		assert.Equal(t, "《Control》", h.prompts.vars["free_games"])
		assert.NotEmpty(t, h.speech.events)
	})

	t.Run("nothing live stays silent", func(t *testing.T) {
		h := newSubstateHarness(t)
		cache := cacheWith(steam.Datasets{FreeGame: &domain.FreeGames{Items: []domain.EpicOffer{
			{Title: "Alan Wake", DiscountPrice: 0, IsUpcoming: true},
		}}})
		NewFreeGamePush(cache, h.prompts, h.stream).Execute(context.Background())
		assert.Empty(t, h.speech.events)
	})
}

func TestDiscountPush(t *testing.T) {
	t.Run("formats discounted wishlist entries", func(t *testing.T) {
		h := newSubstateHarness(t)
		cache := cacheWith(steam.Datasets{Wishlist: []domain.WishlistItem{
			{Name: "Celeste", DiscountPercent: 75, OriginalPrice: 6800, FinalPrice: 1700},
			{Name: "Full Price", DiscountPercent: 0, OriginalPrice: 9900, FinalPrice: 9900},
		}})

		NewDiscountPush(cache, h.prompts, h.stream).Execute(context.Background())

		assert.Equal(t, "discount_push", h.prompts.name)
		assert.Equal(t, "《Celeste》-75%，现价17.00（原价68.00）", h.prompts.vars["discounts"])
		assert.NotEmpty(t, h.speech.events)
	})

	t.Run("no discounts stays silent", func(t *testing.T) {
		h := newSubstateHarness(t)
		cache := cacheWith(steam.Datasets{Wishlist: []domain.WishlistItem{
			{Name: "Full Price", DiscountPercent: 0},
		}})
		NewDiscountPush(cache, h.prompts, h.stream).Execute(context.Background())
		assert.Empty(t, h.speech.events)
	})
}
