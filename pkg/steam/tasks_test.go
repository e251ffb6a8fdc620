package steam_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowpaw/steampet/pkg/domain"
	"github.com/glowpaw/steampet/pkg/steam"
	"github.com/glowpaw/steampet/pkg/steam/mocks"
)

// drainOne waits for exactly one result after all in-flight tasks finished
func drainOne(t *testing.T, s *steam.TaskService) steam.TaskResult {
	t.Helper()
	s.Wait()
	select {
	case res := <-s.Results():
		return res
	case <-time.After(time.Second):
		t.Fatal("no result delivered")
		return steam.TaskResult{}
	}
}

func TestTaskService_SubmitSummary(t *testing.T) {
	client := &mocks.APIClientMock{
		GetPlayerSummariesFunc: func(_ context.Context, apiKey string, steamIDs []string) ([]domain.PlayerSummary, error) {
			assert.Equal(t, "key", apiKey)
			require.Equal(t, []string{"main"}, steamIDs)
			return []domain.PlayerSummary{{SteamID: "main", PersonaName: "alice"}}, nil
		},
		GetSteamLevelFunc: func(context.Context, string, string) (int, error) { return 42, nil },
	}
	svc := steam.NewTaskService(client, "CN", 8)

	svc.SubmitSummary(context.Background(), "key", "main")
	res := drainOne(t, svc)

	assert.Equal(t, steam.TaskSummary, res.Type)
	assert.Equal(t, "main", res.SteamID)
	require.NoError(t, res.Err)
	summary, ok := res.Data.(*domain.PlayerSummary)
	require.True(t, ok)
	assert.Equal(t, "alice", summary.PersonaName)
	assert.Equal(t, 42, summary.SteamLevel, "level merged into the summary")
}

func TestTaskService_SubmitSummaryLevelFailureTolerated(t *testing.T) {
	client := &mocks.APIClientMock{
		GetPlayerSummariesFunc: func(context.Context, string, []string) ([]domain.PlayerSummary, error) {
			return []domain.PlayerSummary{{SteamID: "main"}}, nil
		},
		GetSteamLevelFunc: func(context.Context, string, string) (int, error) { return 0, errors.New("nope") },
	}
	svc := steam.NewTaskService(client, "CN", 8)

	svc.SubmitSummary(context.Background(), "key", "main")
	res := drainOne(t, svc)

	require.NoError(t, res.Err)
	summary := res.Data.(*domain.PlayerSummary)
	assert.Zero(t, summary.SteamLevel)
}

func TestTaskService_SubmitSummaryError(t *testing.T) {
	client := &mocks.APIClientMock{
		GetPlayerSummariesFunc: func(context.Context, string, []string) ([]domain.PlayerSummary, error) {
			return nil, errors.New("api down")
		},
	}
	svc := steam.NewTaskService(client, "CN", 8)

	svc.SubmitSummary(context.Background(), "key", "main")
	res := drainOne(t, svc)

	require.Error(t, res.Err)
	assert.Nil(t, res.Data)
}

func TestTaskService_SubmitProfileAndGames(t *testing.T) {
	client := &mocks.APIClientMock{
		GetOwnedGamesFunc: func(context.Context, string, string) (*domain.GamesPayload, error) {
			return &domain.GamesPayload{Count: 1, AllGames: []domain.Game{{AppID: 10, Name: "Ten"}}}, nil
		},
		GetPlayerSummariesFunc: func(context.Context, string, []string) ([]domain.PlayerSummary, error) {
			return []domain.PlayerSummary{{SteamID: "main", PersonaName: "alice"}}, nil
		},
		GetSteamLevelFunc: func(context.Context, string, string) (int, error) { return 7, nil },
	}
	svc := steam.NewTaskService(client, "CN", 8)

	svc.SubmitProfileAndGames(context.Background(), "key", "main")
	res := drainOne(t, svc)

	require.NoError(t, res.Err)
	payload, ok := res.Data.(*steam.ProfileAndGames)
	require.True(t, ok)
	assert.Equal(t, 1, payload.Games.Count)
	require.NotNil(t, payload.Summary)
	assert.Equal(t, 7, payload.Summary.SteamLevel)
}

func TestTaskService_SubmitProfileAndGamesEmptyLibraryIsError(t *testing.T) {
	// the aggregation barrier counts one decrement per account, so an empty
	// library must surface as a task error, not a silent nil
	client := &mocks.APIClientMock{
		GetOwnedGamesFunc: func(context.Context, string, string) (*domain.GamesPayload, error) { return nil, nil },
	}
	svc := steam.NewTaskService(client, "CN", 8)

	svc.SubmitProfileAndGames(context.Background(), "key", "private")
	res := drainOne(t, svc)

	require.Error(t, res.Err)
	assert.Equal(t, steam.TaskProfileAndGames, res.Type)
	assert.Equal(t, "private", res.SteamID)
}

func TestTaskService_SubmitProfileAndGamesSummaryFailureTolerated(t *testing.T) {
	client := &mocks.APIClientMock{
		GetOwnedGamesFunc: func(context.Context, string, string) (*domain.GamesPayload, error) {
			return &domain.GamesPayload{Count: 1, AllGames: []domain.Game{{AppID: 10}}}, nil
		},
		GetPlayerSummariesFunc: func(context.Context, string, []string) ([]domain.PlayerSummary, error) {
			return nil, errors.New("profile private")
		},
	}
	svc := steam.NewTaskService(client, "CN", 8)

	svc.SubmitProfileAndGames(context.Background(), "key", "alt")
	res := drainOne(t, svc)

	require.NoError(t, res.Err, "games alone are a usable result")
	payload := res.Data.(*steam.ProfileAndGames)
	assert.NotNil(t, payload.Games)
	assert.Nil(t, payload.Summary)
}

func TestTaskService_SubmitStorePrices(t *testing.T) {
	client := &mocks.APIClientMock{
		GetAppPricesFunc: func(_ context.Context, appIDs []int, country string) (map[string]domain.PriceEntry, error) {
			assert.Equal(t, "CN", country)
			require.Equal(t, []int{10, 20}, appIDs)
			return map[string]domain.PriceEntry{"10": {Success: true}, "20": {Success: false}}, nil
		},
	}
	svc := steam.NewTaskService(client, "CN", 8)

	svc.SubmitStorePrices(context.Background(), []int{10, 20})
	res := drainOne(t, svc)

	require.NoError(t, res.Err)
	prices := res.Data.(map[string]domain.PriceEntry)
	assert.Len(t, prices, 2)
}

func TestTaskService_SubmitStorePricesEmptyAnswer(t *testing.T) {
	client := &mocks.APIClientMock{
		GetAppPricesFunc: func(context.Context, []int, string) (map[string]domain.PriceEntry, error) {
			return map[string]domain.PriceEntry{}, nil
		},
	}
	svc := steam.NewTaskService(client, "CN", 8)

	svc.SubmitStorePrices(context.Background(), []int{10})
	res := drainOne(t, svc)

	require.NoError(t, res.Err)
	assert.Nil(t, res.Data, "empty delta carries no payload")
}

func TestTaskService_SubmitAchievementsSkipsFailures(t *testing.T) {
	client := &mocks.APIClientMock{
		GetPlayerAchievementsFunc: func(_ context.Context, _, _ string, appID int) (*domain.AchievementStat, error) {
			switch appID {
			case 10:
				return &domain.AchievementStat{Total: 30, Unlocked: 12}, nil
			case 20:
				return nil, errors.New("stats private")
			default:
				return nil, nil // app without achievements
			}
		},
	}
	svc := steam.NewTaskService(client, "CN", 8)

	svc.SubmitAchievements(context.Background(), "key", "main", []int{10, 20, 30})
	res := drainOne(t, svc)

	require.NoError(t, res.Err)
	stats := res.Data.(map[string]domain.AchievementStat)
	require.Len(t, stats, 1, "failed and empty apps are skipped")
	assert.Equal(t, 12, stats["10"].Unlocked)
}

func TestTaskService_SubmitWishlist(t *testing.T) {
	client := &mocks.APIClientMock{
		GetWishlistFunc: func(context.Context, string, string, string) ([]domain.WishlistItem, error) {
			return []domain.WishlistItem{{AppID: 10, DiscountPercent: 50}}, nil
		},
	}
	svc := steam.NewTaskService(client, "CN", 8)

	svc.SubmitWishlist(context.Background(), "key", "main")
	res := drainOne(t, svc)

	require.NoError(t, res.Err)
	items := res.Data.([]domain.WishlistItem)
	require.Len(t, items, 1)
}

func TestTaskService_OneResultPerTask(t *testing.T) {
	client := &mocks.APIClientMock{
		GetPlayerSummariesFunc: func(context.Context, string, []string) ([]domain.PlayerSummary, error) {
			return []domain.PlayerSummary{{SteamID: "x"}}, nil
		},
		GetSteamLevelFunc: func(context.Context, string, string) (int, error) { return 0, nil },
		GetWishlistFunc: func(context.Context, string, string, string) ([]domain.WishlistItem, error) {
			return nil, errors.New("down")
		},
	}
	svc := steam.NewTaskService(client, "CN", 8)

	svc.SubmitSummary(context.Background(), "key", "main")
	svc.SubmitWishlist(context.Background(), "key", "main")
	svc.Wait()

	var got []steam.TaskResult
	for i := 0; i < 2; i++ {
		got = append(got, <-svc.Results())
	}
	assert.Len(t, got, 2)
	select {
	case res := <-svc.Results():
		t.Fatalf("unexpected extra result: %+v", res)
	default:
	}
}
