package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/glowpaw/steampet/pkg/config"
	"github.com/glowpaw/steampet/pkg/domain"
)

// Client talks to the Steam WebAPI and the store API. All calls carry
// explicit timeouts; transient failures are retried with backoff and 4xx
// responses stop the retry immediately.
type Client struct {
	http      *http.Client
	storeHTTP *http.Client
	apiBase   string
	storeBase string
}

// NewClient creates a Steam API client from config
func NewClient(cfg config.SteamConfig) *Client {
	return &Client{
		http: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		storeHTTP: &http.Client{Timeout: cfg.StoreTimeout},
		apiBase:   strings.TrimRight(cfg.APIBase, "/"),
		storeBase: strings.TrimRight(cfg.StoreBase, "/"),
	}
}

// criticalError stops the repeater from retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

// getJSON fetches url and decodes the response into out, retrying on
// network errors and 5xx responses.
func (c *Client) getJSON(ctx context.Context, client *http.Client, reqURL string, out any) error {
	retrier := repeater.NewBackoff(3, 200*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return &criticalError{err: fmt.Errorf("create request: %w", err)}
		}
		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err) // retry
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("server error: %d", resp.StatusCode) // retry
		}
		if resp.StatusCode != http.StatusOK {
			return &criticalError{err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
		if err != nil {
			return fmt.Errorf("read response: %w", err)
		}
		if err := json.Unmarshal(body, out); err != nil {
			return &criticalError{err: fmt.Errorf("decode response: %w", err)}
		}
		return nil
	})
}

// GetPlayerSummaries returns profile summaries for up to 100 steam ids
func (c *Client) GetPlayerSummaries(ctx context.Context, apiKey string, steamIDs []string) ([]domain.PlayerSummary, error) {
	if len(steamIDs) == 0 {
		return nil, nil
	}
	reqURL := fmt.Sprintf("%s/ISteamUser/GetPlayerSummaries/v2/?key=%s&steamids=%s",
		c.apiBase, url.QueryEscape(apiKey), url.QueryEscape(strings.Join(steamIDs, ",")))

	var resp struct {
		Response struct {
			Players []domain.PlayerSummary `json:"players"`
		} `json:"response"`
	}
	if err := c.getJSON(ctx, c.http, reqURL, &resp); err != nil {
		return nil, fmt.Errorf("get player summaries: %w", err)
	}
	return resp.Response.Players, nil
}

// GetOwnedGames returns the canonical games payload for one account
func (c *Client) GetOwnedGames(ctx context.Context, apiKey, steamID string) (*domain.GamesPayload, error) {
	reqURL := fmt.Sprintf("%s/IPlayerService/GetOwnedGames/v1/?key=%s&steamid=%s&include_appinfo=1&include_played_free_games=1",
		c.apiBase, url.QueryEscape(apiKey), url.QueryEscape(steamID))

	var resp struct {
		Response struct {
			GameCount int           `json:"game_count"`
			Games     []domain.Game `json:"games"`
		} `json:"response"`
	}
	if err := c.getJSON(ctx, c.http, reqURL, &resp); err != nil {
		return nil, fmt.Errorf("get owned games: %w", err)
	}
	if len(resp.Response.Games) == 0 {
		return nil, nil // private or empty library
	}
	return domain.BuildGamesPayload(resp.Response.Games), nil
}

// GetSteamLevel returns the account's Steam level
func (c *Client) GetSteamLevel(ctx context.Context, apiKey, steamID string) (int, error) {
	reqURL := fmt.Sprintf("%s/IPlayerService/GetSteamLevel/v1/?key=%s&steamid=%s",
		c.apiBase, url.QueryEscape(apiKey), url.QueryEscape(steamID))

	var resp struct {
		Response struct {
			PlayerLevel int `json:"player_level"`
		} `json:"response"`
	}
	if err := c.getJSON(ctx, c.http, reqURL, &resp); err != nil {
		return 0, fmt.Errorf("get steam level: %w", err)
	}
	return resp.Response.PlayerLevel, nil
}

// GetAppPrices returns raw store price wrappers keyed by appid. The store
// may answer HTTP 200 with success:false per appid; the wrapper is kept
// as-is and read as "no price known".
func (c *Client) GetAppPrices(ctx context.Context, appIDs []int, countryCode string) (map[string]domain.PriceEntry, error) {
	if len(appIDs) == 0 {
		return map[string]domain.PriceEntry{}, nil
	}
	ids := make([]string, len(appIDs))
	for i, id := range appIDs {
		ids[i] = strconv.Itoa(id)
	}
	reqURL := fmt.Sprintf("%s/api/appdetails?appids=%s&filters=price_overview&cc=%s",
		c.storeBase, strings.Join(ids, ","), url.QueryEscape(countryCode))

	prices := map[string]domain.PriceEntry{}
	if err := c.getJSON(ctx, c.storeHTTP, reqURL, &prices); err != nil {
		return nil, fmt.Errorf("get app prices: %w", err)
	}
	return prices, nil
}

// GetPlayerAchievements returns achievement progress for one app
func (c *Client) GetPlayerAchievements(ctx context.Context, apiKey, steamID string, appID int) (*domain.AchievementStat, error) {
	reqURL := fmt.Sprintf("%s/ISteamUserStats/GetPlayerAchievements/v1/?key=%s&steamid=%s&appid=%d",
		c.apiBase, url.QueryEscape(apiKey), url.QueryEscape(steamID), appID)

	var resp struct {
		PlayerStats struct {
			Success      bool `json:"success"`
			Achievements []struct {
				Achieved int `json:"achieved"`
			} `json:"achievements"`
		} `json:"playerstats"`
	}
	if err := c.getJSON(ctx, c.http, reqURL, &resp); err != nil {
		return nil, fmt.Errorf("get player achievements: %w", err)
	}
	if !resp.PlayerStats.Success {
		return nil, nil // app has no achievements or stats are private
	}

	stat := &domain.AchievementStat{Total: len(resp.PlayerStats.Achievements)}
	for _, a := range resp.PlayerStats.Achievements {
		if a.Achieved == 1 {
			stat.Unlocked++
		}
	}
	return stat, nil
}

// getAppName reads the store rendering name for one app. The price filter
// strips names from the batched details call, so names need their own
// per-app basic lookup.
func (c *Client) getAppName(ctx context.Context, appID int, countryCode string) (string, error) {
	reqURL := fmt.Sprintf("%s/api/appdetails?appids=%d&filters=basic&cc=%s",
		c.storeBase, appID, url.QueryEscape(countryCode))

	resp := map[string]struct {
		Success bool `json:"success"`
		Data    *struct {
			Name string `json:"name"`
		} `json:"data"`
	}{}
	if err := c.getJSON(ctx, c.storeHTTP, reqURL, &resp); err != nil {
		return "", fmt.Errorf("get app name: %w", err)
	}
	entry, ok := resp[strconv.Itoa(appID)]
	if !ok || !entry.Success || entry.Data == nil {
		return "", nil
	}
	return entry.Data.Name, nil
}

// GetWishlist returns discounted wishlist entries in wishlist order. The
// wishlist service yields appids only, so prices come from a follow-up
// store query and names from per-app basic lookups; items without an
// active discount are dropped.
func (c *Client) GetWishlist(ctx context.Context, apiKey, steamID, countryCode string) ([]domain.WishlistItem, error) {
	reqURL := fmt.Sprintf("%s/IWishlistService/GetWishlist/v1/?key=%s&steamid=%s",
		c.apiBase, url.QueryEscape(apiKey), url.QueryEscape(steamID))

	var resp struct {
		Response struct {
			Items []struct {
				AppID int `json:"appid"`
			} `json:"items"`
		} `json:"response"`
	}
	if err := c.getJSON(ctx, c.http, reqURL, &resp); err != nil {
		return nil, fmt.Errorf("get wishlist: %w", err)
	}
	if len(resp.Response.Items) == 0 {
		return nil, nil
	}

	appIDs := make([]int, 0, len(resp.Response.Items))
	for _, item := range resp.Response.Items {
		appIDs = append(appIDs, item.AppID)
	}
	// store batch endpoint caps out around 100 ids
	if len(appIDs) > 100 {
		appIDs = appIDs[:100]
	}

	prices, err := c.GetAppPrices(ctx, appIDs, countryCode)
	if err != nil {
		return nil, fmt.Errorf("get wishlist prices: %w", err)
	}

	items := make([]domain.WishlistItem, 0, len(appIDs))
	for _, appID := range appIDs {
		entry, ok := prices[strconv.Itoa(appID)]
		if !ok || !entry.Success || entry.Data == nil || entry.Data.PriceOverview == nil {
			continue
		}
		po := entry.Data.PriceOverview
		if po.DiscountPercent <= 0 {
			continue
		}
		name, nameErr := c.getAppName(ctx, appID, countryCode)
		if nameErr != nil {
			log.Printf("[WARN] wishlist name lookup failed for app %d: %v", appID, nameErr)
		}
		items = append(items, domain.WishlistItem{
			AppID:           appID,
			Name:            name,
			DiscountPercent: po.DiscountPercent,
			OriginalPrice:   po.Initial,
			FinalPrice:      po.Final,
			Currency:        po.Currency,
		})
	}
	return items, nil
}
