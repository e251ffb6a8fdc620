package epic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/glowpaw/steampet/pkg/config"
	"github.com/glowpaw/steampet/pkg/domain"
)

const defaultBaseURL = "https://store-site-backend-static-ipv4.ak.epicgames.com"

// Client fetches the Epic free-games promotions feed. The endpoint is
// unauthenticated and occasionally ships per-element errors inside an HTTP
// 200 answer; those elements are skipped, not fatal.
type Client struct {
	http    *http.Client
	baseURL string
	locale  string
	country string
}

// NewClient creates an Epic store client from config
func NewClient(cfg config.EpicConfig) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(base, "/"),
		locale:  cfg.Locale,
		country: cfg.Country,
	}
}

type promotionWindow struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Setting   struct {
		DiscountPercentage int `json:"discountPercentage"`
	} `json:"discountSetting"`
}

type storeElement struct {
	Title       string `json:"title"`
	ID          string `json:"id"`
	Namespace   string `json:"namespace"`
	Description string `json:"description"`
	ProductSlug string `json:"productSlug"`
	CatalogNs   struct {
		Mappings []struct {
			PageSlug string `json:"pageSlug"`
		} `json:"mappings"`
	} `json:"catalogNs"`
	KeyImages []struct {
		Type string `json:"type"`
		URL  string `json:"url"`
	} `json:"keyImages"`
	Price struct {
		TotalPrice struct {
			DiscountPrice int    `json:"discountPrice"`
			OriginalPrice int    `json:"originalPrice"`
			CurrencyCode  string `json:"currencyCode"`
		} `json:"totalPrice"`
	} `json:"price"`
	Promotions *struct {
		PromotionalOffers []struct {
			PromotionalOffers []promotionWindow `json:"promotionalOffers"`
		} `json:"promotionalOffers"`
		UpcomingPromotionalOffers []struct {
			PromotionalOffers []promotionWindow `json:"promotionalOffers"`
		} `json:"upcomingPromotionalOffers"`
	} `json:"promotions"`
}

// FreeGames returns the current and upcoming free offers. Current offers
// are those whose promotion window contains now with a full discount;
// upcoming offers are returned with IsUpcoming set.
func (c *Client) FreeGames(ctx context.Context) ([]domain.EpicOffer, error) {
	reqURL := fmt.Sprintf("%s/freeGamesPromotions?locale=%s&country=%s&allowCountries=%s",
		c.baseURL, url.QueryEscape(c.locale), url.QueryEscape(c.country), url.QueryEscape(c.country))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch free games: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var payload struct {
		Data struct {
			Catalog struct {
				SearchStore struct {
					Elements []storeElement `json:"elements"`
				} `json:"searchStore"`
			} `json:"Catalog"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode free games: %w", err)
	}

	now := time.Now()
	var offers []domain.EpicOffer
	for _, el := range payload.Data.Catalog.SearchStore.Elements {
		if el.Promotions == nil {
			continue
		}

		if win, ok := activeWindow(flatten(el.Promotions.PromotionalOffers), now); ok {
			offers = append(offers, toOffer(el, win, false))
			continue
		}
		if win, ok := nextWindow(flatten(el.Promotions.UpcomingPromotionalOffers), now); ok {
			offers = append(offers, toOffer(el, win, true))
		}
	}
	return offers, nil
}

func flatten(groups []struct {
	PromotionalOffers []promotionWindow `json:"promotionalOffers"`
}) []promotionWindow {
	var wins []promotionWindow
	for _, g := range groups {
		wins = append(wins, g.PromotionalOffers...)
	}
	return wins
}

// activeWindow picks the fully discounted window containing now
func activeWindow(wins []promotionWindow, now time.Time) (promotionWindow, bool) {
	for _, w := range wins {
		if w.Setting.DiscountPercentage != 0 {
			continue
		}
		if !now.Before(w.StartDate) && now.Before(w.EndDate) {
			return w, true
		}
	}
	return promotionWindow{}, false
}

// nextWindow picks the earliest future fully discounted window
func nextWindow(wins []promotionWindow, now time.Time) (promotionWindow, bool) {
	var best promotionWindow
	found := false
	for _, w := range wins {
		if w.Setting.DiscountPercentage != 0 || !w.StartDate.After(now) {
			continue
		}
		if !found || w.StartDate.Before(best.StartDate) {
			best = w
			found = true
		}
	}
	return best, found
}

func toOffer(el storeElement, win promotionWindow, upcoming bool) domain.EpicOffer {
	offer := domain.EpicOffer{
		Title:         el.Title,
		OfferID:       el.ID,
		Namespace:     el.Namespace,
		Description:   el.Description,
		URL:           storeURL(el),
		CurrencyCode:  el.Price.TotalPrice.CurrencyCode,
		OriginalPrice: el.Price.TotalPrice.OriginalPrice,
		DiscountPrice: el.Price.TotalPrice.DiscountPrice,
		IsUpcoming:    upcoming,
		Promotion: &domain.EpicPromotion{
			StartDate:          win.StartDate,
			EndDate:            win.EndDate,
			DiscountPercentage: win.Setting.DiscountPercentage,
		},
	}
	for _, img := range el.KeyImages {
		if img.Type == "OfferImageWide" || img.Type == "Thumbnail" {
			offer.ImageURL = img.URL
			break
		}
	}
	return offer
}

// storeURL builds the product page link, preferring the catalog page slug
func storeURL(el storeElement) string {
	slug := el.ProductSlug
	for _, m := range el.CatalogNs.Mappings {
		if m.PageSlug != "" {
			slug = m.PageSlug
			break
		}
	}
	if slug == "" {
		return ""
	}
	return "https://store.epicgames.com/p/" + strings.TrimSuffix(slug, "/home")
}
