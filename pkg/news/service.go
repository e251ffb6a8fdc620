package news

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/glowpaw/steampet/pkg/config"
	"github.com/glowpaw/steampet/pkg/domain"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/repository.go -pkg mocks -skip-ensure -fmt goimports . Repository

// Fetcher retrieves and parses one RSS/Atom feed
type Fetcher interface {
	Fetch(ctx context.Context, feedURL, source string) ([]domain.NewsItem, error)
}

// Repository persists the per-day news cache
type Repository interface {
	Load() domain.NewsCache
	Save(cache domain.NewsCache) error
}

// Service aggregates the configured feeds into one deduplicated day list.
// A fetch failure on one source degrades to the remaining sources, and a
// fully failed refresh falls back to the cached day.
type Service struct {
	feeds    []config.Feed
	maxItems int
	fetcher  Fetcher
	repo     Repository
	now      func() time.Time
}

// NewService creates a news service over the configured sources
func NewService(feeds []config.Feed, maxItems int, fetcher Fetcher, repo Repository) *Service {
	if maxItems <= 0 {
		maxItems = 30
	}
	return &Service{feeds: feeds, maxItems: maxItems, fetcher: fetcher, repo: repo, now: time.Now}
}

// Today returns the news list for the current day. Without forceRefresh a
// same-day cache is served as is; otherwise all sources are re-fetched.
// fromCache reports a same-day cache hit or a degradation to the cached
// day after a refresh that yielded nothing.
func (s *Service) Today(ctx context.Context, forceRefresh bool) (items []domain.NewsItem, fromCache bool, err error) {
	today := s.now().Format("2006-01-02")

	cache := s.repo.Load()
	if !forceRefresh && cache.Date == today && len(cache.Items) > 0 {
		return cache.Items, true, nil
	}

	items = s.fetchAll(ctx)
	if len(items) == 0 {
		if len(cache.Items) > 0 {
			log.Printf("[WARN] news refresh yielded nothing, serving cached day %s", cache.Date)
			return cache.Items, true, nil
		}
		return nil, false, nil
	}

	if err := s.repo.Save(domain.NewsCache{Date: today, Items: items}); err != nil {
		log.Printf("[WARN] save news cache: %v", err)
	}
	return items, false, nil
}

// fetchAll collects every configured source concurrently; failed sources
// are logged and skipped
func (s *Service) fetchAll(ctx context.Context) []domain.NewsItem {
	var mu sync.Mutex
	var collected []domain.NewsItem

	var g errgroup.Group
	for _, feed := range s.feeds {
		g.Go(func() error {
			items, err := s.fetcher.Fetch(ctx, feed.URL, feed.Name)
			if err != nil {
				log.Printf("[WARN] fetch %s: %v", feed.Name, err)
				return nil // other sources still count
			}
			log.Printf("[INFO] fetched %d items from %s", len(items), feed.Name)
			mu.Lock()
			collected = append(collected, items...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return s.normalize(collected)
}

// normalize deduplicates by URL, orders newest first with undated items
// last, and caps the list
func (s *Service) normalize(items []domain.NewsItem) []domain.NewsItem {
	seen := map[string]bool{}
	deduped := make([]domain.NewsItem, 0, len(items))
	for _, item := range items {
		if item.URL != "" && seen[item.URL] {
			continue
		}
		if item.URL != "" {
			seen[item.URL] = true
		}
		deduped = append(deduped, item)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		a, b := deduped[i].PublishedAt, deduped[j].PublishedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})

	if len(deduped) > s.maxItems {
		deduped = deduped[:s.maxItems]
	}
	return deduped
}
