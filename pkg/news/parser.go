package news

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/glowpaw/steampet/pkg/domain"
)

// Parser fetches and parses one RSS/Atom feed into normalized news items
type Parser struct {
	client      *http.Client
	userAgent   string
	maxBodySize int64
	sanitizer   *bluemonday.Policy
}

// NewParser creates a feed parser with the given fetch limits
func NewParser(timeout time.Duration, userAgent string, maxBodySize int64) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent:   userAgent,
		maxBodySize: maxBodySize,
		sanitizer:   bluemonday.StrictPolicy(),
	}
}

// Fetch retrieves the feed at feedURL and returns its items tagged with
// the source name. Summaries are stripped of markup.
func (p *Parser) Fetch(ctx context.Context, feedURL, source string) ([]domain.NewsItem, error) {
	body, err := p.fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(io.LimitReader(body, p.maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := make([]domain.NewsItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		news := domain.NewsItem{
			Title:   strings.TrimSpace(item.Title),
			URL:     item.Link,
			Summary: p.cleanSummary(item.Description),
			Source:  source,
		}
		if news.Summary == "" {
			news.Summary = p.cleanSummary(item.Content)
		}

		if item.PublishedParsed != nil {
			news.PublishedAt = item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			news.PublishedAt = item.UpdatedParsed
		}

		items = append(items, news)
	}
	return items, nil
}

// cleanSummary strips markup and collapses whitespace
func (p *Parser) cleanSummary(s string) string {
	return strings.Join(strings.Fields(p.sanitizer.Sanitize(s)), " ")
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	addBrowserHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
