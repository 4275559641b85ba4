package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"travel_deal_sniper/internal/models"

	"github.com/mmcdole/gofeed"
)

const userAgent = "TravelDealSniper/1.0"

// RSSFetcher implements Service using the gofeed library
type RSSFetcher struct {
	client  *http.Client
	timeout time.Duration
}

// NewRSSFetcher creates a new RSS/Atom feed fetcher with a bounded timeout
func NewRSSFetcher(timeout time.Duration) Service {
	return newRSSFetcher(timeout)
}

// newRSSFetcher creates the concrete implementation
func newRSSFetcher(timeout time.Duration) *RSSFetcher {
	return &RSSFetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Fetch retrieves the feed at feedURL and returns its entries in feed order.
// Every failure mode (network, HTTP status, malformed XML) is wrapped around
// ErrFeedUnavailable so callers can treat the whole batch as failed.
func (f *RSSFetcher) Fetch(ctx context.Context, feedURL string) ([]models.FeedEntry, error) {
	if feedURL == "" {
		return nil, fmt.Errorf("%w: empty feed URL", models.ErrFeedUnavailable)
	}

	fp := gofeed.NewParser()
	fp.UserAgent = userAgent
	fp.Client = f.client

	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", models.ErrFetchTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", models.ErrFeedUnavailable, err)
	}

	entries := make([]models.FeedEntry, 0, len(feed.Items))
	for _, item := range feed.Items {
		entries = append(entries, models.FeedEntry{
			Title: item.Title,
			Link:  item.Link,
		})
	}

	return entries, nil
}
