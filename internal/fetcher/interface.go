package fetcher

import (
	"context"

	"travel_deal_sniper/internal/models"
)

// Service defines the interface for fetching raw feed entries
// External packages should use this interface, not the concrete implementations
type Service interface {
	Fetch(ctx context.Context, feedURL string) ([]models.FeedEntry, error)
}
