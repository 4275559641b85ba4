package feedCache

import (
	"context"

	"travel_deal_sniper/internal/models"
)

// Service defines the interface for per-source deal caching.
// GetOrRefresh returns the cached deal list for a source while it is fresh,
// and otherwise runs one fetch+parse cycle and stores the result wholesale.
// A failed refresh returns the error and leaves the stored entry untouched;
// stale data is never served in that case.
type Service interface {
	GetOrRefresh(ctx context.Context, source models.Source) ([]models.TravelDeal, error)
}
