package dealFinder

import (
	"context"

	"travel_deal_sniper/internal/models"
)

// DealService defines the interface for deal aggregation and filtering
// External packages should use this interface, not the concrete implementations
type DealService interface {
	FindDeals(ctx context.Context, prefs models.UserPreferences) ([]models.TravelDeal, error)
}
