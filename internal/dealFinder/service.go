package dealFinder

import (
	"context"
	"fmt"
	"strings"

	"travel_deal_sniper/internal/cache/feedCache"
	"travel_deal_sniper/internal/logger"
	"travel_deal_sniper/internal/models"
)

// Service implements the DealService interface
type Service struct {
	feedCache feedCache.Service
	logger    logger.Service
	sources   []models.Source
}

// NewService creates a new deal finding service
func NewService(
	feedCache feedCache.Service,
	logger logger.Service,
	sources []models.Source,
) DealService {
	return &Service{
		feedCache: feedCache,
		logger:    logger,
		sources:   sources,
	}
}

// FindDeals aggregates every configured source and narrows the merged list
// to the deals matching the user's preferences. The returned slice is never
// nil on success.
func (s *Service) FindDeals(ctx context.Context, prefs models.UserPreferences) ([]models.TravelDeal, error) {
	allDeals := s.Aggregate(ctx)
	if len(allDeals) == 0 {
		s.logger.LogInfo(ctx, logger.OpFindDeals, "No deals fetched, returning empty list", nil)
		return []models.TravelDeal{}, nil
	}

	matching := Filter(allDeals, prefs)

	s.logger.LogSuccess(ctx, logger.OpFilterDeals, "", fmt.Sprintf("Filtered %d deals matching user preferences out of %d total", len(matching), len(allDeals)), map[string]interface{}{
		"total":    len(allDeals),
		"matching": len(matching),
	})

	return matching, nil
}

// Aggregate collects deals from every configured source in fixed order.
// A source whose refresh fails contributes nothing to this call; the failure
// is logged and the cached entry for that source is left as it was. Deals
// appearing in more than one feed are not deduplicated.
func (s *Service) Aggregate(ctx context.Context) []models.TravelDeal {
	var allDeals []models.TravelDeal

	for _, source := range s.sources {
		deals, err := s.feedCache.GetOrRefresh(ctx, source)
		if err != nil {
			s.logger.LogError(ctx, logger.OpFeedRefresh, source.ID, "Failed to refresh source", err, models.LogSeverityMedium, map[string]interface{}{
				"feed_url": source.FeedURL,
			})
			continue
		}
		allDeals = append(allDeals, deals...)
	}

	return allDeals
}

// Filter returns the deals matching the preferences, preserving input order.
// All three predicates must pass. A deal missing the field a predicate looks
// at passes that predicate; this permissiveness is intentional, so deals the
// parser could only partially describe are surfaced rather than hidden.
func Filter(deals []models.TravelDeal, prefs models.UserPreferences) []models.TravelDeal {
	filtered := make([]models.TravelDeal, 0, len(deals))

	for _, deal := range deals {
		if deal.Departure != "" && !containsString(prefs.DepartureAirports, deal.Departure) {
			continue
		}
		if deal.Destination != "" && !matchesAnyKeyword(deal.Destination, prefs.DestinationKeywords) {
			continue
		}
		if prefs.MaxPrice != nil && deal.Price != nil && *deal.Price > *prefs.MaxPrice {
			continue
		}
		filtered = append(filtered, deal)
	}

	return filtered
}

// containsString reports whether s is an exact, case-sensitive member of list
func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// matchesAnyKeyword reports whether any keyword occurs as a case-insensitive
// substring of destination. An empty keyword list matches nothing.
func matchesAnyKeyword(destination string, keywords []string) bool {
	lowered := strings.ToLower(destination)
	for _, kw := range keywords {
		if strings.Contains(lowered, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
