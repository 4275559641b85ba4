package parser

import "travel_deal_sniper/internal/models"

// Service defines the interface for extracting deals from feed entry titles
// External packages should use this interface, not the concrete implementations
type Service interface {
	Parse(title, link string) (*models.TravelDeal, bool)
}
