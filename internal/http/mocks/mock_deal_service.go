package mocks

import (
	"context"

	"travel_deal_sniper/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockDealService is a mock implementation of dealFinder.DealService
type MockDealService struct {
	mock.Mock
}

// FindDeals mocks the FindDeals method of dealFinder.DealService
func (m *MockDealService) FindDeals(ctx context.Context, prefs models.UserPreferences) ([]models.TravelDeal, error) {
	args := m.Called(ctx, prefs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TravelDeal), args.Error(1)
}
