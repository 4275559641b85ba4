package mocks

import (
	"context"

	"travel_deal_sniper/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockFeedCache is a mock implementation of feedCache.Service
type MockFeedCache struct {
	mock.Mock
}

// GetOrRefresh mocks the GetOrRefresh method of feedCache.Service
func (m *MockFeedCache) GetOrRefresh(ctx context.Context, source models.Source) ([]models.TravelDeal, error) {
	args := m.Called(ctx, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TravelDeal), args.Error(1)
}
