package mocks

import (
	"context"

	"travel_deal_sniper/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockFetcher is a mock implementation of fetcher.Service
type MockFetcher struct {
	mock.Mock
}

// Fetch mocks the Fetch method of fetcher.Service
func (m *MockFetcher) Fetch(ctx context.Context, feedURL string) ([]models.FeedEntry, error) {
	args := m.Called(ctx, feedURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FeedEntry), args.Error(1)
}
