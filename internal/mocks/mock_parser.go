package mocks

import (
	"travel_deal_sniper/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockParser is a mock implementation of parser.Service
type MockParser struct {
	mock.Mock
}

// Parse mocks the Parse method of parser.Service
func (m *MockParser) Parse(title, link string) (*models.TravelDeal, bool) {
	args := m.Called(title, link)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*models.TravelDeal), args.Bool(1)
}
