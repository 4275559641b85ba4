package dealFinder

import (
	"testing"

	"travel_deal_sniper/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestFilter_DepartureExactMatch(t *testing.T) {
	prefs := models.UserPreferences{
		DepartureAirports:   []string{"JFK"},
		DestinationKeywords: []string{"Paris"},
	}

	deals := []models.TravelDeal{
		{Title: "a", Departure: "JFK", Destination: "Paris"},
		{Title: "b", Departure: "LAX", Destination: "Paris"},
	}

	result := Filter(deals, prefs)

	require.Len(t, result, 1)
	assert.Equal(t, "JFK", result[0].Departure)
}

func TestFilter_DepartureCaseSensitive(t *testing.T) {
	prefs := models.UserPreferences{
		DepartureAirports:   []string{"JFK"},
		DestinationKeywords: []string{"Paris"},
	}

	deals := []models.TravelDeal{
		{Title: "a", Departure: "jfk", Destination: "Paris"},
	}

	assert.Empty(t, Filter(deals, prefs))
}

func TestFilter_MissingDepartureIncluded(t *testing.T) {
	prefs := models.UserPreferences{
		DepartureAirports:   []string{"JFK"},
		DestinationKeywords: []string{"Paris"},
	}

	deals := []models.TravelDeal{
		{Title: "a", Destination: "Paris"},
	}

	// A deal with no departure always passes the departure predicate.
	result := Filter(deals, prefs)
	require.Len(t, result, 1)
}

func TestFilter_DestinationKeywordSubstringCaseInsensitive(t *testing.T) {
	prefs := models.UserPreferences{
		DestinationKeywords: []string{"Paris"},
	}

	deals := []models.TravelDeal{
		{Title: "a", Destination: "Paris, France"},
		{Title: "b", Destination: "London"},
		{Title: "c", Destination: "paris"},
	}

	result := Filter(deals, prefs)

	require.Len(t, result, 2)
	assert.Equal(t, "Paris, France", result[0].Destination)
	assert.Equal(t, "paris", result[1].Destination)
}

func TestFilter_MissingDestinationIncluded(t *testing.T) {
	prefs := models.UserPreferences{
		DestinationKeywords: []string{"Paris"},
	}

	deals := []models.TravelDeal{
		{Title: "a"},
	}

	require.Len(t, Filter(deals, prefs), 1)
}

func TestFilter_DestinationWithNoKeywordsExcluded(t *testing.T) {
	// An empty keyword list matches nothing, so any deal that carries a
	// destination is excluded.
	prefs := models.UserPreferences{}

	deals := []models.TravelDeal{
		{Title: "a", Destination: "Paris"},
		{Title: "b"},
	}

	result := Filter(deals, prefs)

	require.Len(t, result, 1)
	assert.Equal(t, "b", result[0].Title)
}

func TestFilter_MaxPrice(t *testing.T) {
	prefs := models.UserPreferences{
		DestinationKeywords: []string{"Paris"},
		MaxPrice:            floatPtr(300),
	}

	deals := []models.TravelDeal{
		{Title: "cheap", Destination: "Paris", Price: floatPtr(250)},
		{Title: "exact", Destination: "Paris", Price: floatPtr(300)},
		{Title: "expensive", Destination: "Paris", Price: floatPtr(450)},
	}

	result := Filter(deals, prefs)

	require.Len(t, result, 2)
	assert.Equal(t, "cheap", result[0].Title)
	assert.Equal(t, "exact", result[1].Title)
}

func TestFilter_MissingPriceIncluded(t *testing.T) {
	prefs := models.UserPreferences{
		DestinationKeywords: []string{"Paris"},
		MaxPrice:            floatPtr(300),
	}

	deals := []models.TravelDeal{
		{Title: "a", Destination: "Paris"},
	}

	require.Len(t, Filter(deals, prefs), 1)
}

func TestFilter_NoMaxPriceIncludesEverything(t *testing.T) {
	prefs := models.UserPreferences{
		DestinationKeywords: []string{"Paris"},
	}

	deals := []models.TravelDeal{
		{Title: "a", Destination: "Paris", Price: floatPtr(9999)},
	}

	require.Len(t, Filter(deals, prefs), 1)
}

func TestFilter_PreservesInputOrder(t *testing.T) {
	prefs := models.UserPreferences{
		DestinationKeywords: []string{"o"},
	}

	deals := []models.TravelDeal{
		{Title: "1", Destination: "Oslo"},
		{Title: "2", Destination: "Porto"},
		{Title: "3", Destination: "Tokyo"},
	}

	result := Filter(deals, prefs)

	require.Len(t, result, 3)
	assert.Equal(t, "1", result[0].Title)
	assert.Equal(t, "2", result[1].Title)
	assert.Equal(t, "3", result[2].Title)
}

func TestFilter_AllPredicatesMustPass(t *testing.T) {
	prefs := models.UserPreferences{
		DepartureAirports:   []string{"JFK"},
		DestinationKeywords: []string{"Paris"},
		MaxPrice:            floatPtr(300),
	}

	deals := []models.TravelDeal{
		{Title: "right airport, wrong price", Departure: "JFK", Destination: "Paris", Price: floatPtr(500)},
		{Title: "right price, wrong airport", Departure: "LAX", Destination: "Paris", Price: floatPtr(200)},
		{Title: "all match", Departure: "JFK", Destination: "Paris, France", Price: floatPtr(299)},
	}

	result := Filter(deals, prefs)

	require.Len(t, result, 1)
	assert.Equal(t, "all match", result[0].Title)
}

func TestFilter_EmptyInput(t *testing.T) {
	result := Filter(nil, models.UserPreferences{DestinationKeywords: []string{"Paris"}})
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
