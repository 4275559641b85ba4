package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travel_deal_sniper/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Flight Deals</title>
    <link>https://deals.example.com</link>
    <item>
      <title>New York to Paris $299 roundtrip</title>
      <link>https://deals.example.com/nyc-paris</link>
    </item>
    <item>
      <title>Weekly newsletter roundup</title>
      <link>https://deals.example.com/roundup</link>
    </item>
  </channel>
</rss>`

func TestRSSFetcher_Fetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	f := NewRSSFetcher(5 * time.Second)
	entries, err := f.Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "New York to Paris $299 roundtrip", entries[0].Title)
	assert.Equal(t, "https://deals.example.com/nyc-paris", entries[0].Link)
	assert.Equal(t, "Weekly newsletter roundup", entries[1].Title)
}

func TestRSSFetcher_Fetch_PreservesFeedOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	f := NewRSSFetcher(5 * time.Second)
	entries, err := f.Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "https://deals.example.com/nyc-paris", entries[0].Link)
	assert.Equal(t, "https://deals.example.com/roundup", entries[1].Link)
}

func TestRSSFetcher_Fetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	f := NewRSSFetcher(5 * time.Second)
	entries, err := f.Fetch(context.Background(), server.URL)

	assert.Error(t, err)
	assert.ErrorIs(t, err, models.ErrFeedUnavailable)
	assert.Nil(t, entries)
}

func TestRSSFetcher_Fetch_MalformedFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not a feed"))
	}))
	defer server.Close()

	f := NewRSSFetcher(5 * time.Second)
	entries, err := f.Fetch(context.Background(), server.URL)

	assert.Error(t, err)
	assert.ErrorIs(t, err, models.ErrFeedUnavailable)
	assert.Nil(t, entries)
}

func TestRSSFetcher_Fetch_EmptyURL(t *testing.T) {
	f := NewRSSFetcher(5 * time.Second)
	entries, err := f.Fetch(context.Background(), "")

	assert.Error(t, err)
	assert.ErrorIs(t, err, models.ErrFeedUnavailable)
	assert.Nil(t, entries)
}

func TestRSSFetcher_Fetch_EmptyFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<?xml version="1.0"?><rss version="2.0"><channel><title>Empty</title></channel></rss>`))
	}))
	defer server.Close()

	f := NewRSSFetcher(5 * time.Second)
	entries, err := f.Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Empty(t, entries)
}
