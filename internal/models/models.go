package models

import (
	"time"
)

// TravelDeal represents a structured travel offer extracted from a feed entry title.
// Instances are built only by the title parser and never mutated afterwards.
type TravelDeal struct {
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Price       *float64 `json:"price,omitempty"`
	Currency    string   `json:"currency,omitempty"`
	Departure   string   `json:"departure,omitempty"`
	Destination string   `json:"destination,omitempty"`
}

// UserPreferences holds the per-request filter criteria. Supplied by the
// client on every request, never persisted.
type UserPreferences struct {
	DepartureAirports   []string `json:"departure_airports"`
	DestinationKeywords []string `json:"destination_keywords"`
	MaxPrice            *float64 `json:"max_price,omitempty"`
	Currency            string   `json:"currency,omitempty"`
}

// FeedEntry is a single raw item yielded by the feed fetcher, before any
// deal extraction has happened.
type FeedEntry struct {
	Title string
	Link  string
}

// Source identifies one external feed tracked with its own cache entry.
type Source struct {
	ID      string
	FeedURL string
}

// Sources is the fixed set of feeds the aggregator consults, in merge order.
var Sources = []Source{
	{ID: "secret_flying", FeedURL: "https://www.secretflying.com/feed/"},
	{ID: "the_flight_deal", FeedURL: "https://feeds.feedburner.com/theflightdeal"},
}

// LogSeverity represents the severity level of a log entry
type LogSeverity string

const (
	LogSeverityLow    LogSeverity = "low"
	LogSeverityMedium LogSeverity = "medium"
	LogSeverityHigh   LogSeverity = "high"
)

// ProcessType represents the type of process that created the log
type ProcessType string

const (
	ProcessTypeRequest  ProcessType = "request"
	ProcessTypeInternal ProcessType = "internal"
)

// LogEvent represents a process-specific logging context
type LogEvent struct {
	ProcessID   string      `json:"process_id"`
	ProcessType ProcessType `json:"process_type"`
	StartTime   time.Time   `json:"start_time"`
	ClientIP    string      `json:"client_ip,omitempty"`
}

// LogEntry represents a structured log entry for database storage
type LogEntry struct {
	ID          string                 `json:"id"`
	Timestamp   time.Time              `json:"timestamp"`
	Severity    LogSeverity            `json:"severity,omitempty"`
	Message     string                 `json:"message"`
	Operation   string                 `json:"operation"`
	TargetName  string                 `json:"target_name,omitempty"`
	ProcessID   string                 `json:"process_id"`
	ProcessType ProcessType            `json:"process_type"`
	ClientIP    string                 `json:"client_ip,omitempty"`
	Error       string                 `json:"error,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}
