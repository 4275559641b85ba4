package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"travel_deal_sniper/internal/dealFinder"
	"travel_deal_sniper/internal/logger"
	"travel_deal_sniper/internal/models"
)

// Handler contains the HTTP handlers for the API
type Handler struct {
	dealService dealFinder.DealService
	logger      logger.Service
}

// NewHandler creates a new HTTP handler
func NewHandler(
	dealService dealFinder.DealService,
	logger logger.Service,
) *Handler {
	return &Handler{
		dealService: dealService,
		logger:      logger,
	}
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse represents a health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// writeJSONResponse writes a JSON response with standard headers including X-Request-ID
func (h *Handler) writeJSONResponse(w http.ResponseWriter, r *http.Request, statusCode int, data interface{}) error {
	logEvent := logger.GetLogEvent(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-ID", logEvent.ProcessID)
	w.WriteHeader(statusCode)

	return json.NewEncoder(w).Encode(data)
}

// FindDeals handles POST /find-deals
func (h *Handler) FindDeals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var prefs models.UserPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		h.logger.LogError(ctx, logger.OpFindDeals, "", "Invalid request body", err, models.LogSeverityLow, nil)
		h.writeErrorResponse(w, r, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if prefs.Currency == "" {
		prefs.Currency = "USD"
	}

	h.logger.LogInfo(ctx, logger.OpFindDeals, "Received find-deals request", map[string]interface{}{
		"departure_airports":   prefs.DepartureAirports,
		"destination_keywords": prefs.DestinationKeywords,
		"max_price":            prefs.MaxPrice,
		"currency":             prefs.Currency,
	})

	deals, err := h.dealService.FindDeals(ctx, prefs)
	if err != nil {
		// The specific failure is logged, never leaked to the client.
		h.logger.LogError(ctx, logger.OpFindDeals, "", "Unexpected error while finding deals", err, models.LogSeverityHigh, nil)
		h.writeErrorResponse(w, r, http.StatusInternalServerError, "internal server error", "Internal server error while finding deals")
		return
	}

	if err := h.writeJSONResponse(w, r, http.StatusOK, deals); err != nil {
		h.logger.LogError(ctx, logger.OpFindDeals, "", "Failed to encode response", err, models.LogSeverityLow, nil)
		return
	}

	h.logger.LogSuccess(ctx, logger.OpFindDeals, "", fmt.Sprintf("Returning %d matching deals", len(deals)), map[string]interface{}{
		"matching": len(deals),
	})
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   "1.0.0",
	}

	if err := h.writeJSONResponse(w, r, http.StatusOK, response); err != nil {
		h.logger.LogError(ctx, logger.OpHealthCheck, "", "Failed to encode health response", err, models.LogSeverityLow, nil)
		return
	}

	h.logger.LogInfo(ctx, logger.OpHealthCheck, "Health check performed successfully", nil)
}

// writeErrorResponse writes a standardized error response
func (h *Handler) writeErrorResponse(w http.ResponseWriter, r *http.Request, statusCode int, error, message string) {
	response := ErrorResponse{
		Error:     error,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}

	if err := h.writeJSONResponse(w, r, statusCode, response); err != nil {
		h.logger.LogError(r.Context(), "response_encoding", "", "Failed to encode error response", err, models.LogSeverityLow, nil)
	}
}
