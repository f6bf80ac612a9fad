package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/wonny/premia/internal/options"
	"github.com/wonny/premia/pkg/config"
	"github.com/wonny/premia/pkg/logger"
)

// OptionsHandler handles the options screening API endpoint
type OptionsHandler struct {
	selector *options.Selector
	defaults config.ScreenerConfig
	logger   *logger.Logger
}

// NewOptionsHandler creates a new options handler
func NewOptionsHandler(selector *options.Selector, defaults config.ScreenerConfig, log *logger.Logger) *OptionsHandler {
	return &OptionsHandler{
		selector: selector,
		defaults: defaults,
		logger:   log,
	}
}

// GetOptions returns ranked option contracts for a symbol
// GET /api/options?symbol=SPY&delta_calls=0.18&delta_puts=0.18&filter=both
func (h *OptionsHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	symbol := query.Get("symbol")
	if symbol == "" {
		symbol = h.defaults.DefaultSymbol
	}

	maxDeltaCalls, err := parseFloatParam(query.Get("delta_calls"), h.defaults.DefaultMaxDeltaCalls)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid 'delta_calls' parameter (expected a number)")
		return
	}

	maxDeltaPuts, err := parseFloatParam(query.Get("delta_puts"), h.defaults.DefaultMaxDeltaPuts)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid 'delta_puts' parameter (expected a number)")
		return
	}

	filterType := options.FilterBoth
	if raw := query.Get("filter"); raw != "" {
		filterType, err = options.ParseFilterType(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	params := options.Params{
		MaxDeltaCalls: maxDeltaCalls,
		MaxDeltaPuts:  maxDeltaPuts,
		FilterType:    filterType,
	}
	if err := params.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.selector.Select(ctx, symbol, params)
	if err != nil {
		h.respondFailure(w, symbol, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// respondFailure maps a selection failure to an HTTP status and JSON body.
// The failure message is returned verbatim so clients see the same wording
// regardless of transport.
func (h *OptionsHandler) respondFailure(w http.ResponseWriter, symbol string, err error) {
	failure, ok := options.AsFailure(err)
	if !ok {
		h.logger.WithError(err).WithField("symbol", symbol).Error("Selection failed")
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	status := http.StatusInternalServerError
	switch failure.Code {
	case options.FailureProviderUnavailable:
		status = http.StatusBadGateway
	case options.FailureNoPriceData, options.FailureNoOptionsListed:
		status = http.StatusNotFound
	case options.FailureNoMatchingContracts:
		status = http.StatusNotFound
	}

	h.logger.WithFields(map[string]interface{}{
		"symbol": symbol,
		"code":   failure.Code,
	}).Warn("Selection request failed")

	respondJSON(w, status, map[string]string{
		"error": failure.Message,
		"code":  string(failure.Code),
	})
}

// parseFloatParam parses an optional float query parameter
func parseFloatParam(raw string, fallback float64) (float64, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
