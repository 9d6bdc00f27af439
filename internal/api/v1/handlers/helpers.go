package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"ulascansenturk/forecast-service/internal/service"
)

const (
	msgCityRequired     = "City is required"
	msgCityNotFound     = "City not found"
	msgUpstreamFailure  = "Unable to fetch weather data from OpenWeather."
	msgNotFound         = "not found"
	msgMethodNotAllowed = "method not allowed"
)

// statusFor maps a forecast error to the status and message returned to clients.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, msgCityRequired
	case errors.Is(err, service.ErrLocationNotFound):
		return http.StatusNotFound, msgCityNotFound
	default:
		return http.StatusInternalServerError, msgUpstreamFailure
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusNotFound, msgNotFound)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}
