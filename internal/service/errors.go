package service

import "errors"

// Error kinds surfaced to clients. Callers match them with errors.Is.
var (
	ErrInvalidInput        = errors.New("city is required")
	ErrLocationNotFound    = errors.New("city not found")
	ErrUpstreamUnavailable = errors.New("unable to fetch weather data from OpenWeather")
)

// Outcome names the result of a forecast lookup for the query log.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrLocationNotFound):
		return "location_not_found"
	case errors.Is(err, ErrUpstreamUnavailable):
		return "upstream_unavailable"
	default:
		return "error"
	}
}
