package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"ulascansenturk/forecast-service/internal/service"
)

type WeatherHandler struct {
	forecastService service.ForecastService
	timeout         time.Duration
}

func NewWeatherHandler(forecastService service.ForecastService, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		forecastService: forecastService,
		timeout:         timeout,
	}
}

// GetWeather serves GET /api/weather?city=<name>.
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}

	city := r.URL.Query().Get("city")
	if city == "" {
		respondWithError(w, http.StatusBadRequest, msgCityRequired)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.forecastService.GetForecast(ctx, city)
	if err != nil {
		code, message := statusFor(err)
		event := zerolog.Ctx(ctx).Warn()
		if code == http.StatusInternalServerError {
			event = zerolog.Ctx(ctx).Error()
		}
		event.Err(err).Str("city", city).Int("status", code).Msg("failed to get forecast")

		respondWithError(w, code, message)
		return
	}

	respondWithJSON(w, http.StatusOK, WeatherResponse{
		City:     result.City,
		Forecast: result.Forecast,
	})
}
