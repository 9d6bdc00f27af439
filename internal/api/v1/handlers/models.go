package handlers

import "ulascansenturk/forecast-service/internal/service"

type WeatherResponse struct {
	City     string                `json:"city"`
	Forecast []service.ForecastDay `json:"forecast"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
