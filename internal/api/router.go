package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"ulascansenturk/forecast-service/internal/api/v1/handlers"
	"ulascansenturk/forecast-service/internal/service"
	"ulascansenturk/forecast-service/internal/web"
)

type RouterConfig struct {
	HandlerTimeout time.Duration
	AllowedOrigins []string
}

// NewRouter wires the HTTP handlers with their dependencies and returns an http.Handler.
func NewRouter(forecastService service.ForecastService, conf RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(accessLog)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: conf.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	weatherHandler := handlers.NewWeatherHandler(forecastService, conf.HandlerTimeout)

	r.Get("/", web.IndexHandler())
	r.Handle("/static/*", web.AssetsHandler("/static/"))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/api/weather", weatherHandler.GetWeather)

	return r
}
