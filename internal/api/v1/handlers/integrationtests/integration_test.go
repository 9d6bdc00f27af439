package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgTestContainers "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ulascansenturk/forecast-service/internal/api"
	"ulascansenturk/forecast-service/internal/api/v1/handlers"
	"ulascansenturk/forecast-service/internal/db/forecastquery"
	"ulascansenturk/forecast-service/internal/providers"
	"ulascansenturk/forecast-service/internal/service"
)

const (
	dbName     = "test_api_database"
	dbUser     = "test_user"
	dbPassword = "test_password"
)

func init() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// fakeOpenWeather imitates the three OpenWeather endpoints and counts the calls each receives.
type fakeOpenWeather struct {
	server         *httptest.Server
	geocodeCalls   atomic.Int32
	oneCallCalls   atomic.Int32
	forecastCalls  atomic.Int32
	oneCallBlocked atomic.Bool
}

func newFakeOpenWeather() *fakeOpenWeather {
	f := &fakeOpenWeather{}

	mux := http.NewServeMux()
	mux.HandleFunc("/geo/1.0/direct", func(w http.ResponseWriter, r *http.Request) {
		f.geocodeCalls.Add(1)
		switch r.URL.Query().Get("q") {
		case "paris", "Atlantis":
			w.Write([]byte(`[{"name":"Paris","lat":48.85,"lon":2.35,"country":"FR"}]`))
		default:
			w.Write([]byte(`[]`))
		}
	})
	mux.HandleFunc("/data/3.0/onecall", func(w http.ResponseWriter, r *http.Request) {
		f.oneCallCalls.Add(1)
		if f.oneCallBlocked.Load() {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"cod":401,"message":"Please note that using One Call 3.0 requires a separate subscription"}`))
			return
		}

		daily := make([]string, 0, 8)
		for i := 0; i < 8; i++ {
			daily = append(daily, fmt.Sprintf(
				`{"dt":%d,"temp":{"day":20.4,"min":12.6,"max":22.5},"weather":[{"description":"light rain","icon":"10d"}]}`,
				1704067200+i*86400,
			))
		}
		w.Write([]byte(`{"lat":48.85,"lon":2.35,"daily":[` + strings.Join(daily, ",") + `]}`))
	})
	mux.HandleFunc("/data/2.5/forecast", func(w http.ResponseWriter, r *http.Request) {
		f.forecastCalls.Add(1)
		if r.URL.Query().Get("q") != "paris" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"cod":"404","message":"city not found"}`))
			return
		}

		entries := make([]string, 0, 40)
		for i := 0; i < 40; i++ {
			ts := time.Unix(1704067200+int64(i)*10800, 0).UTC()
			entries = append(entries, fmt.Sprintf(
				`{"dt":%d,"dt_txt":%q,"main":{"temp":%d.4,"temp_min":%d.1,"temp_max":%d.9},"weather":[{"description":"overcast clouds","icon":"04d"}]}`,
				ts.Unix(), ts.Format("2006-01-02 15:04:05"), i, i, i,
			))
		}
		w.Write([]byte(`{"cod":"200","cnt":40,"list":[` + strings.Join(entries, ",") + `],"city":{"name":"Paris","country":"FR"}}`))
	})

	f.server = httptest.NewServer(mux)
	return f
}

func (f *fakeOpenWeather) endpoints() providers.Endpoints {
	return providers.Endpoints{
		Geocoding: f.server.URL + "/geo/1.0/direct",
		OneCall:   f.server.URL + "/data/3.0/onecall",
		Forecast:  f.server.URL + "/data/2.5/forecast",
	}
}

func setupPostgres(t *testing.T) (*gorm.DB, func()) {
	testcontainers.SkipIfProviderIsNotHealthy(t)

	log.Info().Msg("Setting up new PostgreSQL container")

	ctx := context.Background()

	postgresContainer, err := pgTestContainers.Run(ctx,
		"postgres:16-alpine",
		pgTestContainers.WithDatabase(dbName),
		pgTestContainers.WithUsername(dbUser),
		pgTestContainers.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	dsn, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&forecastquery.ForecastQuery{}))

	return db, func() {
		log.Info().Msg("Terminating PostgreSQL container")
		if err := postgresContainer.Terminate(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to terminate PostgreSQL container")
		}
	}
}

func TestForecastService(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	upstream := newFakeOpenWeather()
	defer upstream.server.Close()

	weatherAPI := providers.NewOpenWeatherService("test_api_key", upstream.endpoints(), 5*time.Second)
	resolver := service.NewForecastResolver(weatherAPI, weatherAPI, weatherAPI)
	repository := forecastquery.NewRepository(db)
	router := api.NewRouter(service.NewForecastService(resolver, repository), api.RouterConfig{
		HandlerTimeout: 10 * time.Second,
		AllowedOrigins: []string{"*"},
	})

	get := func(target string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		return w
	}

	t.Run("PrimaryForecast", func(t *testing.T) {
		w := get("/api/weather?city=paris")
		require.Equal(t, http.StatusOK, w.Code)

		var response handlers.WeatherResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

		assert.Equal(t, "Paris", response.City)
		require.Len(t, response.Forecast, 7)
		assert.Equal(t, "Monday, 01 January", response.Forecast[0].Date)
		assert.Equal(t, 20, response.Forecast[0].Temp)
		assert.Equal(t, "Light Rain", response.Forecast[0].Description)
		assert.Equal(t, int32(0), upstream.forecastCalls.Load())

		query, err := repository.GetRecentForecastQuery(context.Background(), "paris")
		require.NoError(t, err)
		assert.Equal(t, "Paris", query.ResolvedCity)
		assert.Equal(t, "onecall", query.Source)
		assert.Equal(t, 7, query.DayCount)
		assert.Equal(t, "ok", query.Outcome)
	})

	t.Run("FallbackForecast", func(t *testing.T) {
		upstream.oneCallBlocked.Store(true)
		defer upstream.oneCallBlocked.Store(false)
		before := upstream.forecastCalls.Load()

		w := get("/api/weather?city=paris")
		require.Equal(t, http.StatusOK, w.Code)

		var response handlers.WeatherResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

		assert.Equal(t, "Paris", response.City)
		require.Len(t, response.Forecast, 5)
		for i, day := range response.Forecast {
			assert.Equal(t, i*8, day.Temp)
			assert.Equal(t, "Overcast Clouds", day.Description)
		}
		assert.Equal(t, "2024-01-02 00:00:00", response.Forecast[1].Date)
		assert.Equal(t, before+1, upstream.forecastCalls.Load())

		query, err := repository.GetRecentForecastQuery(context.Background(), "paris")
		require.NoError(t, err)
		assert.Equal(t, "forecast", query.Source)
		assert.Equal(t, 5, query.DayCount)
	})

	t.Run("FallbackUnavailable", func(t *testing.T) {
		upstream.oneCallBlocked.Store(true)
		defer upstream.oneCallBlocked.Store(false)

		w := get("/api/weather?city=Atlantis")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Unable to fetch weather data from OpenWeather."}`, w.Body.String())

		query, err := repository.GetRecentForecastQuery(context.Background(), "Atlantis")
		require.NoError(t, err)
		assert.Equal(t, "upstream_unavailable", query.Outcome)
	})

	t.Run("CityNotFound", func(t *testing.T) {
		w := get("/api/weather?city=Unknowntown123")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"City not found"}`, w.Body.String())

		query, err := repository.GetRecentForecastQuery(context.Background(), "Unknowntown123")
		require.NoError(t, err)
		assert.Equal(t, "location_not_found", query.Outcome)
		assert.Equal(t, 0, query.DayCount)
	})

	t.Run("MissingCity", func(t *testing.T) {
		geocodeCalls := upstream.geocodeCalls.Load()

		w := get("/api/weather")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"City is required"}`, w.Body.String())
		assert.Equal(t, geocodeCalls, upstream.geocodeCalls.Load())
	})
}
