package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ulascansenturk/forecast-service/internal/obs"
)

const (
	ProviderGeocoding = "geocoding"
	ProviderOneCall   = "onecall"
	ProviderForecast  = "forecast"
)

// Geocoder resolves a free-text place name to candidate coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, city string, limit int) ([]GeoCandidate, error)
}

// DailyForecaster fetches daily aggregates for a coordinate pair.
type DailyForecaster interface {
	GetDailyForecast(ctx context.Context, lat, lon float64) (*OneCallResponse, error)
}

// IntervalForecaster fetches the 5 day / 3 hour forecast for a place name.
type IntervalForecaster interface {
	GetIntervalForecast(ctx context.Context, city string) (*IntervalForecastResponse, error)
}

type OpenWeatherService interface {
	Geocoder
	DailyForecaster
	IntervalForecaster
	GetHTTPClient() *http.Client
}

type Endpoints struct {
	Geocoding string
	OneCall   string
	Forecast  string
}

var DefaultEndpoints = Endpoints{
	Geocoding: "http://api.openweathermap.org/geo/1.0/direct",
	OneCall:   "https://api.openweathermap.org/data/3.0/onecall",
	Forecast:  "https://api.openweathermap.org/data/2.5/forecast",
}

type openWeatherService struct {
	apiKey    string
	endpoints Endpoints
	client    *http.Client
}

func NewOpenWeatherService(apiKey string, endpoints Endpoints, timeout time.Duration) OpenWeatherService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &openWeatherService{
		apiKey:    apiKey,
		endpoints: endpoints,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// StatusError is returned when a provider answers with a non-2xx status.
type StatusError struct {
	Provider string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status code %d: %s", e.Provider, e.Code, e.Body)
}

type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// GeoCandidate is one geocoding match. Lat and Lon are nil when the provider omits them.
type GeoCandidate struct {
	Name    string   `json:"name"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
	Country string   `json:"country"`
	State   string   `json:"state,omitempty"`
}

type DailyTemperature struct {
	Day   float64 `json:"day"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Night float64 `json:"night"`
	Eve   float64 `json:"eve"`
	Morn  float64 `json:"morn"`
}

type DailyEntry struct {
	Dt       int64            `json:"dt"`
	Temp     DailyTemperature `json:"temp"`
	Humidity int              `json:"humidity"`
	Weather  []Condition      `json:"weather"`
}

type OneCallResponse struct {
	Lat      float64      `json:"lat"`
	Lon      float64      `json:"lon"`
	Timezone string       `json:"timezone"`
	Daily    []DailyEntry `json:"daily"`
}

type IntervalMain struct {
	Temp     float64 `json:"temp"`
	TempMin  float64 `json:"temp_min"`
	TempMax  float64 `json:"temp_max"`
	Humidity int     `json:"humidity"`
}

type IntervalEntry struct {
	Dt      int64        `json:"dt"`
	Main    IntervalMain `json:"main"`
	Weather []Condition  `json:"weather"`
	DtTxt   string       `json:"dt_txt"`
}

type ForecastCity struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type IntervalForecastResponse struct {
	Cnt  int             `json:"cnt"`
	List []IntervalEntry `json:"list"`
	City ForecastCity    `json:"city"`
}

func (s *openWeatherService) Geocode(ctx context.Context, city string, limit int) (_ []GeoCandidate, err error) {
	defer obs.Time(ctx, "openweather.geocode")(&err)

	params := url.Values{}
	params.Set("q", city)
	params.Set("limit", strconv.Itoa(limit))

	var candidates []GeoCandidate
	if err := s.getJSON(ctx, ProviderGeocoding, s.endpoints.Geocoding, params, &candidates); err != nil {
		return nil, err
	}

	return candidates, nil
}

func (s *openWeatherService) GetDailyForecast(ctx context.Context, lat, lon float64) (_ *OneCallResponse, err error) {
	defer obs.Time(ctx, "openweather.onecall")(&err)

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("exclude", "minutely,hourly,alerts")
	params.Set("units", "metric")

	var resp OneCallResponse
	if err := s.getJSON(ctx, ProviderOneCall, s.endpoints.OneCall, params, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (s *openWeatherService) GetIntervalForecast(ctx context.Context, city string) (_ *IntervalForecastResponse, err error) {
	defer obs.Time(ctx, "openweather.forecast")(&err)

	params := url.Values{}
	params.Set("q", city)
	params.Set("units", "metric")

	var resp IntervalForecastResponse
	if err := s.getJSON(ctx, ProviderForecast, s.endpoints.Forecast, params, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (s *openWeatherService) GetHTTPClient() *http.Client {
	return s.client
}

func (s *openWeatherService) getJSON(ctx context.Context, provider, endpoint string, params url.Values, out interface{}) error {
	params.Set("appid", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", provider, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{
			Provider: provider,
			Code:     resp.StatusCode,
			Body:     strings.TrimSpace(string(b)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s returned malformed JSON: %w", provider, err)
	}

	return nil
}
