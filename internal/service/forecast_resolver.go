package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"ulascansenturk/forecast-service/internal/providers"
)

const (
	maxDailyEntries = 7
	// The interval forecast has one entry every 3 hours, so 8 entries span a day.
	entriesPerDay = 8

	dailyDateLayout = "Monday, 02 January"
)

type ForecastSource string

const (
	SourceOneCall  ForecastSource = "onecall"
	SourceForecast ForecastSource = "forecast"
)

type ForecastDay struct {
	Date        string `json:"date"`
	Temp        int    `json:"temp"`
	TempMin     int    `json:"temp_min"`
	TempMax     int    `json:"temp_max"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type ForecastResult struct {
	City     string         `json:"city"`
	Forecast []ForecastDay  `json:"forecast"`
	Source   ForecastSource `json:"-"`
}

type ForecastResolver interface {
	Resolve(ctx context.Context, city string) (ForecastResult, error)
}

type forecastResolver struct {
	geocoder providers.Geocoder
	primary  providers.DailyForecaster
	fallback providers.IntervalForecaster
}

func NewForecastResolver(
	geocoder providers.Geocoder,
	primary providers.DailyForecaster,
	fallback providers.IntervalForecaster,
) ForecastResolver {
	return &forecastResolver{
		geocoder: geocoder,
		primary:  primary,
		fallback: fallback,
	}
}

func (r *forecastResolver) Resolve(ctx context.Context, city string) (ForecastResult, error) {
	if strings.TrimSpace(city) == "" {
		return ForecastResult{}, ErrInvalidInput
	}

	logger := zerolog.Ctx(ctx).With().Str("city", city).Logger()

	candidates, err := r.geocoder.Geocode(ctx, city, 1)
	if err != nil {
		return ForecastResult{}, fmt.Errorf("%w: geocoding: %v", ErrUpstreamUnavailable, err)
	}
	if len(candidates) == 0 || candidates[0].Lat == nil || candidates[0].Lon == nil {
		return ForecastResult{}, ErrLocationNotFound
	}
	lat, lon := *candidates[0].Lat, *candidates[0].Lon

	daily, err := r.primary.GetDailyForecast(ctx, lat, lon)
	if err == nil && daily != nil && len(daily.Daily) > 0 {
		return ForecastResult{
			City:     titleCase(city),
			Forecast: normalizeDaily(daily.Daily),
			Source:   SourceOneCall,
		}, nil
	}

	event := logger.Warn().Float64("lat", lat).Float64("lon", lon)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg("daily forecast unavailable, falling back to 5 day / 3 hour forecast")

	intervals, err := r.fallback.GetIntervalForecast(ctx, city)
	if err != nil {
		return ForecastResult{}, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if intervals == nil || len(intervals.List) == 0 {
		return ForecastResult{}, fmt.Errorf("%w: forecast response has no list entries", ErrUpstreamUnavailable)
	}

	return ForecastResult{
		City:     intervals.City.Name,
		Forecast: normalizeIntervals(intervals.List),
		Source:   SourceForecast,
	}, nil
}

func normalizeDaily(entries []providers.DailyEntry) []ForecastDay {
	if len(entries) > maxDailyEntries {
		entries = entries[:maxDailyEntries]
	}

	days := make([]ForecastDay, 0, len(entries))
	for _, entry := range entries {
		description, icon := firstCondition(entry.Weather)
		days = append(days, ForecastDay{
			Date:        time.Unix(entry.Dt, 0).UTC().Format(dailyDateLayout),
			Temp:        roundTemp(entry.Temp.Day),
			TempMin:     roundTemp(entry.Temp.Min),
			TempMax:     roundTemp(entry.Temp.Max),
			Description: description,
			Icon:        icon,
		})
	}

	return days
}

// normalizeIntervals samples one reading per day instead of aggregating the day's min/max.
func normalizeIntervals(entries []providers.IntervalEntry) []ForecastDay {
	days := make([]ForecastDay, 0, (len(entries)+entriesPerDay-1)/entriesPerDay)
	for i := 0; i < len(entries); i += entriesPerDay {
		entry := entries[i]
		description, icon := firstCondition(entry.Weather)
		days = append(days, ForecastDay{
			Date:        entry.DtTxt,
			Temp:        roundTemp(entry.Main.Temp),
			TempMin:     roundTemp(entry.Main.TempMin),
			TempMax:     roundTemp(entry.Main.TempMax),
			Description: description,
			Icon:        icon,
		})
	}

	return days
}

func firstCondition(conditions []providers.Condition) (string, string) {
	if len(conditions) == 0 {
		return "", ""
	}
	return titleCase(conditions[0].Description), conditions[0].Icon
}

// roundTemp rounds half to even.
func roundTemp(v float64) int {
	return int(math.RoundToEven(v))
}

// Casers are stateful, so each call gets its own.
func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
