package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"ulascansenturk/forecast-service/internal/db/forecastquery"
)

type ForecastService interface {
	GetForecast(ctx context.Context, city string) (ForecastResult, error)
}

type forecastService struct {
	resolver  ForecastResolver
	queryRepo forecastquery.Repository
}

// NewForecastService wraps the resolver. queryRepo may be nil, which disables the query log.
func NewForecastService(resolver ForecastResolver, queryRepo forecastquery.Repository) ForecastService {
	return &forecastService{
		resolver:  resolver,
		queryRepo: queryRepo,
	}
}

func (s *forecastService) GetForecast(ctx context.Context, city string) (ForecastResult, error) {
	if strings.TrimSpace(city) == "" {
		return ForecastResult{}, ErrInvalidInput
	}

	result, err := s.resolver.Resolve(ctx, city)
	s.logQuery(ctx, city, result, err)
	if err != nil {
		return ForecastResult{}, err
	}

	return result, nil
}

func (s *forecastService) logQuery(ctx context.Context, city string, result ForecastResult, resolveErr error) {
	if s.queryRepo == nil {
		return
	}

	query := forecastquery.ForecastQuery{
		City:         city,
		ResolvedCity: result.City,
		Source:       string(result.Source),
		DayCount:     len(result.Forecast),
		Outcome:      Outcome(resolveErr),
	}

	// Logged even when the request was canceled.
	if err := s.queryRepo.LogForecastQuery(context.WithoutCancel(ctx), query); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("city", city).Msg("failed to log forecast query")
	}
}
