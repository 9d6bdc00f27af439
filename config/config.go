package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"ulascansenturk/forecast-service/internal/providers"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env             string
	LogLevel        string
	HTTPTimeout     int32
	UpstreamTimeout int32

	OpenWeatherAPIKey       string
	OpenWeatherGeocodingURL string
	OpenWeatherOneCallURL   string
	OpenWeatherForecastURL  string

	CORSAllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "forecast-service")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:5000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 30)
	v.SetDefault("UPSTREAM_TIMEOUT", 10)
	v.SetDefault("OPENWEATHER_GEOCODING_URL", providers.DefaultEndpoints.Geocoding)
	v.SetDefault("OPENWEATHER_ONECALL_URL", providers.DefaultEndpoints.OneCall)
	v.SetDefault("OPENWEATHER_FORECAST_URL", providers.DefaultEndpoints.Forecast)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:             v.GetString("SERVICE_NAME"),
		ServerAddress:           v.GetString("SERVER_ADDRESS"),
		DBName:                  v.GetString("DATABASE_NAME"),
		DBPassword:              v.GetString("DATABASE_PASSWORD"),
		DBUser:                  v.GetString("DATABASE_USER"),
		DBPort:                  v.GetString("DATABASE_PORT"),
		DBHost:                  v.GetString("DATABASE_HOST"),
		Env:                     v.GetString("ENV"),
		LogLevel:                v.GetString("LOG_LEVEL"),
		HTTPTimeout:             v.GetInt32("HTTP_TIMEOUT"),
		UpstreamTimeout:         v.GetInt32("UPSTREAM_TIMEOUT"),
		OpenWeatherAPIKey:       v.GetString("OPENWEATHER_API_KEY"),
		OpenWeatherGeocodingURL: v.GetString("OPENWEATHER_GEOCODING_URL"),
		OpenWeatherOneCallURL:   v.GetString("OPENWEATHER_ONECALL_URL"),
		OpenWeatherForecastURL:  v.GetString("OPENWEATHER_FORECAST_URL"),
		CORSAllowedOrigins:      splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

func (c *Config) OpenWeatherEndpoints() providers.Endpoints {
	return providers.Endpoints{
		Geocoding: c.OpenWeatherGeocodingURL,
		OneCall:   c.OpenWeatherOneCallURL,
		Forecast:  c.OpenWeatherForecastURL,
	}
}

func (c *Config) UpstreamTimeoutDuration() time.Duration {
	return time.Duration(c.UpstreamTimeout) * time.Second
}

// QueryLogEnabled reports whether a database was configured for the forecast query log.
func (c *Config) QueryLogEnabled() bool {
	return c.DBHost != ""
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
