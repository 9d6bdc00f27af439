package forecastquery

import (
	"time"
)

type ForecastQuery struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	City         string    `json:"city" gorm:"index:idx_city;index:idx_city_created_at"`
	ResolvedCity string    `json:"resolved_city" gorm:"column:resolved_city"`
	Source       string    `json:"source" gorm:"column:source"`
	DayCount     int       `json:"day_count" gorm:"column:day_count"`
	Outcome      string    `json:"outcome" gorm:"column:outcome;index:idx_outcome"`
	CreatedAt    time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_city_created_at"`
}

func (ForecastQuery) TableName() string {
	return "forecast_queries"
}
