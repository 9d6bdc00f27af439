package forecastquery

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	LogForecastQuery(ctx context.Context, query ForecastQuery) error
	GetRecentForecastQuery(ctx context.Context, city string) (*ForecastQuery, error)
}

type ForecastSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &ForecastSQLRepository{db: db}
}

func (r *ForecastSQLRepository) LogForecastQuery(ctx context.Context, query ForecastQuery) error {
	if query.CreatedAt.IsZero() {
		query.CreatedAt = time.Now()
	}

	return r.db.WithContext(ctx).Create(&query).Error
}

func (r *ForecastSQLRepository) GetRecentForecastQuery(ctx context.Context, city string) (*ForecastQuery, error) {
	var query ForecastQuery
	err := r.db.WithContext(ctx).Where("city = ?", city).Order("created_at DESC").First(&query).Error
	if err != nil {
		return nil, err
	}
	return &query, nil
}
