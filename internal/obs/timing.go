package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Time logs the duration of the named operation when the returned func is called.
// Pass the address of the caller's named error result to record failures:
//
//	defer obs.Time(ctx, "openweather.geocode")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		logger := zerolog.Ctx(ctx)
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			logger.Warn().Err(*errp).Str("op", name).Dur("dur", dur).Msg("operation failed")
			return
		}
		logger.Debug().Str("op", name).Dur("dur", dur).Msg("operation finished")
	}
}
