package middleware

import (
	"calendar-copilot/config"
	"calendar-copilot/pkg/log"

	"golang.org/x/time/rate"
)

// Middleware bundles shared HTTP middleware for the API routes.
type Middleware struct {
	l              log.Logger
	config         *config.Config
	suggestLimiter *rate.Limiter
}

func New(l log.Logger, cfg *config.Config) Middleware {
	perMin := cfg.Schedule.SuggestRatePerMin
	if perMin <= 0 {
		perMin = 6
	}
	return Middleware{
		l:              l,
		config:         cfg,
		suggestLimiter: rate.NewLimiter(rate.Limit(float64(perMin)/60.0), perMin),
	}
}
