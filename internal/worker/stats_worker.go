package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/studytrack/studytrack-backend/internal/service"
)

// StatsWorker periodically recomputes the admin dashboard counts so the
// cached payload stays warm between requests.
type StatsWorker struct {
	dashboard *service.DashboardService
	interval  time.Duration
	log       zerolog.Logger
}

// NewStatsWorker creates a StatsWorker refreshing at the given interval.
func NewStatsWorker(dashboard *service.DashboardService, interval time.Duration, log zerolog.Logger) *StatsWorker {
	return &StatsWorker{
		dashboard: dashboard,
		interval:  interval,
		log:       log.With().Str("component", "stats_worker").Logger(),
	}
}

// Start runs the refresh loop until the context is cancelled. The first
// refresh happens immediately so a cold cache never serves the first admin.
func (w *StatsWorker) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Msg("StatsWorker started")

	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("StatsWorker shutting down")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *StatsWorker) refresh(ctx context.Context) {
	if _, err := w.dashboard.RefreshAdminOverview(ctx); err != nil {
		w.log.Error().Err(err).Msg("dashboard stats refresh failed")
	}
}
