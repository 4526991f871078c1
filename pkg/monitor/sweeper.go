package monitor

import (
	"context"
	"time"

	"go.uber.org/zap"
	"patientpulse.xyz/hospital-admin-service/pkg/common"
)

// Sweeper drives the periodic offline detection. All iterations run on the
// goroutine that called Run, so a slow sweep delays the next tick instead of
// overlapping it.
type Sweeper struct {
	monitor *Monitor
}

func NewSweeper(m *Monitor) *Sweeper {
	return &Sweeper{monitor: m}
}

// Run blocks until ctx is cancelled. The first sweep happens after the
// configured initial delay, then on every interval tick.
func (s *Sweeper) Run(ctx context.Context) {
	logger := common.GetLoggerWith(
		common.LoggerNameHospitalCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySweeper),
	)

	logger.Info("Offline sweeper starting",
		zap.Duration("initial_delay", s.monitor.Cfg.SweepInitialDelay),
		zap.Duration("interval", s.monitor.Cfg.SweepInterval))

	select {
	case <-ctx.Done():
		return
	case <-time.After(s.monitor.Cfg.SweepInitialDelay):
	}
	s.tick(logger)

	ticker := time.NewTicker(s.monitor.Cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Offline sweeper stopped")
			return
		case <-ticker.C:
			s.tick(logger)
		}
	}
}

// A failed sweep ends that cycle only; the ticker keeps running.
func (s *Sweeper) tick(logger *zap.Logger) {
	if err := s.monitor.Device.SweepOffline(time.Now()); err != nil {
		logger.Error("Offline sweep failed", zap.Error(err))
	}
}
