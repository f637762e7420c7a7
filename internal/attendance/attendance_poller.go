package attendance

import (
	"context"
	"time"

	"hris-portal/internal/shared/contextutil"
	"hris-portal/internal/store"

	"go.uber.org/zap"
)

const DefaultPollInterval = 30 * time.Second

// Poll keeps the attendance slice in sync while a view is mounted: one fetch
// right away, then one per interval, until ctx is cancelled. onSync receives
// the overview after every attempt, failed ones included.
func (s *service) Poll(ctx context.Context, st *store.Store, interval time.Duration, onSync func(Overview)) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	log := contextutil.GetLogger(ctx, s.logger)

	sync := func() {
		if _, err := s.FetchLogs(ctx, st); err != nil && ctx.Err() == nil {
			log.Warn("attendance poll failed", zap.String("session_id", st.ID()), zap.Error(err))
		}
		if ctx.Err() != nil || onSync == nil {
			return
		}
		snap, err := logsSlice(st).Snapshot()
		if err != nil {
			return
		}
		onSync(s.overviewFrom(snap))
	}

	log.Debug("attendance poller started", zap.String("session_id", st.ID()), zap.Duration("interval", interval))
	sync()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("attendance poller stopped", zap.String("session_id", st.ID()))
			return ctx.Err()
		case <-ticker.C:
			if st.Closed() {
				return store.ErrStoreClosed
			}
			sync()
		}
	}
}
