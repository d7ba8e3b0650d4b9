// Package jobs runs background maintenance. The only job today is the
// expired-token sweep: tokens expire lazily at validation time, so the sweep
// never changes an observable result, it just keeps dead token columns from
// accumulating.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/ids"
)

type TokenStore interface {
	ClearExpiredTokens(ctx context.Context, now time.Time) (int64, error)
}

type Sweeper struct {
	cron     *cron.Cron
	store    TokenStore
	schedule string
	log      zerolog.Logger
}

func NewSweeper(store TokenStore, schedule string, log zerolog.Logger) *Sweeper {
	return &Sweeper{
		cron:     cron.New(cron.WithSeconds()),
		store:    store,
		schedule: schedule,
		log:      log,
	}
}

func (s *Sweeper) Start() error {
	if s.store == nil {
		return nil
	}

	if _, err := s.cron.AddFunc(s.schedule, s.sweep); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop halts the cron schedule and waits for a running sweep to finish, up
// to its own timeout.
func (s *Sweeper) Stop() {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
		s.log.Warn().Msg("token sweep did not stop in time")
	}
}

func (s *Sweeper) sweep() {
	runID := ids.New()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cleared, err := s.store.ClearExpiredTokens(ctx, time.Now())
	if err != nil {
		s.log.Error().Err(err).Str("run_id", runID).Msg("token sweep failed")
		return
	}

	s.log.Info().Str("run_id", runID).Int64("cleared", cleared).Msg("token sweep complete")
}
