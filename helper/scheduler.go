package helper

import (
	"fmt"

	"pawfect_grooming/config"
	"pawfect_grooming/database"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

var (
	sweepScheduler gocron.Scheduler
	paymentCron    *cron.Cron
)

// SweepTemporaryAccountsJob deletes expired demo accounts; errors are logged and the next run
// tries again.
func SweepTemporaryAccountsJob() {
	n, err := SweepTemporaryAccounts(database.DB, Now())
	if err != nil {
		log.Error().Err(err).Msg("temporary account sweep")
		return
	}
	if n > 0 {
		log.Info().Int("deleted", n).Msg("temporary accounts swept")
	}
}

func FailStalePaymentsJob() {
	cutoff := Now().Add(-config.App.Scheduler.StalePaymentAfter)
	n, err := FailStalePayments(database.DB, cutoff)
	if err != nil {
		log.Error().Err(err).Msg("stale checkout sweep")
		return
	}
	if n > 0 {
		log.Info().Int("failed", n).Msg("stale checkout payments failed")
	}
}

// StartSchedulers runs the temporary account sweep on a fixed interval and the stale checkout
// sweep on its cron schedule.
func StartSchedulers(cfg config.SchedulerConfig) error {
	s, err := gocron.NewScheduler(gocron.WithLocation(config.App.Location()))
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}
	if _, err := s.NewJob(
		gocron.DurationJob(cfg.TempSweepInterval),
		gocron.NewTask(SweepTemporaryAccountsJob),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		return fmt.Errorf("schedule temporary account sweep: %w", err)
	}

	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	if _, err := c.AddFunc(cfg.StalePaymentCron, FailStalePaymentsJob); err != nil {
		_ = s.Shutdown()
		return fmt.Errorf("schedule stale checkout sweep: %w", err)
	}

	sweepScheduler, paymentCron = s, c
	s.Start()
	c.Start()
	log.Info().Dur("interval", cfg.TempSweepInterval).Str("staleCron", cfg.StalePaymentCron).Msg("schedulers started")
	return nil
}

func StopSchedulers() {
	if sweepScheduler != nil {
		if err := sweepScheduler.Shutdown(); err != nil {
			log.Warn().Err(err).Msg("stop sweep scheduler")
		}
		sweepScheduler = nil
	}
	if paymentCron != nil {
		<-paymentCron.Stop().Done()
		paymentCron = nil
	}
	log.Info().Msg("schedulers stopped")
}
