package services

import (
	"context"
	"os"
	"time"

	"github.com/VinitO1/Food-Order-Catering/entity"
	"github.com/VinitO1/Food-Order-Catering/repository"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var workerLog = zerolog.New(os.Stdout).With().Timestamp().Str("service", "status_worker").Logger()

// StatusWorker drives the demo order timeline: it scans orders whose
// scheduled transition has come due and applies each with a
// compare-and-swap on the current status. Because the schedule lives in
// the orders table, a restart picks up where the previous process left
// off instead of silently dropping timers.
type StatusWorker struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository

	Poll         time.Duration
	DeliverAfter time.Duration
}

func NewStatusWorker(db *gorm.DB, repo *repository.OrderRepository, poll, deliverAfter time.Duration) *StatusWorker {
	return &StatusWorker{DB: db, Repo: repo, Poll: poll, DeliverAfter: deliverAfter}
}

// Start blocks until ctx is cancelled.
func (w *StatusWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.Poll)
	defer ticker.Stop()

	workerLog.Info().Dur("poll", w.Poll).Msg("status worker started")
	for {
		select {
		case <-ctx.Done():
			workerLog.Info().Msg("status worker stopped")
			return
		case <-ticker.C:
			if err := w.RunOnce(time.Now()); err != nil {
				workerLog.Error().Err(err).Msg("transition sweep failed")
			}
		}
	}
}

// RunOnce applies every transition due at the given time. Split out from
// Start so a single sweep can be driven directly.
func (w *StatusWorker) RunOnce(now time.Time) error {
	due, err := w.Repo.DueTransitions(now, 100)
	if err != nil {
		return err
	}
	for _, o := range due {
		w.apply(o, now)
	}
	return nil
}

func (w *StatusWorker) apply(o entity.Order, now time.Time) {
	next := o.NextStatus
	if !transitionAllowed(o.Status, next) {
		// Status moved since scheduling (e.g. user cancelled); the timer
		// must not fire blindly. Drop the stale schedule.
		workerLog.Info().Uint("order_id", o.ID).
			Str("status", o.Status).Str("next", next).
			Msg("dropping stale transition")
		if err := w.Repo.ClearTransition(w.DB, o.ID); err != nil {
			workerLog.Error().Err(err).Uint("order_id", o.ID).Msg("clear transition failed")
		}
		return
	}

	err := w.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := w.Repo.UpdateStatusGuard(tx, o.ID, o.Status, next)
		if err != nil {
			return err
		}
		if affected == 0 {
			// Lost the race to a concurrent writer; clear and move on.
			return w.Repo.ClearTransition(tx, o.ID)
		}

		if next == entity.OrderStatusApproved {
			return w.Repo.ScheduleTransition(tx, o.ID,
				entity.OrderStatusDelivered, now.Add(w.DeliverAfter))
		}
		return w.Repo.ClearTransition(tx, o.ID)
	})
	if err != nil {
		workerLog.Error().Err(err).Uint("order_id", o.ID).Msg("apply transition failed")
		return
	}
	workerLog.Info().Uint("order_id", o.ID).
		Str("from", o.Status).Str("to", next).
		Msg("order status advanced")
}
