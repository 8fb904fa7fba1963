package workers

import (
	"context"
	"log/slog"
	"time"

	"chat-hub/notify"
)

// CodeSweeperWorker prunes expired verification codes on an interval so the
// in-memory store does not grow with abandoned registrations.
type CodeSweeperWorker struct {
	log      *slog.Logger
	codes    *notify.CodeStore
	interval time.Duration
}

func NewCodeSweeperWorker(log *slog.Logger, codes *notify.CodeStore, interval time.Duration) *CodeSweeperWorker {
	return &CodeSweeperWorker{log: log, codes: codes, interval: interval}
}

func (w *CodeSweeperWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping code sweeper")
			return nil
		case <-ticker.C:
			if pruned := w.codes.Sweep(); pruned > 0 {
				w.log.Debug("Pruned expired verification codes", "count", pruned)
			}
		}
	}
}
