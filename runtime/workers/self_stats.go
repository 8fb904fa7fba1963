package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// SelfStatsWorker samples the CPU and memory usage of the server process on
// an interval and reports them through the log.
type SelfStatsWorker struct {
	log      *slog.Logger
	interval time.Duration
}

func NewSelfStatsWorker(log *slog.Logger, interval time.Duration) *SelfStatsWorker {
	return &SelfStatsWorker{log: log, interval: interval}
}

func (w *SelfStatsWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping self stats worker")
			return nil
		case <-ticker.C:
			cpu, err := p.CPUPercent()
			if err != nil {
				w.log.Error("Error while finding process cpu usage", "err", err)
				continue
			}
			ram, err := p.MemoryPercent()
			if err != nil {
				w.log.Error("Error while finding process ram usage", "err", err)
				continue
			}
			w.log.Info("Process stats", "cpu_percent", cpu, "ram_percent", ram)
		}
	}
}
