package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingWorker struct {
	runs  *atomic.Int32
	panic bool
}

func (w countingWorker) Run(ctx context.Context) error {
	w.runs.Add(1)
	if w.panic && w.runs.Load() == 1 {
		panic("boom")
	}
	<-ctx.Done()
	return nil
}

func TestSupervisor_RunsAndStops(t *testing.T) {
	req := require.New(t)
	sup := NewSupervisor(slog.Default(), 20*time.Millisecond)
	runs := &atomic.Int32{}
	sup.Add(countingWorker{runs: runs})

	done := make(chan struct{})
	go func() {
		sup.Run(context.Background())
		close(done)
	}()

	req.Eventually(func() bool { return runs.Load() == 1 }, time.Second, 10*time.Millisecond)

	sup.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("supervisor did not drain after Stop")
	}
}

func TestSupervisor_RestartsAfterPanic(t *testing.T) {
	req := require.New(t)
	sup := NewSupervisor(slog.Default(), 20*time.Millisecond)
	runs := &atomic.Int32{}
	sup.Add(countingWorker{runs: runs, panic: true})

	done := make(chan struct{})
	go func() {
		sup.Run(context.Background())
		close(done)
	}()

	// The first run panics, the supervisor restarts the worker
	req.Eventually(func() bool { return runs.Load() >= 2 }, 2*time.Second, 20*time.Millisecond)

	sup.Stop()
	<-done
}
