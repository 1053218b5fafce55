//go:build unit

package sweeper_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"boilerbites/internal/infra/sweeper"

	"github.com/stretchr/testify/assert"
)

type countingRegistry struct {
	sweeps atomic.Int64
}

func (r *countingRegistry) Sweep() int {
	r.sweeps.Add(1)
	return 0
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun(t *testing.T) {
	t.Run("sweeps immediately and then on the cadence", func(t *testing.T) {
		reg := &countingRegistry{}
		s := sweeper.New(reg, 10*time.Millisecond, discardLogger())

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			s.Run(ctx)
			close(done)
		}()

		assert.Eventually(t, func() bool { return reg.sweeps.Load() >= 3 },
			time.Second, 5*time.Millisecond)

		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("sweeper did not stop on context cancel")
		}
	})

	t.Run("non-positive interval falls back to a sane default", func(t *testing.T) {
		reg := &countingRegistry{}
		s := sweeper.New(reg, 0, discardLogger())

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			s.Run(ctx)
			close(done)
		}()

		// the immediate pass still runs even though the first tick is far away
		assert.Eventually(t, func() bool { return reg.sweeps.Load() >= 1 },
			time.Second, 5*time.Millisecond)

		cancel()
		<-done
	})
}
