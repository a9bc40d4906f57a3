package simulation

import (
	"context"
	"fmt"
	"time"
)

// StepFunc is called after every tick of Run.
type StepFunc func(ctx context.Context, w *World) error

// Run steps w every interval until ctx is done, maxTicks ticks have run
// (zero means no limit) or onStep fails. Each tick uses the wall-clock time
// since the previous one, clamped by Step.
func Run(ctx context.Context, w *World, interval time.Duration, maxTicks uint64, onStep StepFunc) error {
	if interval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", interval)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for n := uint64(0); maxTicks == 0 || n < maxTicks; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			w.Step(now.Sub(last).Seconds())
			last = now
		}
		if onStep != nil {
			if err := onStep(ctx, w); err != nil {
				return err
			}
		}
	}
	return nil
}
