package game

import (
	"context"
	"time"
)

// FixedStep paces a loop at a steady frames-per-second rate.
type FixedStep struct {
	step time.Duration
	next time.Time
	now  func() time.Time
}

// NewFixedStep constructs a FixedStep targeting fps; non-positive rates fall
// back to 30.
func NewFixedStep(fps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetFPS(fps)
	return fs
}

// SetFPS changes the frame rate. The next deadline is kept.
func (f *FixedStep) SetFPS(fps int) {
	if fps <= 0 {
		fps = 30
	}
	f.step = time.Second / time.Duration(fps)
}

func (f *FixedStep) Interval() time.Duration { return f.step }

// Wait blocks until the next frame deadline or until ctx is done. A caller
// that fell behind is not made to catch up: the schedule restarts from now.
func (f *FixedStep) Wait(ctx context.Context) error {
	now := f.now()
	if f.next.IsZero() || f.next.Before(now) {
		f.next = now
	}
	delay := f.next.Sub(now)
	f.next = f.next.Add(f.step)

	if delay <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
