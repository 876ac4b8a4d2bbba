package loop

import (
	"context"
	"time"
)

// Ticker returns a frame channel that fires fps times per second until ctx
// is done. A non-positive fps yields frames as fast as the consumer reads.
func Ticker(ctx context.Context, fps int) <-chan time.Time {
	out := make(chan time.Time)

	go func() {
		defer close(out)

		if fps <= 0 {
			for {
				select {
				case <-ctx.Done():
					return
				case out <- time.Now():
				}
			}
		}

		t := time.NewTicker(time.Second / time.Duration(fps))
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-t.C:
				select {
				case out <- now:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// Count returns a channel that yields n frames and then closes.
func Count(n int) <-chan time.Time {
	out := make(chan time.Time, n)
	now := time.Now()
	for i := 0; i < n; i++ {
		out <- now
	}
	close(out)
	return out
}

// Take forwards at most n frames from in and then closes. n <= 0 forwards
// everything. The returned channel also closes when in closes or ctx is done.
func Take(ctx context.Context, in <-chan time.Time, n int) <-chan time.Time {
	out := make(chan time.Time)

	go func() {
		defer close(out)
		for sent := 0; n <= 0 || sent < n; sent++ {
			var (
				t  time.Time
				ok bool
			)
			select {
			case <-ctx.Done():
				return
			case t, ok = <-in:
				if !ok {
					return
				}
			}
			select {
			case out <- t:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
