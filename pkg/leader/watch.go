package leader

import (
	"context"
	"log/slog"
	"time"
)

// Watch polls l.IsHeld every interval and calls onLost exactly once, the
// first time the lock file is found missing: the file was deleted out from
// under a live leader, which is fatal for that process; a human must start
// a fresh one. Watch returns when ctx is done or onLost has fired.
func Watch(ctx context.Context, l *Lock, interval time.Duration, onLost func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !l.IsHeld() {
				slog.Error("leader: lock file missing, leadership lost", "path", l.path)
				onLost()
				return
			}
		}
	}
}
