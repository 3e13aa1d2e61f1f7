// Package leader implements single-process-wins election via an atomic
// create-if-not-exists on a well-known filesystem path. The winner holds
// leadership for its process lifetime and is responsible for removing the
// lock file on clean shutdown; a stale file found at startup is removed
// before the election attempt, since its previous owner is presumed dead.
package leader

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// ErrNotLeader is returned by Acquire when another live process already
// holds the lock file.
var ErrNotLeader = errors.New("leader: lock already held")

// Lock represents a held filesystem lock. The zero value is not usable;
// construct one via Acquire.
type Lock struct {
	path string
}

// Acquire removes any stale lock file left by a crashed previous owner and
// attempts an atomic create of path containing podID. It returns
// ErrNotLeader if another process holds the lock (only possible in the
// narrow race between the stale-file removal and this process's own
// create), or any other error as a wrapped os error.
//
// "Stale" here means simply present: a non-graceful crash is the only way
// a lock file outlives its owning process, and a human is expected to
// intervene in that case before background work resumes. The file is
// removed unconditionally at startup rather than trying to detect
// liveness, since there is no portable way to probe a dead PID across
// process namespaces/containers.
func Acquire(path, podID string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("leader: creating lock directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		slog.Warn("leader: removing stale lock file", "path", path)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("leader: removing stale lock file: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil, ErrNotLeader
		}
		return nil, fmt.Errorf("leader: creating lock file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(podID); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("leader: writing pod id to lock file: %w", err)
	}

	slog.Info("leader: acquired lock", "path", path, "pod_id", podID)
	return &Lock{path: path}, nil
}

// Release removes the lock file. Safe to call on a lock already removed out
// from under the process (e.g. deleted by an operator); that case is
// reported back to the caller by IsHeld, not by Release.
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("leader: releasing lock file: %w", err)
	}
	slog.Info("leader: released lock", "path", l.path)
	return nil
}

// IsHeld reports whether the lock file this process created is still
// present. A leader that loses its file out from under it must treat this
// as fatal and stop its background workers.
func (l *Lock) IsHeld() bool {
	_, err := os.Stat(l.path)
	return err == nil
}
