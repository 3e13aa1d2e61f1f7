package leader

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquire_SecondProcessFailsWhileFirstHolds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leader.lock")

	first, err := Acquire(path, "pod-a")
	require.NoError(t, err)
	defer first.Release()

	_, err = Acquire(path, "pod-b")
	assert.ErrorIs(t, err, ErrNotLeader)
}

func TestAcquire_RemovesStaleFileLeftByCrashedOwner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leader.lock")
	require.NoError(t, os.WriteFile(path, []byte("pod-dead"), 0o644))

	l, err := Acquire(path, "pod-c")
	require.NoError(t, err)
	defer l.Release()

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pod-c", string(contents))
}

func TestRelease_RemovesLockFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leader.lock")

	l, err := Acquire(path, "pod-d")
	require.NoError(t, err)
	require.NoError(t, l.Release())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRelease_ThenReacquireSucceeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leader.lock")

	first, err := Acquire(path, "pod-e")
	require.NoError(t, err)
	require.NoError(t, first.Release())

	second, err := Acquire(path, "pod-f")
	require.NoError(t, err)
	defer second.Release()
}

func TestIsHeld_FalseAfterExternalDeletion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leader.lock")

	l, err := Acquire(path, "pod-g")
	require.NoError(t, err)
	assert.True(t, l.IsHeld())

	require.NoError(t, os.Remove(path))
	assert.False(t, l.IsHeld())
}

func TestWatch_FiresOnLostExactlyOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leader.lock")
	l, err := Acquire(path, "pod-h")
	require.NoError(t, err)

	lostCh := make(chan struct{}, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	go Watch(ctx, l, 20*time.Millisecond, func() {
		lostCh <- struct{}{}
	})

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.Remove(path))

	select {
	case <-lostCh:
	case <-time.After(1 * time.Second):
		t.Fatal("onLost was never called after lock file removal")
	}
}
