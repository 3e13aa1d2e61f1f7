package gpupower

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liga-hessen/news-aggregator/pkg/config"
)

type fakeProbe struct{ up bool }

func (p *fakeProbe) IsAvailable(ctx context.Context) bool { return p.up }

func enabledConfig() config.GPUConfig {
	cfg := config.DefaultGPUConfig()
	cfg.Enabled = true
	cfg.MACAddress = "aa:bb:cc:dd:ee:ff"
	cfg.Host = "gpu.internal"
	cfg.WeekdaysOnly = false
	cfg.ActiveHoursStart = 0
	cfg.ActiveHoursEnd = 0 // overnight 0-0 covers every hour
	return cfg
}

func TestEnsureAvailable_AlreadyUpHostSucceedsImmediately(t *testing.T) {
	m := NewManager(enabledConfig(), &fakeProbe{up: true})

	outcome, err := m.EnsureAvailable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeReady, outcome)
	assert.Equal(t, StateAvailable, m.Status())
}

func TestEnsureAvailable_DeniedOutsideHoursWhenProbeFails(t *testing.T) {
	cfg := enabledConfig()
	// A one-hour window two hours from now: the current hour is always
	// outside it.
	h := time.Now().Hour()
	cfg.ActiveHoursStart = (h + 2) % 24
	cfg.ActiveHoursEnd = (h + 3) % 24
	m := NewManager(cfg, &fakeProbe{up: false})

	outcome, err := m.EnsureAvailable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeDeniedOutsideHours, outcome)
}

func TestEnsureAvailable_DisabledManagerRefuses(t *testing.T) {
	cfg := enabledConfig()
	cfg.Enabled = false
	m := NewManager(cfg, &fakeProbe{up: false})

	outcome, err := m.EnsureAvailable(context.Background())
	assert.Error(t, err)
	assert.Equal(t, OutcomeDeniedOutsideHours, outcome)
}

func TestEnsureAvailable_InvalidMACFailsWake(t *testing.T) {
	cfg := enabledConfig()
	cfg.MACAddress = "not-a-mac"
	m := NewManager(cfg, &fakeProbe{up: false})

	outcome, err := m.EnsureAvailable(context.Background())
	assert.Error(t, err)
	assert.Equal(t, OutcomeWakeFailed, outcome)
}

func TestShutdownIfIdle_NeverFiresWhenHostWasNotWokenByUs(t *testing.T) {
	m := NewManager(enabledConfig(), &fakeProbe{up: true})
	m.RecordActivity()

	didShutdown, err := m.ShutdownIfIdle(context.Background())
	require.NoError(t, err)
	assert.False(t, didShutdown)
}

func TestShutdownIfIdle_DisabledAutoShutdownIsANoOp(t *testing.T) {
	cfg := enabledConfig()
	cfg.AutoShutdown = false
	m := NewManager(cfg, &fakeProbe{up: true})

	didShutdown, err := m.ShutdownIfIdle(context.Background())
	require.NoError(t, err)
	assert.False(t, didShutdown)
}
