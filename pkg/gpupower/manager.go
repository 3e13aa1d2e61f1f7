package gpupower

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/liga-hessen/news-aggregator/pkg/config"
)

// AvailabilityProbe reports whether the inference service on the GPU host is
// currently reachable. Satisfied by llmprovider.OllamaProvider.IsAvailable.
type AvailabilityProbe interface {
	IsAvailable(ctx context.Context) bool
}

// Outcome is the terminal result of an EnsureAvailable call.
type Outcome int

const (
	// OutcomeReady means the host is available now, whether it was already
	// up or the manager just woke it successfully.
	OutcomeReady Outcome = iota
	// OutcomeDeniedOutsideHours means the host is down and the current time
	// falls outside the configured active-hours window, so no wake attempt
	// was made.
	OutcomeDeniedOutsideHours
	// OutcomeWakeFailed means a wake attempt was made (within active hours)
	// but the host did not come up before WakeTimeout elapsed.
	OutcomeWakeFailed
)

// Manager owns the GPU host's power lifecycle: waking it, probing it,
// shutting it down once idle, and recording activity to reset the idle
// timer.
type Manager struct {
	cfg   config.GPUConfig
	probe AvailabilityProbe

	mu           sync.Mutex
	state        State
	wasSleeping  bool
	lastActivity time.Time
}

// NewManager constructs a Manager. probe is used both to check whether the
// host is already up and, after a wake, to poll until it responds.
func NewManager(cfg config.GPUConfig, probe AvailabilityProbe) *Manager {
	return &Manager{
		cfg:          cfg,
		probe:        probe,
		state:        StateUnknown,
		lastActivity: time.Time{},
	}
}

// IsAvailable probes the host directly, independent of active-hours policy.
func (m *Manager) IsAvailable(ctx context.Context) bool {
	return m.probe.IsAvailable(ctx)
}

// EnsureAvailable guarantees the GPU host is reachable before a caller
// depends on it, waking it if necessary. An already-up host always
// succeeds, regardless of active hours: the window only gates NEW wake
// attempts, never access to an already-awake machine.
func (m *Manager) EnsureAvailable(ctx context.Context) (Outcome, error) {
	if !m.cfg.Enabled {
		return OutcomeDeniedOutsideHours, fmt.Errorf("gpu power management is disabled")
	}

	if m.IsAvailable(ctx) {
		m.mu.Lock()
		m.state = StateAvailable
		m.mu.Unlock()
		m.RecordActivity()
		return OutcomeReady, nil
	}

	if !WithinActiveHours(time.Now(), m.cfg.ActiveHoursStart, m.cfg.ActiveHoursEnd, m.cfg.WeekdaysOnly) {
		return OutcomeDeniedOutsideHours, nil
	}

	if err := m.wake(); err != nil {
		return OutcomeWakeFailed, err
	}

	if m.waitForReady(ctx) {
		m.mu.Lock()
		m.state = StateAvailable
		m.mu.Unlock()
		return OutcomeReady, nil
	}

	return OutcomeWakeFailed, fmt.Errorf("gpu host did not become available within %s", m.cfg.WakeTimeout)
}

func (m *Manager) wake() error {
	m.mu.Lock()
	m.state = StateWaking
	m.wasSleeping = true
	m.mu.Unlock()

	if err := sendMagicPacket(normalizeMAC(m.cfg.MACAddress), m.cfg.BroadcastAddr); err != nil {
		return fmt.Errorf("sending wake-on-lan packet: %w", err)
	}
	slog.Info("sent wake-on-lan packet", "host", m.cfg.Host)
	return nil
}

func (m *Manager) waitForReady(ctx context.Context) bool {
	deadline := time.Now().Add(m.cfg.WakeTimeout)
	ticker := time.NewTicker(m.cfg.PollInterval)
	defer ticker.Stop()

	for time.Now().Before(deadline) {
		if m.IsAvailable(ctx) {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}
	}
	return false
}

// RecordActivity resets the idle timer, called whenever the LLM worker
// successfully processes an item against the GPU host.
func (m *Manager) RecordActivity() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastActivity = time.Now()
}

// IdleFor returns how long it has been since the last recorded activity.
func (m *Manager) IdleFor() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lastActivity.IsZero() {
		return 0
	}
	return time.Since(m.lastActivity)
}

// ShutdownIfIdle shuts the GPU host down once it has been idle past
// IdleShutdownAfter, but only if this manager woke it in the first place
// (wasSleeping) and no other interactive user is currently logged in.
func (m *Manager) ShutdownIfIdle(ctx context.Context) (bool, error) {
	if !m.cfg.Enabled || !m.cfg.AutoShutdown {
		return false, nil
	}

	m.mu.Lock()
	wasSleeping := m.wasSleeping
	m.mu.Unlock()

	if !wasSleeping {
		return false, nil
	}
	idle := m.IdleFor()
	if idle == 0 || idle < m.cfg.IdleShutdownAfter {
		return false, nil
	}

	if sshHasOtherUsers(ctx, m.cfg.Host, m.cfg.SSHUser, m.cfg.SSHKeyPath, 10*time.Second) {
		slog.Info("skipping gpu idle shutdown: other users logged in", "host", m.cfg.Host)
		return false, nil
	}

	m.mu.Lock()
	m.state = StateShuttingDown
	m.mu.Unlock()

	if err := sshShutdown(ctx, m.cfg.Host, m.cfg.SSHUser, m.cfg.SSHKeyPath, 15*time.Second); err != nil {
		return false, fmt.Errorf("shutting down gpu host: %w", err)
	}

	m.mu.Lock()
	m.resetStateLocked()
	m.state = StateSleeping
	m.mu.Unlock()
	return true, nil
}

// resetStateLocked clears the wake/activity bookkeeping; callers must hold
// m.mu.
func (m *Manager) resetStateLocked() {
	m.wasSleeping = false
	m.lastActivity = time.Time{}
}

// Status returns the manager's current internal state, for the admin stats
// surface.
func (m *Manager) Status() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}
