package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// GPUConfig configures the Wake-on-LAN / SSH-shutdown power manager for the
// LLM inference host.
type GPUConfig struct {
	Enabled           bool
	AutoShutdown      bool
	MACAddress        string
	BroadcastAddr     string
	Host              string
	SSHUser           string
	SSHKeyPath        string
	IdleShutdownAfter time.Duration
	WakeTimeout       time.Duration
	PollInterval      time.Duration

	// ActiveHoursStart/End are hour-of-day (0-23, local time) bounds during
	// which waking the host is permitted. Already-available hosts are never
	// shut down purely for being outside this window.
	ActiveHoursStart int
	ActiveHoursEnd   int
	WeekdaysOnly     bool
}

// DefaultGPUConfig returns the GPU power-management defaults.
func DefaultGPUConfig() GPUConfig {
	return GPUConfig{
		Enabled:           false,
		AutoShutdown:      true,
		BroadcastAddr:     "255.255.255.255",
		IdleShutdownAfter: 15 * time.Minute,
		WakeTimeout:       2 * time.Minute,
		PollInterval:      5 * time.Second,
		ActiveHoursStart:  7,
		ActiveHoursEnd:    22,
		WeekdaysOnly:      true,
	}
}

// LoadGPUConfigFromEnv loads GPU power-manager configuration from environment
// variables. Returns Enabled=false (the zero-risk default) when GPU_MAC_ADDRESS
// is unset, since Wake-on-LAN cannot function without it.
func LoadGPUConfigFromEnv() (GPUConfig, error) {
	cfg := DefaultGPUConfig()

	cfg.MACAddress = os.Getenv("GPU_MAC_ADDRESS")
	cfg.Host = os.Getenv("GPU_HOST")
	cfg.SSHUser = os.Getenv("GPU_SSH_USER")
	cfg.SSHKeyPath = os.Getenv("GPU_SSH_KEY_PATH")
	cfg.Enabled = cfg.MACAddress != "" && cfg.Host != ""

	if v := os.Getenv("GPU_BROADCAST_ADDR"); v != "" {
		cfg.BroadcastAddr = v
	}
	if v := os.Getenv("GPU_IDLE_SHUTDOWN_AFTER"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return GPUConfig{}, fmt.Errorf("invalid GPU_IDLE_SHUTDOWN_AFTER: %w", err)
		}
		cfg.IdleShutdownAfter = d
	}
	if v := os.Getenv("GPU_WAKE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return GPUConfig{}, fmt.Errorf("invalid GPU_WAKE_TIMEOUT: %w", err)
		}
		cfg.WakeTimeout = d
	}
	if v := os.Getenv("GPU_AUTO_SHUTDOWN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return GPUConfig{}, fmt.Errorf("invalid GPU_AUTO_SHUTDOWN: %w", err)
		}
		cfg.AutoShutdown = b
	}
	if v := os.Getenv("GPU_WEEKDAYS_ONLY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return GPUConfig{}, fmt.Errorf("invalid GPU_WEEKDAYS_ONLY: %w", err)
		}
		cfg.WeekdaysOnly = b
	}
	if v := os.Getenv("GPU_ACTIVE_HOURS_START"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return GPUConfig{}, fmt.Errorf("invalid GPU_ACTIVE_HOURS_START: %w", err)
		}
		cfg.ActiveHoursStart = n
	}
	if v := os.Getenv("GPU_ACTIVE_HOURS_END"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return GPUConfig{}, fmt.Errorf("invalid GPU_ACTIVE_HOURS_END: %w", err)
		}
		cfg.ActiveHoursEnd = n
	}

	if cfg.Enabled && cfg.SSHKeyPath == "" {
		return GPUConfig{}, fmt.Errorf("GPU_SSH_KEY_PATH is required when GPU power management is enabled")
	}

	return cfg, nil
}
