package monitor

import (
	"os"
	"strconv"
	"time"

	"patientpulse.xyz/hospital-admin-service/pkg/common"
)

// Config carries every tunable of the monitoring core. It is handed to the
// Monitor at construction; nothing in this package reads ambient globals.
type Config struct {
	// A device whose last_data_time is older than this is considered silent.
	OfflineThreshold time.Duration
	// How often the offline sweeper runs, and how long after process start
	// the first sweep happens.
	SweepInterval     time.Duration
	SweepInitialDelay time.Duration
	// Signal strength percentages. Below LowSignalThreshold a heartbeat
	// raises a warning alert, below CriticalSignalThreshold a critical one.
	LowSignalThreshold      int
	CriticalSignalThreshold int
	// Normal/critical bands per monitored vital. Adding an entry is all it
	// takes to monitor another vital sign.
	Ranges map[VitalKind]VitalRange
}

func DefaultConfig() Config {
	return Config{
		OfflineThreshold:        30 * time.Minute,
		SweepInterval:           5 * time.Minute,
		SweepInitialDelay:       30 * time.Second,
		LowSignalThreshold:      30,
		CriticalSignalThreshold: 15,
		Ranges:                  DefaultVitalRanges(),
	}
}

// ConfigFromEnv starts from the defaults and applies any overrides present
// in the environment. Invalid values are ignored rather than fatal.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v, err := strconv.Atoi(os.Getenv(common.EnvKeyOfflineThresholdMinutes)); err == nil && v > 0 {
		cfg.OfflineThreshold = time.Duration(v) * time.Minute
	}
	if v, err := strconv.Atoi(os.Getenv(common.EnvKeySweepIntervalMinutes)); err == nil && v > 0 {
		cfg.SweepInterval = time.Duration(v) * time.Minute
	}
	if v, err := strconv.Atoi(os.Getenv(common.EnvKeySweepInitialDelaySec)); err == nil && v >= 0 {
		cfg.SweepInitialDelay = time.Duration(v) * time.Second
	}
	if v, err := strconv.Atoi(os.Getenv(common.EnvKeyLowSignalThreshold)); err == nil && v > 0 {
		cfg.LowSignalThreshold = v
	}
	if v, err := strconv.Atoi(os.Getenv(common.EnvKeyCriticalSignalThreshold)); err == nil && v > 0 {
		cfg.CriticalSignalThreshold = v
	}

	return cfg
}
