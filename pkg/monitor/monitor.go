package monitor

import (
	"errors"
	"time"

	"patientpulse.xyz/hospital-admin-service/pkg/db"
	"patientpulse.xyz/hospital-admin-service/pkg/models"
)

// Source labels stamped on alerts so operators can tell which subsystem
// raised them.
const (
	SourceTemperatureMonitor = "Temperature Monitor"
	SourceDeviceManager      = "Device Manager"
)

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrDeviceNotFound     = errors.New("device not found")
	ErrMissingMeasurement = errors.New("measurement value is required")
)

type IVitals interface {
	RecordVital(patientID uint, input *VitalInput) (*VitalResult, error)
}

type IAlert interface {
	// EmitAlert persists the descriptor as a new active alert. It reports
	// failure as false instead of an error: alerting rides alongside a
	// primary operation and must never abort it.
	EmitAlert(d *AlertDescriptor) bool
	ResolveDeviceAlerts(deviceID uint) (int64, error)
	GetDeviceAlerts(deviceID uint) ([]models.Alert, error)
}

type IDevice interface {
	Heartbeat(deviceID uint, input *HeartbeatInput) (*HeartbeatResult, error)
	SweepOffline(now time.Time) error
}

type Monitor struct {
	Db     db.DB
	Cfg    Config
	Vitals IVitals
	Alert  IAlert
	Device IDevice
}

type ServiceOpts struct {
	Vitals IVitals
	Alert  IAlert
	Device IDevice
}

func (m *Monitor) WithServices(opts ServiceOpts) *Monitor {
	if opts.Vitals != nil {
		m.Vitals = opts.Vitals
	}
	if opts.Alert != nil {
		m.Alert = opts.Alert
	}
	if opts.Device != nil {
		m.Device = opts.Device
	}
	return m
}
