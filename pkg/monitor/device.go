package monitor

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"patientpulse.xyz/hospital-admin-service/pkg/common"
	"patientpulse.xyz/hospital-admin-service/pkg/models"
)

type HeartbeatInput struct {
	// Nil means the device did not report signal strength this beat; the
	// stored value is left untouched.
	SignalStrength *int
	Data           map[string]any
}

type HeartbeatResult struct {
	Device         models.Device
	Status         models.DeviceStatus
	WasOffline     bool
	ResolvedAlerts int64
}

func (m *Monitor) heartbeat(deviceID uint, input *HeartbeatInput) (*HeartbeatResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHospitalCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDevice),
	)

	var device models.Device
	if err := m.Db.Conn.First(&device, deviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}

	wasOffline := device.Status == models.DeviceStatusOffline
	now := time.Now()

	updates := map[string]any{
		"status":         models.DeviceStatusOnline,
		"last_data_time": now,
	}
	if input.SignalStrength != nil {
		updates["signal_strength"] = *input.SignalStrength
	}

	if err := m.Db.Conn.Model(&device).Updates(updates).Error; err != nil {
		return nil, err
	}

	device.Status = models.DeviceStatusOnline
	device.LastDataTime = now
	if input.SignalStrength != nil {
		device.SignalStrength = input.SignalStrength
	}

	logger.Info("Heartbeat received",
		zap.String("device_code", device.DeviceCode),
		zap.Bool("was_offline", wasOffline))

	result := &HeartbeatResult{
		Device:     device,
		Status:     models.DeviceStatusOnline,
		WasOffline: wasOffline,
	}

	if wasOffline {
		resolved, err := m.Alert.ResolveDeviceAlerts(device.ID)
		if err != nil {
			// Best-effort reconciliation; the heartbeat itself already
			// succeeded.
			logger.Error("Failed to resolve alerts for reconnected device",
				zap.String("device_code", device.DeviceCode),
				zap.Error(err))
		} else {
			result.ResolvedAlerts = resolved
			logger.Info("Device reconnected",
				zap.String("device_code", device.DeviceCode),
				zap.Int64("resolved_alerts", resolved))
		}
	}

	if input.SignalStrength != nil && *input.SignalStrength < m.Cfg.LowSignalThreshold {
		m.Alert.EmitAlert(m.lowSignalDescriptor(&device, *input.SignalStrength))
	}

	return result, nil
}

func (m *Monitor) lowSignalDescriptor(device *models.Device, strength int) *AlertDescriptor {
	severity := models.AlertSeverityWarning
	if strength < m.Cfg.CriticalSignalThreshold {
		severity = models.AlertSeverityCritical
	}

	deviceID := device.ID
	return &AlertDescriptor{
		DeviceID: &deviceID,
		Title:    "Low Device Signal Detected",
		Description: fmt.Sprintf("Device %s (%s) at %s reports signal strength %d%% (normal range 50-100%%). Check device placement or network coverage.",
			device.Name, device.DeviceCode, locationOrUnknown(device.Location), strength),
		AlertType:   "signal_strength",
		Category:    models.AlertCategoryDevice,
		Severity:    severity,
		Values:      fmt.Sprintf("%d%%", strength),
		NormalRange: "50-100%",
		Source:      SourceDeviceManager,
	}
}

// sweepOffline demotes every device that is not already offline and has been
// silent past the threshold, emitting one critical alert per demotion. A
// device already offline is skipped, which is what keeps repeat sweeps from
// re-alerting.
func (m *Monitor) sweepOffline(now time.Time) error {
	logger := common.GetLoggerWith(
		common.LoggerNameHospitalCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySweeper),
	)

	cutoff := now.Add(-m.Cfg.OfflineThreshold)

	var stale []models.Device
	if err := m.Db.Conn.
		Where("status <> ? AND last_data_time < ?", models.DeviceStatusOffline, cutoff).
		Find(&stale).Error; err != nil {
		return err
	}

	for _, device := range stale {
		if err := m.Db.Conn.Model(&device).Update("status", models.DeviceStatusOffline).Error; err != nil {
			logger.Error("Failed to mark device offline",
				zap.String("device_code", device.DeviceCode),
				zap.Error(err))
			continue
		}

		logger.Info("Device marked offline",
			zap.String("device_code", device.DeviceCode),
			zap.Time("last_data_time", device.LastDataTime))

		deviceID := device.ID
		m.Alert.EmitAlert(&AlertDescriptor{
			DeviceID: &deviceID,
			Title:    "Device Offline",
			Description: fmt.Sprintf("Device %s (%s) at %s has not reported data for over %d minutes. Last contact: %s.",
				device.Name, device.DeviceCode, locationOrUnknown(device.Location),
				int(m.Cfg.OfflineThreshold.Minutes()), device.LastDataTime.Format(time.RFC3339)),
			AlertType:   "device_offline",
			Category:    models.AlertCategoryDevice,
			Severity:    models.AlertSeverityCritical,
			Values:      "Offline",
			NormalRange: "Online",
			Source:      SourceDeviceManager,
		})
	}

	return nil
}

func locationOrUnknown(location string) string {
	return common.OrDefault(location, "unknown location")
}

type IDeviceImpl struct {
	monitor *Monitor
}

func (id *IDeviceImpl) Heartbeat(deviceID uint, input *HeartbeatInput) (*HeartbeatResult, error) {
	return id.monitor.heartbeat(deviceID, input)
}

func (id *IDeviceImpl) SweepOffline(now time.Time) error {
	return id.monitor.sweepOffline(now)
}

func (m *Monitor) GetIDevice() IDevice {
	return &IDeviceImpl{monitor: m}
}
