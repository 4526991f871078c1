package monitor

import (
	"go.uber.org/zap"
	"patientpulse.xyz/hospital-admin-service/pkg/common"
	"patientpulse.xyz/hospital-admin-service/pkg/models"
)

func (m *Monitor) emitAlert(d *AlertDescriptor) bool {
	logger := common.GetLoggerWith(
		common.LoggerNameHospitalCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)

	alert := models.Alert{
		PatientID:   d.PatientID,
		DeviceID:    d.DeviceID,
		Title:       d.Title,
		Description: d.Description,
		AlertType:   d.AlertType,
		Category:    d.Category,
		Severity:    d.Severity,
		Values:      d.Values,
		NormalRange: d.NormalRange,
		Status:      models.AlertStatusActive,
		Source:      d.Source,
	}

	logger.Info("Alert found", zap.Reflect("alert", alert))

	if err := m.Db.Conn.Create(&alert).Error; err != nil {
		// Alerting is a side channel. The failure is logged and reported as
		// a boolean so the primary operation keeps going.
		logger.Error("Failed to save alert",
			zap.String("title", d.Title),
			zap.Error(err))
		return false
	}

	logger.Info("Alert saved", zap.Reflect("alert", alert))
	return true
}

// resolveDeviceAlerts marks every active device-manager alert of the given
// device resolved. Used on the offline-to-online transition.
func (m *Monitor) resolveDeviceAlerts(deviceID uint) (int64, error) {
	result := m.Db.Conn.Model(&models.Alert{}).
		Where("device_id = ? AND category = ? AND source = ? AND status = ?",
			deviceID, models.AlertCategoryDevice, SourceDeviceManager, models.AlertStatusActive).
		Update("status", models.AlertStatusResolved)
	return result.RowsAffected, result.Error
}

func (m *Monitor) getDeviceAlerts(deviceID uint) ([]models.Alert, error) {
	var alerts []models.Alert
	err := m.Db.Conn.
		Where("device_id = ?", deviceID).
		Order("created_at desc").
		Find(&alerts).Error
	return alerts, err
}

type IAlertImpl struct {
	monitor *Monitor
}

func (ia *IAlertImpl) EmitAlert(d *AlertDescriptor) bool {
	return ia.monitor.emitAlert(d)
}

func (ia *IAlertImpl) ResolveDeviceAlerts(deviceID uint) (int64, error) {
	return ia.monitor.resolveDeviceAlerts(deviceID)
}

func (ia *IAlertImpl) GetDeviceAlerts(deviceID uint) ([]models.Alert, error) {
	return ia.monitor.getDeviceAlerts(deviceID)
}

func (m *Monitor) GetIAlert() IAlert {
	return &IAlertImpl{monitor: m}
}
