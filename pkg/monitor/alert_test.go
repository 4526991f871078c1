package monitor_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"patientpulse.xyz/hospital-admin-service/pkg/common"
	"patientpulse.xyz/hospital-admin-service/pkg/models"
	"patientpulse.xyz/hospital-admin-service/pkg/monitor"
	_ "patientpulse.xyz/hospital-admin-service/pkg/testing"
)

func createTestDevice(t *testing.T, m *monitor.Monitor, status models.DeviceStatus) models.Device {
	device := models.Device{
		Name:       "Ward Sensor",
		DeviceCode: uuid.NewString(),
		BoardType:  "ESP32",
		Location:   "Ward 3",
		Status:     status,
	}
	require.NoError(t, m.Db.Conn.Create(&device).Error)
	return device
}

func TestEmitAlertForcesActiveStatus(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitorObj, _, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	device := createTestDevice(t, monitorObj, models.DeviceStatusOnline)
	deviceID := device.ID

	ok := monitorObj.Alert.EmitAlert(&monitor.AlertDescriptor{
		DeviceID:    &deviceID,
		Title:       "Device Offline",
		Description: "Device stopped reporting",
		AlertType:   "device_offline",
		Category:    models.AlertCategoryDevice,
		Severity:    models.AlertSeverityCritical,
		Values:      "Offline",
		NormalRange: "Online",
		Source:      monitor.SourceDeviceManager,
	})
	assert.True(t, ok)

	alerts, err := monitorObj.Alert.GetDeviceAlerts(device.ID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertStatusActive, alerts[0].Status)
	assert.Equal(t, "Device Offline", alerts[0].Title)
}

func TestEmitAlertNoDeduplication(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitorObj, _, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	device := createTestDevice(t, monitorObj, models.DeviceStatusOnline)
	deviceID := device.ID

	descriptor := &monitor.AlertDescriptor{
		DeviceID:    &deviceID,
		Title:       "Low Device Signal Detected",
		AlertType:   "signal_strength",
		Category:    models.AlertCategoryDevice,
		Severity:    models.AlertSeverityCritical,
		Values:      "10%",
		NormalRange: "50-100%",
		Source:      monitor.SourceDeviceManager,
	}

	// Identical descriptors create separate rows; suppression is a caller
	// concern.
	assert.True(t, monitorObj.Alert.EmitAlert(descriptor))
	assert.True(t, monitorObj.Alert.EmitAlert(descriptor))

	alerts, err := monitorObj.Alert.GetDeviceAlerts(device.ID)
	require.NoError(t, err)
	assert.Len(t, alerts, 2)
}

func TestEmitAlertPersistenceFailureIsSwallowed(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitorObj, _, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	require.NoError(t, monitorObj.Db.Conn.Migrator().DropTable(&models.Alert{}))
	defer func() {
		require.NoError(t, monitorObj.Db.Conn.AutoMigrate(&models.Alert{}))
	}()

	ok := monitorObj.Alert.EmitAlert(&monitor.AlertDescriptor{
		Title:     "Device Offline",
		AlertType: "device_offline",
		Category:  models.AlertCategoryDevice,
		Severity:  models.AlertSeverityCritical,
		Source:    monitor.SourceDeviceManager,
	})
	assert.False(t, ok)
}

func TestResolveDeviceAlertsScopedToDeviceManagerCategory(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitorObj, _, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	device := createTestDevice(t, monitorObj, models.DeviceStatusOffline)
	other := createTestDevice(t, monitorObj, models.DeviceStatusOnline)
	deviceID := device.ID
	otherID := other.ID

	deviceManagerAlert := models.Alert{
		DeviceID: &deviceID,
		Title:    "Device Offline",
		Category: models.AlertCategoryDevice,
		Severity: models.AlertSeverityCritical,
		Status:   models.AlertStatusActive,
		Source:   monitor.SourceDeviceManager,
	}
	require.NoError(t, monitorObj.Db.Conn.Create(&deviceManagerAlert).Error)

	// Same device but different source; must stay active.
	securityAlert := models.Alert{
		DeviceID: &deviceID,
		Title:    "Tamper Detected",
		Category: models.AlertCategorySecurity,
		Severity: models.AlertSeverityWarning,
		Status:   models.AlertStatusActive,
		Source:   "Security Monitor",
	}
	require.NoError(t, monitorObj.Db.Conn.Create(&securityAlert).Error)

	// Different device; must stay active.
	otherDeviceAlert := models.Alert{
		DeviceID: &otherID,
		Title:    "Device Offline",
		Category: models.AlertCategoryDevice,
		Severity: models.AlertSeverityCritical,
		Status:   models.AlertStatusActive,
		Source:   monitor.SourceDeviceManager,
	}
	require.NoError(t, monitorObj.Db.Conn.Create(&otherDeviceAlert).Error)

	resolved, err := monitorObj.Alert.ResolveDeviceAlerts(device.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resolved)

	var reloaded models.Alert
	require.NoError(t, monitorObj.Db.Conn.First(&reloaded, deviceManagerAlert.ID).Error)
	assert.Equal(t, models.AlertStatusResolved, reloaded.Status)

	reloaded = models.Alert{}
	require.NoError(t, monitorObj.Db.Conn.First(&reloaded, securityAlert.ID).Error)
	assert.Equal(t, models.AlertStatusActive, reloaded.Status)

	reloaded = models.Alert{}
	require.NoError(t, monitorObj.Db.Conn.First(&reloaded, otherDeviceAlert.ID).Error)
	assert.Equal(t, models.AlertStatusActive, reloaded.Status)
}

func TestEmitAlert_WithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl, monitorObj, _, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	device := createTestDevice(t, monitorObj, models.DeviceStatusOnline)
	deviceID := device.ID

	ok := monitorObj.Alert.EmitAlert(&monitor.AlertDescriptor{
		DeviceID:    &deviceID,
		Title:       "Device Offline",
		AlertType:   "device_offline",
		Category:    models.AlertCategoryDevice,
		Severity:    models.AlertSeverityCritical,
		Values:      "Offline",
		NormalRange: "Online",
		Source:      monitor.SourceDeviceManager,
	})
	assert.True(t, ok)

	logs := ParseLogs(buf)

	for _, msg := range []string{"Alert found", "Alert saved"} {
		found := false
		for _, log := range logs {
			lobj := log.(map[string]any)
			if lobj["category"] == "alert" &&
				lobj["logger"] == "hospital_core" &&
				lobj["msg"] == msg &&
				lobj["alert"].(map[string]any)["title"] == "Device Offline" {
				found = true
			}
		}
		assert.True(t, found, "log %q not found", msg)
	}
}
