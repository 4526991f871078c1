package monitor_test

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"
	"patientpulse.xyz/hospital-admin-service/pkg/db"
	"patientpulse.xyz/hospital-admin-service/pkg/monitor"
	"patientpulse.xyz/hospital-admin-service/pkg/monitor/mocks"
)

func GetMockMonitorWithMemorySqliteDialector(t *testing.T, useMockVitals, useMockAlert, useMockDevice bool) (
	*gomock.Controller,
	*monitor.Monitor,
	*mocks.MockIVitals,
	*mocks.MockIAlert,
	*mocks.MockIDevice,
) {
	ctrl := gomock.NewController(t)

	mockIVitals := mocks.NewMockIVitals(ctrl)
	mockIAlert := mocks.NewMockIAlert(ctrl)
	mockIDevice := mocks.NewMockIDevice(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	monitorInstance := &monitor.Monitor{Db: *dbInstance, Cfg: monitor.DefaultConfig()}

	vitalsService := monitorInstance.GetIVitals()
	if useMockVitals {
		vitalsService = mockIVitals
	}

	alertService := monitorInstance.GetIAlert()
	if useMockAlert {
		alertService = mockIAlert
	}

	deviceService := monitorInstance.GetIDevice()
	if useMockDevice {
		deviceService = mockIDevice
	}

	monitorInstance.WithServices(monitor.ServiceOpts{
		Vitals: vitalsService,
		Alert:  alertService,
		Device: deviceService,
	})

	return ctrl, monitorInstance, mockIVitals, mockIAlert, mockIDevice
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
