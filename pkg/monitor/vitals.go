package monitor

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"patientpulse.xyz/hospital-admin-service/pkg/common"
	"patientpulse.xyz/hospital-admin-service/pkg/models"
)

type VitalInput struct {
	DeviceID               *uint
	HeartRate              *int
	BloodPressureSystolic  *int
	BloodPressureDiastolic *int
	BodyTemperature        *float64
	OxygenSaturation       *int
	RespiratoryRate        *int
	Notes                  string
	RecordedBy             string
}

// valueFor projects the input onto the range table's key space, so the
// evaluation loop stays free of per-vital branches.
func (in *VitalInput) valueFor(kind VitalKind) *float64 {
	asFloat := func(p *int) *float64 {
		if p == nil {
			return nil
		}
		v := float64(*p)
		return &v
	}
	switch kind {
	case VitalBodyTemperature:
		return in.BodyTemperature
	case VitalHeartRate:
		return asFloat(in.HeartRate)
	case VitalOxygenSaturation:
		return asFloat(in.OxygenSaturation)
	case VitalRespiratoryRate:
		return asFloat(in.RespiratoryRate)
	default:
		return nil
	}
}

type VitalResult struct {
	Reading        models.VitalReading
	PatientName    string
	AlertGenerated bool
	AlertTitle     string
}

func (m *Monitor) recordVital(patientID uint, input *VitalInput) (*VitalResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHospitalCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryVitals),
	)

	// Validation happens before any store mutation.
	if input.BodyTemperature == nil {
		return nil, ErrMissingMeasurement
	}

	var patient models.Patient
	if err := m.Db.Conn.First(&patient, patientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	reading := models.VitalReading{
		PatientID:              patient.ID,
		DeviceID:               input.DeviceID,
		HeartRate:              input.HeartRate,
		BloodPressureSystolic:  input.BloodPressureSystolic,
		BloodPressureDiastolic: input.BloodPressureDiastolic,
		BodyTemperature:        input.BodyTemperature,
		OxygenSaturation:       input.OxygenSaturation,
		RespiratoryRate:        input.RespiratoryRate,
		Notes:                  input.Notes,
		RecordedBy:             common.OrDefault(input.RecordedBy, "System"),
		RecordedAt:             time.Now(),
	}

	logger.Info("Received vital reading for patient",
		zap.Uint("patient_id", patient.ID),
		zap.Reflect("reading", reading))

	if err := m.Db.Conn.Create(&reading).Error; err != nil {
		return nil, err
	}

	logger.Info("Saved vital reading for patient",
		zap.Uint("patient_id", patient.ID),
		zap.Uint("reading_id", reading.ID))

	if m.Alert == nil {
		return nil, fmt.Errorf("alert service not available")
	}

	result := &VitalResult{
		Reading:     reading,
		PatientName: patient.Name,
	}

	// Ranges are evaluated in sorted kind order so the reported title is
	// stable when more than one vital alerts; every alert is still emitted.
	kinds := make([]string, 0, len(m.Cfg.Ranges))
	for kind := range m.Cfg.Ranges {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)

	for _, kind := range kinds {
		r := m.Cfg.Ranges[VitalKind(kind)]
		value := input.valueFor(VitalKind(kind))
		if value == nil {
			continue
		}
		descriptor := r.Evaluate(*value, patient.ID, patient.Name)
		if descriptor == nil {
			continue
		}
		if m.Alert.EmitAlert(descriptor) && !result.AlertGenerated {
			result.AlertGenerated = true
			result.AlertTitle = descriptor.Title
		}
	}

	return result, nil
}

type IVitalsImpl struct {
	monitor *Monitor
}

func (iv *IVitalsImpl) RecordVital(patientID uint, input *VitalInput) (*VitalResult, error) {
	return iv.monitor.recordVital(patientID, input)
}

func (m *Monitor) GetIVitals() IVitals {
	return &IVitalsImpl{monitor: m}
}
