package monitor

import (
	"fmt"
	"strings"

	"patientpulse.xyz/hospital-admin-service/pkg/models"
)

type VitalKind string

const (
	VitalBodyTemperature  VitalKind = "body_temperature"
	VitalHeartRate        VitalKind = "heart_rate"
	VitalOxygenSaturation VitalKind = "oxygen_saturation"
	VitalRespiratoryRate  VitalKind = "respiratory_rate"
)

// VitalRange is one entry of the normal-range table. The evaluator has no
// per-vital control flow; everything vital-specific lives in these fields.
type VitalRange struct {
	Kind     VitalKind
	Label    string
	Unit     string
	Decimals int

	NormalMin float64
	NormalMax float64
	// Outside the critical band the alert severity escalates from warning
	// to critical.
	CriticalMin float64
	CriticalMax float64

	Category models.AlertCategory
	Source   string
}

// DefaultVitalRanges registers body temperature only. The vitals schema also
// records heart rate, blood pressure, SpO2 and respiratory rate, but those
// are stored without evaluation until a range entry is added for them.
func DefaultVitalRanges() map[VitalKind]VitalRange {
	return map[VitalKind]VitalRange{
		VitalBodyTemperature: {
			Kind:        VitalBodyTemperature,
			Label:       "Body Temperature",
			Unit:        "°C",
			Decimals:    1,
			NormalMin:   36.1,
			NormalMax:   37.2,
			CriticalMin: 35.0,
			CriticalMax: 39.0,
			Category:    models.AlertCategoryPatient,
			Source:      SourceTemperatureMonitor,
		},
	}
}

// AlertDescriptor is an in-memory, not-yet-persisted alert. The emitter turns
// it into an active Alert row.
type AlertDescriptor struct {
	PatientID   *uint
	DeviceID    *uint
	Title       string
	Description string
	AlertType   string
	Category    models.AlertCategory
	Severity    models.AlertSeverity
	Values      string
	NormalRange string
	Source      string
}

// Evaluate is pure: it maps one measurement to at most one descriptor and
// touches nothing else. A value inside the normal band (edges included)
// returns nil.
func (r VitalRange) Evaluate(value float64, patientID uint, patientLabel string) *AlertDescriptor {
	var severity models.AlertSeverity
	switch {
	case value < r.CriticalMin || value > r.CriticalMax:
		severity = models.AlertSeverityCritical
	case value < r.NormalMin || value > r.NormalMax:
		severity = models.AlertSeverityWarning
	default:
		return nil
	}

	// Direction is judged against the upper normal bound only; anything not
	// above it is "low", which also covers critically low values.
	direction := "Low"
	if value > r.NormalMax {
		direction = "High"
	}

	if patientLabel == "" {
		patientLabel = fmt.Sprintf("#%d", patientID)
	}

	values := fmt.Sprintf("%.*f%s", r.Decimals, value, r.Unit)
	normalRange := fmt.Sprintf("%.*f-%.*f%s", r.Decimals, r.NormalMin, r.Decimals, r.NormalMax, r.Unit)

	action := "Medical attention recommended."
	if severity == models.AlertSeverityCritical {
		action = "Immediate medical attention required!"
	}

	pid := patientID
	return &AlertDescriptor{
		PatientID: &pid,
		Title:     fmt.Sprintf("%s %s Detected", direction, r.Label),
		Description: fmt.Sprintf("Patient %s recorded a %s %s of %s (normal range %s). %s",
			patientLabel, strings.ToLower(direction), strings.ToLower(r.Label), values, normalRange, action),
		AlertType:   string(r.Kind),
		Category:    r.Category,
		Severity:    severity,
		Values:      values,
		NormalRange: normalRange,
		Source:      r.Source,
	}
}
