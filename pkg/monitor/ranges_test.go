package monitor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patientpulse.xyz/hospital-admin-service/pkg/models"
	"patientpulse.xyz/hospital-admin-service/pkg/monitor"
	_ "patientpulse.xyz/hospital-admin-service/pkg/testing"
)

func temperatureRange(t *testing.T) monitor.VitalRange {
	r, ok := monitor.DefaultVitalRanges()[monitor.VitalBodyTemperature]
	require.True(t, ok, "body temperature range must be registered by default")
	return r
}

func TestEvaluateTemperatureSeverityBoundaries(t *testing.T) {
	r := temperatureRange(t)

	cases := []struct {
		value    float64
		severity models.AlertSeverity // empty means no alert
	}{
		{34.0, models.AlertSeverityCritical},
		{34.99, models.AlertSeverityCritical},
		{35.0, models.AlertSeverityWarning}, // critical band is exclusive at 35.0
		{36.0, models.AlertSeverityWarning},
		{36.1, ""}, // band edges are normal
		{36.5, ""},
		{37.2, ""},
		{37.3, models.AlertSeverityWarning},
		{38.5, models.AlertSeverityWarning},
		{39.0, models.AlertSeverityWarning}, // still not critical at the edge
		{39.01, models.AlertSeverityCritical},
		{41.0, models.AlertSeverityCritical},
	}

	for _, tc := range cases {
		descriptor := r.Evaluate(tc.value, 1, "Test Patient")
		if tc.severity == "" {
			assert.Nil(t, descriptor, "value %v should not alert", tc.value)
			continue
		}
		require.NotNil(t, descriptor, "value %v should alert", tc.value)
		assert.Equal(t, tc.severity, descriptor.Severity, "value %v", tc.value)
	}
}

func TestEvaluateTemperatureDirection(t *testing.T) {
	r := temperatureRange(t)

	// Direction comes from the upper normal bound only, so a critically low
	// value is still labeled "Low".
	low := r.Evaluate(34.0, 1, "Test Patient")
	require.NotNil(t, low)
	assert.Equal(t, "Low Body Temperature Detected", low.Title)

	lowWarning := r.Evaluate(35.5, 1, "Test Patient")
	require.NotNil(t, lowWarning)
	assert.Equal(t, "Low Body Temperature Detected", lowWarning.Title)

	high := r.Evaluate(38.5, 1, "Test Patient")
	require.NotNil(t, high)
	assert.Equal(t, "High Body Temperature Detected", high.Title)
}

func TestEvaluateTemperatureDescriptorFields(t *testing.T) {
	r := temperatureRange(t)

	descriptor := r.Evaluate(38.5, 42, "Jane Doe")
	require.NotNil(t, descriptor)

	assert.Equal(t, models.AlertSeverityWarning, descriptor.Severity)
	assert.Equal(t, "38.5°C", descriptor.Values)
	assert.Equal(t, "36.1-37.2°C", descriptor.NormalRange)
	assert.Equal(t, models.AlertCategoryPatient, descriptor.Category)
	assert.Equal(t, monitor.SourceTemperatureMonitor, descriptor.Source)
	assert.Equal(t, string(monitor.VitalBodyTemperature), descriptor.AlertType)
	require.NotNil(t, descriptor.PatientID)
	assert.Equal(t, uint(42), *descriptor.PatientID)
	assert.Contains(t, descriptor.Description, "Jane Doe")
	assert.Contains(t, descriptor.Description, "Medical attention recommended.")
}

func TestEvaluateCriticalCallToAction(t *testing.T) {
	r := temperatureRange(t)

	descriptor := r.Evaluate(40.0, 1, "Jane Doe")
	require.NotNil(t, descriptor)
	assert.Equal(t, models.AlertSeverityCritical, descriptor.Severity)
	assert.Contains(t, descriptor.Description, "Immediate medical attention required!")
}

func TestEvaluatePatientLabelFallback(t *testing.T) {
	r := temperatureRange(t)

	descriptor := r.Evaluate(38.5, 7, "")
	require.NotNil(t, descriptor)
	assert.Contains(t, descriptor.Description, "#7")
}

func TestEvaluateIsPure(t *testing.T) {
	r := temperatureRange(t)

	first := r.Evaluate(38.5, 42, "Jane Doe")
	second := r.Evaluate(38.5, 42, "Jane Doe")
	assert.Equal(t, first, second)
}
