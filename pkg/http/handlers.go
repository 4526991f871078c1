package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"patientpulse.xyz/hospital-admin-service/pkg/models"
	"patientpulse.xyz/hospital-admin-service/pkg/monitor"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func optIntPtr(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

func optUintPtr(v int) *uint {
	if v <= 0 {
		return nil
	}
	u := uint(v)
	return &u
}

type VitalRequest struct {
	BodyTemperature        float64 `json:"body_temperature"`
	DeviceID               int     `json:"device_id"`
	HeartRate              int     `json:"heart_rate"`
	BloodPressureSystolic  int     `json:"blood_pressure_systolic"`
	BloodPressureDiastolic int     `json:"blood_pressure_diastolic"`
	OxygenSaturation       int     `json:"oxygen_saturation"`
	RespiratoryRate        int     `json:"respiratory_rate"`
	Notes                  string  `json:"notes"`
	RecordedBy             string  `json:"recorded_by"`
}

var vitalRequestSchema = z.Struct(z.Shape{
	"BodyTemperature":        z.Float64().Required(),
	"DeviceID":               z.Int(),
	"HeartRate":              z.Int(),
	"BloodPressureSystolic":  z.Int(),
	"BloodPressureDiastolic": z.Int(),
	"OxygenSaturation":       z.Int(),
	"RespiratoryRate":        z.Int(),
	"Notes":                  z.String(),
	"RecordedBy":             z.String(),
})

type VitalResponse struct {
	Reading        models.VitalReading `json:"reading"`
	PatientName    string              `json:"patient_name"`
	RecordedAt     time.Time           `json:"recorded_at"`
	AlertGenerated bool                `json:"alert_generated"`
	AlertTitle     string              `json:"alert_title,omitempty"`
}

func (rs *RestfulServer) PostVitals(c *gin.Context) {
	patientParam := c.Param("patient_id")

	if !rs.CheckLimiter("patient:" + patientParam) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	patientID, ok := parseIDParam(c, "patient_id")
	if !ok {
		return
	}

	var req VitalRequest
	if err := vitalRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	temperature := req.BodyTemperature
	result, err := rs.Hospital.Vitals.RecordVital(patientID, &monitor.VitalInput{
		DeviceID:               optUintPtr(req.DeviceID),
		HeartRate:              optIntPtr(req.HeartRate),
		BloodPressureSystolic:  optIntPtr(req.BloodPressureSystolic),
		BloodPressureDiastolic: optIntPtr(req.BloodPressureDiastolic),
		BodyTemperature:        &temperature,
		OxygenSaturation:       optIntPtr(req.OxygenSaturation),
		RespiratoryRate:        optIntPtr(req.RespiratoryRate),
		Notes:                  req.Notes,
		RecordedBy:             req.RecordedBy,
	})
	if err != nil {
		switch {
		case errors.Is(err, monitor.ErrPatientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		case errors.Is(err, monitor.ErrMissingMeasurement):
			c.JSON(http.StatusBadRequest, gin.H{"error": "measurement value is required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, VitalResponse{
		Reading:        result.Reading,
		PatientName:    result.PatientName,
		RecordedAt:     result.Reading.RecordedAt,
		AlertGenerated: result.AlertGenerated,
		AlertTitle:     result.AlertTitle,
	})
}

// HeartbeatRequest keeps signal_strength a pointer: absent and zero are
// different things to the coalescing update downstream.
type HeartbeatRequest struct {
	SignalStrength *int           `json:"signal_strength"`
	Data           map[string]any `json:"data"`
}

func (rs *RestfulServer) PostHeartbeat(c *gin.Context) {
	deviceParam := c.Param("device_id")

	if !rs.CheckLimiter("device:" + deviceParam) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	deviceID, ok := parseIDParam(c, "device_id")
	if !ok {
		return
	}

	// An empty body is a valid heartbeat.
	var req HeartbeatRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := rs.Hospital.Device.Heartbeat(deviceID, &monitor.HeartbeatInput{
		SignalStrength: req.SignalStrength,
		Data:           req.Data,
	})
	if err != nil {
		if errors.Is(err, monitor.ErrDeviceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Device not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Heartbeat received",
		"status":          result.Status,
		"resolved_alerts": result.ResolvedAlerts,
	})
}

func (rs *RestfulServer) GetDeviceAlerts(c *gin.Context) {
	deviceParam := c.Param("device_id")

	if !rs.CheckLimiter("device:" + deviceParam) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	deviceID, ok := parseIDParam(c, "device_id")
	if !ok {
		return
	}

	var alerts []models.Alert
	var err error
	if alerts, err = rs.Hospital.Alert.GetDeviceAlerts(deviceID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, alerts)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	deviceParam := c.Param("device_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter("device:"+deviceParam, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
