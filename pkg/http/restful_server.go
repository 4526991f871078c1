package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"patientpulse.xyz/hospital-admin-service/pkg/monitor"
)

type RestfulServer struct {
	Server           *gin.Engine
	Hospital         *monitor.Monitor
	RateLimiterStore *monitor.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(key string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(key)
	}
}

func (rs *RestfulServer) CheckLimiter(key string) bool {
	limiter := rs.GetLimiter(key)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(key string, keyRate float64, keyBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(key, rate.Limit(keyRate), keyBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	patients := rs.Server.Group("/patients/:patient_id")
	{
		patients.POST("/vitals", rs.PostVitals)
	}

	devices := rs.Server.Group("/devices/:device_id")
	{
		devices.POST("/heartbeat", rs.PostHeartbeat)
		devices.GET("/alerts", rs.GetDeviceAlerts)
		devices.POST("/limiter", rs.PostLimiter)
	}

	api := rs.Server.Group("/api")
	{
		api.GET("/patients", rs.ListPatients)
		api.GET("/patients/:id", rs.GetPatient)
		api.POST("/patients", rs.CreatePatient)
		api.PUT("/patients/:id", rs.UpdatePatient)
		api.DELETE("/patients/:id", rs.DeletePatient)

		api.GET("/devices", rs.ListDevices)
		api.GET("/devices/:id", rs.GetDevice)
		api.POST("/devices", rs.CreateDevice)
		api.PUT("/devices/:id", rs.UpdateDevice)
		api.DELETE("/devices/:id", rs.DeleteDevice)

		api.GET("/departments", rs.ListDepartments)
		api.GET("/departments/:id", rs.GetDepartment)
		api.GET("/departments/:id/employees", rs.GetDepartmentEmployees)
		api.POST("/departments", rs.CreateDepartment)
		api.PUT("/departments/:id", rs.UpdateDepartment)
		api.DELETE("/departments/:id", rs.DeleteDepartment)

		api.GET("/employees", rs.ListEmployees)
		api.GET("/employees/:id", rs.GetEmployee)
		api.POST("/employees", rs.CreateEmployee)
		api.PUT("/employees/:id", rs.UpdateEmployee)
		api.DELETE("/employees/:id", rs.DeleteEmployee)

		api.GET("/alerts", rs.ListAlerts)
		api.GET("/alerts/:id", rs.GetAlert)
		api.POST("/alerts", rs.CreateAlert)
		api.PUT("/alerts/:id", rs.UpdateAlert)
		api.DELETE("/alerts/:id", rs.DeleteAlert)
	}
}
