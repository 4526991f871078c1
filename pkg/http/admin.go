package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"patientpulse.xyz/hospital-admin-service/pkg/models"
)

// Thin CRUD surface for the admin dashboard. Nothing here contains alerting
// logic; these handlers map requests straight onto the store.
//
// Update handlers bind the request body over the loaded record, so fields
// omitted from a PUT keep their stored values instead of being nulled. The
// dashboard sends full objects; partial bodies act as a patch.

func (rs *RestfulServer) conn() *gorm.DB {
	return rs.Hospital.Db.Conn
}

func notFoundOr500(c *gin.Context, err error, message string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// ===== Patients =====

func (rs *RestfulServer) ListPatients(c *gin.Context) {
	var patients []models.Patient
	if err := rs.conn().Order("created_at desc").Find(&patients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (rs *RestfulServer) GetPatient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var patient models.Patient
	if err := rs.conn().First(&patient, id).Error; err != nil {
		notFoundOr500(c, err, "Patient not found")
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (rs *RestfulServer) CreatePatient(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patient.ID = 0
	if err := rs.conn().Create(&patient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, patient)
}

func (rs *RestfulServer) UpdatePatient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var patient models.Patient
	if err := rs.conn().First(&patient, id).Error; err != nil {
		notFoundOr500(c, err, "Patient not found")
		return
	}
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patient.ID = id
	if err := rs.conn().Save(&patient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (rs *RestfulServer) DeletePatient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	result := rs.conn().Delete(&models.Patient{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Patient deleted"})
}

// ===== Devices =====

func (rs *RestfulServer) ListDevices(c *gin.Context) {
	var devices []models.Device
	if err := rs.conn().Order("id desc").Find(&devices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, devices)
}

func (rs *RestfulServer) GetDevice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var device models.Device
	if err := rs.conn().First(&device, id).Error; err != nil {
		notFoundOr500(c, err, "Device not found")
		return
	}
	c.JSON(http.StatusOK, device)
}

func (rs *RestfulServer) CreateDevice(c *gin.Context) {
	var device models.Device
	if err := c.ShouldBindJSON(&device); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	device.ID = 0
	if device.Status == "" {
		device.Status = models.DeviceStatusOnline
	}
	// A freshly registered device counts as just heard from.
	device.LastDataTime = time.Now()
	if err := rs.conn().Create(&device).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, device)
}

func (rs *RestfulServer) UpdateDevice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var device models.Device
	if err := rs.conn().First(&device, id).Error; err != nil {
		notFoundOr500(c, err, "Device not found")
		return
	}
	if err := c.ShouldBindJSON(&device); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	device.ID = id
	if err := rs.conn().Save(&device).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, device)
}

func (rs *RestfulServer) DeleteDevice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	result := rs.conn().Delete(&models.Device{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Device not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Device deleted"})
}

// ===== Departments =====

type DepartmentView struct {
	models.Department
	EmployeeCount        int64  `json:"employee_count"`
	HeadFirstName        string `json:"head_first_name"`
	HeadLastName         string `json:"head_last_name"`
	ParentDepartmentName string `json:"parent_department_name"`
}

func (rs *RestfulServer) departmentViewQuery() *gorm.DB {
	return rs.conn().Table("departments").
		Select(`departments.*,
			count(e.id) AS employee_count,
			head.first_name AS head_first_name,
			head.last_name AS head_last_name,
			parent.name AS parent_department_name`).
		Joins("LEFT JOIN employees e ON e.department_id = departments.id").
		Joins("LEFT JOIN employees head ON departments.department_head_id = head.id").
		Joins("LEFT JOIN departments parent ON departments.parent_department_id = parent.id").
		Group("departments.id, head.first_name, head.last_name, parent.name")
}

func (rs *RestfulServer) ListDepartments(c *gin.Context) {
	var departments []DepartmentView
	if err := rs.departmentViewQuery().Order("departments.name").Scan(&departments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, departments)
}

func (rs *RestfulServer) GetDepartment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var departments []DepartmentView
	if err := rs.departmentViewQuery().Where("departments.id = ?", id).Scan(&departments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(departments) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Department not found"})
		return
	}
	c.JSON(http.StatusOK, departments[0])
}

func (rs *RestfulServer) GetDepartmentEmployees(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var employees []models.Employee
	if err := rs.conn().
		Where("department_id = ?", id).
		Order("last_name, first_name").
		Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (rs *RestfulServer) departmentNameTaken(name string, excludeID uint) (bool, error) {
	var count int64
	query := rs.conn().Model(&models.Department{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (rs *RestfulServer) CreateDepartment(c *gin.Context) {
	var department models.Department
	if err := c.ShouldBindJSON(&department); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	department.ID = 0
	if department.Status == "" {
		department.Status = "Active"
	}
	if department.OperatingDays == "" {
		department.OperatingDays = "Mon-Fri"
	}
	taken, err := rs.departmentNameTaken(department.Name, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if taken {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A department with this name already exists"})
		return
	}
	if err := rs.conn().Create(&department).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, department)
}

func (rs *RestfulServer) UpdateDepartment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var department models.Department
	if err := rs.conn().First(&department, id).Error; err != nil {
		notFoundOr500(c, err, "Department not found")
		return
	}
	if err := c.ShouldBindJSON(&department); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	department.ID = id
	taken, err := rs.departmentNameTaken(department.Name, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if taken {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A department with this name already exists"})
		return
	}
	if err := rs.conn().Save(&department).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, department)
}

func (rs *RestfulServer) DeleteDepartment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var employeeCount int64
	if err := rs.conn().Model(&models.Employee{}).
		Where("department_id = ?", id).Count(&employeeCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if employeeCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cannot delete department with assigned employees. Please reassign employees first.",
		})
		return
	}

	var subCount int64
	if err := rs.conn().Model(&models.Department{}).
		Where("parent_department_id = ?", id).Count(&subCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if subCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cannot delete department with sub-departments. Please reassign or delete sub-departments first.",
		})
		return
	}

	result := rs.conn().Delete(&models.Department{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Department not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Department deleted"})
}

// ===== Employees =====

type EmployeeView struct {
	models.Employee
	DepartmentName string `json:"department_name"`
}

func (rs *RestfulServer) employeeViewQuery() *gorm.DB {
	return rs.conn().Table("employees").
		Select("employees.*, departments.name AS department_name").
		Joins("LEFT JOIN departments ON employees.department_id = departments.id")
}

func (rs *RestfulServer) ListEmployees(c *gin.Context) {
	var employees []EmployeeView
	if err := rs.employeeViewQuery().Order("employees.id desc").Scan(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (rs *RestfulServer) GetEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var employees []EmployeeView
	if err := rs.employeeViewQuery().Where("employees.id = ?", id).Scan(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(employees) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}
	c.JSON(http.StatusOK, employees[0])
}

func (rs *RestfulServer) CreateEmployee(c *gin.Context) {
	var employee models.Employee
	if err := c.ShouldBindJSON(&employee); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	employee.ID = 0
	if err := rs.conn().Create(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (rs *RestfulServer) UpdateEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var employee models.Employee
	if err := rs.conn().First(&employee, id).Error; err != nil {
		notFoundOr500(c, err, "Employee not found")
		return
	}
	if err := c.ShouldBindJSON(&employee); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	employee.ID = id
	if err := rs.conn().Save(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (rs *RestfulServer) DeleteEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	result := rs.conn().Delete(&models.Employee{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Employee deleted"})
}

// ===== Alerts =====

type AlertView struct {
	models.Alert
	PatientName string `json:"patient_name"`
}

func (rs *RestfulServer) alertViewQuery() *gorm.DB {
	return rs.conn().Table("alerts").
		Select("alerts.*, patients.name AS patient_name").
		Joins("LEFT JOIN patients ON alerts.patient_id = patients.id")
}

func (rs *RestfulServer) ListAlerts(c *gin.Context) {
	var alerts []AlertView
	if err := rs.alertViewQuery().Order("alerts.id desc").Scan(&alerts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func (rs *RestfulServer) GetAlert(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var alerts []AlertView
	if err := rs.alertViewQuery().Where("alerts.id = ?", id).Scan(&alerts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(alerts) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		return
	}
	c.JSON(http.StatusOK, alerts[0])
}

func (rs *RestfulServer) CreateAlert(c *gin.Context) {
	var alert models.Alert
	if err := c.ShouldBindJSON(&alert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	alert.ID = 0
	if alert.Status == "" {
		alert.Status = models.AlertStatusActive
	}
	if err := rs.conn().Create(&alert).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, alert)
}

func (rs *RestfulServer) UpdateAlert(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var alert models.Alert
	if err := rs.conn().First(&alert, id).Error; err != nil {
		notFoundOr500(c, err, "Alert not found")
		return
	}
	if err := c.ShouldBindJSON(&alert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	alert.ID = id
	if err := rs.conn().Save(&alert).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alert)
}

func (rs *RestfulServer) DeleteAlert(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	result := rs.conn().Delete(&models.Alert{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Alert deleted"})
}
