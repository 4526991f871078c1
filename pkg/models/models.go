package models

import "time"

type DeviceStatus string

const (
	DeviceStatusOnline  DeviceStatus = "online"
	DeviceStatusOffline DeviceStatus = "offline"
)

type AlertCategory string

const (
	AlertCategoryPatient  AlertCategory = "patient"
	AlertCategoryDevice   AlertCategory = "device"
	AlertCategorySystem   AlertCategory = "system"
	AlertCategorySecurity AlertCategory = "security"
)

type AlertSeverity string

const (
	AlertSeverityInfo     AlertSeverity = "info"
	AlertSeverityWarning  AlertSeverity = "warning"
	AlertSeverityCritical AlertSeverity = "critical"
)

type AlertStatus string

const (
	AlertStatusActive   AlertStatus = "active"
	AlertStatusResolved AlertStatus = "resolved"
)

type Patient struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	BodyTemperature float64    `json:"body_temperature"`
	LastVisit       *time.Time `json:"last_visit"`
	Email           string     `json:"email"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Vitals []VitalReading `json:"-" gorm:"foreignKey:PatientID"`
	Alerts []Alert        `json:"-" gorm:"foreignKey:PatientID"`
}

type Device struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	Name           string       `json:"name"`
	DeviceCode     string       `json:"device_code" gorm:"uniqueIndex"`
	BoardType      string       `json:"board_type"`
	Location       string       `json:"location"`
	Status         DeviceStatus `json:"status" gorm:"type:varchar(10);check:status IN ('online','offline')"`
	SignalStrength *int         `json:"signal_strength"`
	LastDataTime   time.Time    `json:"last_data_time"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// VitalReading rows are immutable once created; only body temperature is
// evaluated for alerts today, the other columns are recorded as supplied.
type VitalReading struct {
	ID                     uint      `json:"id" gorm:"primaryKey"`
	PatientID              uint      `json:"patient_id" gorm:"index"`
	DeviceID               *uint     `json:"device_id" gorm:"index"`
	HeartRate              *int      `json:"heart_rate"`
	BloodPressureSystolic  *int      `json:"blood_pressure_systolic"`
	BloodPressureDiastolic *int      `json:"blood_pressure_diastolic"`
	BodyTemperature        *float64  `json:"body_temperature"`
	OxygenSaturation       *int      `json:"oxygen_saturation"`
	RespiratoryRate        *int      `json:"respiratory_rate"`
	Notes                  string    `json:"notes"`
	RecordedBy             string    `json:"recorded_by"`
	RecordedAt             time.Time `json:"recorded_at" gorm:"index"`
	CreatedAt              time.Time `json:"created_at"`
}

// Alert references its device through DeviceID; the description embeds the
// device code only for human readers, it is never used for lookups.
type Alert struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	PatientID   *uint         `json:"patient_id" gorm:"index"`
	DeviceID    *uint         `json:"device_id" gorm:"index"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	AlertType   string        `json:"alert_type"`
	Category    AlertCategory `json:"category" gorm:"type:varchar(20);check:category IN ('patient','device','system','security')"`
	Severity    AlertSeverity `json:"severity" gorm:"type:varchar(10);check:severity IN ('info','warning','critical')"`
	Values      string        `json:"values"`
	NormalRange string        `json:"normal_range"`
	Status      AlertStatus   `json:"status" gorm:"type:varchar(10);check:status IN ('active','resolved')"`
	Source      string        `json:"source"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type Department struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	Name                string    `json:"name" gorm:"uniqueIndex"`
	Description         string    `json:"description"`
	DepartmentHeadID    *uint     `json:"department_head_id"`
	Status              string    `json:"status"`
	LocationBuilding    string    `json:"location_building"`
	LocationFloor       string    `json:"location_floor"`
	LocationRoom        string    `json:"location_room"`
	ContactEmail        string    `json:"contact_email"`
	ContactPhone        string    `json:"contact_phone"`
	BudgetAnnual        float64   `json:"budget_annual"`
	BudgetSpent         float64   `json:"budget_spent"`
	ParentDepartmentID  *uint     `json:"parent_department_id"`
	OperatingHoursStart string    `json:"operating_hours_start"`
	OperatingHoursEnd   string    `json:"operating_hours_end"`
	OperatingDays       string    `json:"operating_days"`
	CostCenterCode      string    `json:"cost_center_code"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type Employee struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	EmployeeNumber   string     `json:"employee_number"`
	FirstName        string     `json:"first_name"`
	MiddleName       string     `json:"middle_name"`
	LastName         string     `json:"last_name"`
	Gender           string     `json:"gender"`
	DateOfBirth      *time.Time `json:"date_of_birth"`
	Email            string     `json:"email"`
	PhoneNumber      string     `json:"phone_number"`
	Address          string     `json:"address"`
	DepartmentID     *uint      `json:"department_id" gorm:"index"`
	JobTitle         string     `json:"job_title"`
	EmploymentType   string     `json:"employment_type"`
	HireDate         *time.Time `json:"hire_date"`
	EmploymentStatus string     `json:"employment_status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
