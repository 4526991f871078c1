package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyHospitalDBType string = "HOSPITAL_DB_TYPE"
	EnvKeyHospitalDBPath string = "HOSPITAL_DB_PATH"
	EnvKeyHospitalDBDsn  string = "HOSPITAL_DB_DSN"

	EnvKeyHospitalHttpHostPort string = "HOSPITAL_HTTP_HOST_PORT"

	EnvKeyHospitalDefaultRate  string = "HOSPITAL_DEFAULT_RATE"
	EnvKeyHospitalDefaultBurst string = "HOSPITAL_DEFAULT_BURST"

	EnvKeyOfflineThresholdMinutes string = "HOSPITAL_OFFLINE_THRESHOLD_MINUTES"
	EnvKeySweepIntervalMinutes    string = "HOSPITAL_SWEEP_INTERVAL_MINUTES"
	EnvKeySweepInitialDelaySec    string = "HOSPITAL_SWEEP_INITIAL_DELAY_SECONDS"
	EnvKeyLowSignalThreshold      string = "HOSPITAL_LOW_SIGNAL_THRESHOLD"
	EnvKeyCriticalSignalThreshold string = "HOSPITAL_CRITICAL_SIGNAL_THRESHOLD"

	LoggerNameHospitalCore  string = "hospital_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerFieldCategory     string = "category"
	LoggerCategoryVitals    string = "vitals"
	LoggerCategoryAlert     string = "alert"
	LoggerCategoryDevice    string = "device"
	LoggerCategorySweeper   string = "sweeper"
)
