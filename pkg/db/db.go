package db

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	constant "patientpulse.xyz/hospital-admin-service/pkg/common"
	"patientpulse.xyz/hospital-admin-service/pkg/models"
)

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

func GetInstance(dialector gorm.Dialector) *DB {
	var logger = constant.GetLogger()
	once.Do(func() {
		conn, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

		instance = &DB{Conn: conn}

		err = instance.Conn.AutoMigrate(
			&models.Patient{},
			&models.Department{},
			&models.Employee{},
			&models.Device{},
			&models.VitalReading{},
			&models.Alert{},
		)
		if err != nil {
			log.Fatal("Failed to migrate database:", err)
		}

		logger.Info("Database migration completed")

		if dialector.Name() == "sqlite" {
			if err := instance.Conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
				log.Fatal("Failed to enable sqlite foreign key support", err)
			}

			if err := instance.Conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
				log.Fatal("Failed to set sqlite journal mode", err)
			}
		}
	})
	return instance
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(constant.EnvKeyHospitalDBPath); !found {
		dbPath = "hospital.db"
	}
	return sqlite.Open(dbPath)
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared")
}

func UsePostgresDialector() gorm.Dialector {
	return postgres.Open(os.Getenv(constant.EnvKeyHospitalDBDsn))
}
