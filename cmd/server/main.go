package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"patientpulse.xyz/hospital-admin-service/pkg/common"
	"patientpulse.xyz/hospital-admin-service/pkg/db"
	hospitalHttp "patientpulse.xyz/hospital-admin-service/pkg/http"
	"patientpulse.xyz/hospital-admin-service/pkg/monitor"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	hospitalDbType := os.Getenv(common.EnvKeyHospitalDBType)
	switch hospitalDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	case "postgres":
		dbInstance = db.GetInstance(db.UsePostgresDialector())
	default:
		log.Fatal("Unknown HOSPITAL_DB_TYPE: " + hospitalDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyHospitalHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyHospitalDefaultRate), 64); err != nil {
		log.Fatal("Invalid HOSPITAL_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyHospitalDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid HOSPITAL_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	hospitalCore := monitor.Monitor{
		Db:  *dbInstance,
		Cfg: monitor.ConfigFromEnv(),
	}
	hospitalCore.WithServices(monitor.ServiceOpts{
		Vitals: hospitalCore.GetIVitals(),
		Alert:  hospitalCore.GetIAlert(),
		Device: hospitalCore.GetIDevice(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweeper := monitor.NewSweeper(&hospitalCore)
	go sweeper.Run(ctx)

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &hospitalHttp.RestfulServer{
		Server:           gin.Default(),
		Hospital:         &hospitalCore,
		RateLimiterStore: monitor.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
