package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"parceltrack/cmd"
	httpadapter "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/adapters/out/postgres/adminrepo"
	"parceltrack/internal/adapters/out/postgres/courierrepo"
	"parceltrack/internal/adapters/out/postgres/deliveryeventrepo"
	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/jobs"
	"parceltrack/internal/metrics"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	metrics.Register()

	root, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(root.CreateCleanupOrphanPhotosCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		NominatimBaseURL:   goDotEnvVariable("NOMINATIM_BASE_URL"),
		NominatimUserAgent: goDotEnvVariable("NOMINATIM_USER_AGENT"),
		UploadsDir:         goDotEnvVariable("UPLOADS_DIR"),
		UploadsURLPrefix:   goDotEnvVariable("UPLOADS_URL_PREFIX"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&courierrepo.CourierDTO{},
		&parcelrepo.ParcelDTO{},
		&deliveryeventrepo.DeliveryEventDTO{},
		&adminrepo.AdminDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(root *cmd.CompositionRoot, configs cmd.Config) {
	server := httpadapter.NewServer(
		root.CreateCreateCourierCommandHandler(),
		root.CreateCreateParcelCommandHandler(),
		root.CreateStartParcelRouteCommandHandler(),
		root.CreateRecordDeliveryCommandHandler(),
		root.CreateGetAllCouriersQueryHandler(),
		root.CreateGetCourierByIDQueryHandler(),
		root.CreateGetParcelsByCourierQueryHandler(),
		root.CreateLoginCourierQueryHandler(),
		root.CreateLoginAdminQueryHandler(),
		configs.UploadsDir,
	)

	e := echo.New()
	e.Use(middleware.Recover())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
