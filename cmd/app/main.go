package main

import (
	"fmt"
	"log/slog"
	"os"

	"dispatch/cmd"
	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/adapters/out/postgres/notificationrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/partnerrepo"
	"dispatch/internal/adapters/out/postgres/riderrepo"
	"dispatch/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)
	redisClient := openRedis(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(gormDB, configs.ReconciliationCronSpec, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                     goDotEnvVariable("HTTP_PORT"),
		DBHost:                       goDotEnvVariable("DB_HOST"),
		DBPort:                       goDotEnvVariable("DB_PORT"),
		DBUser:                       goDotEnvVariable("DB_USER"),
		DBPassword:                   goDotEnvVariable("DB_PASSWORD"),
		DBName:                       goDotEnvVariable("DB_NAME"),
		DBSslMode:                    goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:                    goDotEnvVariable("REDIS_ADDR"),
		GateAssignmentOnAvailability: goDotEnvVariable("GATE_ASSIGNMENT_ON_AVAILABILITY") == "true",
		ReconciliationCronSpec:       goDotEnvVariable("RECONCILIATION_CRON_SPEC"),
	}

	if config.ReconciliationCronSpec == "" {
		config.ReconciliationCronSpec = "0 */5 * * * *"
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	// The unique indexes on rider identity fields and deliveries.order_id are
	// load-bearing; the duplicate checks rely on them under concurrency.
	err = db.AutoMigrate(
		&riderrepo.RiderDTO{},
		&deliveryrepo.DeliveryDTO{},
		&orderrepo.OrderDTO{},
		&notificationrepo.NotificationDTO{},
		&partnerrepo.PartnerDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}
	return db
}

// openRedis returns nil when no address is configured; the assignment flow
// then runs without the lock fence.
func openRedis(configs cmd.Config) *redis.Client {
	if configs.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
