package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"atelier/api"
	"atelier/cmd"
	_ "atelier/docs"
	httpadapter "atelier/internal/adapters/in/http"
	"atelier/internal/adapters/out/postgres"
	"atelier/internal/adapters/out/postgres/orderrepo"
	"atelier/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//	@title			Atelier Order API
//	@version		1.0
//	@description	Order fulfillment service for a creative studio.
//	@BasePath		/api
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	fileStore, err := app.CreateFileStore()
	if err != nil {
		log.Fatalf("Failed to create file store: %v", err)
	}

	jobManager := jobs.NewJobManager(app.CreateOverdueOrdersQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	createOrderHandler := app.CreateCreateOrderCommandHandler()
	startOrderHandler := app.CreateStartOrderCommandHandler()
	deliverContentHandler := app.CreateDeliverContentCommandHandler()
	addFeedbackHandler := app.CreateAddFeedbackCommandHandler()
	getOrderHandler := app.CreateGetOrderQueryHandler()
	listOrdersHandler := app.CreateListOrdersQueryHandler()

	server := httpadapter.NewServer(
		&createOrderHandler,
		&startOrderHandler,
		&deliverContentHandler,
		&addFeedbackHandler,
		getOrderHandler,
		listOrdersHandler,
		fileStore,
	)

	startWebServer(server, configs)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:       goDotEnvVariable("JWT_SECRET"),
		SupabaseURL:     goDotEnvVariable("STORAGE_SUPABASE_URL"),
		SupabaseKey:     goDotEnvVariable("STORAGE_SUPABASE_KEY"),
		StorageBucket:   goDotEnvVariable("STORAGE_BUCKET"),
		LocalStorageDir: goDotEnvVariable("STORAGE_LOCAL_DIR"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.AttachmentDTO{},
		&orderrepo.AdminContentDTO{},
		&orderrepo.FeedbackDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := gormDB.Exec(postgres.OrderCodeSequenceDDL).Error; err != nil {
		log.Fatalf("Failed to create order code sequence: %v", err)
	}

	return gormDB
}

func startWebServer(server *httpadapter.Server, configs cmd.Config) {
	e := echo.New()

	if _, err := api.Load(context.Background()); err != nil {
		log.Fatalf("Invalid OpenAPI document: %v", err)
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.yml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", api.Raw())
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server.RegisterRoutes(e, httpadapter.AuthMiddleware([]byte(configs.JWTSecret)))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
