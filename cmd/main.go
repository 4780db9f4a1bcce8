package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	customerapp "github.com/sahanperera/repairshop-backend/application/customer"
	employeeapp "github.com/sahanperera/repairshop-backend/application/employee"
	jobapp "github.com/sahanperera/repairshop-backend/application/job"
	productapp "github.com/sahanperera/repairshop-backend/application/product"
	"github.com/sahanperera/repairshop-backend/cmd/config"
	redisclient "github.com/sahanperera/repairshop-backend/cmd/redis"
	_ "github.com/sahanperera/repairshop-backend/docs"
	customerRepo "github.com/sahanperera/repairshop-backend/repository/customer"
	employeeRepo "github.com/sahanperera/repairshop-backend/repository/employee"
	jobRepo "github.com/sahanperera/repairshop-backend/repository/job"
	productRepo "github.com/sahanperera/repairshop-backend/repository/product"
	redisRepo "github.com/sahanperera/repairshop-backend/repository/redis"
	txRepo "github.com/sahanperera/repairshop-backend/repository/tx"
	"github.com/sahanperera/repairshop-backend/thirdparty/filestore"
	"github.com/sahanperera/repairshop-backend/thirdparty/rabbitmq"
	"github.com/sahanperera/repairshop-backend/transport"
	"github.com/sahanperera/repairshop-backend/utils/logger"
	validatorx "github.com/sahanperera/repairshop-backend/utils/validator"
	"go.uber.org/zap"
)

// @title REPAIR SHOP API
// @version 1.0
// @description Repair shop management API Documentation
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	validatorx.Init()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client; the cache degrades to a no-op without it
	if err := redisclient.New(cfg); err != nil {
		logger.Warn("redis unavailable, running without cache", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Initialize RabbitMQ publisher; events are best-effort
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, events disabled", zap.Error(err))
		publisher = nil
	} else {
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Product image storage
	files, err := filestore.NewStore(cfg.Upload.Dir)
	if err != nil {
		logger.Fatal("err init filestore", zap.Error(err))
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	CustomerRepo := customerRepo.NewCustomerRepository(db)
	EmployeeRepo := employeeRepo.NewEmployeeRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	JobRepo := jobRepo.NewJobRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	CustomerApp := customerapp.NewCustomerApp(cfg, TxRepo, CustomerRepo, RedisRepo, publisher)
	EmployeeApp := employeeapp.NewEmployeeApp(TxRepo, EmployeeRepo, publisher)
	ProductApp := productapp.NewProductApp(cfg, ProductRepo, RedisRepo)
	JobApp := jobapp.NewJobApp(JobRepo, CustomerRepo, EmployeeRepo, publisher)

	httpTransport := transport.NewTransport(CustomerApp, EmployeeApp, ProductApp, JobApp, files)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
