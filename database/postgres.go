package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/qwest/portfolioapi/api/item"
	"github.com/qwest/portfolioapi/config"
	"github.com/qwest/portfolioapi/shared/zaplogger"
)

// ConnectPostgres connects to a Postgres database and returns a GORM database object
func ConnectPostgres(cfg *config.Config) (*gorm.DB, error) {
	zaplogger.Info(config.SingleLine)
	zaplogger.Info("Initializing Postgres")

	// Set up GORM logger
	var logLevel logger.LogLevel
	switch cfg.PostgresLogLevel {
	case "silent":
		logLevel = logger.Silent
	case "error":
		logLevel = logger.Error
	case "warn":
		logLevel = logger.Warn
	case "info":
		logLevel = logger.Info
	default:
		logLevel = logger.Warn
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	}

	db, err := gorm.Open(postgres.Open(cfg.PostgresDsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %v", err)
	}
	zaplogger.Info("  * connected")
	zaplogger.Info("  * checking tables")

	if err := db.AutoMigrate(&item.ItemModel{}); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %v", err)
	}

	if !db.Migrator().HasTable(&item.ItemModel{}) {
		return nil, fmt.Errorf("failed to create table: %s", item.ItemsTableName)
	}
	zaplogger.Info("    - " + item.ItemsTableName + " ✔")

	return db, nil
}
