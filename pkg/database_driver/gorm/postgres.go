package gorm

import (
	"errors"
	"fmt"
	"time"

	"weather-insight/configs"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB struct
type DB struct {
	Postgres *gorm.DB
}

// DSN builds the connection string for cfg
func DSN(cfg configs.Postgres) (string, error) {
	if cfg.Host == "" && cfg.Port == "" && cfg.DbName == "" {
		return "", errors.New("cannot estabished the connection")
	}

	sslmode := "disable"
	if cfg.SSLMode {
		sslmode = "require"
	}
	return fmt.Sprintf("host=%v user=%v password=%v dbname=%v port=%v sslmode=%v connect_timeout=10",
		cfg.Host, cfg.Username, cfg.Password, cfg.DbName, cfg.Port, sslmode), nil
}

// ConnectToPostgreSQL func
func ConnectToPostgreSQL(cfg configs.Postgres) (*DB, error) {
	connectionStr, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	pg, err := gorm.Open(postgres.Open(connectionStr), &gorm.Config{
		DryRun: false,
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	sqlDB, err := pg.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(2 * time.Hour)

	logrus.Infof("Connected to postgres at %s:%s/%s", cfg.Host, cfg.Port, cfg.DbName)
	return &DB{Postgres: pg}, nil
}

// DisconnectPostgres func
func DisconnectPostgres(db *gorm.DB) {
	sqlDb, err := db.DB()
	if err != nil {
		logrus.Error(err)
		return
	}
	if err := sqlDb.Close(); err != nil {
		logrus.Error(err)
	}
	logrus.Println("Connected with postgres has closed")
}
