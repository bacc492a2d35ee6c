package store

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Driver string
	DSN    string
}

// Open connects lazily: an unreachable database does not prevent startup,
// queries fail later with errors that IsUnavailable recognises.
func Open(cfg Config) (*gorm.DB, error) {
	var d gorm.Dialector
	switch cfg.Driver {
	case "", "mysql":
		d = mysql.Open(cfg.DSN)
	case "postgres":
		d = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unknown db driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(d, &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}
