package gdb

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds the mysql connection settings.
type Config struct {
	DSN             string `toml:"dsn" mapstructure:"dsn" json:"dsn"`
	MaxIdleConns    int    `toml:"max_idle_conns" mapstructure:"max_idle_conns" json:"max_idle_conns"`
	MaxOpenConns    int    `toml:"max_open_conns" mapstructure:"max_open_conns" json:"max_open_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" mapstructure:"conn_max_lifetime" json:"conn_max_lifetime"`
	LogLevel        string `toml:"log_level" mapstructure:"log_level" json:"log_level"`
}

// NewDB opens the mysql connection pool used by the daemon.
func NewDB(c *Config) (*gorm.DB, error) {
	logLevel := logger.Warn
	switch c.LogLevel {
	case "silent":
		logLevel = logger.Silent
	case "info":
		logLevel = logger.Info
	case "error":
		logLevel = logger.Error
	}

	db, err := gorm.Open(mysql.Open(c.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed on open mysql connection")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed on get sql db")
	}
	if c.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(c.ConnMaxLifetime) * time.Second)
	}

	return db, nil
}
