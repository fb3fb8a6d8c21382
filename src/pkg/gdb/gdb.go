package gdb

import (
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config is the db section of the service config file.
type Config struct {
	Driver       string `toml:"driver" mapstructure:"driver" json:"driver"` // mysql or sqlite
	DSN          string `toml:"dsn" mapstructure:"dsn" json:"dsn"`
	MaxIdleConns int    `toml:"max_idle_conns" mapstructure:"max_idle_conns" json:"max_idle_conns"`
	MaxOpenConns int    `toml:"max_open_conns" mapstructure:"max_open_conns" json:"max_open_conns"`
	AutoMigrate  bool   `toml:"auto_migrate" mapstructure:"auto_migrate" json:"auto_migrate"`
}

// NewDB opens the configured database connection.
func NewDB(c *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch c.Driver {
	case "sqlite":
		dialector = sqlite.Open(c.DSN)
	case "mysql", "":
		dialector = mysql.Open(c.DSN)
	default:
		return nil, errors.Errorf("unsupported db driver: %s", c.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed on open database")
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
	return db, nil
}
