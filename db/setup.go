package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/Shattajit/Mini-CRM/internal/config"
	"github.com/Shattajit/Mini-CRM/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectDatabase opens the configured gateway. Driver errors are translated
// into gorm's sentinel errors (gorm.ErrDuplicatedKey, gorm.ErrForeignKeyViolated)
// so the repository layer can classify them without inspecting messages.
func ConnectDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case config.DriverPostgres, "":
		dialector = postgres.Open(cfg.URL)
	case config.DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(cfg.URL))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB(): %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}

// sqliteDSN makes sure foreign keys are enforced on every connection; sqlite
// leaves them off by default.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

// MigrateDatabase creates or updates the schema. Models are listed parents
// first so foreign keys always point at existing tables.
func MigrateDatabase(db *gorm.DB) error {
	models := []interface{}{
		&models.User{},
		&models.Client{},
		&models.Project{},
		&models.InteractionLog{},
		&models.Reminder{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrate %T: %w", model, err)
		}
	}

	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
