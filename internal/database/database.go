package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"bwbackbone/internal/domain"
)

// Connect opens the store selected by the DSN: postgres:// DSNs use
// PostgreSQL, anything else is treated as a SQLite path (":memory:" gives the
// in-memory store used for demos and tests). The choice is made once here,
// never per call.
func Connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	log.Println("Using SQLite:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
}

// Migrate creates or updates the schema for every entity table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Customer{},
		&domain.Staff{},
		&domain.Job{},
		&domain.Part{},
		&domain.Operation{},
		&domain.TimePunch{},
		&domain.QCEvent{},
		&domain.Equipment{},
	)
}
