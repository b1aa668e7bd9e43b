package configs

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"tableorder/entity"
)

// OpenDatabase opens the in-memory store. A single connection keeps one
// copy of the data; callers inside a transaction must only use the tx handle.
func OpenDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// SetupDatabase migrates the schema.
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.MenuItem{},
		&entity.Table{},
		&entity.Order{}, &entity.OrderLine{},
		&entity.Payment{},
		&entity.WaiterCall{},
		&entity.Cart{}, &entity.CartLine{},
	)
}

// MemoryDSN names a private in-memory database, e.g. one per test.
func MemoryDSN(name string) string {
	r := strings.NewReplacer("/", "_", " ", "_", "#", "_")
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", r.Replace(name))
}
