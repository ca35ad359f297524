package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "task-manager.com/task-manager/internal/models"
)

// New opens the sqlite database and applies the idempotent schema. WAL keeps
// readers unblocked while a write transaction is in flight.
func New(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
		log.Fatalf("enabling WAL failed: %v", err)
	}
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		log.Fatalf("enabling foreign keys failed: %v", err)
	}

	if err := db.AutoMigrate(&model.Task{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
