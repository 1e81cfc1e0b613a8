package main

import (
	"log"

	"chequetrack/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

// initDB opens the cheque database and runs AutoMigrate. Postgres is used
// when DB_DSN is set; otherwise a local sqlite file keeps development and
// tests self-contained.
func initDB(cfg Config) {
	var err error
	if cfg.DBDSN != "" {
		db, err = gorm.Open(postgres.Open(cfg.DBDSN), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to connect postgres database: %v", err)
		}
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open sqlite database %s: %v", cfg.DBPath, err)
		}
	}
	if err := db.AutoMigrate(&models.Cheque{}); err != nil {
		log.Printf("migration warning (cheques): %v", err)
	}
}
