package config

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cinematix/models"
)

var DB *gorm.DB

// ConnectDatabase membuka file SQLite lokal (WAL agar aman untuk
// read-modify-write) dan menjalankan migrasi skema.
func ConnectDatabase() {
	dsn := os.Getenv("DATABASE_PATH")
	if dsn == "" {
		dsn = "bioskop.db"
	}

	db, err := gorm.Open(sqlite.Open(dsn+"?_journal_mode=WAL&_busy_timeout=5000"), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Movie{},
		&models.FoodItem{},
		&models.Transaction{},
		&models.TransactionItem{},
	); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	DB = db
}
