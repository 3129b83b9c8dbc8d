package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cinematix/models"
)

// setupTestDB membuka database SQLite in-memory terpisah per test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Movie{},
		&models.FoodItem{},
		&models.Transaction{},
		&models.TransactionItem{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, saldo int64) *models.User {
	t.Helper()

	user := &models.User{
		Nama:         "Budi Santoso",
		Username:     username,
		Password:     "hashed",
		Usia:         21,
		GenreFavorit: "Action",
		Saldo:        saldo,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createMovie(t *testing.T, db *gorm.DB, title string, price int64) *models.Movie {
	t.Helper()

	movie := &models.Movie{
		Title:     title,
		Genre:     "Action",
		Duration:  120,
		Price:     price,
		Schedule:  "10:00, 13:00",
		AgeRating: "13",
	}
	require.NoError(t, db.Create(movie).Error)
	return movie
}

func createFoodItem(t *testing.T, db *gorm.DB, code, name string, price int64, category string) {
	t.Helper()

	item := &models.FoodItem{Code: code, Name: name, Price: price, Category: category}
	require.NoError(t, db.Create(item).Error)
}

// fixedNow mengunci jam service supaya timestamp deterministik.
func fixedNow() time.Time {
	return time.Date(2025, 3, 15, 19, 30, 0, 0, time.Local)
}

const fixedTimestamp = "15/03/2025 19:30"

func countTransactions(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).
		Where("user_id = ?", userID).Count(&count).Error)
	return count
}
