package controllers

import (
	"gorm.io/gorm"

	"cinematix/services"
)

var (
	authService    services.AuthService
	historyService *services.HistoryService
	bookingService *services.BookingService
	foodService    *services.FoodService
	walletService  *services.WalletService
)

// Setup merangkai seluruh service di atas satu koneksi database.
// Dipanggil sekali dari main sebelum routes dipasang.
func Setup(db *gorm.DB, historyDir string) {
	ledger := services.NewLedgerService(db)
	historyService = services.NewHistoryService(db, historyDir)
	authService = services.NewAuthService(db)
	bookingService = services.NewBookingService(db, ledger, historyService)
	foodService = services.NewFoodService(db, ledger, historyService)
	walletService = services.NewWalletService(db, ledger, historyService)
}
