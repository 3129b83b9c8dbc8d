package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cinematix/models"
)

// Nominal top-up preset dan batas nominal bebas.
var TopUpNominals = []int64{10000, 20000, 50000, 100000, 200000, 500000}

const (
	MinTopUp int64 = 10000
	MaxTopUp int64 = 10000000
)

// PaymentMethods adalah metode pembayaran top-up yang tersedia.
var PaymentMethods = []string{"BCA", "Mandiri", "BNI", "BRI", "OVO", "GoPay"}

var (
	ErrNominalTidakValid = errors.New("nominal top-up tidak valid")
	ErrMetodeTidakValid  = errors.New("metode pembayaran tidak valid")
)

// WalletService membungkus ledger untuk operasi dompet: baca saldo dan
// top-up. Top-up selalu berhasil selama user ada; kredit saldo dan
// pencatatan riwayat berjalan dalam satu transaksi database.
type WalletService struct {
	db      *gorm.DB
	ledger  *LedgerService
	history *HistoryService
	now     func() time.Time
}

type TopUpResult struct {
	TransactionID   string `json:"transaction_id"`
	Amount          int64  `json:"amount"`
	PreviousBalance int64  `json:"previous_balance"`
	NewBalance      int64  `json:"new_balance"`
	PaymentMethod   string `json:"payment_method"`
	Timestamp       string `json:"timestamp"`
}

func NewWalletService(db *gorm.DB, ledger *LedgerService, history *HistoryService) *WalletService {
	return &WalletService{
		db:      db,
		ledger:  ledger,
		history: history,
		now:     time.Now,
	}
}

// GetSaldo membaca saldo tersimpan seorang user.
func (s *WalletService) GetSaldo(userID uint) (int64, error) {
	return s.ledger.GetSaldo(userID)
}

// ValidNominal menerima nominal preset atau nominal bebas dalam
// rentang [MinTopUp, MaxTopUp].
func ValidNominal(amount int64) bool {
	for _, nominal := range TopUpNominals {
		if amount == nominal {
			return true
		}
	}
	return amount >= MinTopUp && amount <= MaxTopUp
}

func validPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// TopUp menambah saldo dan mencatat transaksi Top Up dengan saldo
// sebelum/sesudah yang eksplisit.
func (s *WalletService) TopUp(userID uint, amount int64, method string) (*TopUpResult, error) {
	if !ValidNominal(amount) {
		return nil, ErrNominalTidakValid
	}
	if !validPaymentMethod(method) {
		return nil, ErrMetodeTidakValid
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserTidakDitemukan
		}
		return nil, err
	}

	txID := uuid.NewString()
	timestamp := s.now().Format(models.TimestampLayout)

	var result *TopUpResult
	newSaldo, err := s.ledger.AdjustSaldoWith(userID, amount, func(tx *gorm.DB, newSaldo int64) error {
		previous := newSaldo - amount
		txn, err := models.NewTopUpTransaction(userID, txID, amount, previous, newSaldo, method, timestamp)
		if err != nil {
			return err
		}
		result = &TopUpResult{
			TransactionID:   txID,
			Amount:          amount,
			PreviousBalance: previous,
			NewBalance:      newSaldo,
			PaymentMethod:   method,
			Timestamp:       timestamp,
		}
		return s.history.AppendTx(tx, txn)
	})
	if err != nil {
		return nil, err
	}
	result.NewBalance = newSaldo

	if err := s.history.WriteDocument(userID, user.Username); err != nil {
		return nil, err
	}
	return result, nil
}
