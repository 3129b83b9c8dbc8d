package services

import (
	"errors"
	"sync"

	"gorm.io/gorm"

	"cinematix/models"
)

var (
	ErrSaldoTidakCukup    = errors.New("saldo tidak mencukupi")
	ErrUserTidakDitemukan = errors.New("pengguna tidak ditemukan")
)

// LedgerService adalah satu-satunya jalur mutasi saldo. Setiap
// penyesuaian berjalan dalam critical section per user ditambah
// transaksi database, sehingga read-modify-write bersifat atomik.
type LedgerService struct {
	db *gorm.DB

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{
		db:    db,
		locks: make(map[uint]*sync.Mutex),
	}
}

func (s *LedgerService) userLock(userID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

// AdjustSaldo menambah (delta > 0) atau mengurangi (delta < 0) saldo
// seorang user dan mengembalikan saldo baru. Pengurangan yang membuat
// saldo negatif ditolak dengan ErrSaldoTidakCukup tanpa efek samping.
func (s *LedgerService) AdjustSaldo(userID uint, delta int64) (int64, error) {
	return s.AdjustSaldoWith(userID, delta, nil)
}

// AdjustSaldoWith menjalankan penyesuaian saldo plus follow-up dalam
// satu transaksi database dan satu critical section. Dipakai alur
// booking agar debit dan pencatatan riwayat sama-sama tersimpan atau
// sama-sama batal.
func (s *LedgerService) AdjustSaldoWith(userID uint, delta int64, then func(tx *gorm.DB, newSaldo int64) error) (int64, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	var newSaldo int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserTidakDitemukan
			}
			return err
		}

		newSaldo = user.Saldo + delta
		if delta < 0 && newSaldo < 0 {
			return ErrSaldoTidakCukup
		}

		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("saldo", newSaldo).Error; err != nil {
			return err
		}

		if then != nil {
			return then(tx, newSaldo)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newSaldo, nil
}

// GetSaldo membaca saldo tersimpan seorang user.
func (s *LedgerService) GetSaldo(userID uint) (int64, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserTidakDitemukan
		}
		return 0, err
	}
	return user.Saldo, nil
}
