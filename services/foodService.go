package services

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cinematix/models"
)

// Batas jumlah per item di keranjang.
const (
	MinQuantity = 1
	MaxQuantity = 10
)

var (
	ErrItemTidakDitemukan = errors.New("item tidak ditemukan")
	ErrKeranjangKosong    = errors.New("keranjang belanja kosong")
)

// FoodService mencerminkan alur booking dengan keranjang menggantikan
// pemilihan kursi: tambah item (jumlah dijepit ke [1,10]), checkout
// mendebet total dan mencatat satu transaksi Makanan berisi baris
// pesanan.
type FoodService struct {
	db      *gorm.DB
	ledger  *LedgerService
	history *HistoryService
	now     func() time.Time

	mu    sync.Mutex
	carts map[uint]map[string]*CartLine
}

type CartLine struct {
	Item     models.FoodItem `json:"item"`
	Quantity int             `json:"quantity"`
}

func (l CartLine) Subtotal() int64 {
	return l.Item.Price * int64(l.Quantity)
}

type CartSummary struct {
	Lines      []CartLine `json:"lines"`
	TotalItems int        `json:"total_items"`
	Total      int64      `json:"total"`
}

type FoodOrderResult struct {
	TransactionID string                   `json:"transaction_id"`
	Items         []models.TransactionItem `json:"items"`
	Total         int64                    `json:"total"`
	Timestamp     string                   `json:"timestamp"`
	NewSaldo      int64                    `json:"new_saldo"`
}

func NewFoodService(db *gorm.DB, ledger *LedgerService, history *HistoryService) *FoodService {
	return &FoodService{
		db:      db,
		ledger:  ledger,
		history: history,
		now:     time.Now,
		carts:   make(map[uint]map[string]*CartLine),
	}
}

func clampQuantity(qty int) int {
	if qty < MinQuantity {
		return MinQuantity
	}
	if qty > MaxQuantity {
		return MaxQuantity
	}
	return qty
}

// AddToCart menambahkan item menu ke keranjang user. Item yang sudah
// ada dijumlahkan jumlahnya, tetap dijepit ke batas maksimum.
func (s *FoodService) AddToCart(userID uint, code string, qty int) (*CartSummary, error) {
	var item models.FoodItem
	if err := s.db.First(&item, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemTidakDitemukan
		}
		return nil, err
	}

	qty = clampQuantity(qty)

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		cart = make(map[string]*CartLine)
		s.carts[userID] = cart
	}

	if line, exists := cart[code]; exists {
		line.Quantity = clampQuantity(line.Quantity + qty)
	} else {
		cart[code] = &CartLine{Item: item, Quantity: qty}
	}
	return s.cartSummaryLocked(userID), nil
}

// UpdateQuantity mengganti jumlah satu baris keranjang (dijepit ke
// [1,10]).
func (s *FoodService) UpdateQuantity(userID uint, code string, qty int) (*CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[userID]
	line, ok := cart[code]
	if !ok {
		return nil, ErrItemTidakDitemukan
	}
	line.Quantity = clampQuantity(qty)
	return s.cartSummaryLocked(userID), nil
}

// RemoveItem menghapus satu baris dari keranjang.
func (s *FoodService) RemoveItem(userID uint, code string) (*CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[userID]
	if _, ok := cart[code]; !ok {
		return nil, ErrItemTidakDitemukan
	}
	delete(cart, code)
	return s.cartSummaryLocked(userID), nil
}

// Cart mengembalikan isi keranjang user saat ini.
func (s *FoodService) Cart(userID uint) *CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartSummaryLocked(userID)
}

func (s *FoodService) cartSummaryLocked(userID uint) *CartSummary {
	cart := s.carts[userID]

	codes := make([]string, 0, len(cart))
	for code := range cart {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	summary := &CartSummary{Lines: make([]CartLine, 0, len(codes))}
	for _, code := range codes {
		line := cart[code]
		summary.Lines = append(summary.Lines, *line)
		summary.TotalItems += line.Quantity
		summary.Total += line.Subtotal()
	}
	return summary
}

// Checkout mendebet saldo sebesar total keranjang dan mencatat satu
// transaksi Makanan, keduanya dalam satu transaksi database. Keranjang
// dikosongkan hanya setelah pembayaran sukses.
func (s *FoodService) Checkout(userID uint) (*FoodOrderResult, error) {
	s.mu.Lock()
	cart := s.carts[userID]
	if len(cart) == 0 {
		s.mu.Unlock()
		return nil, ErrKeranjangKosong
	}

	codes := make([]string, 0, len(cart))
	for code := range cart {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	items := make([]models.TransactionItem, 0, len(codes))
	for _, code := range codes {
		line := cart[code]
		items = append(items, models.TransactionItem{
			Name:     line.Item.Name,
			Quantity: line.Quantity,
			Price:    line.Item.Price,
		})
	}
	s.mu.Unlock()

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserTidakDitemukan
		}
		return nil, err
	}

	txID := uuid.NewString()
	timestamp := s.now().Format(models.TimestampLayout)

	txn, err := models.NewFoodTransaction(userID, txID, items, timestamp)
	if err != nil {
		return nil, err
	}
	total := -txn.Total

	newSaldo, err := s.ledger.AdjustSaldoWith(userID, -total, func(tx *gorm.DB, _ int64) error {
		return s.history.AppendTx(tx, txn)
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.carts, userID)
	s.mu.Unlock()

	if err := s.history.WriteDocument(userID, user.Username); err != nil {
		return nil, err
	}

	return &FoodOrderResult{
		TransactionID: txID,
		Items:         items,
		Total:         total,
		Timestamp:     timestamp,
		NewSaldo:      newSaldo,
	}, nil
}
