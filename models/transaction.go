package models

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// Jenis transaksi. Transaction adalah tagged union: field yang terisi
// ditentukan oleh Type dan divalidasi oleh konstruktornya.
const (
	TxTiket   = "Tiket"
	TxMakanan = "Makanan"
	TxTopUp   = "Top Up"

	StatusSukses = "Sukses"

	// TimestampLayout mengikuti format dd/MM/yyyy HH:mm yang dipakai
	// di riwayat transaksi.
	TimestampLayout = "02/01/2006 15:04"
)

type Transaction struct {
	ID            uint   `gorm:"primaryKey" json:"-"`
	UserID        uint   `gorm:"index;not null" json:"-"`
	TransactionID string `gorm:"index;not null" json:"transaction_id"`
	Type          string `gorm:"not null" json:"type"`
	Total         int64  `gorm:"not null" json:"total"`
	Status        string `gorm:"not null" json:"status"`
	Timestamp     string `gorm:"not null" json:"timestamp"`

	// Field khusus Tiket.
	MovieTitle string `json:"movie_title,omitempty"`
	Cinema     string `json:"cinema,omitempty"`
	Theater    string `json:"theater,omitempty"`
	Studio     string `json:"studio,omitempty"`
	Seats      string `json:"seats,omitempty"`
	ShowDate   string `json:"show_date,omitempty"`
	ShowTime   string `json:"show_time,omitempty"`

	// Field khusus Makanan.
	Items []TransactionItem `json:"items,omitempty"`

	// Field khusus Top Up.
	PreviousBalance *int64 `json:"previous_balance,omitempty"`
	NewBalance      *int64 `json:"new_balance,omitempty"`
	PaymentMethod   string `json:"payment_method,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

type TransactionItem struct {
	ID            uint   `gorm:"primaryKey" json:"-"`
	TransactionID uint   `gorm:"index;not null" json:"-"`
	Name          string `gorm:"not null" json:"name"`
	Quantity      int    `gorm:"not null" json:"quantity"`
	Price         int64  `gorm:"not null" json:"price"`
}

var ErrTransaksiTidakValid = errors.New("data transaksi tidak valid")

// JoinSeats menghasilkan representasi kursi yang kanonik: terurut dan
// dipisah ", " seperti "A1, A2, B5". Dipakai untuk tampilan sekaligus
// pembanding duplikat.
func JoinSeats(seats []string) string {
	sorted := append([]string(nil), seats...)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}

// NewTicketTransaction membangun transaksi Tiket. Total disimpan
// negatif karena merupakan pembelian.
func NewTicketTransaction(userID uint, txID, movieTitle, cinema, theater, studio string, seats []string, total int64, showDate, showTime, timestamp string) (*Transaction, error) {
	if movieTitle == "" || len(seats) == 0 || total <= 0 {
		return nil, ErrTransaksiTidakValid
	}
	return &Transaction{
		UserID:        userID,
		TransactionID: txID,
		Type:          TxTiket,
		Total:         -total,
		Status:        StatusSukses,
		Timestamp:     timestamp,
		MovieTitle:    movieTitle,
		Cinema:        cinema,
		Theater:       theater,
		Studio:        studio,
		Seats:         JoinSeats(seats),
		ShowDate:      showDate,
		ShowTime:      showTime,
	}, nil
}

// NewFoodTransaction membangun transaksi Makanan dari baris pesanan.
// Total dihitung sekali di sini dan tidak pernah diturunkan ulang dari
// state tampilan.
func NewFoodTransaction(userID uint, txID string, items []TransactionItem, timestamp string) (*Transaction, error) {
	if len(items) == 0 {
		return nil, ErrTransaksiTidakValid
	}
	var total int64
	for _, it := range items {
		if it.Quantity <= 0 || it.Price < 0 {
			return nil, ErrTransaksiTidakValid
		}
		total += it.Price * int64(it.Quantity)
	}
	return &Transaction{
		UserID:        userID,
		TransactionID: txID,
		Type:          TxMakanan,
		Total:         -total,
		Status:        StatusSukses,
		Timestamp:     timestamp,
		Items:         items,
	}, nil
}

// NewTopUpTransaction membangun transaksi Top Up dengan saldo
// sebelum/sesudah yang eksplisit.
func NewTopUpTransaction(userID uint, txID string, amount, previousBalance, newBalance int64, paymentMethod, timestamp string) (*Transaction, error) {
	if amount <= 0 || newBalance != previousBalance+amount {
		return nil, ErrTransaksiTidakValid
	}
	return &Transaction{
		UserID:          userID,
		TransactionID:   txID,
		Type:            TxTopUp,
		Total:           amount,
		Status:          StatusSukses,
		Timestamp:       timestamp,
		PreviousBalance: &previousBalance,
		NewBalance:      &newBalance,
		PaymentMethod:   paymentMethod,
	}, nil
}
