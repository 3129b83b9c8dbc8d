package services

import (
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cinematix/models"
)

// State sesi booking.
const (
	StateSelectingSeats      = "SelectingSeats"
	StateReviewingSummary    = "ReviewingSummary"
	StateAwaitingPayment     = "AwaitingPayment"
	StateCompleted           = "Completed"
	StateInsufficientBalance = "InsufficientBalance"
)

// VIPSurcharge adalah tambahan harga per tiket untuk studio VIP.
const VIPSurcharge int64 = 50000

const (
	StudioRegular = "Regular"
	StudioVIP     = "VIP"
)

var (
	ErrFilmTidakDitemukan = errors.New("film tidak ditemukan")
	ErrSesiTidakDitemukan = errors.New("sesi booking tidak ditemukan")
	ErrKursiTidakValid    = errors.New("kursi tidak valid")
	ErrKursiBelumDipilih  = errors.New("silakan pilih kursi terlebih dahulu")
)

// BookingService mengelola sesi pemesanan kursi per user: pilih kursi
// di grid tetap 10x10 (baris A-J, kolom 1-10), hitung ringkasan, lalu
// konfirmasi yang mendebet saldo dan mencatat riwayat dalam satu
// transaksi database.
type BookingService struct {
	db      *gorm.DB
	ledger  *LedgerService
	history *HistoryService
	now     func() time.Time

	mu       sync.Mutex
	sessions map[uint]*bookingSession
}

type bookingSession struct {
	movie    models.Movie
	city     string
	cinema   string
	theater  string
	studio   string
	showDate string
	showTime string
	seats    map[string]struct{}
	state    string
}

type StartBookingInput struct {
	MovieID  uint   `json:"movie_id" binding:"required"`
	City     string `json:"city" binding:"required"`
	Cinema   string `json:"cinema" binding:"required"`
	Theater  string `json:"theater" binding:"required"`
	Studio   string `json:"studio" binding:"required,oneof=Regular VIP"`
	ShowDate string `json:"show_date" binding:"required"`
	ShowTime string `json:"show_time" binding:"required"`
}

// BookingSummary adalah ringkasan yang dilihat user selama memilih
// kursi. TicketCount, UnitPrice dan Total dihitung ulang pada setiap
// toggle.
type BookingSummary struct {
	State       string   `json:"state"`
	MovieTitle  string   `json:"movie_title"`
	Studio      string   `json:"studio"`
	Seats       []string `json:"seats"`
	TicketCount int      `json:"ticket_count"`
	UnitPrice   int64    `json:"unit_price"`
	Total       int64    `json:"total"`
	CanConfirm  bool     `json:"can_confirm"`
}

// BookingResult dikembalikan setelah pembayaran sukses.
type BookingResult struct {
	TransactionID string   `json:"transaction_id"`
	MovieTitle    string   `json:"movie_title"`
	Cinema        string   `json:"cinema"`
	Theater       string   `json:"theater"`
	Studio        string   `json:"studio"`
	Seats         []string `json:"seats"`
	Total         int64    `json:"total"`
	ShowDate      string   `json:"show_date"`
	ShowTime      string   `json:"show_time"`
	Timestamp     string   `json:"timestamp"`
	NewSaldo      int64    `json:"new_saldo"`
}

func NewBookingService(db *gorm.DB, ledger *LedgerService, history *HistoryService) *BookingService {
	return &BookingService{
		db:       db,
		ledger:   ledger,
		history:  history,
		now:      time.Now,
		sessions: make(map[uint]*bookingSession),
	}
}

// validSeat menerima label seperti "A1" sampai "J10".
func validSeat(seat string) bool {
	if len(seat) < 2 {
		return false
	}
	row := seat[0]
	if row < 'A' || row > 'J' {
		return false
	}
	col, err := strconv.Atoi(seat[1:])
	if err != nil {
		return false
	}
	return col >= 1 && col <= 10
}

// StartBooking membuka sesi baru untuk seorang user; sesi lama untuk
// user yang sama dibuang.
func (s *BookingService) StartBooking(userID uint, input StartBookingInput) (*BookingSummary, error) {
	var movie models.Movie
	if err := s.db.First(&movie, input.MovieID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFilmTidakDitemukan
		}
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = &bookingSession{
		movie:    movie,
		city:     input.City,
		cinema:   input.Cinema,
		theater:  input.Theater,
		studio:   input.Studio,
		showDate: input.ShowDate,
		showTime: input.ShowTime,
		seats:    make(map[string]struct{}),
		state:    StateSelectingSeats,
	}
	return s.summaryLocked(userID)
}

// ToggleSeat memilih atau membatalkan satu kursi dan menghitung ulang
// ringkasan.
func (s *BookingService) ToggleSeat(userID uint, seat string) (*BookingSummary, error) {
	if !validSeat(seat) {
		return nil, ErrKursiTidakValid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		return nil, ErrSesiTidakDitemukan
	}

	if _, selected := session.seats[seat]; selected {
		delete(session.seats, seat)
	} else {
		session.seats[seat] = struct{}{}
	}

	if len(session.seats) > 0 {
		session.state = StateReviewingSummary
	} else {
		session.state = StateSelectingSeats
	}
	return s.summaryLocked(userID)
}

// SetStudio mengganti tipe studio di tengah pemilihan; harga satuan
// dihitung ulang.
func (s *BookingService) SetStudio(userID uint, studio string) (*BookingSummary, error) {
	if studio != StudioRegular && studio != StudioVIP {
		return nil, ErrKursiTidakValid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		return nil, ErrSesiTidakDitemukan
	}
	session.studio = studio
	return s.summaryLocked(userID)
}

// Summary mengembalikan ringkasan sesi berjalan.
func (s *BookingService) Summary(userID uint) (*BookingSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summaryLocked(userID)
}

func (s *BookingService) summaryLocked(userID uint) (*BookingSummary, error) {
	session, ok := s.sessions[userID]
	if !ok {
		return nil, ErrSesiTidakDitemukan
	}

	seats := make([]string, 0, len(session.seats))
	for seat := range session.seats {
		seats = append(seats, seat)
	}

	unitPrice := session.movie.Price
	if session.studio == StudioVIP {
		unitPrice += VIPSurcharge
	}
	count := len(seats)

	return &BookingSummary{
		State:       session.state,
		MovieTitle:  session.movie.Title,
		Studio:      session.studio,
		Seats:       sortedSeats(seats),
		TicketCount: count,
		UnitPrice:   unitPrice,
		Total:       unitPrice * int64(count),
		CanConfirm:  count > 0,
	}, nil
}

func sortedSeats(seats []string) []string {
	sorted := append([]string(nil), seats...)
	sort.Strings(sorted)
	return sorted
}

// ConfirmBooking mengeksekusi pembayaran: debit saldo sebesar total
// dan catat transaksi Tiket, keduanya dalam satu transaksi database.
// Saldo kurang membuat sesi kembali ke pemilihan kursi tanpa mutasi
// apa pun.
func (s *BookingService) ConfirmBooking(userID uint) (*BookingResult, error) {
	s.mu.Lock()
	session, ok := s.sessions[userID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSesiTidakDitemukan
	}
	if len(session.seats) == 0 {
		session.state = StateSelectingSeats
		s.mu.Unlock()
		return nil, ErrKursiBelumDipilih
	}

	seats := make([]string, 0, len(session.seats))
	for seat := range session.seats {
		seats = append(seats, seat)
	}
	seats = sortedSeats(seats)

	unitPrice := session.movie.Price
	if session.studio == StudioVIP {
		unitPrice += VIPSurcharge
	}
	total := unitPrice * int64(len(seats))
	session.state = StateAwaitingPayment
	s.mu.Unlock()

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		s.failSession(userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserTidakDitemukan
		}
		return nil, err
	}

	txID := uuid.NewString()
	timestamp := s.now().Format(models.TimestampLayout)

	txn, err := models.NewTicketTransaction(userID, txID,
		session.movie.Title, session.cinema, session.theater, session.studio,
		seats, total, session.showDate, session.showTime, timestamp)
	if err != nil {
		s.failSession(userID)
		return nil, err
	}

	newSaldo, err := s.ledger.AdjustSaldoWith(userID, -total, func(tx *gorm.DB, _ int64) error {
		return s.history.AppendTx(tx, txn)
	})
	if err != nil {
		s.failSession(userID)
		return nil, err
	}

	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()

	if err := s.history.WriteDocument(userID, user.Username); err != nil {
		return nil, err
	}

	return &BookingResult{
		TransactionID: txID,
		MovieTitle:    session.movie.Title,
		Cinema:        session.cinema,
		Theater:       session.theater,
		Studio:        session.studio,
		Seats:         seats,
		Total:         total,
		ShowDate:      session.showDate,
		ShowTime:      session.showTime,
		Timestamp:     timestamp,
		NewSaldo:      newSaldo,
	}, nil
}

// failSession mengembalikan sesi ke pemilihan kursi; kursi yang sudah
// dipilih dipertahankan agar user bisa mencoba lagi setelah top up.
func (s *BookingService) failSession(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[userID]; ok {
		session.state = StateSelectingSeats
	}
}
