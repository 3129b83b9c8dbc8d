package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cinematix/models"
)

type bookingFixture struct {
	db      *gorm.DB
	dir     string
	booking *BookingService
	user    *models.User
	movie   *models.Movie
}

func newBookingFixture(t *testing.T, saldo, price int64) *bookingFixture {
	t.Helper()

	db := setupTestDB(t)
	dir := t.TempDir()
	ledger := NewLedgerService(db)
	history := NewHistoryService(db, dir)
	booking := NewBookingService(db, ledger, history)
	booking.now = fixedNow

	return &bookingFixture{
		db:      db,
		dir:     dir,
		booking: booking,
		user:    createUser(t, db, "budi", saldo),
		movie:   createMovie(t, db, "Joker", price),
	}
}

func (f *bookingFixture) start(t *testing.T, studio string) {
	t.Helper()

	_, err := f.booking.StartBooking(f.user.ID, StartBookingInput{
		MovieID:  f.movie.ID,
		City:     "Jakarta",
		Cinema:   "CGV Grand Indonesia",
		Theater:  "Theater 1",
		Studio:   studio,
		ShowDate: "20/03/2025",
		ShowTime: "17:00",
	})
	require.NoError(t, err)
}

func TestBookingKonfirmasiSukses(t *testing.T) {
	f := newBookingFixture(t, 100000, 50000)
	f.start(t, StudioRegular)

	_, err := f.booking.ToggleSeat(f.user.ID, "C4")
	require.NoError(t, err)
	summary, err := f.booking.ToggleSeat(f.user.ID, "C5")
	require.NoError(t, err)
	assert.Equal(t, StateReviewingSummary, summary.State)
	assert.Equal(t, []string{"C4", "C5"}, summary.Seats)
	assert.Equal(t, int64(100000), summary.Total)
	assert.True(t, summary.CanConfirm)

	result, err := f.booking.ConfirmBooking(f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), result.Total)
	assert.Equal(t, int64(0), result.NewSaldo)
	assert.Equal(t, fixedTimestamp, result.Timestamp)

	var reloaded models.User
	require.NoError(t, f.db.First(&reloaded, f.user.ID).Error)
	assert.Equal(t, int64(0), reloaded.Saldo)

	var txn models.Transaction
	require.NoError(t, f.db.Where("user_id = ?", f.user.ID).First(&txn).Error)
	assert.Equal(t, models.TxTiket, txn.Type)
	assert.Equal(t, int64(-100000), txn.Total)
	assert.Equal(t, models.StatusSukses, txn.Status)
	assert.Equal(t, "C4, C5", txn.Seats)
	assert.Equal(t, "Joker", txn.MovieTitle)

	// sesi selesai dibuang
	_, err = f.booking.Summary(f.user.ID)
	assert.ErrorIs(t, err, ErrSesiTidakDitemukan)

	// dokumen riwayat ikut ditulis
	_, err = os.Stat(filepath.Join(f.dir, "budi.json"))
	assert.NoError(t, err)
}

func TestBookingSaldoTidakCukup(t *testing.T) {
	f := newBookingFixture(t, 30000, 50000)
	f.start(t, StudioRegular)

	_, err := f.booking.ToggleSeat(f.user.ID, "A1")
	require.NoError(t, err)

	_, err = f.booking.ConfirmBooking(f.user.ID)
	assert.ErrorIs(t, err, ErrSaldoTidakCukup)

	// tanpa mutasi: saldo utuh dan riwayat kosong
	var reloaded models.User
	require.NoError(t, f.db.First(&reloaded, f.user.ID).Error)
	assert.Equal(t, int64(30000), reloaded.Saldo)
	assert.Equal(t, int64(0), countTransactions(t, f.db, f.user.ID))

	// sesi kembali ke pemilihan kursi dengan kursi dipertahankan
	summary, err := f.booking.Summary(f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, StateSelectingSeats, summary.State)
	assert.Equal(t, []string{"A1"}, summary.Seats)
}

func TestBookingToggleKursi(t *testing.T) {
	f := newBookingFixture(t, 100000, 40000)
	f.start(t, StudioRegular)

	summary, err := f.booking.ToggleSeat(f.user.ID, "B7")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TicketCount)

	// toggle kedua membatalkan pilihan
	summary, err = f.booking.ToggleSeat(f.user.ID, "B7")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TicketCount)
	assert.Equal(t, int64(0), summary.Total)
	assert.False(t, summary.CanConfirm)
	assert.Equal(t, StateSelectingSeats, summary.State)
}

func TestBookingKursiTidakValid(t *testing.T) {
	f := newBookingFixture(t, 100000, 40000)
	f.start(t, StudioRegular)

	for _, seat := range []string{"K1", "A0", "A11", "11", "A", ""} {
		_, err := f.booking.ToggleSeat(f.user.ID, seat)
		assert.ErrorIs(t, err, ErrKursiTidakValid, "kursi %q", seat)
	}

	// batas grid masih diterima
	for _, seat := range []string{"A1", "J10"} {
		_, err := f.booking.ToggleSeat(f.user.ID, seat)
		assert.NoError(t, err, "kursi %q", seat)
	}
}

func TestBookingStudioVIP(t *testing.T) {
	f := newBookingFixture(t, 500000, 40000)
	f.start(t, StudioRegular)

	_, err := f.booking.ToggleSeat(f.user.ID, "D4")
	require.NoError(t, err)

	summary, err := f.booking.SetStudio(f.user.ID, StudioVIP)
	require.NoError(t, err)
	assert.Equal(t, int64(90000), summary.UnitPrice)
	assert.Equal(t, int64(90000), summary.Total)

	summary, err = f.booking.SetStudio(f.user.ID, StudioRegular)
	require.NoError(t, err)
	assert.Equal(t, int64(40000), summary.UnitPrice)
}

func TestBookingKonfirmasiTanpaKursi(t *testing.T) {
	f := newBookingFixture(t, 100000, 40000)
	f.start(t, StudioRegular)

	_, err := f.booking.ConfirmBooking(f.user.ID)
	assert.ErrorIs(t, err, ErrKursiBelumDipilih)
	assert.Equal(t, int64(0), countTransactions(t, f.db, f.user.ID))
}

func TestBookingFilmTidakDitemukan(t *testing.T) {
	f := newBookingFixture(t, 100000, 40000)

	_, err := f.booking.StartBooking(f.user.ID, StartBookingInput{
		MovieID:  999,
		City:     "Jakarta",
		Cinema:   "CGV Grand Indonesia",
		Theater:  "Theater 1",
		Studio:   StudioRegular,
		ShowDate: "20/03/2025",
		ShowTime: "17:00",
	})
	assert.ErrorIs(t, err, ErrFilmTidakDitemukan)
}

func TestBookingTanpaSesi(t *testing.T) {
	f := newBookingFixture(t, 100000, 40000)

	_, err := f.booking.ToggleSeat(f.user.ID, "A1")
	assert.ErrorIs(t, err, ErrSesiTidakDitemukan)

	_, err = f.booking.ConfirmBooking(f.user.ID)
	assert.ErrorIs(t, err, ErrSesiTidakDitemukan)
}
