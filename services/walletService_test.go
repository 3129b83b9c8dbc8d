package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cinematix/models"
)

func newWalletFixture(t *testing.T, saldo int64) (*WalletService, *gorm.DB, *models.User) {
	t.Helper()

	db := setupTestDB(t)
	ledger := NewLedgerService(db)
	history := NewHistoryService(db, t.TempDir())
	wallet := NewWalletService(db, ledger, history)
	wallet.now = fixedNow

	return wallet, db, createUser(t, db, "budi", saldo)
}

func TestWalletTopUpSukses(t *testing.T) {
	wallet, db, user := newWalletFixture(t, 25000)

	result, err := wallet.TopUp(user.ID, 50000, "BCA")
	require.NoError(t, err)
	assert.Equal(t, int64(50000), result.Amount)
	assert.Equal(t, int64(25000), result.PreviousBalance)
	assert.Equal(t, int64(75000), result.NewBalance)
	assert.Equal(t, "BCA", result.PaymentMethod)
	assert.Equal(t, fixedTimestamp, result.Timestamp)

	saldo, err := wallet.GetSaldo(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(75000), saldo)

	var txn models.Transaction
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&txn).Error)
	assert.Equal(t, models.TxTopUp, txn.Type)
	assert.Equal(t, int64(50000), txn.Total)
	require.NotNil(t, txn.PreviousBalance)
	require.NotNil(t, txn.NewBalance)
	assert.Equal(t, int64(25000), *txn.PreviousBalance)
	assert.Equal(t, int64(75000), *txn.NewBalance)
}

func TestWalletNominalBebas(t *testing.T) {
	wallet, _, user := newWalletFixture(t, 0)

	// bukan preset tapi masih dalam rentang
	result, err := wallet.TopUp(user.ID, 15000, "OVO")
	require.NoError(t, err)
	assert.Equal(t, int64(15000), result.NewBalance)
}

func TestWalletNominalTidakValid(t *testing.T) {
	wallet, db, user := newWalletFixture(t, 25000)

	for _, amount := range []int64{0, -50000, 9999, 10000001} {
		_, err := wallet.TopUp(user.ID, amount, "BCA")
		assert.ErrorIs(t, err, ErrNominalTidakValid, "nominal %d", amount)
	}

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Equal(t, int64(25000), reloaded.Saldo)
	assert.Equal(t, int64(0), countTransactions(t, db, user.ID))
}

func TestWalletMetodeTidakValid(t *testing.T) {
	wallet, _, user := newWalletFixture(t, 0)

	_, err := wallet.TopUp(user.ID, 50000, "Dana")
	assert.ErrorIs(t, err, ErrMetodeTidakValid)
}

func TestWalletUserTidakDitemukan(t *testing.T) {
	wallet, _, _ := newWalletFixture(t, 0)

	_, err := wallet.TopUp(999, 50000, "BCA")
	assert.ErrorIs(t, err, ErrUserTidakDitemukan)
}

func TestValidNominal(t *testing.T) {
	for _, nominal := range TopUpNominals {
		assert.True(t, ValidNominal(nominal), "preset %d", nominal)
	}
	assert.True(t, ValidNominal(10000))
	assert.True(t, ValidNominal(10000000))
	assert.False(t, ValidNominal(9999))
	assert.False(t, ValidNominal(10000001))
	assert.False(t, ValidNominal(0))
}
