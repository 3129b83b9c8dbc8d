package services

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinematix/models"
)

func newHistoryFixture(t *testing.T) (*HistoryService, *models.User) {
	t.Helper()

	db := setupTestDB(t)
	history := NewHistoryService(db, t.TempDir())
	user := createUser(t, db, "budi", 0)
	return history, user
}

func ticketTxn(t *testing.T, userID uint, txID string) *models.Transaction {
	t.Helper()

	txn, err := models.NewTicketTransaction(userID, txID,
		"Joker", "CGV Grand Indonesia", "Theater 1", StudioRegular,
		[]string{"C4", "C5"}, 80000, "20/03/2025", "17:00", fixedTimestamp)
	require.NoError(t, err)
	return txn
}

func TestHistoryAppendTiketIdempoten(t *testing.T) {
	history, user := newHistoryFixture(t)

	require.NoError(t, history.AppendTx(history.db, ticketTxn(t, user.ID, "tx-1")))

	// Tiket identik diserap walau transaction_id berbeda.
	require.NoError(t, history.AppendTx(history.db, ticketTxn(t, user.ID, "tx-2")))

	txns, err := history.Query(user.ID, FilterSemua, "")
	require.NoError(t, err)
	assert.Len(t, txns, 1)
	assert.Equal(t, "C4, C5", txns[0].Seats)
	assert.Equal(t, int64(-80000), txns[0].Total)
}

func TestHistoryAppendMakananDedup(t *testing.T) {
	history, user := newHistoryFixture(t)

	items := []models.TransactionItem{{Name: "Popcorn (S)", Quantity: 2, Price: 25000}}

	first, err := models.NewFoodTransaction(user.ID, "food-1", items, fixedTimestamp)
	require.NoError(t, err)
	require.NoError(t, history.AppendTx(history.db, first))

	// transaction_id sama
	again, err := models.NewFoodTransaction(user.ID, "food-1", items, "16/03/2025 10:00")
	require.NoError(t, err)
	require.NoError(t, history.AppendTx(history.db, again))

	// transaction_id beda tapi timestamp dan total sama
	replay, err := models.NewFoodTransaction(user.ID, "food-2", items, fixedTimestamp)
	require.NoError(t, err)
	require.NoError(t, history.AppendTx(history.db, replay))

	txns, err := history.Query(user.ID, FilterSemua, "")
	require.NoError(t, err)
	assert.Len(t, txns, 1)
}

func TestHistoryQueryTerbaruDulu(t *testing.T) {
	history, user := newHistoryFixture(t)

	old, err := models.NewTopUpTransaction(user.ID, "top-1", 50000, 0, 50000, "BCA", "14/03/2025 09:00")
	require.NoError(t, err)
	require.NoError(t, history.AppendTx(history.db, old))

	require.NoError(t, history.AppendTx(history.db, ticketTxn(t, user.ID, "tx-1")))

	txns, err := history.Query(user.ID, FilterSemua, "")
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, models.TxTiket, txns[0].Type)
	assert.Equal(t, models.TxTopUp, txns[1].Type)
}

func TestHistoryFilterDanPencarian(t *testing.T) {
	history, user := newHistoryFixture(t)

	require.NoError(t, history.AppendTx(history.db, ticketTxn(t, user.ID, "tx-1")))

	food, err := models.NewFoodTransaction(user.ID, "food-1",
		[]models.TransactionItem{{Name: "Hotdog", Quantity: 1, Price: 30000}}, fixedTimestamp)
	require.NoError(t, err)
	require.NoError(t, history.AppendTx(history.db, food))

	topup, err := models.NewTopUpTransaction(user.ID, "top-1", 100000, 0, 100000, "OVO", fixedTimestamp)
	require.NoError(t, err)
	require.NoError(t, history.AppendTx(history.db, topup))

	tickets, err := history.Query(user.ID, models.TxTiket, "")
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "Joker", tickets[0].MovieTitle)

	// pencarian case-insensitive atas field tampilan
	found, err := history.Query(user.ID, FilterSemua, "JoKeR")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, models.TxTiket, found[0].Type)

	none, err := history.Query(user.ID, FilterSemua, "parasite")
	require.NoError(t, err)
	assert.Empty(t, none)

	// filter dan pencarian di-AND-kan
	empty, err := history.Query(user.ID, models.TxMakanan, "joker")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestHistoryQueryUserLainTidakBocor(t *testing.T) {
	db := setupTestDB(t)
	history := NewHistoryService(db, t.TempDir())
	budi := createUser(t, db, "budi", 0)
	sari := createUser(t, db, "sari", 0)

	require.NoError(t, history.AppendTx(db, ticketTxn(t, budi.ID, "tx-1")))

	txns, err := history.Query(sari.ID, FilterSemua, "")
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestHistoryWriteDocument(t *testing.T) {
	db := setupTestDB(t)
	dir := t.TempDir()
	history := NewHistoryService(db, dir)
	user := createUser(t, db, "budi", 0)

	old, err := models.NewTopUpTransaction(user.ID, "top-1", 50000, 0, 50000, "BCA", "14/03/2025 09:00")
	require.NoError(t, err)
	require.NoError(t, history.AppendTx(db, old))
	require.NoError(t, history.AppendTx(db, ticketTxn(t, user.ID, "tx-1")))

	require.NoError(t, history.WriteDocument(user.ID, user.Username))

	data, err := os.ReadFile(filepath.Join(dir, "budi.json"))
	require.NoError(t, err)

	var doc []models.Transaction
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc, 2)

	// dokumen ikut terurut terbaru-dulu
	assert.Equal(t, models.TxTiket, doc[0].Type)
	assert.Equal(t, models.TxTopUp, doc[1].Type)
}
