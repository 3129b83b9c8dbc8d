package services

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"cinematix/models"
)

// Nilai filter yang diterima Query.
const FilterSemua = "Semua"

// HistoryService menyimpan riwayat transaksi per user: append-only,
// idempoten, urutan terbaru-dulu. Selain baris database, setiap user
// punya cermin dokumen JSON di data/history/<username>.json yang
// ditulis ulang setelah tiap append sukses.
type HistoryService struct {
	db  *gorm.DB
	dir string
}

func NewHistoryService(db *gorm.DB, dir string) *HistoryService {
	return &HistoryService{db: db, dir: dir}
}

// AppendTx menambahkan satu transaksi dalam transaksi database milik
// pemanggil. Duplikat diserap sebagai no-op (dicatat ke log untuk
// observabilitas):
//   - Tiket: sama (judul film, tanggal, jam, kursi, timestamp);
//   - Makanan/Top Up: transaction_id sama, atau khusus Makanan
//     timestamp dan total sama.
func (s *HistoryService) AppendTx(tx *gorm.DB, txn *models.Transaction) error {
	dup, err := s.isDuplicate(tx, txn)
	if err != nil {
		return err
	}
	if dup {
		log.Printf("riwayat: transaksi duplikat diabaikan (type=%s id=%s)", txn.Type, txn.TransactionID)
		return nil
	}
	return tx.Create(txn).Error
}

func (s *HistoryService) isDuplicate(tx *gorm.DB, txn *models.Transaction) (bool, error) {
	var count int64

	if txn.Type == models.TxTiket {
		err := tx.Model(&models.Transaction{}).
			Where("user_id = ? AND type = ?", txn.UserID, models.TxTiket).
			Where("movie_title = ? AND show_date = ? AND show_time = ? AND seats = ? AND timestamp = ?",
				txn.MovieTitle, txn.ShowDate, txn.ShowTime, txn.Seats, txn.Timestamp).
			Count(&count).Error
		return count > 0, err
	}

	err := tx.Model(&models.Transaction{}).
		Where("user_id = ? AND transaction_id = ?", txn.UserID, txn.TransactionID).
		Count(&count).Error
	if err != nil || count > 0 {
		return count > 0, err
	}

	if txn.Type == models.TxMakanan {
		err = tx.Model(&models.Transaction{}).
			Where("user_id = ? AND type = ? AND timestamp = ? AND total = ?",
				txn.UserID, models.TxMakanan, txn.Timestamp, txn.Total).
			Count(&count).Error
		return count > 0, err
	}
	return false, nil
}

// Query mengembalikan riwayat seorang user, terbaru dulu. Filter tipe
// ("Semua"/"Tiket"/"Makanan"/"Top Up") dan pencarian substring
// (case-insensitive) di-AND-kan. Setiap pemanggilan menghitung ulang
// dari daftar tersimpan.
func (s *HistoryService) Query(userID uint, filter, search string) ([]models.Transaction, error) {
	q := s.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("id DESC")

	if filter != "" && filter != FilterSemua {
		q = q.Where("type = ?", filter)
	}

	var txns []models.Transaction
	if err := q.Find(&txns).Error; err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return txns, nil
	}

	matched := make([]models.Transaction, 0, len(txns))
	for _, txn := range txns {
		if matchesSearch(txn, search) {
			matched = append(matched, txn)
		}
	}
	return matched, nil
}

// Kumpulan field tetap yang ikut dicari, mengikuti tampilan kartu
// riwayat.
func matchesSearch(txn models.Transaction, search string) bool {
	fields := []string{
		txn.MovieTitle,
		txn.Type,
		txn.Status,
		txn.Cinema,
		txn.Studio,
		txn.Seats,
		txn.ShowDate,
		txn.ShowTime,
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// WriteDocument menulis ulang dokumen JSON riwayat milik seorang user,
// elemen terbaru di posisi pertama. Kegagalan di sini tidak membatalkan
// baris database yang sudah commit; pemanggil yang memutuskan cara
// menampilkannya.
func (s *HistoryService) WriteDocument(userID uint, username string) error {
	txns, err := s.Query(userID, FilterSemua, "")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("gagal membuat direktori riwayat: %w", err)
	}

	data, err := json.MarshalIndent(txns, "", "    ")
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir, username+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("gagal menulis dokumen riwayat: %w", err)
	}
	return nil
}
