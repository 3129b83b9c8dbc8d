package utils

import (
	"fmt"
	"strings"
)

// FormatRupiah menampilkan nilai seperti "Rp 100.000" dengan titik
// sebagai pemisah ribuan. Nilai negatif mendapat tanda minus.
func FormatRupiah(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-Rp " + b.String()
	}
	return "Rp " + b.String()
}
