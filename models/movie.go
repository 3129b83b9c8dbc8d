package models

import "strings"

// Movie adalah data referensi film. Diisi sekali oleh seeder dan
// read-only untuk alur booking.
type Movie struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"uniqueIndex;not null" json:"title"`
	Genre     string `gorm:"not null" json:"genre"`
	Duration  int    `gorm:"not null" json:"duration"`
	Price     int64  `gorm:"not null" json:"price"`
	Synopsis  string `gorm:"type:text" json:"synopsis"`
	Director  string `json:"director"`
	Cast      string `json:"cast"`
	Schedule  string `json:"-"`
	AgeRating string `json:"age_rating,omitempty"`
}

// ScheduleList memecah jadwal tayang yang disimpan sebagai string
// dipisah koma menjadi daftar label waktu.
func (m Movie) ScheduleList() []string {
	if m.Schedule == "" {
		return nil
	}
	parts := strings.Split(m.Schedule, ",")
	times := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			times = append(times, t)
		}
	}
	return times
}
