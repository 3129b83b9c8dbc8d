package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Nama         string `gorm:"not null" json:"nama"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Password     string `gorm:"not null" json:"-"`
	Usia         int    `gorm:"not null" json:"usia"`
	GenreFavorit string `json:"genre_favorit"`
	Saldo        int64  `gorm:"not null;default:0" json:"saldo"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
