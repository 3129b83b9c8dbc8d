package models

// FoodItem adalah entri menu makanan/minuman statis.
type FoodItem struct {
	Code     string `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Price    int64  `gorm:"not null" json:"price"`
	Category string `gorm:"not null" json:"category"`
	Image    string `json:"image"`
}
