package seeders

import (
	"log"
	"os"

	"cinematix/catalog"
	"cinematix/config"
	"cinematix/models"
)

// Seed mengisi data referensi: film dan menu makanan/minuman.
// Idempoten; data yang sudah ada tidak diduplikasi.
func Seed() {
	// ============= Seed Movies =============
	moviePath := os.Getenv("MOVIE_DATA_FILE")
	if moviePath == "" {
		moviePath = "data_film.txt"
	}

	movies, err := catalog.LoadMovies(moviePath)
	if err != nil {
		log.Printf("WARN: gagal membaca %s: %v. Memakai daftar film bawaan.", moviePath, err)
		movies = catalog.FallbackMovies()
	}

	for _, movie := range movies {
		config.DB.FirstOrCreate(&movie, models.Movie{Title: movie.Title})
	}

	// ============= Seed Menu =============
	for _, item := range catalog.FoodMenu() {
		config.DB.FirstOrCreate(&item, models.FoodItem{Code: item.Code})
	}
	for _, item := range catalog.DrinkMenu() {
		config.DB.FirstOrCreate(&item, models.FoodItem{Code: item.Code})
	}

	log.Printf("Seeding selesai: %d film + %d item menu", len(movies), len(catalog.FoodMenu())+len(catalog.DrinkMenu()))
}
