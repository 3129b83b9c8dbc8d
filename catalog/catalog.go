// Package catalog menyediakan data referensi read-only: daftar film
// dari file data_film.txt (dengan fallback bawaan), menu makanan dan
// minuman, serta daftar kota/bioskop/theater.
package catalog

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"cinematix/models"
)

// LoadMovies membaca file film dengan format pipe-delimited. Baris
// pertama adalah header; kolom dicocokkan berdasarkan nama header,
// bukan posisi. Baris dengan kolom lebih sedikit dari header dilewati.
func LoadMovies(path string) ([]models.Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("file film kosong: %s", path)
	}
	header := strings.Split(strings.TrimSpace(scanner.Text()), "|")

	var movies []models.Movie
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		values := strings.Split(line, "|")
		if len(values) < len(header) {
			continue // data tidak lengkap
		}

		var movie models.Movie
		for i, field := range header {
			key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(field), " ", "_"))
			value := strings.TrimSpace(values[i])

			switch key {
			case "judul_film":
				movie.Title = value
			case "genre":
				movie.Genre = value
			case "durasi":
				movie.Duration, _ = strconv.Atoi(value)
			case "harga":
				movie.Price, _ = strconv.ParseInt(value, 10, 64)
			case "sinopsis":
				movie.Synopsis = value
			case "sutradara":
				movie.Director = value
			case "pemeran":
				movie.Cast = value
			case "jadwal":
				movie.Schedule = value
			case "usia_minimal":
				movie.AgeRating = value
			}
		}
		movies = append(movies, movie)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return movies, nil
}

// FallbackMovies mengembalikan daftar film bawaan yang dipakai saat
// data_film.txt tidak ada atau rusak.
func FallbackMovies() []models.Movie {
	return []models.Movie{
		{
			Title:     "Avengers: Endgame",
			Genre:     "Action",
			Duration:  181,
			Price:     45000,
			Synopsis:  "Adrift in space with no food or water, Tony Stark sends a message to Pepper Potts as his oxygen supply starts to dwindle. Meanwhile, the remaining Avengers -- Thor, Black Widow, Captain America and Bruce Banner -- must figure out a way to bring back their vanquished allies for an epic showdown with Thanos.",
			Director:  "Anthony Russo, Joe Russo",
			Cast:      "Robert Downey Jr., Chris Evans, Mark Ruffalo",
			Schedule:  "10:00, 13:00, 16:00, 19:00",
			AgeRating: "13",
		},
		{
			Title:     "Joker",
			Genre:     "Crime, Drama",
			Duration:  122,
			Price:     40000,
			Synopsis:  "Forever alone in a crowd, failed comedian Arthur Fleck seeks connection as he walks the streets of Gotham City. Arthur wears two masks -- the one he paints for his day job as a clown, and the guise he projects in a futile attempt to feel like he's part of the world around him.",
			Director:  "Todd Phillips",
			Cast:      "Joaquin Phoenix, Robert De Niro, Zazie Beetz",
			Schedule:  "11:00, 14:00, 17:00, 20:00",
			AgeRating: "17",
		},
		{
			Title:     "The Lion King",
			Genre:     "Animation, Adventure",
			Duration:  118,
			Price:     35000,
			Synopsis:  "Simba idolizes his father, King Mufasa, and takes to heart his own royal destiny on the plains of Africa. But not everyone in the kingdom celebrates the new cub's arrival. Scar, Mufasa's brother -- and former heir to the throne -- has plans of his own.",
			Director:  "Jon Favreau",
			Cast:      "Donald Glover, Beyonce, Seth Rogen",
			Schedule:  "09:00, 12:00, 15:00, 18:00",
			AgeRating: "7",
		},
		{
			Title:     "Spider-Man: Far From Home",
			Genre:     "Action, Adventure",
			Duration:  129,
			Price:     40000,
			Synopsis:  "Following the events of Avengers: Endgame, Spider-Man must step up to take on new threats in a world that has changed forever.",
			Director:  "Jon Watts",
			Cast:      "Tom Holland, Zendaya, Jake Gyllenhaal",
			Schedule:  "10:30, 13:30, 16:30, 19:30",
			AgeRating: "13",
		},
		{
			Title:     "Aladdin",
			Genre:     "Adventure, Family",
			Duration:  128,
			Price:     35000,
			Synopsis:  "A kind-hearted street urchin and a power-hungry Grand Vizier vie for a magic lamp that has the power to make their deepest wishes come true.",
			Director:  "Guy Ritchie",
			Cast:      "Will Smith, Mena Massoud, Naomi Scott",
			Schedule:  "09:30, 12:30, 15:30, 18:30",
			AgeRating: "7",
		},
		{
			Title:     "Toy Story 4",
			Genre:     "Animation, Adventure",
			Duration:  100,
			Price:     35000,
			Synopsis:  "Woody, Buzz Lightyear and the rest of the gang embark on a road trip with Bonnie and a new toy named Forky. The adventurous journey turns into an unexpected reunion as Woody's slight detour leads him to his long-lost friend Bo Peep.",
			Director:  "Josh Cooley",
			Cast:      "Tom Hanks, Tim Allen, Annie Potts",
			Schedule:  "10:00, 13:00, 16:00, 19:00",
			AgeRating: "7",
		},
		{
			Title:     "John Wick: Chapter 3",
			Genre:     "Action, Crime",
			Duration:  131,
			Price:     40000,
			Synopsis:  "After gunning down a member of the High Table -- the shadowy international assassin's guild -- legendary hit man John Wick finds himself stripped of the organization's protective services. Now stuck with a $14 million bounty on his head, Wick must fight his way through the streets of New York as he becomes the target of the world's most ruthless killers.",
			Director:  "Chad Stahelski",
			Cast:      "Keanu Reeves, Halle Berry, Ian McShane",
			Schedule:  "11:30, 14:30, 17:30, 20:30",
			AgeRating: "17",
		},
		{
			Title:     "Captain Marvel",
			Genre:     "Action, Adventure",
			Duration:  123,
			Price:     40000,
			Synopsis:  "Captain Marvel is an extraterrestrial Kree warrior who finds herself caught in the middle of an intergalactic battle between her people and the Skrulls. Living on Earth in 1995, she keeps having recurring memories of another life as U.S. Air Force pilot Carol Danvers. With help from Nick Fury, Captain Marvel tries to uncover the secrets of her past while harnessing her special superpowers to end the war with the evil Skrulls.",
			Director:  "Anna Boden, Ryan Fleck",
			Cast:      "Brie Larson, Samuel L. Jackson, Ben Mendelsohn",
			Schedule:  "09:00, 12:00, 15:00, 18:00",
			AgeRating: "13",
		},
	}
}

// FoodMenu dan DrinkMenu adalah entri katalog statis.
func FoodMenu() []models.FoodItem {
	return []models.FoodItem{
		{Code: "F1", Name: "Popcorn (S)", Price: 25000, Category: "Makanan", Image: "popcorn_mini.jpg"},
		{Code: "F2", Name: "Popcorn (M)", Price: 35000, Category: "Makanan", Image: "popcorn_medium.jpg"},
		{Code: "F4", Name: "Popcorn Caramel", Price: 40000, Category: "Makanan", Image: "popcorn_caramel.jpg"},
		{Code: "F5", Name: "Popcorn Cheese", Price: 40000, Category: "Makanan", Image: "popcorn_cheese.jpg"},
		{Code: "F7", Name: "Hotdog", Price: 30000, Category: "Makanan", Image: "hotdog.jpeg"},
		{Code: "F8", Name: "Nasi Padang", Price: 35000, Category: "Makanan", Image: "nasi_padang.jpeg"},
	}
}

func DrinkMenu() []models.FoodItem {
	return []models.FoodItem{
		{Code: "D1", Name: "Coca Cola (S)", Price: 15000, Category: "Minuman", Image: "cocacola_mini.webp"},
		{Code: "D2", Name: "Coca Cola (M)", Price: 20000, Category: "Minuman", Image: "coca_cola_medium.png"},
		{Code: "D4", Name: "Sprite (S)", Price: 15000, Category: "Minuman", Image: "sprite_mini.jpeg"},
		{Code: "D5", Name: "Sprite (M)", Price: 20000, Category: "Minuman", Image: "sprite_medium.jpg"},
	}
}

var cinemasByCity = map[string][]string{
	"Jakarta":  {"CGV Grand Indonesia", "XXI Plaza Indonesia", "CGV Pacific Place"},
	"Bandung":  {"CGV Paris Van Java", "XXI Cihampelas Walk", "CGV BEC Mall"},
	"Surabaya": {"CGV Tunjungan Plaza", "XXI Galaxy Mall", "CGV Grand City"},
	"Medan":    {"CGV Center Point", "XXI Sun Plaza", "CGV Ring Road"},
	"Makassar": {"CGV Trans Studio", "XXI Mall Ratu Indah", "CGV Nipah Mall"},
}

func Cities() []string {
	return []string{"Jakarta", "Bandung", "Surabaya", "Medan", "Makassar"}
}

func CinemasIn(city string) []string {
	return cinemasByCity[city]
}

func Theaters() []string {
	theaters := make([]string, 0, 5)
	for i := 1; i <= 5; i++ {
		theaters = append(theaters, fmt.Sprintf("Theater %d", i))
	}
	return theaters
}
