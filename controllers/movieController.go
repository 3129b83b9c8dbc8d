package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cinematix/catalog"
	"cinematix/config"
	"cinematix/models"
)

type movieResponse struct {
	models.Movie
	Schedule []string `json:"schedule"`
	Poster   string   `json:"poster"`
}

func toMovieResponse(m models.Movie) movieResponse {
	return movieResponse{
		Movie:    m,
		Schedule: m.ScheduleList(),
		Poster:   catalog.ResolvePoster("assets", m.Title),
	}
}

// GetMovies mendukung filter genre dan pencarian judul, keduanya
// case-insensitive, seperti halaman daftar film.
func GetMovies(c *gin.Context) {
	genre := strings.ToLower(strings.TrimSpace(c.Query("genre")))
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))

	var movies []models.Movie
	if err := config.DB.Find(&movies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result := make([]movieResponse, 0, len(movies))
	for _, movie := range movies {
		if genre != "" && !strings.Contains(strings.ToLower(movie.Genre), genre) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(movie.Title), search) {
			continue
		}
		result = append(result, toMovieResponse(movie))
	}

	c.JSON(http.StatusOK, result)
}

func GetMovieByID(c *gin.Context) {
	var movie models.Movie
	if err := config.DB.First(&movie, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Film tidak ditemukan"})
		return
	}
	c.JSON(http.StatusOK, toMovieResponse(movie))
}

// GetBookingOptions mengembalikan data referensi untuk form booking:
// kota, bioskop per kota, dan daftar theater.
func GetBookingOptions(c *gin.Context) {
	cinemas := make(map[string][]string, len(catalog.Cities()))
	for _, city := range catalog.Cities() {
		cinemas[city] = catalog.CinemasIn(city)
	}

	c.JSON(http.StatusOK, gin.H{
		"cities":   catalog.Cities(),
		"cinemas":  cinemas,
		"theaters": catalog.Theaters(),
		"studios":  []string{"Regular", "VIP"},
	})
}
