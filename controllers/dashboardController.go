package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cinematix/config"
	"cinematix/middlewares"
	"cinematix/models"
)

// GetDashboard mengembalikan ringkasan untuk halaman utama: profil,
// saldo, dan film rekomendasi berdasarkan genre favorit user. Kalau
// tidak ada yang cocok, seluruh daftar film dikembalikan.
func GetDashboard(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, middlewares.GetUserID(c)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pengguna tidak ditemukan"})
		return
	}

	var movies []models.Movie
	if err := config.DB.Find(&movies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	favorite := strings.ToLower(strings.TrimSpace(user.GenreFavorit))
	recommended := make([]movieResponse, 0, len(movies))
	if favorite != "" {
		for _, movie := range movies {
			if strings.Contains(strings.ToLower(movie.Genre), favorite) {
				recommended = append(recommended, toMovieResponse(movie))
			}
		}
	}
	if len(recommended) == 0 {
		for _, movie := range movies {
			recommended = append(recommended, toMovieResponse(movie))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"nama":          user.Nama,
		"username":      user.Username,
		"genre_favorit": user.GenreFavorit,
		"saldo":         user.Saldo,
		"recommended":   recommended,
	})
}
