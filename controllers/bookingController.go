package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cinematix/middlewares"
	"cinematix/services"
)

func bookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrFilmTidakDitemukan):
		c.JSON(http.StatusNotFound, gin.H{"error": "Film tidak ditemukan"})
	case errors.Is(err, services.ErrSesiTidakDitemukan):
		c.JSON(http.StatusNotFound, gin.H{"error": "Sesi booking tidak ditemukan"})
	case errors.Is(err, services.ErrKursiTidakValid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Kursi tidak valid"})
	case errors.Is(err, services.ErrKursiBelumDipilih):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Silakan pilih kursi terlebih dahulu!"})
	case errors.Is(err, services.ErrSaldoTidakCukup):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Saldo tidak mencukupi"})
	case errors.Is(err, services.ErrUserTidakDitemukan):
		c.JSON(http.StatusNotFound, gin.H{"error": "Pengguna tidak ditemukan"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func StartBooking(c *gin.Context) {
	var input services.StartBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := bookingService.StartBooking(middlewares.GetUserID(c), input)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, summary)
}

func ToggleSeat(c *gin.Context) {
	var input struct {
		Seat string `json:"seat" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := bookingService.ToggleSeat(middlewares.GetUserID(c), input.Seat)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func SetStudio(c *gin.Context) {
	var input struct {
		Studio string `json:"studio" binding:"required,oneof=Regular VIP"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := bookingService.SetStudio(middlewares.GetUserID(c), input.Studio)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func GetBookingSummary(c *gin.Context) {
	summary, err := bookingService.Summary(middlewares.GetUserID(c))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func ConfirmBooking(c *gin.Context) {
	result, err := bookingService.ConfirmBooking(middlewares.GetUserID(c))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Tiket berhasil dipesan!",
		"booking": result,
	})
}
