package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cinematix/middlewares"
	"cinematix/services"
	"cinematix/utils"
)

func GetSaldo(c *gin.Context) {
	saldo, err := walletService.GetSaldo(middlewares.GetUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrUserTidakDitemukan) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pengguna tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"saldo":     saldo,
		"formatted": utils.FormatRupiah(saldo),
	})
}

// GetTopUpOptions mengembalikan nominal preset dan metode pembayaran
// yang tersedia.
func GetTopUpOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"nominals":        services.TopUpNominals,
		"min_nominal":     services.MinTopUp,
		"max_nominal":     services.MaxTopUp,
		"payment_methods": services.PaymentMethods,
	})
}

func TopUp(c *gin.Context) {
	var input struct {
		Amount        int64  `json:"amount" binding:"required"`
		PaymentMethod string `json:"payment_method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := walletService.TopUp(middlewares.GetUserID(c), input.Amount, input.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNominalTidakValid):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Nominal top-up tidak valid"})
		case errors.Is(err, services.ErrMetodeTidakValid):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Metode pembayaran tidak valid"})
		case errors.Is(err, services.ErrUserTidakDitemukan):
			c.JSON(http.StatusNotFound, gin.H{"error": "Pengguna tidak ditemukan"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Saldo berhasil ditambahkan. Saldo saat ini: " + utils.FormatRupiah(result.NewBalance),
		"topup":   result,
	})
}
