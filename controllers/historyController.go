package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cinematix/middlewares"
	"cinematix/services"
)

// GetHistory mengembalikan riwayat transaksi user, terbaru dulu.
// Query param: filter (Semua/Tiket/Makanan/Top Up) dan search
// (substring, case-insensitive).
func GetHistory(c *gin.Context) {
	filter := c.DefaultQuery("filter", services.FilterSemua)
	search := c.Query("search")

	txns, err := historyService.Query(middlewares.GetUserID(c), filter, search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  txns,
		"total": len(txns),
	})
}
