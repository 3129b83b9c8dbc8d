package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cinematix/config"
	"cinematix/middlewares"
	"cinematix/models"
	"cinematix/services"
)

func foodError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrItemTidakDitemukan):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item tidak ditemukan"})
	case errors.Is(err, services.ErrKeranjangKosong):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Keranjang belanja masih kosong"})
	case errors.Is(err, services.ErrSaldoTidakCukup):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Saldo tidak mencukupi"})
	case errors.Is(err, services.ErrUserTidakDitemukan):
		c.JSON(http.StatusNotFound, gin.H{"error": "Pengguna tidak ditemukan"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GetFoodMenu mengembalikan menu makanan dan minuman terpisah per
// kategori.
func GetFoodMenu(c *gin.Context) {
	var makanan, minuman []models.FoodItem
	if err := config.DB.Where("category = ?", "Makanan").Order("code").Find(&makanan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := config.DB.Where("category = ?", "Minuman").Order("code").Find(&minuman).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"makanan": makanan,
		"minuman": minuman,
	})
}

func GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, foodService.Cart(middlewares.GetUserID(c)))
}

func AddToCart(c *gin.Context) {
	var input struct {
		ItemID   string `json:"item_id" binding:"required"`
		Quantity int    `json:"quantity" binding:"required,min=1,max=10"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := foodService.AddToCart(middlewares.GetUserID(c), input.ItemID, input.Quantity)
	if err != nil {
		foodError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func UpdateCartItem(c *gin.Context) {
	var input struct {
		Quantity int `json:"quantity" binding:"required,min=1,max=10"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := foodService.UpdateQuantity(middlewares.GetUserID(c), c.Param("id"), input.Quantity)
	if err != nil {
		foodError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func RemoveCartItem(c *gin.Context) {
	summary, err := foodService.RemoveItem(middlewares.GetUserID(c), c.Param("id"))
	if err != nil {
		foodError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func CheckoutCart(c *gin.Context) {
	result, err := foodService.Checkout(middlewares.GetUserID(c))
	if err != nil {
		foodError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Pesanan berhasil dibayar",
		"order":   result,
	})
}
