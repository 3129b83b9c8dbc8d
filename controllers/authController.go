package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cinematix/dtos"
	"cinematix/services"
)

func Register(c *gin.Context) {
	var input dtos.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := authService.Register(input); err != nil {
		if errors.Is(err, services.ErrUsernameDipakai) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username sudah digunakan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registrasi berhasil"})
}

func Login(c *gin.Context) {
	var input dtos.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := authService.Login(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserTidakDitemukan):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Username tidak ditemukan"})
		case errors.Is(err, services.ErrPasswordSalah):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Password salah"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
