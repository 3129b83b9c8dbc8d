package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cinematix/dtos"
	"cinematix/models"
	"cinematix/utils"
)

var (
	ErrUsernameDipakai = errors.New("username sudah digunakan")
	ErrPasswordSalah   = errors.New("password salah")
)

type AuthService interface {
	Register(input dtos.RegisterInput) error
	Login(input dtos.LoginInput) (*dtos.AuthResponse, error)
}

type authService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) AuthService {
	return &authService{db: db}
}

func (s *authService) Register(input dtos.RegisterInput) error {
	var existing models.User
	if err := s.db.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		return ErrUsernameDipakai
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Nama:         input.Nama,
		Username:     input.Username,
		Password:     string(hashed),
		Usia:         input.Usia,
		GenreFavorit: input.GenreFavorit,
		Saldo:        0,
	}
	return s.db.Create(&user).Error
}

func (s *authService) Login(input dtos.LoginInput) (*dtos.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("username = ?", input.Username).First(&user).Error; err != nil {
		return nil, ErrUserTidakDitemukan
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, ErrPasswordSalah
	}

	token, err := utils.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, errors.New("gagal membuat token")
	}

	return &dtos.AuthResponse{
		Message:  "Login berhasil",
		Token:    token,
		Username: user.Username,
		Nama:     user.Nama,
		Saldo:    user.Saldo,
	}, nil
}
