package dtos

type RegisterInput struct {
	Nama         string `json:"nama" binding:"required"`
	Username     string `json:"username" binding:"required,min=3"`
	Password     string `json:"password" binding:"required,min=6"`
	Usia         int    `json:"usia" binding:"required,min=1"`
	GenreFavorit string `json:"genre_favorit"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Nama     string `json:"nama"`
	Saldo    int64  `json:"saldo"`
}
